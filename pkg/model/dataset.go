package model

// Dataset is the resolved, mutually consistent input of one scheduling pass.
type Dataset struct {
	Skills []*Skill
	People []*Person
	Tasks  []*Task
}
