package model

import "fmt"

// Person is a schedulable resource holding a set of skills.
//
// Skills is filled in by the loader's skill-matrix pass and must not change
// once the person is handed to the scheduler.
type Person struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Skills SkillSet `json:"-"`
}

// Has reports whether the person holds the skill with the given ID.
func (p *Person) Has(skillID int) bool {
	return p.Skills.Has(skillID)
}

// String renders the person as "[id] name, Skills: a,b".
func (p *Person) String() string {
	return fmt.Sprintf("[%d] %s, Skills: %s", p.ID, p.Name, p.Skills)
}
