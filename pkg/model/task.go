package model

// Task is a unit of work requiring exactly one skill.
type Task struct {
	ID            int    `json:"id"`
	SkillRequired *Skill `json:"skill_required"`
	IsPriority    bool   `json:"is_priority"`
}

// SkillID returns the ID of the required skill, or 0 when it is unset.
func (t *Task) SkillID() int {
	if t.SkillRequired == nil {
		return 0
	}
	return t.SkillRequired.ID
}
