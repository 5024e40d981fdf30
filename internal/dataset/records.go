// Package dataset loads skills, people and tasks and resolves their
// cross-references into a model.Dataset ready for scheduling.
//
// Every source produces raw Records and hands them to Resolve, which is the
// only place referential integrity is checked.
package dataset

import (
	"context"

	"github.com/me/manpower/pkg/model"
)

// Source yields a resolved dataset.
type Source interface {
	// Name identifies the source in logs and run metadata.
	Name() string
	Load(ctx context.Context) (*model.Dataset, error)
}

// Records is the unresolved form of a dataset, with references held as IDs.
type Records struct {
	Skills      []SkillRecord  `json:"skills" yaml:"skills"`
	People      []PersonRecord `json:"people" yaml:"people"`
	SkillMatrix []MatrixEntry  `json:"skill_matrix,omitempty" yaml:"skill_matrix,omitempty"`
	Tasks       []TaskRecord   `json:"tasks" yaml:"tasks"`
}

type SkillRecord struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// PersonRecord is a person row. Skills is an optional inline list of skill
// IDs, merged with the skill matrix.
type PersonRecord struct {
	ID     int    `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Skills []int  `json:"skills,omitempty" yaml:"skills,omitempty"`
}

// MatrixEntry grants one skill to one person.
type MatrixEntry struct {
	PersonID int `json:"person_id" yaml:"person_id"`
	SkillID  int `json:"skill_id" yaml:"skill_id"`
}

type TaskRecord struct {
	ID            int  `json:"id" yaml:"id"`
	SkillRequired int  `json:"skill_required" yaml:"skill_required"`
	IsPriority    bool `json:"is_priority" yaml:"is_priority"`
}
