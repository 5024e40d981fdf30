package model

import (
	"sort"
	"strings"
)

// Skill is an atomic capability a person can hold and a task can require.
type Skill struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// SkillSet is a set of skills keyed by skill ID.
type SkillSet map[int]*Skill

// Add inserts s. Adding a skill that is already present is a no-op.
func (ss *SkillSet) Add(s *Skill) {
	if s == nil {
		return
	}
	if *ss == nil {
		*ss = make(SkillSet)
	}
	(*ss)[s.ID] = s
}

// Has reports whether the set contains the skill with the given ID.
func (ss SkillSet) Has(id int) bool {
	_, ok := ss[id]
	return ok
}

// Len returns the number of skills in the set.
func (ss SkillSet) Len() int {
	return len(ss)
}

// IDs returns the skill IDs in ascending order.
func (ss SkillSet) IDs() []int {
	ids := make([]int, 0, len(ss))
	for id := range ss {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Names returns the skill names ordered by skill ID.
func (ss SkillSet) Names() []string {
	ids := ss.IDs()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = ss[id].Name
	}
	return names
}

// String renders the skill names as a comma-separated list.
func (ss SkillSet) String() string {
	return strings.Join(ss.Names(), ",")
}
