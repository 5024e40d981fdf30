package scheduler

import (
	"slices"

	"github.com/me/manpower/pkg/model"
)

// Calendar answers whether a person is already booked on a day.
type Calendar interface {
	Booked(personID, day int) bool
}

// ByPriority returns tasks with priority tasks first. Each group keeps its
// input order. The input slice is left untouched.
func ByPriority(tasks []*model.Task) []*model.Task {
	ordered := slices.Clone(tasks)
	slices.SortStableFunc(ordered, func(a, b *model.Task) int {
		switch {
		case a.IsPriority == b.IsPriority:
			return 0
		case a.IsPriority:
			return -1
		default:
			return 1
		}
	})
	return ordered
}

// Eligible returns, in input order, the people who hold the skill task
// requires and are free on day.
func Eligible(people []*model.Person, task *model.Task, day int, cal Calendar) []*model.Person {
	if task.SkillRequired == nil {
		return nil
	}
	var pool []*model.Person
	for _, p := range people {
		if p.Has(task.SkillRequired.ID) && !cal.Booked(p.ID, day) {
			pool = append(pool, p)
		}
	}
	return pool
}

// Narrowest returns the person with the fewest skills. Ties go to the
// earliest person in pool. Returns nil for an empty pool.
func Narrowest(pool []*model.Person) *model.Person {
	var best *model.Person
	for _, p := range pool {
		if best == nil || p.Skills.Len() < best.Skills.Len() {
			best = p
		}
	}
	return best
}

// holders records which skills are held by at least one person.
type holders map[int]struct{}

func holderIndex(people []*model.Person) holders {
	h := make(holders)
	for _, p := range people {
		for id := range p.Skills {
			h[id] = struct{}{}
		}
	}
	return h
}

func (h holders) has(task *model.Task) bool {
	if task.SkillRequired == nil {
		return false
	}
	_, ok := h[task.SkillRequired.ID]
	return ok
}
