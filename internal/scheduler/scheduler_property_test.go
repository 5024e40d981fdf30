package scheduler

import (
	"reflect"
	"testing"

	"github.com/me/manpower/pkg/model"
	"pgregory.net/rapid"
)

// drawInput generates a satisfiable dataset: every task requires a skill held
// by at least one person.
func drawInput(rt *rapid.T) ([]*model.Person, []*model.Task) {
	nSkills := rapid.IntRange(1, 5).Draw(rt, "skills")
	skills := make([]*model.Skill, nSkills)
	for i := range skills {
		skills[i] = &model.Skill{ID: i + 1}
	}

	nPeople := rapid.IntRange(1, 8).Draw(rt, "people")
	people := make([]*model.Person, nPeople)
	for i := range people {
		p := &model.Person{ID: i + 1}
		for _, s := range skills {
			if rapid.Bool().Draw(rt, "holds") {
				p.Skills.Add(s)
			}
		}
		people[i] = p
	}

	var held []*model.Skill
	for _, s := range skills {
		for _, p := range people {
			if p.Has(s.ID) {
				held = append(held, s)
				break
			}
		}
	}
	if len(held) == 0 {
		people[0].Skills.Add(skills[0])
		held = skills[:1]
	}

	nTasks := rapid.IntRange(0, 20).Draw(rt, "tasks")
	tasks := make([]*model.Task, nTasks)
	for i := range tasks {
		tasks[i] = &model.Task{
			ID:            i + 1,
			SkillRequired: rapid.SampledFrom(held).Draw(rt, "skill"),
			IsPriority:    rapid.Bool().Draw(rt, "priority"),
		}
	}
	return people, tasks
}

// Every task is covered exactly once by a person holding its skill, and nobody
// works twice on one day.
func TestProperty_CoverageAndNoDoubleBooking(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		people, tasks := drawInput(rt)
		got, err := Schedule(people, tasks)
		if err != nil {
			rt.Fatalf("Schedule: %v", err)
		}
		if len(got) != len(tasks) {
			rt.Fatalf("len = %d, want %d", len(got), len(tasks))
		}

		seenTask := make(map[int]bool)
		seenSlot := make(map[[2]int]bool)
		for _, a := range got {
			if seenTask[a.Task.ID] {
				rt.Fatalf("task %d assigned twice", a.Task.ID)
			}
			seenTask[a.Task.ID] = true

			slot := [2]int{a.Person.ID, a.Day}
			if seenSlot[slot] {
				rt.Fatalf("person %d double-booked on day %d", a.Person.ID, a.Day)
			}
			seenSlot[slot] = true

			if !a.Person.Has(a.Task.SkillRequired.ID) {
				rt.Fatalf("person %d lacks skill %d for task %d", a.Person.ID, a.Task.SkillRequired.ID, a.Task.ID)
			}
			if a.Day < 1 {
				rt.Fatalf("task %d on day %d", a.Task.ID, a.Day)
			}
		}
	})
}

// Priority assignments precede the rest and both groups keep input order.
func TestProperty_PriorityOrdering(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		people, tasks := drawInput(rt)
		got, err := Schedule(people, tasks)
		if err != nil {
			rt.Fatalf("Schedule: %v", err)
		}

		var want []int
		for _, priority := range []bool{true, false} {
			for _, tk := range tasks {
				if tk.IsPriority == priority {
					want = append(want, tk.ID)
				}
			}
		}
		var order []int
		for _, a := range got {
			order = append(order, a.Task.ID)
		}
		if !reflect.DeepEqual(order, want) {
			rt.Fatalf("order = %v, want %v", order, want)
		}
	})
}

// Replaying the schedule, each task sits on the earliest day with a free
// holder, with the narrowest such person.
func TestProperty_EarliestDayNarrowestPerson(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		people, tasks := drawInput(rt)
		got, err := Schedule(people, tasks)
		if err != nil {
			rt.Fatalf("Schedule: %v", err)
		}

		acc := newBookings(len(got))
		for _, a := range got {
			for day := 1; day < a.Day; day++ {
				if pool := Eligible(people, a.Task, day, acc); len(pool) > 0 {
					rt.Fatalf("task %d on day %d but %d people free on day %d", a.Task.ID, a.Day, len(pool), day)
				}
			}
			for _, p := range Eligible(people, a.Task, a.Day, acc) {
				if p.Skills.Len() < a.Person.Skills.Len() {
					rt.Fatalf("task %d went to person %d with %d skills; person %d has %d",
						a.Task.ID, a.Person.ID, a.Person.Skills.Len(), p.ID, p.Skills.Len())
				}
			}
			acc = acc.with(a)
		}
	})
}

func TestProperty_Deterministic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		people, tasks := drawInput(rt)
		first, err := Schedule(people, tasks)
		if err != nil {
			rt.Fatalf("Schedule: %v", err)
		}
		second, err := Schedule(people, tasks)
		if err != nil {
			rt.Fatalf("Schedule: %v", err)
		}
		if !reflect.DeepEqual(triples(first), triples(second)) {
			rt.Fatalf("runs differ: %v vs %v", triples(first), triples(second))
		}
	})
}
