// Package scheduler assigns tasks to people over sequential days.
//
// The algorithm is greedy and single-pass: tasks are placed one at a time,
// priority tasks first, each on the earliest day on which some qualifying
// person is still free. Nothing is revisited once placed.
package scheduler

import (
	"fmt"

	"github.com/me/manpower/pkg/model"
)

// Schedule returns one assignment per task, in placement order.
//
// people and tasks are read-only. Schedule returns a
// *model.UnsatisfiableTaskError as soon as it reaches a task whose required
// skill nobody holds.
func Schedule(people []*model.Person, tasks []*model.Task) ([]model.Assignment, error) {
	acc := newBookings(len(tasks))
	held := holderIndex(people)

	for _, task := range ByPriority(tasks) {
		if !held.has(task) {
			return nil, &model.UnsatisfiableTaskError{TaskID: task.ID, SkillID: task.SkillID()}
		}
		a, err := place(people, task, acc)
		if err != nil {
			return nil, err
		}
		acc = acc.with(a)
	}
	return acc.assignments, nil
}

// place finds the earliest day with an eligible person for task, given the
// placements made so far.
//
// Every holder of the skill is booked on at most len(acc.assignments) days,
// so some day up to len(acc.assignments)+1 is free for them.
func place(people []*model.Person, task *model.Task, acc bookings) (model.Assignment, error) {
	limit := len(acc.assignments) + 1
	for day := 1; day <= limit; day++ {
		if p := Narrowest(Eligible(people, task, day, acc)); p != nil {
			return model.Assignment{Day: day, Person: p, Task: task}, nil
		}
	}
	return model.Assignment{}, fmt.Errorf("task %d: no free person within %d days", task.ID, limit)
}

// bookings is the accumulator threaded through placement: the schedule built
// so far and, per day, the IDs of the people already booked.
type bookings struct {
	assignments []model.Assignment
	byDay       map[int]map[int]struct{}
}

func newBookings(capacity int) bookings {
	return bookings{
		assignments: make([]model.Assignment, 0, capacity),
		byDay:       make(map[int]map[int]struct{}),
	}
}

// with records a and returns the updated accumulator.
func (b bookings) with(a model.Assignment) bookings {
	booked, ok := b.byDay[a.Day]
	if !ok {
		booked = make(map[int]struct{})
		b.byDay[a.Day] = booked
	}
	booked[a.Person.ID] = struct{}{}
	b.assignments = append(b.assignments, a)
	return b
}

// Booked reports whether the person already has a task on day.
func (b bookings) Booked(personID, day int) bool {
	_, ok := b.byDay[day][personID]
	return ok
}
