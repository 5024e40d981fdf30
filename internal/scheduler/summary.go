package scheduler

import "github.com/me/manpower/pkg/model"

// Summary aggregates a schedule for reporting.
type Summary struct {
	Tasks     int         `json:"tasks"`
	Days      int         `json:"days"`
	PerPerson map[int]int `json:"per_person"` // person ID -> tasks assigned
	PerDay    map[int]int `json:"per_day"`    // day -> tasks assigned
}

// Summarize counts assignments per person and per day. Days is the latest
// day used, or 0 for an empty schedule.
func Summarize(assignments []model.Assignment) Summary {
	s := Summary{
		Tasks:     len(assignments),
		PerPerson: make(map[int]int),
		PerDay:    make(map[int]int),
	}
	for _, a := range assignments {
		s.PerPerson[a.Person.ID]++
		s.PerDay[a.Day]++
		if a.Day > s.Days {
			s.Days = a.Day
		}
	}
	return s
}
