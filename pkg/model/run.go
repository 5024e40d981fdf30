package model

import "time"

// Run is the metadata of one computed and persisted schedule.
type Run struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	TaskCount   int       `json:"task_count"`
	PeopleCount int       `json:"people_count"`
	DayCount    int       `json:"day_count"`
	CreatedAt   time.Time `json:"created_at"`
}
