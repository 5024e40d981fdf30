package model

// Assignment binds one task to one person on one day. Days start at 1.
type Assignment struct {
	Day    int
	Person *Person
	Task   *Task
}

// Record flattens the assignment to the identifiers persisted by sinks.
func (a Assignment) Record() AssignmentRecord {
	return AssignmentRecord{
		TaskID:   a.Task.ID,
		PersonID: a.Person.ID,
		Day:      a.Day,
	}
}

// AssignmentRecord is the persisted form of an Assignment.
type AssignmentRecord struct {
	TaskID   int `json:"task_id"`
	PersonID int `json:"person_id"`
	Day      int `json:"day"`
}

// Records converts a schedule to its persisted form, keeping order.
func Records(assignments []Assignment) []AssignmentRecord {
	out := make([]AssignmentRecord, len(assignments))
	for i, a := range assignments {
		out[i] = a.Record()
	}
	return out
}
