// Package planner wires a data source to the scheduler and forwards the
// resulting schedule to one or more sinks.
package planner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/me/manpower/internal/dataset"
	"github.com/me/manpower/internal/scheduler"
	"github.com/me/manpower/pkg/model"
)

// Sink persists a computed schedule.
type Sink interface {
	Save(ctx context.Context, run *model.Run, assignments []model.Assignment) error
}

// Result is the outcome of one planning pass.
type Result struct {
	Run         *model.Run
	Dataset     *model.Dataset
	Assignments []model.Assignment
	Summary     scheduler.Summary
}

// Planner loads, schedules and saves.
type Planner struct {
	source dataset.Source
	sinks  []Sink
	logger *slog.Logger
	now    func() time.Time
}

// Option configures optional Planner behaviour.
type Option func(*Planner)

// WithSinks appends sinks, called in order after scheduling.
func WithSinks(sinks ...Sink) Option {
	return func(p *Planner) {
		p.sinks = append(p.sinks, sinks...)
	}
}

// WithClock overrides the run timestamp source.
func WithClock(now func() time.Time) Option {
	return func(p *Planner) {
		p.now = now
	}
}

// New creates a Planner. source may be nil when only PlanDataset is used.
func New(source dataset.Source, logger *slog.Logger, opts ...Option) *Planner {
	p := &Planner{
		source: source,
		logger: logger.With("component", "planner"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run loads the dataset from the source and plans it. A loader failure
// aborts before anything is scheduled.
func (p *Planner) Run(ctx context.Context) (*Result, error) {
	if p.source == nil {
		return nil, fmt.Errorf("planner has no source")
	}
	p.logger.Debug("loading", "source", p.source.Name())
	ds, err := p.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", p.source.Name(), err)
	}
	return p.PlanDataset(ctx, ds, p.source.Name())
}

// PlanDataset schedules an already resolved dataset and saves the result to
// every sink. sourceName is recorded on the run.
func (p *Planner) PlanDataset(ctx context.Context, ds *model.Dataset, sourceName string) (*Result, error) {
	p.logger.Info("scheduling", "source", sourceName,
		"skills", len(ds.Skills), "people", len(ds.People), "tasks", len(ds.Tasks))

	start := time.Now()
	assignments, err := scheduler.Schedule(ds.People, ds.Tasks)
	if err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}
	for _, a := range assignments {
		p.logger.Debug("placed", "task_id", a.Task.ID, "person_id", a.Person.ID, "day", a.Day)
	}

	summary := scheduler.Summarize(assignments)
	run := &model.Run{
		ID:          "run_" + uuid.New().String(),
		Source:      sourceName,
		TaskCount:   summary.Tasks,
		PeopleCount: len(ds.People),
		DayCount:    summary.Days,
		CreatedAt:   p.now().UTC(),
	}
	p.logger.Info("scheduled", "run_id", run.ID, "tasks", run.TaskCount,
		"days", run.DayCount, "duration", time.Since(start).String())

	for _, sink := range p.sinks {
		if err := sink.Save(ctx, run, assignments); err != nil {
			return nil, fmt.Errorf("save run %s: %w", run.ID, err)
		}
	}

	return &Result{Run: run, Dataset: ds, Assignments: assignments, Summary: summary}, nil
}
