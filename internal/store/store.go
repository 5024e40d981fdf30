package store

import (
	"context"

	"github.com/me/manpower/pkg/model"
)

// Store persists computed schedules and serves them back.
type Store interface {
	// Save records a run and its assignments atomically, keeping their order.
	Save(ctx context.Context, run *model.Run, assignments []model.Assignment) error

	// GetRun returns nil, nil when the run does not exist.
	GetRun(ctx context.Context, id string) (*model.Run, error)
	ListRuns(ctx context.Context, opts model.ListOptions) ([]*model.Run, int, error)
	ListAssignments(ctx context.Context, runID string) ([]model.AssignmentRecord, error)

	// Lifecycle
	Close() error
	Migrate(ctx context.Context) error
}
