package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/me/manpower/pkg/model"
)

// CSVSink writes a schedule to a CSV file, replacing any previous content.
type CSVSink struct {
	Path string
}

// Save writes the assignments in the order given.
func (s *CSVSink) Save(ctx context.Context, run *model.Run, assignments []model.Assignment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("create %s: %w", s.Path, err)
	}
	if err := WriteAssignments(f, assignments); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", s.Path, err)
	}
	return f.Close()
}

// WriteAssignments writes a TaskId,PersonId,Day header followed by one row
// per assignment.
func WriteAssignments(w io.Writer, assignments []model.Assignment) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"TaskId", "PersonId", "Day"}); err != nil {
		return err
	}
	for _, a := range assignments {
		r := a.Record()
		row := []string{strconv.Itoa(r.TaskID), strconv.Itoa(r.PersonID), strconv.Itoa(r.Day)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
