package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/me/manpower/pkg/model"
)

// Locations names the reference files of a CSV data directory.
type Locations struct {
	Skills      string
	People      string
	SkillMatrix string
}

// DefaultLocations returns the standard file names.
func DefaultLocations() Locations {
	return Locations{
		Skills:      "skills.csv",
		People:      "people.csv",
		SkillMatrix: "skill_matrix.csv",
	}
}

// CSVSource loads a dataset from a directory of CSV files plus a task list.
type CSVSource struct {
	Dir       string
	Locations Locations
	TaskList  string // relative to Dir unless absolute
}

// ParseError reports a malformed CSV file or cell.
type ParseError struct {
	File   string
	Line   int
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: column %s: %v", e.File, e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (s *CSVSource) Name() string {
	return "csv:" + s.path(s.TaskList)
}

// Load reads skills, people, the skill matrix and the task list, in that
// order, and resolves them.
func (s *CSVSource) Load(ctx context.Context) (*model.Dataset, error) {
	var rec Records
	steps := []struct {
		file string
		read func(*table) error
	}{
		{s.Locations.Skills, func(t *table) error { return readSkills(t, &rec) }},
		{s.Locations.People, func(t *table) error { return readPeople(t, &rec) }},
		{s.Locations.SkillMatrix, func(t *table) error { return readMatrix(t, &rec) }},
		{s.TaskList, func(t *table) error { return readTasks(t, &rec) }},
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := readFile(s.path(step.file), step.read); err != nil {
			return nil, err
		}
	}
	return Resolve(rec)
}

func (s *CSVSource) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.Dir, name)
}

func readFile(path string, read func(*table) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	t, err := newTable(path, f)
	if err != nil {
		return err
	}
	return read(t)
}

// table reads a CSV stream whose first row is a header. Columns are looked up
// by name, case-insensitively, in any order.
type table struct {
	file    string
	r       *csv.Reader
	columns map[string]int
	row     []string
	line    int
}

func newTable(file string, r io.Reader) (*table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &ParseError{File: file, Line: 1, Err: errors.New("missing header")}
	}
	if err != nil {
		return nil, &ParseError{File: file, Line: 1, Err: err}
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}
	return &table{file: file, r: cr, columns: cols, line: 1}, nil
}

// require fails unless every named column is present in the header.
func (t *table) require(names ...string) error {
	for _, n := range names {
		if _, ok := t.columns[strings.ToLower(n)]; !ok {
			return &ParseError{File: t.file, Line: 1, Column: n, Err: errors.New("missing column")}
		}
	}
	return nil
}

// next advances to the following row and reports whether one was read.
func (t *table) next() (bool, error) {
	row, err := t.r.Read()
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	t.line++
	if err != nil {
		return false, &ParseError{File: t.file, Line: t.line, Err: err}
	}
	t.row = row
	return true, nil
}

func (t *table) str(col string) string {
	i := t.columns[strings.ToLower(col)]
	if i >= len(t.row) {
		return ""
	}
	return strings.TrimSpace(t.row[i])
}

func (t *table) intCol(col string) (int, error) {
	n, err := strconv.Atoi(t.str(col))
	if err != nil {
		return 0, &ParseError{File: t.file, Line: t.line, Column: col, Err: err}
	}
	return n, nil
}

func (t *table) boolCol(col string) (bool, error) {
	b, err := strconv.ParseBool(t.str(col))
	if err != nil {
		return false, &ParseError{File: t.file, Line: t.line, Column: col, Err: err}
	}
	return b, nil
}

func readSkills(t *table, rec *Records) error {
	if err := t.require("Id", "Name"); err != nil {
		return err
	}
	for {
		ok, err := t.next()
		if err != nil || !ok {
			return err
		}
		id, err := t.intCol("Id")
		if err != nil {
			return err
		}
		rec.Skills = append(rec.Skills, SkillRecord{ID: id, Name: t.str("Name")})
	}
}

func readPeople(t *table, rec *Records) error {
	if err := t.require("Id", "Name"); err != nil {
		return err
	}
	for {
		ok, err := t.next()
		if err != nil || !ok {
			return err
		}
		id, err := t.intCol("Id")
		if err != nil {
			return err
		}
		rec.People = append(rec.People, PersonRecord{ID: id, Name: t.str("Name")})
	}
}

func readMatrix(t *table, rec *Records) error {
	if err := t.require("PersonId", "SkillId"); err != nil {
		return err
	}
	for {
		ok, err := t.next()
		if err != nil || !ok {
			return err
		}
		personID, err := t.intCol("PersonId")
		if err != nil {
			return err
		}
		skillID, err := t.intCol("SkillId")
		if err != nil {
			return err
		}
		rec.SkillMatrix = append(rec.SkillMatrix, MatrixEntry{PersonID: personID, SkillID: skillID})
	}
}

func readTasks(t *table, rec *Records) error {
	if err := t.require("Id", "SkillRequired", "IsPriority"); err != nil {
		return err
	}
	for {
		ok, err := t.next()
		if err != nil || !ok {
			return err
		}
		id, err := t.intCol("Id")
		if err != nil {
			return err
		}
		skill, err := t.intCol("SkillRequired")
		if err != nil {
			return err
		}
		priority, err := t.boolCol("IsPriority")
		if err != nil {
			return err
		}
		rec.Tasks = append(rec.Tasks, TaskRecord{ID: id, SkillRequired: skill, IsPriority: priority})
	}
}
