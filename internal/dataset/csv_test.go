package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/me/manpower/pkg/model"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

func baseFiles() map[string]string {
	return map[string]string{
		"skills.csv":       "Id,Name\n1,Welding\n2,Plumbing\n",
		"people.csv":       "Id,Name\n1,Alice\n2,Bob\n",
		"skill_matrix.csv": "PersonId,SkillId\n1,1\n2,1\n2,2\n",
		"tasks.csv":        "Id,SkillRequired,IsPriority\n1,1,false\n2,1,True\n",
	}
}

func testSource(dir string) *CSVSource {
	return &CSVSource{Dir: dir, Locations: DefaultLocations(), TaskList: "tasks.csv"}
}

func TestCSVSource_Load(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, baseFiles())

	ds, err := testSource(dir).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(ds.Skills) != 2 || len(ds.People) != 2 || len(ds.Tasks) != 2 {
		t.Fatalf("counts = %d/%d/%d", len(ds.Skills), len(ds.People), len(ds.Tasks))
	}
	if ds.People[1].Skills.Len() != 2 {
		t.Errorf("Bob skills = %v", ds.People[1].Skills.IDs())
	}
	if !ds.Tasks[1].IsPriority {
		t.Errorf("task 2 priority not parsed from %q", "True")
	}
}

func TestCSVSource_HeaderCaseAndOrder(t *testing.T) {
	dir := t.TempDir()
	files := baseFiles()
	files["tasks.csv"] = "ispriority, skillrequired, ID\n1,2,7\n"
	writeFiles(t, dir, files)

	ds, err := testSource(dir).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	tk := ds.Tasks[0]
	if tk.ID != 7 || tk.SkillRequired.ID != 2 || !tk.IsPriority {
		t.Errorf("task = {%d %d %v}, want {7 2 true}", tk.ID, tk.SkillRequired.ID, tk.IsPriority)
	}
}

func TestCSVSource_AbsoluteTaskList(t *testing.T) {
	dir := t.TempDir()
	files := baseFiles()
	delete(files, "tasks.csv")
	writeFiles(t, dir, files)

	other := t.TempDir()
	writeFiles(t, other, map[string]string{"week.csv": "Id,SkillRequired,IsPriority\n1,2,false\n"})

	src := &CSVSource{Dir: dir, Locations: DefaultLocations(), TaskList: filepath.Join(other, "week.csv")}
	ds, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(ds.Tasks) != 1 {
		t.Errorf("tasks = %d, want 1", len(ds.Tasks))
	}
	if !strings.HasSuffix(src.Name(), "week.csv") {
		t.Errorf("Name() = %q", src.Name())
	}
}

func TestCSVSource_ReferentialIntegrity(t *testing.T) {
	dir := t.TempDir()
	files := baseFiles()
	files["skill_matrix.csv"] = "PersonId,SkillId\n1,1\n3,1\n"
	writeFiles(t, dir, files)

	_, err := testSource(dir).Load(context.Background())
	var ref *model.ReferentialIntegrityError
	if !errors.As(err, &ref) {
		t.Fatalf("err = %v, want ReferentialIntegrityError", err)
	}
	if ref.Field != "PersonId" || ref.ID != 3 {
		t.Errorf("err = %+v", ref)
	}
}

func TestCSVSource_ParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantCol string
		line    int
	}{
		{"bad int", "skills.csv", "Id,Name\n1,Welding\nx,Plumbing\n", "Id", 3},
		{"bad bool", "tasks.csv", "Id,SkillRequired,IsPriority\n1,1,maybe\n", "IsPriority", 2},
		{"missing column", "people.csv", "Id\n1\n", "Name", 1},
		{"empty file", "skill_matrix.csv", "", "", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			files := baseFiles()
			files[tt.file] = tt.content
			writeFiles(t, dir, files)

			_, err := testSource(dir).Load(context.Background())
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("err = %v, want ParseError", err)
			}
			if pe.Column != tt.wantCol || pe.Line != tt.line {
				t.Errorf("err = %v, want column %q line %d", pe, tt.wantCol, tt.line)
			}
			if filepath.Base(pe.File) != tt.file {
				t.Errorf("File = %q, want %s", pe.File, tt.file)
			}
		})
	}
}

func TestCSVSource_MissingFile(t *testing.T) {
	dir := t.TempDir()
	files := baseFiles()
	delete(files, "people.csv")
	writeFiles(t, dir, files)

	_, err := testSource(dir).Load(context.Background())
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want not-exist", err)
	}
}

func TestCSVSource_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := testSource(t.TempDir()).Load(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
