package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/me/manpower/pkg/model"
)

const yamlDataset = `
skills:
  - {id: 1, name: Welding}
  - {id: 2, name: Plumbing}
people:
  - {id: 1, name: Alice, skills: [1]}
  - {id: 2, name: Bob, skills: [1]}
skill_matrix:
  - {person_id: 2, skill_id: 2}
tasks:
  - {id: 1, skill_required: 1}
  - {id: 2, skill_required: 1, is_priority: true}
`

const jsonDataset = `{
  "skills": [{"id": 1, "name": "Welding"}],
  "people": [{"id": 1, "name": "Alice", "skills": [1]}],
  "tasks": [{"id": 1, "skill_required": 1, "is_priority": true}]
}`

func TestFileSource_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crew.yaml")
	if err := os.WriteFile(path, []byte(yamlDataset), 0o644); err != nil {
		t.Fatal(err)
	}

	ds, err := (&FileSource{Path: path}).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(ds.People) != 2 || ds.People[1].Skills.Len() != 2 {
		t.Fatalf("people = %v", ds.People)
	}
	if !ds.Tasks[1].IsPriority {
		t.Error("task 2 should be priority")
	}
}

func TestFileSource_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crew.json")
	if err := os.WriteFile(path, []byte(jsonDataset), 0o644); err != nil {
		t.Fatal(err)
	}

	src := &FileSource{Path: path}
	ds, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(ds.Tasks) != 1 || ds.Tasks[0].SkillRequired.Name != "Welding" {
		t.Errorf("tasks = %v", ds.Tasks)
	}
	if src.Name() != "file:"+path {
		t.Errorf("Name() = %q", src.Name())
	}
}

func TestFileSource_UnknownSkill(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crew.yml")
	doc := "skills: [{id: 1, name: Welding}]\npeople: []\ntasks: [{id: 1, skill_required: 4}]\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := (&FileSource{Path: path}).Load(context.Background())
	var ref *model.ReferentialIntegrityError
	if !errors.As(err, &ref) || ref.ID != 4 {
		t.Fatalf("err = %v, want ReferentialIntegrityError for skill 4", err)
	}
}

func TestParseRecords_Invalid(t *testing.T) {
	if _, err := ParseRecords([]byte("{not json"), ".json"); err == nil {
		t.Error("expected JSON error")
	}
	if _, err := ParseRecords([]byte("skills: [unterminated"), ".yaml"); err == nil {
		t.Error("expected YAML error")
	}
}
