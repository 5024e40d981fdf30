package dataset

import "github.com/me/manpower/pkg/model"

// Resolve builds a dataset from raw records: skills first, then people with
// their skills, then tasks. It fails with *model.DuplicateIDError or
// *model.ReferentialIntegrityError and never returns a partial dataset.
func Resolve(rec Records) (*model.Dataset, error) {
	ds := &model.Dataset{}

	skillsByID := make(map[int]*model.Skill, len(rec.Skills))
	for _, r := range rec.Skills {
		if _, dup := skillsByID[r.ID]; dup {
			return nil, &model.DuplicateIDError{Entity: "skill", ID: r.ID}
		}
		s := &model.Skill{ID: r.ID, Name: r.Name}
		skillsByID[s.ID] = s
		ds.Skills = append(ds.Skills, s)
	}

	peopleByID := make(map[int]*model.Person, len(rec.People))
	for _, r := range rec.People {
		if _, dup := peopleByID[r.ID]; dup {
			return nil, &model.DuplicateIDError{Entity: "person", ID: r.ID}
		}
		p := &model.Person{ID: r.ID, Name: r.Name, Skills: make(model.SkillSet)}
		peopleByID[p.ID] = p
		ds.People = append(ds.People, p)
	}

	// Second pass: inline skill lists, then the matrix.
	for _, r := range rec.People {
		for _, id := range r.Skills {
			s, ok := skillsByID[id]
			if !ok {
				return nil, &model.ReferentialIntegrityError{Source: "people list", Field: "SkillId", ID: id}
			}
			peopleByID[r.ID].Skills.Add(s)
		}
	}
	for _, e := range rec.SkillMatrix {
		p, ok := peopleByID[e.PersonID]
		if !ok {
			return nil, &model.ReferentialIntegrityError{Source: "skills matrix", Field: "PersonId", ID: e.PersonID}
		}
		s, ok := skillsByID[e.SkillID]
		if !ok {
			return nil, &model.ReferentialIntegrityError{Source: "skills matrix", Field: "SkillId", ID: e.SkillID}
		}
		p.Skills.Add(s)
	}

	seenTask := make(map[int]bool, len(rec.Tasks))
	for _, r := range rec.Tasks {
		if seenTask[r.ID] {
			return nil, &model.DuplicateIDError{Entity: "task", ID: r.ID}
		}
		seenTask[r.ID] = true
		s, ok := skillsByID[r.SkillRequired]
		if !ok {
			return nil, &model.ReferentialIntegrityError{Source: "task list", Field: "SkillRequired", ID: r.SkillRequired}
		}
		ds.Tasks = append(ds.Tasks, &model.Task{ID: r.ID, SkillRequired: s, IsPriority: r.IsPriority})
	}

	return ds, nil
}
