package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/me/manpower/internal/dataset"
	"github.com/me/manpower/internal/planner"
	"github.com/me/manpower/internal/scheduler"
	"github.com/me/manpower/pkg/model"
)

// maxDatasetBytes bounds the request body of POST /schedules.
const maxDatasetBytes = 8 << 20

type assignmentView struct {
	Day        int    `json:"day"`
	TaskID     int    `json:"task_id"`
	SkillID    int    `json:"skill_id"`
	PersonID   int    `json:"person_id"`
	PersonName string `json:"person_name"`
	IsPriority bool   `json:"is_priority"`
}

type scheduleResponse struct {
	Run         *model.Run         `json:"run,omitempty"`
	Assignments []assignmentView   `json:"assignments"`
	Summary     *scheduler.Summary `json:"summary,omitempty"`
}

type storedScheduleResponse struct {
	Run         *model.Run               `json:"run"`
	Assignments []model.AssignmentRecord `json:"assignments"`
}

func viewsOf(assignments []model.Assignment) []assignmentView {
	views := make([]assignmentView, len(assignments))
	for i, a := range assignments {
		views[i] = assignmentView{
			Day:        a.Day,
			TaskID:     a.Task.ID,
			SkillID:    a.Task.SkillID(),
			PersonID:   a.Person.ID,
			PersonName: a.Person.Name,
			IsPriority: a.Task.IsPriority,
		}
	}
	return views
}

func (s *Server) handleCreateSchedule(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	var rec dataset.Records
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxDatasetBytes)).Decode(&rec); err != nil {
		respondError(w, reqID, http.StatusBadRequest, &model.APIError{
			Code:    model.ErrValidation,
			Message: "Invalid JSON body: " + err.Error(),
		})
		return
	}
	if len(rec.Tasks) == 0 {
		respondError(w, reqID, http.StatusBadRequest,
			model.NewValidationError("missing required field",
				model.FieldError{Field: "tasks", Message: "at least one task is required"}))
		return
	}

	ds, err := dataset.Resolve(rec)
	if err != nil {
		respondError(w, reqID, http.StatusBadRequest, model.NewValidationError(err.Error()))
		return
	}

	var opts []planner.Option
	dryRun := r.URL.Query().Get("dry_run") == "true"
	if !dryRun && s.store != nil {
		opts = append(opts, planner.WithSinks(s.store))
	}
	res, err := planner.New(nil, s.logger, opts...).PlanDataset(r.Context(), ds, "api")
	if err != nil {
		var unsat *model.UnsatisfiableTaskError
		if errors.As(err, &unsat) {
			respondError(w, reqID, http.StatusUnprocessableEntity, &model.APIError{
				Code:    model.ErrUnsatisfiable,
				Message: unsat.Error(),
				Details: []model.FieldError{{Field: "tasks", Message: "task " + strconv.Itoa(unsat.TaskID)}},
			})
			return
		}
		respondError(w, reqID, http.StatusInternalServerError,
			&model.APIError{Code: model.ErrInternal, Message: err.Error()})
		return
	}

	resp := scheduleResponse{Assignments: viewsOf(res.Assignments), Summary: &res.Summary}
	if dryRun {
		respondOK(w, reqID, resp)
		return
	}
	resp.Run = res.Run
	respondCreated(w, reqID, resp)
}

func (s *Server) handleListSchedules(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	if s.store == nil {
		respondList(w, reqID, []*model.Run{}, model.PageOf(model.DefaultListOptions(), 0, 0))
		return
	}

	opts := model.DefaultListOptions()
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			opts.Limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			opts.Offset = n
		}
	}
	opts.Clamp()

	runs, total, err := s.store.ListRuns(r.Context(), opts)
	if err != nil {
		respondError(w, reqID, http.StatusInternalServerError,
			&model.APIError{Code: model.ErrInternal, Message: err.Error()})
		return
	}
	if runs == nil {
		runs = []*model.Run{}
	}
	respondList(w, reqID, runs, model.PageOf(opts, len(runs), total))
}

func (s *Server) handleGetSchedule(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	id := chi.URLParam(r, "id")
	if s.store == nil {
		respondError(w, reqID, http.StatusNotFound, model.NewNotFoundError("schedule", id))
		return
	}

	run, err := s.store.GetRun(r.Context(), id)
	if err != nil {
		respondError(w, reqID, http.StatusInternalServerError,
			&model.APIError{Code: model.ErrInternal, Message: err.Error()})
		return
	}
	if run == nil {
		respondError(w, reqID, http.StatusNotFound, model.NewNotFoundError("schedule", id))
		return
	}

	records, err := s.store.ListAssignments(r.Context(), id)
	if err != nil {
		respondError(w, reqID, http.StatusInternalServerError,
			&model.APIError{Code: model.ErrInternal, Message: err.Error()})
		return
	}
	if records == nil {
		records = []model.AssignmentRecord{}
	}
	respondOK(w, reqID, storedScheduleResponse{Run: run, Assignments: records})
}
