package view

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/2k1998/bwc-portal/internal/api"
	"github.com/2k1998/bwc-portal/internal/core"
	"github.com/2k1998/bwc-portal/internal/form"
	applog "github.com/2k1998/bwc-portal/internal/log"
	"github.com/2k1998/bwc-portal/internal/query"
)

const viewProjects = "projects"

const referenceKey = "reference"

// projectsView is the template model for the project list partial.
type projectsView struct {
	Projects  []core.Project
	Filter    query.ProjectFilter
	Companies []core.Company
	Users     []core.User
}

// projectFormView is the template model for the create/edit form partial.
type projectFormView struct {
	Draft     form.ProjectDraft
	Errors    form.Errors
	Companies []core.Company
	Users     []core.User
	Saved     bool
}

// filterFromRequest rebuilds the filter state from query parameters.
// Absent parameters mean the sentinel defaults; reset=1 restores
// everything at once.
func filterFromRequest(r *http.Request) query.ProjectFilter {
	f := query.Default()
	if r.URL.Query().Get("reset") == "1" {
		return f
	}
	q := r.URL.Query()
	if v := q.Get("status"); v != "" {
		f.Status = v
	}
	if v := q.Get("project_type"); v != "" {
		f.Type = v
	}
	if v := q.Get("company_id"); v != "" {
		f.Company = v
	}
	f.Search = q.Get("search")
	if v := q.Get("sort_by"); v != "" {
		f.SortBy = v
	}
	if v := q.Get("sort_dir"); v != "" {
		f.SortDir = query.SortDirection(v)
	}
	return f
}

// handleProjectList renders the filtered project list. Results are
// cached per encoded filter; a write anywhere purges the whole cache.
func (s *Server) handleProjectList(w http.ResponseWriter, r *http.Request) {
	gen := s.gens.next(viewProjects)
	filter := filterFromRequest(r)
	params := filter.Params()
	key := params.Encode()

	ctx, cancel := s.fetchCtx(r)
	defer cancel()

	projects, ok := s.projectsCache.Get(key)
	if !ok {
		var err error
		projects, err = s.backend.ListProjects(ctx, params)
		if err != nil {
			s.logger.ErrorContext(ctx, "project list fetch failed", applog.FieldError, err, "filter", key)
			s.renderError(w, http.StatusBadGateway)
			return
		}
		s.projectsCache.Set(key, projects)
	}

	ref, err := s.reference(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "reference fetch failed", applog.FieldError, err)
		s.renderError(w, http.StatusBadGateway)
		return
	}

	if s.gens.stale(viewProjects, gen) {
		s.logger.InfoContext(ctx, "stale project list discarded", applog.FieldView, viewProjects, applog.FieldGeneration, gen)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	view := projectsView{
		Projects:  projects,
		Filter:    filter,
		Companies: ref.Companies,
		Users:     ref.Users,
	}
	if err := s.templates.ExecuteTemplate(w, "projects.html", view); err != nil {
		s.logger.ErrorContext(ctx, "projects template failed", applog.FieldError, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	draft, errs := draftFromForm(r)
	s.saveProject(w, r, draft, errs, func(ctx context.Context) (core.Project, error) {
		return s.backend.CreateProject(ctx, draft.Payload())
	})
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	draft, errs := draftFromForm(r)
	if draft.ID == 0 {
		http.Error(w, "invalid project id", http.StatusBadRequest)
		return
	}
	s.saveProject(w, r, draft, errs, func(ctx context.Context) (core.Project, error) {
		return s.backend.UpdateProject(ctx, draft.ID, draft.Payload())
	})
}

// saveProject validates the draft, runs the given write and re-renders
// the form. Validation failures render every field error at once and
// never reach the backend.
func (s *Server) saveProject(w http.ResponseWriter, r *http.Request, draft form.ProjectDraft, errs form.Errors, write func(context.Context) (core.Project, error)) {
	ctx, cancel := s.fetchCtx(r)
	defer cancel()

	ref, refErr := s.reference(ctx)
	if refErr != nil {
		s.logger.WarnContext(ctx, "reference fetch failed", applog.FieldError, refErr)
	}

	for field, msg := range draft.Validate() {
		errs[field] = msg
	}
	if !errs.OK() {
		w.WriteHeader(http.StatusUnprocessableEntity)
		s.renderProjectForm(w, r, projectFormView{Draft: draft, Errors: errs, Companies: ref.Companies, Users: ref.Users})
		return
	}

	saved, err := write(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "project save failed", applog.FieldError, err, applog.FieldProjectID, draft.ID)
		s.renderError(w, http.StatusBadGateway)
		return
	}

	s.projectsCache.Purge()
	w.Header().Set("HX-Trigger", "projects-changed")
	s.renderProjectForm(w, r, projectFormView{
		Draft:     form.DraftFromProject(saved),
		Errors:    form.Errors{},
		Companies: ref.Companies,
		Users:     ref.Users,
		Saved:     true,
	})
}

func (s *Server) renderProjectForm(w http.ResponseWriter, r *http.Request, view projectFormView) {
	if err := s.templates.ExecuteTemplate(w, "project_form.html", view); err != nil {
		s.logger.ErrorContext(r.Context(), "project form template failed", applog.FieldError, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleStatusUpdate posts a progress note against a project.
func (s *Server) handleStatusUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	projectID, err := strconv.ParseInt(r.FormValue("project_id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid project id", http.StatusBadRequest)
		return
	}
	progress, _ := strconv.Atoi(r.FormValue("progress_percentage"))
	draft := form.StatusUpdateDraft{
		ProjectID:          projectID,
		Status:             r.FormValue("status"),
		ProgressPercentage: progress,
		Notes:              r.FormValue("notes"),
	}
	if errs := draft.Validate(); !errs.OK() {
		http.Error(w, errs.Join(), http.StatusUnprocessableEntity)
		return
	}

	ctx, cancel := s.fetchCtx(r)
	defer cancel()
	if err := s.backend.AddProjectStatusUpdate(ctx, projectID, draft.Payload()); err != nil {
		s.logger.ErrorContext(ctx, "status update failed", applog.FieldError, err, applog.FieldProjectID, projectID)
		s.renderError(w, http.StatusBadGateway)
		return
	}

	s.projectsCache.Purge()
	w.Header().Set("HX-Trigger", "projects-changed")
	w.WriteHeader(http.StatusNoContent)
}

// reference returns the cached company and user lists, fetching both
// together when the cache is cold. The pair is all-or-nothing.
func (s *Server) reference(ctx context.Context) (api.Reference, error) {
	if ref, ok := s.refCache.Get(referenceKey); ok {
		return ref, nil
	}
	ref, err := s.backend.FetchReference(ctx)
	if err != nil {
		return api.Reference{}, err
	}
	s.refCache.Set(referenceKey, ref)
	return ref, nil
}

// draftFromForm reads the submitted project form. Malformed dates are
// reported as field errors; empty date inputs stay zero and later
// serialize as null.
func draftFromForm(r *http.Request) (form.ProjectDraft, form.Errors) {
	errs := form.Errors{}
	if err := r.ParseForm(); err != nil {
		errs["form"] = "could not parse form"
		return form.ProjectDraft{}, errs
	}

	id, _ := strconv.ParseInt(r.FormValue("id"), 10, 64)
	progress, _ := strconv.Atoi(strings.TrimSpace(r.FormValue("progress_percentage")))
	d := form.ProjectDraft{
		ID:                 id,
		Name:               r.FormValue("name"),
		Description:        r.FormValue("description"),
		Type:               r.FormValue("project_type"),
		Status:             r.FormValue("status"),
		CompanyID:          r.FormValue("company_id"),
		ProjectManagerID:   r.FormValue("project_manager_id"),
		StoreLocation:      r.FormValue("store_location"),
		StoreAddress:       r.FormValue("store_address"),
		EstimatedBudget:    r.FormValue("estimated_budget"),
		ActualCost:         r.FormValue("actual_cost"),
		ProgressPercentage: progress,
		Notes:              r.FormValue("notes"),
	}

	d.StartDate = parseDateField(r.FormValue("start_date"), "start_date", errs)
	d.ExpectedCompletionDate = parseDateField(r.FormValue("expected_completion_date"), "expected_completion_date", errs)
	d.ActualCompletionDate = parseDateField(r.FormValue("actual_completion_date"), "actual_completion_date", errs)
	return d, errs
}

func parseDateField(raw, field string, errs form.Errors) core.Date {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return core.Date{}
	}
	d, err := core.ParseDate(raw)
	if err != nil {
		errs[field] = "invalid date"
		return core.Date{}
	}
	return d
}
