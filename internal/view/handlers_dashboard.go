package view

import (
	"net/http"
	"strconv"
	"time"

	"github.com/2k1998/bwc-portal/internal/api"
	"github.com/2k1998/bwc-portal/internal/core"
	"github.com/2k1998/bwc-portal/internal/dashboard"
	applog "github.com/2k1998/bwc-portal/internal/log"
)

const viewDashboard = "dashboard"

// dashboardView is the template model for the dashboard partial.
type dashboardView struct {
	Tasks    dashboard.TaskBuckets
	Payments dashboard.PaymentSummary
	Sales    *api.SalesSummary

	SessionExpiring bool
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	data := struct {
		Locale  string
		Locales []string
	}{
		Locale:  s.sess.Locale(),
		Locales: s.bundle.Locales(),
	}
	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		s.logger.ErrorContext(r.Context(), "index template failed", applog.FieldError, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleDashboard renders the dashboard partial. Each request bumps the
// view generation; if a newer refresh starts while this one is still
// fetching, the response is discarded with 204 so the fresher render
// keeps the screen.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	gen := s.gens.next(viewDashboard)

	ctx, cancel := s.fetchCtx(r)
	defer cancel()

	data, err := s.backend.FetchDashboardData(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "dashboard fetch failed", applog.FieldError, err)
		s.renderError(w, http.StatusBadGateway)
		return
	}

	// The sales summary is decorative on this page; its failure must not
	// blank the task and payment panels.
	var sales *api.SalesSummary
	if summary, err := s.backend.DashboardSummary(ctx); err != nil {
		s.logger.WarnContext(ctx, "sales summary unavailable", applog.FieldError, err)
	} else {
		sales = &summary
	}

	if s.gens.stale(viewDashboard, gen) {
		s.logger.InfoContext(ctx, "stale dashboard response discarded", applog.FieldView, viewDashboard, applog.FieldGeneration, gen)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	view := dashboardView{
		Tasks:           dashboard.CategorizeTasks(data.Tasks),
		Payments:        dashboard.SummarizePayments(data.Payments, time.Now()),
		Sales:           sales,
		SessionExpiring: s.sess.ExpiresWithin(time.Now(), s.opts.SessionWarning),
	}
	if err := s.templates.ExecuteTemplate(w, "dashboard.html", view); err != nil {
		s.logger.ErrorContext(ctx, "dashboard template failed", applog.FieldError, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleTaskStatus moves a task to a new workflow status and re-renders
// the dashboard partial.
func (s *Server) handleTaskStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	id, err := strconv.ParseInt(r.FormValue("task_id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid task id", http.StatusBadRequest)
		return
	}
	status := core.TaskStatus(r.FormValue("status"))
	if !status.Valid() {
		http.Error(w, "invalid task status", http.StatusBadRequest)
		return
	}

	ctx, cancel := s.fetchCtx(r)
	defer cancel()
	if err := s.backend.UpdateTaskStatus(ctx, id, status); err != nil {
		s.logger.ErrorContext(ctx, "task status update failed", applog.FieldError, err, applog.FieldTaskID, id)
		s.renderError(w, http.StatusBadGateway)
		return
	}

	s.handleDashboard(w, r)
}

// handleLocale switches the UI language for the whole session.
func (s *Server) handleLocale(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	locale := r.FormValue("locale")
	known := false
	for _, l := range s.bundle.Locales() {
		if l == locale {
			known = true
			break
		}
	}
	if !known {
		http.Error(w, "unknown locale", http.StatusBadRequest)
		return
	}
	s.sess.SetLocale(locale)
	w.Header().Set("HX-Refresh", "true")
	w.WriteHeader(http.StatusNoContent)
}

// renderError writes a localized failure notice with the given status.
func (s *Server) renderError(w http.ResponseWriter, status int) {
	http.Error(w, s.tr("error.load_failed"), status)
}
