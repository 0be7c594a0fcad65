// Package view is the portal's presentation layer: a server-rendered UI
// of HTMX partials over the typed API client. Handlers compose filters,
// run the dashboard aggregation and drive drafts; they own no domain
// logic of their own.
package view

import (
	"context"
	"html/template"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/2k1998/bwc-portal/internal/api"
	"github.com/2k1998/bwc-portal/internal/cache"
	"github.com/2k1998/bwc-portal/internal/core"
	"github.com/2k1998/bwc-portal/internal/i18n"
	"github.com/2k1998/bwc-portal/internal/log"
	"github.com/2k1998/bwc-portal/internal/session"
	"github.com/2k1998/bwc-portal/web"
)

// Backend is the slice of the API client the view layer consumes.
// Narrowing it to an interface keeps handlers testable against fakes.
type Backend interface {
	FetchDashboardData(ctx context.Context) (api.DashboardData, error)
	DashboardSummary(ctx context.Context) (api.SalesSummary, error)
	ListProjects(ctx context.Context, params url.Values) ([]core.Project, error)
	CreateProject(ctx context.Context, payload map[string]any) (core.Project, error)
	UpdateProject(ctx context.Context, id int64, payload map[string]any) (core.Project, error)
	AddProjectStatusUpdate(ctx context.Context, id int64, payload map[string]any) error
	FetchReference(ctx context.Context) (api.Reference, error)
	ListUsers(ctx context.Context) ([]core.User, error)
	CurrentUser(ctx context.Context) (core.User, error)
	UpdateUserRole(ctx context.Context, id int64, role core.Role) error
	SetUserActive(ctx context.Context, id int64, active bool) error
	DeleteUser(ctx context.Context, id int64) error
	UpdateTaskStatus(ctx context.Context, id int64, status core.TaskStatus) error
}

// Options tunes the server's caches and timeouts.
type Options struct {
	CacheSize      int
	CacheTTL       time.Duration
	FetchTimeout   time.Duration
	SessionWarning time.Duration
}

// DefaultOptions are used wherever an Options field is zero.
func DefaultOptions() Options {
	return Options{
		CacheSize:      100,
		CacheTTL:       2 * time.Minute,
		FetchTimeout:   10 * time.Second,
		SessionWarning: 5 * time.Minute,
	}
}

// Server renders the portal UI.
type Server struct {
	http.Server

	backend Backend
	sess    *session.Session
	bundle  *i18n.Bundle
	logger  *log.Logger
	opts    Options

	templates *template.Template
	limiter   *rateLimiter
	gens      *generations

	refCache      *cache.LRU[api.Reference]
	projectsCache *cache.LRU[[]core.Project]
	janitor       *cache.Janitor

	shutdownOnce sync.Once
}

// NewServer wires routes and templates and returns a ready-to-run server.
func NewServer(addr string, backend Backend, sess *session.Session, bundle *i18n.Bundle, logger *log.Logger, opts Options) (*Server, error) {
	defaults := DefaultOptions()
	if opts.CacheSize <= 0 {
		opts.CacheSize = defaults.CacheSize
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = defaults.CacheTTL
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = defaults.FetchTimeout
	}
	if opts.SessionWarning <= 0 {
		opts.SessionWarning = defaults.SessionWarning
	}

	mux := http.NewServeMux()
	s := &Server{
		Server:        http.Server{Addr: addr, Handler: mux},
		backend:       backend,
		sess:          sess,
		bundle:        bundle,
		logger:        logger.WithComponent(log.ComponentView),
		opts:          opts,
		limiter:       newRateLimiter(),
		gens:          newGenerations(),
		refCache:      cache.New[api.Reference](opts.CacheSize, opts.CacheTTL),
		projectsCache: cache.New[[]core.Project](opts.CacheSize, opts.CacheTTL),
	}
	s.janitor = cache.NewJanitor(s.refCache, s.projectsCache)
	s.janitor.Start(10 * time.Minute)

	funcs := template.FuncMap{
		// t resolves a UI string in the locale active at render time.
		"t": s.tr,
		"projectStatuses": func() []string {
			return []string{
				string(core.StatusPlanning), string(core.StatusInProgress),
				string(core.StatusCompleted), string(core.StatusOnHold),
				string(core.StatusCancelled),
			}
		},
		"projectTypes": func() []string {
			return []string{
				string(core.ProjectNewStore), string(core.ProjectRenovation),
				string(core.ProjectMaintenance), string(core.ProjectExpansion),
				string(core.ProjectOther),
			}
		},
	}
	t, err := template.New("portal").Funcs(funcs).ParseFS(web.TemplatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	s.templates = t

	static := http.StripPrefix("/static/", http.FileServer(http.FS(web.StaticFS)))
	mux.Handle("/static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		static.ServeHTTP(w, r)
	}))

	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", handleReady)
	mux.HandleFunc("/", s.withMiddleware(s.handleIndex))
	mux.HandleFunc("/ui/dashboard", s.withMiddleware(s.handleDashboard))
	mux.HandleFunc("/ui/projects", s.withMiddleware(s.handleProjectList))
	mux.HandleFunc("/projects", s.withMiddleware(s.handleCreateProject))
	mux.HandleFunc("/projects/update", s.withMiddleware(s.handleUpdateProject))
	mux.HandleFunc("/projects/status-update", s.withMiddleware(s.handleStatusUpdate))
	mux.HandleFunc("/tasks/status", s.withMiddleware(s.handleTaskStatus))
	mux.HandleFunc("/ui/users", s.withMiddleware(s.handleUserList))
	mux.HandleFunc("/users/role", s.withMiddleware(s.handleUserRole))
	mux.HandleFunc("/users/active", s.withMiddleware(s.handleUserActive))
	mux.HandleFunc("/users/delete", s.withMiddleware(s.handleUserDelete))
	mux.HandleFunc("/locale", s.withMiddleware(s.handleLocale))

	return s, nil
}

// Shutdown stops the background janitor and then the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.shutdownOnce.Do(func() {
		s.janitor.Stop()
		s.limiter.stop()
		err = s.Server.Shutdown(ctx)
	})
	return err
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// fetchCtx derives the bounded context every backend call runs under.
func (s *Server) fetchCtx(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), s.opts.FetchTimeout)
}

// currentUser returns the session user, fetching it once when absent.
func (s *Server) currentUser(ctx context.Context) (core.User, error) {
	if u := s.sess.User(); u != nil {
		return *u, nil
	}
	u, err := s.backend.CurrentUser(ctx)
	if err != nil {
		return core.User{}, err
	}
	s.sess.SetUser(&u)
	return u, nil
}

// tr resolves a UI string in the session locale.
func (s *Server) tr(key string) string {
	return s.bundle.T(s.sess.Locale(), key)
}
