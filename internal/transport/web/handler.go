// Package web serves the server-rendered notes UI: note pages, the
// credential forms, PDF download and the model listing.
package web

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/ainotes/internal/domain"
	"github.com/heartmarshall/ainotes/internal/service/export"
	"github.com/heartmarshall/ainotes/internal/service/note"
	"github.com/heartmarshall/ainotes/internal/transport/middleware"
	"github.com/heartmarshall/ainotes/pkg/ctxutil"

	authsvc "github.com/heartmarshall/ainotes/internal/service/auth"
)

// LoginPath is where the auth guard sends anonymous requests.
const LoginPath = "/login"

type noteService interface {
	List(ctx context.Context) ([]domain.Note, error)
	Get(ctx context.Context, id int64) (*domain.Note, error)
	Create(ctx context.Context, content string) (*domain.Note, error)
	Update(ctx context.Context, id int64, content string) error
	Delete(ctx context.Context, id int64) error
	Summarize(ctx context.Context, id int64) (note.SummaryOutcome, error)
	RenderContent(content string) (template.HTML, error)
}

type authService interface {
	Register(ctx context.Context, input authsvc.CredentialsInput) (domain.Identity, error)
	Login(ctx context.Context, input authsvc.CredentialsInput) (domain.Identity, error)
	Logout(ctx context.Context, id *domain.Identity)
}

type pdfExporter interface {
	ExportPDF(ctx context.Context) (*export.Document, error)
}

type sessionIssuer interface {
	Issue(id domain.Identity) (string, error)
	TTL() time.Duration
}

type modelLister interface {
	ListModels(ctx context.Context) ([]string, error)
}

// observer receives business events for metrics.
type observer interface {
	ObserveSummary(status string)
	ObserveExport(pages int)
}

// Deps groups the collaborators of Handler.
type Deps struct {
	Notes    noteService
	Auth     authService
	Export   pdfExporter
	Sessions sessionIssuer
	Models   modelLister
	Metrics  observer
}

// CookieOptions configures the session cookie.
type CookieOptions struct {
	Name   string
	Secure bool
}

// Handler serves the web UI.
type Handler struct {
	log      *slog.Logger
	notes    noteService
	auth     authService
	export   pdfExporter
	sessions sessionIssuer
	models   modelLister
	obs      observer
	cookie   CookieOptions
	views    *views
}

// NewHandler creates a Handler. It fails only if the embedded templates
// do not parse.
func NewHandler(logger *slog.Logger, deps Deps, cookie CookieOptions) (*Handler, error) {
	v, err := parseViews()
	if err != nil {
		return nil, err
	}
	obs := deps.Metrics
	if obs == nil {
		obs = nopObserver{}
	}
	return &Handler{
		log:      logger.With("handler", "web"),
		notes:    deps.Notes,
		auth:     deps.Auth,
		export:   deps.Export,
		sessions: deps.Sessions,
		models:   deps.Models,
		obs:      obs,
		cookie:   cookie,
		views:    v,
	}, nil
}

// Routes mounts the web routes on mux. guard wraps every route that
// needs a signed-in user; limit wraps the credential form posts.
func (h *Handler) Routes(mux *http.ServeMux, guard, limit middleware.Middleware) {
	mux.HandleFunc("GET /{$}", h.Index)
	mux.Handle("POST /{$}", guard(http.HandlerFunc(h.Create)))
	mux.Handle("POST /summarize/{id}", guard(http.HandlerFunc(h.Summarize)))
	mux.Handle("POST /delete/{id}", guard(http.HandlerFunc(h.Delete)))
	mux.Handle("GET /edit/{id}", guard(http.HandlerFunc(h.EditForm)))
	mux.Handle("POST /edit/{id}", guard(http.HandlerFunc(h.Edit)))
	mux.Handle("GET /export_pdf", guard(http.HandlerFunc(h.ExportPDF)))

	mux.HandleFunc("GET "+LoginPath, h.LoginForm)
	mux.Handle("POST "+LoginPath, limit(http.HandlerFunc(h.Login)))
	mux.HandleFunc("GET /register", h.RegisterForm)
	mux.Handle("POST /register", limit(http.HandlerFunc(h.Register)))
	mux.HandleFunc("GET /logout", h.Logout)

	mux.HandleFunc("GET /models", h.Models)
}

// page builds the common view model for the current request.
func (h *Handler) page(r *http.Request, title string) pageData {
	_, username, _ := ctxutil.UserFromCtx(r.Context())
	return pageData{Title: title, User: username}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, data pageData) {
	if err := h.views.render(w, status, name, data); err != nil {
		h.log.ErrorContext(r.Context(), "render page", slog.String("page", name), slog.String("error", err.Error()))
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// renderError shows the error page. 5xx statuses hide the cause from the
// client and log it instead.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, err error) {
	data := h.page(r, http.StatusText(status))
	data.Status = status

	switch {
	case status >= http.StatusInternalServerError:
		h.log.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", errString(err)))
		data.Message = "Something went wrong. Please try again."
	case status == http.StatusNotFound:
		data.Message = "The note you are looking for does not exist."
	default:
		data.Message = errString(err)
	}

	h.render(w, r, status, "error", data)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.renderError(w, r, http.StatusNotFound, domain.ErrNotFound)
}

// pathID parses the {id} wildcard. Anything that is not a positive
// integer is reported as not found.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// fieldErrors flattens a validation error for the templates.
func fieldErrors(err error) (map[string]string, bool) {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		return nil, false
	}
	out := make(map[string]string, len(ve.Errors))
	for _, fe := range ve.Errors {
		out[fe.Field] = fe.Field + " " + fe.Message
	}
	return out, true
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

type nopObserver struct{}

func (nopObserver) ObserveSummary(string) {}
func (nopObserver) ObserveExport(int)     {}
