package web

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/ainotes/internal/domain"
	"github.com/heartmarshall/ainotes/pkg/ctxutil"

	authsvc "github.com/heartmarshall/ainotes/internal/service/auth"
)

// LoginForm handles GET /login.
func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	data := h.page(r, "Log in")
	data.Form.Next = safeNext(r.URL.Query().Get("next"))
	h.render(w, r, http.StatusOK, "login", data)
}

// Login handles POST /login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	in := credentialsFromForm(r)
	next := safeNext(r.PostFormValue("next"))

	id, err := h.auth.Login(r.Context(), in)
	if err != nil {
		data := h.page(r, "Log in")
		data.Form = formView{Username: in.Username, Next: next}

		switch errs, ok := fieldErrors(err); {
		case ok:
			data.Errors = errs
			h.render(w, r, http.StatusBadRequest, "login", data)
		case errors.Is(err, domain.ErrUnauthorized):
			data.Message = "Invalid username or password."
			h.render(w, r, http.StatusUnauthorized, "login", data)
		default:
			h.renderError(w, r, http.StatusInternalServerError, err)
		}
		return
	}

	if err := h.startSession(w, id); err != nil {
		h.renderError(w, r, http.StatusInternalServerError, err)
		return
	}
	http.Redirect(w, r, next, http.StatusSeeOther)
}

// RegisterForm handles GET /register.
func (h *Handler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "register", h.page(r, "Register"))
}

// Register handles POST /register. A new account is signed in right away.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	in := credentialsFromForm(r)

	id, err := h.auth.Register(r.Context(), in)
	if err != nil {
		data := h.page(r, "Register")
		data.Form.Username = in.Username

		switch errs, ok := fieldErrors(err); {
		case ok:
			data.Errors = errs
			h.render(w, r, http.StatusBadRequest, "register", data)
		case errors.Is(err, domain.ErrAlreadyExists):
			data.Message = "That username is already taken."
			h.render(w, r, http.StatusConflict, "register", data)
		default:
			h.renderError(w, r, http.StatusInternalServerError, err)
		}
		return
	}

	if err := h.startSession(w, id); err != nil {
		h.renderError(w, r, http.StatusInternalServerError, err)
		return
	}
	redirectHome(w, r)
}

// Logout handles GET /logout. It works with or without a session.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	var current *domain.Identity
	if userID, username, ok := ctxutil.UserFromCtx(r.Context()); ok {
		current = &domain.Identity{UserID: userID, Username: username}
	}
	h.auth.Logout(r.Context(), current)

	http.SetCookie(w, h.sessionCookie("", -1, time.Unix(0, 0)))
	http.Redirect(w, r, LoginPath, http.StatusSeeOther)
}

func (h *Handler) startSession(w http.ResponseWriter, id domain.Identity) error {
	token, err := h.sessions.Issue(id)
	if err != nil {
		return err
	}
	ttl := h.sessions.TTL()
	http.SetCookie(w, h.sessionCookie(token, int(ttl.Seconds()), time.Now().Add(ttl)))
	return nil
}

func (h *Handler) sessionCookie(value string, maxAge int, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func credentialsFromForm(r *http.Request) authsvc.CredentialsInput {
	return authsvc.CredentialsInput{
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Password: r.PostFormValue("password"),
	}
}

// safeNext keeps post-login redirects on this site: only absolute paths
// without a host are accepted, anything else becomes "/".
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	u, err := url.Parse(next)
	if err != nil || u.IsAbs() || u.Host != "" {
		return "/"
	}
	return next
}
