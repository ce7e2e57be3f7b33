package web

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/ainotes/internal/domain"
	"github.com/heartmarshall/ainotes/internal/service/note"
)

// Index handles GET /: every note, oldest first.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.renderIndex(w, r, http.StatusOK, "", nil)
}

func (h *Handler) renderIndex(w http.ResponseWriter, r *http.Request, status int, draft string, errs map[string]string) {
	notes, err := h.notes.List(r.Context())
	if err != nil {
		h.renderError(w, r, http.StatusInternalServerError, err)
		return
	}

	data := h.page(r, "Notes")
	data.Notes = make([]noteView, 0, len(notes))
	for i := range notes {
		data.Notes = append(data.Notes, h.noteView(r, &notes[i]))
	}
	data.Form.Content = draft
	data.Errors = errs

	h.render(w, r, status, "index", data)
}

func (h *Handler) noteView(r *http.Request, n *domain.Note) noteView {
	body, err := h.notes.RenderContent(n.Content)
	if err != nil {
		h.log.WarnContext(r.Context(), "markdown render failed",
			slog.Int64("note_id", n.ID), slog.String("error", err.Error()))
		body = template.HTML(template.HTMLEscapeString(n.Content))
	}
	summary := n.SummaryText()
	return noteView{
		ID:            n.ID,
		Content:       n.Content,
		HTML:          body,
		Summary:       summary,
		HasSummary:    n.HasSummary(),
		SummaryFailed: strings.HasPrefix(summary, note.FailurePrefix),
	}
}

// Create handles POST /.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	content := r.PostFormValue("note")

	if _, err := h.notes.Create(r.Context(), content); err != nil {
		if errs, ok := fieldErrors(err); ok {
			h.renderIndex(w, r, http.StatusBadRequest, content, errs)
			return
		}
		h.renderError(w, r, http.StatusInternalServerError, err)
		return
	}

	redirectHome(w, r)
}

// Summarize handles POST /summarize/{id}. AI failures are stored on the
// note, so the user always lands back on the list.
func (h *Handler) Summarize(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.notFound(w, r)
		return
	}

	outcome, err := h.notes.Summarize(r.Context(), id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		redirectHome(w, r)
		return
	case err != nil:
		h.renderError(w, r, http.StatusInternalServerError, err)
		return
	}

	h.obs.ObserveSummary(string(outcome.Status))
	redirectHome(w, r)
}

// Delete handles POST /delete/{id}. Unknown ids are ignored.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.notFound(w, r)
		return
	}

	if err := h.notes.Delete(r.Context(), id); err != nil {
		h.renderError(w, r, http.StatusInternalServerError, err)
		return
	}

	redirectHome(w, r)
}

// EditForm handles GET /edit/{id}.
func (h *Handler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.notFound(w, r)
		return
	}

	n, err := h.notes.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.notFound(w, r)
			return
		}
		h.renderError(w, r, http.StatusInternalServerError, err)
		return
	}

	h.renderEdit(w, r, http.StatusOK, n.ID, n.Content, nil)
}

// Edit handles POST /edit/{id}. An unknown id is a 404 and nothing is created.
func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.notFound(w, r)
		return
	}

	content := r.PostFormValue("note")
	err := h.notes.Update(r.Context(), id, content)
	if err != nil {
		if errs, ok := fieldErrors(err); ok {
			h.renderEdit(w, r, http.StatusBadRequest, id, content, errs)
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			h.notFound(w, r)
			return
		}
		h.renderError(w, r, http.StatusInternalServerError, err)
		return
	}

	redirectHome(w, r)
}

func (h *Handler) renderEdit(w http.ResponseWriter, r *http.Request, status int, id int64, content string, errs map[string]string) {
	data := h.page(r, "Edit note")
	data.Note = &noteView{ID: id, Content: content}
	data.Form.Content = content
	data.Errors = errs
	h.render(w, r, status, "edit", data)
}
