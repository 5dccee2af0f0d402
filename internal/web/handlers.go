package web

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shanehull/matchscout/internal/session"
	"github.com/shanehull/matchscout/internal/types"
)

const sessionCookie = "matchscout_session"

// Analyzer produces a report for one fixture.
type Analyzer interface {
	Analyze(ctx context.Context, q types.MatchQuery) (*types.Report, error)
}

// Notifier is told about every completed report.
type Notifier interface {
	Notify(report *types.Report)
}

// Handler contains dependencies for HTTP handlers
type Handler struct {
	analyzer Analyzer
	sessions *session.Manager
	notifier Notifier
	pages    *template.Template
	log      *zap.Logger
}

// NewHandler creates a new handler with dependencies. notifier may be nil.
func NewHandler(analyzer Analyzer, sessions *session.Manager, notifier Notifier, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		analyzer: analyzer,
		sessions: sessions,
		notifier: notifier,
		pages:    template.Must(template.New("page").Parse(pageTemplate)),
		log:      log,
	}
}

// HealthCheck returns the health status of the service
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"service":   "matchscout",
	})
}

// Index renders the form and whatever the session last produced.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	id := h.sessionID(w, r)
	st := h.sessions.Get(id)

	data := pageData{State: st}
	if st.Query != nil {
		data.Form = *st.Query
	}
	h.renderPage(w, http.StatusOK, data)
}

// SubmitForm handles the HTML form post.
func (h *Handler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	id := h.sessionID(w, r)

	if err := r.ParseForm(); err != nil {
		h.renderPage(w, http.StatusBadRequest, pageData{State: h.sessions.Get(id), FormError: "Invalid form submission."})
		return
	}

	q := types.MatchQuery{
		HomeTeam: r.PostForm.Get("homeTeam"),
		AwayTeam: r.PostForm.Get("awayTeam"),
		League:   r.PostForm.Get("league"),
	}.Normalize()

	_, status, err := h.run(r.Context(), id, q)
	data := pageData{State: h.sessions.Get(id), Form: q}
	switch {
	case errors.Is(err, types.ErrMissingTeam):
		data.FormError = "Home team and away team are required."
	case errors.Is(err, session.ErrBusy):
		data.FormError = "An analysis is already running. Please wait for it to finish."
	}

	h.renderPage(w, status, data)
}

// ResetSession clears a finished session and returns to the empty form.
func (h *Handler) ResetSession(w http.ResponseWriter, r *http.Request) {
	h.sessions.Reset(h.sessionID(w, r))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// AnalyzeJSON accepts a MatchQuery body and returns the AnalysisResult.
func (h *Handler) AnalyzeJSON(w http.ResponseWriter, r *http.Request) {
	id := h.sessionID(w, r)

	var q types.MatchQuery
	r.Body = http.MaxBytesReader(w, r.Body, 1<<16)
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	q = q.Normalize()

	report, status, err := h.run(r.Context(), id, q)
	switch {
	case errors.Is(err, types.ErrMissingTeam):
		respondError(w, status, "homeTeam and awayTeam are required", nil)
	case errors.Is(err, session.ErrBusy):
		respondError(w, status, session.ErrBusy.Error(), nil)
	case err != nil:
		respondError(w, status, session.FailureMessage, nil)
	default:
		respondJSON(w, status, report.Result)
	}
}

// SessionState reports the caller's current state.
func (h *Handler) SessionState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.sessions.Get(h.sessionID(w, r)))
}

// run drives one Submit -> Success|Failure cycle and picks the HTTP status to use.
func (h *Handler) run(ctx context.Context, id string, q types.MatchQuery) (*types.Report, int, error) {
	if err := q.Validate(); err != nil {
		return nil, http.StatusBadRequest, err
	}
	if err := h.sessions.Submit(id, q); err != nil {
		return nil, http.StatusConflict, err
	}

	report, err := h.analyzer.Analyze(ctx, q)
	if err != nil {
		h.sessions.Fail(id)
		h.log.Warn("Analysis request failed", zap.String("session", id), zap.Error(err))
		return nil, http.StatusBadGateway, err
	}

	h.sessions.Succeed(id, report)
	if h.notifier != nil {
		h.notifier.Notify(report)
	}
	return report, http.StatusOK, nil
}

func (h *Handler) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func (h *Handler) renderPage(w http.ResponseWriter, status int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.pages.Execute(w, data); err != nil {
		h.log.Error("Failed to render page", zap.Error(err))
	}
}

// Helper functions

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Error("error encoding response", zap.Error(err))
	}
}

func respondError(w http.ResponseWriter, status int, message string, err error) {
	errResp := ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	}

	if err != nil {
		zap.L().Debug("request error", zap.String("message", message), zap.Error(err))
	}

	respondJSON(w, status, errResp)
}
