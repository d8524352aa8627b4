package api

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/kalambet/certpath/internal/llm"
	"github.com/kalambet/certpath/internal/profile"
	"github.com/kalambet/certpath/internal/prompt"
	"github.com/kalambet/certpath/internal/session"
)

// Fixed fragments substituted when generation succeeds but returns blank
// text (e.g. a safety-filtered response). Blank is not an error.
const (
	noRoadmapFragment     = "<p>No roadmap generated.</p>"
	noExplanationFragment = "<div>No explanation available.</div>"
)

// ProfileStore is the session-scoped profile persistence the handlers
// need. Implemented by storage.Store.
type ProfileStore interface {
	GetProfile(sessionID string) (profile.Profile, error)
	PutProfile(sessionID string, p profile.Profile) error
}

// Deps holds the collaborators the HTTP handlers are built around.
type Deps struct {
	Sessions  *session.Manager
	Profiles  ProfileStore
	Generator llm.Generator
}

// NewHandler returns the HTTP surface: the host page, a health probe, and
// the two generation endpoints.
func NewHandler(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Get("/", handleIndex)
	r.Get("/health", handleHealth)
	r.Get("/recommend", handleRecommend(deps))
	r.Get("/explain-node", handleExplainNode(deps))

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// handleRecommend extracts the submitted profile, remembers it for the
// session, and relays a generated roadmap fragment.
func handleRecommend(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		sessionID := deps.Sessions.SessionID(w, r)

		p := profile.FromValues(query, profile.Profile{})
		timeframe := strings.TrimSpace(query.Get("timeframe"))

		// The profile is remembered even when generation later fails, so
		// a follow-up explain request can still personalize.
		if err := deps.Profiles.PutProfile(sessionID, p); err != nil {
			slog.Error("storing session profile", "session", sessionID, "error", err)
		}

		slog.Info("requesting roadmap", "session", sessionID, "empty_profile", p.IsEmpty())
		text, err := deps.Generator.Generate(r.Context(), prompt.Roadmap(p, timeframe))
		if err != nil {
			slog.Error("roadmap generation failed", "session", sessionID, "error", err)
			writeErrorFragment(w, err)
			return
		}
		if strings.TrimSpace(text) == "" {
			slog.Info("blank roadmap result, substituting fallback", "session", sessionID)
			text = noRoadmapFragment
		}
		writeFragment(w, text)
	}
}

// handleExplainNode relays a generated explanation for a roadmap node,
// personalized with request parameters or, per field, the profile stored
// for the session. It never writes the store.
func handleExplainNode(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		title := strings.TrimSpace(query.Get("title"))
		if title == "" {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusBadRequest)
			io.WriteString(w, "Missing node title")
			return
		}

		sessionID := deps.Sessions.SessionID(w, r)
		prior, err := deps.Profiles.GetProfile(sessionID)
		if err != nil {
			slog.Warn("loading session profile", "session", sessionID, "error", err)
			prior = profile.Profile{}
		}
		p := profile.FromValues(query, prior)

		slog.Info("requesting explanation", "session", sessionID, "title", title)
		text, err := deps.Generator.Generate(r.Context(), prompt.Explanation(title, p))
		if err != nil {
			slog.Error("explanation generation failed", "session", sessionID, "title", title, "error", err)
			writeErrorFragment(w, err)
			return
		}
		if strings.TrimSpace(text) == "" {
			slog.Info("blank explanation result, substituting fallback", "session", sessionID, "title", title)
			text = noExplanationFragment
		}
		writeFragment(w, text)
	}
}

// writeFragment relays generated markup verbatim. The generator's output
// format contract is trusted; nothing is re-validated or re-escaped.
func writeFragment(w http.ResponseWriter, fragment string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, fragment)
}

func writeErrorFragment(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	fmt.Fprintf(w, "<p style='color:red;'>Error: %s</p>", err)
}
