package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/drafthaus/orthodraw/pkg/drawing"
	"github.com/drafthaus/orthodraw/pkg/drawing/sink"
	"github.com/drafthaus/orthodraw/pkg/drawing/styles"
	apperrors "github.com/drafthaus/orthodraw/pkg/errors"
	"github.com/drafthaus/orthodraw/pkg/session"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok\n")) //nolint:errcheck
}

// handleDrawingSVG renders a one-shot drawing. When none of the five
// input fields is present the placeholder drawing is returned, matching
// the tool's initial display state.
func (s *Server) handleDrawingSVG(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	theme, err := themeFromQuery(q, s.theme)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	raw := rawInputsFromQuery(q)
	solid, area := raw.Normalize()
	vp := viewportFromQuery(q)

	d := drawing.Compose(solid, area, vp, !raw.Empty())
	s.writeSVG(w, sink.RenderSVG(d, vp, sink.WithTheme(theme)))
}

func (s *Server) handleDrawingJSON(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	raw := rawInputsFromQuery(q)
	solid, area := raw.Normalize()
	vp := viewportFromQuery(q)

	d := drawing.Compose(solid, area, vp, !raw.Empty())
	data, err := sink.RenderJSON(d)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError,
			apperrors.Wrap(apperrors.ErrCodeRenderFailed, err, "serialize drawing"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data) //nolint:errcheck
}

// handleCreateSession normalizes the posted inputs and stores them as the
// last-known values for later resize renders.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var raw drawing.RawInputs
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		s.writeError(w, http.StatusBadRequest,
			apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "decode request body"))
		return
	}

	solid, area := raw.Normalize()
	sess := session.New(solid, area, s.ttl)
	if err := s.store.Set(r.Context(), sess); err != nil {
		s.writeError(w, http.StatusInternalServerError,
			apperrors.Wrap(apperrors.ErrCodeInternal, err, "store session"))
		return
	}

	spacing := drawing.ComputeSpacing(area, drawing.DeriveViews(solid))
	s.logger.Info("session created", "id", sess.ID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
		"id":      sess.ID,
		"spacing": summaryMap(spacing),
	})
}

// handleSessionDrawingSVG re-renders a stored session for the viewport the
// client currently has. This is the resize trigger: only the available
// size changes, the inputs are the ones calculated before.
func (s *Server) handleSessionDrawingSVG(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	theme, err := themeFromQuery(r.URL.Query(), s.theme)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	vp := viewportFromQuery(r.URL.Query())
	d := drawing.Compose(sess.Solid, sess.Area, vp, true)
	s.writeSVG(w, sink.RenderSVG(d, vp, sink.WithTheme(theme)))
}

func (s *Server) handleSessionSpacing(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	spacing := drawing.ComputeSpacing(sess.Area, drawing.DeriveViews(sess.Solid))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summaryMap(spacing)) //nolint:errcheck
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.Delete(r.Context(), id); err != nil {
		s.writeError(w, http.StatusInternalServerError,
			apperrors.Wrap(apperrors.ErrCodeInternal, err, "delete session"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) lookupSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := chi.URLParam(r, "id")
	sess, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, http.StatusNotFound,
			apperrors.New(apperrors.ErrCodeSessionNotFound, "session %s: %v", id, err))
		return nil, false
	}
	return sess, true
}

func (s *Server) writeSVG(w http.ResponseWriter, svg []byte) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(svg) //nolint:errcheck
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{ //nolint:errcheck
		"code":  string(apperrors.GetCode(err)),
		"error": apperrors.UserMessage(err),
	})
}

// rawInputsFromQuery lifts the five input fields out of a query string.
// Missing parameters stay empty and fall to the engine's defaults.
func rawInputsFromQuery(q url.Values) drawing.RawInputs {
	return drawing.RawInputs{
		Width:      q.Get("width"),
		Height:     q.Get("height"),
		Depth:      q.Get("depth"),
		AreaWidth:  q.Get("area_width"),
		AreaHeight: q.Get("area_height"),
	}
}

func viewportFromQuery(q url.Values) drawing.Viewport {
	return drawing.Viewport{
		AvailW: positiveOr(q.Get("avail_width"), defaultAvailW),
		AvailH: positiveOr(q.Get("avail_height"), defaultAvailH),
	}
}

func themeFromQuery(q url.Values, fallback styles.Theme) (styles.Theme, error) {
	name := q.Get("theme")
	if name == "" {
		return fallback, nil
	}
	if err := apperrors.ValidateTheme(name); err != nil {
		return styles.Theme{}, err
	}
	t, _ := styles.ByName(name)
	return t, nil
}

func positiveOr(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func summaryMap(sp drawing.Spacing) map[string]string {
	m := make(map[string]string, 4)
	for _, e := range sp.Summary() {
		m[e.Key] = e.Value
	}
	return m
}
