// internal/api/api.go
//
// HTTP surface for the settings store.
//
// Context
// -------
// Thin JSON layer over store.Store; validation outcomes surface as status
// codes, never as distinct error payload shapes the client must parse:
//
//   • 400 – value rejected by the key's rule
//   • 404 – unknown key (reject policy) or missing setting
//   • 204 – write or delete accepted
//
// Routes
// ------
//   GET    /healthz
//   GET    /settings
//   GET    /settings/{key}
//   PUT    /settings/{key}     body: {"value": "..."} or {"value": null}
//   DELETE /settings/{key}

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/yanizio/settingsd/internal/middleware"
	"github.com/yanizio/settingsd/internal/store"
)

// Routes builds the chi router over the given store.
func Routes(st *store.Store, log *zap.SugaredLogger) chi.Router {
	r := chi.NewRouter()
	r.Use(requestLog(log))
	r.Use(middleware.Security)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/settings", func(r chi.Router) {
		r.Get("/", listSettings(st))
		r.Get("/{key}", getSetting(st))
		r.Put("/{key}", putSetting(st))
		r.Delete("/{key}", deleteSetting(st))
	})

	return r
}

// putBody is the PUT payload.  A JSON null (or omitted field) proposes
// storing the setting as NULL; whether that is valid is the rule's call.
type putBody struct {
	Value *string `json:"value"`
}

func listSettings(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := st.List(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		if settings == nil {
			settings = []store.Setting{}
		}
		writeJSON(w, http.StatusOK, settings)
	}
}

func getSetting(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")
		val, err := st.Get(r.Context(), key)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, store.Setting{Key: key, Value: val})
	}
}

func putSetting(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body putBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, `{"error":"malformed body"}`, http.StatusBadRequest)
			return
		}
		key := chi.URLParam(r, "key")
		if err := st.Put(r.Context(), key, body.Value); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func deleteSetting(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := st.Delete(r.Context(), chi.URLParam(r, "key")); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

/*──────────────────────────── helpers ─────────────────────────────────────*/

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps store sentinels onto status codes.  Anything else is a
// 500; the body stays generic so internals never leak to clients.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrInvalidValue):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid value"})
	case errors.Is(err, store.ErrUnknownKey):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown key"})
	case errors.Is(err, store.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	default:
		zap.S().Errorw("settings request failed",
			"method", r.Method, "path", r.URL.Path, "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal"})
	}
}

// requestLog emits one line per request with method, path, status, and
// latency.
func requestLog(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)
			log.Infow("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"duration", time.Since(start),
			)
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
