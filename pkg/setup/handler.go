package setup

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/kataras/figma-tokens/pkg/figma"
	"github.com/kataras/figma-tokens/pkg/tailwind"
	"github.com/kataras/figma-tokens/pkg/tokens"
)

// ClientFactory builds the API used for one access token.
type ClientFactory func(accessToken string) figma.API

// Handler serves the setup endpoints of a project:
//
//	GET  /api/setup/figma   {"configured": bool}
//	POST /api/setup/figma   {"figmaToken": "...", "fileKey": "..."}
//	POST /api/tokens/sync   tokens and theme of the stored file
type Handler struct {
	envPath   string
	newClient ClientFactory
	cache     *figma.ResponseCache
	log       logrus.FieldLogger
	origins   []string
	mux       *http.ServeMux
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithEnvFile sets the credentials file. Defaults to DefaultEnvFile.
func WithEnvFile(path string) HandlerOption {
	return func(h *Handler) {
		h.envPath = path
	}
}

// WithClientFactory replaces the default figma.NewClient factory.
func WithClientFactory(factory ClientFactory) HandlerOption {
	return func(h *Handler) {
		h.newClient = factory
	}
}

// WithCache serves repeated Figma calls from cache.
func WithCache(cache *figma.ResponseCache) HandlerOption {
	return func(h *Handler) {
		h.cache = cache
	}
}

// WithLogger sets the request logger. *logrus.Logger and *logrus.Entry satisfy it.
func WithLogger(log logrus.FieldLogger) HandlerOption {
	return func(h *Handler) {
		h.log = log
	}
}

// WithAllowedOrigins lists the origins, besides the server's own, that may call
// the endpoints. Entries may contain one "*" wildcard; a single "*" allows every origin.
// Cross-origin requests are rejected by default.
func WithAllowedOrigins(origins ...string) HandlerOption {
	return func(h *Handler) {
		h.origins = origins
	}
}

// NewHandler returns the setup endpoints wrapped with CORS and request logging.
func NewHandler(opts ...HandlerOption) http.Handler {
	h := &Handler{
		envPath:   DefaultEnvFile,
		newClient: defaultClient,
		log:       logrus.StandardLogger(),
		mux:       http.NewServeMux(),
	}
	for _, opt := range opts {
		opt(h)
	}

	h.mux.HandleFunc("GET /api/setup/figma", h.status)
	h.mux.HandleFunc("POST /api/setup/figma", h.configure)
	h.mux.HandleFunc("POST /api/tokens/sync", h.sync)

	c := cors.New(cors.Options{
		AllowOriginRequestFunc: h.originAllowed(),
		AllowedMethods:         []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:         []string{"Accept", "Content-Type"},
		MaxAge:                 300,
	})

	return h.logRequests(h.rejectForeignOrigins(c, c.Handler(h.mux)))
}

// originAllowed accepts the server's own origin and the configured ones.
func (h *Handler) originAllowed() func(r *http.Request, origin string) bool {
	var listed *cors.Cors
	if len(h.origins) > 0 {
		listed = cors.New(cors.Options{AllowedOrigins: h.origins})
	}

	return func(r *http.Request, origin string) bool {
		if u, err := url.Parse(origin); err == nil && u.Host != "" && u.Host == r.Host {
			return true
		}
		return listed != nil && listed.OriginAllowed(r)
	}
}

// rejectForeignOrigins answers 403 to browser requests, preflights included,
// sent from an origin that is not allowed. Requests without Origin pass.
func (h *Handler) rejectForeignOrigins(c *cors.Cors, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); origin != "" && !c.OriginAllowed(r) {
			h.log.WithField("origin", origin).Warn("Rejected cross-origin request")
			writeJSON(w, http.StatusForbidden, map[string]string{"error": "Origin not allowed"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func defaultClient(accessToken string) figma.API {
	return figma.NewClient(accessToken)
}

func (h *Handler) api(accessToken string) figma.API {
	api := h.newClient(accessToken)
	if h.cache != nil {
		return h.cache.Wrap(api, accessToken)
	}
	return api
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	configured, err := Status(h.envPath)
	if err != nil {
		h.log.WithError(err).Warn("Could not read credentials file")
	}
	writeJSON(w, http.StatusOK, map[string]bool{"configured": configured})
}

type configureRequest struct {
	FigmaToken string `json:"figmaToken"`
	FileKey    string `json:"fileKey"`
}

func (h *Handler) configure(w http.ResponseWriter, r *http.Request) {
	var req configureRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(&req); err != nil {
		h.rejectCredentials(w, err)
		return
	}
	if req.FigmaToken == "" {
		h.rejectCredentials(w, errors.New("missing figma token"))
		return
	}

	fileKey, err := figma.ResolveFileKey(req.FileKey)
	if err != nil {
		h.rejectCredentials(w, err)
		return
	}

	if err := Validate(r.Context(), h.api(req.FigmaToken), fileKey); err != nil {
		h.rejectCredentials(w, err)
		return
	}

	if err := Save(h.envPath, req.FigmaToken, fileKey); err != nil {
		h.log.WithError(err).Error("Error saving Figma credentials")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to save Figma credentials"})
		return
	}

	h.log.WithField("file_key", fileKey).Info("Figma credentials saved")
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) rejectCredentials(w http.ResponseWriter, err error) {
	h.log.WithError(err).Warn("Error setting up Figma")
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Failed to validate Figma credentials"})
}

type syncResponse struct {
	Tokens *tokens.Collection       `json:"tokens"`
	Theme  *tailwind.ThemeExtension `json:"theme"`
}

func (h *Handler) sync(w http.ResponseWriter, r *http.Request) {
	creds, err := Load(h.envPath)
	if err != nil {
		h.log.WithError(err).Warn("Sync requested without credentials")
		writeJSON(w, http.StatusPreconditionFailed, map[string]string{"error": "Figma credentials are not configured"})
		return
	}

	fileKey, err := figma.ResolveFileKey(creds.FileKey)
	if err != nil {
		writeJSON(w, http.StatusPreconditionFailed, map[string]string{"error": "Stored Figma file key is invalid"})
		return
	}

	collection, err := tokens.Fetch(r.Context(), h.api(creds.AccessToken), fileKey)
	if err != nil {
		h.log.WithError(err).WithField("file_key", fileKey).Error("Error fetching design tokens")
		status := http.StatusBadGateway
		if figma.IsUnauthorized(err) {
			status = http.StatusUnauthorized
		}
		writeJSON(w, status, map[string]string{"error": "Failed to fetch design tokens"})
		return
	}

	theme := tailwind.Generate(collection, tailwind.WithLogger(h.log))

	h.log.WithFields(logrus.Fields{
		"file_key":   fileKey,
		"colors":     len(theme.Colors),
		"typography": len(theme.Typography),
	}).Info("Design tokens synced")

	writeJSON(w, http.StatusOK, syncResponse{Tokens: collection, Theme: theme})
}

// statusRecorder captures the response status for the request log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		h.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start).String(),
		}).Debug("Request completed")
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
