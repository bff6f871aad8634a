package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/time/rate"

	_ "github.com/volkh4n/scandeck/docs"
	"github.com/volkh4n/scandeck/internal/app"
	"github.com/volkh4n/scandeck/internal/events"
	"github.com/volkh4n/scandeck/internal/executor"
	"github.com/volkh4n/scandeck/internal/export"
	"github.com/volkh4n/scandeck/internal/inspect"
	"github.com/volkh4n/scandeck/internal/logging"
	"github.com/volkh4n/scandeck/internal/model"
	"github.com/volkh4n/scandeck/internal/registry"
)

var _ registry.Publisher = (*events.Hub)(nil)

// Server is the HTTP + WebSocket API surface for scandeck.
type Server struct {
	cfg       Config
	service   *app.Service
	inspector *inspect.Inspector
	limiter   *rate.Limiter
	router    chi.Router
	upgrader  websocket.Upgrader
	logger    logging.Logger
}

// NewServer creates a Server with its own scan subsystem wired behind it.
func NewServer(cfg Config) (*Server, error) {
	if cfg.AppConfig == nil {
		cfg.AppConfig = app.DefaultConfig()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewStdoutLogger("Server")
	}

	hub := events.NewHub(cfg.AppConfig.EventBuffer, logger)

	launcher := cfg.Launcher
	if launcher == nil {
		launcher = executor.New(cfg.AppConfig.ExecutorCfg, logger)
	}
	reg := registry.New(launcher, hub, logger)
	svc := app.NewService(reg, hub, logger)

	var limiter *rate.Limiter
	if cfg.AppConfig.SubmitRate > 0 {
		burst := cfg.AppConfig.SubmitBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.AppConfig.SubmitRate), burst)
	}

	s := &Server{
		cfg:       cfg,
		service:   svc,
		inspector: inspect.New(nil, logger),
		limiter:   limiter,
		router:    chi.NewRouter(),
		logger:    logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// TODO: tighten for production
				return true
			},
		},
	}

	s.routes()
	return s, nil
}

// Service returns the underlying facade for advanced use (tests, etc.).
func (s *Server) Service() *app.Service {
	return s.service
}

func (s *Server) routes() {
	r := s.router

	r.Use(s.corsMiddleware)

	// CORS preflight
	r.Options("/api/scans", s.optionsHandler("GET, POST"))
	r.Options("/api/scans/export", s.optionsHandler("GET"))
	r.Options("/api/scans/{scanID}", s.optionsHandler("GET"))
	r.Options("/api/summary", s.optionsHandler("GET"))
	r.Options("/api/tools", s.optionsHandler("GET"))
	r.Options("/api/inspect/headers", s.optionsHandler("GET"))
	r.Options("/api/inspect/dns", s.optionsHandler("GET"))

	// Scans
	r.Post("/api/scans", s.handleSubmitScan)
	r.Get("/api/scans", s.handleListScans)
	r.Get("/api/scans/export", s.handleExportScans)
	r.Get("/api/scans/{scanID}", s.handleGetScan)

	// Dashboard
	r.Get("/api/summary", s.handleSummary)
	r.Get("/api/tools", s.handleListTools)

	// In-process inspection
	r.Get("/api/inspect/headers", s.handleInspectHeaders)
	r.Get("/api/inspect/dns", s.handleInspectDNS)

	// WebSocket for live scan events
	r.Get("/ws/scans", s.handleScanEventsWS)

	// Interactive API docs
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Max-Age", "86400")

		next.ServeHTTP(w, r)
	})
}

func (s *Server) optionsHandler(methods string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Methods", methods)
		w.WriteHeader(http.StatusNoContent)
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fields := []logging.Field{
		{Key: "method", Value: r.Method},
		{Key: "path", Value: r.URL.Path},
	}

	if q := r.URL.Query(); len(q) > 0 {
		fields = append(fields, logging.Field{Key: "query", Value: q})
	}

	if r.Body != nil && (r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch) {
		if bodyBytes, err := io.ReadAll(r.Body); err == nil {
			fields = append(fields, logging.Field{Key: "body", Value: string(bodyBytes)})
			r.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		}
	}

	s.logger.Info("http_request", fields...)

	s.router.ServeHTTP(w, r)
}

// Close stops live event delivery. In-flight scans still run to completion
// and stay queryable until the process exits.
func (s *Server) Close() {
	if s.service != nil {
		s.service.Close()
	}
}

// HTTPServer creates an *http.Server ready to ListenAndServe.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         s.cfg.ListenAddr,
		Handler:      s,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // allow streaming
	}
}

// --- JSON helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// --- HTTP handlers ---

// Scans

// handleSubmitScan godoc
// @Summary Submit a scan
// @Description Accepts a scan request and launches the tool process. Returns as soon as the scan is registered; progress is observed via polling or the event stream.
// @Tags scans
// @Accept json
// @Produce json
// @Param request body SubmitScanRequest true "scan request"
// @Success 202 {object} SubmitScanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /api/scans [post]
func (s *Server) handleSubmitScan(w http.ResponseWriter, r *http.Request) {
	if s.limiter != nil && !s.limiter.Allow() {
		s.logger.Warn("throttling scan submission")
		writeError(w, http.StatusTooManyRequests, "scan submission rate exceeded")
		return
	}

	var body SubmitScanRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if body.Target == "" {
		writeError(w, http.StatusBadRequest, "target is required")
		return
	}

	scan, err := s.service.Submit(model.Tool(body.Tool), body.Target, body.Options)
	if err != nil {
		if errors.Is(err, app.ErrUnknownTool) {
			s.logger.Warn("submitting scan", logging.Field{Key: "error", Value: err.Error()})
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Warn("submitting scan", logging.Field{Key: "error", Value: err.Error()})
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.logger.Info("submitted scan",
		logging.Field{Key: "scan_id", Value: scan.ID},
		logging.Field{Key: "tool", Value: string(scan.Tool)},
	)
	writeJSON(w, http.StatusAccepted, SubmitScanResponse{
		ScanID:    scan.ID,
		Tool:      scan.Tool,
		Target:    scan.Target,
		Status:    scan.Status,
		StartedAt: scan.StartedAt,
	})
}

// handleListScans godoc
// @Summary List scans
// @Description Returns every scan this process has accepted, oldest first.
// @Tags scans
// @Produce json
// @Success 200 {array} model.Scan
// @Router /api/scans [get]
func (s *Server) handleListScans(w http.ResponseWriter, r *http.Request) {
	scans := s.service.ListScans()
	s.logger.Info("listed scans", logging.Field{Key: "count", Value: len(scans)})
	writeJSON(w, http.StatusOK, scans)
}

// handleGetScan godoc
// @Summary Get one scan
// @Description Returns the full record for a scan, including captured output once it finished.
// @Tags scans
// @Produce json
// @Param scanID path string true "scan id"
// @Success 200 {object} model.ScanResult
// @Failure 404 {object} ErrorResponse
// @Router /api/scans/{scanID} [get]
func (s *Server) handleGetScan(w http.ResponseWriter, r *http.Request) {
	scanID := chi.URLParam(r, "scanID")

	res, err := s.service.GetScan(scanID)
	if err != nil {
		if errors.Is(err, registry.ErrScanNotFound) {
			s.logger.Warn("getting scan: not found", logging.Field{Key: "scan_id", Value: scanID})
			writeError(w, http.StatusNotFound, "scan not found")
			return
		}
		s.logger.Warn("getting scan", logging.Field{Key: "error", Value: err.Error()})
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.logger.Info("got scan", logging.Field{Key: "scan_id", Value: scanID})
	writeJSON(w, http.StatusOK, res)
}

// handleExportScans godoc
// @Summary Export scans
// @Description Downloads every scan record as JSON or CSV.
// @Tags scans
// @Produce json
// @Param format query string false "json or csv" default(json)
// @Success 200
// @Failure 400 {object} ErrorResponse
// @Router /api/scans/export [get]
func (s *Server) handleExportScans(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}

	results := s.service.Results()
	switch format {
	case "json":
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="scans.json"`)
		if err := export.WriteJSON(w, results); err != nil {
			s.logger.Warn("exporting scans", logging.Field{Key: "error", Value: err.Error()})
		}
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="scans.csv"`)
		if err := export.WriteCSV(w, results); err != nil {
			s.logger.Warn("exporting scans", logging.Field{Key: "error", Value: err.Error()})
		}
	default:
		writeError(w, http.StatusBadRequest, "unsupported format: "+format)
		return
	}
	s.logger.Info("exported scans",
		logging.Field{Key: "format", Value: format},
		logging.Field{Key: "count", Value: len(results)},
	)
}

// Dashboard

// handleSummary godoc
// @Summary Aggregate scan statistics
// @Description Returns counters for the dashboard: totals by status and by tool.
// @Tags dashboard
// @Produce json
// @Success 200 {object} model.SummaryStats
// @Router /api/summary [get]
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	stats := s.service.Summary()
	s.logger.Info("summarized scans", logging.Field{Key: "total", Value: stats.Total})
	writeJSON(w, http.StatusOK, stats)
}

// handleListTools godoc
// @Summary List tools
// @Description Returns the dispatchable tools and whether each executable is installed on this host.
// @Tags dashboard
// @Produce json
// @Success 200 {array} app.ToolInfo
// @Router /api/tools [get]
func (s *Server) handleListTools(w http.ResponseWriter, r *http.Request) {
	tools := s.service.Tools()
	s.logger.Info("listed tools", logging.Field{Key: "count", Value: len(tools)})
	writeJSON(w, http.StatusOK, tools)
}

// Inspection

// handleInspectHeaders godoc
// @Summary Review security headers
// @Description Fetches a URL in-process and reviews its response headers against the fixed security list.
// @Tags inspect
// @Produce json
// @Param url query string true "URL to review"
// @Success 200 {object} inspect.HeaderAudit
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/inspect/headers [get]
func (s *Server) handleInspectHeaders(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	if url == "" {
		s.logger.Warn("inspecting headers: missing url query parameter")
		writeError(w, http.StatusBadRequest, "missing url query parameter")
		return
	}

	audit, err := s.inspector.AuditHeaders(r.Context(), url)
	if err != nil {
		s.logger.Warn("inspecting headers", logging.Field{Key: "error", Value: err.Error()})
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	s.logger.Info("inspected headers", logging.Field{Key: "url", Value: url})
	writeJSON(w, http.StatusOK, audit)
}

// handleInspectDNS godoc
// @Summary Passive DNS lookup
// @Description Resolves a name over DNS over HTTPS and returns the answer records.
// @Tags inspect
// @Produce json
// @Param name query string true "name to resolve"
// @Param type query string false "record type" default(A)
// @Success 200 {array} inspect.DNSAnswer
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/inspect/dns [get]
func (s *Server) handleInspectDNS(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		s.logger.Warn("dns lookup: missing name query parameter")
		writeError(w, http.StatusBadRequest, "missing name query parameter")
		return
	}

	answers, err := s.inspector.DNSLookup(r.Context(), name, r.URL.Query().Get("type"))
	if err != nil {
		s.logger.Warn("dns lookup", logging.Field{Key: "error", Value: err.Error()})
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	s.logger.Info("dns lookup", logging.Field{Key: "name", Value: name}, logging.Field{Key: "answers", Value: len(answers)})
	writeJSON(w, http.StatusOK, answers)
}

// WebSockets

// handleScanEventsWS streams scan lifecycle events to a connected client.
// The subscription lasts until the client goes away or the hub shuts down.
func (s *Server) handleScanEventsWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrading to websocket", logging.Field{Key: "error", Value: err.Error()})
		return
	}
	defer conn.Close()

	subID, eventCh := s.service.Subscribe()
	defer s.service.Unsubscribe(subID)

	s.logger.Info("scan event subscriber connected", logging.Field{Key: "subscriber", Value: subID})

	for ev := range eventCh {
		if err := conn.WriteJSON(ev); err != nil {
			// Assume client disconnected; the deferred unsubscribe cleans up.
			return
		}
	}
}
