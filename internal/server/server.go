// internal/server/server.go
package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"notion-relay/internal/common/config"
	"notion-relay/internal/common/errors"
	"notion-relay/internal/common/logger"
	"notion-relay/internal/common/metrics"
	"notion-relay/internal/relay"
)

// HealthResponse is the JSON body returned on every handled webhook path.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
}

// ErrorResponse is the JSON body for rejected (malformed) payloads.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Server exposes the webhook intake over HTTP.
type Server struct {
	cfg      *config.Config
	pipeline *relay.Pipeline
	logger   logger.Logger
	httpSrv  *http.Server
}

func New(cfg *config.Config, pipeline *relay.Pipeline, log logger.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		pipeline: pipeline,
		logger:   log.WithFields(map[string]interface{}{"component": "server"}),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /webhook/notion", s.handleNotionWebhook)
	mux.HandleFunc("GET /", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	s.httpSrv = &http.Server{
		Addr:         net.JoinHostPort("", strconv.Itoa(cfg.Server.Port)),
		Handler:      mux,
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	return s
}

// Handler returns the configured handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", map[string]interface{}{"addr": s.httpSrv.Addr})
	err := s.httpSrv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// handleNotionWebhook runs the intake pipeline over the request body. Only
// malformed input yields a 400; every other path, including pipeline stops
// and unexpected internal faults, answers 200 so the webhook sender never
// enters a retry storm.
func (s *Server) handleNotionWebhook(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()
	log := s.logger.WithFields(map[string]interface{}{"requestId": requestID})

	defer func() {
		if rec := recover(); rec != nil {
			metrics.WebhooksReceived.WithLabelValues(metrics.OutcomeInternalFail).Inc()
			log.Error("panic while processing webhook", map[string]interface{}{
				"panic": rec,
			})
			s.writeHealth(w)
		}
	}()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error("failed to read request body", map[string]interface{}{"error": err.Error()})
		s.writeHealth(w)
		return
	}
	defer r.Body.Close()

	log.Debug("received webhook request", map[string]interface{}{"bytes": len(body)})

	result := s.pipeline.Process(r.Context(), body)
	if result.Outcome == relay.OutcomeRejected && result.Err != nil && errors.IsClientError(result.Err.Code) {
		s.writeError(w, http.StatusBadRequest, result.Err.Message+": "+result.Err.Details)
		return
	}

	s.writeHealth(w)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeHealth(w)
}

func (s *Server) writeHealth(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(HealthResponse{
		Status:  "200",
		Message: "Success",
		Version: s.cfg.App.Version,
	})
}

func (s *Server) writeError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Detail: detail})
}
