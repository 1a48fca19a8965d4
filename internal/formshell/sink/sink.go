package sink

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	slogmulti "github.com/samber/slog-multi"

	"github.com/mistakeknot/formshell/pkg/httpapi"
	"github.com/mistakeknot/formshell/pkg/netguard"
)

// Submission is one received form payload with its sink-assigned identity.
type Submission struct {
	ID         string         `json:"id"`
	ReceivedAt time.Time      `json:"received_at"`
	Data       map[string]any `json:"data"`
}

// Server is a local development endpoint that accepts form submissions,
// keeps them in memory and echoes an acknowledgement the form renders.
type Server struct {
	logger *slog.Logger
	mux    *http.ServeMux
	srv    *http.Server

	mu          sync.Mutex
	submissions map[string]Submission
	now         func() time.Time
}

// New builds a sink server. logFile, when non-empty, receives a JSON copy of
// every log record alongside the stderr text output.
func New(logFile string) (*Server, error) {
	handlers := []slog.Handler{
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}),
	}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	s := &Server{
		logger:      slog.New(slogmulti.Fanout(handlers...)),
		mux:         http.NewServeMux(),
		submissions: make(map[string]Submission),
		now:         time.Now,
	}
	s.routes()
	return s, nil
}

// Handler exposes the mux for tests and embedding.
func (s *Server) Handler() http.Handler { return s.mux }

// ListenAndServe binds the sink to a loopback address and serves until the
// listener fails.
func (s *Server) ListenAndServe(addr string) error {
	if err := netguard.EnsureLocalOnly(addr); err != nil {
		return err
	}
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       time.Minute,
	}
	s.logger.Info("sink listening", "addr", addr)
	return s.srv.ListenAndServe()
}

func (s *Server) routes() {
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/api/submissions", s.handleSubmissions)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httpapi.WriteError(w, http.StatusMethodNotAllowed, httpapi.ErrInvalidRequest, "method not allowed", false)
		return
	}
	httpapi.WriteOK(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSubmissions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleReceive(w, r)
	case http.MethodGet:
		s.handleList(w)
	default:
		httpapi.WriteError(w, http.StatusMethodNotAllowed, httpapi.ErrInvalidRequest, "method not allowed", false)
	}
}

func (s *Server) handleReceive(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, httpapi.ErrInvalidRequest, "read body: "+err.Error(), false)
		return
	}
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, httpapi.ErrInvalidRequest, "payload must be a JSON object", false)
		return
	}
	sub := Submission{
		ID:         uuid.NewString(),
		ReceivedAt: s.now().UTC(),
		Data:       data,
	}
	s.mu.Lock()
	s.submissions[sub.ID] = sub
	count := len(s.submissions)
	s.mu.Unlock()

	s.logger.Info("submission received", "id", sub.ID, "fields", len(data), "total", count)
	httpapi.WriteOK(w, http.StatusCreated, sub)
}

func (s *Server) handleList(w http.ResponseWriter) {
	s.mu.Lock()
	list := make([]Submission, 0, len(s.submissions))
	for _, sub := range s.submissions {
		list = append(list, sub)
	}
	s.mu.Unlock()
	sort.Slice(list, func(i, j int) bool { return list[i].ReceivedAt.Before(list[j].ReceivedAt) })
	httpapi.WriteOK(w, http.StatusOK, list)
}
