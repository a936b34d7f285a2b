package web

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// StatusResponse is the JSON body of GET /api/status.
type StatusResponse struct {
	State string `json:"state"`
	Text  string `json:"text"`
}

// Server serves the status page. Its view is mounted once, when the server
// starts; requests only read the view.
type Server struct {
	view   *StatusView
	page   *Page
	router *chi.Mux
	server *http.Server
}

// NewServer creates a page server for the checker.
func NewServer(checker ConnectionChecker, env PublicEnv, port int) *Server {
	view := NewStatusView(checker)

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	s := &Server{
		view:   view,
		page:   NewPage(view, env),
		router: r,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: r,
		},
	}

	r.Get("/", s.handlePage)
	r.Get("/api/status", s.handleStatus)

	return s
}

// View returns the page's view.
func (s *Server) View() *StatusView {
	return s.view
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Mount starts the view's probe without serving HTTP.
func (s *Server) Mount(ctx context.Context) {
	s.view.Mount(ctx)
}

// Start mounts the view and serves HTTP until stopped.
func (s *Server) Start(ctx context.Context) error {
	s.Mount(ctx)
	return s.server.ListenAndServe()
}

// Stop unmounts the view and shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	s.view.Unmount()
	return s.server.Shutdown(ctx)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.page.Render(&buf); err != nil {
		slog.Error("Failed to render page", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	state := s.view.State()
	_ = json.NewEncoder(w).Encode(StatusResponse{
		State: state.String(),
		Text:  StatusPrefix + state.Label(),
	})
}
