// Package server provides the websocket command transport for catalogd.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stagecraft/catalogd/internal/daemon/dispatch"
)

// Frame is one inbound command: a name plus an ordered, loosely-typed
// argument list.
type Frame struct {
	Command string        `json:"command"`
	Args    []interface{} `json:"args"`
}

// Response is the reply to a Frame. Result is null for void outcomes and an
// array (possibly empty) for sequence outcomes.
type Response struct {
	Command string        `json:"command"`
	Result  []interface{} `json:"result"`
}

// Server manages the daemon's command endpoint.
type Server struct {
	logger   *logrus.Entry
	server   *http.Server
	table    *dispatch.Table
	upgrader websocket.Upgrader
}

// New creates a new Server instance.
func New(logger *logrus.Entry) *Server {
	return &Server{
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// SetTable sets the command table for the server.
func (s *Server) SetTable(table *dispatch.Table) {
	s.table = table
}

// ListenAndServe starts the daemon on the given TCP address.
// It blocks until the server stops or fails.
func (s *Server) ListenAndServe(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s.server = &http.Server{Handler: s.routes()}

	s.logger.WithField("addr", listener.Addr().String()).Info("Daemon listening")
	return s.server.Serve(listener)
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Command listing for client discovery
	mux.HandleFunc("/api/commands", s.handleListCommands)

	// Command socket
	mux.HandleFunc("/ws", s.handleCommands)

	return mux
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

// handleListCommands returns the registered command names as JSON.
func (s *Server) handleListCommands(w http.ResponseWriter, r *http.Request) {
	if s.table == nil {
		http.Error(w, "dispatch table not initialized", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.table.Commands())
}

// handleCommands upgrades the connection and serves command frames until the
// client disconnects. Frames on one connection are handled strictly in
// order; each command runs to completion before the next is read.
func (s *Server) handleCommands(w http.ResponseWriter, r *http.Request) {
	if s.table == nil {
		http.Error(w, "dispatch table not initialized", http.StatusServiceUnavailable)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.WithError(err).Warn("Websocket upgrade failed")
		return
	}
	defer conn.Close()

	s.logger.WithField("remote", conn.RemoteAddr().String()).Debug("Command client connected")

	for {
		var frame Frame
		if err := conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.WithError(err).Debug("Command client read error")
			}
			return
		}

		result := s.table.Dispatch(frame.Command, frame.Args)

		if err := conn.WriteJSON(Response{Command: frame.Command, Result: result}); err != nil {
			s.logger.WithError(err).Debug("Command client write error")
			return
		}
	}
}
