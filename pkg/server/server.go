// Package server runs the newline-delimited JSON-RPC loop that exposes the
// registered tools to an MCP client over a pair of streams.
package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/theapemachine/mcp-server-time/pkg/tools"
)

const (
	defaultName    = "mcp-time"
	defaultVersion = "1.0.0"

	// logPreview bounds how much of each message reaches the debug log.
	logPreview = 100
)

type state int

const (
	running state = iota
	shuttingDown
)

// Server dispatches JSON-RPC requests to the tool registry, one at a time.
type Server struct {
	registry *tools.Registry
	info     mcp.Implementation
	logger   *log.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. A nil logger falls back to log.Default().
func WithLogger(logger *log.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithServerInfo sets the name and version reported by initialize.
func WithServerInfo(name, version string) Option {
	return func(s *Server) {
		if name != "" {
			s.info.Name = name
		}
		if version != "" {
			s.info.Version = version
		}
	}
}

// New creates a Server over registry.
func New(registry *tools.Registry, opts ...Option) *Server {
	s := &Server{
		registry: registry,
		info:     mcp.Implementation{Name: defaultName, Version: defaultVersion},
		logger:   log.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.logger = s.logger.With("session", uuid.NewString())
	return s
}

/*
Run reads one request per line from r and writes one response per line to w,
flushing after each. It returns nil when the input ends or after a shutdown
request has been answered, and ctx.Err() when ctx is cancelled first.
*/
func (s *Server) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan []byte)
	readErr := make(chan error, 1)
	go readLines(ctx, r, lines, readErr)

	out := bufio.NewWriter(w)
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)

	s.logger.Info("time server ready", "name", s.info.Name, "version", s.info.Version)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				err := <-readErr
				if err == nil {
					s.logger.Info("input closed, stopping")
				}
				return err
			}

			response, next := s.handleLine(ctx, line)
			if response != nil {
				if err := s.write(out, enc, response); err != nil {
					return err
				}
			}

			if next == shuttingDown {
				s.logger.Info("shutdown requested, stopping")
				return nil
			}
		}
	}
}

// readLines forwards each input line, including a final unterminated one.
// It closes lines when the input ends and reports why on errs.
func readLines(ctx context.Context, r io.Reader, lines chan<- []byte, errs chan<- error) {
	defer close(lines)

	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadBytes('\n')
		if len(line) > 0 {
			select {
			case lines <- line:
			case <-ctx.Done():
				errs <- ctx.Err()
				return
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				err = nil
			}
			errs <- err
			return
		}
	}
}

func (s *Server) write(out *bufio.Writer, enc *json.Encoder, response any) error {
	if err := enc.Encode(response); err != nil {
		return fmt.Errorf("encode response: %w", err)
	}

	if err := out.Flush(); err != nil {
		return fmt.Errorf("flush response: %w", err)
	}

	if s.logger.GetLevel() <= log.DebugLevel {
		buf, _ := json.Marshal(response)
		s.logger.Debug("sent", "message", preview(buf))
	}

	return nil
}

// handleLine turns one input line into at most one response.
func (s *Server) handleLine(ctx context.Context, line []byte) (any, state) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return nil, running
	}

	s.logger.Debug("received", "message", preview(line))

	req, rpcErr := decodeRequest(line)
	if rpcErr != nil {
		s.logger.Warn("rejected message", "code", rpcErr.Code, "error", rpcErr.Message)
		return errorResponse(req.ID, rpcErr), running
	}

	next := running
	if req.Method == "shutdown" {
		next = shuttingDown
	}

	result, rpcErr := s.dispatch(ctx, req)

	if req.notification() {
		s.logger.Debug("notification handled", "method", req.Method)
		return nil, next
	}

	if rpcErr != nil {
		return errorResponse(req.ID, rpcErr), next
	}

	return mcp.JSONRPCResponse{
		JSONRPC: mcp.JSONRPC_VERSION,
		ID:      req.ID,
		Result:  result,
	}, next
}

func errorResponse(id mcp.RequestId, rpcErr *rpcError) mcp.JSONRPCError {
	return mcp.NewJSONRPCError(id, rpcErr.Code, rpcErr.Message, nil)
}

func preview(buf []byte) string {
	if len(buf) <= logPreview {
		return string(buf)
	}
	return string(buf[:logPreview]) + "..."
}
