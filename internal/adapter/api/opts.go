package api

import (
	"log/slog"
	"net"
	"strconv"

	"github.com/doucuty-cmd/ThaiGovDocs/internal/adapter/renderer"
	memoservice "github.com/doucuty-cmd/ThaiGovDocs/internal/app/memo"
	"github.com/doucuty-cmd/ThaiGovDocs/internal/app/preview"
)

type Option func(*Server)

func Addr(host string, port int) Option {
	return func(s *Server) {
		s.addr = net.JoinHostPort(host, strconv.Itoa(port))
	}
}

func Logger(l *slog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

func MemoService(service *memoservice.Service) Option {
	return func(s *Server) {
		s.memoService = service
	}
}

func Previews(sync *preview.Synchronizer) Option {
	return func(s *Server) {
		s.previews = sync
	}
}

func Renderer(client *renderer.Client) Option {
	return func(s *Server) {
		s.renderer = client
	}
}
