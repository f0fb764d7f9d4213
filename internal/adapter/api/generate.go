package api

import (
	"errors"
	"net/http"

	"github.com/doucuty-cmd/ThaiGovDocs/internal/adapter/renderer"
	"github.com/doucuty-cmd/ThaiGovDocs/internal/domain/document"
	"github.com/doucuty-cmd/ThaiGovDocs/internal/domain/memo"
	"github.com/labstack/echo/v4"
)

func (s *Server) MountGeneration() {
	s.handler.POST("/memos/:memo_id/generate", s.GenerateDocument)
}

type GenerateRequest struct {
	MemoID string `param:"memo_id"`
	Format string `json:"format" validate:"required,oneof=docx pdf"`
}

type GenerateResponse struct {
	DownloadURL string `json:"download_url"`
}

// GenerateDocument dispatches the current snapshot to the rendering
// service and answers with the download path the client should
// navigate to. A failed attempt is fatal to that attempt only; the
// editing session stays intact.
func (s *Server) GenerateDocument(c echo.Context) error {
	var req GenerateRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	format, err := renderer.ParseFormat(req.Format)
	if err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	snap, err := s.memoService.Snapshot(req.MemoID)
	if err != nil {
		if errors.Is(err, memo.ErrMemoNotFound) {
			return JsonError(c, http.StatusNotFound, err)
		}
		return JsonError(c, http.StatusInternalServerError, err)
	}

	url, err := s.renderer.Generate(c.Request().Context(), snap, format)
	if err != nil {
		switch {
		case errors.Is(err, document.ErrInvalidDate):
			return JsonError(c, http.StatusBadRequest, err)
		case errors.Is(err, renderer.ErrGeneration):
			return JsonError(c, http.StatusBadGateway, MsgGenerationFailed)
		}
		return JsonError(c, http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, GenerateResponse{DownloadURL: url})
}
