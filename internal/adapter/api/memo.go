package api

import (
	"errors"
	"net/http"

	"github.com/doucuty-cmd/ThaiGovDocs/internal/app/preview"
	"github.com/doucuty-cmd/ThaiGovDocs/internal/domain/memo"
	"github.com/labstack/echo/v4"
)

func (s *Server) MountMemos() {
	memos := s.handler.Group("/memos")

	memos.POST("", s.CreateMemo)
	memos.GET("/:memo_id", s.GetMemo)
	memos.DELETE("/:memo_id", s.CloseMemo)
	memos.PUT("/:memo_id/fields", s.UpdateFields)
	memos.GET("/:memo_id/preview", s.GetPreview)
}

type CreateMemoResponse struct {
	MemoID  string          `json:"memo_id"`
	Preview preview.Preview `json:"preview"`
}

func (s *Server) CreateMemo(c echo.Context) error {
	id, err := s.memoService.Create()
	if err != nil {
		return JsonError(c, http.StatusInternalServerError, err)
	}

	p, _ := s.previews.Get(id)
	return c.JSON(http.StatusCreated, CreateMemoResponse{MemoID: id, Preview: p})
}

type GetMemoRequest struct {
	MemoID string `param:"memo_id"`
}

func (s *Server) GetMemo(c echo.Context) error {
	var req GetMemoRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	snap, err := s.memoService.Snapshot(req.MemoID)
	if err != nil {
		if errors.Is(err, memo.ErrMemoNotFound) {
			return JsonError(c, http.StatusNotFound, err)
		}
		return JsonError(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, snap)
}

func (s *Server) CloseMemo(c echo.Context) error {
	var req GetMemoRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	if err := s.memoService.Close(req.MemoID); err != nil {
		if errors.Is(err, memo.ErrMemoNotFound) {
			return JsonError(c, http.StatusNotFound, err)
		}
		return JsonError(c, http.StatusInternalServerError, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type UpdateFieldsRequest struct {
	MemoID string            `param:"memo_id"`
	Fields map[string]string `json:"fields" validate:"required"`
}

func (s *Server) UpdateFields(c echo.Context) error {
	var req UpdateFieldsRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	if err := s.memoService.SetFields(req.MemoID, req.Fields); err != nil {
		switch {
		case errors.Is(err, memo.ErrMemoNotFound):
			return JsonError(c, http.StatusNotFound, err)
		case errors.Is(err, memo.ErrUnknownField):
			return JsonError(c, http.StatusBadRequest, err)
		}
		return JsonError(c, http.StatusInternalServerError, err)
	}

	p, _ := s.previews.Get(req.MemoID)
	return c.JSON(http.StatusOK, p)
}

func (s *Server) GetPreview(c echo.Context) error {
	var req GetMemoRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	p, ok := s.previews.Get(req.MemoID)
	if !ok {
		return JsonError(c, http.StatusNotFound, memo.ErrMemoNotFound)
	}
	return c.JSON(http.StatusOK, p)
}
