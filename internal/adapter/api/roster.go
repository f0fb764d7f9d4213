package api

import (
	"errors"
	"net/http"

	"github.com/doucuty-cmd/ThaiGovDocs/internal/app/preview"
	"github.com/doucuty-cmd/ThaiGovDocs/internal/domain/document"
	"github.com/doucuty-cmd/ThaiGovDocs/internal/domain/memo"
	"github.com/labstack/echo/v4"
)

func (s *Server) MountRoster() {
	memos := s.handler.Group("/memos")

	memos.POST("/:memo_id/students", s.AddStudent)
	memos.DELETE("/:memo_id/students/:student_id", s.RemoveStudent)
	memos.POST("/:memo_id/teachers", s.AddTeacher)
	memos.DELETE("/:memo_id/teachers/:teacher_id", s.RemoveTeacher)
	memos.PUT("/:memo_id/issuer", s.OverrideIssuer)
}

type AddStudentRequest struct {
	MemoID    string `param:"memo_id"`
	Title     string `json:"title"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Grade     string `json:"grade"`
	Room      string `json:"room"`
}

type AddStudentResponse struct {
	Student document.Student `json:"student"`
	Preview preview.Preview  `json:"preview"`
}

func (s *Server) AddStudent(c echo.Context) error {
	var req AddStudentRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	st, err := s.memoService.AddStudent(req.MemoID, req.Title, req.Firstname, req.Lastname, req.Grade, req.Room)
	if err != nil {
		return s.rosterError(c, err)
	}

	p, _ := s.previews.Get(req.MemoID)
	return c.JSON(http.StatusCreated, AddStudentResponse{Student: st, Preview: p})
}

type RemoveStudentRequest struct {
	MemoID    string `param:"memo_id"`
	StudentID int64  `param:"student_id"`
}

func (s *Server) RemoveStudent(c echo.Context) error {
	var req RemoveStudentRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	if err := s.memoService.RemoveStudent(req.MemoID, req.StudentID); err != nil {
		return s.rosterError(c, err)
	}

	p, _ := s.previews.Get(req.MemoID)
	return c.JSON(http.StatusOK, p)
}

type AddTeacherRequest struct {
	MemoID     string `param:"memo_id"`
	Title      string `json:"title"`
	Firstname  string `json:"firstname"`
	Lastname   string `json:"lastname"`
	Department string `json:"department"`
}

type AddTeacherResponse struct {
	Teacher document.Teacher `json:"teacher"`
	Issuer  document.Issuer  `json:"issuer"`
	Preview preview.Preview  `json:"preview"`
}

func (s *Server) AddTeacher(c echo.Context) error {
	var req AddTeacherRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	t, err := s.memoService.AddTeacher(req.MemoID, req.Title, req.Firstname, req.Lastname, req.Department)
	if err != nil {
		return s.rosterError(c, err)
	}

	snap, err := s.memoService.Snapshot(req.MemoID)
	if err != nil {
		return JsonError(c, http.StatusInternalServerError, err)
	}

	p, _ := s.previews.Get(req.MemoID)
	return c.JSON(http.StatusCreated, AddTeacherResponse{Teacher: t, Issuer: snap.Issuer, Preview: p})
}

type RemoveTeacherRequest struct {
	MemoID    string `param:"memo_id"`
	TeacherID int64  `param:"teacher_id"`
}

func (s *Server) RemoveTeacher(c echo.Context) error {
	var req RemoveTeacherRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	if err := s.memoService.RemoveTeacher(req.MemoID, req.TeacherID); err != nil {
		return s.rosterError(c, err)
	}

	p, _ := s.previews.Get(req.MemoID)
	return c.JSON(http.StatusOK, p)
}

type OverrideIssuerRequest struct {
	MemoID   string `json:"-" param:"memo_id"`
	Name     string `json:"name"`
	Position string `json:"position"`
}

func (s *Server) OverrideIssuer(c echo.Context) error {
	var req OverrideIssuerRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	if err := s.memoService.OverrideIssuer(req.MemoID, req.Name, req.Position); err != nil {
		return s.rosterError(c, err)
	}

	p, _ := s.previews.Get(req.MemoID)
	return c.JSON(http.StatusOK, p)
}

func (s *Server) rosterError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, memo.ErrBlankName):
		return JsonError(c, http.StatusBadRequest, MsgIncompleteName)
	case errors.Is(err, memo.ErrMemoNotFound):
		return JsonError(c, http.StatusNotFound, err)
	}
	return JsonError(c, http.StatusInternalServerError, err)
}
