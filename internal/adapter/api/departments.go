package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// The fixed catalog of requesting units offered by the memo form.
var departments = []string{
	"กลุ่มสาระการเรียนรู้วิทยาศาสตร์และเทคโนโลยี",
	"กลุ่มสาระการเรียนรู้ภาษาไทย",
	"กลุ่มสาระการเรียนรู้คณิตศาสตร์",
	"กลุ่มสาระการเรียนรู้สังคมศึกษาฯ",
	"กลุ่มสาระการเรียนรู้ภาษาต่างประเทศ",
	"กลุ่มสาระการเรียนรู้การงานอาชีพ",
	"กลุ่มสาระการเรียนรู้สุขศึกษาฯ",
}

func (s *Server) MountDepartments() {
	s.handler.GET("/departments", s.GetDepartments)
}

type GetDepartmentsResponse struct {
	Departments []string `json:"departments"`
}

func (s *Server) GetDepartments(c echo.Context) error {
	return c.JSON(http.StatusOK, GetDepartmentsResponse{Departments: departments})
}
