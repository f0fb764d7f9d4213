package api

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

// User-facing Thai notification texts, as printed on the original
// paper-form page.
const (
	MsgIncompleteName   = "กรุณากรอกชื่อและนามสกุลให้ครบถ้วน"
	MsgGenerationFailed = "เกิดข้อผิดพลาดในการสร้างเอกสาร"
)

type JsonErrorModel struct {
	Message string `json:"message"`
}

func JsonError(c echo.Context, status int, content any) error {
	data := &JsonErrorModel{Message: fmt.Sprintf("%v", content)}
	return c.JSON(status, data)
}
