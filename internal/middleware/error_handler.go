package middleware

import (
	"net/http"

	"github.com/fitzone/gym-booking/internal/dto"
	"github.com/labstack/echo/v4"
)

// ErrorHandler renders every error as {"success":false,"code":...,"message":...}.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	body := dto.ErrorResponse{Code: "internal", Message: "internal server error"}

	if he, ok := err.(*echo.HTTPError); ok {
		status = he.Code
		switch m := he.Message.(type) {
		case dto.ErrorResponse:
			body = m
		case string:
			body = dto.ErrorResponse{Code: defaultCode(status), Message: m}
		}
	}

	body.Success = false
	_ = c.JSON(status, body)
}

func defaultCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "badRequest"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "notFound"
	case http.StatusConflict:
		return "conflict"
	default:
		return "internal"
	}
}
