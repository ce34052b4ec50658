package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type errorPage struct {
	page
	Status  int
	Message string
}

// RenderError renders the shared error page. Used by the central HTTP
// error handler; the form flows never go through it, they re-render
// their own pages.
func RenderError(c echo.Context, status int, message string) error {
	return c.Render(status, "error.html", errorPage{
		page:    newPage(c, http.StatusText(status)),
		Status:  status,
		Message: message,
	})
}
