package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/feedbackhub/feedback-portal/internal/api/middleware"
)

// newTestEcho builds an echo instance with the real renderer, validator,
// and cookie-session middleware, mirroring the router setup.
func newTestEcho() (*echo.Echo, echo.MiddlewareFunc) {
	e := echo.New()
	e.Renderer = NewRenderer()
	e.Validator = NewValidator()
	store := sessions.NewCookieStore([]byte("test-secret"))
	return e, session.Middleware(store)
}

// loginCookies runs a throwaway request that stores username in the
// session and returns the resulting cookies for reuse.
func loginCookies(t *testing.T, e *echo.Echo, mw echo.MiddlewareFunc, username string) []*http.Cookie {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := mw(func(c echo.Context) error {
		return middleware.SetIdentity(c, username)
	})
	if err := h(c); err != nil {
		t.Fatalf("failed to prepare session: %v", err)
	}
	return rec.Result().Cookies()
}

// formRequest builds a POST with an urlencoded body.
func formRequest(target string, values url.Values, cookies []*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	return req
}

func getRequest(target string, cookies []*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	return req
}
