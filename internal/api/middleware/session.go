// Package middleware holds the session identity helpers and the
// login-gating middleware shared by all page handlers.
package middleware

import (
	"net/http"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	// SessionName is the cookie name for the identity session.
	SessionName = "feedback_session"

	identityKey = "username"
)

// Identity returns the username stored in the caller's session, or the
// empty string for anonymous requests.
func Identity(c echo.Context) string {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return ""
	}
	username, _ := sess.Values[identityKey].(string)
	return username
}

// SetIdentity establishes the session identity after a successful
// register or login and persists the cookie.
func SetIdentity(c echo.Context, username string) error {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return err
	}
	sess.Values[identityKey] = username
	return sess.Save(c.Request(), c.Response())
}

// ClearIdentity drops the session identity (logout, account deletion).
func ClearIdentity(c echo.Context) error {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return err
	}
	delete(sess.Values, identityKey)
	sess.Options.MaxAge = -1
	return sess.Save(c.Request(), c.Response())
}

// AddFlash queues a one-shot message rendered by the next page view.
func AddFlash(c echo.Context, message string) {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return
	}
	sess.AddFlash(message)
	_ = sess.Save(c.Request(), c.Response())
}

// Flashes consumes and returns any queued flash messages.
func Flashes(c echo.Context) []string {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return nil
	}
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = sess.Save(c.Request(), c.Response())

	out := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// RequireLogin redirects anonymous callers to the login page with a
// flash message. Identified callers pass through with their identity
// already readable via Identity; ownership checks stay in the handlers
// because the rule differs per route.
func RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if Identity(c) == "" {
			AddFlash(c, "Must be logged in")
			return c.Redirect(http.StatusFound, "/login")
		}
		return next(c)
	}
}
