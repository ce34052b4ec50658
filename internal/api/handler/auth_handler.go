package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/feedbackhub/feedback-portal/internal/api/metrics"
	"github.com/feedbackhub/feedback-portal/internal/api/middleware"
	"github.com/feedbackhub/feedback-portal/internal/core/domain"
	"github.com/feedbackhub/feedback-portal/internal/core/ports"
)

// AuthHandler serves the register, login, and logout pages.
type AuthHandler struct {
	auth    ports.AuthService
	limiter ports.LoginLimiter
	logger  zerolog.Logger
}

func NewAuthHandler(auth ports.AuthService, limiter ports.LoginLimiter, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, limiter: limiter, logger: logger}
}

// Home redirects to the login page.
func (h *AuthHandler) Home(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/login")
}

// ShowRegister renders the registration form. Identified callers are
// sent to their own profile instead.
func (h *AuthHandler) ShowRegister(c echo.Context) error {
	if identity := middleware.Identity(c); identity != "" {
		return redirectToProfile(c, identity)
	}
	return c.Render(http.StatusOK, "register.html", registerPage{page: newPage(c, "Register")})
}

// Register handles the registration form submission.
func (h *AuthHandler) Register(c echo.Context) error {
	if identity := middleware.Identity(c); identity != "" {
		return redirectToProfile(c, identity)
	}

	var form registerForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		fe, ok := err.(FieldErrors)
		if !ok {
			return err
		}
		return c.Render(http.StatusOK, "register.html", registerPage{
			page: newPage(c, "Register"), Form: form, Errors: fe,
		})
	}

	user, err := h.auth.Register(c.Request().Context(), ports.RegisterInput{
		Username:  form.Username,
		Password:  form.Password,
		Email:     form.Email,
		FirstName: form.FirstName,
		LastName:  form.LastName,
	})
	if err != nil {
		if err == domain.ErrUserExists {
			// Re-render with an inline error; the session stays untouched.
			return c.Render(http.StatusOK, "register.html", registerPage{
				page: newPage(c, "Register"), Form: form,
				Errors: FieldErrors{"username": "Username taken. Please pick another"},
			})
		}
		return err
	}

	metrics.RegistrationsTotal.Inc()

	if err := middleware.SetIdentity(c, user.Username); err != nil {
		return err
	}
	middleware.AddFlash(c, "Welcome! Successfully Created Your Account!")
	return redirectToProfile(c, user.Username)
}

// ShowLogin renders the login form, or redirects identified callers to
// their profile.
func (h *AuthHandler) ShowLogin(c echo.Context) error {
	if identity := middleware.Identity(c); identity != "" {
		return redirectToProfile(c, identity)
	}
	return c.Render(http.StatusOK, "login.html", loginPage{page: newPage(c, "Log in")})
}

// Login handles the login form submission, throttled per client IP.
func (h *AuthHandler) Login(c echo.Context) error {
	if identity := middleware.Identity(c); identity != "" {
		return redirectToProfile(c, identity)
	}

	var form loginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		fe, ok := err.(FieldErrors)
		if !ok {
			return err
		}
		return c.Render(http.StatusOK, "login.html", loginPage{
			page: newPage(c, "Log in"), Form: form, Errors: fe,
		})
	}

	ctx := c.Request().Context()
	ip := c.RealIP()

	if retryAfter, err := h.limiter.RetryAfter(ctx, ip); err != nil {
		// A broken limiter must not lock everyone out.
		h.logger.Error().Err(err).Str("ip", ip).Msg("login throttle unavailable")
	} else if retryAfter > 0 {
		metrics.LoginThrottledTotal.Inc()
		c.Response().Header().Set("Retry-After", strconv.FormatInt(int64(retryAfter.Seconds()), 10))
		return echo.NewHTTPError(http.StatusTooManyRequests, "Too many failed logins. Try again later.")
	}

	user, err := h.auth.Authenticate(ctx, form.Username, form.Password)
	if err != nil {
		if err == domain.ErrInvalidCredentials {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			if _, lerr := h.limiter.RecordFailure(ctx, ip); lerr != nil {
				h.logger.Error().Err(lerr).Str("ip", ip).Msg("failed to record login failure")
			}
			// One generic message for both unknown user and bad password.
			return c.Render(http.StatusOK, "login.html", loginPage{
				page: newPage(c, "Log in"), Form: form,
				Errors: FieldErrors{"username": "Invalid username/password"},
			})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	if err := h.limiter.Reset(ctx, ip); err != nil {
		h.logger.Error().Err(err).Str("ip", ip).Msg("failed to reset login throttle")
	}

	if err := middleware.SetIdentity(c, user.Username); err != nil {
		return err
	}
	middleware.AddFlash(c, fmt.Sprintf("Welcome Back, %s!", user.Username))
	return redirectToProfile(c, user.Username)
}

// Logout clears the session identity and returns to the login page.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := middleware.ClearIdentity(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/login")
}

func redirectToProfile(c echo.Context, username string) error {
	status := http.StatusFound
	if c.Request().Method == http.MethodPost {
		status = http.StatusSeeOther
	}
	return c.Redirect(status, "/users/"+username)
}
