package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/feedbackhub/feedback-portal/internal/api/metrics"
	"github.com/feedbackhub/feedback-portal/internal/api/middleware"
	"github.com/feedbackhub/feedback-portal/internal/core/domain"
	"github.com/feedbackhub/feedback-portal/internal/core/ports"
)

// UserHandler serves the profile page and account deletion.
type UserHandler struct {
	users  ports.UserService
	logger zerolog.Logger
}

func NewUserHandler(users ports.UserService, logger zerolog.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// Show renders a user's profile with their feedback. The route sits
// behind RequireLogin, which already redirected anonymous callers;
// identified callers viewing someone else's profile get a hard denial.
func (h *UserHandler) Show(c echo.Context) error {
	username := c.Param("username")
	if middleware.Identity(c) != username {
		return domain.ErrNotOwner
	}

	ctx := c.Request().Context()
	user, err := h.users.Get(ctx, username)
	if err != nil {
		return err
	}
	feedback, err := h.users.ListFeedback(ctx, username)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "profile.html", profilePage{
		page:     newPage(c, user.Username),
		User:     user,
		Feedback: feedback,
	})
}

// Delete removes the caller's own account and everything it owns. Unlike
// the profile view, anonymous callers are denied outright rather than
// redirected.
func (h *UserHandler) Delete(c echo.Context) error {
	username := c.Param("username")
	if identity := middleware.Identity(c); identity == "" || identity != username {
		return domain.ErrNotOwner
	}

	if err := h.users.Delete(c.Request().Context(), username); err != nil {
		return err
	}

	metrics.AccountsDeletedTotal.Inc()

	if err := middleware.ClearIdentity(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/login")
}
