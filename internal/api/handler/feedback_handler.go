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

// FeedbackHandler serves the feedback add, edit, and delete flows.
type FeedbackHandler struct {
	feedback ports.FeedbackService
	logger   zerolog.Logger
}

func NewFeedbackHandler(feedback ports.FeedbackService, logger zerolog.Logger) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback, logger: logger}
}

// ShowAdd renders the add-feedback form for the user's own page.
func (h *FeedbackHandler) ShowAdd(c echo.Context) error {
	username := c.Param("username")
	if identity := middleware.Identity(c); identity == "" || identity != username {
		return domain.ErrNotOwner
	}

	return c.Render(http.StatusOK, "feedback_form.html", feedbackPage{
		page:    newPage(c, "Add feedback"),
		Heading: "Add feedback",
		Action:  fmt.Sprintf("/users/%s/feedback/add", username),
	})
}

// Add creates a feedback entry owned by the caller.
func (h *FeedbackHandler) Add(c echo.Context) error {
	username := c.Param("username")
	if identity := middleware.Identity(c); identity == "" || identity != username {
		return domain.ErrNotOwner
	}

	form, fe, err := h.bindForm(c)
	if err != nil {
		return err
	}
	if fe != nil {
		return c.Render(http.StatusOK, "feedback_form.html", feedbackPage{
			page:    newPage(c, "Add feedback"),
			Heading: "Add feedback",
			Action:  fmt.Sprintf("/users/%s/feedback/add", username),
			Form:    form,
			Errors:  fe,
		})
	}

	if _, err := h.feedback.Create(c.Request().Context(), username, form.Title, form.Content); err != nil {
		return err
	}

	metrics.EntriesMutationsTotal.WithLabelValues("create").Inc()
	return redirectToProfile(c, username)
}

// ShowUpdate renders the edit form pre-filled with the stored entry.
// Lookup precedes the ownership check, so unknown ids are 404 for everyone.
func (h *FeedbackHandler) ShowUpdate(c echo.Context) error {
	id, err := feedbackID(c)
	if err != nil {
		return err
	}

	entry, err := h.feedback.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if identity := middleware.Identity(c); identity == "" || identity != entry.Username {
		return domain.ErrNotOwner
	}

	return c.Render(http.StatusOK, "feedback_form.html", feedbackPage{
		page:    newPage(c, "Edit feedback"),
		Heading: "Edit feedback",
		Action:  fmt.Sprintf("/feedback/%d/update", id),
		Form:    feedbackForm{Title: entry.Title, Content: entry.Content},
	})
}

// Update edits an entry owned by the caller.
func (h *FeedbackHandler) Update(c echo.Context) error {
	id, err := feedbackID(c)
	if err != nil {
		return err
	}

	form, fe, err := h.bindForm(c)
	if err != nil {
		return err
	}
	if fe != nil {
		return c.Render(http.StatusOK, "feedback_form.html", feedbackPage{
			page:    newPage(c, "Edit feedback"),
			Heading: "Edit feedback",
			Action:  fmt.Sprintf("/feedback/%d/update", id),
			Form:    form,
			Errors:  fe,
		})
	}

	entry, err := h.feedback.Update(c.Request().Context(), id, middleware.Identity(c), form.Title, form.Content)
	if err != nil {
		return err
	}

	metrics.EntriesMutationsTotal.WithLabelValues("update").Inc()
	return redirectToProfile(c, entry.Username)
}

// Delete removes an entry owned by the caller.
func (h *FeedbackHandler) Delete(c echo.Context) error {
	id, err := feedbackID(c)
	if err != nil {
		return err
	}

	entry, err := h.feedback.Delete(c.Request().Context(), id, middleware.Identity(c))
	if err != nil {
		return err
	}

	metrics.EntriesMutationsTotal.WithLabelValues("delete").Inc()
	return redirectToProfile(c, entry.Username)
}

func (h *FeedbackHandler) bindForm(c echo.Context) (feedbackForm, FieldErrors, error) {
	var form feedbackForm
	if err := c.Bind(&form); err != nil {
		return form, nil, echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		fe, ok := err.(FieldErrors)
		if !ok {
			return form, nil, err
		}
		return form, fe, nil
	}
	return form, nil, nil
}

// feedbackID parses the :id route parameter. Anything that is not an
// integer behaves like a missing entry.
func feedbackID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domain.ErrFeedbackNotFound
	}
	return id, nil
}
