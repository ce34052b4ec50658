package handler

import "github.com/feedbackhub/feedback-portal/internal/core/domain"

// Form types bound from the server-rendered pages. The validate tags are
// the single source of the field constraints; the HTML attributes only
// mirror them for client-side convenience.

type registerForm struct {
	Username  string `form:"username"   validate:"required,min=1,max=20"`
	Password  string `form:"password"   validate:"required,min=6,max=25"`
	Email     string `form:"email"      validate:"required,email,max=60"`
	FirstName string `form:"first_name" validate:"required,max=30"`
	LastName  string `form:"last_name"  validate:"required,max=30"`
}

type loginForm struct {
	Username string `form:"username" validate:"required,min=1,max=20"`
	Password string `form:"password" validate:"required,min=6,max=25"`
}

type feedbackForm struct {
	Title   string `form:"title"   validate:"required,max=75"`
	Content string `form:"content" validate:"required,max=300"`
}

// Pages rendered by the handlers.

type registerPage struct {
	page
	Form   registerForm
	Errors FieldErrors
}

type loginPage struct {
	page
	Form   loginForm
	Errors FieldErrors
}

type profilePage struct {
	page
	User     *domain.User
	Feedback []*domain.Feedback
}

type feedbackPage struct {
	page
	Heading string
	Action  string
	Form    feedbackForm
	Errors  FieldErrors
}
