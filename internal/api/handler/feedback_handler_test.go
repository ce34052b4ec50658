package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/feedbackhub/feedback-portal/internal/core/domain"
)

type stubFeedbackService struct {
	createFn func(ctx context.Context, owner, title, content string) (*domain.Feedback, error)
	getFn    func(ctx context.Context, id int64) (*domain.Feedback, error)
	updateFn func(ctx context.Context, id int64, actor, title, content string) (*domain.Feedback, error)
	deleteFn func(ctx context.Context, id int64, actor string) (*domain.Feedback, error)
}

func (s *stubFeedbackService) Create(ctx context.Context, owner, title, content string) (*domain.Feedback, error) {
	return s.createFn(ctx, owner, title, content)
}

func (s *stubFeedbackService) Get(ctx context.Context, id int64) (*domain.Feedback, error) {
	return s.getFn(ctx, id)
}

func (s *stubFeedbackService) Update(ctx context.Context, id int64, actor, title, content string) (*domain.Feedback, error) {
	return s.updateFn(ctx, id, actor, title, content)
}

func (s *stubFeedbackService) Delete(ctx context.Context, id int64, actor string) (*domain.Feedback, error) {
	return s.deleteFn(ctx, id, actor)
}

func feedbackValues(title, content string) url.Values {
	return url.Values{"title": {title}, "content": {content}}
}

func TestFeedbackHandler_Add_Success(t *testing.T) {
	e, mw := newTestEcho()
	var gotOwner, gotTitle string
	stub := &stubFeedbackService{
		createFn: func(_ context.Context, owner, title, content string) (*domain.Feedback, error) {
			gotOwner, gotTitle = owner, title
			return &domain.Feedback{ID: 1, Title: title, Content: content, Username: owner}, nil
		},
	}
	h := NewFeedbackHandler(stub, zerolog.Nop())
	cookies := loginCookies(t, e, mw, "alice")

	req := formRequest("/users/alice/feedback/add", feedbackValues("Hi", "Hello"), cookies)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("username")
	c.SetParamValues("alice")

	if err := mw(h.Add)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if gotOwner != "alice" || gotTitle != "Hi" {
		t.Fatalf("unexpected create args: %s %s", gotOwner, gotTitle)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/users/alice" {
		t.Fatalf("unexpected redirect: %s", loc)
	}
}

func TestFeedbackHandler_Add_ForAnotherUser(t *testing.T) {
	e, mw := newTestEcho()
	stub := &stubFeedbackService{
		createFn: func(context.Context, string, string, string) (*domain.Feedback, error) {
			t.Fatalf("create must not be called")
			return nil, nil
		},
	}
	h := NewFeedbackHandler(stub, zerolog.Nop())
	cookies := loginCookies(t, e, mw, "bob")

	req := formRequest("/users/alice/feedback/add", feedbackValues("Hi", "Hello"), cookies)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("username")
	c.SetParamValues("alice")

	if err := mw(h.Add)(c); err != domain.ErrNotOwner {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
}

func TestFeedbackHandler_Add_TitleTooLong(t *testing.T) {
	e, mw := newTestEcho()
	stub := &stubFeedbackService{
		createFn: func(context.Context, string, string, string) (*domain.Feedback, error) {
			t.Fatalf("create must not be called on invalid input")
			return nil, nil
		},
	}
	h := NewFeedbackHandler(stub, zerolog.Nop())
	cookies := loginCookies(t, e, mw, "alice")

	long := strings.Repeat("x", 76) // form limit is 75
	req := formRequest("/users/alice/feedback/add", feedbackValues(long, "Hello"), cookies)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("username")
	c.SetParamValues("alice")

	if err := mw(h.Add)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected form re-render, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "at most 75") {
		t.Fatalf("expected title field error, body: %s", rec.Body.String())
	}
}

func TestFeedbackHandler_ShowUpdate_PrefillsForm(t *testing.T) {
	e, mw := newTestEcho()
	stub := &stubFeedbackService{
		getFn: func(_ context.Context, id int64) (*domain.Feedback, error) {
			return &domain.Feedback{ID: id, Title: "Hi", Content: "Hello", Username: "alice"}, nil
		},
	}
	h := NewFeedbackHandler(stub, zerolog.Nop())
	cookies := loginCookies(t, e, mw, "alice")

	req := getRequest("/feedback/1/update", cookies)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := mw(h.ShowUpdate)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `value="Hi"`) || !strings.Contains(body, "Hello") {
		t.Fatalf("form not prefilled: %s", body)
	}
}

// Unknown ids are 404 before any ownership decision.
func TestFeedbackHandler_ShowUpdate_UnknownID(t *testing.T) {
	e, mw := newTestEcho()
	stub := &stubFeedbackService{
		getFn: func(context.Context, int64) (*domain.Feedback, error) {
			return nil, domain.ErrFeedbackNotFound
		},
	}
	h := NewFeedbackHandler(stub, zerolog.Nop())

	req := getRequest("/feedback/42/update", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := mw(h.ShowUpdate)(c); err != domain.ErrFeedbackNotFound {
		t.Fatalf("expected ErrFeedbackNotFound, got %v", err)
	}
}

func TestFeedbackHandler_ShowUpdate_NotOwner(t *testing.T) {
	e, mw := newTestEcho()
	stub := &stubFeedbackService{
		getFn: func(_ context.Context, id int64) (*domain.Feedback, error) {
			return &domain.Feedback{ID: id, Title: "Hi", Username: "alice"}, nil
		},
	}
	h := NewFeedbackHandler(stub, zerolog.Nop())
	cookies := loginCookies(t, e, mw, "bob")

	req := getRequest("/feedback/1/update", cookies)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := mw(h.ShowUpdate)(c); err != domain.ErrNotOwner {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
}

func TestFeedbackHandler_Update_Success(t *testing.T) {
	e, mw := newTestEcho()
	stub := &stubFeedbackService{
		updateFn: func(_ context.Context, id int64, actor, title, content string) (*domain.Feedback, error) {
			if id != 1 || actor != "alice" || title != "Changed" {
				t.Fatalf("unexpected update args: %d %s %s", id, actor, title)
			}
			return &domain.Feedback{ID: id, Title: title, Content: content, Username: actor}, nil
		},
	}
	h := NewFeedbackHandler(stub, zerolog.Nop())
	cookies := loginCookies(t, e, mw, "alice")

	req := formRequest("/feedback/1/update", feedbackValues("Changed", "Body"), cookies)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := mw(h.Update)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
}

func TestFeedbackHandler_Update_NotOwner(t *testing.T) {
	e, mw := newTestEcho()
	stub := &stubFeedbackService{
		updateFn: func(context.Context, int64, string, string, string) (*domain.Feedback, error) {
			return nil, domain.ErrNotOwner
		},
	}
	h := NewFeedbackHandler(stub, zerolog.Nop())
	cookies := loginCookies(t, e, mw, "bob")

	req := formRequest("/feedback/1/update", feedbackValues("X", "Y"), cookies)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := mw(h.Update)(c); err != domain.ErrNotOwner {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
}

func TestFeedbackHandler_Delete_Success(t *testing.T) {
	e, mw := newTestEcho()
	stub := &stubFeedbackService{
		deleteFn: func(_ context.Context, id int64, actor string) (*domain.Feedback, error) {
			return &domain.Feedback{ID: id, Username: actor}, nil
		},
	}
	h := NewFeedbackHandler(stub, zerolog.Nop())
	cookies := loginCookies(t, e, mw, "alice")

	req := formRequest("/feedback/1/delete", nil, cookies)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := mw(h.Delete)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/users/alice" {
		t.Fatalf("unexpected redirect: %s", loc)
	}
}

// Deleting a nonexistent entry is 404 regardless of caller identity.
func TestFeedbackHandler_Delete_UnknownID(t *testing.T) {
	e, mw := newTestEcho()
	stub := &stubFeedbackService{
		deleteFn: func(context.Context, int64, string) (*domain.Feedback, error) {
			return nil, domain.ErrFeedbackNotFound
		},
	}
	h := NewFeedbackHandler(stub, zerolog.Nop())

	req := formRequest("/feedback/42/delete", nil, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := mw(h.Delete)(c); err != domain.ErrFeedbackNotFound {
		t.Fatalf("expected ErrFeedbackNotFound, got %v", err)
	}
}

func TestFeedbackHandler_Delete_NonNumericID(t *testing.T) {
	e, mw := newTestEcho()
	stub := &stubFeedbackService{
		deleteFn: func(context.Context, int64, string) (*domain.Feedback, error) {
			t.Fatalf("service must not be called for a malformed id")
			return nil, nil
		},
	}
	h := NewFeedbackHandler(stub, zerolog.Nop())

	req := formRequest("/feedback/abc/delete", nil, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := mw(h.Delete)(c); err != domain.ErrFeedbackNotFound {
		t.Fatalf("expected ErrFeedbackNotFound, got %v", err)
	}
}
