package handler

import (
	"strings"
	"testing"
)

func TestValidator_KeysErrorsByFormTag(t *testing.T) {
	v := NewValidator()

	form := registerForm{
		Username:  "",
		Password:  "secret1",
		Email:     "not-an-email",
		FirstName: "A",
		LastName:  "A",
	}
	err := v.Validate(&form)
	fe, ok := err.(FieldErrors)
	if !ok {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if fe["username"] != "This field is required." {
		t.Fatalf("unexpected username error: %q", fe["username"])
	}
	if fe["email"] != "Enter a valid email address." {
		t.Fatalf("unexpected email error: %q", fe["email"])
	}
	if _, present := fe["password"]; present {
		t.Fatalf("valid password must not produce an error")
	}
}

func TestValidator_TitleBoundary(t *testing.T) {
	v := NewValidator()

	form := feedbackForm{Title: strings.Repeat("x", 75), Content: "Hello"}
	if err := v.Validate(&form); err != nil {
		t.Fatalf("75-char title should pass: %v", err)
	}

	form.Title = strings.Repeat("x", 76)
	err := v.Validate(&form)
	fe, ok := err.(FieldErrors)
	if !ok {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if fe["title"] != "Must be at most 75 characters." {
		t.Fatalf("unexpected title error: %q", fe["title"])
	}
}

func TestValidator_PasswordLengthRange(t *testing.T) {
	v := NewValidator()

	form := loginForm{Username: "alice", Password: "short"}
	err := v.Validate(&form)
	fe, ok := err.(FieldErrors)
	if !ok {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if fe["password"] != "Must be at least 6 characters." {
		t.Fatalf("unexpected password error: %q", fe["password"])
	}

	form.Password = strings.Repeat("p", 26)
	err = v.Validate(&form)
	fe, ok = err.(FieldErrors)
	if !ok {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if fe["password"] != "Must be at most 25 characters." {
		t.Fatalf("unexpected password error: %q", fe["password"])
	}
}

func TestFieldErrors_ErrorString(t *testing.T) {
	fe := FieldErrors{"title": "Must be at most 75 characters.", "content": "This field is required."}
	got := fe.Error()
	want := "content: This field is required.; title: Must be at most 75 characters."
	if got != want {
		t.Fatalf("unexpected message: %q", got)
	}
}
