package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppErrorMessageFormatting(t *testing.T) {
	base := New("TEST_CODE", "something failed", http.StatusBadRequest)
	if got := base.Error(); got != "something failed" {
		t.Fatalf("Error() = %q, want %q", got, "something failed")
	}

	inner := errors.New("disk on fire")
	wrapped := base.WithInternal(inner)
	if got := wrapped.Error(); got != "something failed: disk on fire" {
		t.Fatalf("Error() = %q", got)
	}
	if !errors.Is(wrapped, inner) {
		t.Fatal("expected wrapped error to match internal error via errors.Is")
	}

	// WithInternal must not mutate the shared sentinel.
	if base.Internal != nil {
		t.Fatal("WithInternal mutated the original error")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil) != nil {
		t.Fatal("expected nil for nil input")
	}

	appErr := FromError(ErrNotFound)
	if appErr != ErrNotFound {
		t.Fatal("expected AppError values to pass through unchanged")
	}

	generic := FromError(errors.New("boom"))
	if generic.StatusCode != http.StatusInternalServerError {
		t.Fatalf("generic errors should map to 500, got %d", generic.StatusCode)
	}
	if generic.Code != ErrInternalServer.Code {
		t.Fatalf("unexpected code %q", generic.Code)
	}
}

func TestTaxonomyStatusCodes(t *testing.T) {
	cases := map[*AppError]int{
		ErrUnauthorized:       http.StatusUnauthorized,
		ErrInvalidCredentials: http.StatusUnauthorized,
		ErrForbidden:          http.StatusForbidden,
		ErrNotFound:           http.StatusNotFound,
		ErrConflict:           http.StatusConflict,
		ErrBadRequest:         http.StatusBadRequest,
		ErrInternalServer:     http.StatusInternalServerError,
	}
	for err, want := range cases {
		if err.StatusCode != want {
			t.Fatalf("%s: status = %d, want %d", err.Code, err.StatusCode, want)
		}
	}
}

func TestConvenienceConstructors(t *testing.T) {
	br := NewBadRequest("difficulty must be between 1 and 5")
	if br.StatusCode != http.StatusBadRequest || br.Code != ErrBadRequest.Code {
		t.Fatalf("unexpected bad request error: %+v", br)
	}

	cf := NewConflict("username already taken")
	if cf.StatusCode != http.StatusConflict || cf.Code != ErrConflict.Code {
		t.Fatalf("unexpected conflict error: %+v", cf)
	}

	wrapped := Wrap(errors.New("oops"), "saving cache")
	if wrapped.StatusCode != http.StatusInternalServerError || wrapped.Internal == nil {
		t.Fatalf("unexpected wrapped error: %+v", wrapped)
	}
}
