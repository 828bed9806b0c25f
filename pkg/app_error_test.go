package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("error string with cause", func(t *testing.T) {
		cause := errors.New("boom")
		appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if appErr.Error() != "INTERNAL_ERROR: boom" {
			t.Fatalf("unexpected error string: %s", appErr.Error())
		}
		if !errors.Is(appErr, cause) {
			t.Fatalf("expected unwrap to reach the cause")
		}
	})

	t.Run("error string without cause", func(t *testing.T) {
		appErr := NewDomainErrorSimple("NOT_FOUND", "Not found", http.StatusNotFound)
		if appErr.Error() != "NOT_FOUND: Not found" {
			t.Fatalf("unexpected error string: %s", appErr.Error())
		}
	})

	t.Run("http body never carries the cause", func(t *testing.T) {
		appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", errors.New("secret detail"), http.StatusInternalServerError)
		body := appErr.ToHTTPError()
		if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}
