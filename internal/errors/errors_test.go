package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestAppErrorWrapping(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := NewDatabaseError(cause)

	if !stderrors.Is(err, cause) {
		t.Errorf("expected the wrapped cause to be reachable via errors.Is")
	}
	if got := err.Unwrap(); got != cause {
		t.Errorf("expected Unwrap to return the cause, got %v", got)
	}
}

func TestIsValidation(t *testing.T) {
	if !IsValidation(NewValidationError("bad input")) {
		t.Errorf("expected a validation error to be recognized")
	}
	if IsValidation(NewDatabaseError(stderrors.New("boom"))) {
		t.Errorf("expected a database error not to be recognized as validation")
	}
	if IsValidation(stderrors.New("plain")) {
		t.Errorf("expected a plain error not to be recognized as validation")
	}

	// Recognition survives fmt.Errorf wrapping along the call chain.
	wrapped := fmt.Errorf("handling failed: %w", NewValidationError("bad input"))
	if !IsValidation(wrapped) {
		t.Errorf("expected a wrapped validation error to be recognized")
	}
}

func TestAppErrorIsMatchesTypeAndCode(t *testing.T) {
	err := New(ErrorTypeRateLimit, "QUOTA_EXCEEDED", "too soon")

	if !stderrors.Is(err, ErrQuotaExceeded) {
		t.Errorf("expected errors with the same type and code to match")
	}
	if stderrors.Is(err, ErrUnauthorized) {
		t.Errorf("expected errors with different type to not match")
	}
}

func TestWithContext(t *testing.T) {
	err := NewValidationError("bad input").WithContext("user_id", int64(100))

	fields := err.LogFields()
	found := false
	for i := 0; i+1 < len(fields); i += 2 {
		if fields[i] == "user_id" && fields[i+1] == int64(100) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected user_id in log fields, got %v", fields)
	}
}
