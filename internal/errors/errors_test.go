package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("test error")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "test error" {
		t.Errorf("expected 'test error', got '%s'", err.Error())
	}
}

func TestWrap(t *testing.T) {
	baseErr := errors.New("base error")

	t.Run("wrap non-nil error", func(t *testing.T) {
		wrapped := Wrap(baseErr, "wrapped")
		if wrapped == nil {
			t.Fatal("expected wrapped error, got nil")
		}
		expected := "wrapped: base error"
		if wrapped.Error() != expected {
			t.Errorf("expected '%s', got '%s'", expected, wrapped.Error())
		}
		if !errors.Is(wrapped, baseErr) {
			t.Error("expected wrapped error to wrap baseErr")
		}
	})

	t.Run("wrap nil error", func(t *testing.T) {
		wrapped := Wrap(nil, "wrapped")
		if wrapped != nil {
			t.Errorf("expected nil, got %v", wrapped)
		}
	})
}

func TestIs(t *testing.T) {
	if !Is(ErrNotFound, ErrNotFound) {
		t.Error("expected ErrNotFound to be ErrNotFound")
	}

	wrapped := Wrap(ErrNotFound, "context")
	if !Is(wrapped, ErrNotFound) {
		t.Error("expected wrapped error to match ErrNotFound")
	}

	if Is(ErrNotFound, ErrConflict) {
		t.Error("expected ErrNotFound to not match ErrConflict")
	}
}

func TestWithCode(t *testing.T) {
	t.Run("attaches code and preserves chain", func(t *testing.T) {
		err := WithCode("account:invalidCode", Wrap(ErrInvalidInput, "invalid code"))
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if err.Error() != "invalid code: invalid input" {
			t.Errorf("unexpected message: %s", err.Error())
		}
		if !Is(err, ErrInvalidInput) {
			t.Error("expected coded error to match ErrInvalidInput")
		}

		var coded *CodedError
		if !As(err, &coded) {
			t.Fatal("expected CodedError in chain")
		}
		if coded.Code != "account:invalidCode" {
			t.Errorf("expected code 'account:invalidCode', got '%s'", coded.Code)
		}
	})

	t.Run("nil error returns nil", func(t *testing.T) {
		if err := WithCode("some:code", nil); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})

	t.Run("code survives further wrapping", func(t *testing.T) {
		err := Wrap(WithCode("account:invalidCode", ErrInvalidInput), "outer")

		var coded *CodedError
		if !As(err, &coded) {
			t.Fatal("expected CodedError in chain")
		}
		if coded.Code != "account:invalidCode" {
			t.Errorf("expected code 'account:invalidCode', got '%s'", coded.Code)
		}
	})
}

func TestSentinelDistinctness(t *testing.T) {
	sentinels := []error{ErrNotFound, ErrConflict, ErrInvalidInput, ErrUnauthorized, ErrForbidden, ErrUpstream}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v unexpectedly matches %v", a, b)
			}
		}
	}
}
