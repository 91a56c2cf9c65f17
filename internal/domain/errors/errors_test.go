package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"already exists", ErrAlreadyExists},
		{"not found", ErrNotFound},
		{"validation", ErrValidation},
		{"invalid transition", ErrInvalidTransition},
		{"in use", ErrInUse},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
		})
	}
}

func TestValidationErrorMatchesSentinel(t *testing.T) {
	err := fmt.Errorf("create order: %w", NewValidationError("title", "required"))
	if !stdErrors.Is(err, ErrValidation) {
		t.Fatalf("expected validation sentinel match, got %v", err)
	}

	var vErr *ValidationError
	if !stdErrors.As(err, &vErr) || vErr.Field != "title" {
		t.Fatalf("expected field title, got %+v", vErr)
	}
	if vErr.Error() != "title: required" {
		t.Fatalf("unexpected message %q", vErr.Error())
	}
	if stdErrors.Is(err, ErrNotFound) {
		t.Fatal("validation error must not match not found")
	}
}
