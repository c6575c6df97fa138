package apperr

import (
	"fmt"
	"testing"
)

func TestInvalidTransitionMessage(t *testing.T) {
	err := &InvalidTransitionError{Status: "COMPLETED", Action: "start"}
	want := "cannot start task with status COMPLETED"
	if err.Error() != want {
		t.Fatalf("message: want=%q got=%q", want, err.Error())
	}
}

func TestHelpersMatchWrappedErrors(t *testing.T) {
	validation := fmt.Errorf("handler: %w", Validationf("rating must be between %d and %d", 1, 5))
	if !IsValidation(validation) {
		t.Fatalf("IsValidation failed on wrapped ValidationError")
	}
	if IsInvalidTransition(validation) {
		t.Fatalf("IsInvalidTransition matched a ValidationError")
	}

	transition := fmt.Errorf("service: %w", &InvalidTransitionError{Status: "PASSED", Action: "complete"})
	if !IsInvalidTransition(transition) {
		t.Fatalf("IsInvalidTransition failed on wrapped error")
	}
	if IsValidation(transition) {
		t.Fatalf("IsValidation matched an InvalidTransitionError")
	}

	if IsValidation(ErrNotFound) || IsInvalidTransition(ErrUnauthorized) {
		t.Fatalf("sentinels must not match typed helpers")
	}
}
