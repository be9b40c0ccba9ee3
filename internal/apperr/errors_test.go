package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aviwein/memorial-search/internal/apperr"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("page must be positive")

	if err.Error() != "page must be positive" {
		t.Errorf("expected 'page must be positive', got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Errorf("expected nil unwrap, got %v", err.Unwrap())
	}
}

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("parse failed")
	err := apperr.NewValidationWrap("invalid filter state", inner)

	if err.Error() != "invalid filter state: parse failed" {
		t.Errorf("expected 'invalid filter state: parse failed', got %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestValidationError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewValidation("dateFrom must be YYYY-MM-DD")

	wrapped := fmt.Errorf("failed to apply filters: %w", original)
	doubleWrapped := fmt.Errorf("request failed: %w", wrapped)

	var ve *apperr.ValidationError
	if !errors.As(doubleWrapped, &ve) {
		t.Fatal("errors.As should find ValidationError through double wrapping")
	}
	if ve.Message != "dateFrom must be YYYY-MM-DD" {
		t.Errorf("expected 'dateFrom must be YYYY-MM-DD', got %q", ve.Message)
	}
}

func TestNewSource(t *testing.T) {
	inner := fmt.Errorf("connection refused")
	err := apperr.NewSource("external", inner)

	if err.Error() != "source external: connection refused" {
		t.Errorf("expected 'source external: connection refused', got %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestSourceError_NotFoundForPlainErrors(t *testing.T) {
	plain := fmt.Errorf("database connection failed")
	wrapped := fmt.Errorf("fetch error: %w", plain)

	var se *apperr.SourceError
	if errors.As(wrapped, &se) {
		t.Fatal("errors.As should NOT find SourceError in plain error chain")
	}
}
