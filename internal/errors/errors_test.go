package errors

import (
	"errors"
	"fmt"
	"testing"
)

// -----------------------------------------------------------------------------
// Severity Tests
// -----------------------------------------------------------------------------

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityDebug, "debug"},
		{SeverityInfo, "info"},
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
		{SeverityCritical, "critical"},
		{Severity(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.want {
				t.Errorf("Severity.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// -----------------------------------------------------------------------------
// StorageError Tests
// -----------------------------------------------------------------------------

func TestNewStorageError(t *testing.T) {
	err := NewStorageError("failed to read favorites", ErrStoreCorrupted)

	if err.message != "failed to read favorites" {
		t.Errorf("message = %q, want %q", err.message, "failed to read favorites")
	}
	if err.Severity() != SeverityError {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityError)
	}
	if err.IsRetryable() {
		t.Error("IsRetryable() = true, want false")
	}
	if !err.IsUserFacing() {
		t.Error("IsUserFacing() = false, want true")
	}
}

func TestStorageError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *StorageError
		want string
	}{
		{
			name: "message only",
			err:  NewStorageError("write failed", nil),
			want: "storage error: write failed",
		},
		{
			name: "with key",
			err:  NewStorageError("write failed", nil).WithKey("favoriteQuotes"),
			want: "storage error [key=favoriteQuotes]: write failed",
		},
		{
			name: "with key backend and cause",
			err: NewStorageError("write failed", ErrStoreClosed).
				WithKey("favoriteQuotes").
				WithBackend("sqlite"),
			want: "storage error [key=favoriteQuotes, backend=sqlite]: write failed: store is closed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStorageError_Is(t *testing.T) {
	err := NewStorageError("read failed", ErrStoreCorrupted)

	if !errors.Is(err, ErrStoreCorrupted) {
		t.Error("expected errors.Is to match wrapped sentinel")
	}
	if !errors.Is(err, &StorageError{}) {
		t.Error("expected errors.Is to match StorageError type")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("did not expect ErrNotFound to match")
	}

	wrapped := fmt.Errorf("loading: %w", err)
	var storageErr *StorageError
	if !errors.As(wrapped, &storageErr) {
		t.Fatal("expected errors.As to find StorageError")
	}
	if storageErr.message != "read failed" {
		t.Errorf("message = %q, want %q", storageErr.message, "read failed")
	}
}

// -----------------------------------------------------------------------------
// ClipboardError Tests
// -----------------------------------------------------------------------------

func TestClipboardError(t *testing.T) {
	cause := New("broken pipe")
	err := NewClipboardError("osc52 write failed", cause).WithTarget("stderr")

	want := "clipboard error [target=stderr]: osc52 write failed: broken pipe"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrClipboardUnavailable) {
		t.Error("ClipboardError should match ErrClipboardUnavailable")
	}
	if !errors.Is(err, cause) {
		t.Error("ClipboardError should match its cause")
	}
	if !err.IsRetryable() {
		t.Error("clipboard errors are retryable")
	}
	if GetSeverity(err) != SeverityWarning {
		t.Errorf("GetSeverity() = %v, want %v", GetSeverity(err), SeverityWarning)
	}
}

// -----------------------------------------------------------------------------
// Semantic Error Tests
// -----------------------------------------------------------------------------

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("quote", "11")
	if got := err.Error(); got != "quote '11' not found" {
		t.Errorf("Error() = %q", got)
	}

	err = err.WithCause(ErrQuoteNotFound)
	if !errors.Is(err, ErrQuoteNotFound) {
		t.Error("expected cause to match")
	}
	if !errors.Is(err, &NotFoundError{}) {
		t.Error("expected type match")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("index out of range").WithField("index").WithValue(0)

	want := "validation error [field=index, value=0]: index out of range"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("ValidationError should match ErrInvalidInput")
	}
}

// -----------------------------------------------------------------------------
// Classification Tests
// -----------------------------------------------------------------------------

func TestClassification(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		retryable  bool
		userFacing bool
		severity   Severity
	}{
		{"nil", nil, false, false, SeverityDebug},
		{"plain", New("boom"), false, false, SeverityError},
		{"storage", NewStorageError("x", nil), false, true, SeverityError},
		{"clipboard", NewClipboardError("x", nil), true, true, SeverityWarning},
		{"wrapped validation", Wrap(NewValidationError("x"), "ctx"), false, true, SeverityWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.retryable {
				t.Errorf("IsRetryable() = %v, want %v", got, tt.retryable)
			}
			if got := IsUserFacing(tt.err); got != tt.userFacing {
				t.Errorf("IsUserFacing() = %v, want %v", got, tt.userFacing)
			}
			if got := GetSeverity(tt.err); got != tt.severity {
				t.Errorf("GetSeverity() = %v, want %v", got, tt.severity)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "ctx") != nil {
		t.Error("Wrap(nil) should be nil")
	}
	if Wrapf(nil, "ctx %d", 1) != nil {
		t.Error("Wrapf(nil) should be nil")
	}

	err := Wrapf(ErrNotFound, "loading key %s", "favoriteQuotes")
	if got := err.Error(); got != "loading key favoriteQuotes: not found" {
		t.Errorf("Wrapf() = %q", got)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("Wrapf should preserve the chain")
	}
}
