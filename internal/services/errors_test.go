package services_test

import (
	"errors"
	"strings"
	"testing"

	"brokerdocs/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrFilesystem, "organizer", "copy", "failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrFilesystem) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"organizer", "copy", "failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapDefaultsMarker(t *testing.T) {
	err := services.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, services.ErrTransient) {
		t.Fatalf("expected transient marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "operation failed") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestFatalAndExitCode(t *testing.T) {
	cfgErr := services.Wrap(services.ErrConfiguration, "translation", "validate", "missing key", nil)
	if !services.IsFatal(cfgErr) {
		t.Fatal("expected configuration error to be fatal")
	}
	if code := services.ExitCode(cfgErr); code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}

	skip := services.Wrap(services.ErrNotFound, "extract", "date", "", nil)
	if services.IsFatal(skip) {
		t.Fatal("expected not-found error to be non-fatal")
	}
	if code := services.ExitCode(skip); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if services.ExitCode(nil) != 0 || services.IsFatal(nil) {
		t.Fatal("expected nil error to be benign")
	}
}
