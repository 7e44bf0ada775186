package errors_test

import (
	"errors"
	"fmt"
	"testing"

	pkgErrors "git-activity-feed/pkg/errors"
)

func TestHTTPError(t *testing.T) {
	err := pkgErrors.NewHTTPError(400, "No data received")
	if err.Error() != "400: No data received" {
		t.Errorf("unexpected Error(): %q", err.Error())
	}

	wrapped := fmt.Errorf("handler: %w", err)
	var target *pkgErrors.HTTPError
	if !errors.As(wrapped, &target) {
		t.Fatalf("expected errors.As to find HTTPError")
	}
	if target.StatusCode != 400 || target.Message != "No data received" {
		t.Errorf("unexpected target: %+v", target)
	}
}
