package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	pkgErrors "linkylink/pkg/errors"
)

func TestAsHTTPError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", pkgErrors.NewHTTPError(http.StatusBadGateway, "upstream down"))

	httpErr, ok := pkgErrors.AsHTTPError(wrapped)
	if !ok {
		t.Fatalf("expected wrapped HTTPError to be found")
	}
	if httpErr.StatusCode != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", httpErr.StatusCode)
	}
	if httpErr.Error() != "502: upstream down" {
		t.Errorf("unexpected message %q", httpErr.Error())
	}

	if _, ok := pkgErrors.AsHTTPError(fmt.Errorf("plain")); ok {
		t.Errorf("plain error must not be an HTTPError")
	}
}
