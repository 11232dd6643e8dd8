package qrcode

import (
	"context"
)

// Verifier checks a presented code against the non-expired codes bound to a
// shift or its site.
type Verifier interface {
	// Verify reports whether value matches a live code for the shift or site.
	Verify(ctx context.Context, shiftID, siteID, value string) (bool, error)
}
