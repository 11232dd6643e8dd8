package postgresql

import (
	"context"
	"fmt"

	"github.com/clearshift/workforce-backend-go/internal/domain/qrcode"
	"github.com/clearshift/workforce-backend-go/internal/pkg/database"
)

type qrcodeVerifier struct {
	db *database.DB
}

func NewQRCodeVerifier(db *database.DB) qrcode.Verifier {
	return &qrcodeVerifier{db: db}
}

// Verify implements qrcode.Verifier. A code is accepted when it is bound to
// the shift itself or to the shift's site and has not expired.
func (r *qrcodeVerifier) Verify(ctx context.Context, shiftID, siteID, value string) (bool, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM qr_codes
			WHERE value = $3
				AND (shift_id = $1 OR (shift_id IS NULL AND site_id = $2))
				AND expires_at > NOW()
		)
	`

	var ok bool
	if err := q.QueryRow(ctx, query, shiftID, siteID, value).Scan(&ok); err != nil {
		return false, fmt.Errorf("failed to verify code: %w", err)
	}

	return ok, nil
}
