// Package gateway moves whole worksheets between fete and the spreadsheet
// that owns the party plan. Row 0 of every values matrix is the header row;
// cells are strings exactly as they appear in the sheet.
package gateway

import (
	"context"
	"errors"
)

// Gateway reads and writes one worksheet at a time. Write replaces the
// entire worksheet contents; there is no partial update and no merge.
type Gateway interface {
	Read(ctx context.Context, worksheet string) ([][]string, error)
	Write(ctx context.Context, worksheet string, values [][]string) error
}

var (
	// ErrWorksheetNotFound indicates the named worksheet does not exist.
	ErrWorksheetNotFound = errors.New("gateway: worksheet not found")
	// ErrUnauthorized indicates a missing, expired, or invalid token.
	ErrUnauthorized = errors.New("gateway: unauthorized")
	// ErrRateLimited indicates the backing service throttled the request.
	ErrRateLimited = errors.New("gateway: rate limited")
)
