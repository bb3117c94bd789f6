package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalog item shown on the public site.
// ImagePath and CatalogPath reference uploaded assets by public path; the
// files themselves are owned by the upload store, not by this record.
type Product struct {
	ID             int64
	Name           string
	Description    string
	Category       string
	Price          decimal.Decimal
	ImagePath      string
	CatalogPath    string
	Specifications json.RawMessage // free-form key/value spec sheet
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
