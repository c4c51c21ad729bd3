package models

import "github.com/shopspring/decimal"

// Design is a catalog entry. Designs are replaced, never edited in place.
type Design struct {
	ID          string          `json:"id" yaml:"id"`
	Title       string          `json:"title" yaml:"title"`
	Description string          `json:"description" yaml:"description"`
	Price       decimal.Decimal `json:"price" yaml:"-"`
	Category    string          `json:"category" yaml:"category"`
	Image       string          `json:"image" yaml:"image"`
	Tags        []string        `json:"tags" yaml:"tags"`
	Stitches    int             `json:"stitches" yaml:"stitches"` // estimated stitch count
}

// Clone returns a copy that shares no slices with d.
func (d Design) Clone() Design {
	if d.Tags != nil {
		d.Tags = append([]string(nil), d.Tags...)
	}
	return d
}
