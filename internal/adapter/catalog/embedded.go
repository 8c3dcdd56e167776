package catalog

import (
	"context"
	_ "embed"
	"slices"

	"github.com/pgnest/pg-listing-search/internal/domain"
)

// EmbeddedSourceName identifies the bundled sample catalog in logs and metadata.
const EmbeddedSourceName = "embedded"

//go:embed data/sample_pgs.json
var samplePGs []byte

// Embedded serves the bundled sample catalog of eight PGs.
type Embedded struct {
	listings []domain.Listing
}

// NewEmbedded decodes the bundled catalog.
func NewEmbedded() (*Embedded, error) {
	listings, err := Decode(samplePGs)
	if err != nil {
		return nil, err
	}
	return &Embedded{listings: listings}, nil
}

// SampleListings returns a fresh copy of the bundled catalog.
func SampleListings() ([]domain.Listing, error) {
	return Decode(samplePGs)
}

// Name returns the source identifier.
func (e *Embedded) Name() string {
	return EmbeddedSourceName
}

// Listings returns the bundled catalog in its recommended order.
func (e *Embedded) Listings(ctx context.Context) ([]domain.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(e.listings), nil
}

var _ domain.ListingSource = (*Embedded)(nil)
