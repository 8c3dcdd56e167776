package usecase

//go:generate mockgen -source=listing_search.go -destination=mock_listing_search.go -package=usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pgnest/pg-listing-search/internal/domain"
	"github.com/pgnest/pg-listing-search/internal/infrastructure/logger"
	"github.com/pgnest/pg-listing-search/internal/infrastructure/timeutil"
)

// ListingSearchUseCase defines the interface for PG listing search operations.
type ListingSearchUseCase interface {
	// Search runs the query engine over the configured listing source.
	Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error)

	// Query runs the query engine over caller-supplied records.
	// Records are validated first; a malformed record yields ErrInvalidInput.
	Query(ctx context.Context, records []domain.Listing, req domain.SearchRequest) (*domain.SearchResponse, error)

	// GetByID returns a single listing from the configured source.
	GetByID(ctx context.Context, id string) (*domain.Listing, error)

	// Facets returns the option lists needed to render the filter sidebar.
	Facets(ctx context.Context) (*domain.Facets, error)
}

// SearchRecorder observes completed searches. Implemented by the metrics package.
type SearchRecorder interface {
	RecordSearch(sortBy domain.SortKey, results int, duration time.Duration)
}

type noopRecorder struct{}

func (noopRecorder) RecordSearch(domain.SortKey, int, time.Duration) {}

// Config contains optional collaborators for the use case.
type Config struct {
	// Clock measures search duration. Defaults to the system clock.
	Clock timeutil.Clock

	// Logger receives debug entries for each search. Defaults to a no-op logger.
	Logger *logger.Logger

	// Recorder observes completed searches. Defaults to a no-op recorder.
	Recorder SearchRecorder
}

// listingSearchUseCase implements ListingSearchUseCase over a single ListingSource.
type listingSearchUseCase struct {
	source   domain.ListingSource
	clock    timeutil.Clock
	log      *logger.Logger
	recorder SearchRecorder
}

// NewListingSearchUseCase creates a new ListingSearchUseCase backed by source.
// If config is nil, or any of its fields is nil, defaults are used.
func NewListingSearchUseCase(source domain.ListingSource, config *Config) ListingSearchUseCase {
	uc := &listingSearchUseCase{
		source:   source,
		clock:    timeutil.RealClock{},
		log:      logger.Nop(),
		recorder: noopRecorder{},
	}

	if config != nil {
		if config.Clock != nil {
			uc.clock = config.Clock
		}
		if config.Logger != nil {
			uc.log = config.Logger
		}
		if config.Recorder != nil {
			uc.recorder = config.Recorder
		}
	}

	return uc
}

// Search implements ListingSearchUseCase.Search.
func (uc *listingSearchUseCase) Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := uc.clock.Now()

	records, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}

	return uc.run(records, req, uc.source.Name(), start), nil
}

// Query implements ListingSearchUseCase.Query.
func (uc *listingSearchUseCase) Query(ctx context.Context, records []domain.Listing, req domain.SearchRequest) (*domain.SearchResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := uc.clock.Now()

	if err := domain.ValidateListings(records); err != nil {
		return nil, err
	}

	return uc.run(records, req, "", start), nil
}

// GetByID implements ListingSearchUseCase.GetByID.
func (uc *listingSearchUseCase) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.NewValidationError("id", "is required")
	}

	records, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range records {
		if records[i].ID == id {
			listing := records[i]
			return &listing, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", domain.ErrListingNotFound, id)
}

// Facets implements ListingSearchUseCase.Facets.
func (uc *listingSearchUseCase) Facets(ctx context.Context) (*domain.Facets, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}

	facets := domain.BuildFacets(records)
	return &facets, nil
}

// load reads the full collection from the source.
// Context errors pass through unchanged; anything else is wrapped as a SourceError.
func (uc *listingSearchUseCase) load(ctx context.Context) ([]domain.Listing, error) {
	if uc.source == nil {
		return nil, fmt.Errorf("%w: no listing source configured", domain.ErrSourceUnavailable)
	}

	records, err := uc.source.Listings(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, domain.NewSourceError(uc.source.Name(), err)
	}

	uc.log.Debug().
		Str("source", uc.source.Name()).
		Int("listings", len(records)).
		Msg("listings loaded")

	return records, nil
}

// run executes the engine and assembles the response.
func (uc *listingSearchUseCase) run(records []domain.Listing, req domain.SearchRequest, source string, start time.Time) *domain.SearchResponse {
	req.SortBy = domain.ParseSortKey(string(req.SortBy))

	results := Query(records, req.SearchText, req.Filters, req.SortBy)
	elapsed := uc.clock.Now().Sub(start)

	response := domain.NewSearchResponse(req, results, len(records), domain.SearchMetadata{
		Source:       source,
		SearchTimeMs: elapsed.Milliseconds(),
	})

	uc.recorder.RecordSearch(req.SortBy, len(results), elapsed)

	uc.log.Debug().
		Str("search", req.SearchText).
		Str("sort_by", string(req.SortBy)).
		Int("active_filters", response.Metadata.ActiveFilterCount).
		Int("results", len(results)).
		Dur("duration", elapsed).
		Msg("search completed")

	return &response
}
