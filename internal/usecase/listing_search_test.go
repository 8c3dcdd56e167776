package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pgnest/pg-listing-search/internal/domain"
	"github.com/pgnest/pg-listing-search/internal/infrastructure/logger"
	"github.com/pgnest/pg-listing-search/internal/infrastructure/timeutil"
)

// setupMockSource creates a mock listing source with standard behavior.
func setupMockSource(ctrl *gomock.Controller, name string, listings []domain.Listing, err error) *domain.MockListingSource {
	mock := domain.NewMockListingSource(ctrl)
	mock.EXPECT().Name().Return(name).AnyTimes()
	mock.EXPECT().Listings(gomock.Any()).Return(listings, err).AnyTimes()
	return mock
}

func fixedClockConfig(step time.Duration) *Config {
	return &Config{Clock: timeutil.NewStepClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), step)}
}

func TestNewListingSearchUseCase(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := setupMockSource(ctrl, "test", nil, nil)

	t.Run("nil config uses defaults", func(t *testing.T) {
		uc := NewListingSearchUseCase(source, nil).(*listingSearchUseCase)

		assert.IsType(t, timeutil.RealClock{}, uc.clock)
		assert.IsType(t, noopRecorder{}, uc.recorder)
		assert.NotNil(t, uc.log)
	})

	t.Run("partial config keeps other defaults", func(t *testing.T) {
		clock := timeutil.NewStepClock(time.Now(), 0)
		uc := NewListingSearchUseCase(source, &Config{Clock: clock}).(*listingSearchUseCase)

		assert.Same(t, clock, uc.clock)
		assert.IsType(t, noopRecorder{}, uc.recorder)
	})
}

func TestSearch_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := setupMockSource(ctrl, "embedded", sampleListings(), nil)
	uc := NewListingSearchUseCase(source, fixedClockConfig(3*time.Millisecond))

	req := domain.NewSearchRequest()
	req.Filters = req.Filters.WithAmenities("WiFi")
	req.SortBy = domain.SortPriceLow

	resp, err := uc.Search(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, []string{"2", "1", "3"}, resp.IDs())
	assert.Equal(t, 3, resp.Metadata.TotalResults)
	assert.Equal(t, 4, resp.Metadata.TotalListings)
	assert.Equal(t, 1, resp.Metadata.ActiveFilterCount)
	assert.Equal(t, domain.SortPriceLow, resp.Metadata.SortBy)
	assert.Equal(t, "embedded", resp.Metadata.Source)
	assert.Equal(t, int64(3), resp.Metadata.SearchTimeMs)
}

func TestSearch_EchoesSearchQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := setupMockSource(ctrl, "embedded", sampleListings(), nil)
	uc := NewListingSearchUseCase(source, nil)

	req := domain.NewSearchRequest()
	req.SearchText = "Mumbai"

	resp, err := uc.Search(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "Mumbai", resp.Metadata.SearchQuery)
	assert.Equal(t, []string{"3"}, resp.IDs())
}

func TestSearch_NormalizesSortKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := setupMockSource(ctrl, "embedded", sampleListings(), nil)
	uc := NewListingSearchUseCase(source, nil)

	tests := []struct {
		input string
		want  domain.SortKey
		ids   []string
	}{
		{"PRICE_HIGH", domain.SortPriceHigh, []string{"3", "1", "2", "4"}},
		{"price-asc", domain.SortPriceLow, []string{"4", "2", "1", "3"}},
		{"popularity", domain.SortRecommended, []string{"1", "2", "3", "4"}},
		{"", domain.SortRecommended, []string{"1", "2", "3", "4"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			req := domain.NewSearchRequest()
			req.SortBy = domain.SortKey(tt.input)

			resp, err := uc.Search(context.Background(), req)

			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.Metadata.SortBy)
			assert.Equal(t, tt.ids, resp.IDs())
		})
	}
}

func TestSearch_EmptyResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := setupMockSource(ctrl, "embedded", sampleListings(), nil)
	uc := NewListingSearchUseCase(source, nil)

	req := domain.NewSearchRequest()
	req.Filters = req.Filters.WithPriceRange(20000, 10000)

	resp, err := uc.Search(context.Background(), req)

	require.NoError(t, err)
	assert.NotNil(t, resp.Listings)
	assert.Empty(t, resp.Listings)
	assert.Equal(t, 0, resp.Metadata.TotalResults)
}

func TestSearch_SourceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := setupMockSource(ctrl, "file", nil, errors.New("read catalog.json: permission denied"))
	uc := NewListingSearchUseCase(source, nil)

	resp, err := uc.Search(context.Background(), domain.NewSearchRequest())

	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, domain.ErrSourceUnavailable))

	var srcErr *domain.SourceError
	require.True(t, errors.As(err, &srcErr))
	assert.Equal(t, "file", srcErr.Source)
}

func TestSearch_SourceContextErrorPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := domain.NewMockListingSource(ctrl)
	source.EXPECT().Name().Return("slow").AnyTimes()
	source.EXPECT().Listings(gomock.Any()).DoAndReturn(
		func(ctx context.Context) ([]domain.Listing, error) {
			return nil, context.DeadlineExceeded
		},
	)
	uc := NewListingSearchUseCase(source, nil)

	_, err := uc.Search(context.Background(), domain.NewSearchRequest())

	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.False(t, errors.Is(err, domain.ErrSourceUnavailable))
}

func TestSearch_ContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := domain.NewMockListingSource(ctrl)
	source.EXPECT().Listings(gomock.Any()).Times(0)
	uc := NewListingSearchUseCase(source, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := uc.Search(ctx, domain.NewSearchRequest())

	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestSearch_NoSource(t *testing.T) {
	uc := NewListingSearchUseCase(nil, nil)

	_, err := uc.Search(context.Background(), domain.NewSearchRequest())

	assert.True(t, errors.Is(err, domain.ErrSourceUnavailable))
}

func TestSearch_RecordsMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := setupMockSource(ctrl, "embedded", sampleListings(), nil)
	recorder := NewMockSearchRecorder(ctrl)
	recorder.EXPECT().RecordSearch(domain.SortRating, 2, 5*time.Millisecond).Times(1)

	cfg := fixedClockConfig(5 * time.Millisecond)
	cfg.Recorder = recorder
	uc := NewListingSearchUseCase(source, cfg)

	req := domain.NewSearchRequest()
	req.Filters = req.Filters.WithGenderPreference(domain.GenderMale)
	req.SortBy = domain.SortRating

	_, err := uc.Search(context.Background(), req)
	require.NoError(t, err)
}

func TestSearch_LogsCompletion(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := setupMockSource(ctrl, "embedded", sampleListings(), nil)

	var buf bytes.Buffer
	log := logger.NewWithOutput(logger.Config{Level: "debug", Format: "json"}, &buf)
	uc := NewListingSearchUseCase(source, &Config{Logger: log})

	_, err := uc.Search(context.Background(), domain.NewSearchRequest())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"message":"listings loaded"`)
	assert.Contains(t, buf.String(), `"message":"search completed"`)
	assert.Contains(t, buf.String(), `"results":4`)
}

func TestQuery_UseCaseValidatesRecords(t *testing.T) {
	uc := NewListingSearchUseCase(nil, nil)

	t.Run("valid records", func(t *testing.T) {
		req := domain.NewSearchRequest()
		req.SortBy = domain.SortPriceLow

		resp, err := uc.Query(context.Background(), sampleListings(), req)

		require.NoError(t, err)
		assert.Equal(t, []string{"4", "2", "1", "3"}, resp.IDs())
		assert.Empty(t, resp.Metadata.Source)
	})

	t.Run("missing city", func(t *testing.T) {
		records := sampleListings()
		records[1].City = ""

		resp, err := uc.Query(context.Background(), records, domain.NewSearchRequest())

		assert.Nil(t, resp)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	})

	t.Run("duplicate ids", func(t *testing.T) {
		records := sampleListings()
		records[3].ID = records[0].ID

		_, err := uc.Query(context.Background(), records, domain.NewSearchRequest())

		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	})

	t.Run("empty records", func(t *testing.T) {
		resp, err := uc.Query(context.Background(), nil, domain.NewSearchRequest())

		require.NoError(t, err)
		assert.Empty(t, resp.Listings)
		assert.Equal(t, 0, resp.Metadata.TotalListings)
	})
}

func TestGetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := setupMockSource(ctrl, "embedded", sampleListings(), nil)
	uc := NewListingSearchUseCase(source, nil)

	t.Run("found", func(t *testing.T) {
		listing, err := uc.GetByID(context.Background(), "3")

		require.NoError(t, err)
		assert.Equal(t, "Mumbai", listing.City)
	})

	t.Run("trims id", func(t *testing.T) {
		listing, err := uc.GetByID(context.Background(), " 2 ")

		require.NoError(t, err)
		assert.Equal(t, "2", listing.ID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := uc.GetByID(context.Background(), "99")

		assert.True(t, errors.Is(err, domain.ErrListingNotFound))
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := uc.GetByID(context.Background(), "")

		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	})
}

func TestGetByID_ReturnsCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := sampleListings()
	source := setupMockSource(ctrl, "embedded", catalog, nil)
	uc := NewListingSearchUseCase(source, nil)

	listing, err := uc.GetByID(context.Background(), "1")
	require.NoError(t, err)
	listing.Name = "changed"

	assert.NotEqual(t, "changed", catalog[0].Name)
}

func TestFacets(t *testing.T) {
	ctrl := gomock.NewController(t)
	listings := sampleListings()
	listings = append(listings, createTestListing("5", "Hyderabad", 9000, 4.1, domain.GenderFemale, "2024-03-01"))
	source := setupMockSource(ctrl, "embedded", listings, nil)
	uc := NewListingSearchUseCase(source, nil)

	facets, err := uc.Facets(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Bangalore", "Delhi", "Mumbai", "Pune", "Hyderabad"}, facets.Cities)
	assert.Equal(t, domain.PriceBounds{Min: 5000, Max: 30000, Step: 1000}, facets.Price)
	assert.Len(t, facets.SortOptions, 5)
}

func TestFacets_SourceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := setupMockSource(ctrl, "file", nil, errors.New("boom"))
	uc := NewListingSearchUseCase(source, nil)

	_, err := uc.Facets(context.Background())

	assert.True(t, errors.Is(err, domain.ErrSourceUnavailable))
}
