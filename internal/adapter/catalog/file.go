package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/pgnest/pg-listing-search/internal/domain"
	"github.com/pgnest/pg-listing-search/internal/infrastructure/logger"
	"github.com/pgnest/pg-listing-search/internal/infrastructure/retry"
)

// FileSourceName identifies a file-backed catalog in logs and metadata.
const FileSourceName = "file"

// Format is the encoding of a catalog file.
type Format string

// Supported catalog formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the catalog format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: unsupported catalog format %q (want .json, .yaml or .yml)",
			domain.ErrInvalidInput, filepath.Ext(path))
	}
}

// File serves a catalog read from a JSON or YAML file.
// The file is read on first use (or by Load) and kept in memory until Load is called again.
type File struct {
	path     string
	format   Format
	retryCfg retry.Config
	log      *logger.Logger

	mu       sync.RWMutex
	listings []domain.Listing
	loaded   bool
}

// FileOption configures a File.
type FileOption func(*File)

// WithRetryConfig overrides the read retry policy.
func WithRetryConfig(cfg retry.Config) FileOption {
	return func(f *File) {
		f.retryCfg = cfg
	}
}

// WithLogger attaches a logger for load events.
func WithLogger(log *logger.Logger) FileOption {
	return func(f *File) {
		if log != nil {
			f.log = log
		}
	}
}

// NewFile creates a file-backed source. The format is chosen from the extension.
func NewFile(path string, opts ...FileOption) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f := &File{
		path:     path,
		format:   format,
		retryCfg: retry.FileReadConfig,
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Name returns the source identifier.
func (f *File) Name() string {
	return FileSourceName
}

// Path returns the catalog file path.
func (f *File) Path() string {
	return f.path
}

// Listings returns the catalog, reading the file on first use.
func (f *File) Listings(ctx context.Context) ([]domain.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.mu.RLock()
	if f.loaded {
		listings := slices.Clone(f.listings)
		f.mu.RUnlock()
		return listings, nil
	}
	f.mu.RUnlock()

	if err := f.Load(ctx); err != nil {
		return nil, err
	}

	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Clone(f.listings), nil
}

// Load (re)reads and validates the file. On failure the previously loaded
// catalog, if any, stays in place.
func (f *File) Load(ctx context.Context) error {
	data, err := retry.DoWithResult(ctx, func() ([]byte, error) {
		b, err := os.ReadFile(f.path)
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return nil, retry.NewPermanent(err)
		}
		return b, err
	}, f.retryCfg)
	if err != nil {
		return fmt.Errorf("read catalog %s: %w", f.path, err)
	}

	var listings []domain.Listing
	switch f.format {
	case FormatYAML:
		listings, err = DecodeYAML(data)
	default:
		listings, err = Decode(data)
	}
	if err != nil {
		return fmt.Errorf("catalog %s: %w", f.path, err)
	}

	f.mu.Lock()
	f.listings = listings
	f.loaded = true
	f.mu.Unlock()

	f.log.Info().
		Str("path", f.path).
		Str("format", string(f.format)).
		Int("listings", len(listings)).
		Msg("catalog loaded")

	return nil
}

var _ domain.ListingSource = (*File)(nil)
