// Command pgquery runs one listing query from the command line.
//
// It reads a JSON request of the form
//
//	{"records": [...], "search": "...", "filters": {...}, "sortBy": "..."}
//
// from a file or stdin and prints the ordered result as JSON. With -catalog
// the records field is ignored and the bundled sample catalog (or -catalog-file)
// is searched instead.
//
// Exit status is 0 on success, 1 when the request or its records are
// malformed, and 2 on usage errors.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pgnest/pg-listing-search/internal/adapter/catalog"
	"github.com/pgnest/pg-listing-search/internal/domain"
	"github.com/pgnest/pg-listing-search/internal/infrastructure/logger"
	"github.com/pgnest/pg-listing-search/internal/usecase"
)

const (
	exitOK           = 0
	exitInvalidInput = 1
	exitUsage        = 2
)

type options struct {
	input       string
	useCatalog  bool
	catalogFile string
	idsOnly     bool
	pretty      bool
	verbose     bool
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return exitUsage
	}

	level := "warn"
	if opts.verbose {
		level = "debug"
	}
	log := logger.NewWithOutput(logger.Config{Level: level, Format: "console", ServiceName: "pgquery"}, stderr)

	data, err := readInput(opts.input, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "pgquery: %v\n", err)
		return exitUsage
	}

	resp, err := execute(ctx, opts, data, log)
	if err != nil {
		fmt.Fprintf(stderr, "pgquery: %v\n", err)
		if errors.Is(err, domain.ErrInvalidInput) {
			return exitInvalidInput
		}
		return exitUsage
	}

	if err := writeResult(stdout, resp, opts); err != nil {
		fmt.Fprintf(stderr, "pgquery: write result: %v\n", err)
		return exitUsage
	}
	return exitOK
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("pgquery", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.input, "input", "", "read the request from this file instead of stdin")
	fs.BoolVar(&opts.useCatalog, "catalog", false, "search the bundled sample catalog and ignore request records")
	fs.StringVar(&opts.catalogFile, "catalog-file", "", "search this JSON or YAML catalog (implies -catalog)")
	fs.BoolVar(&opts.idsOnly, "ids", false, "print only the ordered listing ids")
	fs.BoolVar(&opts.pretty, "pretty", false, "indent JSON output")
	fs.BoolVar(&opts.verbose, "v", false, "log debug details to stderr")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "pgquery: unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return opts, errors.New("unexpected arguments")
	}
	if opts.catalogFile != "" {
		opts.useCatalog = true
	}
	return opts, nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

// decodeRequest splits the input into raw records and a search request.
func decodeRequest(data []byte) (json.RawMessage, domain.SearchRequest, error) {
	req := domain.NewSearchRequest()
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, req, nil
	}

	var envelope struct {
		Records json.RawMessage `json:"records"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, req, fmt.Errorf("%w: request is not a JSON object: %v", domain.ErrInvalidInput, err)
	}
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, req, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	prefs := make([]domain.GenderPreference, 0, len(req.Filters.GenderPreference))
	for _, g := range req.Filters.GenderPreference {
		pref, err := domain.ParseGenderPreference(string(g))
		if err != nil {
			return nil, req, err
		}
		prefs = append(prefs, pref)
	}
	req.Filters = req.Filters.WithGenderPreference(prefs...)

	return envelope.Records, req, nil
}

func execute(ctx context.Context, opts options, data []byte, log *logger.Logger) (*domain.SearchResponse, error) {
	rawRecords, req, err := decodeRequest(data)
	if err != nil {
		return nil, err
	}

	if opts.useCatalog {
		source, err := openCatalog(ctx, opts.catalogFile, log)
		if err != nil {
			return nil, err
		}
		uc := usecase.NewListingSearchUseCase(source, &usecase.Config{Logger: log.WithSource(source.Name())})
		return uc.Search(ctx, req)
	}

	trimmed := bytes.TrimSpace(rawRecords)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, fmt.Errorf("%w: records is required (or use -catalog)", domain.ErrInvalidInput)
	}
	records, err := catalog.Decode(rawRecords)
	if err != nil {
		return nil, err
	}

	uc := usecase.NewListingSearchUseCase(nil, &usecase.Config{Logger: log})
	return uc.Query(ctx, records, req)
}

func openCatalog(ctx context.Context, path string, log *logger.Logger) (domain.ListingSource, error) {
	if path == "" {
		return catalog.NewEmbedded()
	}

	file, err := catalog.NewFile(path, catalog.WithLogger(log.WithSource(catalog.FileSourceName)))
	if err != nil {
		return nil, err
	}
	if err := file.Load(ctx); err != nil {
		return nil, err
	}
	return file, nil
}

func writeResult(w io.Writer, resp *domain.SearchResponse, opts options) error {
	enc := json.NewEncoder(w)
	if opts.pretty {
		enc.SetIndent("", "  ")
	}
	if opts.idsOnly {
		return enc.Encode(resp.IDs())
	}
	return enc.Encode(resp)
}
