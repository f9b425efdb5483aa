package legends

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rinebergc/tesl-card-data-scraper/lib/cardstore"
	"github.com/rinebergc/tesl-card-data-scraper/lib/wikitext"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("legends/reconcile")

// PageSource is the wiki capability the reconciler consumes: enumerate a
// category and fetch a page's raw wikitext.
type PageSource interface {
	ListCategory(ctx context.Context, category string) ([]string, error)
	PageText(ctx context.Context, title string) (string, error)
}

// TableStore is the persisted dataset capability.
type TableStore interface {
	Load() (cardstore.Table, error)
	Write(table cardstore.Table) error
}

type Reconciler struct {
	Source    PageSource
	Store     TableStore
	Extractor Extractor
	Category  string
	// optional, dumps each fetched page's raw wikitext to disk
	Dump *PageDumper
}

type Result struct {
	Unchanged bool
	Table     cardstore.Table
}

// Reconcile compares the identifiers in the persisted table against the
// pages currently in the category. When the sets match, nothing is
// fetched and the existing table is returned untouched. When they don't,
// every page is fetched, extracted and assembled into a replacement
// table, which is persisted wholesale. A failed fetch aborts the run
// before anything is written.
func (r Reconciler) Reconcile(ctx context.Context) (Result, error) {
	ctx, span := tracer.Start(ctx, "Reconcile")
	defer span.End()
	span.SetAttributes(attribute.String("category", r.Category))

	existing, err := r.Store.Load()
	if err != nil {
		span.SetStatus(codes.Error, "failed to load existing table")
		return Result{}, err
	}

	titles, err := r.Source.ListCategory(ctx, r.Category)
	if err != nil {
		span.SetStatus(codes.Error, "failed to list category")
		return Result{}, err
	}

	if sameNames(existing.Names(), titles) {
		slog.Info(
			"card data is up to date",
			"category", r.Category,
			"cards", len(existing.Records),
		)
		span.SetAttributes(attribute.Bool("unchanged", true))
		return Result{Unchanged: true, Table: existing}, nil
	}

	table := cardstore.Table{Columns: r.Extractor.Fields.Columns()}
	indexByName := map[string]int{}
	for _, title := range titles {
		raw, err := r.Source.PageText(ctx, title)
		if err != nil {
			span.SetStatus(codes.Error, "failed to fetch page")
			return Result{}, fmt.Errorf("fetch %q: %w", title, err)
		}
		if r.Dump != nil {
			r.Dump.Write(wikitext.StripNamespace(title), raw)
		}

		record := r.Extractor.Extract(title, raw)
		slog.Debug("extracted card", "title", title, "fields", len(record))

		// a later duplicate identifier replaces the earlier record
		if i, seen := indexByName[record["name"]]; seen {
			table.Records[i] = record
			continue
		}
		indexByName[record["name"]] = len(table.Records)
		table.Records = append(table.Records, record)
	}

	err = r.Store.Write(table)
	if err != nil {
		span.SetStatus(codes.Error, "failed to persist table")
		return Result{}, err
	}

	slog.Info(
		"rebuilt card data",
		"category", r.Category,
		"pages", len(titles),
		"cards", len(table.Records),
	)
	return Result{Table: table}, nil
}

// compares the persisted identifier set against the category's page
// titles, namespace prefixes stripped. Order is irrelevant.
func sameNames(existing map[string]bool, titles []string) bool {
	current := make(map[string]bool, len(titles))
	for _, title := range titles {
		current[wikitext.StripNamespace(title)] = true
	}
	if len(existing) != len(current) {
		return false
	}
	for name := range current {
		if !existing[name] {
			return false
		}
	}
	return true
}
