// Package search builds a transient full-text index over a fetched stock
// list, so the stocks view can filter by symbol, name or free text.
package search

import (
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"

	fintrade "github.com/chauhan07divyansh/fintrade-frontend"
)

// Index is an in-memory bleve index over one stock list. It lives only as
// long as the view that fetched the list.
type Index struct {
	index  bleve.Index
	stocks map[string]fintrade.Stock
}

// New indexes the given stocks in memory.
func New(stocks []fintrade.Stock) (*Index, error) {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("cannot create index: %w", err)
	}

	byID := make(map[string]fintrade.Stock, len(stocks))
	batch := index.NewBatch()
	for _, stock := range stocks {
		// Symbols can repeat across exchanges (e.g. RELIANCE on NSE and
		// BSE), so the document id carries both.
		id := fmt.Sprintf("%s-%s", stock.Symbol, stock.Exchange)
		if err := batch.Index(id, stock); err != nil {
			return nil, fmt.Errorf("cannot index %s: %w", id, err)
		}
		byID[id] = stock
	}
	if err := index.Batch(batch); err != nil {
		return nil, fmt.Errorf("cannot execute index batch: %w", err)
	}
	return &Index{index: index, stocks: byID}, nil
}

func buildIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()

	stockMapping := bleve.NewDocumentMapping()
	textFieldMapping := bleve.NewTextFieldMapping()
	textFieldMapping.Store = true
	textFieldMapping.Index = true
	stockMapping.AddFieldMappingsAt("symbol", textFieldMapping)
	stockMapping.AddFieldMappingsAt("name", textFieldMapping)
	stockMapping.AddFieldMappingsAt("exchange", textFieldMapping)

	indexMapping.AddDocumentMapping("_default", stockMapping)
	return indexMapping
}

// Search returns the stocks matching the query, best match first. A symbol
// prefix, a word of the company name, or free text all match.
func (ix *Index) Search(query string) ([]fintrade.Stock, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	prefix := bleve.NewPrefixQuery(strings.ToLower(query))
	prefix.SetField("symbol")
	match := bleve.NewMatchQuery(query)
	combined := bleve.NewDisjunctionQuery(prefix, match)

	req := bleve.NewSearchRequest(combined)
	req.Size = 100

	res, err := ix.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	hits := make([]fintrade.Stock, 0, len(res.Hits))
	for _, hit := range res.Hits {
		if stock, ok := ix.stocks[hit.ID]; ok {
			hits = append(hits, stock)
		}
	}
	return hits, nil
}

// Close releases the index resources.
func (ix *Index) Close() error { return ix.index.Close() }
