package query

import (
	"context"
	"sync"
	"time"

	dergiquery "github.com/ttkcys/milliyetciler/internal/dergi/usecase/query"
	sayiquery "github.com/ttkcys/milliyetciler/internal/sayi/usecase/query"
	yazarquery "github.com/ttkcys/milliyetciler/internal/yazar/usecase/query"
	yaziquery "github.com/ttkcys/milliyetciler/internal/yazi/usecase/query"
	"github.com/ttkcys/milliyetciler/pkg/logger"
)

// SearchQuery represents one faceted search request
type SearchQuery struct {
	Term  string
	Limit int
}

// Facet is one entity type's slice of a search result.
type Facet struct {
	Total int64       `json:"total"`
	Data  interface{} `json:"data"`
}

// SearchResult merges all facets. A failed facet comes back empty and
// bumps Errors instead of failing the whole search.
type SearchResult struct {
	Dergis Facet `json:"dergis"`
	Sayis  Facet `json:"sayis"`
	Yazars Facet `json:"yazars"`
	Yazis  Facet `json:"yazis"`
	Errors int   `json:"errors"`
}

// SearchHandler fans a search term out to every entity listing and
// merges the results.
type SearchHandler struct {
	dergis *dergiquery.ListDergisHandler
	sayis  *sayiquery.ListSayisHandler
	yazars *yazarquery.ListYazarsHandler
	yazis  *yaziquery.ListYazisHandler

	facetTimeout time.Duration
	facetLimit   int
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(
	dergis *dergiquery.ListDergisHandler,
	sayis *sayiquery.ListSayisHandler,
	yazars *yazarquery.ListYazarsHandler,
	yazis *yaziquery.ListYazisHandler,
	facetTimeout time.Duration,
	facetLimit int,
) *SearchHandler {
	return &SearchHandler{
		dergis:       dergis,
		sayis:        sayis,
		yazars:       yazars,
		yazis:        yazis,
		facetTimeout: facetTimeout,
		facetLimit:   facetLimit,
	}
}

// Handle executes all facet queries concurrently
func (h *SearchHandler) Handle(ctx context.Context, q SearchQuery) *SearchResult {
	limit := q.Limit
	if limit < 1 || limit > h.facetLimit {
		limit = h.facetLimit
	}

	result := &SearchResult{
		Dergis: Facet{Data: []interface{}{}},
		Sayis:  Facet{Data: []interface{}{}},
		Yazars: Facet{Data: []interface{}{}},
		Yazis:  Facet{Data: []interface{}{}},
	}

	var mu sync.Mutex
	var wg sync.WaitGroup

	fail := func(facet string, err error) {
		logger.Warn(ctx).Err(err).Str("facet", facet).Msg("Search facet failed")
		mu.Lock()
		result.Errors++
		mu.Unlock()
	}

	wg.Add(4)

	go func() {
		defer wg.Done()
		fctx, cancel := context.WithTimeout(ctx, h.facetTimeout)
		defer cancel()
		res, err := h.dergis.Handle(fctx, dergiquery.ListDergisQuery{Search: q.Term, Limit: limit})
		if err != nil {
			fail("dergis", err)
			return
		}
		mu.Lock()
		result.Dergis = Facet{Total: res.Total, Data: res.Dergis}
		mu.Unlock()
	}()

	go func() {
		defer wg.Done()
		fctx, cancel := context.WithTimeout(ctx, h.facetTimeout)
		defer cancel()
		res, err := h.sayis.Handle(fctx, sayiquery.ListSayisQuery{Search: q.Term, Limit: limit})
		if err != nil {
			fail("sayis", err)
			return
		}
		mu.Lock()
		result.Sayis = Facet{Total: res.Total, Data: res.Sayis}
		mu.Unlock()
	}()

	go func() {
		defer wg.Done()
		fctx, cancel := context.WithTimeout(ctx, h.facetTimeout)
		defer cancel()
		res, err := h.yazars.Handle(fctx, yazarquery.ListYazarsQuery{Search: q.Term, Limit: limit})
		if err != nil {
			fail("yazars", err)
			return
		}
		mu.Lock()
		result.Yazars = Facet{Total: res.Total, Data: res.Yazars}
		mu.Unlock()
	}()

	go func() {
		defer wg.Done()
		fctx, cancel := context.WithTimeout(ctx, h.facetTimeout)
		defer cancel()
		res, err := h.yazis.Handle(fctx, yaziquery.ListYazisQuery{Search: q.Term, Limit: limit})
		if err != nil {
			fail("yazis", err)
			return
		}
		mu.Lock()
		result.Yazis = Facet{Total: res.Total, Data: res.Yazis}
		mu.Unlock()
	}()

	wg.Wait()
	return result
}
