// Package matcher resolves a receipt to its originating product through a
// cascading identifier lookup.
//
// Receipts are captured independently over time and the identifier copy kept
// on a receipt may drift from the live product row (renamed SKU, corrected
// UPC). The cascade maximizes match recall while privileging the strongest
// identifier (explicit product ID) over weaker, possibly duplicated ones
// (free-text name, used only as last resort).
package matcher

import (
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/qotastore/finance-backend/internal/domain"
)

// Index holds products keyed by primary key and by each normalized
// identifier. Build it once per product snapshot and reuse it across
// receipts.
type Index struct {
	byID   map[uuid.UUID]*domain.Product
	bySKU  map[string]*domain.Product
	byUPC  map[string]*domain.Product
	byASIN map[string]*domain.Product
	byName map[string]*domain.Product
}

// NewIndex builds an Index over a product snapshot. Blank identifiers are
// never indexed. When two products share a normalized key the first one
// wins; duplicates are a data-entry problem to be fixed upstream, this only
// keeps resolution deterministic.
func NewIndex(products []*domain.Product) *Index {
	ix := &Index{
		byID:   make(map[uuid.UUID]*domain.Product, len(products)),
		bySKU:  make(map[string]*domain.Product),
		byUPC:  make(map[string]*domain.Product),
		byASIN: make(map[string]*domain.Product),
		byName: make(map[string]*domain.Product),
	}

	for _, p := range products {
		ix.byID[p.ID] = p
		insert(ix.bySKU, p.SKU, p)
		insert(ix.byUPC, p.UPC, p)
		insert(ix.byASIN, p.ASIN, p)
		insert(ix.byName, p.Name, p)
	}

	return ix
}

func insert(m map[string]*domain.Product, key string, p *domain.Product) {
	k := Normalize(key)
	if k == "" {
		return
	}
	if _, exists := m[k]; exists {
		return
	}
	m[k] = p
}

// lookup is one step of the cascade: it resolves a receipt against the index
// or returns nil.
type lookup func(r *domain.Receipt, ix *Index) *domain.Product

// cascade lists the lookup steps in strict precedence order. Resolution
// stops at the first hit.
var cascade = []lookup{
	matchByProductID,
	matchBySKU,
	matchByUPC,
	matchByASIN,
	matchByName,
}

func matchByProductID(r *domain.Receipt, ix *Index) *domain.Product {
	if r.ProductID == nil {
		return nil
	}
	return ix.byID[*r.ProductID]
}

func matchBySKU(r *domain.Receipt, ix *Index) *domain.Product {
	return lookupKey(ix.bySKU, r.SKU)
}

func matchByUPC(r *domain.Receipt, ix *Index) *domain.Product {
	return lookupKey(ix.byUPC, r.UPC)
}

func matchByASIN(r *domain.Receipt, ix *Index) *domain.Product {
	return lookupKey(ix.byASIN, r.ASIN)
}

func matchByName(r *domain.Receipt, ix *Index) *domain.Product {
	return lookupKey(ix.byName, r.ProductName)
}

func lookupKey(table map[string]*domain.Product, raw string) *domain.Product {
	key := Normalize(raw)
	if key == "" {
		return nil
	}
	return table[key]
}

// Match resolves the owning product for a receipt, trying the product ID
// link first and then normalized SKU, UPC, ASIN and name in that order.
// Returns nil when no step succeeds; an unmatched receipt is not an error.
func (ix *Index) Match(r *domain.Receipt) *domain.Product {
	for _, step := range cascade {
		if p := step(r, ix); p != nil {
			return p
		}
	}
	return nil
}

// Normalize canonicalizes a free-text identifier for lookup: surrounding
// whitespace is trimmed, letters are lower-cased, and internal whitespace,
// hyphens, dots and underscores are stripped, so "ABC-123", " abc123 " and
// "Abc_123" are all equal. A blank input normalizes to "" and never matches.
func Normalize(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsSpace(r) || r == '-' || r == '.' || r == '_' {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
