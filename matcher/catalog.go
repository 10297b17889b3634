package matcher

import (
	"strings"

	"github.com/vedantwalia/stock-monitor/models"
)

// Record is one catalog entry with its derived matching forms. Records are
// created at load time and never mutated; indices refer to them by position
// only.
type Record struct {
	models.Stock

	NormalizedName string
	Ticker         string
}

// Catalog is an immutable, position-addressable set of records. Positions
// are 0-based array offsets, stable for the lifetime of the catalog.
type Catalog struct {
	records []Record
}

// NewCatalog builds a catalog from raw stocks. Entries missing a symbol or
// a company name are dropped, not errored: source files are dirty and a
// partial catalog is more useful than none. The ticker is the symbol plus
// the market suffix (e.g. RELIANCE + ".NS").
func NewCatalog(stocks []models.Stock, marketSuffix string) *Catalog {
	records := make([]Record, 0, len(stocks))
	for _, s := range stocks {
		s.Symbol = strings.TrimSpace(s.Symbol)
		s.Name = strings.TrimSpace(s.Name)
		if s.Symbol == "" || s.Name == "" {
			continue
		}
		records = append(records, Record{
			Stock:          s,
			NormalizedName: Normalize(s.Name),
			Ticker:         s.Symbol + marketSuffix,
		})
	}
	return &Catalog{records: records}
}

func (c *Catalog) Len() int { return len(c.records) }

// At returns the record at position pos. Callers only pass positions
// obtained from the indices, which always reference valid offsets.
func (c *Catalog) At(pos int) Record { return c.records[pos] }

// BySymbol returns the first record whose symbol matches case-insensitively,
// or nil.
func (c *Catalog) BySymbol(symbol string) *Record {
	for i := range c.records {
		if strings.EqualFold(c.records[i].Symbol, symbol) {
			rec := c.records[i]
			return &rec
		}
	}
	return nil
}

// BySymbolAndExchange returns the record matching both symbol and exchange
// case-insensitively, or nil. Symbols listed on more than one exchange need
// this to resolve unambiguously.
func (c *Catalog) BySymbolAndExchange(symbol, exchange string) *Record {
	for i := range c.records {
		if strings.EqualFold(c.records[i].Symbol, symbol) &&
			strings.EqualFold(c.records[i].Exchange, exchange) {
			rec := c.records[i]
			return &rec
		}
	}
	return nil
}
