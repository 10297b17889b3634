package search

import (
	"sync/atomic"

	"github.com/vedantwalia/stock-monitor/matcher"
	"github.com/vedantwalia/stock-monitor/models"
)

// Engine resolves free-text queries to ranked matches and symbols to
// catalog entries. Implementations must be safe for concurrent use after
// construction.
type Engine interface {
	Search(query string, limit int) []models.Match
	GetBySymbol(symbol string) *models.Stock
	GetStock(symbol, exchange string) *models.Stock
}

// CascadeEngine is the primary Engine, backed by the tiered matcher.
type CascadeEngine struct {
	matcher *matcher.Matcher
}

func NewCascadeEngine(stocks []models.Stock, cfg matcher.Config) *CascadeEngine {
	return &CascadeEngine{matcher: matcher.New(stocks, cfg)}
}

func (e *CascadeEngine) Search(query string, limit int) []models.Match {
	return e.matcher.Match(query, limit)
}

func (e *CascadeEngine) GetBySymbol(symbol string) *models.Stock {
	rec := e.matcher.Catalog().BySymbol(symbol)
	if rec == nil {
		return nil
	}
	stock := rec.Stock
	return &stock
}

// GetStock resolves a symbol scoped to one exchange, falling back to a
// plain symbol lookup when the exchange is empty or has no listing.
func (e *CascadeEngine) GetStock(symbol, exchange string) *models.Stock {
	if exchange != "" {
		if rec := e.matcher.Catalog().BySymbolAndExchange(symbol, exchange); rec != nil {
			stock := rec.Stock
			return &stock
		}
	}
	return e.GetBySymbol(symbol)
}

// Matcher exposes the underlying matcher, mainly for instrumentation.
func (e *CascadeEngine) Matcher() *matcher.Matcher { return e.matcher }

// Store holds the engine behind an atomically swappable pointer. Reloading
// a catalog builds a brand-new engine and swaps it in; queries running
// against the previous snapshot finish unaffected. Store itself implements
// Engine, so handlers can hold it directly.
type Store struct {
	current atomic.Pointer[snapshot]
}

type snapshot struct {
	engine Engine
}

func NewStore(engine Engine) *Store {
	s := &Store{}
	s.current.Store(&snapshot{engine: engine})
	return s
}

// Engine returns the current snapshot's engine.
func (s *Store) Engine() Engine {
	return s.current.Load().engine
}

// Swap publishes a freshly built engine for subsequent queries.
func (s *Store) Swap(engine Engine) {
	s.current.Store(&snapshot{engine: engine})
}

func (s *Store) Search(query string, limit int) []models.Match {
	return s.Engine().Search(query, limit)
}

func (s *Store) GetBySymbol(symbol string) *models.Stock {
	return s.Engine().GetBySymbol(symbol)
}

func (s *Store) GetStock(symbol, exchange string) *models.Stock {
	return s.Engine().GetStock(symbol, exchange)
}
