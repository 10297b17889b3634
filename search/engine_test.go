package search

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedantwalia/stock-monitor/matcher"
	"github.com/vedantwalia/stock-monitor/models"
)

func testStocks() []models.Stock {
	return []models.Stock{
		{Symbol: "RELIANCE", Name: "Reliance Industries", Exchange: "NSE"},
		{Symbol: "TCS", Name: "Tata Consultancy Services", Exchange: "NSE"},
	}
}

func TestCascadeEngineSearch(t *testing.T) {
	engine := NewCascadeEngine(testStocks(), matcher.Config{})

	results := engine.Search("RELIANCE", 0)
	require.NotEmpty(t, results)
	assert.Equal(t, "RELIANCE", results[0].Symbol)
	assert.Equal(t, "RELIANCE.NS", results[0].Ticker)
	assert.Equal(t, models.MatchExact, results[0].Type)

	assert.Empty(t, engine.Search("zzz-no-such-company", 0))
}

func TestCascadeEngineGetBySymbol(t *testing.T) {
	engine := NewCascadeEngine(testStocks(), matcher.Config{})

	stock := engine.GetBySymbol("tcs")
	require.NotNil(t, stock)
	assert.Equal(t, "TCS", stock.Symbol)
	assert.Equal(t, "NSE", stock.Exchange)

	assert.Nil(t, engine.GetBySymbol("ZZZ"))
}

func TestCascadeEngineGetStockScopesByExchange(t *testing.T) {
	engine := NewCascadeEngine([]models.Stock{
		{Symbol: "TCS", Name: "Tata Consultancy Services", Exchange: "NSE"},
		{Symbol: "TCS", Name: "Tata Consultancy Services Ltd", Exchange: "BSE"},
	}, matcher.Config{})

	stock := engine.GetStock("tcs", "bse")
	require.NotNil(t, stock)
	assert.Equal(t, "BSE", stock.Exchange)

	stock = engine.GetStock("TCS", "NSE")
	require.NotNil(t, stock)
	assert.Equal(t, "NSE", stock.Exchange)

	// Unknown or empty exchange falls back to the plain symbol lookup.
	stock = engine.GetStock("TCS", "NYSE")
	require.NotNil(t, stock)
	assert.Equal(t, "NSE", stock.Exchange)

	stock = engine.GetStock("TCS", "")
	require.NotNil(t, stock)
	assert.Equal(t, "NSE", stock.Exchange)

	assert.Nil(t, engine.GetStock("ZZZ", "NSE"))
}

func TestStoreSwapPublishesNewCatalog(t *testing.T) {
	store := NewStore(NewCascadeEngine(testStocks(), matcher.Config{}))
	require.NotEmpty(t, store.Search("RELIANCE", 0))
	assert.Empty(t, store.Search("WIPRO", 0))

	refreshed := append(testStocks(), models.Stock{Symbol: "WIPRO", Name: "Wipro Limited", Exchange: "NSE"})
	store.Swap(NewCascadeEngine(refreshed, matcher.Config{}))

	results := store.Search("WIPRO", 0)
	require.NotEmpty(t, results)
	assert.Equal(t, "WIPRO", results[0].Symbol)
	require.NotNil(t, store.GetBySymbol("WIPRO"))
}

func TestStoreSwapWhileQuerying(t *testing.T) {
	store := NewStore(NewCascadeEngine(testStocks(), matcher.Config{}))

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				results := store.Search("RELIANCE", 0)
				// Every snapshot contains RELIANCE, so queries never observe
				// a half-built catalog.
				assert.NotEmpty(t, results)
			}
		}()
	}

	for i := 0; i < 50; i++ {
		store.Swap(NewCascadeEngine(testStocks(), matcher.Config{}))
	}
	close(stop)
	wg.Wait()
}
