package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/vedantwalia/stock-monitor/models"
	"github.com/vedantwalia/stock-monitor/search"
)

type Handler struct {
	Engine       search.Engine
	Provider     DataProvider
	MarketSuffix string
}

func NewHandler(engine search.Engine, provider DataProvider, marketSuffix string) *Handler {
	return &Handler{Engine: engine, Provider: provider, MarketSuffix: marketSuffix}
}

// Search handles GET /search?q=<query>&limit=<n>.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		http.Error(w, "Missing query parameter 'q'", http.StatusBadRequest)
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "Invalid limit parameter", http.StatusBadRequest)
			return
		}
		limit = n
	}

	results := h.Engine.Search(query, limit)
	if results == nil {
		// No match is an empty list, not null.
		results = []models.Match{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
}

// GetStock handles GET /api/stock?symbol=<symbol>&period=<period>, joining
// the catalog entry with the data provider's quote and history. An optional
// exchange parameter disambiguates symbols listed on more than one exchange.
func (h *Handler) GetStock(w http.ResponseWriter, r *http.Request) {
	symbol := r.URL.Query().Get("symbol")
	if symbol == "" {
		http.Error(w, "Missing symbol parameter", http.StatusBadRequest)
		return
	}

	period := r.URL.Query().Get("period")
	if period == "" {
		period = "1D"
	}

	stock := h.Engine.GetStock(symbol, r.URL.Query().Get("exchange"))
	if stock == nil {
		http.Error(w, "Stock not found", http.StatusNotFound)
		return
	}

	ticker := stock.Symbol + h.MarketSuffix
	data, err := h.Provider.Fetch(ticker, period)
	if err != nil {
		log.Printf("Error fetching data for %s: %v", ticker, err)
		http.Error(w, "Market data unavailable", http.StatusBadGateway)
		return
	}

	response := struct {
		*models.Stock
		Ticker string `json:"ticker"`
		*StockData
	}{stock, ticker, data}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
