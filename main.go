package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/vedantwalia/stock-monitor/api"
	"github.com/vedantwalia/stock-monitor/loader"
	"github.com/vedantwalia/stock-monitor/matcher"
	"github.com/vedantwalia/stock-monitor/search"
)

func main() {
	var (
		nsePath     = flag.String("nse", "data/nse_equity.csv", "NSE bulk equity CSV")
		curatedPath = flag.String("stocks", "data/stocks.csv", "curated catalog CSV")
		engineKind  = flag.String("engine", "cascade", "search engine: cascade or bleve")
		indexPath   = flag.String("index", "stock_index.bleve", "bleve index path (engine=bleve)")
		addr        = flag.String("addr", ":8080", "listen address")
	)
	flag.Parse()

	nseStocks, err := loader.LoadNSEStocks(*nsePath)
	if err != nil {
		log.Printf("Warning: failed to load NSE equity data: %v", err)
	}
	log.Printf("Loaded %d NSE stocks.", len(nseStocks))

	curatedStocks, err := loader.LoadStocks(*curatedPath)
	if err != nil {
		log.Printf("Warning: failed to load curated stocks: %v", err)
	}
	log.Printf("Loaded %d curated stocks.", len(curatedStocks))

	allStocks := append(nseStocks, curatedStocks...)
	log.Printf("Total catalog entries: %d", len(allStocks))

	cfg := matcher.DefaultConfig()

	var engine search.Engine
	switch *engineKind {
	case "bleve":
		bleveEngine, err := search.NewBleveEngine(*indexPath, allStocks, cfg.MarketSuffix)
		if err != nil {
			log.Fatalf("Failed to initialize bleve engine: %v", err)
		}
		defer bleveEngine.Close()
		engine = bleveEngine
	default:
		engine = search.NewCascadeEngine(allStocks, cfg)
	}
	store := search.NewStore(engine)

	handler := api.NewHandler(store, api.YahooProvider{}, cfg.MarketSuffix)
	http.HandleFunc("/search", handler.Search)
	http.HandleFunc("/api/stock", handler.GetStock)

	log.Printf("Server starting on %s...", *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}
