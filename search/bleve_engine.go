package search

import (
	"fmt"
	"log"
	"strings"

	"github.com/blevesearch/bleve/v2"

	"github.com/vedantwalia/stock-monitor/models"
)

// BleveEngine is an alternative Engine backed by a bleve full-text index.
// It ranks with bleve's analyzer instead of the cascade tiers, for
// deployments that prefer analyzer-based search over tiered matching.
type BleveEngine struct {
	index        bleve.Index
	marketSuffix string
}

// NewBleveEngine opens the index at indexPath, building and populating it
// first when it does not exist yet.
func NewBleveEngine(indexPath string, stocks []models.Stock, marketSuffix string) (*BleveEngine, error) {
	index, err := bleve.Open(indexPath)
	if err == bleve.ErrorIndexPathDoesNotExist {
		index, err = bleve.New(indexPath, bleve.NewIndexMapping())
		if err != nil {
			return nil, fmt.Errorf("create index: %w", err)
		}

		log.Println("Indexing stocks...")
		batch := index.NewBatch()
		for _, stock := range stocks {
			if stock.Symbol == "" || stock.Name == "" {
				continue
			}
			// Symbol alone can collide across exchanges.
			id := fmt.Sprintf("%s-%s", stock.Symbol, stock.Exchange)
			if err := batch.Index(id, stock); err != nil {
				return nil, fmt.Errorf("add to batch: %w", err)
			}
		}
		if err := index.Batch(batch); err != nil {
			return nil, fmt.Errorf("execute batch: %w", err)
		}
		log.Println("Indexing complete.")
	} else if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}

	return &BleveEngine{index: index, marketSuffix: marketSuffix}, nil
}

func (e *BleveEngine) Search(query string, limit int) []models.Match {
	if limit <= 0 {
		limit = 5
	}

	// Exact symbol hits first, then symbol prefixes, then name terms, then
	// substring wildcards on either field.
	exactQuery := bleve.NewTermQuery(strings.ToLower(query))
	exactQuery.SetField("symbol")
	exactQuery.SetBoost(10.0)

	prefixQuery := bleve.NewPrefixQuery(strings.ToLower(query))
	prefixQuery.SetField("symbol")
	prefixQuery.SetBoost(5.0)

	nameMatchQuery := bleve.NewMatchQuery(query)
	nameMatchQuery.SetField("name")
	nameMatchQuery.SetBoost(3.0)

	wildcardSymbol := bleve.NewWildcardQuery("*" + strings.ToLower(query) + "*")
	wildcardSymbol.SetField("symbol")
	wildcardSymbol.SetBoost(2.0)

	wildcardName := bleve.NewWildcardQuery("*" + strings.ToLower(query) + "*")
	wildcardName.SetField("name")
	wildcardName.SetBoost(1.5)

	searchQuery := bleve.NewDisjunctionQuery(
		exactQuery,
		prefixQuery,
		nameMatchQuery,
		wildcardSymbol,
		wildcardName,
	)

	searchRequest := bleve.NewSearchRequest(searchQuery)
	searchRequest.Fields = []string{"symbol", "name"}
	searchRequest.Size = limit

	searchResults, err := e.index.Search(searchRequest)
	if err != nil {
		log.Printf("Search error: %v", err)
		return nil
	}

	var results []models.Match
	topScore := 0.0
	if len(searchResults.Hits) > 0 {
		topScore = searchResults.Hits[0].Score
	}
	for _, hit := range searchResults.Hits {
		symbol := fieldString(hit.Fields, "symbol")
		score := 100.0
		if topScore > 0 {
			score = hit.Score / topScore * 100
		}
		results = append(results, models.Match{
			Symbol: symbol,
			Ticker: symbol + e.marketSuffix,
			Name:   fieldString(hit.Fields, "name"),
			Score:  score,
			Type:   models.MatchFullText,
		})
	}
	return results
}

func (e *BleveEngine) GetBySymbol(symbol string) *models.Stock {
	termQuery := bleve.NewTermQuery(strings.ToLower(symbol))
	termQuery.SetField("symbol")

	searchRequest := bleve.NewSearchRequest(termQuery)
	searchRequest.Fields = []string{"symbol", "name", "exchange", "type"}
	searchRequest.Size = 1

	searchResults, err := e.index.Search(searchRequest)
	if err != nil || len(searchResults.Hits) == 0 {
		return nil
	}

	hit := searchResults.Hits[0]
	return &models.Stock{
		Symbol:   fieldString(hit.Fields, "symbol"),
		Name:     fieldString(hit.Fields, "name"),
		Exchange: fieldString(hit.Fields, "exchange"),
		Type:     fieldString(hit.Fields, "type"),
	}
}

// GetStock resolves a symbol scoped to one exchange, falling back to a
// plain symbol lookup when the exchange is empty or has no listing.
func (e *BleveEngine) GetStock(symbol, exchange string) *models.Stock {
	if exchange != "" {
		symbolQuery := bleve.NewTermQuery(strings.ToLower(symbol))
		symbolQuery.SetField("symbol")

		exchangeQuery := bleve.NewTermQuery(strings.ToLower(exchange))
		exchangeQuery.SetField("exchange")

		searchRequest := bleve.NewSearchRequest(bleve.NewConjunctionQuery(symbolQuery, exchangeQuery))
		searchRequest.Fields = []string{"symbol", "name", "exchange", "type"}
		searchRequest.Size = 1

		searchResults, err := e.index.Search(searchRequest)
		if err == nil && len(searchResults.Hits) > 0 {
			hit := searchResults.Hits[0]
			return &models.Stock{
				Symbol:   fieldString(hit.Fields, "symbol"),
				Name:     fieldString(hit.Fields, "name"),
				Exchange: fieldString(hit.Fields, "exchange"),
				Type:     fieldString(hit.Fields, "type"),
			}
		}
	}
	return e.GetBySymbol(symbol)
}

func (e *BleveEngine) Close() error {
	return e.index.Close()
}

func fieldString(fields map[string]interface{}, key string) string {
	if val, ok := fields[key].(string); ok {
		return val
	}
	return ""
}
