package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/vedantwalia/stock-monitor/models"
)

// LoadStocks reads a curated catalog CSV with Symbol,Name,Exchange,Type
// columns. A header row is skipped when present. Rows missing the symbol or
// the company name are dropped silently; source files are dirty and a
// partial catalog beats a fatal load.
func LoadStocks(filePath string) ([]models.Stock, error) {
	records, err := readCSV(filePath)
	if err != nil {
		return nil, err
	}
	if len(records) > 0 && len(records[0]) > 0 && strings.EqualFold(records[0][0], "Symbol") {
		records = records[1:]
	}

	var stocks []models.Stock
	for _, record := range records {
		if len(record) < 2 {
			continue
		}
		stock := models.Stock{
			Symbol: strings.TrimSpace(record[0]),
			Name:   strings.TrimSpace(record[1]),
		}
		if len(record) > 2 {
			stock.Exchange = strings.TrimSpace(record[2])
		}
		if len(record) > 3 {
			stock.Type = strings.TrimSpace(record[3])
		}
		if stock.Symbol == "" || stock.Name == "" {
			continue
		}
		stocks = append(stocks, stock)
	}
	return stocks, nil
}

// LoadNSEStocks reads the NSE bulk equity file.
// Format: SYMBOL,NAME OF COMPANY, SERIES, DATE OF LISTING, ...
func LoadNSEStocks(filePath string) ([]models.Stock, error) {
	return loadExchangeCSV(filePath, "NSE")
}

// LoadBSEStocks reads the BSE bulk equity file.
// Format: SYMBOL,NAME OF COMPANY
func LoadBSEStocks(filePath string) ([]models.Stock, error) {
	return loadExchangeCSV(filePath, "BSE")
}

func loadExchangeCSV(filePath, exchange string) ([]models.Stock, error) {
	records, err := readCSV(filePath)
	if err != nil {
		return nil, err
	}

	var stocks []models.Stock
	for i, record := range records {
		if i == 0 {
			// Header row.
			continue
		}
		if len(record) < 2 {
			continue
		}
		symbol := strings.TrimSpace(record[0])
		name := strings.TrimSpace(record[1])
		if symbol == "" || name == "" {
			continue
		}
		stocks = append(stocks, models.Stock{
			Symbol:   symbol,
			Name:     name,
			Exchange: exchange,
			Type:     "Stock",
		})
	}
	return stocks, nil
}

// StocksFromMap converts a direct company-name -> ticker mapping into
// catalog entries, for callers that already hold tickers. A trailing market
// suffix on the ticker is stripped to recover the bare symbol. Entries are
// sorted by name so catalog positions stay deterministic across runs.
func StocksFromMap(mapping map[string]string, marketSuffix string) []models.Stock {
	names := make([]string, 0, len(mapping))
	for name := range mapping {
		names = append(names, name)
	}
	sort.Strings(names)

	var stocks []models.Stock
	for _, name := range names {
		symbol := strings.TrimSuffix(strings.TrimSpace(mapping[name]), marketSuffix)
		trimmed := strings.TrimSpace(name)
		if symbol == "" || trimmed == "" {
			continue
		}
		stocks = append(stocks, models.Stock{Symbol: symbol, Name: trimmed})
	}
	return stocks
}

func readCSV(filePath string) ([][]string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", filePath, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", filePath, err)
	}
	return records, nil
}
