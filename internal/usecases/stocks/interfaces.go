package stocks

import "github.com/vfg2006/revenue-dashboard/internal/domain"

// Searcher procura ações no diretório
type Searcher interface {
	Search(q string, limit int) []domain.StockInfo
}
