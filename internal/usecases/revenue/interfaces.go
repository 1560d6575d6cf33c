package revenue

import (
	"context"

	"github.com/vfg2006/revenue-dashboard/internal/domain"
)

// Reporter monta o relatório de receita exibido na página e na API
type Reporter interface {
	// GetReport busca os dados do visitante e calcula séries, tabelas e gráfico
	GetReport(ctx context.Context, viewerID string, query domain.RevenueQuery, opts domain.ReportOptions) (*domain.RevenueReport, error)

	// DefaultQuery retorna a consulta usada quando a página abre sem parâmetros
	DefaultQuery() domain.RevenueQuery

	// DefaultOptions retorna as opções de exibição padrão
	DefaultOptions() domain.ReportOptions
}

// RecordLoader carrega os registros de receita de um visitante
type RecordLoader interface {
	Load(ctx context.Context, viewerID string, query domain.RevenueQuery) (domain.FetchState, error)
}

// StockDirectory resolve o nome de uma ação pelo código
type StockDirectory interface {
	Lookup(ctx context.Context, stockID string) (domain.StockInfo, bool)
}
