// Package stocks mantém o diretório de ações usado na busca da página de dados financeiros
package stocks

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-dashboard/internal/domain"
	"golang.org/x/sync/singleflight"
)

const DefaultSearchLimit = 20

// refreshTimeout limita a atualização compartilhada, que não depende do contexto de quem a iniciou
const refreshTimeout = time.Minute

// Source fornece a lista completa de ações
type Source interface {
	GetStockInfo(ctx context.Context) ([]domain.StockInfo, error)
}

type Catalog struct {
	source Source
	group  singleflight.Group

	mu          sync.RWMutex
	stocks      []domain.StockInfo
	byID        map[string]domain.StockInfo
	refreshedAt time.Time
}

// NewCatalog cria o diretório vazio. Os dados chegam no primeiro Refresh.
func NewCatalog(source Source) *Catalog {
	return &Catalog{
		source: source,
		byID:   make(map[string]domain.StockInfo),
	}
}

// Refresh recarrega o diretório. Chamadas simultâneas compartilham a mesma requisição, que roda
// desvinculada do ctx de quem a iniciou: cada chamador só para de esperar quando o próprio ctx termina.
// Em caso de erro o diretório anterior é mantido.
func (c *Catalog) Refresh(ctx context.Context) (int, error) {
	ch := c.group.DoChan("refresh", func() (any, error) {
		refreshCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), refreshTimeout)
		defer cancel()

		stocks, err := c.source.GetStockInfo(refreshCtx)
		if err != nil {
			return 0, err
		}

		c.replace(stocks)
		return len(stocks), nil
	})

	var result singleflight.Result
	select {
	case <-ctx.Done():
		logrus.WithError(ctx.Err()).Debug("Espera pela atualização do diretório de ações interrompida")
		return 0, ctx.Err()
	case result = <-ch:
	}

	if result.Err != nil {
		logrus.WithError(result.Err).Error("Erro ao atualizar o diretório de ações")
		return 0, result.Err
	}

	logrus.WithFields(logrus.Fields{
		"stocks": result.Val,
		"shared": result.Shared,
	}).Info("Diretório de ações atualizado")

	return result.Val.(int), nil
}

// Search procura por prefixo do código ou parte do nome. Códigos exatos vêm primeiro.
// Consulta vazia retorna as primeiras ações do diretório.
func (c *Catalog) Search(q string, limit int) []domain.StockInfo {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	q = strings.ToLower(strings.TrimSpace(q))

	c.mu.RLock()
	defer c.mu.RUnlock()

	type match struct {
		stock domain.StockInfo
		rank  int
	}

	matches := make([]match, 0, limit)
	for _, stock := range c.stocks {
		rank, ok := matchRank(stock, q)
		if !ok {
			continue
		}
		matches = append(matches, match{stock: stock, rank: rank})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].rank < matches[j].rank
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	result := make([]domain.StockInfo, 0, len(matches))
	for _, m := range matches {
		result = append(result, m.stock)
	}

	return result
}

// Lookup busca uma ação pelo código. Se o diretório ainda estiver vazio, tenta carregá-lo uma vez.
func (c *Catalog) Lookup(ctx context.Context, stockID string) (domain.StockInfo, bool) {
	if c.Len() == 0 {
		if _, err := c.Refresh(ctx); err != nil {
			return domain.StockInfo{}, false
		}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	stock, found := c.byID[stockID]
	return stock, found
}

// Len retorna a quantidade de ações no diretório
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.stocks)
}

// RefreshedAt retorna o horário da última atualização bem-sucedida
func (c *Catalog) RefreshedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.refreshedAt
}

func (c *Catalog) replace(stocks []domain.StockInfo) {
	byID := make(map[string]domain.StockInfo, len(stocks))
	for _, stock := range stocks {
		byID[stock.StockID] = stock
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.stocks = stocks
	c.byID = byID
	c.refreshedAt = time.Now()
}

// matchRank: 0 código exato, 1 prefixo do código, 2 parte do nome
func matchRank(stock domain.StockInfo, q string) (int, bool) {
	if q == "" {
		return 2, true
	}

	id := strings.ToLower(stock.StockID)
	switch {
	case id == q:
		return 0, true
	case strings.HasPrefix(id, q):
		return 1, true
	case strings.Contains(strings.ToLower(stock.StockName), q):
		return 2, true
	}

	return 0, false
}
