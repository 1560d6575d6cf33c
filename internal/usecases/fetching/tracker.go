// Package fetching controla as buscas de receita de cada visitante. Uma busca nova cancela
// a anterior do mesmo visitante e só a busca mais recente pode gravar o resultado.
package fetching

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-dashboard/infrastructure/integrator/finmind"
	finminddomain "github.com/vfg2006/revenue-dashboard/infrastructure/integrator/finmind/domain"
	"github.com/vfg2006/revenue-dashboard/internal/domain"
)

// ErrSuperseded indica que a busca foi substituída por outra mais nova do mesmo visitante
var ErrSuperseded = errors.New("busca substituída por uma mais recente")

type entry struct {
	generation uint64
	cancel     context.CancelFunc
	state      domain.FetchState
	settled    domain.FetchState // último estado concluído, restaurado se a busca atual for abandonada
	touchedAt  time.Time
}

type Tracker struct {
	integrator finmind.Integrator
	now        func() time.Time

	mu      sync.Mutex
	entries map[string]*entry
}

// NewTracker cria o controle de buscas por visitante
func NewTracker(integrator finmind.Integrator) *Tracker {
	return &Tracker{
		integrator: integrator,
		now:        time.Now,
		entries:    make(map[string]*entry),
	}
}

// Load busca os registros da consulta para o visitante. A busca só é feita quando a consulta muda:
// se o último resultado do visitante foi sucesso para a mesma consulta, ele é devolvido.
// Se outra busca do mesmo visitante começar antes desta terminar, esta é cancelada e retorna ErrSuperseded.
// Se o próprio ctx for cancelado, o estado anterior é mantido e o erro do ctx é retornado.
// Falhas da FinMind não são erro: ficam no estado retornado.
func (t *Tracker) Load(ctx context.Context, viewerID string, query domain.RevenueQuery) (domain.FetchState, error) {
	if state, ok := t.reuse(viewerID, query); ok {
		return state, nil
	}

	fetchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	generation := t.begin(viewerID, query, cancel)

	logger := logrus.WithFields(logrus.Fields{
		"viewer_id":  viewerID,
		"stock_id":   query.StockID,
		"generation": generation,
	})
	logger.Debug("Iniciando busca de receita")

	records, err := t.integrator.GetMonthRevenue(fetchCtx, query)

	if err != nil && ctx.Err() != nil {
		if !t.abandon(viewerID, generation) {
			return domain.FetchState{}, ErrSuperseded
		}
		logger.Debug("Busca cancelada pelo solicitante, estado anterior mantido")
		return domain.FetchState{}, ctx.Err()
	}

	state := domain.FetchState{
		Query:      query,
		Generation: generation,
	}

	if err != nil {
		state.Status = domain.FetchError
		state.Error = finminddomain.UserMessage(err)
		state.Failure = finminddomain.Classify(err)
	} else {
		state.Status = domain.FetchSuccess
		state.Records = records
		state.RecordCount = len(records)
	}

	state, current := t.finish(viewerID, generation, state)
	if !current {
		logger.Info("Resultado de busca descartado: existe uma busca mais recente")
		return domain.FetchState{}, ErrSuperseded
	}

	if err != nil {
		logger.WithError(err).WithField("failure", state.Failure).Warn("Busca de receita falhou")
	} else {
		logger.WithField("records", state.RecordCount).Debug("Busca de receita concluída")
	}

	return state, nil
}

// State retorna o estado da última busca do visitante
func (t *Tracker) State(viewerID string) (domain.FetchState, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, exists := t.entries[viewerID]
	if !exists {
		return domain.FetchState{}, false
	}

	return e.state, true
}

// Prune remove visitantes sem atividade há mais de maxIdle. Buscas em andamento não são removidas.
func (t *Tracker) Prune(maxIdle time.Duration) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	limit := t.now().Add(-maxIdle)
	removed := 0

	for viewerID, e := range t.entries {
		if e.state.Status == domain.FetchLoading {
			continue
		}
		if e.touchedAt.Before(limit) {
			delete(t.entries, viewerID)
			removed++
		}
	}

	return removed
}

// Len retorna a quantidade de visitantes acompanhados
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.entries)
}

// reuse devolve o último sucesso do visitante quando a consulta não mudou e não há busca em andamento
func (t *Tracker) reuse(viewerID string, query domain.RevenueQuery) (domain.FetchState, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, exists := t.entries[viewerID]
	if !exists || e.state.Status != domain.FetchSuccess || e.state.Query != query {
		return domain.FetchState{}, false
	}

	e.touchedAt = t.now()
	return e.state, true
}

// begin registra uma nova geração para o visitante, cancelando a busca anterior
func (t *Tracker) begin(viewerID string, query domain.RevenueQuery, cancel context.CancelFunc) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, exists := t.entries[viewerID]
	if !exists {
		e = &entry{}
		t.entries[viewerID] = e
	}

	if e.cancel != nil {
		e.cancel()
	}

	if e.state.Status != "" && e.state.Status != domain.FetchLoading {
		e.settled = e.state
	}

	e.generation++
	e.cancel = cancel
	e.touchedAt = t.now()
	e.state = domain.FetchState{
		Status:     domain.FetchLoading,
		Query:      query,
		Generation: e.generation,
		UpdatedAt:  e.touchedAt,
	}

	return e.generation
}

// finish grava o resultado apenas se a geração ainda for a mais recente
func (t *Tracker) finish(viewerID string, generation uint64, state domain.FetchState) (domain.FetchState, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, exists := t.entries[viewerID]
	if !exists || e.generation != generation {
		return domain.FetchState{}, false
	}

	e.cancel = nil
	e.touchedAt = t.now()
	state.UpdatedAt = e.touchedAt
	e.state = state

	return state, true
}

// abandon desfaz a geração atual depois de um cancelamento pelo solicitante. Sem estado
// anterior o visitante deixa de ser acompanhado.
func (t *Tracker) abandon(viewerID string, generation uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, exists := t.entries[viewerID]
	if !exists || e.generation != generation {
		return false
	}

	if e.settled.Status == "" {
		delete(t.entries, viewerID)
		return true
	}

	e.cancel = nil
	e.state = e.settled
	return true
}
