package fetching

import "github.com/vfg2006/revenue-dashboard/internal/domain"

// StateReader expõe o estado da última busca de cada visitante
type StateReader interface {
	State(viewerID string) (domain.FetchState, bool)
}
