package domain

import "time"

// RevenueQuery identifica uma busca de receita mensal na FinMind.
// Cada combinação diferente destes campos gera uma nova requisição.
type RevenueQuery struct {
	StockID   string `json:"stock_id"`
	StartDate string `json:"start_date,omitempty"` // yyyy-mm-dd
	EndDate   string `json:"end_date,omitempty"`   // yyyy-mm-dd
	Dataset   string `json:"dataset"`
	Token     string `json:"-"`
}

// FetchStatus é o estado de uma busca: carregando, erro ou sucesso
type FetchStatus string

const (
	FetchLoading FetchStatus = "loading"
	FetchError   FetchStatus = "error"
	FetchSuccess FetchStatus = "success"
)

// FailureKind classifica a falha de uma busca
type FailureKind string

const (
	FailureTransport FailureKind = "transport" // Falha de rede ou status HTTP diferente de 200
	FailureAPI       FailureKind = "api"       // A API respondeu com status lógico diferente de 200
	FailureMalformed FailureKind = "malformed" // Campo data ausente ou que não é uma lista
	FailureCanceled  FailureKind = "canceled"
	FailureUnknown   FailureKind = "unknown"
)

// FetchState é o retrato do último carregamento de um visitante
type FetchState struct {
	Status      FetchStatus     `json:"status"`
	Query       RevenueQuery    `json:"query"`
	Records     []RevenueRecord `json:"-"`
	RecordCount int             `json:"record_count"`
	Error       string          `json:"error,omitempty"`
	Failure     FailureKind     `json:"failure,omitempty"`
	Generation  uint64          `json:"generation"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
