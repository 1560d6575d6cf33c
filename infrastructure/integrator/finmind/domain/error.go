package finminddomain

import (
	"context"
	"errors"
	"fmt"

	"github.com/vfg2006/revenue-dashboard/internal/domain"
)

// ErrMalformedData indica que a resposta não trouxe uma lista no campo data
var ErrMalformedData = errors.New("Failed to fetch data")

// TransportError representa falha de rede ou status HTTP diferente de 200
type TransportError struct {
	StatusCode int   // 0 quando a requisição nem chegou a ter resposta
	Err        error // Erro de rede subjacente (opcional)
}

// Error implementa a interface error
func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "HTTP error"
}

// Unwrap retorna o erro subjacente
func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError representa uma resposta da FinMind com status lógico diferente de 200.
// A mensagem da API é exibida ao usuário sem alteração.
type APIError struct {
	Status int
	Msg    string
}

// Error implementa a interface error
func (e *APIError) Error() string {
	if e.Msg == "" {
		return ErrMalformedData.Error()
	}
	return e.Msg
}

// Classify identifica o tipo de falha de uma busca
func Classify(err error) domain.FailureKind {
	var apiErr *APIError
	var transportErr *TransportError

	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.Canceled):
		return domain.FailureCanceled
	case errors.As(err, &apiErr):
		return domain.FailureAPI
	case errors.Is(err, ErrMalformedData):
		return domain.FailureMalformed
	case errors.As(err, &transportErr):
		return domain.FailureTransport
	default:
		return domain.FailureUnknown
	}
}

// UserMessage devolve o texto exibido na tela para uma falha de busca
func UserMessage(err error) string {
	var apiErr *APIError

	switch {
	case err == nil:
		return ""
	case errors.As(err, &apiErr):
		return apiErr.Error()
	case errors.Is(err, ErrMalformedData):
		return ErrMalformedData.Error()
	default:
		return err.Error()
	}
}
