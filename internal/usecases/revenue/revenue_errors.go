package revenue

import (
	"errors"
	"fmt"
)

// Erros de validação da consulta de receita
var (
	ErrStockIDRequired = errors.New("stock_id é obrigatório")
	ErrInvalidDate     = errors.New("data inválida, use o formato yyyy-mm-dd")
	ErrInvalidRange    = errors.New("a data de início não pode ser posterior à data de fim")
	ErrInvalidPeriod   = errors.New("período inválido, use 0, 12, 36 ou 60")
	ErrInvalidView     = errors.New("visão inválida, use monthly ou yearly")
	ErrInvalidWindow   = errors.New("janela anual não pode ser negativa")
	ErrInvalidFlag     = errors.New("valor inválido, use true ou false")
)

// ValidationError é um erro de validação com o campo que o causou
type ValidationError struct {
	Err   error  // Erro base
	Field string // Parâmetro da requisição
	Value string // Valor recebido
}

// Error implementa a interface error
func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: %s=%q", e.Err.Error(), e.Field, e.Value)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError cria um novo ValidationError
func NewValidationError(err error, field string, value string) *ValidationError {
	return &ValidationError{
		Err:   err,
		Field: field,
		Value: value,
	}
}

// IsValidationError verifica se o erro veio da validação da consulta
func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}
