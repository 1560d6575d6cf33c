// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"math"
	"strconv"
)

// Measure é um valor numérico que pode estar ausente.
// É a única representação de "sem valor" usada pelo gráfico, pela tabela e pela API.
type Measure struct {
	value float64
	valid bool
}

// Some cria uma medida presente. Valores NaN ou infinitos são tratados como ausentes.
func Some(v float64) Measure {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Measure{}
	}
	return Measure{value: v, valid: true}
}

// None cria uma medida ausente
func None() Measure {
	return Measure{}
}

// Get retorna o valor e se ele está presente
func (m Measure) Get() (float64, bool) {
	return m.value, m.valid
}

// Valid indica se a medida tem valor
func (m Measure) Valid() bool {
	return m.valid
}

// Float retorna o valor para o gráfico: medidas ausentes viram 0
func (m Measure) Float() float64 {
	if !m.valid {
		return 0
	}
	return m.value
}

// MarshalJSON serializa medidas ausentes como null
func (m Measure) MarshalJSON() ([]byte, error) {
	if !m.valid {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, m.value, 'f', -1, 64), nil
}

// UnmarshalJSON aceita número ou null
func (m *Measure) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == "" {
		*m = Measure{}
		return nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}

	*m = Some(v)
	return nil
}
