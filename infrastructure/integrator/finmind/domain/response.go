package finminddomain

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
)

// Envelope é o formato de todas as respostas da API v4 da FinMind
type Envelope struct {
	Msg    string              `json:"msg"`
	Status int                 `json:"status"`
	Data   jsoniter.RawMessage `json:"data"`
}

// HasListData indica se o campo data é uma lista JSON
func (e *Envelope) HasListData() bool {
	trimmed := strings.TrimSpace(string(e.Data))
	return strings.HasPrefix(trimmed, "[")
}

// MonthRevenue é um registro do dataset TaiwanStockMonthRevenue
type MonthRevenue struct {
	Date         string  `json:"date"`
	StockID      string  `json:"stock_id"`
	Country      string  `json:"country"`
	Revenue      Amount  `json:"revenue"`
	RevenueMonth Integer `json:"revenue_month"`
	RevenueYear  Integer `json:"revenue_year"`
}

// StockInfo é um registro do dataset TaiwanStockInfo
type StockInfo struct {
	IndustryCategory string `json:"industry_category"`
	StockID          string `json:"stock_id"`
	StockName        string `json:"stock_name"`
	Type             string `json:"type"`
	Date             string `json:"date"`
}

// Amount é um valor monetário tolerante: null, ausente ou texto não numérico viram "sem valor"
// em vez de falhar a decodificação da resposta inteira.
type Amount struct {
	Value decimal.Decimal
	Valid bool
}

// UnmarshalJSON aceita números, números entre aspas (com ou sem separador de milhar) e null
func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = Amount{}

	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		return nil
	}

	raw = strings.Trim(raw, `"`)
	raw = strings.ReplaceAll(raw, ",", "")

	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}

	a.Value = value
	a.Valid = true
	return nil
}

// NullDecimal converte para o tipo usado pelo domínio
func (a Amount) NullDecimal() decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: a.Value, Valid: a.Valid}
}

// Integer é um inteiro tolerante: null, texto não numérico ou valor fracionário viram 0,
// e números entre aspas são aceitos
type Integer int

func (i *Integer) UnmarshalJSON(data []byte) error {
	*i = 0

	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || !value.IsInteger() {
		return nil
	}

	*i = Integer(value.IntPart())
	return nil
}
