package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RevenueRecord representa a receita de um mês de uma ação, como recebida da FinMind
type RevenueRecord struct {
	Date    time.Time           `json:"date"`
	StockID string              `json:"stock_id"`
	Revenue decimal.NullDecimal `json:"revenue"` // Ausente quando a API não informa um número válido
	Month   int                 `json:"month"`   // 1-12
	Year    int                 `json:"year"`
}

// MonthlyPoint é um ponto da série mensal, com receita em milhares
type MonthlyPoint struct {
	Timestamp     time.Time `json:"timestamp"`
	Year          int       `json:"year"`
	Month         int       `json:"month"`
	YearMonth     string    `json:"year_month"` // Formato yyyy-mm, usado como rótulo do gráfico
	ScaledRevenue Measure   `json:"scaled_revenue"`
	YoYGrowth     Measure   `json:"yoy_growth"`
}

// YearlyPoint é a agregação anual da receita em milhares
type YearlyPoint struct {
	YearStart          time.Time `json:"year_start"`
	Year               int       `json:"year"`
	TotalScaledRevenue Measure   `json:"total_scaled_revenue"`
	YoYGrowth          Measure   `json:"yoy_growth"`
	ReportedMonths     int       `json:"reported_months"`
	MissingMonths      int       `json:"missing_months"` // Meses recebidos sem receita válida
}

// TableRow é a projeção formatada de um ponto mensal ou anual para exibição
type TableRow struct {
	YearMonth string `json:"year_month"` // yyyymm para meses, yyyy para anos
	Revenue   string `json:"revenue"`
	YoYGrowth string `json:"yoy_growth"`
}

// ChartSeries contém as séries prontas para o gráfico de barras e linha
type ChartSeries struct {
	Labels  []string  `json:"labels"`
	Revenue []float64 `json:"revenue"`
	YoY     []float64 `json:"yoy"`
}

// ReportView define a visão exibida na página
type ReportView string

const (
	ReportViewMonthly ReportView = "monthly"
	ReportViewYearly  ReportView = "yearly"
)

// ReportOptions controla como os dados já buscados são apresentados
type ReportOptions struct {
	Period       int        `json:"period"` // Últimos N meses; 0 = todos
	View         ReportView `json:"view"`
	ShowYoY      bool       `json:"show_yoy"`
	YearlyWindow int        `json:"yearly_window"` // Últimos N anos presentes nos dados
}

// RevenueReport é o resultado completo exibido na página de dados financeiros
type RevenueReport struct {
	StockID      string         `json:"stock_id"`
	StockName    string         `json:"stock_name"`
	Query        RevenueQuery   `json:"query"`
	Options      ReportOptions  `json:"options"`
	Status       FetchStatus    `json:"status"`
	Error        string         `json:"error,omitempty"`
	Failure      FailureKind    `json:"failure,omitempty"`
	Monthly      []MonthlyPoint `json:"monthly"`
	MonthlyTable []TableRow     `json:"monthly_table"`
	Yearly       []YearlyPoint  `json:"yearly"`
	YearlyTable  []TableRow     `json:"yearly_table"`
	Chart        ChartSeries    `json:"chart"`
}
