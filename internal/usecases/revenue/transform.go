package revenue

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/revenue-dashboard/internal/domain"
)

var (
	thousand = decimal.NewFromInt(1000)
	hundred  = decimal.NewFromInt(100)
	one      = decimal.NewFromInt(1)
)

type yearMonth struct {
	year  int
	month int
}

// ComputeMonthlySeries ordena os registros por data e calcula a receita em milhares e o crescimento
// em relação ao mesmo mês do ano anterior. A entrada não é alterada.
func ComputeMonthlySeries(records []domain.RevenueRecord) []domain.MonthlyPoint {
	sorted := sortedByDate(records)

	// Primeira ocorrência de cada (ano, mês) na ordem cronológica
	index := make(map[yearMonth]decimal.NullDecimal, len(sorted))
	for _, record := range sorted {
		key := yearMonth{year: record.Year, month: record.Month}
		if _, exists := index[key]; !exists {
			index[key] = record.Revenue
		}
	}

	points := make([]domain.MonthlyPoint, 0, len(sorted))
	for _, record := range sorted {
		point := domain.MonthlyPoint{
			Timestamp:     record.Date,
			Year:          record.Year,
			Month:         record.Month,
			YearMonth:     fmt.Sprintf("%04d-%02d", record.Year, record.Month),
			ScaledRevenue: scale(record.Revenue),
			YoYGrowth:     domain.None(),
		}

		if previous, exists := index[yearMonth{year: record.Year - 1, month: record.Month}]; exists {
			point.YoYGrowth = growth(record.Revenue, previous)
		}

		points = append(points, point)
	}

	return points
}

// ComputeYearlySeries soma a receita em milhares por ano e calcula o crescimento anual.
// A janela considera os últimos windowYears anos a partir do maior ano presente nos dados;
// windowYears <= 0 mantém todos os anos. Meses sem receita válida não entram na soma.
func ComputeYearlySeries(records []domain.RevenueRecord, windowYears int) []domain.YearlyPoint {
	type yearTotal struct {
		sum      decimal.Decimal
		reported int
		missing  int
	}

	totals := make(map[int]*yearTotal)
	for _, record := range records {
		total, exists := totals[record.Year]
		if !exists {
			total = &yearTotal{}
			totals[record.Year] = total
		}

		if !record.Revenue.Valid {
			total.missing++
			continue
		}

		total.sum = total.sum.Add(record.Revenue.Decimal)
		total.reported++
	}

	if len(totals) == 0 {
		return []domain.YearlyPoint{}
	}

	years := make([]int, 0, len(totals))
	for year := range totals {
		years = append(years, year)
	}
	sort.Ints(years)

	totalOf := func(year int) decimal.NullDecimal {
		total, exists := totals[year]
		if !exists || total.reported == 0 {
			return decimal.NullDecimal{}
		}
		return decimal.NullDecimal{Decimal: total.sum, Valid: true}
	}

	maxYear := years[len(years)-1]

	points := make([]domain.YearlyPoint, 0, len(years))
	for _, year := range years {
		if windowYears > 0 && year <= maxYear-windowYears {
			continue
		}

		current := totalOf(year)
		points = append(points, domain.YearlyPoint{
			YearStart:          time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
			Year:               year,
			TotalScaledRevenue: scale(current),
			YoYGrowth:          growth(current, totalOf(year-1)),
			ReportedMonths:     totals[year].reported,
			MissingMonths:      totals[year].missing,
		})
	}

	return points
}

// ComputeTableRows projeta a série mensal em linhas de tabela, da mais recente para a mais antiga
func ComputeTableRows(records []domain.RevenueRecord) []domain.TableRow {
	return MonthlyTableRows(ComputeMonthlySeries(records))
}

// MonthlyTableRows formata pontos mensais já calculados (yyyymm), em ordem decrescente
func MonthlyTableRows(points []domain.MonthlyPoint) []domain.TableRow {
	f := newFormatter()

	rows := make([]domain.TableRow, 0, len(points))
	for _, point := range points {
		rows = append(rows, domain.TableRow{
			YearMonth: fmt.Sprintf("%04d%02d", point.Year, point.Month),
			Revenue:   f.thousands(point.ScaledRevenue),
			YoYGrowth: FormatPercent(point.YoYGrowth),
		})
	}

	sortRowsDesc(rows)
	return rows
}

// ComputeYearlyTableRows formata os pontos anuais (yyyy), em ordem decrescente
func ComputeYearlyTableRows(points []domain.YearlyPoint) []domain.TableRow {
	f := newFormatter()

	rows := make([]domain.TableRow, 0, len(points))
	for _, point := range points {
		rows = append(rows, domain.TableRow{
			YearMonth: fmt.Sprintf("%04d", point.Year),
			Revenue:   f.thousands(point.TotalScaledRevenue),
			YoYGrowth: FormatPercent(point.YoYGrowth),
		})
	}

	sortRowsDesc(rows)
	return rows
}

// LastMonths mantém os últimos n pontos da série; n <= 0 mantém todos
func LastMonths(points []domain.MonthlyPoint, n int) []domain.MonthlyPoint {
	start := 0
	if n > 0 && n < len(points) {
		start = len(points) - n
	}

	out := make([]domain.MonthlyPoint, len(points)-start)
	copy(out, points[start:])
	return out
}

// BuildMonthlyChart monta as séries do gráfico. Valores ausentes viram 0.
func BuildMonthlyChart(points []domain.MonthlyPoint, showYoY bool) domain.ChartSeries {
	chart := domain.ChartSeries{
		Labels:  make([]string, 0, len(points)),
		Revenue: make([]float64, 0, len(points)),
	}
	if showYoY {
		chart.YoY = make([]float64, 0, len(points))
	}

	for _, point := range points {
		chart.Labels = append(chart.Labels, point.YearMonth)
		chart.Revenue = append(chart.Revenue, point.ScaledRevenue.Float())
		if showYoY {
			chart.YoY = append(chart.YoY, point.YoYGrowth.Float())
		}
	}

	return chart
}

// BuildYearlyChart monta as séries do gráfico anual
func BuildYearlyChart(points []domain.YearlyPoint, showYoY bool) domain.ChartSeries {
	chart := domain.ChartSeries{
		Labels:  make([]string, 0, len(points)),
		Revenue: make([]float64, 0, len(points)),
	}
	if showYoY {
		chart.YoY = make([]float64, 0, len(points))
	}

	for _, point := range points {
		chart.Labels = append(chart.Labels, fmt.Sprintf("%04d", point.Year))
		chart.Revenue = append(chart.Revenue, point.TotalScaledRevenue.Float())
		if showYoY {
			chart.YoY = append(chart.YoY, point.YoYGrowth.Float())
		}
	}

	return chart
}

func sortedByDate(records []domain.RevenueRecord) []domain.RevenueRecord {
	sorted := make([]domain.RevenueRecord, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	return sorted
}

func sortRowsDesc(rows []domain.TableRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].YearMonth > rows[j].YearMonth
	})
}

func scale(revenue decimal.NullDecimal) domain.Measure {
	if !revenue.Valid {
		return domain.None()
	}
	return domain.Some(revenue.Decimal.Div(thousand).InexactFloat64())
}

// growth calcula (atual / anterior - 1) * 100. Sem valor quando algum lado falta ou o anterior é zero.
func growth(current, previous decimal.NullDecimal) domain.Measure {
	if !current.Valid || !previous.Valid || previous.Decimal.IsZero() {
		return domain.None()
	}

	return domain.Some(current.Decimal.Div(previous.Decimal).Sub(one).Mul(hundred).InexactFloat64())
}
