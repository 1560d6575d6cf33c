package revenue

import (
	"fmt"
	"io"
	"sort"

	"github.com/pkg/errors"
	"github.com/vfg2006/revenue-dashboard/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	MonthlySheet = "每月营收"
	YearlySheet  = "年度营收"
)

// Cabeçalhos das tabelas mensal e anual, usados na página e na planilha
var (
	MonthlyHeaders = [3]string{"年度月份", "每月营收", "单月营收年增率 (%)"}
	YearlyHeaders  = [3]string{"年度", "年度营收", "年增率 (%)"}
)

// Formatos numéricos das colunas de valores (ids nativos do Excel)
const (
	revenueNumFmt = 4 // #,##0.00
	percentNumFmt = 2 // 0.00
)

// exportRow é uma linha da planilha: valores numéricos, ausentes ficam com a célula vazia
type exportRow struct {
	label   string
	revenue domain.Measure
	growth  domain.Measure
}

// WriteWorkbook grava as séries mensal e anual do relatório em uma planilha xlsx,
// da mais recente para a mais antiga, como na tabela da página
func WriteWorkbook(report *domain.RevenueReport, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", MonthlySheet); err != nil {
		return errors.Wrap(err, "erro ao renomear planilha mensal")
	}

	if err := writeRows(f, MonthlySheet, MonthlyHeaders, monthlyExportRows(report.Monthly)); err != nil {
		return err
	}

	if _, err := f.NewSheet(YearlySheet); err != nil {
		return errors.Wrap(err, "erro ao criar planilha anual")
	}

	if err := writeRows(f, YearlySheet, YearlyHeaders, yearlyExportRows(report.Yearly)); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "erro ao gravar planilha")
	}

	return nil
}

func monthlyExportRows(points []domain.MonthlyPoint) []exportRow {
	rows := make([]exportRow, 0, len(points))
	for _, point := range points {
		rows = append(rows, exportRow{
			label:   fmt.Sprintf("%04d%02d", point.Year, point.Month),
			revenue: point.ScaledRevenue,
			growth:  point.YoYGrowth,
		})
	}
	sortExportRowsDesc(rows)
	return rows
}

func yearlyExportRows(points []domain.YearlyPoint) []exportRow {
	rows := make([]exportRow, 0, len(points))
	for _, point := range points {
		rows = append(rows, exportRow{
			label:   fmt.Sprintf("%04d", point.Year),
			revenue: point.TotalScaledRevenue,
			growth:  point.YoYGrowth,
		})
	}
	sortExportRowsDesc(rows)
	return rows
}

func sortExportRowsDesc(rows []exportRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].label > rows[j].label
	})
}

func writeRows(f *excelize.File, sheet string, headers [3]string, rows []exportRow) error {
	header := []any{headers[0], headers[1], headers[2]}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return errors.Wrapf(err, "erro ao gravar cabeçalho da planilha %s", sheet)
	}

	for i, row := range rows {
		line := i + 2

		if err := f.SetCellStr(sheet, fmt.Sprintf("A%d", line), row.label); err != nil {
			return errors.Wrapf(err, "erro ao gravar linha %s da planilha %s", row.label, sheet)
		}
		if err := setMeasure(f, sheet, fmt.Sprintf("B%d", line), row.revenue); err != nil {
			return errors.Wrapf(err, "erro ao gravar receita %s da planilha %s", row.label, sheet)
		}
		if err := setMeasure(f, sheet, fmt.Sprintf("C%d", line), row.growth); err != nil {
			return errors.Wrapf(err, "erro ao gravar crescimento %s da planilha %s", row.label, sheet)
		}
	}

	if len(rows) > 0 {
		last := len(rows) + 1
		if err := setColumnFormat(f, sheet, "B", last, revenueNumFmt); err != nil {
			return err
		}
		if err := setColumnFormat(f, sheet, "C", last, percentNumFmt); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheet, "A", "C", 20)
}

// setMeasure grava o valor como número; valor ausente deixa a célula vazia
func setMeasure(f *excelize.File, sheet, cell string, m domain.Measure) error {
	v, ok := m.Get()
	if !ok {
		return nil
	}
	return f.SetCellFloat(sheet, cell, v, -1, 64)
}

func setColumnFormat(f *excelize.File, sheet, col string, lastRow, numFmt int) error {
	style, err := f.NewStyle(&excelize.Style{NumFmt: numFmt})
	if err != nil {
		return errors.Wrap(err, "erro ao criar estilo numérico")
	}

	if err := f.SetCellStyle(sheet, col+"2", fmt.Sprintf("%s%d", col, lastRow), style); err != nil {
		return errors.Wrapf(err, "erro ao aplicar formato na coluna %s da planilha %s", col, sheet)
	}
	return nil
}
