package revenue

import (
	"strconv"

	"github.com/vfg2006/revenue-dashboard/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// MissingValue é o texto exibido na tabela quando não há valor
const MissingValue = "--"

// formatter não é seguro para uso concorrente: cada chamada cria o seu
type formatter struct {
	printer *message.Printer
}

func newFormatter() *formatter {
	return &formatter{printer: message.NewPrinter(language.English)}
}

func (f *formatter) thousands(m domain.Measure) string {
	v, ok := m.Get()
	if !ok {
		return MissingValue
	}
	return f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}

// FormatThousands formata com separador de milhar e até 3 casas decimais (1200 -> "1,200")
func FormatThousands(m domain.Measure) string {
	return newFormatter().thousands(m)
}

// FormatPercent formata com 2 casas decimais (20 -> "20.00")
func FormatPercent(m domain.Measure) string {
	v, ok := m.Get()
	if !ok {
		return MissingValue
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
