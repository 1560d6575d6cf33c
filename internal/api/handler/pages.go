package handler

import (
	"html/template"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/revenue-dashboard/internal/domain"
	"github.com/vfg2006/revenue-dashboard/internal/usecases/revenue"
	"github.com/vfg2006/revenue-dashboard/internal/usecases/theming"
	"github.com/vfg2006/revenue-dashboard/pkg/log"
	"github.com/vfg2006/revenue-dashboard/pkg/middleware"
	"github.com/vfg2006/revenue-dashboard/web"
)

const noStockTitle = "请选择股票"

var periodLabels = map[int]string{
	12: "近 1 年",
	36: "近 3 年",
	60: "近 5 年",
	0:  "全部",
}

// Pages renderiza as páginas HTML a partir dos templates embutidos
type Pages struct {
	templates *template.Template
	theme     theming.Store
	reporter  revenue.Reporter
}

type pageData struct {
	Title     string
	Active    string
	Theme     theming.Mode
	Palette   theming.Palette
	Financial *financialView
}

type periodOption struct {
	Value    int
	Label    string
	Selected bool
}

type tableHeaders struct {
	Period  string
	Revenue string
	Growth  string
}

type chartPayload struct {
	domain.ChartSeries
	RevenueLabel string `json:"revenue_label"`
	YoYLabel     string `json:"yoy_label"`
}

type financialView struct {
	Query          domain.RevenueQuery
	Options        domain.ReportOptions
	Heading        string
	Error          string
	Periods        []periodOption
	Headers        tableHeaders
	Rows           []domain.TableRow
	ChartJSON      string
	RevenueOnlyURL string
	AllURL         string
	MonthlyURL     string
	YearlyURL      string
	ExportURL      string
}

// NewPages carrega os templates de web.TemplatesFS
func NewPages(theme theming.Store, reporter revenue.Reporter) (*Pages, error) {
	templates, err := template.ParseFS(web.TemplatesFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar templates")
	}

	return &Pages{
		templates: templates,
		theme:     theme,
		reporter:  reporter,
	}, nil
}

func (p *Pages) Home() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.render(w, r, "home.html", p.page(r, "Home", "home"))
	})
}

func (p *Pages) About() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.render(w, r, "about.html", p.page(r, "About", "about"))
	})
}

// FinancialData renderiza o gráfico e a tabela de receita. Erros de busca ou de
// parâmetros aparecem como texto na própria página.
func (p *Pages) FinancialData() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		data := p.page(r, "Financial Data", "financial-data")
		view := &financialView{Heading: noStockTitle}
		data.Financial = view

		query, opts, err := parseReportRequest(r.URL.Query(), p.reporter, "")
		view.Query, view.Options = query, opts

		var report *domain.RevenueReport
		if err == nil {
			report, err = p.reporter.GetReport(r.Context(), middleware.ViewerID(r.Context()), query, opts)
		}

		switch {
		case err != nil:
			logger.WithError(err).Warn("financial-data: relatório não montado")
			view.Error = err.Error()
		case report.Status != domain.FetchSuccess:
			view.Error = report.Error
		}

		if report != nil {
			view.Query, view.Options = report.Query, report.Options
			view.Heading = stockHeading(report)
		} else if query.StockID != "" {
			view.Heading = query.StockID
		}

		p.fillFinancialView(view, report)
		data.Title = view.Heading

		p.render(w, r, "financial_data.html", data)
	})
}

// NotFound responde rotas inexistentes
func NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "404 page not found", http.StatusNotFound)
	})
}

func (p *Pages) page(r *http.Request, title, active string) pageData {
	mode := p.theme.Current(r)
	return pageData{
		Title:   title,
		Active:  active,
		Theme:   mode,
		Palette: theming.PaletteFor(mode),
	}
}

func (p *Pages) fillFinancialView(view *financialView, report *domain.RevenueReport) {
	query, opts := view.Query, view.Options
	if opts.View == "" {
		opts.View = domain.ReportViewMonthly
		view.Options.View = opts.View
	}

	for _, period := range revenue.PeriodOptions {
		view.Periods = append(view.Periods, periodOption{
			Value:    period,
			Label:    periodLabels[period],
			Selected: period == opts.Period,
		})
	}

	withYoY, withoutYoY := opts, opts
	withYoY.ShowYoY, withoutYoY.ShowYoY = true, false
	monthly, yearly := opts, opts
	monthly.View, yearly.View = domain.ReportViewMonthly, domain.ReportViewYearly

	view.AllURL = financialURL(query, withYoY)
	view.RevenueOnlyURL = financialURL(query, withoutYoY)
	view.MonthlyURL = financialURL(query, monthly)
	view.YearlyURL = financialURL(query, yearly)
	view.ExportURL = "/v1/stocks/" + query.StockID + "/revenue/export?" + reportParams(query, opts, false).Encode()

	headers := revenue.MonthlyHeaders
	revenueLabel := revenue.MonthlyHeaders[1]
	if opts.View == domain.ReportViewYearly {
		headers = revenue.YearlyHeaders
		revenueLabel = revenue.YearlyHeaders[1]
	}
	view.Headers = tableHeaders{Period: headers[0], Revenue: headers[1], Growth: headers[2]}

	if report == nil || report.Status != domain.FetchSuccess {
		return
	}

	view.Rows = report.MonthlyTable
	if opts.View == domain.ReportViewYearly {
		view.Rows = report.YearlyTable
	}

	payload, err := json.MarshalToString(chartPayload{
		ChartSeries:  report.Chart,
		RevenueLabel: revenueLabel,
		YoYLabel:     headers[2],
	})
	if err == nil {
		view.ChartJSON = payload
	}
}

func (p *Pages) render(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := p.templates.ExecuteTemplate(w, name, data); err != nil {
		log.ForContext(r.Context()).WithError(err).WithField("template", name).Error("pages: erro ao renderizar template")
		http.Error(w, "Erro ao renderizar página", http.StatusInternalServerError)
	}
}

// stockHeading segue o formato "nome (código)"; sem nome no diretório fica só o código
func stockHeading(report *domain.RevenueReport) string {
	if report.StockName == "" || report.StockName == report.StockID {
		return report.StockID
	}
	return report.StockName + " (" + report.StockID + ")"
}

func financialURL(query domain.RevenueQuery, opts domain.ReportOptions) string {
	return "/financial-data?" + reportParams(query, opts, true).Encode()
}
