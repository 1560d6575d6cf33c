package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/vfg2006/revenue-dashboard/internal/usecases/theming"
	"github.com/vfg2006/revenue-dashboard/pkg/log"
)

// ToggleTheme alterna entre claro e escuro e volta para a página de origem
// @Summary Alterna o tema
// @Tags theme
// @Success 303
// @Router /theme/toggle [post]
func ToggleTheme(store theming.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mode := store.Toggle(w, r)

		log.ForContext(r.Context()).WithField("theme", mode).Debug("theme: tema alternado")

		http.Redirect(w, r, backTo(r), http.StatusSeeOther)
	})
}

// GetTheme retorna o tema atual e suas cores
// @Summary Tema atual
// @Tags theme
// @Produce json
// @Success 200 {object} theming.Palette
// @Router /v1/theme [get]
func GetTheme(store theming.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		palette := theming.PaletteFor(store.Current(r))

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(palette); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("theme: erro ao codificar resposta")
		}
	})
}

// backTo usa apenas o caminho do Referer, nunca outro host
func backTo(r *http.Request) string {
	referer, err := url.Parse(r.Referer())
	if err != nil || !strings.HasPrefix(referer.Path, "/") || strings.HasPrefix(referer.Path, "//") {
		return "/"
	}

	if referer.Host != "" && referer.Host != r.Host {
		return "/"
	}

	back := url.URL{Path: referer.Path, RawQuery: referer.RawQuery}
	return back.String()
}
