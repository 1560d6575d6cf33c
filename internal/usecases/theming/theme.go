// Package theming guarda o tema claro/escuro do visitante em um cookie
package theming

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-dashboard/internal/config"
)

// CookieName é o cookie que persiste o tema entre as visitas
const CookieName = "theme"

// Mode é o tema da página
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// ParseMode converte o valor do cookie. Valores desconhecidos viram Light.
func ParseMode(value string) Mode {
	if Mode(value) == Dark {
		return Dark
	}
	return Light
}

// Next retorna o tema oposto
func (m Mode) Next() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// Palette são as cores usadas pelo layout e pelo gráfico
type Palette struct {
	Mode       Mode   `json:"mode"`
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Background string `json:"background"`
	Paper      string `json:"paper"`
	Text       string `json:"text"`
	Revenue    string `json:"revenue"` // Barras de receita mensal
	Growth     string `json:"growth"`  // Linha de crescimento anual
}

var palettes = map[Mode]Palette{
	Light: {
		Mode:       Light,
		Primary:    "#1976d2",
		Secondary:  "#9c27b0",
		Background: "#f0f2f5",
		Paper:      "#ffffff",
		Text:       "#1f1f1f",
		Revenue:    "#ffc658",
		Growth:     "#c44d58",
	},
	Dark: {
		Mode:       Dark,
		Primary:    "#1976d2",
		Secondary:  "#9c27b0",
		Background: "#121212",
		Paper:      "#1e1e1e",
		Text:       "#e0e0e0",
		Revenue:    "#ffc658",
		Growth:     "#c44d58",
	},
}

// PaletteFor retorna as cores do tema
func PaletteFor(mode Mode) Palette {
	return palettes[ParseMode(string(mode))]
}

// Store lê e alterna o tema do visitante
type Store interface {
	Current(r *http.Request) Mode
	Toggle(w http.ResponseWriter, r *http.Request) Mode
}

type CookieStore struct {
	maxAge int
	secure bool
}

// NewCookieStore cria o store de tema baseado em cookie
func NewCookieStore(cfg *config.Config) Store {
	return &CookieStore{
		maxAge: cfg.Theme.CookieMaxAge,
		secure: cfg.Theme.CookieSecure,
	}
}

// Current lê o tema do cookie; ausente ou inválido é Light
func (s *CookieStore) Current(r *http.Request) Mode {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return Light
	}
	return ParseMode(cookie.Value)
}

// Toggle inverte o tema atual e grava o novo valor no cookie
func (s *CookieStore) Toggle(w http.ResponseWriter, r *http.Request) Mode {
	next := s.Current(r).Next()

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    string(next),
		Path:     "/",
		MaxAge:   s.maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})

	logrus.WithField("theme", next).Debug("Tema alterado")

	return next
}
