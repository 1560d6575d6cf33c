package middleware

import (
	"context"
	"net/http"

	"github.com/vfg2006/revenue-dashboard/pkg/log"
	"github.com/vfg2006/revenue-dashboard/pkg/utils"
)

type contextKey string

const (
	// ContextKeyViewer guarda o identificador anônimo do visitante
	ContextKeyViewer contextKey = "viewer"

	// ViewerCookieName é o cookie que identifica o visitante entre requisições
	ViewerCookieName = "viewer_id"
)

// ViewerMiddleware garante que toda requisição tenha um visitante. Na primeira visita
// um novo id é gerado e gravado no cookie.
func ViewerMiddleware(maxAge int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			viewerID := viewerIDFromCookie(r)

			if viewerID == "" {
				id, err := utils.GenerateViewerID()
				if err != nil {
					log.ForContext(r.Context()).WithError(err).Error("Erro ao gerar id do visitante")
					next.ServeHTTP(w, r)
					return
				}

				viewerID = id
				http.SetCookie(w, &http.Cookie{
					Name:     ViewerCookieName,
					Value:    viewerID,
					Path:     "/",
					MaxAge:   maxAge,
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), ContextKeyViewer, viewerID)
			ctx = log.WithViewerID(ctx, viewerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ViewerID retorna o visitante da requisição, ou vazio quando não houver
func ViewerID(ctx context.Context) string {
	viewerID, _ := ctx.Value(ContextKeyViewer).(string)
	return viewerID
}

func viewerIDFromCookie(r *http.Request) string {
	cookie, err := r.Cookie(ViewerCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
