package router

import (
	"io/fs"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler // aplicados na ordem declarada
}

// Router envolve o httprouter e guarda a lista de rotas registradas
type Router struct {
	router     *httprouter.Router
	registered []string
}

type ConfigRouter func(router *Router)

func WithRoutes(routes ...Route) ConfigRouter {
	return func(router *Router) {
		router.AddRoutes(routes...)
	}
}

// WithStatic serve os arquivos de fsys no caminho informado, que deve terminar em /*filepath
func WithStatic(path string, fsys fs.FS) ConfigRouter {
	return func(router *Router) {
		router.router.ServeFiles(path, http.FS(fsys))
		router.registered = append(router.registered, http.MethodGet+" "+path)
	}
}

// WithNotFound define o handler usado quando nenhuma rota corresponde
func WithNotFound(handler http.Handler) ConfigRouter {
	return func(router *Router) {
		router.router.NotFound = handler
	}
}

// WithMethodNotAllowed define o handler usado quando o caminho existe com outro método
func WithMethodNotAllowed(handler http.Handler) ConfigRouter {
	return func(router *Router) {
		router.router.HandleMethodNotAllowed = true
		router.router.MethodNotAllowed = handler
	}
}

func New(configs ...ConfigRouter) *Router {
	router := &Router{
		router: httprouter.New(),
	}

	for _, config := range configs {
		config(router)
	}

	return router
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes registra as rotas com seus middlewares específicos
func (r *Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		handler := route.Handler
		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
		r.registered = append(r.registered, route.Method+" "+route.Path)
	}
}

// Routes retorna "MÉTODO caminho" de cada rota, na ordem de registro
func (r *Router) Routes() []string {
	out := make([]string, len(r.registered))
	copy(out, r.registered)
	return out
}
