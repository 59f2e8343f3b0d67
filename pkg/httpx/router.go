package httpx

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/trace"

	"grubdash/pkg/logger"
)

// Routes is implemented by every resource handler.
type Routes interface {
	Register(r *mux.Router)
}

// NewRouter builds the application router with middleware and the JSON
// 404/405 handlers.
func NewRouter(log *logger.Logger, tracer trace.Tracer, resources ...Routes) *mux.Router {
	r := mux.NewRouter()
	chain := []mux.MiddlewareFunc{Recover(log), Trace(tracer), Logging(log)}
	r.Use(chain...)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		WriteData(w, http.StatusOK, "ok")
	}).Methods(http.MethodGet)

	for _, res := range resources {
		res.Register(r)
	}

	r.NotFoundHandler = wrap(http.HandlerFunc(notFound), chain)
	r.MethodNotAllowedHandler = wrap(http.HandlerFunc(methodNotAllowed), chain)
	return r
}

func notFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, http.StatusNotFound, fmt.Sprintf("Path not found: %s", r.URL.Path))
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteError(w, http.StatusMethodNotAllowed, fmt.Sprintf("%s not allowed for %s", r.Method, r.URL.Path))
}

// wrap applies middleware to handlers mux invokes outside its own chain.
func wrap(h http.Handler, chain []mux.MiddlewareFunc) http.Handler {
	for i := len(chain) - 1; i >= 0; i-- {
		h = chain[i](h)
	}
	return h
}
