// Package server is the web shell of the demo: it serves the embedded
// single-page UI and the JSON API the page calls. Each API handler performs
// one synchronous chain of remote calls and returns the normalized result.
package server

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	httpLogger "github.com/chi-middleware/logrus-logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/memorise/nlpdemo/internal/config"
	"github.com/memorise/nlpdemo/internal/logger"
	"github.com/memorise/nlpdemo/internal/nlp"
)

//go:embed static
var staticFS embed.FS

const ReadHeaderTimeout = 5 * time.Second

var log = logger.Get()

// LanguageResolver produces the (source, target) code pair for a translation.
type LanguageResolver interface {
	Resolve(ctx context.Context, text, targetName string) (srcLang, tgtLang string, err error)
}

// State carries the service clients shared by all handlers. Everything in it
// is read-only after startup, so concurrent browser sessions can share it.
type State struct {
	Semtag   *nlp.SemtagClient
	NER      *nlp.NERClient
	MT       *nlp.TranslateClient
	Resolver LanguageResolver
}

// Create builds the HTTP server for the demo UI and API.
func Create(cfg *config.Config, state *State) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           setupRouter(state),
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
}

func setupRouter(state *State) *chi.Mux {
	router := chi.NewRouter()
	router.Use(httpLogger.Logger("router", log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Heartbeat("/healthz"))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	router.Route("/api", func(r chi.Router) {
		r.Get("/languages", LanguagesHandler())
		r.Post("/classify", ClassifyHandler(state))
		r.Post("/ner", ExtractEntitiesHandler(state))
		r.Post("/translate", TranslateHandler(state))
		r.Post("/upload", UploadHandler())
	})

	pages, err := fs.Sub(staticFS, "static")
	if err != nil {
		// static is embedded at build time; this cannot fail at runtime.
		panic(err)
	}
	router.Handle("/*", http.FileServer(http.FS(pages)))

	return router
}
