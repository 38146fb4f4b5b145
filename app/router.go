package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	coursehandlers "github.com/strideclub/scorecard/app/modules/course/infrastructure/handlers"
	scorecardhandlers "github.com/strideclub/scorecard/app/modules/scorecard/infrastructure/handlers"
)

// newRouter mounts the module handlers.
func (a *App) newRouter(scorecard *scorecardhandlers.Handlers, courses *coursehandlers.Handlers) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(a.Registry, promhttp.HandlerOpts{}))

	r.Get("/courses", courses.Search)

	r.Route("/rounds", func(r chi.Router) {
		r.Post("/", scorecard.SubmitRound)
		r.Post("/stats", scorecard.ComputeStats)
		r.Post("/resolve", scorecard.ResolveCourse)
		r.Get("/holes", scorecard.GenerateHoles)
		r.Post("/import", scorecard.ImportScorecard)
		r.Post("/export", scorecard.ExportScorecard)
		r.Post("/preview.png", scorecard.PreviewChart)
	})

	r.Post("/summary", scorecard.Summary)

	return r
}
