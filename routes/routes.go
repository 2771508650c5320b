package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Dosada05/league-stats/docs"
	"github.com/Dosada05/league-stats/handlers"
	"github.com/Dosada05/league-stats/middleware"
)

type Options struct {
	CORSOrigins []string
	JWTSecret   string
}

func SetupRoutes(
	router chi.Router,
	opts Options,
	statsHandler *handlers.StatsHandler,
	adminHandler *handlers.AdminHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	router.Route("/stats", func(r chi.Router) {
		r.Get("/ratings", statsHandler.RatingsHandler)
		r.Get("/ratings/all", statsHandler.AllRatingsHandler)
		r.Get("/players", statsHandler.PlayersHandler)
		r.Get("/streaks", statsHandler.StreaksHandler)
		r.Get("/h2h", statsHandler.HeadToHeadHandler)
		r.Get("/cup", statsHandler.CupHandler)
	})

	router.Route("/tournaments/{tournamentID}", func(r chi.Router) {
		r.Get("/standings", statsHandler.StandingsHandler)
		r.Get("/schedule", statsHandler.ScheduleHandler)
		r.Get("/odds", statsHandler.OddsHandler)
	})

	router.Get("/players/{playerID}/form", statsHandler.FormHandler)

	router.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireAdmin(opts.JWTSecret))
		r.Post("/snapshots", adminHandler.PublishSnapshotHandler)
	})
}
