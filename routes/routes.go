package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/handlers"
	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/middleware"
	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/models"
)

type Handlers struct {
	Auth       *handlers.AuthHandler
	Teams      *handlers.TeamHandler
	GroupStage *handlers.GroupStageHandler
	Swiss      *handlers.SwissHandler
	Brackets   *handlers.BracketHandler
	Stages     *handlers.StageHandler
	WebSocket  *handlers.WebSocketHandler
}

// SetupRoutes wires the public read surface, the websocket endpoint and
// the admin-only write surface.
func SetupRoutes(h Handlers, jwtSecret string) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/ws", h.WebSocket.Serve)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.Auth.Register)
		r.Post("/auth/login", h.Auth.Login)

		// Публичные read-only маршруты турнира.
		r.Get("/teams", h.Teams.List)
		r.Get("/teams/{teamID}", h.Teams.GetByID)

		r.Get("/groups", h.GroupStage.ListGroups)
		r.Get("/groups/matches", h.GroupStage.ListMatches)
		r.Get("/groups/standings", h.GroupStage.ListStandings)

		r.Get("/swiss/standings", h.Swiss.Standings)
		r.Get("/swiss/matches", h.Swiss.ListMatches)

		r.Get("/brackets/{stage}", h.Brackets.State)
		r.Get("/brackets/{stage}/rounds/{round}/winners", h.Brackets.RoundWinners)

		r.Get("/stages/{stage}/qualified", h.Stages.QualifiedTeams)
		r.Get("/tournament/overview", h.Stages.Overview)

		// Админская поверхность записи.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(jwtSecret))
			r.Use(middleware.Authorize(string(models.RoleAdmin)))

			r.Post("/teams", h.Teams.Create)
			r.Put("/teams/{teamID}", h.Teams.Rename)
			r.Delete("/teams/{teamID}", h.Teams.Delete)
			r.Post("/teams/{teamID}/logo", h.Teams.UploadLogo)

			r.Post("/groups", h.GroupStage.CreateGroup)
			r.Delete("/groups/{groupName}", h.GroupStage.DeleteGroup)
			r.Post("/groups/{groupName}/teams", h.GroupStage.AddTeamToGroup)
			r.Delete("/groups/{groupName}/teams/{teamName}", h.GroupStage.RemoveTeamFromGroup)
			r.Put("/groups/{groupName}/advance-count", h.GroupStage.UpdateAdvanceCount)
			r.Post("/groups/{groupName}/recompute", h.GroupStage.RecomputeGroup)

			r.Post("/groups/matches", h.GroupStage.CreateMatch)
			r.Put("/groups/matches/{matchID}", h.GroupStage.UpdateMatch)
			r.Delete("/groups/matches/{matchID}", h.GroupStage.DeleteMatch)

			r.Post("/swiss/matches", h.Swiss.CreateMatch)
			r.Put("/swiss/matches/{matchID}", h.Swiss.UpdateMatch)
			r.Delete("/swiss/matches/{matchID}", h.Swiss.DeleteMatch)
			r.Get("/swiss/next-round", h.Swiss.SuggestNextRound)
			r.Put("/swiss/seed-teams", h.Swiss.ReplaceSeedTeams)

			r.Post("/brackets/{stage}/matches", h.Brackets.CreateMatch)
			r.Put("/brackets/matches/{matchID}", h.Brackets.RecordResult)
			r.Delete("/brackets/matches/{matchID}", h.Brackets.DeleteMatch)

			r.Get("/stages/{stage}/config", h.Stages.GetConfig)
			r.Put("/stages/{stage}/config", h.Stages.UpdateConfig)
		})
	})

	return r
}
