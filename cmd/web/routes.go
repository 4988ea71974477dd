package main

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/AdamBeresnev/class-match/internal/bracket"
	"github.com/AdamBeresnev/class-match/internal/httputil"
	"github.com/AdamBeresnev/class-match/internal/league"
	"github.com/AdamBeresnev/class-match/internal/middleware"
	"github.com/AdamBeresnev/class-match/internal/service"
	"github.com/AdamBeresnev/class-match/internal/sport"
	"github.com/AdamBeresnev/class-match/internal/utils"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
)

type application struct {
	teams       *service.TeamService
	leagues     *service.LeagueService
	tournaments *service.TournamentService
	rankings    *service.RankingService
}

type nameInput struct {
	Name string `json:"name"`
}

type memberInput struct {
	TeamID int64 `json:"class_id"`
}

func pathParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if unescaped, err := url.PathUnescape(v); err == nil {
		return unescaped
	}
	return v
}

func sportParam(w http.ResponseWriter, r *http.Request) (sport.Sport, bool) {
	sp, err := sport.Parse(pathParam(r, "sport"))
	if err != nil {
		httputil.BadRequest(w, err.Error(), nil)
		return "", false
	}
	return sp, true
}

func leagueParams(w http.ResponseWriter, r *http.Request) (sport.Sport, sport.League, bool) {
	sp, ok := sportParam(w, r)
	if !ok {
		return "", "", false
	}
	l, err := sport.ParseLeague(pathParam(r, "league"))
	if err != nil {
		httputil.BadRequest(w, err.Error(), nil)
		return "", "", false
	}
	return sp, l, true
}

func idParam(w http.ResponseWriter, r *http.Request, key string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, key), 10, 64)
	if err != nil {
		httputil.BadRequest(w, "Invalid class ID", err)
		return 0, false
	}
	return id, true
}

func matchIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "matchID"))
	if err != nil {
		httputil.BadRequest(w, "Invalid match ID", err)
		return uuid.Nil, false
	}
	return id, true
}

func respond(w http.ResponseWriter, status int, data any) {
	if err := httputil.WriteJSON(w, status, data); err != nil {
		httputil.InternalServerError(w, "Failed to write response", err)
	}
}

func newRouter(app *application, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(slog.Default()))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/classes", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			offset, limit, err := httputil.Page(r)
			if err != nil {
				httputil.BadRequest(w, err.Error(), nil)
				return
			}
			teams, err := app.teams.ListTeams(r.Context(), offset, limit)
			if err != nil {
				httputil.Error(w, "Failed to list classes", err)
				return
			}
			respond(w, http.StatusOK, teams)
		})

		r.Post("/", func(w http.ResponseWriter, r *http.Request) {
			var in nameInput
			if err := httputil.ReadJSON(w, r, &in); err != nil {
				httputil.BadRequest(w, err.Error(), nil)
				return
			}
			created, err := app.teams.CreateTeam(r.Context(), in.Name)
			if err != nil {
				httputil.Error(w, "Failed to create class", err)
				return
			}
			respond(w, http.StatusCreated, created)
		})

		r.Get("/{id}", func(w http.ResponseWriter, r *http.Request) {
			id, ok := idParam(w, r, "id")
			if !ok {
				return
			}
			t, err := app.teams.GetTeam(r.Context(), id)
			if err != nil {
				httputil.Error(w, "Failed to get class", err)
				return
			}
			respond(w, http.StatusOK, t)
		})

		r.Put("/{id}", func(w http.ResponseWriter, r *http.Request) {
			id, ok := idParam(w, r, "id")
			if !ok {
				return
			}
			var in nameInput
			if err := httputil.ReadJSON(w, r, &in); err != nil {
				httputil.BadRequest(w, err.Error(), nil)
				return
			}
			renamed, err := app.teams.RenameTeam(r.Context(), id, in.Name)
			if err != nil {
				httputil.Error(w, "Failed to rename class", err)
				return
			}
			respond(w, http.StatusOK, renamed)
		})
	})

	r.Route("/leagues", func(r chi.Router) {
		r.Get("/matches/{matchID}", func(w http.ResponseWriter, r *http.Request) {
			id, ok := matchIDParam(w, r)
			if !ok {
				return
			}
			m, err := app.leagues.GetMatch(r.Context(), id)
			if err != nil {
				httputil.Error(w, "Failed to get league match", err)
				return
			}
			respond(w, http.StatusOK, m)
		})

		r.Put("/matches/{matchID}", func(w http.ResponseWriter, r *http.Request) {
			id, ok := matchIDParam(w, r)
			if !ok {
				return
			}
			var res league.Result
			if err := httputil.ReadJSON(w, r, &res); err != nil {
				httputil.BadRequest(w, err.Error(), nil)
				return
			}
			updated, err := app.leagues.RecordResult(r.Context(), id, res)
			if err != nil {
				httputil.Error(w, "Failed to record league result", err)
				return
			}
			respond(w, http.StatusOK, updated)
		})

		r.Route("/{sport}/{league}", func(r chi.Router) {
			r.Get("/teams", func(w http.ResponseWriter, r *http.Request) {
				sp, l, ok := leagueParams(w, r)
				if !ok {
					return
				}
				members, err := app.teams.ListMembers(r.Context(), sp, l)
				if err != nil {
					httputil.Error(w, "Failed to list league classes", err)
					return
				}
				respond(w, http.StatusOK, members)
			})

			r.Post("/teams", func(w http.ResponseWriter, r *http.Request) {
				sp, l, ok := leagueParams(w, r)
				if !ok {
					return
				}
				var in memberInput
				if err := httputil.ReadJSON(w, r, &in); err != nil {
					httputil.BadRequest(w, err.Error(), nil)
					return
				}
				m, err := app.teams.AddMember(r.Context(), sp, l, in.TeamID)
				if err != nil {
					httputil.Error(w, "Failed to add class to league", err)
					return
				}
				respond(w, http.StatusCreated, m)
			})

			r.Delete("/teams/{classID}", func(w http.ResponseWriter, r *http.Request) {
				sp, l, ok := leagueParams(w, r)
				if !ok {
					return
				}
				id, ok := idParam(w, r, "classID")
				if !ok {
					return
				}
				if err := app.teams.RemoveMember(r.Context(), sp, l, id); err != nil {
					httputil.Error(w, "Failed to remove class from league", err)
					return
				}
				w.WriteHeader(http.StatusNoContent)
			})

			r.Get("/matches", func(w http.ResponseWriter, r *http.Request) {
				sp, l, ok := leagueParams(w, r)
				if !ok {
					return
				}
				matches, err := app.leagues.ListMatches(r.Context(), sp, l)
				if err != nil {
					httputil.Error(w, "Failed to list league matches", err)
					return
				}
				respond(w, http.StatusOK, matches)
			})

			r.Delete("/matches", func(w http.ResponseWriter, r *http.Request) {
				sp, l, ok := leagueParams(w, r)
				if !ok {
					return
				}
				deleted, err := app.leagues.ClearLeague(r.Context(), sp, l)
				if err != nil {
					httputil.Error(w, "Failed to clear league", err)
					return
				}
				respond(w, http.StatusOK, map[string]int64{"deleted": deleted})
			})

			r.Post("/schedule", func(w http.ResponseWriter, r *http.Request) {
				sp, l, ok := leagueParams(w, r)
				if !ok {
					return
				}
				created, err := app.leagues.GrowSchedule(r.Context(), sp, l)
				if err != nil {
					httputil.Error(w, "Failed to generate league schedule", err)
					return
				}
				respond(w, http.StatusCreated, created)
			})

			r.Get("/standings", func(w http.ResponseWriter, r *http.Request) {
				sp, l, ok := leagueParams(w, r)
				if !ok {
					return
				}
				table, err := app.leagues.Standings(r.Context(), sp, l)
				if err != nil {
					httputil.Error(w, "Failed to compute standings", err)
					return
				}
				respond(w, http.StatusOK, table)
			})
		})
	})

	r.Route("/league_matches", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			offset, limit, err := httputil.Page(r)
			if err != nil {
				httputil.BadRequest(w, err.Error(), nil)
				return
			}
			matches, err := app.leagues.PageMatches(r.Context(), offset, limit)
			if err != nil {
				httputil.Error(w, "Failed to list league matches", err)
				return
			}
			respond(w, http.StatusOK, matches)
		})

		r.Post("/", func(w http.ResponseWriter, r *http.Request) {
			var in service.MatchInput
			if err := httputil.ReadJSON(w, r, &in); err != nil {
				httputil.BadRequest(w, err.Error(), nil)
				return
			}
			created, err := app.leagues.CreateMatch(r.Context(), in)
			if err != nil {
				httputil.Error(w, "Failed to create league match", err)
				return
			}
			respond(w, http.StatusCreated, created)
		})
	})

	r.Route("/tournaments/{sport}", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			sp, ok := sportParam(w, r)
			if !ok {
				return
			}
			matches, err := app.tournaments.GetBracket(r.Context(), sp)
			if err != nil {
				httputil.Error(w, "Failed to get bracket", err)
				return
			}
			respond(w, http.StatusOK, matches)
		})

		r.Get("/slots/{slot}", func(w http.ResponseWriter, r *http.Request) {
			sp, ok := sportParam(w, r)
			if !ok {
				return
			}
			slot, err := bracket.ParseSlot(pathParam(r, "slot"))
			if err != nil {
				httputil.BadRequest(w, err.Error(), nil)
				return
			}
			m, err := app.tournaments.GetMatch(r.Context(), sp, slot)
			if err != nil {
				httputil.Error(w, "Failed to get bracket match", err)
				return
			}
			respond(w, http.StatusOK, m)
		})

		r.Post("/generate", func(w http.ResponseWriter, r *http.Request) {
			sp, ok := sportParam(w, r)
			if !ok {
				return
			}
			matches, err := app.tournaments.Generate(r.Context(), sp)
			if err != nil {
				httputil.Error(w, "Failed to generate bracket", err)
				return
			}
			middleware.LoggerFromContext(r.Context()).Info("Bracket generated", "sport", sp, "matches", len(matches))
			respond(w, http.StatusCreated, matches)
		})

		r.Put("/matches/{matchID}", func(w http.ResponseWriter, r *http.Request) {
			sp, ok := sportParam(w, r)
			if !ok {
				return
			}
			id, ok := matchIDParam(w, r)
			if !ok {
				return
			}
			var res bracket.Result
			if err := httputil.ReadJSON(w, r, &res); err != nil {
				httputil.BadRequest(w, err.Error(), nil)
				return
			}
			adv, err := app.tournaments.RecordResult(r.Context(), sp, id, res)
			if err != nil {
				httputil.Error(w, "Failed to record bracket result", err)
				return
			}
			middleware.LoggerFromContext(r.Context()).Info("Bracket result recorded",
				"sport", sp,
				"slot", adv.Match.Slot,
				"winner", utils.OrZero(adv.Match.WinnerID),
				"updated_matches", len(adv.Downstream),
			)
			respond(w, http.StatusOK, adv)
		})
	})

	r.Get("/rankings/total", func(w http.ResponseWriter, r *http.Request) {
		offset, limit, err := httputil.Page(r)
		if err != nil {
			httputil.BadRequest(w, err.Error(), nil)
			return
		}
		rows, err := app.rankings.TotalRankings(r.Context(), offset, limit)
		if err != nil {
			httputil.Error(w, "Failed to compute rankings", err)
			return
		}
		respond(w, http.StatusOK, rows)
	})

	return r
}
