package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/AdamBeresnev/class-match/internal/apperr"
	"github.com/AdamBeresnev/class-match/internal/config"
	"github.com/AdamBeresnev/class-match/internal/db"
	"github.com/AdamBeresnev/class-match/internal/service"
	"github.com/AdamBeresnev/class-match/internal/sport"
	"github.com/AdamBeresnev/class-match/internal/store"
	"github.com/AdamBeresnev/class-match/internal/team"
)

const (
	grades = 3
	groups = 6
)

// leagueForGroup splits each grade's groups across the four leagues.
var leagueForGroup = map[int]sport.League{
	1: sport.LeagueA,
	2: sport.LeagueA,
	3: sport.LeagueB,
	4: sport.LeagueB,
	5: sport.LeagueC,
	6: sport.LeagueD,
}

type seeder struct {
	teams   *service.TeamService
	leagues *service.LeagueService
}

// ensureTeams creates every class that is missing and returns the full set keyed by name.
func (s *seeder) ensureTeams(ctx context.Context) (map[string]team.Team, error) {
	for grade := 1; grade <= grades; grade++ {
		for group := 1; group <= groups; group++ {
			name := fmt.Sprintf("%d-%d", grade, group)
			_, err := s.teams.CreateTeam(ctx, name)
			if err != nil && !errors.Is(err, apperr.ErrAlreadyExists) {
				return nil, fmt.Errorf("create class %s: %w", name, err)
			}
		}
	}

	all, err := s.teams.ListTeams(ctx, 0, 0)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]team.Team, len(all))
	for _, t := range all {
		byName[t.Name] = t
	}
	return byName, nil
}

func (s *seeder) run(ctx context.Context) (int, error) {
	byName, err := s.ensureTeams(ctx)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, sp := range sport.Competitive() {
		for grade := 1; grade <= grades; grade++ {
			for group := 1; group <= groups; group++ {
				t, ok := byName[fmt.Sprintf("%d-%d", grade, group)]
				if !ok {
					continue
				}
				_, err := s.teams.AddMember(ctx, sp, leagueForGroup[group], t.ID)
				if err != nil && !errors.Is(err, apperr.ErrAlreadyExists) {
					return created, fmt.Errorf("assign %s to %s: %w", t.Name, sp, err)
				}
			}
		}

		for _, l := range sport.Leagues {
			matches, err := s.leagues.GrowSchedule(ctx, sp, l)
			if err != nil {
				return created, fmt.Errorf("schedule %s league %s: %w", sp, l, err)
			}
			created += len(matches)
		}
	}
	return created, nil
}

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	level, _ := cfg.Log.SlogLevel()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	database, err := db.Connect(db.DSN(cfg.Database.Path))
	if err != nil {
		slog.Error("Failed to connect to DB", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := db.RunMigrations(database.DB); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	teamStore := store.NewTeamStore(database)
	s := &seeder{
		teams:   service.NewTeamService(teamStore),
		leagues: service.NewLeagueService(database, store.NewLeagueStore(database), teamStore),
	}

	created, err := s.run(context.Background())
	if err != nil {
		slog.Error("Seeding failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Seeding complete", "path", cfg.Database.Path, "matches_created", created)
}
