package service

import (
	"context"
	"fmt"

	"github.com/AdamBeresnev/class-match/internal/ranking"
	"github.com/AdamBeresnev/class-match/internal/sport"
	"github.com/AdamBeresnev/class-match/internal/store"
	"github.com/AdamBeresnev/class-match/internal/team"
	"golang.org/x/sync/errgroup"
)

type RankingService struct {
	teams       *store.TeamStore
	leagues     *store.LeagueStore
	tournaments *store.TournamentStore
}

func NewRankingService(teams *store.TeamStore, leagues *store.LeagueStore, tournaments *store.TournamentStore) *RankingService {
	return &RankingService{teams: teams, leagues: leagues, tournaments: tournaments}
}

// TotalRankings loads every sport's leagues and bracket and returns one page of the
// cross-sport leaderboard.
func (s *RankingService) TotalRankings(ctx context.Context, offset, limit int) ([]ranking.TotalRanking, error) {
	sports := sport.Competitive()
	leagueData := make([][]ranking.LeagueData, len(sports))
	bracketData := make([]ranking.BracketData, len(sports))
	var teams []team.Team

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		teams, err = s.teams.ListTeams(gctx)
		if err != nil {
			return fmt.Errorf("failed to get classes: %w", err)
		}
		return nil
	})

	for i, sp := range sports {
		i, sp := i, sp
		g.Go(func() error {
			byLeague, err := s.leagues.ListMatchesBySport(gctx, sp)
			if err != nil {
				return fmt.Errorf("failed to get %s league matches: %w", sp, err)
			}
			for _, l := range sport.Leagues {
				leagueData[i] = append(leagueData[i], ranking.LeagueData{Sport: sp, League: l, Matches: byLeague[l]})
			}
			return nil
		})

		g.Go(func() error {
			matches, err := s.tournaments.GetMatches(gctx, sp)
			if err != nil {
				return fmt.Errorf("failed to get %s bracket: %w", sp, err)
			}
			bracketData[i] = ranking.BracketData{Sport: sp, Matches: matches}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var leagues []ranking.LeagueData
	for _, ld := range leagueData {
		leagues = append(leagues, ld...)
	}

	rows := ranking.TotalRankings(teams, leagues, bracketData)
	return ranking.Paginate(rows, offset, limit), nil
}
