package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/AdamBeresnev/class-match/internal/apperr"
	"github.com/AdamBeresnev/class-match/internal/sport"
	"github.com/AdamBeresnev/class-match/internal/store"
	"github.com/AdamBeresnev/class-match/internal/team"
)

type TeamService struct {
	store *store.TeamStore
}

func NewTeamService(store *store.TeamStore) *TeamService {
	return &TeamService{store: store}
}

func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: class name is required", apperr.ErrInvalidArgument)
	}
	return name, nil
}

func (s *TeamService) CreateTeam(ctx context.Context, name string) (*team.Team, error) {
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	return s.store.CreateTeam(ctx, name)
}

func (s *TeamService) GetTeam(ctx context.Context, id int64) (*team.Team, error) {
	t, err := s.store.GetTeam(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("class %d: %w", id, err)
	}
	return t, nil
}

func (s *TeamService) ListTeams(ctx context.Context, offset, limit int) ([]team.Team, error) {
	return s.store.PageTeams(ctx, offset, limit)
}

func (s *TeamService) RenameTeam(ctx context.Context, id int64, name string) (*team.Team, error) {
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	if err := s.store.RenameTeam(ctx, id, name); err != nil {
		return nil, fmt.Errorf("class %d: %w", id, err)
	}
	return &team.Team{ID: id, Name: name}, nil
}

func (s *TeamService) ListMembers(ctx context.Context, sp sport.Sport, l sport.League) ([]team.Membership, error) {
	return s.store.ListMembers(ctx, sp, l)
}

// AddMember puts a team into a league. A team belongs to at most one league per sport.
func (s *TeamService) AddMember(ctx context.Context, sp sport.Sport, l sport.League, teamID int64) (*team.Membership, error) {
	if !sp.Competitive() {
		return nil, fmt.Errorf("%w: %s has no leagues", apperr.ErrInvalidArgument, sp)
	}
	m := &team.Membership{Sport: sp, League: l, TeamID: teamID}
	if err := s.store.AddMember(ctx, m); err != nil {
		return nil, fmt.Errorf("class %d in %s league %s: %w", teamID, sp, l, err)
	}
	return m, nil
}

func (s *TeamService) RemoveMember(ctx context.Context, sp sport.Sport, l sport.League, teamID int64) error {
	return s.store.RemoveMember(ctx, sp, l, teamID)
}
