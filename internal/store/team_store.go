package store

import (
	"context"

	"github.com/AdamBeresnev/class-match/internal/sport"
	"github.com/AdamBeresnev/class-match/internal/team"
	"github.com/jmoiron/sqlx"
)

type TeamStore struct {
	db *sqlx.DB
}

const (
	getTeamQuery    = "SELECT id, name FROM classes WHERE id = ?"
	listTeamsQuery  = "SELECT id, name FROM classes ORDER BY id ASC"
	pageTeamsQuery  = "SELECT id, name FROM classes ORDER BY id ASC LIMIT ? OFFSET ?"
	createTeamQuery = "INSERT INTO classes (name) VALUES (?)"
	renameTeamQuery = "UPDATE classes SET name = ? WHERE id = ?"

	listMembersQuery = `
		SELECT id, sport, league, class_id FROM league_teams
		WHERE sport = ? AND league = ?
		ORDER BY class_id ASC
	`
	addMemberQuery = `
		INSERT INTO league_teams (sport, league, class_id) VALUES
		(:sport, :league, :class_id)
	`
	removeMemberQuery = "DELETE FROM league_teams WHERE sport = ? AND league = ? AND class_id = ?"
)

func NewTeamStore(db *sqlx.DB) *TeamStore {
	return &TeamStore{db: db}
}

func (s *TeamStore) GetTeam(ctx context.Context, id int64) (*team.Team, error) {
	var t team.Team
	if err := s.db.GetContext(ctx, &t, getTeamQuery, id); err != nil {
		return nil, mapError(err)
	}
	return &t, nil
}

// ListTeams returns every team ordered by id.
func (s *TeamStore) ListTeams(ctx context.Context) ([]team.Team, error) {
	teams := []team.Team{}
	err := s.db.SelectContext(ctx, &teams, listTeamsQuery)
	return teams, mapError(err)
}

// PageTeams returns teams ordered by id. A non-positive limit returns everything after offset.
func (s *TeamStore) PageTeams(ctx context.Context, offset, limit int) ([]team.Team, error) {
	if limit <= 0 {
		limit = -1
	}
	teams := []team.Team{}
	err := s.db.SelectContext(ctx, &teams, pageTeamsQuery, limit, offset)
	return teams, mapError(err)
}

func (s *TeamStore) CreateTeam(ctx context.Context, name string) (*team.Team, error) {
	res, err := s.db.ExecContext(ctx, createTeamQuery, name)
	if err != nil {
		return nil, mapError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &team.Team{ID: id, Name: name}, nil
}

func (s *TeamStore) RenameTeam(ctx context.Context, id int64, name string) error {
	return requireAffected(s.db.ExecContext(ctx, renameTeamQuery, name, id))
}

func (s *TeamStore) ListMembers(ctx context.Context, sp sport.Sport, l sport.League) ([]team.Membership, error) {
	return listMembers(ctx, s.db, sp, l)
}

func (s *TeamStore) ListMembersTx(ctx context.Context, tx *sqlx.Tx, sp sport.Sport, l sport.League) ([]team.Membership, error) {
	return listMembers(ctx, tx, sp, l)
}

func listMembers(ctx context.Context, q sqlx.QueryerContext, sp sport.Sport, l sport.League) ([]team.Membership, error) {
	members := []team.Membership{}
	err := sqlx.SelectContext(ctx, q, &members, listMembersQuery, sp, l)
	return members, mapError(err)
}

func (s *TeamStore) AddMember(ctx context.Context, m *team.Membership) error {
	res, err := s.db.NamedExecContext(ctx, addMemberQuery, m)
	if err != nil {
		return mapError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = id
	return nil
}

func (s *TeamStore) RemoveMember(ctx context.Context, sp sport.Sport, l sport.League, teamID int64) error {
	return requireAffected(s.db.ExecContext(ctx, removeMemberQuery, sp, l, teamID))
}
