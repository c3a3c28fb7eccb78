package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/league-api/internal/domain/game"
	"github.com/riskibarqy/league-api/internal/domain/team"
	"github.com/riskibarqy/league-api/internal/platform/sanitize"
	"github.com/riskibarqy/league-api/internal/platform/validation"
)

const msgTeamExists = "Team already exists"

type TeamService struct {
	teamRepo  team.Repository
	gameRepo  game.Repository
	validator *validation.Validator
}

func NewTeamService(teamRepo team.Repository, gameRepo game.Repository, validator *validation.Validator) *TeamService {
	return &TeamService{
		teamRepo:  teamRepo,
		gameRepo:  gameRepo,
		validator: validator,
	}
}

func (s *TeamService) List(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.List")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

func (s *TeamService) Get(ctx context.Context, slug string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Get")
	defer span.End()

	return s.getBySlug(ctx, slug)
}

func (s *TeamService) Create(ctx context.Context, in CreateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Create")
	defer span.End()

	in.Name = sanitize.Trim(in.Name)
	sanitize.TrimPtr(in.Description)

	err := s.validator.Run(ctx, in,
		validation.NotExists("name", msgTeamExists, func(ctx context.Context) (bool, error) {
			if in.Name == "" {
				return false, nil
			}
			return s.slugTaken(ctx, slugFor(in.Name), 0)
		}),
	)
	if err != nil {
		return team.Team{}, fmt.Errorf("validate team: %w", err)
	}

	item := team.Team{Name: sanitize.Text(in.Name)}
	if desc := sanitize.TextPtr(in.Description); desc != nil {
		item.Description = *desc
	}
	item.Slug = team.Slugify(item.Name)
	if item.Slug == "" {
		return team.Team{}, validation.Errors{{Field: "name", Message: "name is required"}}
	}

	created, err := s.teamRepo.Create(ctx, item)
	if err != nil {
		if errors.Is(err, team.ErrSlugTaken) {
			return team.Team{}, validation.Errors{{Field: "name", Message: msgTeamExists}}
		}
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}
	return created, nil
}

// Update renames and/or re-describes the team. A new name also moves the
// slug; the description is never touched by a rename.
func (s *TeamService) Update(ctx context.Context, slug string, in UpdateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Update")
	defer span.End()

	existing, err := s.getBySlug(ctx, slug)
	if err != nil {
		return team.Team{}, err
	}

	// Blank fields are left untouched, as if they were not sent.
	sanitize.TrimPtr(in.Name)
	sanitize.TrimPtr(in.Description)
	in.Name = sanitize.NilIfEmpty(in.Name)
	in.Description = sanitize.NilIfEmpty(in.Description)

	err = s.validator.Run(ctx, in,
		validation.AtLeastOne(TeamStringFields, in.Name != nil, in.Description != nil),
		validation.NotExists("name", msgTeamExists, func(ctx context.Context) (bool, error) {
			if in.Name == nil {
				return false, nil
			}
			return s.slugTaken(ctx, slugFor(*in.Name), existing.ID)
		}),
	)
	if err != nil {
		return team.Team{}, fmt.Errorf("validate team: %w", err)
	}

	var patch team.Patch
	if in.Name != nil {
		name := sanitize.Text(*in.Name)
		newSlug := team.Slugify(name)
		if newSlug == "" {
			return team.Team{}, validation.Errors{{Field: "name", Message: "name is required"}}
		}
		patch.Name = &name
		patch.Slug = &newSlug
	}
	patch.Description = sanitize.TextPtr(in.Description)

	updated, ok, err := s.teamRepo.Update(ctx, existing.ID, patch)
	if err != nil {
		if errors.Is(err, team.ErrSlugTaken) {
			return team.Team{}, validation.Errors{{Field: "name", Message: msgTeamExists}}
		}
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}
	if !ok {
		if patch.Empty() {
			return team.Team{}, ErrNothingToUpdate
		}
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, slug)
	}
	return updated, nil
}

func (s *TeamService) Delete(ctx context.Context, slug string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Delete")
	defer span.End()

	deleted, err := s.teamRepo.DeleteBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		if errors.Is(err, team.ErrInUse) {
			return fmt.Errorf("%w: team %s is referenced by games", ErrConflict, slug)
		}
		return fmt.Errorf("delete team: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: team=%s", ErrNotFound, slug)
	}
	return nil
}

// ListGames returns the games the team played, home or away.
func (s *TeamService) ListGames(ctx context.Context, slug string) ([]game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListGames")
	defer span.End()

	item, err := s.getBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	games, err := s.gameRepo.ListByTeamID(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("list games by team: %w", err)
	}
	return games, nil
}

func (s *TeamService) getBySlug(ctx context.Context, slug string) (team.Team, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return team.Team{}, fmt.Errorf("%w: team slug is required", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetBySlug(ctx, slug)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, slug)
	}
	return item, nil
}

// slugTaken reports whether slug belongs to a team other than selfID.
func (s *TeamService) slugTaken(ctx context.Context, slug string, selfID int64) (bool, error) {
	if slug == "" {
		return false, nil
	}
	item, exists, err := s.teamRepo.GetBySlug(ctx, slug)
	if err != nil {
		return false, fmt.Errorf("check team slug: %w", err)
	}
	return exists && item.ID != selfID, nil
}

// slugFor computes the slug a raw name will be stored under.
func slugFor(name string) string {
	return team.Slugify(sanitize.Text(name))
}
