package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riskibarqy/league-api/internal/domain/game"
	"github.com/riskibarqy/league-api/internal/domain/team"
	"github.com/riskibarqy/league-api/internal/platform/sanitize"
	"github.com/riskibarqy/league-api/internal/platform/validation"
)

const (
	msgGameExists   = "Game already exists"
	msgTeamNotFound = "Team does not exist"
	msgSameTeams    = "home and away must be different teams"
)

type GameService struct {
	gameRepo  game.Repository
	teamRepo  team.Repository
	validator *validation.Validator
}

func NewGameService(gameRepo game.Repository, teamRepo team.Repository, validator *validation.Validator) *GameService {
	return &GameService{
		gameRepo:  gameRepo,
		teamRepo:  teamRepo,
		validator: validator,
	}
}

func (s *GameService) List(ctx context.Context) ([]game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.List")
	defer span.End()

	games, err := s.gameRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return games, nil
}

func (s *GameService) Get(ctx context.Context, id int64) (game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.Get")
	defer span.End()

	return s.get(ctx, id)
}

func (s *GameService) Create(ctx context.Context, in CreateGameInput) (game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.Create")
	defer span.End()

	in.Date = sanitize.Trim(in.Date)

	err := s.validator.Run(ctx, in,
		validation.NotExists("id", msgGameExists, func(ctx context.Context) (bool, error) {
			if in.ID == nil || *in.ID <= 0 {
				return false, nil
			}
			return s.gameExists(ctx, *in.ID)
		}),
		s.teamExists("home", &in.Home),
		s.teamExists("away", &in.Away),
	)
	if err != nil {
		return game.Game{}, fmt.Errorf("validate game: %w", err)
	}

	date, err := parseGameDate(in.Date)
	if err != nil {
		return game.Game{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	draft := game.Draft{
		ID:        in.ID,
		Date:      date,
		HomeID:    in.Home,
		AwayID:    in.Away,
		HomeScore: *in.HomeScore,
		AwayScore: *in.AwayScore,
	}
	if err := draft.Validate(); err != nil {
		return game.Game{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.gameRepo.Create(ctx, draft)
	if err != nil {
		return game.Game{}, s.mapWriteError(ctx, "create game", err,
			teamRef{field: "home", id: &draft.HomeID},
			teamRef{field: "away", id: &draft.AwayID},
		)
	}
	return created, nil
}

func (s *GameService) Update(ctx context.Context, id int64, in UpdateGameInput) (game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.Update")
	defer span.End()

	existing, err := s.get(ctx, id)
	if err != nil {
		return game.Game{}, err
	}

	sanitize.TrimPtr(in.Date)

	home, away := existing.Home.ID, existing.Away.ID
	if in.Home != nil {
		home = *in.Home
	}
	if in.Away != nil {
		away = *in.Away
	}

	err = s.validator.Run(ctx, in,
		validation.AtLeastOne(
			[]string{"date", "home", "away", "home_score", "away_score"},
			in.Date != nil, in.Home != nil, in.Away != nil, in.HomeScore != nil, in.AwayScore != nil,
		),
		s.teamExists("home", in.Home),
		s.teamExists("away", in.Away),
		func(context.Context) (*validation.FieldError, error) {
			if home == away {
				return &validation.FieldError{Field: "away", Message: msgSameTeams}, nil
			}
			return nil, nil
		},
	)
	if err != nil {
		return game.Game{}, fmt.Errorf("validate game: %w", err)
	}

	patch := game.Patch{
		HomeID:    in.Home,
		AwayID:    in.Away,
		HomeScore: in.HomeScore,
		AwayScore: in.AwayScore,
	}
	if in.Date != nil {
		date, err := parseGameDate(*in.Date)
		if err != nil {
			return game.Game{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		patch.Date = &date
	}

	updated, ok, err := s.gameRepo.Update(ctx, id, patch)
	if err != nil {
		return game.Game{}, s.mapWriteError(ctx, "update game", err,
			teamRef{field: "home", id: patch.HomeID},
			teamRef{field: "away", id: patch.AwayID},
		)
	}
	if !ok {
		if patch.Empty() {
			return game.Game{}, ErrNothingToUpdate
		}
		return game.Game{}, fmt.Errorf("%w: game=%d", ErrNotFound, id)
	}
	return updated, nil
}

func (s *GameService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.Delete")
	defer span.End()

	deleted, err := s.gameRepo.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete game: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: game=%d", ErrNotFound, id)
	}
	return nil
}

func (s *GameService) get(ctx context.Context, id int64) (game.Game, error) {
	if id <= 0 {
		return game.Game{}, fmt.Errorf("%w: game=%d", ErrNotFound, id)
	}

	item, exists, err := s.gameRepo.GetByID(ctx, id)
	if err != nil {
		return game.Game{}, fmt.Errorf("get game: %w", err)
	}
	if !exists {
		return game.Game{}, fmt.Errorf("%w: game=%d", ErrNotFound, id)
	}
	return item, nil
}

func (s *GameService) gameExists(ctx context.Context, id int64) (bool, error) {
	_, exists, err := s.gameRepo.GetByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("check game id: %w", err)
	}
	return exists, nil
}

// teamExists checks a referenced team id. A nil or non-positive id is left
// to the struct rules.
func (s *GameService) teamExists(field string, id *int64) validation.Check {
	return validation.Exists(field, msgTeamNotFound, func(ctx context.Context) (bool, error) {
		if id == nil || *id <= 0 {
			return true, nil
		}
		_, exists, err := s.teamRepo.GetByID(ctx, *id)
		if err != nil {
			return false, fmt.Errorf("check %s team: %w", field, err)
		}
		return exists, nil
	})
}

// teamRef is a team id written by a game insert or update; a nil id was
// not written.
type teamRef struct {
	field string
	id    *int64
}

func (s *GameService) mapWriteError(ctx context.Context, op string, err error, refs ...teamRef) error {
	switch {
	case errors.Is(err, game.ErrIDTaken):
		return validation.Errors{{Field: "id", Message: msgGameExists}}
	case errors.Is(err, game.ErrUnknownTeam):
		return s.unknownTeamErrors(ctx, refs)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// unknownTeamErrors names the written references whose team is gone. A team
// deleted between validation and the write is the usual cause; when the
// re-check cannot tell which one, the whole body is blamed.
func (s *GameService) unknownTeamErrors(ctx context.Context, refs []teamRef) validation.Errors {
	var errs validation.Errors
	for _, ref := range refs {
		if ref.id == nil {
			continue
		}
		_, exists, err := s.teamRepo.GetByID(ctx, *ref.id)
		if err != nil || exists {
			continue
		}
		errs = append(errs, validation.FieldError{Field: ref.field, Message: msgTeamNotFound})
	}
	if len(errs) == 0 {
		return validation.Errors{{Field: "body", Message: msgTeamNotFound}}
	}
	return errs
}

func parseGameDate(raw string) (time.Time, error) {
	date, err := validation.ParseDate(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", raw)
	}
	return date.UTC(), nil
}
