package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/league-api/internal/domain/game"
	"github.com/riskibarqy/league-api/internal/domain/team"
)

type gameRecord struct {
	id        int64
	date      time.Time
	home      int64
	away      int64
	homeScore int
	awayScore int
}

// GameRepository keeps games as id references and resolves teams on every
// read, so a game whose team has disappeared is not returned.
type GameRepository struct {
	mu     sync.RWMutex
	teams  *TeamRepository
	nextID int64
	byID   map[int64]gameRecord
}

func NewGameRepository(teams *TeamRepository, drafts []game.Draft) *GameRepository {
	r := &GameRepository{
		teams: teams,
		byID:  make(map[int64]gameRecord, len(drafts)),
	}
	for _, d := range drafts {
		r.insertLocked(d)
	}
	teams.setReferenceCheck(r.referencesTeam)
	return r
}

func (r *GameRepository) List(ctx context.Context) ([]game.Game, error) {
	return r.resolve(ctx, r.snapshot(func(gameRecord) bool { return true }))
}

func (r *GameRepository) ListByTeamID(ctx context.Context, teamID int64) ([]game.Game, error) {
	return r.resolve(ctx, r.snapshot(func(rec gameRecord) bool {
		return rec.home == teamID || rec.away == teamID
	}))
}

func (r *GameRepository) GetByID(ctx context.Context, id int64) (game.Game, bool, error) {
	r.mu.RLock()
	rec, ok := r.byID[id]
	r.mu.RUnlock()
	if !ok {
		return game.Game{}, false, nil
	}

	out, err := r.resolve(ctx, []gameRecord{rec})
	if err != nil || len(out) == 0 {
		return game.Game{}, false, err
	}
	return out[0], true, nil
}

func (r *GameRepository) Create(ctx context.Context, draft game.Draft) (game.Game, error) {
	if err := r.requireTeams(ctx, draft.HomeID, draft.AwayID); err != nil {
		return game.Game{}, fmt.Errorf("insert game: %w", err)
	}

	r.mu.Lock()
	if draft.ID != nil {
		if _, taken := r.byID[*draft.ID]; taken {
			r.mu.Unlock()
			return game.Game{}, fmt.Errorf("insert game: %w", game.ErrIDTaken)
		}
	}
	rec := r.insertLocked(draft)
	r.mu.Unlock()

	out, err := r.resolve(ctx, []gameRecord{rec})
	if err != nil {
		return game.Game{}, err
	}
	if len(out) == 0 {
		return game.Game{}, fmt.Errorf("insert game %d: %w", rec.id, game.ErrUnknownTeam)
	}
	return out[0], nil
}

func (r *GameRepository) Update(ctx context.Context, id int64, patch game.Patch) (game.Game, bool, error) {
	if patch.Empty() {
		return game.Game{}, false, nil
	}

	var refs []int64
	if patch.HomeID != nil {
		refs = append(refs, *patch.HomeID)
	}
	if patch.AwayID != nil {
		refs = append(refs, *patch.AwayID)
	}
	if err := r.requireTeams(ctx, refs...); err != nil {
		return game.Game{}, false, fmt.Errorf("update game %d: %w", id, err)
	}

	r.mu.Lock()
	rec, ok := r.byID[id]
	if !ok {
		r.mu.Unlock()
		return game.Game{}, false, nil
	}
	if patch.Date != nil {
		rec.date = *patch.Date
	}
	if patch.HomeID != nil {
		rec.home = *patch.HomeID
	}
	if patch.AwayID != nil {
		rec.away = *patch.AwayID
	}
	if patch.HomeScore != nil {
		rec.homeScore = *patch.HomeScore
	}
	if patch.AwayScore != nil {
		rec.awayScore = *patch.AwayScore
	}
	r.byID[id] = rec
	r.mu.Unlock()

	out, err := r.resolve(ctx, []gameRecord{rec})
	if err != nil || len(out) == 0 {
		return game.Game{}, false, err
	}
	return out[0], true, nil
}

func (r *GameRepository) DeleteByID(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

func (r *GameRepository) referencesTeam(teamID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.byID {
		if rec.home == teamID || rec.away == teamID {
			return true
		}
	}
	return false
}

func (r *GameRepository) insertLocked(d game.Draft) gameRecord {
	id := r.nextID + 1
	if d.ID != nil {
		id = *d.ID
	}
	if id > r.nextID {
		r.nextID = id
	}

	rec := gameRecord{
		id:        id,
		date:      d.Date,
		home:      d.HomeID,
		away:      d.AwayID,
		homeScore: d.HomeScore,
		awayScore: d.AwayScore,
	}
	r.byID[id] = rec
	return rec
}

func (r *GameRepository) snapshot(keep func(gameRecord) bool) []gameRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]gameRecord, 0, len(r.byID))
	for _, rec := range r.byID {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].date.Equal(out[j].date) {
			return out[i].date.Before(out[j].date)
		}
		return out[i].id < out[j].id
	})
	return out
}

// resolve must be called without holding r.mu; the team repository may
// call back into referencesTeam while holding its own lock.
func (r *GameRepository) resolve(ctx context.Context, recs []gameRecord) ([]game.Game, error) {
	ids := make([]int64, 0, len(recs)*2)
	for _, rec := range recs {
		ids = append(ids, rec.home, rec.away)
	}

	teams, err := r.teams.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]team.Team, len(teams))
	for _, item := range teams {
		byID[item.ID] = item
	}

	out := make([]game.Game, 0, len(recs))
	for _, rec := range recs {
		home, okHome := byID[rec.home]
		away, okAway := byID[rec.away]
		if !okHome || !okAway || rec.homeScore < 0 || rec.awayScore < 0 {
			continue
		}
		out = append(out, game.Game{
			ID:        rec.id,
			Date:      rec.date,
			Home:      home,
			Away:      away,
			HomeScore: rec.homeScore,
			AwayScore: rec.awayScore,
		})
	}
	return out, nil
}

func (r *GameRepository) requireTeams(ctx context.Context, ids ...int64) error {
	for _, id := range ids {
		if _, ok, _ := r.teams.GetByID(ctx, id); !ok {
			return game.ErrUnknownTeam
		}
	}
	return nil
}
