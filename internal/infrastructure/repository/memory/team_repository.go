package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/league-api/internal/domain/team"
)

type TeamRepository struct {
	mu     sync.RWMutex
	clock  clockwork.Clock
	nextID int64
	byID   map[int64]team.Team
	inUse  func(teamID int64) bool
}

func NewTeamRepository(clock clockwork.Clock, teams []team.Team) *TeamRepository {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	r := &TeamRepository{
		clock: clock,
		byID:  make(map[int64]team.Team, len(teams)),
	}
	for _, item := range teams {
		r.byID[item.ID] = item
		if item.ID > r.nextID {
			r.nextID = item.ID
		}
	}
	return r
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedLocked(), nil
}

func (r *TeamRepository) GetBySlug(_ context.Context, slug string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.bySlugLocked(slug)
	return item, ok, nil
}

func (r *TeamRepository) GetByID(_ context.Context, id int64) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[id]
	return item, ok, nil
}

func (r *TeamRepository) ListByIDs(_ context.Context, ids []int64) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if item, ok := r.byID[id]; ok {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *TeamRepository) Create(_ context.Context, item team.Team) (team.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.bySlugLocked(item.Slug); taken {
		return team.Team{}, fmt.Errorf("insert team %q: %w", item.Slug, team.ErrSlugTaken)
	}

	r.nextID++
	now := r.clock.Now()
	item.ID = r.nextID
	item.CreatedAt = now
	item.UpdatedAt = now
	r.byID[item.ID] = item

	return item, nil
}

func (r *TeamRepository) Update(_ context.Context, id int64, patch team.Patch) (team.Team, bool, error) {
	if patch.Empty() {
		return team.Team{}, false, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.byID[id]
	if !ok {
		return team.Team{}, false, nil
	}

	if patch.Slug != nil && *patch.Slug != item.Slug {
		if _, taken := r.bySlugLocked(*patch.Slug); taken {
			return team.Team{}, false, fmt.Errorf("update team %d: %w", id, team.ErrSlugTaken)
		}
		item.Slug = *patch.Slug
	}
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	item.UpdatedAt = r.clock.Now()
	r.byID[id] = item

	return item, true, nil
}

func (r *TeamRepository) DeleteBySlug(_ context.Context, slug string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.bySlugLocked(slug)
	if !ok {
		return false, nil
	}
	if r.inUse != nil && r.inUse(item.ID) {
		return false, fmt.Errorf("delete team %q: %w", slug, team.ErrInUse)
	}

	delete(r.byID, item.ID)
	return true, nil
}

// setReferenceCheck installs the foreign key guard used by DeleteBySlug.
func (r *TeamRepository) setReferenceCheck(inUse func(teamID int64) bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.inUse = inUse
}

func (r *TeamRepository) bySlugLocked(slug string) (team.Team, bool) {
	for _, item := range r.byID {
		if item.Slug == slug {
			return item, true
		}
	}
	return team.Team{}, false
}

func (r *TeamRepository) sortedLocked() []team.Team {
	out := make([]team.Team, 0, len(r.byID))
	for _, item := range r.byID {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
