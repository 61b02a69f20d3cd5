// Package memory implements the game store in process memory. It is used by
// tests and by the "memory" DB_DRIVER for throwaway local runs.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/repository"
)

type state struct {
	players     map[string]domain.Player
	items       map[int64]domain.InventoryItem
	listings    map[int64]domain.Listing
	expeditions map[int64]domain.Expedition
	quests      map[int64]domain.Quest
	nextID      int64
}

func newState() *state {
	return &state{
		players:     make(map[string]domain.Player),
		items:       make(map[int64]domain.InventoryItem),
		listings:    make(map[int64]domain.Listing),
		expeditions: make(map[int64]domain.Expedition),
		quests:      make(map[int64]domain.Quest),
	}
}

func (s *state) clone() *state {
	return &state{
		players:     maps.Clone(s.players),
		items:       maps.Clone(s.items),
		listings:    maps.Clone(s.listings),
		expeditions: maps.Clone(s.expeditions),
		quests:      maps.Clone(s.quests),
		nextID:      s.nextID,
	}
}

func (s *state) id() int64 {
	s.nextID++
	return s.nextID
}

// Store implements repository.Store in memory. Transactions are serialized:
// each one works on a private copy of the committed state which replaces it
// on Commit.
type Store struct {
	writeMu sync.Mutex

	mu        sync.RWMutex
	committed *state
}

var _ repository.Store = (*Store)(nil)

// NewStore returns an empty Store
func NewStore() *Store {
	return &Store{committed: newState()}
}

// BeginTx blocks until no other transaction is open.
func (s *Store) BeginTx(ctx context.Context) (repository.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.writeMu.Lock()

	s.mu.RLock()
	work := s.committed.clone()
	s.mu.RUnlock()

	return &memTx{store: s, st: work}, nil
}

func (s *Store) snapshot() *state {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.committed
}

func (s *Store) GetPlayer(_ context.Context, id string) (*domain.Player, error) {
	return getPlayer(s.snapshot(), id)
}

func (s *Store) ListInventory(_ context.Context, playerID string) ([]domain.InventoryItem, error) {
	return listInventory(s.snapshot(), playerID), nil
}

func (s *Store) ListAuction(_ context.Context, limit, offset int) ([]domain.Listing, error) {
	listings := slices.Collect(maps.Values(s.snapshot().listings))
	slices.SortFunc(listings, newestListingFirst)
	if offset >= len(listings) {
		return []domain.Listing{}, nil
	}
	listings = listings[offset:]
	if limit < len(listings) {
		listings = listings[:limit]
	}
	return listings, nil
}

func (s *Store) ListListingsBySeller(_ context.Context, sellerID string) ([]domain.Listing, error) {
	listings := []domain.Listing{}
	for _, l := range s.snapshot().listings {
		if l.SellerID == sellerID {
			listings = append(listings, l)
		}
	}
	slices.SortFunc(listings, newestListingFirst)
	return listings, nil
}

func newestListingFirst(a, b domain.Listing) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(b.ID, a.ID)
}

func (s *Store) GetActiveExpedition(_ context.Context, playerID string) (*domain.Expedition, error) {
	return activeExpedition(s.snapshot(), playerID), nil
}

func (s *Store) Leaderboard(_ context.Context, by domain.LeaderboardKind, limit int) ([]domain.LeaderboardEntry, error) {
	less, ok := leaderboardOrder[by]
	if !ok {
		return nil, fmt.Errorf("%w: leaderboard %q", domain.ErrInvalidInput, by)
	}
	players := slices.Collect(maps.Values(s.snapshot().players))
	slices.SortFunc(players, less)
	if limit < len(players) {
		players = players[:limit]
	}

	entries := make([]domain.LeaderboardEntry, 0, len(players))
	for i, p := range players {
		entries = append(entries, domain.LeaderboardEntry{
			Rank:        i + 1,
			PlayerID:    p.ID,
			Name:        p.Name,
			Class:       p.Class,
			Level:       p.Level,
			XP:          p.XP,
			ArenaRating: p.ArenaRating,
			TowerFloor:  p.TowerFloor,
		})
	}
	return entries, nil
}

func (s *Store) PlayerRank(_ context.Context, playerID string, by domain.LeaderboardKind) (int, error) {
	ahead, ok := leaderboardAhead[by]
	if !ok {
		return 0, fmt.Errorf("%w: leaderboard %q", domain.ErrInvalidInput, by)
	}
	st := s.snapshot()
	p, err := getPlayer(st, playerID)
	if err != nil {
		return 0, err
	}
	rank := 1
	for _, other := range st.players {
		if ahead(other, *p) {
			rank++
		}
	}
	return rank, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Store) Close() error {
	return nil
}

var leaderboardOrder = map[domain.LeaderboardKind]func(a, b domain.Player) int{
	domain.LeaderboardLevel: func(a, b domain.Player) int {
		return cmp.Or(cmp.Compare(b.Level, a.Level), cmp.Compare(b.XP, a.XP), cmp.Compare(a.ID, b.ID))
	},
	domain.LeaderboardArena: func(a, b domain.Player) int {
		return cmp.Or(cmp.Compare(b.ArenaRating, a.ArenaRating), cmp.Compare(a.ID, b.ID))
	},
	domain.LeaderboardTower: func(a, b domain.Player) int {
		return cmp.Or(cmp.Compare(b.TowerFloor, a.TowerFloor), cmp.Compare(a.ID, b.ID))
	},
}

// ahead reports whether a ranks strictly better than b.
var leaderboardAhead = map[domain.LeaderboardKind]func(a, b domain.Player) bool{
	domain.LeaderboardLevel: func(a, b domain.Player) bool {
		return a.Level > b.Level || (a.Level == b.Level && a.XP > b.XP)
	},
	domain.LeaderboardArena: func(a, b domain.Player) bool { return a.ArenaRating > b.ArenaRating },
	domain.LeaderboardTower: func(a, b domain.Player) bool { return a.TowerFloor > b.TowerFloor },
}

func getPlayer(st *state, id string) (*domain.Player, error) {
	p, ok := st.players[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, id)
	}
	return &p, nil
}

func listInventory(st *state, playerID string) []domain.InventoryItem {
	items := make([]domain.InventoryItem, 0)
	for _, it := range st.items {
		if it.PlayerID == playerID {
			items = append(items, it)
		}
	}
	slices.SortFunc(items, func(a, b domain.InventoryItem) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.ID, b.ID))
	})
	return items
}

func activeExpedition(st *state, playerID string) *domain.Expedition {
	for _, e := range st.expeditions {
		if e.PlayerID == playerID && !e.Collected {
			return &e
		}
	}
	return nil
}

func sameDay(a, b time.Time) bool {
	return a.UTC().Equal(b.UTC())
}
