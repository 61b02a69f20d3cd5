package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/repository"
)

// memTx holds the store's write lock until Commit or Rollback.
type memTx struct {
	store *Store
	st    *state
}

func (t *memTx) state() (*state, error) {
	if t.st == nil {
		return nil, repository.ErrTxClosed
	}
	return t.st, nil
}

func (t *memTx) CreatePlayer(_ context.Context, p *domain.Player) error {
	st, err := t.state()
	if err != nil {
		return err
	}
	if _, ok := st.players[p.ID]; ok {
		return fmt.Errorf("%w: %s", domain.ErrPlayerExists, p.ID)
	}
	st.players[p.ID] = *p
	return nil
}

func (t *memTx) GetPlayerForUpdate(_ context.Context, id string) (*domain.Player, error) {
	st, err := t.state()
	if err != nil {
		return nil, err
	}
	return getPlayer(st, id)
}

func (t *memTx) UpdatePlayer(_ context.Context, p *domain.Player) error {
	st, err := t.state()
	if err != nil {
		return err
	}
	old, ok := st.players[p.ID]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, p.ID)
	}
	updated := *p
	updated.Class = old.Class
	updated.CreatedAt = old.CreatedAt
	st.players[p.ID] = updated
	return nil
}

func (t *memTx) AddGold(_ context.Context, playerID string, amount int) error {
	st, err := t.state()
	if err != nil {
		return err
	}
	p, ok := st.players[playerID]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
	}
	if p.Gold+amount < 0 {
		return fmt.Errorf("%w: gold %d%+d", domain.ErrNegativeBalance, p.Gold, amount)
	}
	p.Gold += amount
	st.players[playerID] = p
	return nil
}

func (t *memTx) CountOpponents(_ context.Context, excludeID string, minLevel, maxLevel int) (int, error) {
	st, err := t.state()
	if err != nil {
		return 0, err
	}
	return len(opponents(st, excludeID, minLevel, maxLevel)), nil
}

func (t *memTx) FindOpponents(_ context.Context, excludeID string, minLevel, maxLevel, limit, offset int) ([]domain.Player, error) {
	st, err := t.state()
	if err != nil {
		return nil, err
	}
	players := opponents(st, excludeID, minLevel, maxLevel)
	slices.SortFunc(players, func(a, b domain.Player) int { return cmp.Compare(a.ID, b.ID) })
	players = players[min(offset, len(players)):]
	if limit < len(players) {
		players = players[:limit]
	}
	return players, nil
}

func opponents(st *state, excludeID string, minLevel, maxLevel int) []domain.Player {
	var players []domain.Player
	for _, p := range st.players {
		if p.ID != excludeID && p.Level >= minLevel && p.Level <= maxLevel {
			players = append(players, p)
		}
	}
	return players
}

func (t *memTx) ListInventory(_ context.Context, playerID string) ([]domain.InventoryItem, error) {
	st, err := t.state()
	if err != nil {
		return nil, err
	}
	return listInventory(st, playerID), nil
}

func (t *memTx) AddItem(_ context.Context, item *domain.InventoryItem) error {
	st, err := t.state()
	if err != nil {
		return err
	}
	if _, ok := st.players[item.PlayerID]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, item.PlayerID)
	}
	if item.Equipped && equippedInSlot(st, item.PlayerID, item.Type, 0) {
		return fmt.Errorf("%w: %s", domain.ErrDoubleEquip, item.Type)
	}
	item.ID = st.id()
	st.items[item.ID] = *item
	return nil
}

func (t *memTx) SetEquipped(_ context.Context, itemID int64, equipped bool) error {
	st, err := t.state()
	if err != nil {
		return err
	}
	it, ok := st.items[itemID]
	if !ok {
		return fmt.Errorf("%w: id %d", domain.ErrItemNotFound, itemID)
	}
	if equipped && equippedInSlot(st, it.PlayerID, it.Type, itemID) {
		return fmt.Errorf("%w: item %d", domain.ErrDoubleEquip, itemID)
	}
	it.Equipped = equipped
	st.items[itemID] = it
	return nil
}

func equippedInSlot(st *state, playerID string, t domain.ItemType, except int64) bool {
	for id, it := range st.items {
		if id != except && it.PlayerID == playerID && it.Type == t && it.Equipped {
			return true
		}
	}
	return false
}

func (t *memTx) DeleteItems(_ context.Context, itemIDs ...int64) error {
	st, err := t.state()
	if err != nil {
		return err
	}
	deleted := 0
	for _, id := range itemIDs {
		if _, ok := st.items[id]; ok {
			delete(st.items, id)
			deleted++
		}
	}
	if deleted != len(itemIDs) {
		return fmt.Errorf("%w: deleted %d of %d items", domain.ErrItemNotFound, deleted, len(itemIDs))
	}
	return nil
}

func (t *memTx) CountListings(_ context.Context, sellerID string) (int, error) {
	st, err := t.state()
	if err != nil {
		return 0, err
	}
	n := 0
	for _, l := range st.listings {
		if l.SellerID == sellerID {
			n++
		}
	}
	return n, nil
}

func (t *memTx) CreateListing(_ context.Context, l *domain.Listing) error {
	st, err := t.state()
	if err != nil {
		return err
	}
	if l.Price <= 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidPrice, l.Price)
	}
	l.ID = st.id()
	st.listings[l.ID] = *l
	return nil
}

func (t *memTx) TakeListing(_ context.Context, listingID int64, sellerID string) (*domain.Listing, error) {
	st, err := t.state()
	if err != nil {
		return nil, err
	}
	l, ok := st.listings[listingID]
	if !ok || (sellerID != "" && l.SellerID != sellerID) {
		return nil, nil
	}
	delete(st.listings, listingID)
	return &l, nil
}

func (t *memTx) GetActiveExpedition(_ context.Context, playerID string) (*domain.Expedition, error) {
	st, err := t.state()
	if err != nil {
		return nil, err
	}
	return activeExpedition(st, playerID), nil
}

func (t *memTx) CreateExpedition(_ context.Context, e *domain.Expedition) error {
	st, err := t.state()
	if err != nil {
		return err
	}
	if activeExpedition(st, e.PlayerID) != nil {
		return fmt.Errorf("%w: player %s", domain.ErrExpeditionActive, e.PlayerID)
	}
	e.ID = st.id()
	st.expeditions[e.ID] = *e
	return nil
}

func (t *memTx) MarkExpeditionCollected(_ context.Context, id int64) error {
	st, err := t.state()
	if err != nil {
		return err
	}
	e, ok := st.expeditions[id]
	if !ok || e.Collected {
		return fmt.Errorf("%w: id %d", domain.ErrNoExpedition, id)
	}
	e.Collected = true
	st.expeditions[id] = e
	return nil
}

func (t *memTx) ListQuests(_ context.Context, playerID string, day time.Time) ([]domain.Quest, error) {
	st, err := t.state()
	if err != nil {
		return nil, err
	}
	quests := make([]domain.Quest, 0)
	for _, q := range st.quests {
		if q.PlayerID == playerID && sameDay(q.Day, day) {
			quests = append(quests, q)
		}
	}
	slices.SortFunc(quests, func(a, b domain.Quest) int { return cmp.Compare(a.ID, b.ID) })
	return quests, nil
}

func (t *memTx) CreateQuests(_ context.Context, quests []domain.Quest) error {
	st, err := t.state()
	if err != nil {
		return err
	}
	for i := range quests {
		for _, existing := range st.quests {
			if existing.PlayerID == quests[i].PlayerID && sameDay(existing.Day, quests[i].Day) && existing.Type == quests[i].Type {
				return fmt.Errorf("failed to create quests: duplicate %s quest", quests[i].Type)
			}
		}
		quests[i].ID = st.id()
		st.quests[quests[i].ID] = quests[i]
	}
	return nil
}

func (t *memTx) UpdateQuest(_ context.Context, q domain.Quest) error {
	st, err := t.state()
	if err != nil {
		return err
	}
	existing, ok := st.quests[q.ID]
	if !ok {
		return fmt.Errorf("%w: id %d", domain.ErrQuestNotFound, q.ID)
	}
	existing.Progress = q.Progress
	existing.Completed = q.Completed
	existing.Claimed = q.Claimed
	st.quests[q.ID] = existing
	return nil
}

func (t *memTx) Commit(context.Context) error {
	if t.st == nil {
		return repository.ErrTxClosed
	}
	t.store.mu.Lock()
	t.store.committed = t.st
	t.store.mu.Unlock()
	t.close()
	return nil
}

func (t *memTx) Rollback(context.Context) error {
	if t.st == nil {
		return repository.ErrTxClosed
	}
	t.close()
	return nil
}

func (t *memTx) close() {
	t.st = nil
	t.store.writeMu.Unlock()
}
