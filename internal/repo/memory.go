package repo

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/auction-order-service/internal/entities"
)

// memoryStore keeps orders and ratings in process. It doubles as the transaction manager:
// writes made inside Do are staged and applied atomically on commit, after re-checking order
// versions and rating uniqueness under the store lock.
type memoryStore struct {
	mu      sync.RWMutex
	orders  map[string]entities.Order
	ratings []entities.RatingEvent
	now     func() time.Time
}

type memTxKey struct{}

type stagedOrder struct {
	order    entities.Order
	expected int
}

type memTx struct {
	created  map[string]entities.Order
	updated  map[string]stagedOrder
	appended []entities.RatingEvent
	edited   map[string]entities.RatingEvent
}

func newMemTx() *memTx {
	return &memTx{
		created: make(map[string]entities.Order),
		updated: make(map[string]stagedOrder),
		edited:  make(map[string]entities.RatingEvent),
	}
}

func NewMemoryStore() *memoryStore {
	return &memoryStore{
		orders: make(map[string]entities.Order),
		now:    entities.Now,
	}
}

func extractMemTx(ctx context.Context) *memTx {
	tx, _ := ctx.Value(memTxKey{}).(*memTx)
	return tx
}

func (s *memoryStore) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	if extractMemTx(ctx) != nil {
		return callback(ctx)
	}

	tx := newMemTx()
	if err := callback(context.WithValue(ctx, memTxKey{}, tx)); err != nil {
		return err
	}
	return s.commit(tx)
}

// write runs fn against the unit of work bound to ctx, or against a fresh one committed right away.
func (s *memoryStore) write(ctx context.Context, fn func(tx *memTx) error) error {
	if tx := extractMemTx(ctx); tx != nil {
		return fn(tx)
	}
	tx := newMemTx()
	if err := fn(tx); err != nil {
		return err
	}
	return s.commit(tx)
}

func (s *memoryStore) commit(tx *memTx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, st := range tx.updated {
		stored, ok := s.orders[id]
		if !ok {
			if _, created := tx.created[id]; created {
				continue
			}
			return entities.ErrOrderNotFound
		}
		if stored.Version != st.expected {
			return fmt.Errorf("%w: order %s was modified concurrently", entities.ErrConflict, id)
		}
	}
	for _, r := range tx.appended {
		if conflictsWith(s.ratings, r) {
			return fmt.Errorf("%w: %s already rated order %s", entities.ErrAlreadyRated, r.FromUserID, r.OrderID)
		}
	}
	for id := range tx.edited {
		if idx := s.ratingIndex(id); idx < 0 {
			return entities.ErrRatingNotFound
		}
	}

	for id, o := range tx.created {
		if !s.auctionTaken(o) {
			s.orders[id] = o
		}
	}
	for id, st := range tx.updated {
		s.orders[id] = st.order
	}
	s.ratings = append(s.ratings, tx.appended...)
	for id, r := range tx.edited {
		s.ratings[s.ratingIndex(id)] = r
	}
	return nil
}

func (s *memoryStore) auctionTaken(o entities.Order) bool {
	if _, ok := s.orders[o.ID]; ok {
		return true
	}
	for _, existing := range s.orders {
		if existing.AuctionID == o.AuctionID {
			return true
		}
	}
	return false
}

func (s *memoryStore) ratingIndex(id string) int {
	return slices.IndexFunc(s.ratings, func(r entities.RatingEvent) bool {
		return r.ID == id && !r.IsCancelledTransaction
	})
}

// conflictsWith reports whether r would be a second voluntary rating of the same author,
// or a second penalty on the same order.
func conflictsWith(existing []entities.RatingEvent, r entities.RatingEvent) bool {
	return slices.ContainsFunc(existing, func(e entities.RatingEvent) bool {
		if e.OrderID != r.OrderID || e.IsCancelledTransaction != r.IsCancelledTransaction {
			return false
		}
		return r.IsCancelledTransaction || e.FromUserID == r.FromUserID
	})
}

func (s *memoryStore) visibleOrder(tx *memTx, id string) (entities.Order, bool) {
	if tx != nil {
		if st, ok := tx.updated[id]; ok {
			return st.order, true
		}
		if o, ok := tx.created[id]; ok {
			return o, true
		}
	}
	o, ok := s.orders[id]
	return o, ok
}

func (s *memoryStore) visibleRatings(tx *memTx) []entities.RatingEvent {
	ratings := slices.Clone(s.ratings)
	if tx == nil {
		return ratings
	}
	for i, r := range ratings {
		if edited, ok := tx.edited[r.ID]; ok {
			ratings[i] = edited
		}
	}
	return append(ratings, tx.appended...)
}

func (s *memoryStore) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.visibleOrder(extractMemTx(ctx), orderID)
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return o.Clone(), nil
}

func (s *memoryStore) CreateOrder(ctx context.Context, o entities.Order) (bool, error) {
	created := false
	err := s.write(ctx, func(tx *memTx) error {
		s.mu.RLock()
		defer s.mu.RUnlock()

		if _, ok := s.visibleOrder(tx, o.ID); ok || s.auctionTaken(o) {
			return nil
		}
		tx.created[o.ID] = o.Clone()
		created = true
		return nil
	})
	return created, err
}

func (s *memoryStore) UpdateOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	var updated entities.Order
	err := s.write(ctx, func(tx *memTx) error {
		s.mu.RLock()
		defer s.mu.RUnlock()

		current, ok := s.visibleOrder(tx, o.ID)
		if !ok {
			return entities.ErrOrderNotFound
		}
		if current.Version != o.Version {
			return fmt.Errorf("%w: order %s was modified concurrently", entities.ErrConflict, o.ID)
		}

		expected := o.Version
		if st, ok := tx.updated[o.ID]; ok {
			expected = st.expected
		}

		updated = o.Clone()
		updated.Version = o.Version + 1
		updated.UpdatedAt = s.now()
		tx.updated[o.ID] = stagedOrder{order: updated.Clone(), expected: expected}
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}
	return updated, nil
}

func (s *memoryStore) AppendRating(ctx context.Context, e entities.RatingEvent) error {
	return s.write(ctx, func(tx *memTx) error {
		s.mu.RLock()
		defer s.mu.RUnlock()

		if conflictsWith(s.visibleRatings(tx), e) {
			return fmt.Errorf("%w: %s already rated order %s", entities.ErrAlreadyRated, e.FromUserID, e.OrderID)
		}
		tx.appended = append(tx.appended, e)
		return nil
	})
}

func (s *memoryStore) UpdateRating(ctx context.Context, e entities.RatingEvent) error {
	return s.write(ctx, func(tx *memTx) error {
		s.mu.RLock()
		defer s.mu.RUnlock()

		if s.ratingIndex(e.ID) < 0 {
			return entities.ErrRatingNotFound
		}
		tx.edited[e.ID] = e
		return nil
	})
}

func (s *memoryStore) GetRating(ctx context.Context, orderID, fromUserID string) (entities.RatingEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.visibleRatings(extractMemTx(ctx)) {
		if r.OrderID == orderID && r.FromUserID == fromUserID && !r.IsCancelledTransaction {
			return r, nil
		}
	}
	return entities.RatingEvent{}, entities.ErrRatingNotFound
}

func (s *memoryStore) HasRated(ctx context.Context, orderID, fromUserID string) (bool, error) {
	_, err := s.GetRating(ctx, orderID, fromUserID)
	if errors.Is(err, entities.ErrRatingNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (s *memoryStore) ListRatingsByOrder(ctx context.Context, orderID string) ([]entities.RatingEvent, error) {
	return s.filterRatings(ctx, func(r entities.RatingEvent) bool { return r.OrderID == orderID }), nil
}

func (s *memoryStore) ListRatingsFor(ctx context.Context, userID string) ([]entities.RatingEvent, error) {
	ratings := s.filterRatings(ctx, func(r entities.RatingEvent) bool { return r.ToUserID == userID })
	slices.Reverse(ratings)
	return ratings, nil
}

func (s *memoryStore) filterRatings(ctx context.Context, keep func(entities.RatingEvent) bool) []entities.RatingEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]entities.RatingEvent, 0)
	for _, r := range s.visibleRatings(extractMemTx(ctx)) {
		if keep(r) {
			result = append(result, r)
		}
	}
	return result
}
