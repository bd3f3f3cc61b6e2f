package cart

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/muhammadheryan/storefront/application/pricing"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	redisrepo "github.com/muhammadheryan/storefront/repository/redis"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/logger"
	"github.com/muhammadheryan/storefront/utils/metrics"
	"go.uber.org/zap"
)

// Store is the single cart of one storefront session. The drawer and the checkout
// view both read this instance; every mutation goes through its methods.
type Store struct {
	redisRepo redisrepo.Repository
	key       string

	mu           sync.Mutex
	items        []model.CartItem
	drawerOpen   bool
	checkoutOpen bool
	subs         map[int]chan model.CartView
	nextSub      int
}

// Key is the storage key of a session's cart.
func Key(sessionID string) string {
	return constant.CartStorageKey + ":" + sessionID
}

// NewStore rehydrates the session cart from Redis. Unreadable or corrupt values
// leave the cart empty; corrupt values are removed.
func NewStore(ctx context.Context, redisRepo redisrepo.Repository, sessionID string) *Store {
	s := &Store{
		redisRepo: redisRepo,
		key:       Key(sessionID),
		subs:      make(map[int]chan model.CartView),
	}

	raw, err := redisRepo.Get(ctx, s.key)
	if err != nil {
		metrics.CartStorageFailures.WithLabelValues("load").Inc()
		logger.Warn("[NewStore] load cart", zap.String("key", s.key), zap.String("error", err.Error()))
		return s
	}
	if raw == "" {
		return s
	}

	var items []model.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		metrics.CartStorageFailures.WithLabelValues("corrupt").Inc()
		logger.Warn("[NewStore] discard corrupt cart", zap.String("key", s.key), zap.String("error", err.Error()))
		if err := redisRepo.Delete(ctx, s.key); err != nil {
			logger.Warn("[NewStore] delete corrupt cart", zap.String("key", s.key), zap.String("error", err.Error()))
		}
		return s
	}
	s.items = sanitize(items)
	return s
}

// sanitize drops lines an older or foreign writer may have left unusable.
func sanitize(items []model.CartItem) []model.CartItem {
	out := make([]model.CartItem, 0, len(items))
	seen := make(map[string]int, len(items))
	for _, it := range items {
		if it.ProductID == 0 || it.Quantity <= 0 || it.UnitPrice < 0 {
			continue
		}
		it.ID = model.CartItemKey(it.ProductID, it.VariantID)
		if i, ok := seen[it.ID]; ok {
			out[i].Quantity += it.Quantity
			continue
		}
		seen[it.ID] = len(out)
		out = append(out, it)
	}
	return out
}

// Add puts one unit of product (or the chosen variant) in the cart and opens the
// drawer. A line already present keeps its original price snapshot.
func (s *Store) Add(ctx context.Context, product model.Product, v *model.ProductVariant) (model.CartView, error) {
	if product.ID == 0 {
		return model.CartView{}, errors.SetCustomErrorWithDetails(constant.ErrInvalidRequest, "product_id")
	}

	line := newLine(product, v)

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexLocked(line.ID); i >= 0 {
		cur := &s.items[i]
		if line.MaxQuantity > 0 {
			cur.MaxQuantity = line.MaxQuantity
		}
		cur.Quantity = clamp(cur.Quantity+1, cur.MaxQuantity)
	} else {
		s.items = append(s.items, line)
	}
	s.drawerOpen = true

	s.commitLocked(ctx, "add")
	return s.viewLocked(), nil
}

func newLine(product model.Product, v *model.ProductVariant) model.CartItem {
	line := model.CartItem{
		ProductID:     product.ID,
		Name:          product.Name,
		UnitPrice:     product.Price,
		OriginalPrice: product.OriginalPrice,
		Quantity:      1,
		Image:         product.Image,
		Brand:         product.Brand,
	}
	if v != nil {
		id := v.ID
		line.VariantID = &id
		if v.Price > 0 {
			line.UnitPrice = v.Price
			line.OriginalPrice = v.OriginalPrice
		}
		if v.Image != "" {
			line.Image = v.Image
		}
		if label := variantLabel(*v); label != "" {
			line.Name += " - " + label
		}
		if v.Stock > 0 {
			line.MaxQuantity = int(v.Stock)
		}
	}
	line.ID = model.CartItemKey(line.ProductID, line.VariantID)
	return line
}

func variantLabel(v model.ProductVariant) string {
	var parts []string
	if v.Color != "" {
		parts = append(parts, v.Color)
	}
	if v.Size != "" {
		parts = append(parts, v.Size)
	}
	if v.HasFootrest != nil {
		if *v.HasFootrest {
			parts = append(parts, "footrest")
		} else {
			parts = append(parts, "no footrest")
		}
	}
	return strings.Join(parts, " / ")
}

// Remove deletes a line. Removing an absent line is a no-op.
func (s *Store) Remove(ctx context.Context, id string) model.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.removeLocked(id) {
		s.commitLocked(ctx, "remove")
	}
	return s.viewLocked()
}

// SetQuantity replaces a line's quantity in place; n <= 0 removes the line.
// Quantities above the stock snapshot are clamped.
func (s *Store) SetQuantity(ctx context.Context, id string, n int) (model.CartView, error) {
	if n <= 0 {
		return s.Remove(ctx, id), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return s.viewLocked(), errors.SetCustomErrorWithDetails(constant.ErrCartItemNotFound, id)
	}
	s.items[i].Quantity = clamp(n, s.items[i].MaxQuantity)

	s.commitLocked(ctx, "set_quantity")
	return s.viewLocked(), nil
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) model.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.commitLocked(ctx, "clear")
	return s.viewLocked()
}

// Deduct takes ordered quantities, keyed by line id, out of the cart. Lines added or
// topped up after the order was built keep the surplus.
func (s *Store) Deduct(ctx context.Context, ordered map[string]int) model.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, it := range s.items {
		it.Quantity -= ordered[it.ID]
		if it.Quantity > 0 {
			kept = append(kept, it)
		}
	}
	s.items = kept
	s.commitLocked(ctx, "deduct")
	return s.viewLocked()
}

// Items returns a copy of the current lines.
func (s *Store) Items() []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLocked()
}

func (s *Store) TotalItems() int {
	return s.View().TotalItems
}

func (s *Store) TotalPrice() int64 {
	return s.View().TotalPrice
}

// View is a consistent snapshot of lines, totals and overlay visibility.
func (s *Store) View() model.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// SetOverlays changes drawer and checkout visibility. Nil leaves a flag as is.
func (s *Store) SetOverlays(drawer, checkout *bool) model.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	if drawer != nil {
		s.drawerOpen = *drawer
	}
	if checkout != nil {
		s.checkoutOpen = *checkout
	}
	s.publishLocked()
	return s.viewLocked()
}

// CloseOverlays hides both the drawer and the checkout view.
func (s *Store) CloseOverlays() model.CartView {
	closed := false
	return s.SetOverlays(&closed, &closed)
}

// Subscribe delivers a snapshot after every change. Slow readers only see the
// latest snapshot.
func (s *Store) Subscribe() (<-chan model.CartView, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan model.CartView, 1)
	ch <- s.viewLocked()
	s.subs[id] = ch
	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(ch)
		}
	}
}

// Subscribers counts open Subscribe channels.
func (s *Store) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

func (s *Store) indexLocked(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) removeLocked(id string) bool {
	i := s.indexLocked(id)
	if i < 0 {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return true
}

func (s *Store) copyLocked() []model.CartItem {
	out := make([]model.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) viewLocked() model.CartView {
	items := s.copyLocked()
	total := 0
	for _, it := range items {
		total += it.Quantity
	}
	return model.CartView{
		Items:        items,
		TotalItems:   total,
		TotalPrice:   pricing.Subtotal(items),
		DrawerOpen:   s.drawerOpen,
		CheckoutOpen: s.checkoutOpen,
	}
}

// commitLocked persists the lines and notifies subscribers. A failed write is
// logged; the in-memory cart stays authoritative for the session.
func (s *Store) commitLocked(ctx context.Context, op string) {
	metrics.CartMutations.WithLabelValues(op).Inc()

	items := s.items
	if items == nil {
		items = []model.CartItem{}
	}
	raw, err := json.Marshal(items)
	if err == nil {
		err = s.redisRepo.Set(ctx, s.key, string(raw))
	}
	if err != nil {
		metrics.CartStorageFailures.WithLabelValues("save").Inc()
		logger.Warn("[Store] save cart", zap.String("op", op), zap.String("key", s.key), zap.String("error", err.Error()))
	}
	s.publishLocked()
}

func (s *Store) publishLocked() {
	view := s.viewLocked()
	for _, ch := range s.subs {
		select {
		case ch <- view:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- view
		}
	}
}

func clamp(n, max int) int {
	if max > 0 && n > max {
		return max
	}
	return n
}
