// Package session keeps the per-visitor storefront state: a cart, an address
// cascade and a checkout form, keyed by the session id sent by the client.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/muhammadheryan/storefront/application/address"
	"github.com/muhammadheryan/storefront/application/cart"
	"github.com/muhammadheryan/storefront/application/checkout"
	"github.com/muhammadheryan/storefront/cmd/config"
	orderrepo "github.com/muhammadheryan/storefront/repository/order"
	redisrepo "github.com/muhammadheryan/storefront/repository/redis"
	"github.com/muhammadheryan/storefront/utils/logger"
	"github.com/muhammadheryan/storefront/utils/metrics"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type Session struct {
	ID       string
	Cart     *cart.Store
	Cascade  *address.Cascade
	Checkout *checkout.Orchestrator

	mu       sync.Mutex
	lastSeen time.Time
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

type Registry struct {
	cfg       *config.Config
	redisRepo redisrepo.Repository
	regions   address.RegionLoader
	orderRepo orderrepo.OrderRepository
	now       func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
	group    singleflight.Group
}

func NewRegistry(cfg *config.Config, redisRepo redisrepo.Repository, regions address.RegionLoader, orderRepo orderrepo.OrderRepository) *Registry {
	return &Registry{
		cfg:       cfg,
		redisRepo: redisRepo,
		regions:   regions,
		orderRepo: orderRepo,
		now:       time.Now,
		sessions:  make(map[string]*Session),
	}
}

// Get returns the session for id, creating it on first use. A new session
// rehydrates its cart from Redis and starts loading the province list.
func (r *Registry) Get(ctx context.Context, id string) *Session {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if ok {
		s.touch(r.now())
		return s
	}

	v, _, _ := r.group.Do(id, func() (interface{}, error) {
		r.mu.RLock()
		existing, ok := r.sessions[id]
		r.mu.RUnlock()
		if ok {
			return existing, nil
		}

		created := r.create(context.WithoutCancel(ctx), id)
		r.mu.Lock()
		r.sessions[id] = created
		n := len(r.sessions)
		r.mu.Unlock()
		metrics.ActiveSessions.Set(float64(n))
		return created, nil
	})
	s = v.(*Session)
	s.touch(r.now())
	return s
}

func (r *Registry) create(ctx context.Context, id string) *Session {
	store := cart.NewStore(ctx, r.redisRepo, id)
	cascade := address.NewCascade(r.regions, r.cfg.StoreAPI.Timeout)
	cascade.Init()
	logger.Info("[Registry] session created", zap.String("session_id", id), zap.Int("cart_items", store.TotalItems()))
	return &Session{
		ID:       id,
		Cart:     store,
		Cascade:  cascade,
		Checkout: checkout.NewOrchestrator(r.cfg.Checkout, store, cascade, r.orderRepo),
	}
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep drops sessions idle for longer than the configured TTL. Their carts stay
// in Redis and come back on the next request. A session with an open cart stream
// is never idle: the stream holds its store and must keep seeing every change.
func (r *Registry) Sweep() int {
	cutoff := r.now().Add(-r.cfg.Session.IdleTTL)

	r.mu.Lock()
	var idle []*Session
	for id, s := range r.sessions {
		if s.idleSince().Before(cutoff) && s.Cart.Subscribers() == 0 {
			idle = append(idle, s)
			delete(r.sessions, id)
		}
	}
	n := len(r.sessions)
	r.mu.Unlock()

	for _, s := range idle {
		s.Cascade.Close()
	}
	metrics.ActiveSessions.Set(float64(n))
	if len(idle) > 0 {
		logger.Info("[Registry] swept idle sessions", zap.Int("swept", len(idle)), zap.Int("active", n))
	}
	return len(idle)
}

// Run sweeps on every interval until ctx is done.
func (r *Registry) Run(ctx context.Context) {
	interval := r.cfg.Session.SweepInterval
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

// Close stops every cascade.
func (r *Registry) Close() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()
	for _, s := range sessions {
		s.Cascade.Close()
	}
	metrics.ActiveSessions.Set(0)
}
