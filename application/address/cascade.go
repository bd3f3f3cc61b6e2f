// Package address implements the province, district and ward cascade used by the
// shipping step, and membership validation for addresses submitted by code.
package address

import (
	"context"
	"sync"
	"time"

	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/logger"
	"github.com/muhammadheryan/storefront/utils/metrics"
	"go.uber.org/zap"
)

// RegionLoader fetches the option list of each level.
type RegionLoader interface {
	Provinces(ctx context.Context) ([]model.Region, error)
	Districts(ctx context.Context, provinceCode int) ([]model.Region, error)
	Wards(ctx context.Context, districtCode int) ([]model.Region, error)
}

// Cascade owns one shipping-address selection. Selecting a province or district
// clears every level below it and starts an asynchronous load of the next list;
// results that arrive after the selection moved on are discarded.
type Cascade struct {
	loader  RegionLoader
	timeout time.Duration

	base   context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	state    State
	inflight [3]context.CancelFunc
	subs     map[int]chan State
	nextSub  int
	started  bool

	wg sync.WaitGroup
}

// NewCascade builds a cascade; loadTimeout bounds each list fetch (0 means none).
func NewCascade(loader RegionLoader, loadTimeout time.Duration) *Cascade {
	base, cancel := context.WithCancel(context.Background())
	return &Cascade{
		loader:  loader,
		timeout: loadTimeout,
		base:    base,
		cancel:  cancel,
		subs:    make(map[int]chan State),
	}
}

// Init loads the province list. Only the first call fetches.
func (c *Cascade) Init() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started {
		return
	}
	c.started = true
	c.startLoadLocked(LevelProvince, 0)
}

// SelectProvince selects a province from the loaded list, resets district and ward,
// and loads the districts of the new province.
func (c *Cascade) SelectProvince(region model.Region) error {
	return c.selectAndLoad(LevelProvince, region)
}

// SelectDistrict selects a district of the current province, resets the ward and
// loads its wards.
func (c *Cascade) SelectDistrict(region model.Region) error {
	return c.selectAndLoad(LevelDistrict, region)
}

// SelectWard only records the ward.
func (c *Cascade) SelectWard(region model.Region) error {
	return c.selectAndLoad(LevelWard, region)
}

// Retry reissues the load of a level whose last fetch failed.
func (c *Cascade) Retry(level Level) {
	c.mu.Lock()
	defer c.mu.Unlock()
	parent := 0
	if level > LevelProvince {
		parent = c.state.Levels[level-1].Selected.Code
		if parent == 0 {
			return
		}
	}
	c.state.Levels[level].Token++
	c.startLoadLocked(level, parent)
}

func (c *Cascade) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Address returns the currently selected regions.
func (c *Cascade) Address() model.ShippingAddress {
	return c.State().Address()
}

// Subscribe delivers the latest state after every transition. Slow readers only see
// the most recent state.
func (c *Cascade) Subscribe() (<-chan State, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextSub
	c.nextSub++
	ch := make(chan State, 1)
	c.subs[id] = ch
	return ch, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if _, ok := c.subs[id]; ok {
			delete(c.subs, id)
			close(ch)
		}
	}
}

// Settle blocks until no load is in flight.
func (c *Cascade) Settle() {
	c.wg.Wait()
}

// Close cancels every in-flight load.
func (c *Cascade) Close() {
	c.cancel()
	c.wg.Wait()
}

func (c *Cascade) selectAndLoad(level Level, region model.Region) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, ok := Reduce(c.state, Action{Kind: ActionSelect, Level: level, Region: region})
	if !ok {
		return errors.SetCustomErrorWithDetails(constant.ErrInvalidAddress, level.String())
	}
	c.state = next
	for d := level + 1; d <= LevelWard; d++ {
		if cancel := c.inflight[d]; cancel != nil {
			cancel()
			c.inflight[d] = nil
		}
	}
	c.publishLocked()

	if level < LevelWard {
		c.startLoadLocked(level+1, region.Code)
	}
	return nil
}

func (c *Cascade) startLoadLocked(level Level, parent int) {
	if cancel := c.inflight[level]; cancel != nil {
		cancel()
	}
	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if c.timeout > 0 {
		ctx, cancel = context.WithTimeout(c.base, c.timeout)
	} else {
		ctx, cancel = context.WithCancel(c.base)
	}
	c.inflight[level] = cancel

	token := c.state.Levels[level].Token
	c.dispatchLocked(Action{Kind: ActionLoadStarted, Level: level, Token: token, Parent: parent})

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer cancel()

		options, err := c.fetch(ctx, level, parent)

		c.mu.Lock()
		defer c.mu.Unlock()
		if err != nil {
			if ctx.Err() == context.Canceled {
				// superseded by a newer selection
				metrics.CascadeStaleDropped.WithLabelValues(level.String()).Inc()
				return
			}
			logger.Warn("[Cascade] load regions", zap.String("level", level.String()), zap.Int("parent", parent), zap.String("error", err.Error()))
			c.dispatchLocked(Action{Kind: ActionLoadFailed, Level: level, Token: token, Parent: parent, Err: err})
			return
		}
		if !c.dispatchLocked(Action{Kind: ActionLoaded, Level: level, Token: token, Parent: parent, Options: options}) {
			metrics.CascadeStaleDropped.WithLabelValues(level.String()).Inc()
			logger.Debug("[Cascade] stale region list dropped", zap.String("level", level.String()), zap.Int("parent", parent))
		}
	}()
}

func (c *Cascade) fetch(ctx context.Context, level Level, parent int) ([]model.Region, error) {
	switch level {
	case LevelProvince:
		return c.loader.Provinces(ctx)
	case LevelDistrict:
		return c.loader.Districts(ctx, parent)
	default:
		return c.loader.Wards(ctx, parent)
	}
}

func (c *Cascade) dispatchLocked(a Action) bool {
	next, ok := Reduce(c.state, a)
	if !ok {
		return false
	}
	c.state = next
	c.publishLocked()
	return true
}

func (c *Cascade) publishLocked() {
	for _, ch := range c.subs {
		select {
		case ch <- c.state:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- c.state
		}
	}
}

// Validate checks that district belongs to province and ward to district.
func Validate(ctx context.Context, loader RegionLoader, addr model.ShippingAddress) error {
	if !addr.Province.Selected() || !addr.District.Selected() || !addr.Ward.Selected() {
		return errors.SetCustomErrorWithDetails(constant.ErrInvalidAddress, "province, district and ward are required")
	}

	provinces, err := loader.Provinces(ctx)
	if err != nil {
		return err
	}
	if !contains(provinces, addr.Province.Code) {
		return errors.SetCustomErrorWithDetails(constant.ErrInvalidAddress, LevelProvince.String())
	}

	districts, err := loader.Districts(ctx, addr.Province.Code)
	if err != nil {
		return err
	}
	if !contains(districts, addr.District.Code) {
		return errors.SetCustomErrorWithDetails(constant.ErrInvalidAddress, LevelDistrict.String())
	}

	wards, err := loader.Wards(ctx, addr.District.Code)
	if err != nil {
		return err
	}
	if !contains(wards, addr.Ward.Code) {
		return errors.SetCustomErrorWithDetails(constant.ErrInvalidAddress, LevelWard.String())
	}
	return nil
}

// Resolve fills region names from the loaded lists, for addresses submitted by code.
// It fails when a code does not belong to its parent.
func Resolve(ctx context.Context, loader RegionLoader, provinceCode, districtCode, wardCode int) (model.ShippingAddress, error) {
	var addr model.ShippingAddress

	provinces, err := loader.Provinces(ctx)
	if err != nil {
		return addr, err
	}
	if addr.Province = find(provinces, provinceCode); !addr.Province.Selected() {
		return addr, errors.SetCustomErrorWithDetails(constant.ErrInvalidAddress, LevelProvince.String())
	}

	districts, err := loader.Districts(ctx, provinceCode)
	if err != nil {
		return addr, err
	}
	if addr.District = find(districts, districtCode); !addr.District.Selected() {
		return addr, errors.SetCustomErrorWithDetails(constant.ErrInvalidAddress, LevelDistrict.String())
	}

	wards, err := loader.Wards(ctx, districtCode)
	if err != nil {
		return addr, err
	}
	if addr.Ward = find(wards, wardCode); !addr.Ward.Selected() {
		return addr, errors.SetCustomErrorWithDetails(constant.ErrInvalidAddress, LevelWard.String())
	}
	return addr, nil
}

func find(options []model.Region, code int) model.Region {
	for _, o := range options {
		if o.Code == code {
			return o
		}
	}
	return model.Region{}
}
