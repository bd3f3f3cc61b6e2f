package cart_test

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/muhammadheryan/storefront/application/cart"
	"github.com/muhammadheryan/storefront/constant"
	redismocks "github.com/muhammadheryan/storefront/mocks/repository/redis"
	"github.com/muhammadheryan/storefront/model"
	redisrepo "github.com/muhammadheryan/storefront/repository/redis"
	cerr "github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/logger"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var (
	chair = model.Product{ID: 7, Name: "Ergo Chair", Price: 2_000_000, Brand: "Sihoo", Image: "chair.jpg"}
	desk  = model.Product{ID: 9, Name: "Standing Desk", Price: 5_500_000}
)

func blackChair() *model.ProductVariant {
	return &model.ProductVariant{ID: 71, ProductID: 7, Color: "black", Price: 2_100_000, Stock: 3, Image: "black.jpg"}
}

func setup(t *testing.T) (redisrepo.Repository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redisrepo.NewRepository(client), mr
}

func TestStore_AddSnapshotsVariant(t *testing.T) {
	repo, _ := setup(t)
	ctx := context.Background()
	s := cart.NewStore(ctx, repo, "s1")

	view, err := s.Add(ctx, chair, blackChair())
	require.NoError(t, err)
	require.Len(t, view.Items, 1)

	line := view.Items[0]
	assert.Equal(t, "7-71", line.ID)
	assert.Equal(t, int64(2_100_000), line.UnitPrice)
	assert.Equal(t, "black.jpg", line.Image)
	assert.Equal(t, "Ergo Chair - black", line.Name)
	assert.Equal(t, 3, line.MaxQuantity)
	assert.True(t, view.DrawerOpen)
	assert.False(t, view.CheckoutOpen)
}

func TestStore_AddSameLineTwice(t *testing.T) {
	repo, _ := setup(t)
	ctx := context.Background()
	s := cart.NewStore(ctx, repo, "s1")

	_, err := s.Add(ctx, desk, nil)
	require.NoError(t, err)

	repriced := desk
	repriced.Price = 1
	view, err := s.Add(ctx, repriced, nil)
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.Equal(t, desk.Price, view.Items[0].UnitPrice)
}

func TestStore_ConcurrentAdds(t *testing.T) {
	repo, _ := setup(t)
	ctx := context.Background()
	s := cart.NewStore(ctx, repo, "s1")

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Add(ctx, desk, nil)
		}()
	}
	wg.Wait()

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, n, items[0].Quantity)
}

func TestStore_AddRejectsMissingProduct(t *testing.T) {
	repo, _ := setup(t)
	s := cart.NewStore(context.Background(), repo, "s1")

	_, err := s.Add(context.Background(), model.Product{}, nil)
	assert.Equal(t, constant.ErrInvalidRequest, cerr.TypeOf(err))
	assert.False(t, s.View().DrawerOpen)
}

func TestStore_SetQuantity(t *testing.T) {
	type args struct {
		id string
		n  int
	}
	tests := []struct {
		name    string
		args    args
		want    []model.CartItem
		wantErr bool
		errCode constant.ErrorType
	}{
		{
			name: "success: replace quantity",
			args: args{id: "9", n: 4},
			want: []model.CartItem{{ID: "7-71", Quantity: 1}, {ID: "9", Quantity: 4}},
		},
		{
			name: "success: clamp to stock snapshot",
			args: args{id: "7-71", n: 10},
			want: []model.CartItem{{ID: "7-71", Quantity: 3}, {ID: "9", Quantity: 1}},
		},
		{
			name: "success: zero removes",
			args: args{id: "9", n: 0},
			want: []model.CartItem{{ID: "7-71", Quantity: 1}},
		},
		{
			name: "success: negative removes",
			args: args{id: "7-71", n: -2},
			want: []model.CartItem{{ID: "9", Quantity: 1}},
		},
		{
			name:    "error: unknown line",
			args:    args{id: "404", n: 2},
			want:    []model.CartItem{{ID: "7-71", Quantity: 1}, {ID: "9", Quantity: 1}},
			wantErr: true,
			errCode: constant.ErrCartItemNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo, _ := setup(t)
			ctx := context.Background()
			s := cart.NewStore(ctx, repo, "s1")
			_, _ = s.Add(ctx, chair, blackChair())
			_, _ = s.Add(ctx, desk, nil)

			_, err := s.SetQuantity(ctx, tt.args.id, tt.args.n)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SetQuantity() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assert.Equal(t, tt.errCode, cerr.TypeOf(err))
			}

			got := s.Items()
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.Equal(t, tt.want[i].ID, got[i].ID)
				assert.Equal(t, tt.want[i].Quantity, got[i].Quantity)
			}
		})
	}
}

func TestStore_SetQuantityZeroEqualsRemove(t *testing.T) {
	repo, _ := setup(t)
	ctx := context.Background()

	a := cart.NewStore(ctx, repo, "a")
	b := cart.NewStore(ctx, repo, "b")
	for _, s := range []*cart.Store{a, b} {
		_, _ = s.Add(ctx, chair, nil)
		_, _ = s.Add(ctx, desk, nil)
	}

	_, err := a.SetQuantity(ctx, "7", 0)
	require.NoError(t, err)
	b.Remove(ctx, "7")

	assert.Equal(t, a.View(), b.View())
}

func TestStore_RemoveIsIdempotent(t *testing.T) {
	repo, _ := setup(t)
	ctx := context.Background()
	s := cart.NewStore(ctx, repo, "s1")
	_, _ = s.Add(ctx, desk, nil)

	s.Remove(ctx, "9")
	view := s.Remove(ctx, "9")
	assert.Empty(t, view.Items)
	assert.Zero(t, view.TotalItems)
}

func TestStore_TotalsMatchLines(t *testing.T) {
	repo, _ := setup(t)
	ctx := context.Background()
	s := cart.NewStore(ctx, repo, "prop")

	products := []model.Product{chair, desk, {ID: 11, Name: "Lamp", Price: 350_000}}
	variants := []*model.ProductVariant{nil, blackChair(), nil}
	rng := rand.New(rand.NewSource(42))

	for step := 0; step < 500; step++ {
		i := rng.Intn(len(products))
		p := products[i]
		var v *model.ProductVariant
		if p.ID == chair.ID {
			v = variants[rng.Intn(2)]
		}
		id := model.CartItemKey(p.ID, nil)
		if v != nil {
			id = model.CartItemKey(p.ID, &v.ID)
		}

		switch rng.Intn(3) {
		case 0:
			_, err := s.Add(ctx, p, v)
			require.NoError(t, err)
		case 1:
			s.Remove(ctx, id)
		case 2:
			_, _ = s.SetQuantity(ctx, id, rng.Intn(6)-1)
		}

		view := s.View()
		wantItems, wantPrice := 0, int64(0)
		seen := map[string]bool{}
		for _, it := range view.Items {
			require.False(t, seen[it.ID], "duplicate line %s", it.ID)
			seen[it.ID] = true
			require.Positive(t, it.Quantity)
			wantItems += it.Quantity
			wantPrice += it.UnitPrice * int64(it.Quantity)
		}
		require.Equal(t, wantItems, view.TotalItems)
		require.Equal(t, wantPrice, view.TotalPrice)
		require.Equal(t, wantItems, s.TotalItems())
		require.Equal(t, wantPrice, s.TotalPrice())
	}
}

func TestStore_PersistsAndRehydrates(t *testing.T) {
	repo, mr := setup(t)
	ctx := context.Background()

	s := cart.NewStore(ctx, repo, "s1")
	_, _ = s.Add(ctx, chair, blackChair())
	_, _ = s.Add(ctx, desk, nil)
	_, _ = s.SetQuantity(ctx, "9", 2)

	raw, err := mr.Get(cart.Key("s1"))
	require.NoError(t, err)
	var stored []model.CartItem
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Len(t, stored, 2)

	again := cart.NewStore(ctx, repo, "s1")
	assert.Equal(t, s.Items(), again.Items())
	assert.False(t, again.View().DrawerOpen)

	s.Clear(ctx)
	raw, _ = mr.Get(cart.Key("s1"))
	assert.Equal(t, "[]", raw)
}

func TestStore_RehydrateToleratesShapeDrift(t *testing.T) {
	repo, mr := setup(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(cart.Key("s1"), `[
		{"product_id":9,"name":"Standing Desk","price":5500000,"quantity":1,"color":"white"},
		{"product_id":9,"price":5500000,"quantity":2},
		{"product_id":0,"quantity":3},
		{"product_id":11,"price":100,"quantity":0}
	]`))

	s := cart.NewStore(ctx, repo, "s1")
	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "9", items[0].ID)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestStore_CorruptStorageIsDiscarded(t *testing.T) {
	repo, mr := setup(t)
	require.NoError(t, mr.Set(cart.Key("s1"), `{"items": nope`))

	core, logs := observer.New(zapcore.WarnLevel)
	defer logger.Replace(zap.New(core))()

	s := cart.NewStore(context.Background(), repo, "s1")

	assert.Empty(t, s.Items())
	assert.False(t, mr.Exists(cart.Key("s1")))
	assert.Equal(t, 1, logs.FilterMessage("[NewStore] discard corrupt cart").Len())
}

func TestStore_StorageFailuresAreNotReturned(t *testing.T) {
	repo := redismocks.NewRepository(t)
	ctx := context.Background()
	repo.On("Get", mock.Anything, cart.Key("s1")).Return("", errors.New("dial tcp: refused")).Once()
	repo.On("Set", mock.Anything, cart.Key("s1"), mock.Anything).Return(errors.New("dial tcp: refused")).Once()

	s := cart.NewStore(ctx, repo, "s1")
	view, err := s.Add(ctx, desk, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, view.TotalItems)
}

func TestStore_OverlaysOnlyChangeOnAdd(t *testing.T) {
	repo, _ := setup(t)
	ctx := context.Background()
	s := cart.NewStore(ctx, repo, "s1")

	_, _ = s.Add(ctx, desk, nil)
	open := true
	s.SetOverlays(nil, &open)
	view := s.View()
	assert.True(t, view.DrawerOpen)
	assert.True(t, view.CheckoutOpen)

	_, _ = s.SetQuantity(ctx, "9", 3)
	s.Remove(ctx, "404")
	view = s.View()
	assert.True(t, view.DrawerOpen)
	assert.True(t, view.CheckoutOpen)

	view = s.CloseOverlays()
	assert.False(t, view.DrawerOpen)
	assert.False(t, view.CheckoutOpen)
	assert.Equal(t, 3, view.TotalItems)
}

func TestStore_SubscribersSeeSameStore(t *testing.T) {
	repo, _ := setup(t)
	ctx := context.Background()
	s := cart.NewStore(ctx, repo, "s1")

	drawer, stopDrawer := s.Subscribe()
	checkout, stopCheckout := s.Subscribe()
	defer stopCheckout()

	initial := <-drawer
	assert.Zero(t, initial.TotalItems)
	<-checkout

	_, _ = s.Add(ctx, desk, nil)
	_, _ = s.SetQuantity(ctx, "9", 5)

	assert.Equal(t, 5, (<-drawer).TotalItems)
	assert.Equal(t, 5, (<-checkout).TotalItems)

	stopDrawer()
	_, ok := <-drawer
	assert.False(t, ok)
}

func TestStore_Deduct(t *testing.T) {
	repo, mr := setup(t)
	ctx := context.Background()
	s := cart.NewStore(ctx, repo, "s1")
	for i := 0; i < 3; i++ {
		_, err := s.Add(ctx, desk, nil)
		require.NoError(t, err)
	}
	_, err := s.Add(ctx, chair, nil)
	require.NoError(t, err)

	view := s.Deduct(ctx, map[string]int{"9": 2, "7": 1, "404": 1})

	require.Len(t, view.Items, 1)
	assert.Equal(t, "9", view.Items[0].ID)
	assert.Equal(t, 1, view.Items[0].Quantity)
	raw, err := mr.Get(cart.Key("s1"))
	require.NoError(t, err)
	assert.NotContains(t, raw, `"product_id":7`)
}
