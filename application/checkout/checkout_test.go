package checkout_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/muhammadheryan/storefront/application/address"
	"github.com/muhammadheryan/storefront/application/cart"
	"github.com/muhammadheryan/storefront/application/checkout"
	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/muhammadheryan/storefront/constant"
	ordermocks "github.com/muhammadheryan/storefront/mocks/repository/order"
	"github.com/muhammadheryan/storefront/model"
	redisrepo "github.com/muhammadheryan/storefront/repository/redis"
	cerr "github.com/muhammadheryan/storefront/utils/errors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type staticRegions struct{}

func (staticRegions) Provinces(context.Context) ([]model.Region, error) {
	return []model.Region{{Code: 79, Name: "Ho Chi Minh"}}, nil
}

func (staticRegions) Districts(context.Context, int) ([]model.Region, error) {
	return []model.Region{{Code: 760, Name: "Quan 1"}}, nil
}

func (staticRegions) Wards(context.Context, int) ([]model.Region, error) {
	return []model.Region{{Code: 26734, Name: "Tan Dinh"}}, nil
}

var checkoutCfg = config.CheckoutConfig{
	PointValue:         decimal.NewFromInt(1),
	MaxPointsPerOrder:  500,
	DefaultShippingFee: 0,
}

type fixture struct {
	store   *cart.Store
	cascade *address.Cascade
	orders  *ordermocks.OrderRepository
	orch    *checkout.Orchestrator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := cart.NewStore(context.Background(), redisrepo.NewRepository(client), "s1")
	cascade := address.NewCascade(staticRegions{}, time.Second)
	t.Cleanup(cascade.Close)
	orders := ordermocks.NewOrderRepository(t)

	return &fixture{
		store:   store,
		cascade: cascade,
		orders:  orders,
		orch:    checkout.NewOrchestrator(checkoutCfg, store, cascade, orders),
	}
}

func (f *fixture) addProduct(t *testing.T, id uint64, price int64) {
	t.Helper()
	_, err := f.store.Add(context.Background(), model.Product{ID: id, Name: "item", Price: price}, nil)
	require.NoError(t, err)
}

// complete fills every mandatory step.
func (f *fixture) complete(t *testing.T) {
	t.Helper()
	f.cascade.Init()
	f.cascade.Settle()
	require.NoError(t, f.cascade.SelectProvince(model.Region{Code: 79, Name: "Ho Chi Minh"}))
	f.cascade.Settle()
	require.NoError(t, f.cascade.SelectDistrict(model.Region{Code: 760, Name: "Quan 1"}))
	f.cascade.Settle()
	require.NoError(t, f.cascade.SelectWard(model.Region{Code: 26734, Name: "Tan Dinh"}))

	f.orch.SetBuyerInfo(model.BuyerInfo{FullName: "Nguyen Van A", Phone: "0900000000"})
	f.orch.SetAddressDetail("12 Hai Ba Trung", "")
	f.orch.SelectPaymentMethod("cod")
}

func TestSteps(t *testing.T) {
	addr := model.ShippingAddress{
		Province: model.Region{Code: 1, Name: "P"},
		District: model.Region{Code: 2, Name: "D"},
		Ward:     model.Region{Code: 3, Name: "W"},
		Detail:   "12 street",
	}

	tests := []struct {
		name string
		form checkout.Form
		want []constant.CheckoutStep
	}{
		{
			name: "empty form",
			form: checkout.Form{},
			want: []constant.CheckoutStep{constant.StepBuyerInfo, constant.StepShipping, constant.StepPayment},
		},
		{
			name: "profile phone satisfies buyer info",
			form: checkout.Form{Profile: &model.Profile{Phone: "0900"}, Address: addr, PaymentMethod: "cod"},
			want: nil,
		},
		{
			name: "blank name",
			form: checkout.Form{Buyer: model.BuyerInfo{FullName: "  ", Phone: "0900"}, Address: addr, PaymentMethod: "cod"},
			want: []constant.CheckoutStep{constant.StepBuyerInfo},
		},
		{
			name: "ward missing",
			form: checkout.Form{
				Buyer:         model.BuyerInfo{FullName: "A", Phone: "0900"},
				Address:       model.ShippingAddress{Province: addr.Province, District: addr.District, Detail: "x"},
				PaymentMethod: "cod",
			},
			want: []constant.CheckoutStep{constant.StepShipping},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checkout.Missing(tt.form))
			steps := checkout.Steps(tt.form)
			require.Len(t, steps, len(constant.CheckoutSteps))
			assert.True(t, steps[3].Optional)
			assert.True(t, steps[3].Completed)
			assert.True(t, steps[4].Completed)
		})
	}
}

func TestOrchestrator_ApplyVoucherBelowMinimum(t *testing.T) {
	f := newFixture(t)
	f.addProduct(t, 1, 500_000)

	v := &model.Voucher{ID: 3, Code: "BIG", DiscountAmount: 50_000, MinOrderValue: 600_000}
	before := f.orch.Summary()

	view, err := f.orch.ApplyVoucher(v)
	require.Error(t, err)
	assert.Equal(t, constant.ErrVoucherMinOrder, cerr.TypeOf(err))
	assert.Nil(t, view.Voucher)
	assert.Equal(t, before, f.orch.Summary())
	assert.Equal(t, int64(500_000), f.orch.Summary().GrandTotal)
}

func TestOrchestrator_ApplyVoucherExpired(t *testing.T) {
	f := newFixture(t)
	f.addProduct(t, 1, 500_000)

	v := &model.Voucher{ID: 3, Code: "OLD", DiscountAmount: 50_000, ExpiresAt: time.Now().Add(-time.Hour)}
	_, err := f.orch.ApplyVoucher(v)
	assert.Equal(t, constant.ErrVoucherExpired, cerr.TypeOf(err))
}

func TestOrchestrator_PointsClampedToCap(t *testing.T) {
	f := newFixture(t)
	f.addProduct(t, 1, 300_000)
	f.orch.SetProfile(&model.Profile{UserID: 5, Name: "A", RewardPoints: 1000})

	view := f.orch.SetPoints(true, 1000)
	assert.Equal(t, int64(500), view.Points.Points)
	assert.Equal(t, int64(500), view.Points.Cap)
	assert.Equal(t, int64(299_500), view.Summary.GrandTotal)

	view = f.orch.SetPoints(false, 1000)
	assert.Equal(t, int64(300_000), view.Summary.GrandTotal)
}

func TestOrchestrator_VoucherDroppedWhenCartShrinks(t *testing.T) {
	f := newFixture(t)
	f.addProduct(t, 1, 400_000)
	f.addProduct(t, 2, 300_000)
	f.complete(t)

	_, err := f.orch.ApplyVoucher(&model.Voucher{ID: 3, Code: "BIG", DiscountAmount: 50_000, MinOrderValue: 600_000})
	require.NoError(t, err)
	assert.Equal(t, int64(650_000), f.orch.Summary().GrandTotal)

	f.store.Remove(context.Background(), "2")
	assert.Equal(t, int64(400_000), f.orch.Summary().GrandTotal)

	_, err = f.orch.Submit(context.Background())
	assert.Equal(t, constant.ErrVoucherMinOrder, cerr.TypeOf(err))
}

func TestOrchestrator_Submit(t *testing.T) {
	type mockCall struct {
		create *model.OrderSummary
		err    error
	}

	tests := []struct {
		name     string
		prepare  func(t *testing.T, f *fixture)
		mockCall *mockCall
		want     *model.SubmitResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "empty name blocks submit",
			prepare: func(t *testing.T, f *fixture) {
				f.addProduct(t, 1, 100_000)
				f.complete(t)
				f.orch.SetBuyerInfo(model.BuyerInfo{FullName: "", Phone: "0900000000"})
			},
			wantErr: true,
			errCode: constant.ErrCheckoutIncomplete,
		},
		{
			name: "empty cart",
			prepare: func(t *testing.T, f *fixture) {
				f.complete(t)
			},
			wantErr: true,
			errCode: constant.ErrCartEmpty,
		},
		{
			name: "upstream rejects",
			prepare: func(t *testing.T, f *fixture) {
				f.addProduct(t, 1, 100_000)
				f.complete(t)
			},
			mockCall: &mockCall{err: cerr.SetCustomErrorWithDetails(constant.ErrUpstream, "out of stock")},
			wantErr:  true,
			errCode:  constant.ErrUpstream,
		},
		{
			name: "transport error becomes internal",
			prepare: func(t *testing.T, f *fixture) {
				f.addProduct(t, 1, 100_000)
				f.complete(t)
			},
			mockCall: &mockCall{err: errors.New("boom")},
			wantErr:  true,
			errCode:  constant.ErrInternal,
		},
		{
			name: "success",
			prepare: func(t *testing.T, f *fixture) {
				f.addProduct(t, 1, 100_000)
				f.complete(t)
			},
			mockCall: &mockCall{create: &model.OrderSummary{ID: "ORD-1"}},
			want:     &model.SubmitResponse{OrderID: "ORD-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.prepare(t, f)
			itemsBefore := f.store.Items()

			if tt.mockCall != nil {
				f.orders.On("Create", mock.Anything, mock.AnythingOfType("*model.OrderRequest"), mock.AnythingOfType("string")).
					Return(tt.mockCall.create, tt.mockCall.err).Once()
			}

			got, err := f.orch.Submit(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.errCode, cerr.TypeOf(err))
				assert.Equal(t, itemsBefore, f.store.Items())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrchestrator_SubmitIncompleteListsSteps(t *testing.T) {
	f := newFixture(t)
	f.addProduct(t, 1, 100_000)

	_, err := f.orch.Submit(context.Background())
	require.Error(t, err)
	ce, ok := err.(cerr.CustomError)
	require.True(t, ok)
	assert.Equal(t, []string{"buyer information", "shipping address", "payment method"}, ce.Details())
	f.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrchestrator_SubmitSuccessResetsSession(t *testing.T) {
	f := newFixture(t)
	f.addProduct(t, 1, 700_000)
	f.complete(t)
	f.orch.SetProfile(&model.Profile{UserID: 5, Name: "A", RewardPoints: 100})
	f.orch.SetPoints(true, 100)
	_, err := f.orch.ApplyVoucher(&model.Voucher{ID: 3, Code: "BIG", DiscountAmount: 50_000, MinOrderValue: 600_000})
	require.NoError(t, err)
	open := true
	f.store.SetOverlays(&open, &open)

	var sent *model.OrderRequest
	f.orders.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { sent = args.Get(1).(*model.OrderRequest) }).
		Return(&model.OrderSummary{ID: "ORD-9"}, nil).Once()

	res, err := f.orch.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ORD-9", res.OrderID)

	require.NotNil(t, sent)
	assert.Equal(t, uint64(5), sent.UserID)
	assert.Equal(t, int64(100), sent.PointsUsed)
	require.NotNil(t, sent.VoucherID)
	assert.Equal(t, uint64(3), *sent.VoucherID)
	assert.Equal(t, int64(700_000-50_000-100), sent.Total)
	require.Len(t, sent.Items, 1)
	assert.Equal(t, "1", sent.Items[0].SKU)
	assert.Equal(t, "Ho Chi Minh", sent.ShippingAddress.Province.Name)

	view := f.store.View()
	assert.Empty(t, view.Items)
	assert.False(t, view.DrawerOpen)
	assert.False(t, view.CheckoutOpen)

	cv := f.orch.View()
	assert.Nil(t, cv.Voucher)
	assert.False(t, cv.Points.Use)
	assert.Equal(t, "Nguyen Van A", cv.Buyer.FullName)
}

func TestOrchestrator_SubmitKeepsLinesAddedInFlight(t *testing.T) {
	f := newFixture(t)
	f.addProduct(t, 1, 100_000)
	f.complete(t)

	f.orders.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			// the drawer stays usable while the order is being placed
			_, _ = f.store.Add(context.Background(), model.Product{ID: 1, Name: "item", Price: 100_000}, nil)
			_, _ = f.store.Add(context.Background(), model.Product{ID: 2, Name: "lamp", Price: 40_000}, nil)
		}).
		Return(&model.OrderSummary{ID: "ORD-10"}, nil).Once()

	_, err := f.orch.Submit(context.Background())
	require.NoError(t, err)

	items := f.store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, "2", items[1].ID)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestOrchestrator_RetryReusesIdempotencyKey(t *testing.T) {
	f := newFixture(t)
	f.addProduct(t, 1, 100_000)
	f.complete(t)

	var keys []string
	record := func(args mock.Arguments) { keys = append(keys, args.String(2)) }
	f.orders.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("string")).
		Run(record).Return(nil, cerr.SetCustomError(constant.ErrUpstreamUnavailable)).Twice()

	_, err := f.orch.Submit(context.Background())
	require.Error(t, err)
	_, err = f.orch.Submit(context.Background())
	require.Error(t, err)

	f.addProduct(t, 2, 10_000)
	f.orders.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("string")).
		Run(record).Return(&model.OrderSummary{ID: "ORD-2"}, nil).Once()
	_, err = f.orch.Submit(context.Background())
	require.NoError(t, err)

	require.Len(t, keys, 3)
	assert.Equal(t, keys[0], keys[1])
	assert.NotEqual(t, keys[1], keys[2])
}

func TestOrchestrator_ConcurrentSubmitRejected(t *testing.T) {
	f := newFixture(t)
	f.addProduct(t, 1, 100_000)
	f.complete(t)

	entered := make(chan struct{})
	release := make(chan struct{})
	f.orders.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("string")).
		Run(func(mock.Arguments) {
			close(entered)
			<-release
		}).
		Return(&model.OrderSummary{ID: "ORD-1"}, nil).Once()

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		_, firstErr = f.orch.Submit(context.Background())
	}()

	<-entered
	assert.True(t, f.orch.View().Submitting)
	_, err := f.orch.Submit(context.Background())
	assert.Equal(t, constant.ErrSubmitInProgress, cerr.TypeOf(err))

	close(release)
	wg.Wait()
	require.NoError(t, firstErr)
	assert.False(t, f.orch.View().Submitting)
}
