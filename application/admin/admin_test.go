package admin_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/application/admin"
	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/muhammadheryan/storefront/constant"
	catalogmocks "github.com/muhammadheryan/storefront/mocks/repository/catalog"
	draftmocks "github.com/muhammadheryan/storefront/mocks/repository/draft"
	ordermocks "github.com/muhammadheryan/storefront/mocks/repository/order"
	regionmocks "github.com/muhammadheryan/storefront/mocks/repository/region"
	txmocks "github.com/muhammadheryan/storefront/mocks/repository/tx"
	usermocks "github.com/muhammadheryan/storefront/mocks/repository/user"
	rabbitmocks "github.com/muhammadheryan/storefront/mocks/thirdparty/rabbitmq"
	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/thirdparty/rabbitmq"
	cerr "github.com/muhammadheryan/storefront/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fields struct {
	txRepo      *txmocks.TxRepository
	draftRepo   *draftmocks.DraftRepository
	orderRepo   *ordermocks.OrderRepository
	userRepo    *usermocks.UserRepository
	catalogRepo *catalogmocks.CatalogRepository
	regionRepo  *regionmocks.RegionRepository
	publisher   *rabbitmocks.DraftExpirationPublisher
}

func newFields(t *testing.T) fields {
	return fields{
		txRepo:      txmocks.NewTxRepository(t),
		draftRepo:   draftmocks.NewDraftRepository(t),
		orderRepo:   ordermocks.NewOrderRepository(t),
		userRepo:    usermocks.NewUserRepository(t),
		catalogRepo: catalogmocks.NewCatalogRepository(t),
		regionRepo:  regionmocks.NewRegionRepository(t),
		publisher:   rabbitmocks.NewDraftExpirationPublisher(t),
	}
}

func (f fields) app() admin.AdminOrderApp {
	cfg := &config.Config{
		Checkout: checkoutCfg,
		Admin:    config.AdminConfig{DraftExpiration: time.Hour},
	}
	return admin.NewAdminOrderApp(cfg, f.txRepo, f.draftRepo, f.orderRepo, f.userRepo, f.catalogRepo, f.regionRepo, f.publisher)
}

func openDraft() *model.Draft {
	d := completeDraft()
	d.ExpiresAt = time.Now().Add(time.Hour)
	return d
}

// expectCommitted sets up a transaction that locks d and commits.
func expectCommitted(f fields, tx *sqlx.Tx, d *model.Draft) {
	f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
	f.draftRepo.On("GetForUpdateTx", mock.Anything, tx, d.ID).Return(d, nil).Once()
	f.draftRepo.On("UpdateTx", mock.Anything, tx, d).Return(nil).Once()
	f.draftRepo.On("ReplaceItemsTx", mock.Anything, tx, d.ID, mock.Anything).Return(nil).Once()
	f.txRepo.On("CommitTx", tx).Return(nil).Once()
}

// expectRolledBack sets up a transaction that locks d and is rolled back.
func expectRolledBack(f fields, tx *sqlx.Tx, d *model.Draft) {
	f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
	f.draftRepo.On("GetForUpdateTx", mock.Anything, tx, "d-1").Return(d, nil).Once()
	f.txRepo.On("RollbackTx", tx).Return(nil).Once()
}

func TestAdminOrderApp_ListOrders(t *testing.T) {
	type args struct {
		filter *model.AdminOrderFilter
	}
	tests := []struct {
		name     string
		args     args
		mockCall func(f fields)
		want     *model.AdminOrderListResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: defaults",
			args: args{filter: nil},
			mockCall: func(f fields) {
				f.orderRepo.On("AdminList", mock.Anything, &model.AdminOrderFilter{Page: 1, Limit: 20}).
					Return(&model.AdminOrderListResponse{Total: 1, Orders: []model.AdminOrder{{ID: "o-1"}}}, nil).Once()
			},
			want: &model.AdminOrderListResponse{Total: 1, Orders: []model.AdminOrder{{ID: "o-1"}}},
		},
		{
			name: "success: limit clamped",
			args: args{filter: &model.AdminOrderFilter{Status: "pending", Page: 3, Limit: 1000}},
			mockCall: func(f fields) {
				f.orderRepo.On("AdminList", mock.Anything, &model.AdminOrderFilter{Status: "pending", Page: 3, Limit: 100}).
					Return(&model.AdminOrderListResponse{}, nil).Once()
			},
			want: &model.AdminOrderListResponse{},
		},
		{
			name: "error: upstream",
			args: args{filter: nil},
			mockCall: func(f fields) {
				f.orderRepo.On("AdminList", mock.Anything, mock.Anything).
					Return(nil, cerr.SetCustomError(constant.ErrUpstreamUnavailable)).Once()
			},
			wantErr: true,
			errCode: constant.ErrUpstreamUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			got, err := f.app().ListOrders(context.Background(), tt.args.filter)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.errCode, cerr.TypeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAdminOrderApp_CreateDraft(t *testing.T) {
	tx := &sqlx.Tx{}
	voucherID := uint64(5)

	tests := []struct {
		name     string
		req      *model.CreateDraftRequest
		mockCall func(f fields)
		check    func(t *testing.T, got *model.DraftView)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: empty draft publishes expiry",
			req:  &model.CreateDraftRequest{UserID: 8},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.draftRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(d *model.Draft) bool {
					return d.ID != "" && d.UserID == 8 && d.Status == constant.DraftStatusOpen
				})).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.publisher.On("PublishDraftExpiration", mock.Anything, mock.MatchedBy(func(m rabbitmq.DraftExpirationMessage) bool {
					return m.DraftID != "" && time.Until(m.ExpiresAt) > 50*time.Minute
				})).Return(nil).Once()
			},
			check: func(t *testing.T, got *model.DraftView) {
				assert.False(t, got.CanSubmit)
				assert.Len(t, got.Missing, 3)
				assert.Empty(t, got.Draft.Items)
			},
		},
		{
			name: "success: prefilled from order, publish failure ignored",
			req:  &model.CreateDraftRequest{OrderID: "o-1", UserID: 8},
			mockCall: func(f fields) {
				order := &model.AdminOrder{
					ID:              "o-1",
					Buyer:           model.BuyerInfo{FullName: "Tran Thi B", Phone: "0911111111"},
					ShippingAddress: completeDraftAddress(),
					PaymentMethod:   "cod",
					Items:           []model.AdminLineItem{line("A", 2, 400_000)},
					VoucherID:       &voucherID,
					PointsUsed:      200,
					ShippingFee:     15_000,
				}
				f.orderRepo.On("AdminGet", mock.Anything, "o-1").Return(order, nil).Once()
				f.catalogRepo.On("ListVouchers", mock.Anything, uint64(8)).
					Return([]model.Voucher{{ID: 5, Code: "SAVE", DiscountAmount: 30_000, MinOrderValue: 500_000}}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.draftRepo.On("InsertTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.publisher.On("PublishDraftExpiration", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
			},
			check: func(t *testing.T, got *model.DraftView) {
				assert.Equal(t, "o-1", got.Draft.OrderID)
				assert.Equal(t, "SAVE", got.Draft.VoucherCode)
				assert.True(t, got.CanSubmit)
				assert.Equal(t, int64(800_000+15_000-30_000-200), got.Summary.GrandTotal)
			},
		},
		{
			name: "error: order not found",
			req:  &model.CreateDraftRequest{OrderID: "missing"},
			mockCall: func(f fields) {
				f.orderRepo.On("AdminGet", mock.Anything, "missing").Return(nil, cerr.SetCustomError(constant.ErrNotFound)).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: insert rolled back",
			req:  nil,
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.draftRepo.On("InsertTx", mock.Anything, tx, mock.Anything).Return(errors.New("duplicate")).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)
			got, err := f.app().CreateDraft(context.Background(), tt.req)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.errCode, cerr.TypeOf(err))
				return
			}
			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func completeDraftAddress() model.ShippingAddress {
	return admin.NewComposer(checkoutCfg, completeDraft()).Address()
}

func TestAdminOrderApp_AddItem(t *testing.T) {
	tx := &sqlx.Tx{}

	tests := []struct {
		name     string
		item     model.AdminLineItem
		mockCall func(f fields)
		wantQty  int
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: merges into existing line",
			item: line("A", 2, 1),
			mockCall: func(f fields) {
				expectCommitted(f, tx, openDraft())
			},
			wantQty: 3,
		},
		{
			name: "error: invalid line is not saved",
			item: line("A", 0, 1),
			mockCall: func(f fields) {
				expectRolledBack(f, tx, openDraft())
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: draft not found",
			item: line("A", 1, 1),
			mockCall: func(f fields) {
				expectRolledBack(f, tx, nil)
			},
			wantErr: true,
			errCode: constant.ErrDraftNotFound,
		},
		{
			name: "error: draft expired",
			item: line("A", 1, 1),
			mockCall: func(f fields) {
				d := openDraft()
				d.ExpiresAt = time.Now().Add(-time.Minute)
				expectRolledBack(f, tx, d)
			},
			wantErr: true,
			errCode: constant.ErrDraftClosed,
		},
		{
			name: "error: draft submitted",
			item: line("A", 1, 1),
			mockCall: func(f fields) {
				d := openDraft()
				d.Status = constant.DraftStatusSubmitted
				expectRolledBack(f, tx, d)
			},
			wantErr: true,
			errCode: constant.ErrDraftClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)
			item := tt.item
			got, err := f.app().AddItem(context.Background(), "d-1", &item)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.errCode, cerr.TypeOf(err))
				return
			}
			require.NoError(t, err)
			require.Len(t, got.Draft.Items, 1)
			assert.Equal(t, tt.wantQty, got.Draft.Items[0].Quantity)
			assert.Equal(t, int64(300_000), got.Draft.Items[0].UnitPrice)
		})
	}
}

func TestAdminOrderApp_SetShipping(t *testing.T) {
	tx := &sqlx.Tx{}
	provinces := []model.Region{{Code: 1, Name: "Ha Noi"}}
	districts := []model.Region{{Code: 2, Name: "Ba Dinh"}}
	wards := []model.Region{{Code: 3, Name: "Phuc Xa"}}

	t.Run("success", func(t *testing.T) {
		f := newFields(t)
		f.regionRepo.On("Provinces", mock.Anything).Return(provinces, nil).Once()
		f.regionRepo.On("Districts", mock.Anything, 1).Return(districts, nil).Once()
		f.regionRepo.On("Wards", mock.Anything, 2).Return(wards, nil).Once()
		expectCommitted(f, tx, openDraft())

		got, err := f.app().SetShipping(context.Background(), "d-1", &model.DraftShippingRequest{
			ProvinceCode: 1, DistrictCode: 2, WardCode: 3, Detail: " 5 Kim Ma ", ShippingFee: 25_000,
		})
		require.NoError(t, err)
		assert.Equal(t, "Phuc Xa", got.Draft.WardName)
		assert.Equal(t, "5 Kim Ma", got.Draft.AddressDetail)
		assert.Equal(t, int64(325_000), got.Summary.GrandTotal)
	})

	t.Run("ward outside district never opens a transaction", func(t *testing.T) {
		f := newFields(t)
		f.regionRepo.On("Provinces", mock.Anything).Return(provinces, nil).Once()
		f.regionRepo.On("Districts", mock.Anything, 1).Return(districts, nil).Once()
		f.regionRepo.On("Wards", mock.Anything, 2).Return(wards, nil).Once()

		_, err := f.app().SetShipping(context.Background(), "d-1", &model.DraftShippingRequest{
			ProvinceCode: 1, DistrictCode: 2, WardCode: 99, Detail: "x",
		})
		assert.Equal(t, constant.ErrInvalidAddress, cerr.TypeOf(err))
	})
}

func TestAdminOrderApp_ApplyVoucher(t *testing.T) {
	tx := &sqlx.Tx{}
	vouchers := []model.Voucher{
		{ID: 1, Code: "SMALL", DiscountAmount: 10_000, MinOrderValue: 100_000},
		{ID: 2, Code: "BIG", DiscountAmount: 90_000, MinOrderValue: 900_000},
	}

	tests := []struct {
		name     string
		code     string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: code normalized",
			code: " small ",
			mockCall: func(f fields) {
				d := openDraft()
				f.draftRepo.On("Get", mock.Anything, "d-1").Return(d, nil).Once()
				f.catalogRepo.On("ListVouchers", mock.Anything, uint64(0)).Return(vouchers, nil).Once()
				expectCommitted(f, tx, d)
			},
		},
		{
			name: "error: below minimum",
			code: "BIG",
			mockCall: func(f fields) {
				d := openDraft()
				f.draftRepo.On("Get", mock.Anything, "d-1").Return(d, nil).Once()
				f.catalogRepo.On("ListVouchers", mock.Anything, uint64(0)).Return(vouchers, nil).Once()
				expectRolledBack(f, tx, d)
			},
			wantErr: true,
			errCode: constant.ErrVoucherMinOrder,
		},
		{
			name: "error: unknown code",
			code: "NOPE",
			mockCall: func(f fields) {
				f.draftRepo.On("Get", mock.Anything, "d-1").Return(openDraft(), nil).Once()
				f.catalogRepo.On("ListVouchers", mock.Anything, uint64(0)).Return(vouchers, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrVoucherNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)
			got, err := f.app().ApplyVoucher(context.Background(), "d-1", tt.code)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.errCode, cerr.TypeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "SMALL", got.Draft.VoucherCode)
			assert.Equal(t, int64(290_000), got.Summary.GrandTotal)
		})
	}
}

func TestAdminOrderApp_SubmitDraft(t *testing.T) {
	tx := &sqlx.Tx{}

	tests := []struct {
		name     string
		draft    func() *model.Draft
		mockCall func(f fields, d *model.Draft)
		want     *model.AdminOrder
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:  "success: new order keyed by draft id",
			draft: openDraft,
			mockCall: func(f fields, d *model.Draft) {
				f.draftRepo.On("Get", mock.Anything, "d-1").Return(d, nil).Once()
				f.userRepo.On("CreateAddress", mock.Anything, mock.MatchedBy(func(r *model.UserAddressRequest) bool {
					return r.FullName == "Tran Thi B" && r.Address.Ward.Code == 26734
				})).Return(&model.UserAddressResponse{ID: 77}, nil).Once()
				f.orderRepo.On("AdminCreate", mock.Anything, mock.MatchedBy(func(r *model.AdminOrderRequest) bool {
					return r.AddressID == 77 && r.Total == 300_000
				}), "d-1").Return(&model.AdminOrder{ID: "o-9"}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.draftRepo.On("UpdateStatusTx", mock.Anything, tx, "d-1", constant.DraftStatusSubmitted).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			want: &model.AdminOrder{ID: "o-9"},
		},
		{
			name: "success: edits the source order",
			draft: func() *model.Draft {
				d := openDraft()
				d.OrderID = "o-1"
				return d
			},
			mockCall: func(f fields, d *model.Draft) {
				f.draftRepo.On("Get", mock.Anything, "d-1").Return(d, nil).Once()
				f.userRepo.On("CreateAddress", mock.Anything, mock.Anything).Return(&model.UserAddressResponse{ID: 78}, nil).Once()
				f.orderRepo.On("AdminUpdate", mock.Anything, "o-1", mock.Anything).Return(&model.AdminOrder{ID: "o-1"}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("db down")).Once()
			},
			want: &model.AdminOrder{ID: "o-1"},
		},
		{
			name: "error: incomplete draft makes no calls",
			draft: func() *model.Draft {
				d := openDraft()
				d.BuyerName = ""
				return d
			},
			mockCall: func(f fields, d *model.Draft) {
				f.draftRepo.On("Get", mock.Anything, "d-1").Return(d, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrCheckoutIncomplete,
		},
		{
			name:  "error: address rejected",
			draft: openDraft,
			mockCall: func(f fields, d *model.Draft) {
				f.draftRepo.On("Get", mock.Anything, "d-1").Return(d, nil).Once()
				f.userRepo.On("CreateAddress", mock.Anything, mock.Anything).
					Return(nil, cerr.SetCustomErrorWithDetails(constant.ErrUpstream, "phone invalid")).Once()
			},
			wantErr: true,
			errCode: constant.ErrUpstream,
		},
		{
			name:  "error: order rejected leaves draft open",
			draft: openDraft,
			mockCall: func(f fields, d *model.Draft) {
				f.draftRepo.On("Get", mock.Anything, "d-1").Return(d, nil).Once()
				f.userRepo.On("CreateAddress", mock.Anything, mock.Anything).Return(&model.UserAddressResponse{ID: 77}, nil).Once()
				f.orderRepo.On("AdminCreate", mock.Anything, mock.Anything, "d-1").
					Return(nil, cerr.SetCustomError(constant.ErrUpstream)).Once()
			},
			wantErr: true,
			errCode: constant.ErrUpstream,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f, tt.draft())
			got, err := f.app().SubmitDraft(context.Background(), "d-1")
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.errCode, cerr.TypeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAdminOrderApp_ExpireDraft(t *testing.T) {
	tx := &sqlx.Tx{}

	tests := []struct {
		name     string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: due draft expires",
			mockCall: func(f fields) {
				d := openDraft()
				d.ExpiresAt = time.Now().Add(-time.Second)
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.draftRepo.On("GetForUpdateTx", mock.Anything, tx, "d-1").Return(d, nil).Once()
				f.draftRepo.On("UpdateStatusTx", mock.Anything, tx, "d-1", constant.DraftStatusExpired).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
		},
		{
			name: "success: submitted draft untouched",
			mockCall: func(f fields) {
				d := openDraft()
				d.Status = constant.DraftStatusSubmitted
				d.ExpiresAt = time.Now().Add(-time.Second)
				expectRolledBack(f, tx, d)
			},
		},
		{
			name: "success: not yet due",
			mockCall: func(f fields) {
				expectRolledBack(f, tx, openDraft())
			},
		},
		{
			name: "error: unknown draft",
			mockCall: func(f fields) {
				expectRolledBack(f, tx, nil)
			},
			wantErr: true,
			errCode: constant.ErrDraftNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)
			err := f.app().ExpireDraft(context.Background(), "d-1")
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.errCode, cerr.TypeOf(err))
				return
			}
			require.NoError(t, err)
		})
	}
}
