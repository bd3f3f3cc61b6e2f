package admin

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/application/address"
	"github.com/muhammadheryan/storefront/application/pricing"
	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	catalogrepo "github.com/muhammadheryan/storefront/repository/catalog"
	draftrepo "github.com/muhammadheryan/storefront/repository/draft"
	orderrepo "github.com/muhammadheryan/storefront/repository/order"
	txrepo "github.com/muhammadheryan/storefront/repository/tx"
	userrepo "github.com/muhammadheryan/storefront/repository/user"
	"github.com/muhammadheryan/storefront/thirdparty/rabbitmq"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/logger"
	"github.com/muhammadheryan/storefront/utils/metrics"
	"go.uber.org/zap"
)

const (
	channelAdmin     = "admin"
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type AdminOrderApp interface {
	ListOrders(ctx context.Context, filter *model.AdminOrderFilter) (*model.AdminOrderListResponse, error)
	GetOrder(ctx context.Context, id string) (*model.AdminOrder, error)
	DeleteOrder(ctx context.Context, id string) error

	CreateDraft(ctx context.Context, req *model.CreateDraftRequest) (*model.DraftView, error)
	GetDraft(ctx context.Context, id string) (*model.DraftView, error)
	AddItem(ctx context.Context, id string, item *model.AdminLineItem) (*model.DraftView, error)
	EditItem(ctx context.Context, id, sku string, req *model.EditLineItemRequest) (*model.DraftView, error)
	RemoveItem(ctx context.Context, id, sku string) (*model.DraftView, error)
	SetBuyer(ctx context.Context, id string, req *model.BuyerInfoRequest) (*model.DraftView, error)
	SetShipping(ctx context.Context, id string, req *model.DraftShippingRequest) (*model.DraftView, error)
	SetPaymentMethod(ctx context.Context, id, code string) (*model.DraftView, error)
	ApplyVoucher(ctx context.Context, id, code string) (*model.DraftView, error)
	RemoveVoucher(ctx context.Context, id string) (*model.DraftView, error)
	SetPoints(ctx context.Context, id string, req *model.DraftPointsRequest) (*model.DraftView, error)
	SubmitDraft(ctx context.Context, id string) (*model.AdminOrder, error)
	ExpireDraft(ctx context.Context, id string) error
}

type adminOrderAppImpl struct {
	config      *config.Config
	txRepo      txrepo.TxRepository
	draftRepo   draftrepo.DraftRepository
	orderRepo   orderrepo.OrderRepository
	userRepo    userrepo.UserRepository
	catalogRepo catalogrepo.CatalogRepository
	regions     address.RegionLoader
	publisher   rabbitmq.DraftExpirationPublisher
	now         func() time.Time
}

func NewAdminOrderApp(config *config.Config, txRepo txrepo.TxRepository, draftRepo draftrepo.DraftRepository, orderRepo orderrepo.OrderRepository,
	userRepo userrepo.UserRepository, catalogRepo catalogrepo.CatalogRepository, regions address.RegionLoader, publisher rabbitmq.DraftExpirationPublisher) AdminOrderApp {
	return &adminOrderAppImpl{
		config:      config,
		txRepo:      txRepo,
		draftRepo:   draftRepo,
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		catalogRepo: catalogRepo,
		regions:     regions,
		publisher:   publisher,
		now:         time.Now,
	}
}

func (s *adminOrderAppImpl) ListOrders(ctx context.Context, filter *model.AdminOrderFilter) (*model.AdminOrderListResponse, error) {
	f := model.AdminOrderFilter{Page: 1, Limit: defaultPageLimit}
	if filter != nil {
		f.Status = filter.Status
		if filter.Page > 0 {
			f.Page = filter.Page
		}
		if filter.Limit > 0 {
			f.Limit = filter.Limit
		}
	}
	if f.Limit > maxPageLimit {
		f.Limit = maxPageLimit
	}

	res, err := s.orderRepo.AdminList(ctx, &f)
	if err != nil {
		logger.Error("[ListOrders] error orderRepo.AdminList", zap.String("error", err.Error()))
		return nil, errors.Normalize(err)
	}
	return res, nil
}

func (s *adminOrderAppImpl) GetOrder(ctx context.Context, id string) (*model.AdminOrder, error) {
	order, err := s.orderRepo.AdminGet(ctx, id)
	if err != nil {
		logger.Error("[GetOrder] error orderRepo.AdminGet", zap.String("order_id", id), zap.String("error", err.Error()))
		return nil, errors.Normalize(err)
	}
	return order, nil
}

func (s *adminOrderAppImpl) DeleteOrder(ctx context.Context, id string) error {
	if err := s.orderRepo.AdminDelete(ctx, id); err != nil {
		logger.Error("[DeleteOrder] error orderRepo.AdminDelete", zap.String("order_id", id), zap.String("error", err.Error()))
		return errors.Normalize(err)
	}
	logger.Info("[DeleteOrder] order deleted", zap.String("order_id", id))
	return nil
}

// CreateDraft opens an empty draft, or one prefilled from an existing order when
// OrderID is set. Submitting the latter edits that order.
func (s *adminOrderAppImpl) CreateDraft(ctx context.Context, req *model.CreateDraftRequest) (*model.DraftView, error) {
	d := &model.Draft{
		ID:        uuid.NewString(),
		Status:    constant.DraftStatusOpen,
		ExpiresAt: s.now().Add(s.config.Admin.DraftExpiration).UTC(),
		Items:     []model.AdminLineItem{},
	}
	if req != nil {
		d.UserID = req.UserID
		if req.OrderID != "" {
			if err := s.prefill(ctx, d, req.OrderID); err != nil {
				return nil, err
			}
		}
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateDraft] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if err := s.draftRepo.InsertTx(ctx, tx, d); err != nil {
		logger.Error("[CreateDraft] insert draft", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateDraft] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	if s.publisher != nil {
		msg := rabbitmq.DraftExpirationMessage{DraftID: d.ID, ExpiresAt: d.ExpiresAt}
		if err := s.publisher.PublishDraftExpiration(ctx, msg); err != nil {
			logger.Error("[CreateDraft] publish draft expiration", zap.String("draft_id", d.ID), zap.String("error", err.Error()))
		}
	}

	return s.view(d), nil
}

func (s *adminOrderAppImpl) prefill(ctx context.Context, d *model.Draft, orderID string) error {
	order, err := s.orderRepo.AdminGet(ctx, orderID)
	if err != nil {
		logger.Error("[CreateDraft] error orderRepo.AdminGet", zap.String("order_id", orderID), zap.String("error", err.Error()))
		return errors.Normalize(err)
	}

	d.OrderID = order.ID
	c := NewComposer(s.config.Checkout, d)
	c.SetBuyer(order.Buyer)
	c.SetShipping(order.ShippingAddress, order.ShippingFee)
	c.SetPaymentMethod(order.PaymentMethod)
	d.Items = append(d.Items, order.Items...)
	// the order only carries the redeemed amount, so it doubles as the balance
	c.SetPoints(order.PointsUsed, order.PointsUsed)

	if order.VoucherID == nil {
		return nil
	}
	vouchers, err := s.catalogRepo.ListVouchers(ctx, d.UserID)
	if err != nil {
		logger.Error("[CreateDraft] error catalogRepo.ListVouchers", zap.String("error", err.Error()))
		return errors.Normalize(err)
	}
	for i := range vouchers {
		if vouchers[i].ID == *order.VoucherID {
			id := vouchers[i].ID
			d.VoucherID = &id
			d.VoucherCode = vouchers[i].Code
			d.VoucherAmount = vouchers[i].DiscountAmount
			d.VoucherMin = vouchers[i].MinOrderValue
			return nil
		}
	}
	logger.Info("[CreateDraft] voucher of order no longer offered", zap.String("order_id", orderID), zap.Uint64("voucher_id", *order.VoucherID))
	return nil
}

func (s *adminOrderAppImpl) GetDraft(ctx context.Context, id string) (*model.DraftView, error) {
	d, err := s.load(ctx, "[GetDraft]", id)
	if err != nil {
		return nil, err
	}
	return s.view(d), nil
}

func (s *adminOrderAppImpl) AddItem(ctx context.Context, id string, item *model.AdminLineItem) (*model.DraftView, error) {
	if item == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return s.mutate(ctx, "[AddItem]", id, func(c *Composer) error {
		return c.AddItem(*item)
	})
}

func (s *adminOrderAppImpl) EditItem(ctx context.Context, id, sku string, req *model.EditLineItemRequest) (*model.DraftView, error) {
	return s.mutate(ctx, "[EditItem]", id, func(c *Composer) error {
		return c.EditItem(sku, req.Quantity, req.UnitPrice)
	})
}

func (s *adminOrderAppImpl) RemoveItem(ctx context.Context, id, sku string) (*model.DraftView, error) {
	return s.mutate(ctx, "[RemoveItem]", id, func(c *Composer) error {
		return c.RemoveItem(sku)
	})
}

func (s *adminOrderAppImpl) SetBuyer(ctx context.Context, id string, req *model.BuyerInfoRequest) (*model.DraftView, error) {
	return s.mutate(ctx, "[SetBuyer]", id, func(c *Composer) error {
		c.SetBuyer(model.BuyerInfo{FullName: req.FullName, Phone: req.Phone, Email: req.Email})
		return nil
	})
}

// SetShipping resolves the region codes before locking the draft.
func (s *adminOrderAppImpl) SetShipping(ctx context.Context, id string, req *model.DraftShippingRequest) (*model.DraftView, error) {
	addr, err := address.Resolve(ctx, s.regions, req.ProvinceCode, req.DistrictCode, req.WardCode)
	if err != nil {
		logger.Info("[SetShipping] address rejected", zap.String("draft_id", id), zap.String("error", err.Error()))
		return nil, errors.Normalize(err)
	}
	addr.Detail = req.Detail
	addr.Note = req.Note

	return s.mutate(ctx, "[SetShipping]", id, func(c *Composer) error {
		c.SetShipping(addr, req.ShippingFee)
		return nil
	})
}

func (s *adminOrderAppImpl) SetPaymentMethod(ctx context.Context, id, code string) (*model.DraftView, error) {
	return s.mutate(ctx, "[SetPaymentMethod]", id, func(c *Composer) error {
		c.SetPaymentMethod(code)
		return nil
	})
}

func (s *adminOrderAppImpl) ApplyVoucher(ctx context.Context, id, code string) (*model.DraftView, error) {
	d, err := s.load(ctx, "[ApplyVoucher]", id)
	if err != nil {
		return nil, err
	}

	vouchers, err := s.catalogRepo.ListVouchers(ctx, d.UserID)
	if err != nil {
		logger.Error("[ApplyVoucher] error catalogRepo.ListVouchers", zap.String("error", err.Error()))
		return nil, errors.Normalize(err)
	}
	code = model.NormalizeVoucherCode(code)
	var voucher *model.Voucher
	for i := range vouchers {
		if vouchers[i].Code == code {
			voucher = &vouchers[i]
			break
		}
	}
	if voucher == nil {
		return nil, errors.SetCustomErrorWithDetails(constant.ErrVoucherNotFound, code)
	}

	return s.mutate(ctx, "[ApplyVoucher]", id, func(c *Composer) error {
		if err := c.ApplyVoucher(voucher, s.now()); err != nil {
			metrics.VoucherRejected.WithLabelValues(pricing.RejectReason(err)).Inc()
			return err
		}
		return nil
	})
}

func (s *adminOrderAppImpl) RemoveVoucher(ctx context.Context, id string) (*model.DraftView, error) {
	return s.mutate(ctx, "[RemoveVoucher]", id, func(c *Composer) error {
		c.RemoveVoucher()
		return nil
	})
}

func (s *adminOrderAppImpl) SetPoints(ctx context.Context, id string, req *model.DraftPointsRequest) (*model.DraftView, error) {
	return s.mutate(ctx, "[SetPoints]", id, func(c *Composer) error {
		c.SetPoints(req.Balance, req.Points)
		return nil
	})
}

// SubmitDraft saves the shipping address on the customer's address book, then
// creates the order, or updates the order the draft was opened from.
func (s *adminOrderAppImpl) SubmitDraft(ctx context.Context, id string) (*model.AdminOrder, error) {
	d, err := s.load(ctx, "[SubmitDraft]", id)
	if err != nil {
		return nil, err
	}

	req, err := NewComposer(s.config.Checkout, d).Request()
	if err != nil {
		return nil, err
	}

	saved, err := s.userRepo.CreateAddress(ctx, &model.UserAddressRequest{
		UserID:   d.UserID,
		FullName: req.Buyer.FullName,
		Phone:    req.Buyer.Phone,
		Address:  req.ShippingAddress,
	})
	if err != nil {
		logger.Error("[SubmitDraft] error userRepo.CreateAddress", zap.String("draft_id", id), zap.String("error", err.Error()))
		return nil, errors.Normalize(err)
	}
	req.AddressID = saved.ID

	var order *model.AdminOrder
	if d.OrderID != "" {
		order, err = s.orderRepo.AdminUpdate(ctx, d.OrderID, req)
	} else {
		// the draft id keeps retried submissions from creating a second order
		order, err = s.orderRepo.AdminCreate(ctx, req, d.ID)
	}
	if err != nil {
		metrics.OrdersSubmitted.WithLabelValues(channelAdmin, "failed").Inc()
		logger.Error("[SubmitDraft] error submitting order", zap.String("draft_id", id), zap.String("error", err.Error()))
		return nil, errors.Normalize(err)
	}
	metrics.OrdersSubmitted.WithLabelValues(channelAdmin, "ok").Inc()
	metrics.OrderValue.WithLabelValues(channelAdmin).Observe(float64(req.Total))

	if err := s.setStatus(ctx, id, constant.DraftStatusSubmitted); err != nil {
		logger.Error("[SubmitDraft] mark draft submitted", zap.String("draft_id", id), zap.String("error", err.Error()))
	}
	return order, nil
}

// ExpireDraft closes an open draft whose expiry has passed. Drafts already closed are
// left alone so redelivered messages are harmless.
func (s *adminOrderAppImpl) ExpireDraft(ctx context.Context, id string) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ExpireDraft] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	d, err := s.draftRepo.GetForUpdateTx(ctx, tx, id)
	if err != nil {
		logger.Error("[ExpireDraft] get draft", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if d == nil {
		return errors.SetCustomError(constant.ErrDraftNotFound)
	}
	if d.Status != constant.DraftStatusOpen || s.now().Before(d.ExpiresAt) {
		return nil
	}

	if err := s.draftRepo.UpdateStatusTx(ctx, tx, id, constant.DraftStatusExpired); err != nil {
		logger.Error("[ExpireDraft] update status", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ExpireDraft] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	logger.Info("[ExpireDraft] draft expired", zap.String("draft_id", id))
	return nil
}

// load reads an open draft outside any transaction.
func (s *adminOrderAppImpl) load(ctx context.Context, op, id string) (*model.Draft, error) {
	d, err := s.draftRepo.Get(ctx, id)
	if err != nil {
		logger.Error(op+" get draft", zap.String("draft_id", id), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.checkOpen(d); err != nil {
		return nil, err
	}
	return d, nil
}

// mutate applies fn to the locked draft and stores the result. Nothing is written
// when fn fails.
func (s *adminOrderAppImpl) mutate(ctx context.Context, op, id string, fn func(c *Composer) error) (*model.DraftView, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error(op+" begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	d, err := s.draftRepo.GetForUpdateTx(ctx, tx, id)
	if err != nil {
		logger.Error(op+" get draft", zap.String("draft_id", id), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.checkOpen(d); err != nil {
		return nil, err
	}

	c := NewComposer(s.config.Checkout, d)
	if err := fn(c); err != nil {
		return nil, err
	}

	if err := s.save(ctx, tx, d); err != nil {
		logger.Error(op+" save draft", zap.String("draft_id", id), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error(op+" commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return s.view(d), nil
}

func (s *adminOrderAppImpl) save(ctx context.Context, tx *sqlx.Tx, d *model.Draft) error {
	if err := s.draftRepo.UpdateTx(ctx, tx, d); err != nil {
		return err
	}
	return s.draftRepo.ReplaceItemsTx(ctx, tx, d.ID, d.Items)
}

func (s *adminOrderAppImpl) setStatus(ctx context.Context, id string, status constant.DraftStatus) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if err := s.draftRepo.UpdateStatusTx(ctx, tx, id, status); err != nil {
		return err
	}
	if err := s.txRepo.CommitTx(tx); err != nil {
		return err
	}
	committed = true
	return nil
}

func (s *adminOrderAppImpl) checkOpen(d *model.Draft) error {
	if d == nil {
		return errors.SetCustomError(constant.ErrDraftNotFound)
	}
	if d.Status != constant.DraftStatusOpen || !s.now().Before(d.ExpiresAt) {
		return errors.SetCustomError(constant.ErrDraftClosed)
	}
	return nil
}

func (s *adminOrderAppImpl) view(d *model.Draft) *model.DraftView {
	c := NewComposer(s.config.Checkout, d)
	missing := c.MissingSteps()
	if missing == nil {
		missing = []constant.CheckoutStep{}
	}
	return &model.DraftView{
		Draft:     *d,
		Summary:   c.Summary(),
		Missing:   missing,
		CanSubmit: len(missing) == 0 && len(d.Items) > 0,
	}
}
