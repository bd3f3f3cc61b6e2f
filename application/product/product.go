package product

import (
	"context"
	stderrors "errors"

	"github.com/muhammadheryan/storefront/application/variant"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	catalogRepo "github.com/muhammadheryan/storefront/repository/catalog"
	productRepo "github.com/muhammadheryan/storefront/repository/product"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/logger"
	"go.uber.org/zap"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

type ProductApp interface {
	ListProducts(ctx context.Context, filter *model.ProductFilter) (*model.ProductListResponse, error)
	GetProduct(ctx context.Context, id uint64) (*model.ProductDetailResponse, error)
	SelectVariant(ctx context.Context, id uint64, req *model.SelectVariantRequest) (*model.ProductDetailResponse, error)
	ResolveVariant(ctx context.Context, id uint64, sel model.VariantSelection) (*model.ProductDetailResponse, error)
	CartLine(ctx context.Context, productID uint64, variantID *uint64) (*model.Product, *model.ProductVariant, error)
	ListVouchers(ctx context.Context, userID uint64) (*model.VoucherListResponse, error)
	FindVoucher(ctx context.Context, userID uint64, code string) (*model.Voucher, error)
	ListPaymentMethods(ctx context.Context) (*model.PaymentMethodListResponse, error)
	ListShippingCarriers(ctx context.Context) (*model.ShippingCarrierListResponse, error)
}

type productAppImpl struct {
	productRepo productRepo.ProductRepository
	catalogRepo catalogRepo.CatalogRepository
}

func NewProductApp(productRepo productRepo.ProductRepository, catalogRepo catalogRepo.CatalogRepository) ProductApp {
	return &productAppImpl{productRepo: productRepo, catalogRepo: catalogRepo}
}

func (s *productAppImpl) ListProducts(ctx context.Context, filter *model.ProductFilter) (*model.ProductListResponse, error) {
	f := model.ProductFilter{}
	if filter != nil {
		f = *filter
	}
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}

	products, err := s.productRepo.List(ctx, &f)
	if err != nil {
		logger.Error("[ListProducts] error productRepo.List", zap.String("error", err.Error()))
		return nil, errors.Normalize(err)
	}
	return &model.ProductListResponse{Products: products}, nil
}

func (s *productAppImpl) GetProduct(ctx context.Context, id uint64) (*model.ProductDetailResponse, error) {
	p, err := s.load(ctx, "GetProduct", id)
	if err != nil {
		return nil, err
	}
	return detail(p, variant.Default(p.Variants)), nil
}

// SelectVariant applies a color or footrest change to the current variant,
// keeping the other dimension when such a combination exists.
func (s *productAppImpl) SelectVariant(ctx context.Context, id uint64, req *model.SelectVariantRequest) (*model.ProductDetailResponse, error) {
	p, err := s.load(ctx, "SelectVariant", id)
	if err != nil {
		return nil, err
	}

	current := variant.Default(p.Variants)
	if req.Current != nil {
		if v := variant.FindByID(p.Variants, *req.Current); v != nil {
			current = v
		}
	}

	ok := true
	if req.Color != nil {
		current, ok = variant.SelectColor(p.Variants, current, *req.Color)
		if !ok {
			return nil, errors.SetCustomErrorWithDetails(constant.ErrVariantNotFound, "color")
		}
	}
	if req.HasFootrest != nil {
		current, ok = variant.SelectFootrest(p.Variants, current, *req.HasFootrest)
		if !ok {
			return nil, errors.SetCustomErrorWithDetails(constant.ErrVariantNotFound, "has_footrest")
		}
	}
	return detail(p, current), nil
}

// ResolveVariant finds the single variant matching every attribute in sel.
func (s *productAppImpl) ResolveVariant(ctx context.Context, id uint64, sel model.VariantSelection) (*model.ProductDetailResponse, error) {
	p, err := s.load(ctx, "ResolveVariant", id)
	if err != nil {
		return nil, err
	}

	v, err := variant.Resolve(p.Variants, sel)
	switch {
	case stderrors.Is(err, variant.ErrNoMatch):
		return nil, errors.SetCustomError(constant.ErrVariantNotFound)
	case stderrors.Is(err, variant.ErrAmbiguous):
		return nil, errors.SetCustomError(constant.ErrVariantAmbiguous)
	case err != nil:
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return detail(p, v), nil
}

// CartLine loads what the cart needs to add a product: the product and the chosen
// variant, or its default variant when none was chosen.
func (s *productAppImpl) CartLine(ctx context.Context, productID uint64, variantID *uint64) (*model.Product, *model.ProductVariant, error) {
	p, err := s.load(ctx, "CartLine", productID)
	if err != nil {
		return nil, nil, err
	}
	if variantID == nil {
		return p, variant.Default(p.Variants), nil
	}
	v := variant.FindByID(p.Variants, *variantID)
	if v == nil {
		return nil, nil, errors.SetCustomErrorWithDetails(constant.ErrVariantNotFound, "variant_id")
	}
	return p, v, nil
}

func (s *productAppImpl) load(ctx context.Context, op string, id uint64) (*model.Product, error) {
	if id == 0 {
		return nil, errors.SetCustomErrorWithDetails(constant.ErrInvalidRequest, "id")
	}
	p, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.TypeOf(err) != constant.ErrNotFound {
			logger.Error("["+op+"] error productRepo.GetByID", zap.Uint64("product_id", id), zap.String("error", err.Error()))
		}
		return nil, errors.Normalize(err)
	}
	if err := variant.ValidateDefaults(p.Variants); err != nil {
		// still usable: Default picks the first flagged variant
		logger.Warn("["+op+"] product has several default variants", zap.Uint64("product_id", id))
	}
	return p, nil
}

func detail(p *model.Product, v *model.ProductVariant) *model.ProductDetailResponse {
	return &model.ProductDetailResponse{
		Product:      *p,
		Variant:      v,
		ShowSelector: variant.ShowSelector(p.Variants),
		Colors:       variant.Colors(p.Variants),
		Footrest:     variant.FootrestOptions(p.Variants),
	}
}

func (s *productAppImpl) ListVouchers(ctx context.Context, userID uint64) (*model.VoucherListResponse, error) {
	vouchers, err := s.catalogRepo.ListVouchers(ctx, userID)
	if err != nil {
		logger.Error("[ListVouchers] error catalogRepo.ListVouchers", zap.String("error", err.Error()))
		return nil, errors.Normalize(err)
	}
	if vouchers == nil {
		vouchers = []model.Voucher{}
	}
	return &model.VoucherListResponse{Vouchers: vouchers}, nil
}

// FindVoucher looks a code up among the vouchers offered to userID.
func (s *productAppImpl) FindVoucher(ctx context.Context, userID uint64, code string) (*model.Voucher, error) {
	res, err := s.ListVouchers(ctx, userID)
	if err != nil {
		return nil, err
	}
	code = model.NormalizeVoucherCode(code)
	for i := range res.Vouchers {
		if res.Vouchers[i].Code == code {
			return &res.Vouchers[i], nil
		}
	}
	return nil, errors.SetCustomErrorWithDetails(constant.ErrVoucherNotFound, code)
}

func (s *productAppImpl) ListPaymentMethods(ctx context.Context) (*model.PaymentMethodListResponse, error) {
	methods, err := s.catalogRepo.ListPaymentMethods(ctx)
	if err != nil {
		logger.Error("[ListPaymentMethods] error catalogRepo.ListPaymentMethods", zap.String("error", err.Error()))
		return nil, errors.Normalize(err)
	}
	if methods == nil {
		methods = []model.PaymentMethod{}
	}
	return &model.PaymentMethodListResponse{PaymentMethods: methods}, nil
}

func (s *productAppImpl) ListShippingCarriers(ctx context.Context) (*model.ShippingCarrierListResponse, error) {
	carriers, err := s.catalogRepo.ListShippingCarriers(ctx)
	if err != nil {
		logger.Error("[ListShippingCarriers] error catalogRepo.ListShippingCarriers", zap.String("error", err.Error()))
		return nil, errors.Normalize(err)
	}
	if carriers == nil {
		carriers = []model.ShippingCarrier{}
	}
	return &model.ShippingCarrierListResponse{ShippingCarriers: carriers}, nil
}
