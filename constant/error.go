package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrForbidden
	ErrCartEmpty
	ErrCartItemNotFound
	ErrVoucherNotFound
	ErrVoucherMinOrder
	ErrVoucherExpired
	ErrPointsExceeded
	ErrCheckoutIncomplete
	ErrSubmitInProgress
	ErrInvalidAddress
	ErrVariantNotFound
	ErrVariantAmbiguous
	ErrUpstream
	ErrUpstreamUnavailable
	ErrDraftNotFound
	ErrDraftClosed
	ErrLineItemNotFound
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:             "success",
	ErrInternal:            "error internal",
	ErrNotFound:            "data not found",
	ErrInvalidRequest:      "invalid request",
	ErrUnauthorize:         "unauthorize request",
	ErrForbidden:           "forbidden",
	ErrCartEmpty:           "cart is empty",
	ErrCartItemNotFound:    "cart item not found",
	ErrVoucherNotFound:     "voucher not found",
	ErrVoucherMinOrder:     "order value is below the voucher minimum",
	ErrVoucherExpired:      "voucher has expired",
	ErrPointsExceeded:      "reward points exceed the allowed amount",
	ErrCheckoutIncomplete:  "checkout information is incomplete",
	ErrSubmitInProgress:    "order submission already in progress",
	ErrInvalidAddress:      "shipping address is invalid",
	ErrVariantNotFound:     "no variant matches the selection",
	ErrVariantAmbiguous:    "selection matches more than one variant",
	ErrUpstream:            "upstream service error",
	ErrUpstreamUnavailable: "upstream service unavailable",
	ErrDraftNotFound:       "draft not found",
	ErrDraftClosed:         "draft is no longer open",
	ErrLineItemNotFound:    "line item not found",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:             http.StatusOK,
	ErrInternal:            http.StatusInternalServerError,
	ErrNotFound:            http.StatusBadRequest,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrUnauthorize:         http.StatusUnauthorized,
	ErrForbidden:           http.StatusForbidden,
	ErrCartEmpty:           http.StatusBadRequest,
	ErrCartItemNotFound:    http.StatusNotFound,
	ErrVoucherNotFound:     http.StatusNotFound,
	ErrVoucherMinOrder:     http.StatusBadRequest,
	ErrVoucherExpired:      http.StatusBadRequest,
	ErrPointsExceeded:      http.StatusBadRequest,
	ErrCheckoutIncomplete:  http.StatusBadRequest,
	ErrSubmitInProgress:    http.StatusConflict,
	ErrInvalidAddress:      http.StatusBadRequest,
	ErrVariantNotFound:     http.StatusNotFound,
	ErrVariantAmbiguous:    http.StatusBadRequest,
	ErrUpstream:            http.StatusBadGateway,
	ErrUpstreamUnavailable: http.StatusServiceUnavailable,
	ErrDraftNotFound:       http.StatusNotFound,
	ErrDraftClosed:         http.StatusConflict,
	ErrLineItemNotFound:    http.StatusNotFound,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:             "0000",
	ErrInternal:            "0001",
	ErrNotFound:            "0002",
	ErrInvalidRequest:      "0003",
	ErrUnauthorize:         "0004",
	ErrForbidden:           "0005",
	ErrCartEmpty:           "0101",
	ErrCartItemNotFound:    "0102",
	ErrVoucherNotFound:     "0201",
	ErrVoucherMinOrder:     "0202",
	ErrVoucherExpired:      "0203",
	ErrPointsExceeded:      "0204",
	ErrCheckoutIncomplete:  "0301",
	ErrSubmitInProgress:    "0302",
	ErrInvalidAddress:      "0303",
	ErrVariantNotFound:     "0401",
	ErrVariantAmbiguous:    "0402",
	ErrUpstream:            "0501",
	ErrUpstreamUnavailable: "0502",
	ErrDraftNotFound:       "0601",
	ErrDraftClosed:         "0602",
	ErrLineItemNotFound:    "0603",
}
