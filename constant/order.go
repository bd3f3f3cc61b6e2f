package constant

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipping  OrderStatus = "shipping"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCanceled  OrderStatus = "canceled"
)

type DraftStatus int

const (
	DraftStatusOpen      DraftStatus = 1
	DraftStatusSubmitted DraftStatus = 2
	DraftStatusExpired   DraftStatus = 3
)
