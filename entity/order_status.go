package entity

// Order statuses shown to customers, in the platform's shipping language.
const (
	StatusPending             = "Đang chờ"
	StatusAccepted            = "Đã nhận đơn"
	StatusProcessing          = "Đang xử lý"
	StatusInDelivery          = "Đang giao hàng"
	StatusShipped             = "Đã giao"
	StatusCancelledByYou      = "Đã hủy bởi bạn"
	StatusCancelledByEmployee = "Đã hủy bởi nhân viên"
)

const (
	PaymentMethodCOD  = "COD"
	PaymentMethodMomo = "MOMO"

	PaymentStatusUnpaid = "UNPAID"
	PaymentStatusPaid   = "PAID"
)

// allowedTransitions guards every status append; cancellation by the
// customer is only possible while the shop has not accepted the order.
var allowedTransitions = map[string][]string{
	StatusPending:    {StatusAccepted, StatusCancelledByYou, StatusCancelledByEmployee},
	StatusAccepted:   {StatusProcessing, StatusCancelledByEmployee},
	StatusProcessing: {StatusInDelivery},
	StatusInDelivery: {StatusShipped},
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
