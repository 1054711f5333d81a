package entity

// AccountStatus is the moderation state shared by buyers and sellers.
// Any status may be overwritten by any other; there is no transition graph.
type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "ACTIVE"
	AccountStatusSuspended AccountStatus = "SUSPENDED"
	AccountStatusBanned    AccountStatus = "BANNED"
)

// IsValid checks if the AccountStatus is a valid value.
func (s AccountStatus) IsValid() bool {
	switch s {
	case AccountStatusActive, AccountStatusSuspended, AccountStatusBanned:
		return true
	default:
		return false
	}
}

// OrderStatus tracks fulfilment of an order.
type OrderStatus string

const (
	OrderStatusPlaced     OrderStatus = "ORDER_PLACED"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPlaced, OrderStatusProcessing, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// PaymentType is how a transaction was paid.
type PaymentType string

const (
	PaymentTypeCash PaymentType = "CASH"
	PaymentTypeCard PaymentType = "CARD"
)

// IsValid checks if the PaymentType is a valid value.
func (p PaymentType) IsValid() bool {
	return p == PaymentTypeCash || p == PaymentTypeCard
}

// TransactionStatus is the settlement state of a payment.
type TransactionStatus string

const (
	TransactionStatusPending TransactionStatus = "PENDING"
	TransactionStatusSuccess TransactionStatus = "SUCCESS"
	TransactionStatusFailed  TransactionStatus = "FAILED"
)

// IsValid checks if the TransactionStatus is a valid value.
func (s TransactionStatus) IsValid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusSuccess, TransactionStatusFailed:
		return true
	default:
		return false
	}
}

// ComplaintStatus is the moderation outcome of a complaint.
type ComplaintStatus string

const (
	ComplaintStatusPending  ComplaintStatus = "PENDING"
	ComplaintStatusResolved ComplaintStatus = "RESOLVED"
	ComplaintStatusRejected ComplaintStatus = "REJECTED"
)

// IsValid checks if the ComplaintStatus is a valid value.
func (s ComplaintStatus) IsValid() bool {
	switch s {
	case ComplaintStatusPending, ComplaintStatusResolved, ComplaintStatusRejected:
		return true
	default:
		return false
	}
}
