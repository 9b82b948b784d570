package types

// InstallmentStatus is the lifecycle state of an installment or plan.
//
// Pending may move to any other state. Overdue may still be paid. Paid,
// Cancelled and Refunded are terminal.
type InstallmentStatus string

const (
	InstallmentStatusPending   InstallmentStatus = "pending"
	InstallmentStatusPaid      InstallmentStatus = "paid"
	InstallmentStatusOverdue   InstallmentStatus = "overdue"
	InstallmentStatusCancelled InstallmentStatus = "cancelled"
	InstallmentStatusRefunded  InstallmentStatus = "refunded"
)

// IsTerminal reports whether no further transition is allowed from s
func (s InstallmentStatus) IsTerminal() bool {
	switch s {
	case InstallmentStatusPaid, InstallmentStatusCancelled, InstallmentStatusRefunded:
		return true
	}
	return false
}

// CanTransitionTo reports whether the state machine permits moving from s
// to next
func (s InstallmentStatus) CanTransitionTo(next InstallmentStatus) bool {
	if s == next {
		return false
	}
	switch s {
	case InstallmentStatusPending:
		switch next {
		case InstallmentStatusPaid, InstallmentStatusOverdue, InstallmentStatusCancelled, InstallmentStatusRefunded:
			return true
		}
	case InstallmentStatusOverdue:
		return next == InstallmentStatusPaid
	}
	return false
}

// InstallmentPlan splits one order's payment into sequential dated portions
type InstallmentPlan struct {
	ID                string            `json:"id"`
	OrderID           string            `json:"order_id"`
	TotalInstallments int               `json:"total_installments"`
	InstallmentAmount Amount            `json:"installment_amount"`
	Currency          Currency          `json:"currency"`
	Status            InstallmentStatus `json:"status"`
	Installments      []Installment     `json:"installments"`
	CreatedAt         string            `json:"created_at,omitempty"`
	UpdatedAt         string            `json:"updated_at,omitempty"`
}

// Installment is a single dated portion of an installment plan
type Installment struct {
	ID                string            `json:"id"`
	InstallmentNumber int               `json:"installment_number"`
	Amount            Amount            `json:"amount"`
	DueDate           string            `json:"due_date"`
	PaidAt            *string           `json:"paid_at,omitempty"`
	Status            InstallmentStatus `json:"status"`
}

// CreateInstallmentPlanRequest creates an installment plan for an order
type CreateInstallmentPlanRequest struct {
	OrderID              string `json:"order_id"`
	InstallmentCount     int    `json:"installment_count"`
	FirstInstallmentDate string `json:"first_installment_date"` // ISO 8601 date
}

// UpdateInstallmentRequest updates a single installment
type UpdateInstallmentRequest struct {
	DueDate string  `json:"due_date,omitempty"`
	Amount  *Amount `json:"amount,omitempty"`
}

// RefundInstallmentRequest refunds a single installment. A nil amount
// requests a full refund.
type RefundInstallmentRequest struct {
	Amount *Amount `json:"amount,omitempty"`
	Reason string  `json:"reason,omitempty"`
}
