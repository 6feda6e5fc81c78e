package payments

import (
	"context"
)

// ChargeRequest describes a single synchronous charge attempt.
type ChargeRequest struct {
	// AmountMinor is the amount in the smallest currency unit.
	AmountMinor     int64
	Currency        string
	PaymentMethodID string

	// Customer identity used for find-or-create on the provider side.
	CustomerEmail string
	CustomerName  string
	// CustomerID, when already known, skips the lookup.
	CustomerID string

	Metadata map[string]string
}

// ChargeResponse reports the provider's verdict. A declined charge is a
// response with Success=false, not an error; errors mean the provider
// could not be asked at all.
type ChargeResponse struct {
	Success       bool
	TransactionID string
	CustomerID    string
	Status        string
	FailureReason string
}

// RefundResponse reports a provider-side refund.
type RefundResponse struct {
	RefundID    string
	AmountMinor int64
	Status      string
}

// Gateway is the payment provider the booking service charges through.
type Gateway interface {
	Charge(ctx context.Context, req *ChargeRequest) (*ChargeResponse, error)
	Refund(ctx context.Context, transactionID string, amountMinor int64) (*RefundResponse, error)
	Name() string
}
