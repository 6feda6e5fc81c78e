package payments

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/customer"
	"github.com/stripe/stripe-go/v82/paymentintent"
	"github.com/stripe/stripe-go/v82/refund"
)

// StripeGateway implements Gateway using Stripe
type StripeGateway struct {
	secretKey string
}

// NewStripeGateway creates a new Stripe gateway
func NewStripeGateway(secretKey string) (*StripeGateway, error) {
	if secretKey == "" {
		return nil, fmt.Errorf("stripe secret key is required")
	}

	// Set Stripe API key globally
	stripe.Key = secretKey

	return &StripeGateway{secretKey: secretKey}, nil
}

func (g *StripeGateway) Name() string {
	return "stripe"
}

// Charge resolves the customer, then creates and confirms a payment intent
func (g *StripeGateway) Charge(ctx context.Context, req *ChargeRequest) (*ChargeResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("charge request is required")
	}

	customerID := req.CustomerID
	if customerID == "" {
		id, err := g.findOrCreateCustomer(req.CustomerEmail, req.CustomerName)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve customer: %w", err)
		}
		customerID = id
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(req.AmountMinor),
		Currency:           stripe.String(req.Currency),
		Customer:           stripe.String(customerID),
		PaymentMethod:      stripe.String(req.PaymentMethodID),
		Confirm:            stripe.Bool(true),
		ConfirmationMethod: stripe.String(string(stripe.PaymentIntentConfirmationMethodManual)),
		Metadata:           req.Metadata,
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	resp := &ChargeResponse{
		TransactionID: pi.ID,
		CustomerID:    customerID,
		Status:        string(pi.Status),
	}

	if pi.Status == stripe.PaymentIntentStatusSucceeded {
		resp.Success = true
	} else {
		resp.FailureReason = fmt.Sprintf("payment not completed: %s", pi.Status)
	}

	return resp, nil
}

// Refund refunds a prior payment intent
func (g *StripeGateway) Refund(ctx context.Context, transactionID string, amountMinor int64) (*RefundResponse, error) {
	if transactionID == "" {
		return nil, fmt.Errorf("transaction ID is required")
	}

	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(transactionID),
		Amount:        stripe.Int64(amountMinor),
	}

	r, err := refund.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create refund: %w", err)
	}

	return &RefundResponse{
		RefundID:    r.ID,
		AmountMinor: r.Amount,
		Status:      string(r.Status),
	}, nil
}

// findOrCreateCustomer looks up a customer by email and creates one if absent
func (g *StripeGateway) findOrCreateCustomer(email, name string) (string, error) {
	if email == "" {
		return "", fmt.Errorf("customer email is required")
	}

	listParams := &stripe.CustomerListParams{
		Email: stripe.String(email),
	}
	listParams.Limit = stripe.Int64(1)

	iter := customer.List(listParams)
	for iter.Next() {
		return iter.Customer().ID, nil
	}
	if err := iter.Err(); err != nil {
		return "", fmt.Errorf("failed to list customers: %w", err)
	}

	createParams := &stripe.CustomerParams{
		Email: stripe.String(email),
	}
	if name != "" {
		createParams.Name = stripe.String(name)
	}

	cust, err := customer.New(createParams)
	if err != nil {
		return "", fmt.Errorf("failed to create customer: %w", err)
	}

	return cust.ID, nil
}
