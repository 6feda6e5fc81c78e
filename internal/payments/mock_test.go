package payments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockGatewayChargeSucceeds(t *testing.T) {
	g := NewMockGateway(&MockGatewayConfig{SuccessRate: 1.0})

	resp, err := g.Charge(context.Background(), &ChargeRequest{
		AmountMinor:     11400,
		Currency:        "usd",
		PaymentMethodID: "pm_card_visa",
		CustomerEmail:   "traveler@example.com",
	})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "succeeded", resp.Status)
	assert.NotEmpty(t, resp.TransactionID)
	assert.NotEmpty(t, resp.CustomerID)
}

func TestMockGatewayChargeDeclined(t *testing.T) {
	g := NewMockGateway(&MockGatewayConfig{
		SuccessRate:    0,
		FailureReasons: []string{"card_declined"},
	})

	resp, err := g.Charge(context.Background(), &ChargeRequest{
		AmountMinor:     5000,
		Currency:        "usd",
		PaymentMethodID: "pm_card_visa",
		CustomerEmail:   "traveler@example.com",
	})

	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "card_declined", resp.FailureReason)
}

func TestMockGatewayCustomerIsReusedByEmail(t *testing.T) {
	g := NewMockGateway(&MockGatewayConfig{SuccessRate: 1.0})

	first, err := g.Charge(context.Background(), &ChargeRequest{
		AmountMinor:   100,
		Currency:      "usd",
		CustomerEmail: "Repeat@Example.com",
	})
	require.NoError(t, err)

	second, err := g.Charge(context.Background(), &ChargeRequest{
		AmountMinor:   200,
		Currency:      "usd",
		CustomerEmail: "repeat@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, first.CustomerID, second.CustomerID)
}

func TestMockGatewayRefundRequiresKnownTransaction(t *testing.T) {
	g := NewMockGateway(&MockGatewayConfig{SuccessRate: 1.0})

	_, err := g.Refund(context.Background(), "mock_txn_missing", 100)
	assert.Error(t, err)

	charged, err := g.Charge(context.Background(), &ChargeRequest{
		AmountMinor:   11400,
		Currency:      "usd",
		CustomerEmail: "traveler@example.com",
	})
	require.NoError(t, err)

	refunded, err := g.Refund(context.Background(), charged.TransactionID, 11400)
	require.NoError(t, err)
	assert.Equal(t, int64(11400), refunded.AmountMinor)
	assert.Equal(t, "succeeded", refunded.Status)
}
