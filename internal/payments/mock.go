package payments

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MockGateway implements Gateway in memory for development and tests
type MockGateway struct {
	config       *MockGatewayConfig
	transactions sync.Map
	customers    sync.Map
	mu           sync.RWMutex
}

// MockGatewayConfig holds configuration for the mock gateway
type MockGatewayConfig struct {
	// SuccessRate is the probability of successful payment (0.0 to 1.0)
	SuccessRate float64

	// DelayMs is the simulated processing delay in milliseconds
	DelayMs int

	// FailureReasons is a list of possible failure reasons
	FailureReasons []string
}

// DefaultMockGatewayConfig returns default configuration
func DefaultMockGatewayConfig() *MockGatewayConfig {
	return &MockGatewayConfig{
		SuccessRate: 1.0,
		DelayMs:     0,
		FailureReasons: []string{
			"insufficient_funds",
			"card_declined",
			"expired_card",
			"processing_error",
		},
	}
}

// NewMockGateway creates a new mock gateway
func NewMockGateway(config *MockGatewayConfig) *MockGateway {
	if config == nil {
		config = DefaultMockGatewayConfig()
	}

	if config.SuccessRate < 0 {
		config.SuccessRate = 0
	}
	if config.SuccessRate > 1 {
		config.SuccessRate = 1
	}

	return &MockGateway{
		config: config,
	}
}

func (g *MockGateway) Name() string {
	return "mock"
}

// Charge processes a mock payment charge
func (g *MockGateway) Charge(ctx context.Context, req *ChargeRequest) (*ChargeResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("charge request is required")
	}

	if err := g.simulateDelay(ctx); err != nil {
		return nil, err
	}

	customerID := req.CustomerID
	if customerID == "" {
		customerID = g.findOrCreateCustomer(req.CustomerEmail)
	}

	transactionID := fmt.Sprintf("mock_txn_%s", uuid.New().String()[:8])

	g.mu.RLock()
	successRate := g.config.SuccessRate
	g.mu.RUnlock()

	success := rand.Float64() < successRate

	resp := &ChargeResponse{
		TransactionID: transactionID,
		CustomerID:    customerID,
	}

	if success {
		resp.Success = true
		resp.Status = "succeeded"
		g.transactions.Store(transactionID, req.AmountMinor)
	} else {
		resp.Status = "failed"
		idx := rand.Intn(len(g.config.FailureReasons))
		resp.FailureReason = g.config.FailureReasons[idx]
	}

	return resp, nil
}

// Refund processes a mock refund against a recorded transaction
func (g *MockGateway) Refund(ctx context.Context, transactionID string, amountMinor int64) (*RefundResponse, error) {
	if transactionID == "" {
		return nil, fmt.Errorf("transaction ID is required")
	}

	if err := g.simulateDelay(ctx); err != nil {
		return nil, err
	}

	if _, ok := g.transactions.Load(transactionID); !ok {
		return nil, fmt.Errorf("transaction not found: %s", transactionID)
	}

	return &RefundResponse{
		RefundID:    fmt.Sprintf("mock_re_%s", uuid.New().String()[:8]),
		AmountMinor: amountMinor,
		Status:      "succeeded",
	}, nil
}

// SetSuccessRate updates the success rate (for testing)
func (g *MockGateway) SetSuccessRate(rate float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if rate < 0 {
		rate = 0
	}
	if rate > 1 {
		rate = 1
	}
	g.config.SuccessRate = rate
}

func (g *MockGateway) findOrCreateCustomer(email string) string {
	key := strings.ToLower(email)
	if id, ok := g.customers.Load(key); ok {
		return id.(string)
	}
	id := fmt.Sprintf("cus_mock_%s", uuid.New().String()[:12])
	actual, _ := g.customers.LoadOrStore(key, id)
	return actual.(string)
}

func (g *MockGateway) simulateDelay(ctx context.Context) error {
	if g.config.DelayMs <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(time.Duration(g.config.DelayMs) * time.Millisecond):
		return nil
	}
}
