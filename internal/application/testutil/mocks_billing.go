package testutil

import (
	"context"
	"net/url"
	"sync"

	"github.com/lumira-inc/lumira/internal/application/billing/paymentgateway"
	"github.com/lumira-inc/lumira/internal/domain/billing"
	billingvo "github.com/lumira-inc/lumira/internal/domain/billing/valueobjects"
)

// MockOrderRepository is a thread-safe in-memory order store. The locking
// read behaves like the plain read here; linearization in tests comes from
// SerialTxRunner, the same way row locks provide it in production.
type MockOrderRepository struct {
	mu      sync.Mutex
	nextID  uint
	byNo    map[string]*billing.Order
	created []string

	CreateErr error
	GetErr    error
	UpdateErr error

	UpdateCalls int
}

// NewMockOrderRepository creates an empty store.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{byNo: make(map[string]*billing.Order)}
}

// Seed inserts an order directly, assigning an ID.
func (m *MockOrderRepository) Seed(o *billing.Order) *billing.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	o.SetID(m.nextID)
	m.byNo[o.OrderNo()] = o
	m.created = append(m.created, o.OrderNo())
	return o
}

// Get returns the stored order for assertions.
func (m *MockOrderRepository) Get(orderNo string) *billing.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.byNo[orderNo]
}

func (m *MockOrderRepository) Create(ctx context.Context, o *billing.Order) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.Seed(o)
	return nil
}

func (m *MockOrderRepository) GetByOrderNo(ctx context.Context, orderNo string) (*billing.Order, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.byNo[orderNo]
	if !ok {
		return nil, billing.ErrOrderNotFound
	}
	return o, nil
}

func (m *MockOrderRepository) GetByOrderNoForUpdate(ctx context.Context, orderNo string) (*billing.Order, error) {
	return m.GetByOrderNo(ctx, orderNo)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *billing.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateCalls++
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	m.byNo[o.OrderNo()] = o
	return nil
}

func (m *MockOrderRepository) ListSucceededByUserID(ctx context.Context, userID uint) ([]*billing.Order, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*billing.Order
	for i := len(m.created) - 1; i >= 0; i-- {
		o := m.byNo[m.created[i]]
		if o.UserID() == userID && o.Status() == billingvo.OrderStatusSuccess {
			out = append(out, o)
		}
	}
	return out, nil
}

// MockGateway is a fake payment provider.
type MockGateway struct {
	Session    *paymentgateway.Session
	SessionErr error

	// VerifyFn decides the callback verdict; nil accepts every callback as
	// authentic and maps the STATUS parameter to the outcome.
	VerifyFn func(params url.Values) (*paymentgateway.CallbackData, error)
}

func (m *MockGateway) CreateSession(ctx context.Context, req paymentgateway.CreateSessionRequest) (*paymentgateway.Session, error) {
	if m.SessionErr != nil {
		return nil, m.SessionErr
	}
	if m.Session != nil {
		return m.Session, nil
	}
	return &paymentgateway.Session{Token: "tok_" + req.OrderNo, MerchantID: "M1"}, nil
}

func (m *MockGateway) VerifyCallback(params url.Values) (*paymentgateway.CallbackData, error) {
	if m.VerifyFn != nil {
		return m.VerifyFn(params)
	}
	raw := map[string]string{}
	for k := range params {
		raw[k] = params.Get(k)
	}
	status := paymentgateway.CallbackSuccess
	if s := params.Get("STATUS"); s != "" && s != "TXN_SUCCESS" {
		status = paymentgateway.CallbackFailure
	}
	return &paymentgateway.CallbackData{
		OrderNo:       params.Get("ORDERID"),
		TransactionID: params.Get("TXNID"),
		Status:        status,
		Raw:           raw,
	}, nil
}
