package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"fooddash-be/internal/cart"
	"fooddash-be/internal/pricing"
	"fooddash-be/internal/user"
	"fooddash-be/internal/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) LoadAll(ctx context.Context) ([]Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Order), args.Error(1)
}

func (m *MockRepository) SaveAll(ctx context.Context, orders []Order) error {
	args := m.Called(ctx, orders)
	return args.Error(0)
}

func (m *MockRepository) Append(ctx context.Context, o Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockRepository) Watch(ctx context.Context) (<-chan struct{}, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan struct{}), args.Error(1)
}

// MockCartService is a mock for the cart service
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) Restore(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCartService) Add(ctx context.Context, itemID, quantity int) (*cart.Line, error) {
	args := m.Called(ctx, itemID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Line), args.Error(1)
}

func (m *MockCartService) Increment(ctx context.Context, itemID int) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *MockCartService) Decrement(ctx context.Context, itemID int) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *MockCartService) Remove(ctx context.Context, itemID int) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *MockCartService) Items(ctx context.Context) []cart.Line {
	args := m.Called(ctx)
	return args.Get(0).([]cart.Line)
}

func (m *MockCartService) Quote(ctx context.Context) pricing.Quote {
	args := m.Called(ctx)
	return args.Get(0).(pricing.Quote)
}

func (m *MockCartService) Clear(ctx context.Context) {
	m.Called(ctx)
}

func testSession() *user.Session {
	return &user.Session{Name: "Ravi", Email: "ravi@example.com"}
}

func testAddress() Address {
	return Address{
		FullName:   "Ravi Kumar",
		Address:    "12 MG Road",
		City:       "Pune",
		PostalCode: "411001",
		Phone:      "9876543210",
	}
}

func testLines() []cart.Line {
	return []cart.Line{
		{ID: 1, Name: "Pancakes", Price: 100, Quantity: 2},
	}
}

func TestPlaceOrder_Success(t *testing.T) {
	repo := new(MockRepository)
	cartSvc := new(MockCartService)
	cartSvc.On("Items", mock.Anything).Return(testLines())
	cartSvc.On("Clear", mock.Anything).Return()
	repo.On("LoadAll", mock.Anything).Return([]Order{}, nil)
	repo.On("Append", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo, cartSvc)
	ctx := context.Background()

	o, err := svc.PlaceOrder(ctx, testSession(), testAddress())

	require.NoError(t, err)
	assert.Equal(t, "ravi@example.com", o.UserID)
	assert.Equal(t, testLines(), o.Items)
	assert.Equal(t, 200.0, o.Subtotal)
	assert.Equal(t, 20.0, o.DeliveryFee)
	assert.Equal(t, 1.0, o.Taxes)
	assert.Equal(t, int64(221), o.Total)
	assert.Equal(t, StatusProcessing, o.Status)
	assert.NotEmpty(t, o.InvoiceNo)

	_, err = time.Parse(time.RFC3339, o.OrderDate)
	assert.NoError(t, err)

	cartSvc.AssertCalled(t, "Clear", mock.Anything)
	repo.AssertCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestPlaceOrder_RequiresSession(t *testing.T) {
	svc := NewService(new(MockRepository), new(MockCartService))

	_, err := svc.PlaceOrder(context.Background(), nil, testAddress())

	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestPlaceOrder_InvalidPhone(t *testing.T) {
	repo := new(MockRepository)
	cartSvc := new(MockCartService)
	svc := NewService(repo, cartSvc)

	addr := testAddress()
	addr.Phone = "12345"

	_, err := svc.PlaceOrder(context.Background(), testSession(), addr)

	var fieldErrs validate.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "phone")

	// Rejected submissions touch neither the ledger nor the cart.
	repo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	cartSvc.AssertNotCalled(t, "Clear", mock.Anything)
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	cartSvc := new(MockCartService)
	cartSvc.On("Items", mock.Anything).Return([]cart.Line{})

	svc := NewService(new(MockRepository), cartSvc)

	_, err := svc.PlaceOrder(context.Background(), testSession(), testAddress())

	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrder_PersistFailureKeepsCart(t *testing.T) {
	repo := new(MockRepository)
	cartSvc := new(MockCartService)
	cartSvc.On("Items", mock.Anything).Return(testLines())
	repo.On("Append", mock.Anything, mock.Anything).Return(errors.New("quota exceeded"))

	svc := NewService(repo, cartSvc)

	_, err := svc.PlaceOrder(context.Background(), testSession(), testAddress())

	assert.Error(t, err)
	cartSvc.AssertNotCalled(t, "Clear", mock.Anything)
}

func TestPlaceOrder_IDsDoNotCollide(t *testing.T) {
	repo := new(MockRepository)
	cartSvc := new(MockCartService)
	cartSvc.On("Items", mock.Anything).Return(testLines())
	cartSvc.On("Clear", mock.Anything).Return()
	repo.On("Append", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo, cartSvc)
	ctx := context.Background()

	seen := make(map[int64]bool)
	for i := 0; i < 50; i++ {
		o, err := svc.PlaceOrder(ctx, testSession(), testAddress())
		require.NoError(t, err)
		assert.False(t, seen[o.ID], "order id %d issued twice", o.ID)
		seen[o.ID] = true
	}
}

func TestListOrders_FiltersByUser(t *testing.T) {
	repo := new(MockRepository)
	repo.On("LoadAll", mock.Anything).Return([]Order{
		{ID: 1, UserID: "ravi@example.com"},
		{ID: 2, UserID: "anita@example.com"},
		{ID: 3, UserID: "ravi@example.com"},
		{ID: 4, UserID: "someone@example.com"},
	}, nil)

	svc := NewService(repo, new(MockCartService))

	got, err := svc.ListOrders(context.Background(), "ravi@example.com")

	require.NoError(t, err)
	require.Len(t, got, 2)
	// Insertion order is preserved.
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
}

func TestCancelOrder(t *testing.T) {
	ledger := []Order{
		{ID: 1, UserID: "ravi@example.com"},
		{ID: 2, UserID: "anita@example.com"},
	}

	t.Run("RemovesOwnOrder", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("LoadAll", mock.Anything).Return(ledger, nil)
		repo.On("SaveAll", mock.Anything, []Order{{ID: 2, UserID: "anita@example.com"}}).Return(nil)

		svc := NewService(repo, new(MockCartService))

		require.NoError(t, svc.CancelOrder(context.Background(), "ravi@example.com", 1))
		repo.AssertExpectations(t)
	})

	t.Run("UnknownID", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("LoadAll", mock.Anything).Return(ledger, nil)

		svc := NewService(repo, new(MockCartService))

		err := svc.CancelOrder(context.Background(), "ravi@example.com", 99)
		assert.ErrorIs(t, err, ErrOrderNotFound)
		repo.AssertNotCalled(t, "SaveAll", mock.Anything, mock.Anything)
	})

	t.Run("SomeoneElsesOrder", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("LoadAll", mock.Anything).Return(ledger, nil)

		svc := NewService(repo, new(MockCartService))

		err := svc.CancelOrder(context.Background(), "ravi@example.com", 2)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestGetOrder(t *testing.T) {
	repo := new(MockRepository)
	repo.On("LoadAll", mock.Anything).Return([]Order{
		{ID: 1, UserID: "ravi@example.com", Total: 221},
	}, nil)

	svc := NewService(repo, new(MockCartService))
	ctx := context.Background()

	o, err := svc.GetOrder(ctx, "ravi@example.com", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(221), o.Total)

	_, err = svc.GetOrder(ctx, "anita@example.com", 1)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
