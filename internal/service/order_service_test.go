package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"romarket/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderRepository is a mock implementation of OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if tx, ok := args.Get(0).(pgx.Tx); ok {
		return tx, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) Create(ctx context.Context, tx pgx.Tx, order *model.OrderRecord) (int, error) {
	args := m.Called(ctx, tx, order)
	return args.Int(0), args.Error(1)
}

func (m *MockOrderRepository) GetBySeller(ctx context.Context, sellerID int) ([]model.Order, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepository) GetRecent(ctx context.Context, limit int) ([]model.Order, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

// MockTx is a minimal mock implementation of pgx.Tx for testing.
type MockTx struct {
	mock.Mock
	committed  bool
	rolledBack bool
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	m.committed = true
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	m.rolledBack = true
	return args.Error(0)
}

// Stub methods to satisfy pgx.Tx interface - these are not used in our tests
func (m *MockTx) Begin(ctx context.Context) (pgx.Tx, error) { return nil, nil }
func (m *MockTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (m *MockTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (m *MockTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (m *MockTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (m *MockTx) Exec(ctx context.Context, sql string, arguments ...any) (commandTag pgconn.CommandTag, err error) {
	return
}
func (m *MockTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (m *MockTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (m *MockTx) Conn() *pgx.Conn                                               { return nil }

func TestOrderService_CreateOrder_Success(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	req := &model.OrderRequest{
		ProductID:      5,
		BuyerEmail:     "buyer@example.com",
		RobloxUsername: "CoolPlayer123",
	}

	info := &model.PurchaseInfo{
		SellerID: 3,
		Amount:   1000,
		Price:    549,
		Discount: 10,
		Stock:    4,
	}

	mockOrderRepo := new(MockOrderRepository)
	mockListingRepo := new(MockListingRepository)
	mockTx := new(MockTx)

	service := NewOrderService(mockOrderRepo, mockListingRepo, testMarketplaceConfig(), logger)

	mockOrderRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockListingRepo.On("GetForPurchase", ctx, mockTx, 5).Return(info, nil)
	mockOrderRepo.On("Create", ctx, mockTx, mock.MatchedBy(func(order *model.OrderRecord) bool {
		return order.ProductID == 5 &&
			order.SellerID == 3 &&
			order.BuyerEmail == "buyer@example.com" &&
			order.RobloxUsername == "CoolPlayer123" &&
			order.Amount == 1000 &&
			order.TotalPrice == 494.1 &&
			order.Commission == 24.71 &&
			order.CommissionCard == "2200700535983257" &&
			order.Status == model.OrderStatusPending
	})).Return(11, nil)
	mockListingRepo.On("DecrementStock", ctx, mockTx, 5).Return(nil)
	mockTx.On("Commit", ctx).Return(nil)

	resp, err := service.CreateOrder(ctx, req)

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.True(t, resp.Success)
	assert.Equal(t, 11, resp.OrderID)
	assert.Equal(t, 494.1, resp.TotalPrice)
	assert.Equal(t, 24.71, resp.Commission)
	assert.Equal(t, "2200700535983257", resp.CommissionCard)

	mockOrderRepo.AssertExpectations(t)
	mockListingRepo.AssertExpectations(t)
	mockTx.AssertExpectations(t)
}

func TestOrderService_CreateOrder_MissingFields(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tests := []struct {
		name string
		req  *model.OrderRequest
	}{
		{"Missing product", &model.OrderRequest{BuyerEmail: "b@x.com", RobloxUsername: "p"}},
		{"Missing email", &model.OrderRequest{ProductID: 1, RobloxUsername: "p"}},
		{"Missing username", &model.OrderRequest{ProductID: 1, BuyerEmail: "b@x.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOrderRepo := new(MockOrderRepository)
			mockListingRepo := new(MockListingRepository)

			service := NewOrderService(mockOrderRepo, mockListingRepo, testMarketplaceConfig(), logger)

			resp, err := service.CreateOrder(ctx, tt.req)

			require.Error(t, err)
			assert.Equal(t, model.ErrMissingFields, err)
			assert.Nil(t, resp)
			mockOrderRepo.AssertNotCalled(t, "BeginTx")
		})
	}
}

func TestOrderService_CreateOrder_ProductNotFound(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	req := &model.OrderRequest{
		ProductID:      99,
		BuyerEmail:     "buyer@example.com",
		RobloxUsername: "CoolPlayer123",
	}

	mockOrderRepo := new(MockOrderRepository)
	mockListingRepo := new(MockListingRepository)
	mockTx := new(MockTx)

	service := NewOrderService(mockOrderRepo, mockListingRepo, testMarketplaceConfig(), logger)

	mockOrderRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockListingRepo.On("GetForPurchase", ctx, mockTx, 99).Return(nil, nil)
	mockTx.On("Rollback", ctx).Return(nil)

	resp, err := service.CreateOrder(ctx, req)

	require.Error(t, err)
	assert.Equal(t, model.ErrProductNotFound, err)
	assert.Nil(t, resp)
	assert.True(t, mockTx.rolledBack)

	mockOrderRepo.AssertNotCalled(t, "Create")
	mockTx.AssertExpectations(t)
}

func TestOrderService_CreateOrder_OutOfStock(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	req := &model.OrderRequest{
		ProductID:      5,
		BuyerEmail:     "buyer@example.com",
		RobloxUsername: "CoolPlayer123",
	}

	info := &model.PurchaseInfo{SellerID: 3, Amount: 1000, Price: 549, Stock: 0}

	mockOrderRepo := new(MockOrderRepository)
	mockListingRepo := new(MockListingRepository)
	mockTx := new(MockTx)

	service := NewOrderService(mockOrderRepo, mockListingRepo, testMarketplaceConfig(), logger)

	mockOrderRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockListingRepo.On("GetForPurchase", ctx, mockTx, 5).Return(info, nil)
	mockTx.On("Rollback", ctx).Return(nil)

	resp, err := service.CreateOrder(ctx, req)

	require.Error(t, err)
	assert.Equal(t, model.ErrOutOfStock, err)
	assert.Nil(t, resp)

	mockOrderRepo.AssertNotCalled(t, "Create")
	mockListingRepo.AssertNotCalled(t, "DecrementStock")
	mockTx.AssertExpectations(t)
}

func TestOrderService_CreateOrder_TransactionRollback(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	req := &model.OrderRequest{
		ProductID:      5,
		BuyerEmail:     "buyer@example.com",
		RobloxUsername: "CoolPlayer123",
	}

	info := &model.PurchaseInfo{SellerID: 3, Amount: 1000, Price: 549, Stock: 2}

	mockOrderRepo := new(MockOrderRepository)
	mockListingRepo := new(MockListingRepository)
	mockTx := new(MockTx)

	service := NewOrderService(mockOrderRepo, mockListingRepo, testMarketplaceConfig(), logger)

	mockOrderRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockListingRepo.On("GetForPurchase", ctx, mockTx, 5).Return(info, nil)
	mockOrderRepo.On("Create", ctx, mockTx, mock.AnythingOfType("*model.OrderRecord")).
		Return(0, errors.New("database error"))
	mockTx.On("Rollback", ctx).Return(nil)

	resp, err := service.CreateOrder(ctx, req)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, mockTx.rolledBack)
	assert.False(t, mockTx.committed)

	mockOrderRepo.AssertExpectations(t)
	mockTx.AssertExpectations(t)
}

func TestOrderService_CreateOrder_NoDiscount(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	req := &model.OrderRequest{
		ProductID:      2,
		BuyerEmail:     "buyer@example.com",
		RobloxUsername: "CoolPlayer123",
	}

	info := &model.PurchaseInfo{SellerID: 1, Amount: 400, Price: 299, Discount: 0, Stock: 1}

	mockOrderRepo := new(MockOrderRepository)
	mockListingRepo := new(MockListingRepository)
	mockTx := new(MockTx)

	service := NewOrderService(mockOrderRepo, mockListingRepo, testMarketplaceConfig(), logger)

	mockOrderRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockListingRepo.On("GetForPurchase", ctx, mockTx, 2).Return(info, nil)
	mockOrderRepo.On("Create", ctx, mockTx, mock.MatchedBy(func(order *model.OrderRecord) bool {
		return order.TotalPrice == 299 && order.Commission == 14.95
	})).Return(12, nil)
	mockListingRepo.On("DecrementStock", ctx, mockTx, 2).Return(nil)
	mockTx.On("Commit", ctx).Return(nil)

	resp, err := service.CreateOrder(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, 299.0, resp.TotalPrice)
	assert.Equal(t, 14.95, resp.Commission)
}

func TestOrderService_GetBySeller(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	orders := []model.Order{
		{ID: 2, BuyerEmail: "b@x.com", RobloxUsername: "p2", Amount: 800, TotalPrice: 399, Commission: 19.95, Status: model.OrderStatusPending, CreatedAt: time.Now()},
		{ID: 1, BuyerEmail: "a@x.com", RobloxUsername: "p1", Amount: 400, TotalPrice: 299, Commission: 14.95, Status: model.OrderStatusCompleted, CreatedAt: time.Now().Add(-time.Hour)},
	}

	mockOrderRepo := new(MockOrderRepository)
	mockListingRepo := new(MockListingRepository)

	service := NewOrderService(mockOrderRepo, mockListingRepo, testMarketplaceConfig(), logger)

	mockOrderRepo.On("GetBySeller", ctx, 3).Return(orders, nil)

	got, err := service.GetBySeller(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, orders, got)

	mockOrderRepo.AssertExpectations(t)
}

func TestOrderService_GetRecent(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	orders := []model.Order{
		{ID: 9, BuyerEmail: "b@x.com", RobloxUsername: "p", Amount: 400, TotalPrice: 299, Status: model.OrderStatusPending, CreatedAt: time.Now()},
	}

	mockOrderRepo := new(MockOrderRepository)
	mockListingRepo := new(MockListingRepository)

	service := NewOrderService(mockOrderRepo, mockListingRepo, testMarketplaceConfig(), logger)

	mockOrderRepo.On("GetRecent", ctx, 100).Return(orders, nil)

	got, err := service.GetRecent(ctx)

	require.NoError(t, err)
	assert.Equal(t, orders, got)

	mockOrderRepo.AssertExpectations(t)
}
