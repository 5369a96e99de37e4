package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/unimanage/backoffice/internal/core/domain"
)

// --- Mock ExchangeTransactionRepository ---
type MockExchangeTxRepository struct {
	mock.Mock
}

func (m *MockExchangeTxRepository) ListTransactions(ctx context.Context) ([]domain.ExchangeTransaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeTransaction), args.Error(1)
}

func (m *MockExchangeTxRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.ExchangeTransaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeTransaction), args.Error(1)
}

func (m *MockExchangeTxRepository) SaveTransaction(ctx context.Context, tx domain.ExchangeTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockExchangeTxRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// --- Mock RateCatalogRepository ---
type MockRateCatalogRepository struct {
	mock.Mock
}

func (m *MockRateCatalogRepository) FetchRawRates(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockRateCatalogRepository) StoreRates(ctx context.Context, table domain.RateTable) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}

// --- Mock StockRepository ---
type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) ListStockItems(ctx context.Context) ([]domain.StockItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockItem), args.Error(1)
}

func (m *MockStockRepository) FindStockItemByID(ctx context.Context, itemID string) (*domain.StockItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockItem), args.Error(1)
}

func (m *MockStockRepository) FindStockItemsByIDs(ctx context.Context, itemIDs []string) (map[string]domain.StockItem, error) {
	args := m.Called(ctx, itemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.StockItem), args.Error(1)
}

func (m *MockStockRepository) SaveStockItem(ctx context.Context, item domain.StockItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

// --- Mock SaleRepository ---
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) ListSales(ctx context.Context) ([]domain.Sale, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) SaveSaleWithDeductions(ctx context.Context, sale domain.Sale, updatedItems []domain.StockItem) error {
	args := m.Called(ctx, sale, updatedItems)
	return args.Error(0)
}

// --- Mock SiteRepository ---
type MockSiteRepository struct {
	mock.Mock
}

func (m *MockSiteRepository) ListSites(ctx context.Context) ([]domain.Site, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Site), args.Error(1)
}

func (m *MockSiteRepository) FindSiteByID(ctx context.Context, siteID string) (*domain.Site, error) {
	args := m.Called(ctx, siteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Site), args.Error(1)
}

func (m *MockSiteRepository) SaveSite(ctx context.Context, site domain.Site) error {
	args := m.Called(ctx, site)
	return args.Error(0)
}

func (m *MockSiteRepository) DeleteSite(ctx context.Context, siteID string) error {
	args := m.Called(ctx, siteID)
	return args.Error(0)
}

// --- Mock SiteTransactionRepository ---
type MockSiteTxRepository struct {
	mock.Mock
}

func (m *MockSiteTxRepository) ListSiteTransactions(ctx context.Context) ([]domain.SiteTransaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SiteTransaction), args.Error(1)
}

func (m *MockSiteTxRepository) ListSiteTransactionsBySite(ctx context.Context, siteID string) ([]domain.SiteTransaction, error) {
	args := m.Called(ctx, siteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SiteTransaction), args.Error(1)
}

func (m *MockSiteTxRepository) SaveSiteTransaction(ctx context.Context, tx domain.SiteTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock BankAccountRepository ---
type MockBankAccountRepository struct {
	mock.Mock
}

func (m *MockBankAccountRepository) ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankAccount), args.Error(1)
}

func (m *MockBankAccountRepository) FindBankAccountByID(ctx context.Context, accountID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockBankAccountRepository) SaveBankAccount(ctx context.Context, account domain.BankAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockBankAccountRepository) DeleteBankAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

// --- Mock ActivityLogRepository ---
type MockActivityLogRepository struct {
	mock.Mock
}

func (m *MockActivityLogRepository) ListActivityLogs(ctx context.Context, limit int) ([]domain.ActivityLog, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityLog), args.Error(1)
}

func (m *MockActivityLogRepository) SaveActivityLog(ctx context.Context, entry domain.ActivityLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// noopActivity satisfies the activity writer port without touching storage.
// Most service tests do not care about the audit trail.
type noopActivity struct{}

func (noopActivity) Record(ctx context.Context, actionType, moduleName, details, userID string) {}
