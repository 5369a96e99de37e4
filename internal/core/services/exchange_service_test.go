package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/unimanage/backoffice/internal/apperrors"
	"github.com/unimanage/backoffice/internal/core/domain"
	portssvc "github.com/unimanage/backoffice/internal/core/ports/services"
	"github.com/unimanage/backoffice/internal/core/services"
	"github.com/unimanage/backoffice/internal/dto"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type ExchangeServiceTestSuite struct {
	suite.Suite
	mockTxRepo   *MockExchangeTxRepository
	mockBankRepo *MockBankAccountRepository
	service      portssvc.ExchangeSvcFacade
}

func (s *ExchangeServiceTestSuite) SetupTest() {
	s.mockTxRepo = new(MockExchangeTxRepository)
	s.mockBankRepo = new(MockBankAccountRepository)
	seed := domain.Vault{
		"USD":                    dec("10000"),
		domain.LocalCurrencyCode: dec("500000"),
	}
	s.service = services.NewExchangeService(s.mockTxRepo, s.mockBankRepo, noopActivity{}, seed)
}

func (s *ExchangeServiceTestSuite) TestRecordTransaction_BuySuccess() {
	ctx := context.Background()
	req := dto.RecordExchangeRequest{
		Kind:          "BUY",
		CurrencyCode:  "USD",
		Amount:        dec("1000"),
		Rate:          dec("1.02"),
		CustomerName:  "A. Customer",
		PaymentMethod: "CASH",
	}

	s.mockTxRepo.On("ListTransactions", ctx).Return([]domain.ExchangeTransaction{}, nil).Once()
	s.mockTxRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(tx domain.ExchangeTransaction) bool {
		return tx.Kind == domain.ExchangeBuy &&
			tx.CurrencyCode == "USD" &&
			tx.TotalLocal.Equal(dec("1020")) &&
			tx.TransactionID != ""
	})).Return(nil).Once()

	txn, err := s.service.RecordTransaction(ctx, req, "user-1")

	s.Require().NoError(err)
	s.Require().NotNil(txn)
	s.True(txn.TotalLocal.Equal(dec("1020")))
	s.Equal("user-1", txn.CreatedBy)
	s.mockTxRepo.AssertExpectations(s.T())
}

func (s *ExchangeServiceTestSuite) TestRecordTransaction_SellBeyondHoldings() {
	ctx := context.Background()
	req := dto.RecordExchangeRequest{
		Kind:          "SELL",
		CurrencyCode:  "USD",
		Amount:        dec("20000"),
		Rate:          dec("1.05"),
		PaymentMethod: "CASH",
	}

	s.mockTxRepo.On("ListTransactions", ctx).Return([]domain.ExchangeTransaction{}, nil).Once()

	txn, err := s.service.RecordTransaction(ctx, req, "user-1")

	s.Require().Error(err)
	s.Nil(txn)
	s.ErrorIs(err, apperrors.ErrValidation)
	var insufficient *apperrors.InsufficientHoldingsError
	s.ErrorAs(err, &insufficient)
	s.Equal("USD", insufficient.CurrencyCode)
	s.mockTxRepo.AssertNotCalled(s.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (s *ExchangeServiceTestSuite) TestRecordTransaction_BuyBeyondLocalCash() {
	ctx := context.Background()
	req := dto.RecordExchangeRequest{
		Kind:          "BUY",
		CurrencyCode:  "EUR",
		Amount:        dec("600000"),
		Rate:          dec("1.00"),
		PaymentMethod: "CASH",
	}

	s.mockTxRepo.On("ListTransactions", ctx).Return([]domain.ExchangeTransaction{}, nil).Once()

	txn, err := s.service.RecordTransaction(ctx, req, "user-1")

	s.Require().Error(err)
	s.Nil(txn)
	var insufficient *apperrors.InsufficientLocalCashError
	s.ErrorAs(err, &insufficient)
	s.mockTxRepo.AssertNotCalled(s.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (s *ExchangeServiceTestSuite) TestRecordTransaction_BankRequiresAccountID() {
	ctx := context.Background()
	req := dto.RecordExchangeRequest{
		Kind:          "BUY",
		CurrencyCode:  "USD",
		Amount:        dec("100"),
		Rate:          dec("1.02"),
		PaymentMethod: "BANK",
	}

	txn, err := s.service.RecordTransaction(ctx, req, "user-1")

	s.Require().Error(err)
	s.Nil(txn)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *ExchangeServiceTestSuite) TestRecordTransaction_BankAccountIneligible() {
	ctx := context.Background()
	account := &domain.BankAccount{
		AccountID:       "acc-1",
		BankName:        "First Bank",
		EligibleSectors: []domain.Sector{domain.SectorPharmacy},
	}
	req := dto.RecordExchangeRequest{
		Kind:          "BUY",
		CurrencyCode:  "USD",
		Amount:        dec("100"),
		Rate:          dec("1.02"),
		PaymentMethod: "BANK",
		BankAccountID: "acc-1",
	}

	s.mockBankRepo.On("FindBankAccountByID", ctx, "acc-1").Return(account, nil).Once()

	txn, err := s.service.RecordTransaction(ctx, req, "user-1")

	s.Require().Error(err)
	s.Nil(txn)
	var ineligible *apperrors.IneligibleBankAccountError
	s.ErrorAs(err, &ineligible)
	s.mockTxRepo.AssertNotCalled(s.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (s *ExchangeServiceTestSuite) TestRecordTransaction_RejectsLocalCurrency() {
	ctx := context.Background()
	req := dto.RecordExchangeRequest{
		Kind:          "BUY",
		CurrencyCode:  domain.LocalCurrencyCode,
		Amount:        dec("100"),
		Rate:          dec("1.00"),
		PaymentMethod: "CASH",
	}

	txn, err := s.service.RecordTransaction(ctx, req, "user-1")

	s.Require().Error(err)
	s.Nil(txn)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *ExchangeServiceTestSuite) TestGetHoldings_ReusesSnapshot() {
	ctx := context.Background()

	// A single history load must serve both reads.
	s.mockTxRepo.On("ListTransactions", ctx).Return([]domain.ExchangeTransaction{}, nil).Once()

	first, err := s.service.GetHoldings(ctx)
	s.Require().NoError(err)
	s.True(first[domain.LocalCurrencyCode].Equal(dec("500000")))

	// Corrupting the returned copy must not leak into the snapshot.
	first["USD"] = dec("-1")

	second, err := s.service.GetHoldings(ctx)
	s.Require().NoError(err)
	s.True(second["USD"].Equal(dec("10000")))
	s.mockTxRepo.AssertExpectations(s.T())
}

func (s *ExchangeServiceTestSuite) TestRecordTransaction_InvalidatesSnapshot() {
	ctx := context.Background()
	recorded := domain.ExchangeTransaction{
		TransactionID: "tx-1",
		Kind:          domain.ExchangeBuy,
		CurrencyCode:  "USD",
		Amount:        dec("1000"),
		Rate:          dec("1.02"),
	}

	s.mockTxRepo.On("ListTransactions", ctx).Return([]domain.ExchangeTransaction{}, nil).Once()
	s.mockTxRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.ExchangeTransaction")).Return(nil).Once()
	s.mockTxRepo.On("ListTransactions", ctx).Return([]domain.ExchangeTransaction{recorded}, nil).Once()

	req := dto.RecordExchangeRequest{
		Kind:          "BUY",
		CurrencyCode:  "USD",
		Amount:        dec("1000"),
		Rate:          dec("1.02"),
		PaymentMethod: "CASH",
	}
	_, err := s.service.RecordTransaction(ctx, req, "user-1")
	s.Require().NoError(err)

	vault, err := s.service.GetHoldings(ctx)
	s.Require().NoError(err)
	s.True(vault["USD"].Equal(dec("11000")), "got %s", vault["USD"])
	s.True(vault[domain.LocalCurrencyCode].Equal(dec("498980")), "got %s", vault[domain.LocalCurrencyCode])
	s.mockTxRepo.AssertExpectations(s.T())
}

func (s *ExchangeServiceTestSuite) TestDeleteTransaction_NotFound() {
	ctx := context.Background()
	notFound := fmt.Errorf("%w: transaction", apperrors.ErrNotFound)

	s.mockTxRepo.On("DeleteTransaction", ctx, "missing").Return(notFound).Once()

	err := s.service.DeleteTransaction(ctx, "missing")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.mockTxRepo.AssertExpectations(s.T())
}

func (s *ExchangeServiceTestSuite) TestGetStats() {
	ctx := context.Background()
	history := []domain.ExchangeTransaction{
		{TransactionID: "a", Kind: domain.ExchangeBuy, CurrencyCode: "USD", Amount: dec("100"), Rate: dec("1.00")},
		{TransactionID: "b", Kind: domain.ExchangeSell, CurrencyCode: "USD", Amount: dec("40"), Rate: dec("1.05")},
	}

	s.mockTxRepo.On("ListTransactions", ctx).Return(history, nil).Once()

	stats, err := s.service.GetStats(ctx)

	s.Require().NoError(err)
	s.Equal(2, stats.Count)
	s.True(stats.ByCurrency["USD"].Bought.Equal(dec("100")))
	s.True(stats.ByCurrency["USD"].Sold.Equal(dec("40")))
	s.mockTxRepo.AssertExpectations(s.T())
}

func TestExchangeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeServiceTestSuite))
}
