package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/unimanage/backoffice/internal/apperrors"
	"github.com/unimanage/backoffice/internal/core/domain"
	portssvc "github.com/unimanage/backoffice/internal/core/ports/services"
	"github.com/unimanage/backoffice/internal/core/services"
	"github.com/unimanage/backoffice/internal/dto"
)

type ConstructionServiceTestSuite struct {
	suite.Suite
	mockSiteRepo   *MockSiteRepository
	mockSiteTxRepo *MockSiteTxRepository
	mockBankRepo   *MockBankAccountRepository
	service        portssvc.ConstructionSvcFacade
}

func (s *ConstructionServiceTestSuite) SetupTest() {
	s.mockSiteRepo = new(MockSiteRepository)
	s.mockSiteTxRepo = new(MockSiteTxRepository)
	s.mockBankRepo = new(MockBankAccountRepository)
	s.service = services.NewConstructionService(s.mockSiteRepo, s.mockSiteTxRepo, s.mockBankRepo, noopActivity{})
}

func (s *ConstructionServiceTestSuite) TestCreateSite_DefaultsToActive() {
	ctx := context.Background()

	s.mockSiteRepo.On("SaveSite", ctx, mock.MatchedBy(func(site domain.Site) bool {
		return site.Name == "Riverside Apartments" && site.Status == domain.SiteActive
	})).Return(nil).Once()

	site, err := s.service.CreateSite(ctx, dto.CreateSiteRequest{Name: "Riverside Apartments"}, "user-1")

	s.Require().NoError(err)
	s.Equal(domain.SiteActive, site.Status)
	s.mockSiteRepo.AssertExpectations(s.T())
}

func (s *ConstructionServiceTestSuite) TestRecordSiteTransaction_SiteMustExist() {
	ctx := context.Background()
	notFound := fmt.Errorf("%w: site", apperrors.ErrNotFound)

	s.mockSiteRepo.On("FindSiteByID", ctx, "missing").Return(nil, notFound).Once()

	txn, err := s.service.RecordSiteTransaction(ctx, "missing", dto.RecordSiteTransactionRequest{
		Kind:          "INCOME",
		Amount:        dec("5000"),
		PaymentMethod: "CASH",
	}, "user-1")

	s.Require().Error(err)
	s.Nil(txn)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.mockSiteTxRepo.AssertNotCalled(s.T(), "SaveSiteTransaction", mock.Anything, mock.Anything)
}

func (s *ConstructionServiceTestSuite) TestRecordSiteTransaction_Success() {
	ctx := context.Background()
	site := &domain.Site{SiteID: "site-1", Name: "Riverside Apartments", Status: domain.SiteActive}
	when := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	s.mockSiteRepo.On("FindSiteByID", ctx, "site-1").Return(site, nil).Once()
	s.mockSiteTxRepo.On("SaveSiteTransaction", ctx, mock.MatchedBy(func(tx domain.SiteTransaction) bool {
		return tx.SiteID == "site-1" &&
			tx.Kind == domain.SiteExpense &&
			tx.Amount.Equal(dec("3200")) &&
			tx.Date.Equal(when)
	})).Return(nil).Once()

	txn, err := s.service.RecordSiteTransaction(ctx, "site-1", dto.RecordSiteTransactionRequest{
		Kind:          "EXPENSE",
		Amount:        dec("3200"),
		Date:          &when,
		Description:   "cement delivery",
		PaymentMethod: "CASH",
	}, "user-1")

	s.Require().NoError(err)
	s.Equal("site-1", txn.SiteID)
	s.mockSiteTxRepo.AssertExpectations(s.T())
}

func (s *ConstructionServiceTestSuite) TestRecordSiteTransaction_RejectsNonPositiveAmount() {
	ctx := context.Background()
	site := &domain.Site{SiteID: "site-1"}

	s.mockSiteRepo.On("FindSiteByID", ctx, "site-1").Return(site, nil).Once()

	txn, err := s.service.RecordSiteTransaction(ctx, "site-1", dto.RecordSiteTransactionRequest{
		Kind:          "INCOME",
		Amount:        dec("-10"),
		PaymentMethod: "CASH",
	}, "user-1")

	s.Require().Error(err)
	s.Nil(txn)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *ConstructionServiceTestSuite) TestGetSiteSummary_AggregatesHistory() {
	ctx := context.Background()
	site := &domain.Site{SiteID: "site-1"}
	history := []domain.SiteTransaction{
		{TransactionID: "a", SiteID: "site-1", Kind: domain.SiteIncome, Amount: dec("5000"), PaymentMethod: domain.PaymentCash},
		{TransactionID: "b", SiteID: "site-1", Kind: domain.SiteExpense, Amount: dec("3200"), PaymentMethod: domain.PaymentCash},
		{TransactionID: "c", SiteID: "site-1", Kind: domain.SiteIncome, Amount: dec("1000"), PaymentMethod: domain.PaymentCredit},
	}

	s.mockSiteRepo.On("FindSiteByID", ctx, "site-1").Return(site, nil).Once()
	s.mockSiteTxRepo.On("ListSiteTransactionsBySite", ctx, "site-1").Return(history, nil).Once()

	summary, err := s.service.GetSiteSummary(ctx, "site-1")

	s.Require().NoError(err)
	s.True(summary.Income.Equal(dec("6000")))
	s.True(summary.Expense.Equal(dec("3200")))
	s.True(summary.Balance.Equal(dec("2800")))
	s.True(summary.CreditIncome.Equal(dec("1000")))
}

func (s *ConstructionServiceTestSuite) TestGetOverallSummary_SpansAllSites() {
	ctx := context.Background()
	history := []domain.SiteTransaction{
		{TransactionID: "a", SiteID: "site-1", Kind: domain.SiteIncome, Amount: dec("5000"), PaymentMethod: domain.PaymentCash},
		{TransactionID: "b", SiteID: "site-2", Kind: domain.SiteExpense, Amount: dec("7000"), PaymentMethod: domain.PaymentCash},
	}

	s.mockSiteTxRepo.On("ListSiteTransactions", ctx).Return(history, nil).Once()

	summary, err := s.service.GetOverallSummary(ctx)

	s.Require().NoError(err)
	s.True(summary.Balance.Equal(dec("-2000")), "deficits are legitimate")
}

func (s *ConstructionServiceTestSuite) TestUpdateSite_PartialUpdate() {
	ctx := context.Background()
	site := &domain.Site{SiteID: "site-1", Name: "Riverside Apartments", Status: domain.SiteActive}
	completed := "Completed"

	s.mockSiteRepo.On("FindSiteByID", ctx, "site-1").Return(site, nil).Once()
	s.mockSiteRepo.On("SaveSite", ctx, mock.MatchedBy(func(saved domain.Site) bool {
		return saved.Name == "Riverside Apartments" && saved.Status == domain.SiteCompleted
	})).Return(nil).Once()

	updated, err := s.service.UpdateSite(ctx, "site-1", dto.UpdateSiteRequest{Status: &completed}, "user-1")

	s.Require().NoError(err)
	s.Equal(domain.SiteCompleted, updated.Status)
	s.mockSiteRepo.AssertExpectations(s.T())
}

func TestConstructionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConstructionServiceTestSuite))
}
