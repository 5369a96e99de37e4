package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/unimanage/backoffice/internal/apperrors"
	"github.com/unimanage/backoffice/internal/core/domain"
	"github.com/unimanage/backoffice/internal/core/ledger"
	portssvc "github.com/unimanage/backoffice/internal/core/ports/services"
	"github.com/unimanage/backoffice/internal/core/services"
	"github.com/unimanage/backoffice/internal/dto"
)

type RateServiceTestSuite struct {
	suite.Suite
	mockRepo *MockRateCatalogRepository
	service  portssvc.RateSvcFacade
}

func (s *RateServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockRateCatalogRepository)
	s.service = services.NewRateService(s.mockRepo, noopActivity{}, ledger.ResolveRatesOptions{UseDefaultSeedWhenEmpty: true})
}

func (s *RateServiceTestSuite) TestGetRates_NeverWrittenFallsBackToSeed() {
	ctx := context.Background()

	s.mockRepo.On("FetchRawRates", ctx).Return(nil, nil).Once()

	table, err := s.service.GetRates(ctx)

	s.Require().NoError(err)
	s.Contains(table, "USD")
	s.True(table["USD"].Sell.Equal(dec("1.02")))
	s.mockRepo.AssertExpectations(s.T())
}

func (s *RateServiceTestSuite) TestGetRates_ConfiguredSeedWinsOverBuiltIn() {
	ctx := context.Background()
	seed := domain.RateTable{
		"CHF": {CurrencyCode: "CHF", Buy: dec("1.10"), Sell: dec("1.14")},
	}
	service := services.NewRateService(s.mockRepo, noopActivity{},
		ledger.ResolveRatesOptions{UseDefaultSeedWhenEmpty: true, Seed: seed})

	s.mockRepo.On("FetchRawRates", ctx).Return(nil, nil).Once()

	table, err := service.GetRates(ctx)

	s.Require().NoError(err)
	s.Require().Contains(table, "CHF")
	s.True(table["CHF"].Sell.Equal(dec("1.14")))
	s.NotContains(table, "USD")
}

func (s *RateServiceTestSuite) TestGetRates_ClearedCatalogStaysEmpty() {
	ctx := context.Background()

	s.mockRepo.On("FetchRawRates", ctx).Return([]byte("[]"), nil).Once()

	table, err := s.service.GetRates(ctx)

	s.Require().NoError(err)
	s.Empty(table)
}

func (s *RateServiceTestSuite) TestGetRates_LegacyFieldSpelling() {
	ctx := context.Background()
	doc := []byte(`{"usd": {"buy_rate": "1.01", "sell_rate": "1.04"}}`)

	s.mockRepo.On("FetchRawRates", ctx).Return(doc, nil).Once()

	table, err := s.service.GetRates(ctx)

	s.Require().NoError(err)
	s.Require().Contains(table, "USD")
	s.True(table["USD"].Buy.Equal(dec("1.01")))
	s.True(table["USD"].Sell.Equal(dec("1.04")))
}

func (s *RateServiceTestSuite) TestReplaceRates_StoresCanonicalTable() {
	ctx := context.Background()
	req := dto.ReplaceRatesRequest{Rates: []dto.RateUpsert{
		{CurrencyCode: "USD", Buy: dec("1.00"), Sell: dec("1.03")},
		{CurrencyCode: "EUR", Buy: dec("0.91"), Sell: dec("0.94")},
	}}

	s.mockRepo.On("StoreRates", ctx, mock.MatchedBy(func(table domain.RateTable) bool {
		return len(table) == 2 && table["USD"].Sell.Equal(dec("1.03"))
	})).Return(nil).Once()

	table, err := s.service.ReplaceRates(ctx, req, "user-1")

	s.Require().NoError(err)
	s.Len(table, 2)
	s.False(table["USD"].UpdatedAt.IsZero())
	s.mockRepo.AssertExpectations(s.T())
}

func (s *RateServiceTestSuite) TestReplaceRates_EmptyListClearsCatalog() {
	ctx := context.Background()

	s.mockRepo.On("StoreRates", ctx, mock.MatchedBy(func(table domain.RateTable) bool {
		return len(table) == 0
	})).Return(nil).Once()

	table, err := s.service.ReplaceRates(ctx, dto.ReplaceRatesRequest{}, "user-1")

	s.Require().NoError(err)
	s.Empty(table)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *RateServiceTestSuite) TestReplaceRates_RejectsNonPositive() {
	ctx := context.Background()
	req := dto.ReplaceRatesRequest{Rates: []dto.RateUpsert{
		{CurrencyCode: "USD", Buy: dec("0"), Sell: dec("1.03")},
	}}

	table, err := s.service.ReplaceRates(ctx, req, "user-1")

	s.Require().Error(err)
	s.Nil(table)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "StoreRates", mock.Anything, mock.Anything)
}

func (s *RateServiceTestSuite) TestReplaceRates_RejectsDuplicateCurrency() {
	ctx := context.Background()
	req := dto.ReplaceRatesRequest{Rates: []dto.RateUpsert{
		{CurrencyCode: "USD", Buy: dec("1.00"), Sell: dec("1.03")},
		{CurrencyCode: "USD", Buy: dec("1.01"), Sell: dec("1.04")},
	}}

	table, err := s.service.ReplaceRates(ctx, req, "user-1")

	s.Require().Error(err)
	s.Nil(table)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func TestRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RateServiceTestSuite))
}
