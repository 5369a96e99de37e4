package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/unimanage/backoffice/internal/core/domain"
	portssvc "github.com/unimanage/backoffice/internal/core/ports/services"
	"github.com/unimanage/backoffice/internal/core/services"
	"github.com/unimanage/backoffice/internal/dto"
)

type BankAccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockBankAccountRepository
	service  portssvc.BankAccountSvcFacade
}

func (s *BankAccountServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockBankAccountRepository)
	s.service = services.NewBankAccountService(s.mockRepo, noopActivity{})
}

func (s *BankAccountServiceTestSuite) TestCreateBankAccount_MapsEachSector() {
	ctx := context.Background()
	req := dto.CreateBankAccountRequest{
		BankName:        "First National",
		AccountNumber:   "0012-3456",
		EligibleSectors: []string{"exchange", "pharmacy"},
	}

	s.mockRepo.On("SaveBankAccount", ctx, mock.MatchedBy(func(account domain.BankAccount) bool {
		return len(account.EligibleSectors) == 2 &&
			account.EligibleSectors[0] == domain.SectorExchange &&
			account.EligibleSectors[1] == domain.SectorPharmacy
	})).Return(nil).Once()

	account, err := s.service.CreateBankAccount(ctx, req, "user-1")

	s.Require().NoError(err)
	s.Equal([]domain.Sector{domain.SectorExchange, domain.SectorPharmacy}, account.EligibleSectors)
	s.Equal("user-1", account.CreatedBy)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *BankAccountServiceTestSuite) TestCreateBankAccount_EmptySectorsStaysUnrestricted() {
	ctx := context.Background()
	req := dto.CreateBankAccountRequest{
		BankName:      "First National",
		AccountNumber: "0012-3456",
	}

	s.mockRepo.On("SaveBankAccount", ctx, mock.MatchedBy(func(account domain.BankAccount) bool {
		return len(account.EligibleSectors) == 0
	})).Return(nil).Once()

	account, err := s.service.CreateBankAccount(ctx, req, "user-1")

	s.Require().NoError(err)
	s.Empty(account.EligibleSectors)
	s.mockRepo.AssertExpectations(s.T())
}

func TestBankAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BankAccountServiceTestSuite))
}
