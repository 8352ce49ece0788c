package service

import (
	"context"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/fsdevblog/tg-store/internal/domain"
	"github.com/fsdevblog/tg-store/internal/domain/mocks"
	servicemocks "github.com/fsdevblog/tg-store/internal/service/mocks"
	"github.com/fsdevblog/tg-store/pkg/uow"
	uowmocks "github.com/fsdevblog/tg-store/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUOW         *uowmocks.MockUOW
	mockAccountRepo *mocks.MockAccountRepository
	mockReferrals   *servicemocks.MockReferralCreator
	accountService  *AccountService
}

func TestAccountServiceSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockAccountRepo = mocks.NewMockAccountRepository(s.mockCtrl)
	s.mockReferrals = servicemocks.NewMockReferralCreator(s.mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(domain.AccountRepoName)).
		Return(s.mockAccountRepo, nil).AnyTimes()

	accountService, servErr := NewAccountService(s.mockUOW, s.mockReferrals)
	s.Require().NoError(servErr)
	s.accountService = accountService
}

func (s *AccountServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *AccountServiceTestSuite) TestRegisterContact_Existing() {
	existing := domain.Account{ID: 1, TelegramID: 100500, Username: gofakeit.Username()}

	s.mockAccountRepo.EXPECT().FindByTelegramID(gomock.Any(), existing.TelegramID).
		Return(&existing, nil)
	s.mockAccountRepo.EXPECT().TouchActivity(gomock.Any(), existing.ID).
		Return(nil)

	account, created, err := s.accountService.RegisterContact(context.Background(), RegisterContactArgs{
		TelegramID: existing.TelegramID,
		Username:   existing.Username,
	})
	s.Require().NoError(err)
	s.False(created)
	s.Equal(&existing, account)
}

func (s *AccountServiceTestSuite) TestRegisterContact_New() {
	var telegramID int64 = 100500

	s.mockAccountRepo.EXPECT().FindByTelegramID(gomock.Any(), telegramID).
		Return(nil, domain.ErrRecordNotFound)
	s.mockAccountRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(&domain.Account{ID: 42, TelegramID: telegramID}, nil)

	account, created, err := s.accountService.RegisterContact(context.Background(), RegisterContactArgs{
		TelegramID: telegramID,
		Username:   gofakeit.Username(),
		FirstName:  gofakeit.FirstName(),
	})
	s.Require().NoError(err)
	s.True(created)
	s.Equal(int64(42), account.ID)
}

func (s *AccountServiceTestSuite) TestRegisterContact_WithReferral() {
	var telegramID int64 = 100500
	referrer := domain.Account{ID: 7, TelegramID: 7000, ReferralCode: "REFAB12CD"}

	s.mockAccountRepo.EXPECT().FindByTelegramID(gomock.Any(), telegramID).
		Return(nil, domain.ErrRecordNotFound)
	s.mockAccountRepo.EXPECT().FindByReferralCode(gomock.Any(), referrer.ReferralCode).
		Return(&referrer, nil)
	s.mockAccountRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(&domain.Account{ID: 42, TelegramID: telegramID, ReferredBy: &referrer.ID}, nil)

	// Награды начисляются ровно один раз, после создания аккаунта.
	s.mockReferrals.EXPECT().CreateReferral(gomock.Any(), referrer.ID, int64(42)).
		Return(nil)

	account, created, err := s.accountService.RegisterContact(context.Background(), RegisterContactArgs{
		TelegramID:   telegramID,
		ReferralCode: referrer.ReferralCode,
	})
	s.Require().NoError(err)
	s.True(created)
	s.Require().NotNil(account.ReferredBy)
	s.Equal(referrer.ID, *account.ReferredBy)
}

func (s *AccountServiceTestSuite) TestRegisterContact_SelfReferralIgnored() {
	var telegramID int64 = 100500
	self := domain.Account{ID: 7, TelegramID: telegramID, ReferralCode: "REFAB12CD"}

	s.mockAccountRepo.EXPECT().FindByTelegramID(gomock.Any(), telegramID).
		Return(nil, domain.ErrRecordNotFound)
	s.mockAccountRepo.EXPECT().FindByReferralCode(gomock.Any(), self.ReferralCode).
		Return(&self, nil)
	s.mockAccountRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(&domain.Account{ID: 42, TelegramID: telegramID}, nil)

	// CreateReferral не ожидается: свой собственный код не дает наград.
	account, created, err := s.accountService.RegisterContact(context.Background(), RegisterContactArgs{
		TelegramID:   telegramID,
		ReferralCode: self.ReferralCode,
	})
	s.Require().NoError(err)
	s.True(created)
	s.Nil(account.ReferredBy)
}

func (s *AccountServiceTestSuite) TestRegisterContact_CreateRace() {
	var telegramID int64 = 100500
	winner := domain.Account{ID: 42, TelegramID: telegramID}

	s.mockAccountRepo.EXPECT().FindByTelegramID(gomock.Any(), telegramID).
		Return(nil, domain.ErrRecordNotFound)
	s.mockAccountRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrDuplicateKey)
	// Соседний запрос успел создать аккаунт первым, перечитываем его.
	s.mockAccountRepo.EXPECT().FindByTelegramID(gomock.Any(), telegramID).
		Return(&winner, nil)

	account, created, err := s.accountService.RegisterContact(context.Background(), RegisterContactArgs{
		TelegramID: telegramID,
	})
	s.Require().NoError(err)
	s.False(created)
	s.Equal(&winner, account)
}

func (s *AccountServiceTestSuite) TestGetByTelegramID_NotFound() {
	s.mockAccountRepo.EXPECT().FindByTelegramID(gomock.Any(), int64(404)).
		Return(nil, domain.ErrRecordNotFound)

	account, err := s.accountService.GetByTelegramID(context.Background(), 404)
	s.Require().ErrorIs(err, domain.ErrAccountNotFound)
	s.Nil(account)
}

func (s *AccountServiceTestSuite) TestGenerateReferralCode() {
	code, err := generateReferralCode()
	s.Require().NoError(err)
	s.True(strings.HasPrefix(code, "REF"))
	s.Len(code, 3+referralCodeBytes*2)

	other, err := generateReferralCode()
	s.Require().NoError(err)
	s.NotEqual(code, other)
}
