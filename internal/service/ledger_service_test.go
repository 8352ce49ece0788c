package service

import (
	"context"
	"testing"
	"time"

	"github.com/fsdevblog/tg-store/internal/domain"
	"github.com/fsdevblog/tg-store/internal/domain/mocks"
	"github.com/fsdevblog/tg-store/internal/repository/repoargs"
	"github.com/fsdevblog/tg-store/pkg/uow"
	uowmocks "github.com/fsdevblog/tg-store/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUOW         *uowmocks.MockUOW
	mockTX          *uowmocks.MockTX
	mockAccountRepo *mocks.MockAccountRepository
	mockLedgerRepo  *mocks.MockLedgerRepository
	ledgerService   *LedgerService
}

func TestLedgerServiceSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockAccountRepo = mocks.NewMockAccountRepository(s.mockCtrl)
	s.mockLedgerRepo = mocks.NewMockLedgerRepository(s.mockCtrl)

	// Мок получения репозитория из uow. Выполняется в инициализации сервиса.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(domain.LedgerRepoName)).
		Return(s.mockLedgerRepo, nil).AnyTimes()

	s.mockTX.EXPECT().Get(uow.RepositoryName(domain.AccountRepoName)).
		Return(s.mockAccountRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(domain.LedgerRepoName)).
		Return(s.mockLedgerRepo, nil).AnyTimes()

	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		},
	).AnyTimes()

	ledgerService, servErr := NewLedgerService(s.mockUOW)
	s.Require().NoError(servErr)
	s.ledgerService = ledgerService
}

func (s *LedgerServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *LedgerServiceTestSuite) TestCredit() {
	var accountID int64 = 1
	var amount int64 = 100

	s.mockAccountRepo.EXPECT().
		AddPoints(gomock.Any(), accountID, amount).
		Return(nil)

	// Запись журнала создается с положительной суммой и той же причиной.
	s.mockLedgerRepo.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.LedgerAppend) (*domain.LedgerEntry, error) {
			s.Equal(accountID, args.AccountID)
			s.Equal(amount, args.Amount)
			s.Equal(domain.ReasonAdView, args.Reason)
			return &domain.LedgerEntry{ID: 1, AccountID: accountID, Amount: amount}, nil
		})

	err := s.ledgerService.Credit(context.Background(), LedgerOpArgs{
		AccountID: accountID,
		Amount:    amount,
		Reason:    domain.ReasonAdView,
	})
	s.Require().NoError(err)
}

func (s *LedgerServiceTestSuite) TestCredit_NonPositiveAmount() {
	// Баланс и журнал не трогаются вообще, моки репозиториев без ожиданий.
	err := s.ledgerService.Credit(context.Background(), LedgerOpArgs{
		AccountID: 1,
		Amount:    0,
		Reason:    domain.ReasonAdView,
	})
	s.Require().ErrorIs(err, errNonPositiveAmount)

	err = s.ledgerService.Credit(context.Background(), LedgerOpArgs{
		AccountID: 1,
		Amount:    -5,
		Reason:    domain.ReasonAdView,
	})
	s.Require().ErrorIs(err, errNonPositiveAmount)
}

func (s *LedgerServiceTestSuite) TestDebit() {
	var accountID int64 = 1
	var amount int64 = 30

	s.mockAccountRepo.EXPECT().
		SpendPoints(gomock.Any(), accountID, amount).
		Return(nil)

	// В журнал списание попадает с отрицательной суммой.
	s.mockLedgerRepo.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.LedgerAppend) (*domain.LedgerEntry, error) {
			s.Equal(-amount, args.Amount)
			s.Equal(domain.ReasonPurchase, args.Reason)
			return &domain.LedgerEntry{ID: 2, AccountID: accountID, Amount: -amount}, nil
		})

	err := s.ledgerService.Debit(context.Background(), LedgerOpArgs{
		AccountID: accountID,
		Amount:    amount,
		Reason:    domain.ReasonPurchase,
	})
	s.Require().NoError(err)
}

func (s *LedgerServiceTestSuite) TestDebit_InsufficientFunds() {
	var accountID int64 = 1

	s.mockAccountRepo.EXPECT().
		SpendPoints(gomock.Any(), accountID, int64(1000)).
		Return(domain.ErrInsufficientFunds)

	// Запись в журнал не создается: транзакция откатывается на первом же шаге.
	err := s.ledgerService.Debit(context.Background(), LedgerOpArgs{
		AccountID: accountID,
		Amount:    1000,
		Reason:    domain.ReasonPurchase,
	})
	s.Require().ErrorIs(err, domain.ErrInsufficientFunds)
}

func (s *LedgerServiceTestSuite) TestHistory() {
	var accountID int64 = 7

	entries := []domain.LedgerEntry{
		{ID: 2, CreatedAt: time.Now(), AccountID: accountID, Reason: domain.ReasonPurchase, Amount: -50},
		{ID: 1, CreatedAt: time.Now().Add(-time.Hour), AccountID: accountID, Reason: domain.ReasonAdView, Amount: 10},
	}

	s.mockLedgerRepo.EXPECT().
		GetByAccountID(gomock.Any(), accountID, uint(10)).
		Return(entries, nil)

	result, err := s.ledgerService.History(context.Background(), accountID, 10)
	s.Require().NoError(err)
	s.Require().Len(result, 2)
	s.Equal(entries, result)
}
