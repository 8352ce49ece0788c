package service

import (
	"context"
	"testing"

	"github.com/fsdevblog/tg-store/internal/domain"
	"github.com/fsdevblog/tg-store/internal/domain/mocks"
	"github.com/fsdevblog/tg-store/internal/repository/repoargs"
	servicemocks "github.com/fsdevblog/tg-store/internal/service/mocks"
	"github.com/fsdevblog/tg-store/pkg/uow"
	uowmocks "github.com/fsdevblog/tg-store/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type RewardServiceTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockUOW          *uowmocks.MockUOW
	mockTX           *uowmocks.MockTX
	mockAccountRepo  *mocks.MockAccountRepository
	mockLedgerRepo   *mocks.MockLedgerRepository
	mockAdRepo       *mocks.MockAdRepository
	mockLinkRepo     *mocks.MockLinkAdRepository
	mockChannelRepo  *mocks.MockChannelRepository
	mockReferralRepo *mocks.MockReferralRepository
	mockSettingsRepo *mocks.MockSettingsRepository
	mockShortener    *servicemocks.MockLinkShortener
	rewardService    *RewardService
}

func TestRewardServiceSuite(t *testing.T) {
	suite.Run(t, new(RewardServiceTestSuite))
}

func (s *RewardServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockAccountRepo = mocks.NewMockAccountRepository(s.mockCtrl)
	s.mockLedgerRepo = mocks.NewMockLedgerRepository(s.mockCtrl)
	s.mockAdRepo = mocks.NewMockAdRepository(s.mockCtrl)
	s.mockLinkRepo = mocks.NewMockLinkAdRepository(s.mockCtrl)
	s.mockChannelRepo = mocks.NewMockChannelRepository(s.mockCtrl)
	s.mockReferralRepo = mocks.NewMockReferralRepository(s.mockCtrl)
	s.mockSettingsRepo = mocks.NewMockSettingsRepository(s.mockCtrl)
	s.mockShortener = servicemocks.NewMockLinkShortener(s.mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(domain.SettingsRepoName)).
		Return(s.mockSettingsRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(domain.AdRepoName)).
		Return(s.mockAdRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(domain.LinkAdRepoName)).
		Return(s.mockLinkRepo, nil).AnyTimes()

	s.mockTX.EXPECT().Get(uow.RepositoryName(domain.AccountRepoName)).
		Return(s.mockAccountRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(domain.LedgerRepoName)).
		Return(s.mockLedgerRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(domain.AdRepoName)).
		Return(s.mockAdRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(domain.LinkAdRepoName)).
		Return(s.mockLinkRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(domain.ChannelRepoName)).
		Return(s.mockChannelRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(domain.ReferralRepoName)).
		Return(s.mockReferralRepo, nil).AnyTimes()

	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		},
	).AnyTimes()

	settingsService, settingsErr := NewSettingsService(s.mockUOW, nil)
	s.Require().NoError(settingsErr)

	s.rewardService = NewRewardService(s.mockUOW, settingsService, s.mockShortener)
}

func (s *RewardServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *RewardServiceTestSuite) TestCompleteAdView() {
	var accountID int64 = 1
	ad := domain.Ad{ID: 5, Title: "Watch me", PointsReward: 10, IsActive: true}

	s.mockAdRepo.EXPECT().GetByID(gomock.Any(), ad.ID).Return(&ad, nil)
	s.mockAdRepo.EXPECT().CompletePendingView(gomock.Any(), accountID, ad.ID, ad.PointsReward).
		Return(nil)
	s.mockAccountRepo.EXPECT().AddPoints(gomock.Any(), accountID, ad.PointsReward).
		Return(nil)
	s.mockLedgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.LedgerAppend) (*domain.LedgerEntry, error) {
			s.Equal(domain.ReasonAdView, args.Reason)
			s.Equal(ad.PointsReward, args.Amount)
			return &domain.LedgerEntry{ID: 1}, nil
		})
	s.mockAdRepo.EXPECT().IncrementViewCount(gomock.Any(), ad.ID).Return(nil)

	credited, err := s.rewardService.CompleteAdView(context.Background(), accountID, ad.ID)
	s.Require().NoError(err)
	s.Equal(ad.PointsReward, credited)
}

func (s *RewardServiceTestSuite) TestCompleteAdView_AlreadyCompleted() {
	var accountID int64 = 1
	ad := domain.Ad{ID: 5, Title: "Watch me", PointsReward: 10, IsActive: true}

	s.mockAdRepo.EXPECT().GetByID(gomock.Any(), ad.ID).Return(&ad, nil)
	// Незавершенного просмотра нет: повторное завершение ничего не начисляет.
	s.mockAdRepo.EXPECT().CompletePendingView(gomock.Any(), accountID, ad.ID, ad.PointsReward).
		Return(domain.ErrAlreadyCompleted)

	credited, err := s.rewardService.CompleteAdView(context.Background(), accountID, ad.ID)
	s.Require().ErrorIs(err, domain.ErrAlreadyCompleted)
	s.Zero(credited)
}

func (s *RewardServiceTestSuite) TestRecordChannelJoin() {
	var accountID int64 = 1
	channel := domain.Channel{ID: 3, Title: "News", PointsReward: 15, IsActive: true}

	s.mockChannelRepo.EXPECT().GetByID(gomock.Any(), channel.ID).Return(&channel, nil)
	s.mockChannelRepo.EXPECT().RecordJoin(gomock.Any(), accountID, channel.ID, channel.PointsReward).
		Return(nil)
	s.mockAccountRepo.EXPECT().AddPoints(gomock.Any(), accountID, channel.PointsReward).
		Return(nil)
	s.mockLedgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).
		Return(&domain.LedgerEntry{ID: 1}, nil)
	s.mockChannelRepo.EXPECT().IncrementJoinCount(gomock.Any(), channel.ID).Return(nil)

	credited, err := s.rewardService.RecordChannelJoin(context.Background(), accountID, channel.ID)
	s.Require().NoError(err)
	s.Equal(channel.PointsReward, credited)
}

func (s *RewardServiceTestSuite) TestRecordChannelJoin_Duplicate() {
	var accountID int64 = 1
	channel := domain.Channel{ID: 3, Title: "News", PointsReward: 15, IsActive: true}

	s.mockChannelRepo.EXPECT().GetByID(gomock.Any(), channel.ID).Return(&channel, nil)
	s.mockChannelRepo.EXPECT().RecordJoin(gomock.Any(), accountID, channel.ID, channel.PointsReward).
		Return(domain.ErrAlreadyJoined)

	credited, err := s.rewardService.RecordChannelJoin(context.Background(), accountID, channel.ID)
	s.Require().ErrorIs(err, domain.ErrAlreadyJoined)
	s.Zero(credited)
}

func (s *RewardServiceTestSuite) TestCreateReferral() {
	var referrerID int64 = 1
	var referredID int64 = 2

	s.mockSettingsRepo.EXPECT().Get(gomock.Any(), domain.SettingPointsPerReferral).
		Return("25", nil)
	s.mockSettingsRepo.EXPECT().Get(gomock.Any(), domain.SettingPointsForNewReferral).
		Return("5", nil)

	s.mockReferralRepo.EXPECT().Create(gomock.Any(), referrerID, referredID, int64(25)).
		Return(&domain.Referral{ID: 1, ReferrerID: referrerID, ReferredID: referredID}, nil)

	// Начисления обеим сторонам, каждое со своей причиной.
	s.mockAccountRepo.EXPECT().AddPoints(gomock.Any(), referrerID, int64(25)).Return(nil)
	s.mockAccountRepo.EXPECT().AddPoints(gomock.Any(), referredID, int64(5)).Return(nil)

	gomock.InOrder(
		s.mockLedgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, args repoargs.LedgerAppend) (*domain.LedgerEntry, error) {
				s.Equal(domain.ReasonReferral, args.Reason)
				s.Equal(referrerID, args.AccountID)
				return &domain.LedgerEntry{ID: 1}, nil
			}),
		s.mockLedgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, args repoargs.LedgerAppend) (*domain.LedgerEntry, error) {
				s.Equal(domain.ReasonReferralBonus, args.Reason)
				s.Equal(referredID, args.AccountID)
				return &domain.LedgerEntry{ID: 2}, nil
			}),
	)

	err := s.rewardService.CreateReferral(context.Background(), referrerID, referredID)
	s.Require().NoError(err)
}

func (s *RewardServiceTestSuite) TestGenerateLink() {
	var accountID int64 = 1
	linkAd := domain.LinkAd{
		ID:             7,
		Title:          "Visit",
		DestinationURL: "https://ads.example.com/page",
		PointsReward:   5,
		IsActive:       true,
	}

	s.mockLinkRepo.EXPECT().GetByID(gomock.Any(), linkAd.ID).Return(&linkAd, nil)
	s.mockLinkRepo.EXPECT().HasVerifiedClick(gomock.Any(), accountID, linkAd.ID).
		Return(false, nil)
	s.mockShortener.EXPECT().
		Shorten(gomock.Any(), linkAd.DestinationURL, "usr1_7").
		Return("https://shrt.st/abc", nil)
	s.mockLinkRepo.EXPECT().CreateClick(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.LinkClickCreate) (*domain.LinkClick, error) {
			s.Equal(accountID, args.AccountID)
			s.Equal(linkAd.ID, args.LinkAdID)
			s.NotEmpty(args.Token)
			s.Equal("https://shrt.st/abc", args.ShortenedURL)
			return &domain.LinkClick{
				ID:           1,
				AccountID:    args.AccountID,
				LinkAdID:     args.LinkAdID,
				Token:        args.Token,
				ShortenedURL: args.ShortenedURL,
			}, nil
		})

	click, err := s.rewardService.GenerateLink(context.Background(), accountID, linkAd.ID)
	s.Require().NoError(err)
	s.Equal("https://shrt.st/abc", click.ShortenedURL)
	s.NotEmpty(click.Token)
}

func (s *RewardServiceTestSuite) TestVerifyLinkToken() {
	token := "0b53e20e-83b5-4a14-b9d1-1f2b0e3cbe01"
	linkAd := domain.LinkAd{ID: 7, Title: "Visit", PointsReward: 5, IsActive: true}
	click := domain.LinkClick{ID: 1, AccountID: 1, LinkAdID: linkAd.ID, Token: token}

	s.mockLinkRepo.EXPECT().FindClickByToken(gomock.Any(), token).Return(&click, nil)
	s.mockLinkRepo.EXPECT().HasVerifiedClick(gomock.Any(), click.AccountID, linkAd.ID).
		Return(false, nil)
	s.mockLinkRepo.EXPECT().GetByID(gomock.Any(), linkAd.ID).Return(&linkAd, nil)
	s.mockLinkRepo.EXPECT().VerifyClick(gomock.Any(), token, linkAd.PointsReward).
		Return(&click, nil)
	s.mockAccountRepo.EXPECT().AddPoints(gomock.Any(), click.AccountID, linkAd.PointsReward).
		Return(nil)
	s.mockLedgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).
		Return(&domain.LedgerEntry{ID: 1}, nil)
	s.mockLinkRepo.EXPECT().IncrementViewCount(gomock.Any(), linkAd.ID).Return(nil)

	credited, err := s.rewardService.VerifyLinkToken(context.Background(), token)
	s.Require().NoError(err)
	s.Equal(linkAd.PointsReward, credited)
}

func (s *RewardServiceTestSuite) TestVerifyLinkToken_UnknownOrUsed() {
	s.mockLinkRepo.EXPECT().FindClickByToken(gomock.Any(), "missing").
		Return(nil, domain.ErrRecordNotFound)

	credited, err := s.rewardService.VerifyLinkToken(context.Background(), "missing")
	s.Require().ErrorIs(err, domain.ErrInvalidToken)
	s.Zero(credited)

	// Токен выкуплен конкурентным запросом между проверкой и верификацией.
	linkAd := domain.LinkAd{ID: 7, PointsReward: 5, IsActive: true}
	used := domain.LinkClick{ID: 1, AccountID: 1, LinkAdID: linkAd.ID, Token: "used"}

	s.mockLinkRepo.EXPECT().FindClickByToken(gomock.Any(), "used").Return(&used, nil)
	s.mockLinkRepo.EXPECT().HasVerifiedClick(gomock.Any(), used.AccountID, linkAd.ID).
		Return(false, nil)
	s.mockLinkRepo.EXPECT().GetByID(gomock.Any(), linkAd.ID).Return(&linkAd, nil)
	s.mockLinkRepo.EXPECT().VerifyClick(gomock.Any(), "used", linkAd.PointsReward).
		Return(nil, domain.ErrInvalidToken)

	credited, err = s.rewardService.VerifyLinkToken(context.Background(), "used")
	s.Require().ErrorIs(err, domain.ErrInvalidToken)
	s.Zero(credited)
}

// Награда за рекламную ссылку одноразовая на пару (аккаунт, ссылка): после
// подтвержденного перехода ни новый токен, ни верификация второго токена
// не приводят к повторному начислению.
func (s *RewardServiceTestSuite) TestGenerateLink_AlreadyEarned() {
	var accountID int64 = 1
	linkAd := domain.LinkAd{
		ID:             7,
		Title:          "Visit",
		DestinationURL: "https://ads.example.com/page",
		PointsReward:   5,
		IsActive:       true,
	}

	s.mockLinkRepo.EXPECT().GetByID(gomock.Any(), linkAd.ID).Return(&linkAd, nil)
	s.mockLinkRepo.EXPECT().HasVerifiedClick(gomock.Any(), accountID, linkAd.ID).
		Return(true, nil)

	click, err := s.rewardService.GenerateLink(context.Background(), accountID, linkAd.ID)
	s.Require().ErrorIs(err, domain.ErrAlreadyEarned)
	s.Nil(click)
}

func (s *RewardServiceTestSuite) TestVerifyLinkToken_AlreadyEarned() {
	token := "5f1d9a3c-2c41-48d2-a7be-9f60f6f2f9aa"
	click := domain.LinkClick{ID: 2, AccountID: 1, LinkAdID: 7, Token: token}

	// Второй токен той же пары: награда уже начислена по первому.
	s.mockLinkRepo.EXPECT().FindClickByToken(gomock.Any(), token).Return(&click, nil)
	s.mockLinkRepo.EXPECT().HasVerifiedClick(gomock.Any(), click.AccountID, click.LinkAdID).
		Return(true, nil)

	credited, err := s.rewardService.VerifyLinkToken(context.Background(), token)
	s.Require().ErrorIs(err, domain.ErrAlreadyEarned)
	s.Zero(credited)
}
