package telegram_test

import (
	"context"
	"os"
	"testing"

	"github.com/fsdevblog/tg-store/internal/domain"
	"github.com/fsdevblog/tg-store/internal/logger"
	"github.com/fsdevblog/tg-store/internal/service"
	"github.com/fsdevblog/tg-store/internal/transport/telegram"
	"github.com/fsdevblog/tg-store/internal/transport/telegram/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type DispatcherTestSuite struct {
	suite.Suite
	dispatcher         *telegram.Dispatcher
	mockBot            *mocks.MockBotAPI
	mockAccountService *mocks.MockAccountServicer
	mockRewardService  *mocks.MockRewardServicer
	mockCatalogService *mocks.MockCatalogServicer
}

func TestDispatcherSuite(t *testing.T) {
	suite.Run(t, new(DispatcherTestSuite))
}

func (s *DispatcherTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockBot = mocks.NewMockBotAPI(mockCtrl)
	s.mockAccountService = mocks.NewMockAccountServicer(mockCtrl)
	s.mockRewardService = mocks.NewMockRewardServicer(mockCtrl)
	s.mockCatalogService = mocks.NewMockCatalogServicer(mockCtrl)

	s.dispatcher = telegram.NewDispatcher(telegram.DispatcherArgs{
		Bot:            s.mockBot,
		AccountService: s.mockAccountService,
		RewardService:  s.mockRewardService,
		CatalogService: s.mockCatalogService,
		Logger:         logger.New(os.Stdout),
	})
}

func (s *DispatcherTestSuite) account() *domain.Account {
	return &domain.Account{ID: 10, TelegramID: 100500, Points: 150, ReferralCode: "REFabc123"}
}

func (s *DispatcherTestSuite) message(text string) *telegram.Update {
	return &telegram.Update{
		UpdateID: 1,
		Message: &telegram.Message{
			From: &telegram.User{ID: 100500, Username: "usr", FirstName: "U"},
			Chat: telegram.Chat{ID: 100500},
			Text: text,
		},
	}
}

func (s *DispatcherTestSuite) TestStart_WithReferralPayload() {
	s.mockAccountService.EXPECT().
		RegisterContact(gomock.Any(), service.RegisterContactArgs{
			TelegramID:   100500,
			Username:     "usr",
			FirstName:    "U",
			ReferralCode: "REFdeadbeef",
		}).
		Return(s.account(), true, nil)
	s.mockBot.EXPECT().
		SendMessage(gomock.Any(), int64(100500), gomock.Any()).
		Return(nil)

	err := s.dispatcher.HandleUpdate(context.Background(), s.message("/start REFdeadbeef"))
	s.Require().NoError(err)
}

func (s *DispatcherTestSuite) TestBalance() {
	s.mockAccountService.EXPECT().
		RegisterContact(gomock.Any(), gomock.Any()).
		Return(s.account(), false, nil)
	s.mockBot.EXPECT().
		SendMessage(gomock.Any(), int64(100500), "Баланс: <b>150</b> баллов").
		Return(nil)

	err := s.dispatcher.HandleUpdate(context.Background(), s.message("/balance"))
	s.Require().NoError(err)
}

func (s *DispatcherTestSuite) TestBlockedAccountIgnored() {
	blocked := s.account()
	blocked.IsBlocked = true
	s.mockAccountService.EXPECT().
		RegisterContact(gomock.Any(), gomock.Any()).
		Return(blocked, false, nil)
	// ни одного исходящего сообщения

	err := s.dispatcher.HandleUpdate(context.Background(), s.message("/balance"))
	s.Require().NoError(err)
}

func (s *DispatcherTestSuite) TestLinkToken() {
	s.mockAccountService.EXPECT().
		RegisterContact(gomock.Any(), gomock.Any()).
		Return(s.account(), false, nil).AnyTimes()

	s.mockRewardService.EXPECT().
		VerifyLinkToken(gomock.Any(), "a1b2c3").
		Return(int64(5), nil)
	s.mockBot.EXPECT().
		SendMessage(gomock.Any(), int64(100500), "Начислено <b>5</b> баллов!").
		Return(nil)

	s.Require().NoError(s.dispatcher.HandleUpdate(context.Background(), s.message("a1b2c3")))

	// использованный код
	s.mockRewardService.EXPECT().
		VerifyLinkToken(gomock.Any(), "used").
		Return(int64(0), domain.ErrInvalidToken)
	s.mockBot.EXPECT().
		SendMessage(gomock.Any(), int64(100500), "Код не найден или уже использован.").
		Return(nil)

	s.Require().NoError(s.dispatcher.HandleUpdate(context.Background(), s.message("used")))
}

func (s *DispatcherTestSuite) TestCheckChannelsCallback() {
	s.mockAccountService.EXPECT().
		RegisterContact(gomock.Any(), gomock.Any()).
		Return(s.account(), false, nil)

	channels := []domain.Channel{
		{ID: 1, TelegramID: "@joined", Username: "joined", PointsReward: 15},
		{ID: 2, TelegramID: "@skipped", Username: "skipped", PointsReward: 20},
	}
	s.mockCatalogService.EXPECT().
		UnjoinedChannels(gomock.Any(), int64(10)).
		Return(channels, nil)

	s.mockBot.EXPECT().
		GetChatMember(gomock.Any(), "@joined", int64(100500)).
		Return(&telegram.ChatMember{Status: telegram.MemberStatusMember}, nil)
	s.mockBot.EXPECT().
		GetChatMember(gomock.Any(), "@skipped", int64(100500)).
		Return(&telegram.ChatMember{Status: "left"}, nil)

	s.mockRewardService.EXPECT().
		RecordChannelJoin(gomock.Any(), int64(10), int64(1)).
		Return(int64(15), nil)

	s.mockBot.EXPECT().
		AnswerCallbackQuery(gomock.Any(), "cb-1", "Подписки засчитаны: 1. Начислено 15 баллов.").
		Return(nil)

	update := &telegram.Update{
		UpdateID: 2,
		CallbackQuery: &telegram.CallbackQuery{
			ID:   "cb-1",
			From: &telegram.User{ID: 100500, Username: "usr"},
			Data: telegram.CallbackCheckChannels,
		},
	}
	s.Require().NoError(s.dispatcher.HandleUpdate(context.Background(), update))
}
