package telegram

import (
	"context"

	"github.com/fsdevblog/tg-store/internal/domain"
	"github.com/fsdevblog/tg-store/internal/service"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type AccountServicer interface {
	RegisterContact(ctx context.Context, args service.RegisterContactArgs) (*domain.Account, bool, error)
}

type RewardServicer interface {
	VerifyLinkToken(ctx context.Context, token string) (int64, error)
	RecordChannelJoin(ctx context.Context, accountID int64, channelID int64) (int64, error)
}

type CatalogServicer interface {
	UnjoinedChannels(ctx context.Context, accountID int64) ([]domain.Channel, error)
}

// BotAPI исходящие вызовы Bot API, используемые диспетчером.
type BotAPI interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	AnswerCallbackQuery(ctx context.Context, callbackID string, text string) error
	GetChatMember(ctx context.Context, chatID string, userID int64) (*ChatMember, error)
}

// UpdateDeduper отсекает повторные доставки update (Telegram ретраит вебхук).
type UpdateDeduper interface {
	Seen(ctx context.Context, updateID int64) (bool, error)
}
