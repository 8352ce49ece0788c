package service

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// LinkShortener внешний коллаборатор (shorte.st и совместимые). Вызывается
// строго вне транзакций БД.
type LinkShortener interface {
	Shorten(ctx context.Context, url string, alias string) (string, error)
}

// SettingsCacher кеш настроек поверх таблицы settings.
type SettingsCacher interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Invalidate(ctx context.Context, key string) error
}

// Offer оффер из партнерской сети.
type Offer struct {
	Title       string
	Description string
	URL         string
}

// OfferSource лента офферов партнерской сети (CPAGrip и совместимые).
type OfferSource interface {
	Offers(ctx context.Context, limit int) ([]Offer, error)
}

// ReferralCreator нужен AccountService, чтобы начислить реферальные награды
// при создании аккаунта, не завися от конкретного RewardService.
type ReferralCreator interface {
	CreateReferral(ctx context.Context, referrerID int64, referredID int64) error
}
