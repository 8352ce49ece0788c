package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"

	"github.com/fsdevblog/tg-store/internal/domain"
	"github.com/fsdevblog/tg-store/internal/repository/repoargs"
	"github.com/fsdevblog/tg-store/pkg/uow"
)

const (
	defaultAdReward       = 10
	defaultLinkReward     = 5
	defaultReferralReward = 20
)

// RewardService движок наград: просмотры рекламы, подписки на каналы, рефералы,
// токены рекламных ссылок. Каждое начисление защищено от повтора переходом
// состояния или уникальным ограничением внутри транзакции начисления.
type RewardService struct {
	uow       uow.UOW
	settings  *SettingsService
	shortener LinkShortener
}

func NewRewardService(u uow.UOW, settings *SettingsService, shortener LinkShortener) *RewardService {
	return &RewardService{
		uow:       u,
		settings:  settings,
		shortener: shortener,
	}
}

// RecordAdView фиксирует начало просмотра. Баллы на этом шаге не начисляются.
func (s *RewardService) RecordAdView(ctx context.Context, accountID int64, adID int64) error {
	adRepo, adRepoErr := uow.GetRepositoryAs[domain.AdRepository](s.uow, uow.RepositoryName(domain.AdRepoName))
	if adRepoErr != nil {
		return adRepoErr //nolint:wrapcheck
	}

	ad, adErr := adRepo.GetByID(ctx, adID)
	if adErr != nil {
		return adErr //nolint:wrapcheck
	}
	if !ad.IsActive {
		return domain.ErrRecordNotFound
	}
	return adRepo.RecordView(ctx, accountID, adID) //nolint:wrapcheck
}

// CompleteAdView завершает последний незавершенный просмотр и начисляет награду.
// Повторный вызов для той же пары (account, ad) возвращает ErrAlreadyCompleted
// и баланс не меняет. Возвращает число начисленных баллов.
func (s *RewardService) CompleteAdView(ctx context.Context, accountID int64, adID int64) (int64, error) {
	var credited int64

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		adRepo, adRepoErr := uow.GetAs[domain.AdRepository](tx, uow.RepositoryName(domain.AdRepoName))
		if adRepoErr != nil {
			return adRepoErr //nolint:wrapcheck
		}

		ad, adErr := adRepo.GetByID(c, adID)
		if adErr != nil {
			return adErr //nolint:wrapcheck
		}

		if completeErr := adRepo.CompletePendingView(c, accountID, adID, ad.PointsReward); completeErr != nil {
			return completeErr //nolint:wrapcheck
		}

		creditErr := creditPoints(c, tx, LedgerOpArgs{
			AccountID:   accountID,
			Amount:      ad.PointsReward,
			Reason:      domain.ReasonAdView,
			Description: "Ad view: " + ad.Title,
			ReferenceID: &ad.ID,
		})
		if creditErr != nil {
			return creditErr
		}

		if incErr := adRepo.IncrementViewCount(c, adID); incErr != nil {
			return incErr //nolint:wrapcheck
		}
		credited = ad.PointsReward
		return nil
	})

	if txErr != nil {
		if errors.Is(txErr, domain.ErrAlreadyCompleted) || errors.Is(txErr, domain.ErrRecordNotFound) {
			return 0, txErr
		}
		return 0, fmt.Errorf("completing view of ad %d by account %d: %w", adID, accountID, txErr)
	}
	return credited, nil
}

// RecordChannelJoin начисляет награду за подписку. Повторная подписка на тот же
// канал отсекается уникальным индексом - вернется ErrAlreadyJoined без начисления.
func (s *RewardService) RecordChannelJoin(ctx context.Context, accountID int64, channelID int64) (int64, error) {
	var credited int64

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		channelRepo, chRepoErr := uow.GetAs[domain.ChannelRepository](tx, uow.RepositoryName(domain.ChannelRepoName))
		if chRepoErr != nil {
			return chRepoErr //nolint:wrapcheck
		}

		channel, channelErr := channelRepo.GetByID(c, channelID)
		if channelErr != nil {
			return channelErr //nolint:wrapcheck
		}

		if joinErr := channelRepo.RecordJoin(c, accountID, channelID, channel.PointsReward); joinErr != nil {
			return joinErr //nolint:wrapcheck
		}

		creditErr := creditPoints(c, tx, LedgerOpArgs{
			AccountID:   accountID,
			Amount:      channel.PointsReward,
			Reason:      domain.ReasonChannelJoin,
			Description: "Channel join: " + channel.Title,
			ReferenceID: &channel.ID,
		})
		if creditErr != nil {
			return creditErr
		}

		if incErr := channelRepo.IncrementJoinCount(c, channelID); incErr != nil {
			return incErr //nolint:wrapcheck
		}
		credited = channel.PointsReward
		return nil
	})

	if txErr != nil {
		if errors.Is(txErr, domain.ErrAlreadyJoined) || errors.Is(txErr, domain.ErrRecordNotFound) {
			return 0, txErr
		}
		return 0, fmt.Errorf("recording join of channel %d by account %d: %w", channelID, accountID, txErr)
	}
	return credited, nil
}

// CreateReferral начисляет награды за приглашение: пригласившему и приглашенному
// (welcome-бонус). Вызывается ровно один раз - в момент создания приглашенного
// аккаунта; повторный вызов для того же приглашенного - ошибка вызывающего,
// уникальный индекс по referred_id вернет дубликат.
func (s *RewardService) CreateReferral(ctx context.Context, referrerID int64, referredID int64) error {
	referrerPoints := s.settings.GetInt(ctx, domain.SettingPointsPerReferral, defaultReferralReward)
	referredPoints := s.settings.GetInt(ctx, domain.SettingPointsForNewReferral, referrerPoints)

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		referralRepo, refRepoErr := uow.GetAs[domain.ReferralRepository](tx, uow.RepositoryName(domain.ReferralRepoName))
		if refRepoErr != nil {
			return refRepoErr //nolint:wrapcheck
		}

		if _, createErr := referralRepo.Create(c, referrerID, referredID, referrerPoints); createErr != nil {
			return createErr //nolint:wrapcheck
		}

		creditErr := creditPoints(c, tx, LedgerOpArgs{
			AccountID:   referrerID,
			Amount:      referrerPoints,
			Reason:      domain.ReasonReferral,
			Description: "Referral reward",
			ReferenceID: &referredID,
		})
		if creditErr != nil {
			return creditErr
		}

		return creditPoints(c, tx, LedgerOpArgs{
			AccountID:   referredID,
			Amount:      referredPoints,
			Reason:      domain.ReasonReferralBonus,
			Description: "Referral welcome bonus",
			ReferenceID: &referrerID,
		})
	})

	if txErr != nil {
		return fmt.Errorf("creating referral %d -> %d: %w", referrerID, referredID, txErr)
	}
	return nil
}

// GenerateLink выдает токен на переход по рекламной ссылке. Награда за ссылку
// одноразовая: если у пары (account, link ad) уже есть подтвержденный переход,
// новый токен не выдается - ErrAlreadyEarned. Сокращение ссылки - внешний HTTP
// вызов, он выполняется до открытия транзакции и никогда внутри нее.
func (s *RewardService) GenerateLink(ctx context.Context, accountID int64, linkAdID int64) (*domain.LinkClick, error) {
	linkRepo, linkRepoErr := uow.GetRepositoryAs[domain.LinkAdRepository](s.uow, uow.RepositoryName(domain.LinkAdRepoName))
	if linkRepoErr != nil {
		return nil, linkRepoErr //nolint:wrapcheck
	}

	ad, adErr := linkRepo.GetByID(ctx, linkAdID)
	if adErr != nil {
		return nil, adErr //nolint:wrapcheck
	}
	if !ad.IsActive {
		return nil, domain.ErrRecordNotFound
	}

	earned, earnedErr := linkRepo.HasVerifiedClick(ctx, accountID, linkAdID)
	if earnedErr != nil {
		return nil, earnedErr //nolint:wrapcheck
	}
	if earned {
		return nil, domain.ErrAlreadyEarned
	}

	token := uuid.NewString()
	alias := fmt.Sprintf("usr%d_%d", accountID, linkAdID)

	shortened, shortenErr := s.shortener.Shorten(ctx, ad.DestinationURL, alias)
	if shortenErr != nil {
		return nil, pkgerrors.Wrapf(shortenErr, "shortening link ad %d", linkAdID)
	}

	click, clickErr := linkRepo.CreateClick(ctx, repoargs.LinkClickCreate{
		AccountID:    accountID,
		LinkAdID:     linkAdID,
		Token:        token,
		ShortenedURL: shortened,
	})
	if clickErr != nil {
		return nil, clickErr //nolint:wrapcheck
	}
	return click, nil
}

// VerifyLinkToken одноразовая верификация токена. Несуществующий или уже
// использованный токен - ErrInvalidToken без начисления. Если награда за эту
// ссылку уже была начислена по другому токену - ErrAlreadyEarned.
func (s *RewardService) VerifyLinkToken(ctx context.Context, token string) (int64, error) {
	var credited int64

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		linkRepo, linkRepoErr := uow.GetAs[domain.LinkAdRepository](tx, uow.RepositoryName(domain.LinkAdRepoName))
		if linkRepoErr != nil {
			return linkRepoErr //nolint:wrapcheck
		}

		click, findErr := linkRepo.FindClickByToken(c, token)
		if findErr != nil {
			if errors.Is(findErr, domain.ErrRecordNotFound) {
				return domain.ErrInvalidToken
			}
			return findErr //nolint:wrapcheck
		}

		earned, earnedErr := linkRepo.HasVerifiedClick(c, click.AccountID, click.LinkAdID)
		if earnedErr != nil {
			return earnedErr //nolint:wrapcheck
		}
		if earned {
			return domain.ErrAlreadyEarned
		}

		ad, adErr := linkRepo.GetByID(c, click.LinkAdID)
		if adErr != nil {
			return adErr //nolint:wrapcheck
		}

		verified, verifyErr := linkRepo.VerifyClick(c, token, ad.PointsReward)
		if verifyErr != nil {
			return verifyErr //nolint:wrapcheck
		}

		creditErr := creditPoints(c, tx, LedgerOpArgs{
			AccountID:   verified.AccountID,
			Amount:      ad.PointsReward,
			Reason:      domain.ReasonLinkAd,
			Description: "Link ad: " + ad.Title,
			ReferenceID: &ad.ID,
		})
		if creditErr != nil {
			return creditErr
		}

		if incErr := linkRepo.IncrementViewCount(c, ad.ID); incErr != nil {
			return incErr //nolint:wrapcheck
		}
		credited = ad.PointsReward
		return nil
	})

	if txErr != nil {
		if errors.Is(txErr, domain.ErrInvalidToken) || errors.Is(txErr, domain.ErrAlreadyEarned) {
			return 0, txErr
		}
		return 0, fmt.Errorf("verifying link token: %w", txErr)
	}
	return credited, nil
}
