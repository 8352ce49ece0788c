package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/fsdevblog/tg-store/internal/domain"
	"github.com/fsdevblog/tg-store/internal/repository/repoargs"
	"github.com/fsdevblog/tg-store/pkg/uow"
)

const referralCodeBytes = 4

type AccountService struct {
	uow         uow.UOW
	accountRepo domain.AccountRepository
	referrals   ReferralCreator
}

func NewAccountService(u uow.UOW, referrals ReferralCreator) (*AccountService, error) {
	accountRepo, err := uow.GetRepositoryAs[domain.AccountRepository](u, uow.RepositoryName(domain.AccountRepoName))
	if err != nil {
		return nil, err
	}
	return &AccountService{
		uow:         u,
		accountRepo: accountRepo,
		referrals:   referrals,
	}, nil
}

type RegisterContactArgs struct {
	TelegramID   int64
	Username     string
	FirstName    string
	LastName     string
	ReferralCode string // реферальный код пригласившего из /start payload, может быть пустым
}

// RegisterContact возвращает аккаунт по telegram id, создавая его при первом
// обращении. Если новый аккаунт пришел по реферальному коду, сразу после
// создания начисляются реферальные награды - создание аккаунта одноразовое
// событие, поэтому и CreateReferral вызывается ровно один раз.
func (s *AccountService) RegisterContact(ctx context.Context, args RegisterContactArgs) (*domain.Account, bool, error) {
	existing, findErr := s.accountRepo.FindByTelegramID(ctx, args.TelegramID)
	if findErr == nil {
		if touchErr := s.accountRepo.TouchActivity(ctx, existing.ID); touchErr != nil {
			return nil, false, touchErr //nolint:wrapcheck
		}
		return existing, false, nil
	}
	if !errors.Is(findErr, domain.ErrRecordNotFound) {
		return nil, false, findErr //nolint:wrapcheck
	}

	var referrerID *int64
	if args.ReferralCode != "" {
		referrer, refErr := s.accountRepo.FindByReferralCode(ctx, args.ReferralCode)
		if refErr == nil && referrer.TelegramID != args.TelegramID {
			referrerID = &referrer.ID
		}
		// несуществующий код не мешает регистрации, просто без реферала
	}

	code, codeErr := generateReferralCode()
	if codeErr != nil {
		return nil, false, codeErr
	}

	account, createErr := s.accountRepo.Create(ctx, repoargs.AccountCreate{
		TelegramID:   args.TelegramID,
		Username:     args.Username,
		FirstName:    args.FirstName,
		LastName:     args.LastName,
		ReferralCode: code,
		ReferredBy:   referrerID,
	})
	if createErr != nil {
		// гонка двух первых сообщений от одного юзера: аккаунт уже создан соседним запросом
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			account, findAgainErr := s.accountRepo.FindByTelegramID(ctx, args.TelegramID)
			if findAgainErr != nil {
				return nil, false, findAgainErr //nolint:wrapcheck
			}
			return account, false, nil
		}
		return nil, false, createErr //nolint:wrapcheck
	}

	if referrerID != nil {
		if refErr := s.referrals.CreateReferral(ctx, *referrerID, account.ID); refErr != nil {
			return nil, false, fmt.Errorf("registering contact %d: %w", args.TelegramID, refErr)
		}
	}
	return account, true, nil
}

func (s *AccountService) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.Account, error) {
	account, err := s.accountRepo.FindByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err //nolint:wrapcheck
	}
	return account, nil
}

func (s *AccountService) SetBlocked(ctx context.Context, accountID int64, blocked bool) error {
	return s.accountRepo.SetBlocked(ctx, accountID, blocked) //nolint:wrapcheck
}

func (s *AccountService) ReferralStats(ctx context.Context, accountID int64) (*repoargs.ReferralStats, error) {
	referralRepo, err := uow.GetRepositoryAs[domain.ReferralRepository](s.uow, uow.RepositoryName(domain.ReferralRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	stats, statsErr := referralRepo.StatsByReferrer(ctx, accountID)
	if statsErr != nil {
		return nil, statsErr //nolint:wrapcheck
	}
	return stats, nil
}

func generateReferralCode() (string, error) {
	buf := make([]byte, referralCodeBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating referral code: %s", err.Error())
	}
	return "REF" + strings.ToUpper(hex.EncodeToString(buf)), nil
}
