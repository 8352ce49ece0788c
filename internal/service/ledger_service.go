package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/tg-store/internal/domain"
	"github.com/fsdevblog/tg-store/internal/repository/repoargs"
	"github.com/fsdevblog/tg-store/pkg/uow"
)

var errNonPositiveAmount = errors.New("amount must be positive")

// LedgerService единственная точка изменения балансов. Обновление счета и
// запись в журнал коммитятся вместе или не коммитятся вовсе.
type LedgerService struct {
	uow        uow.UOW
	ledgerRepo domain.LedgerRepository
}

func NewLedgerService(u uow.UOW) (*LedgerService, error) {
	ledgerRepo, err := uow.GetRepositoryAs[domain.LedgerRepository](u, uow.RepositoryName(domain.LedgerRepoName))
	if err != nil {
		return nil, err
	}
	return &LedgerService{
		uow:        u,
		ledgerRepo: ledgerRepo,
	}, nil
}

type LedgerOpArgs struct {
	AccountID   int64
	Amount      int64
	Reason      domain.LedgerReason
	Description string
	ReferenceID *int64
}

// Credit начисляет баллы. Amount должен быть > 0.
func (s *LedgerService) Credit(ctx context.Context, args LedgerOpArgs) error {
	if args.Amount <= 0 {
		return errNonPositiveAmount
	}
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		return creditPoints(c, tx, args)
	})
	if txErr != nil {
		if isExpectedLedgerErr(txErr) {
			return txErr
		}
		return fmt.Errorf("crediting account %d: %w", args.AccountID, txErr)
	}
	return nil
}

// Debit списывает баллы. При нехватке баланса возвращает domain.ErrInsufficientFunds,
// баланс при этом не меняется (частичных списаний нет).
func (s *LedgerService) Debit(ctx context.Context, args LedgerOpArgs) error {
	if args.Amount <= 0 {
		return errNonPositiveAmount
	}
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		return debitPoints(c, tx, args)
	})
	if txErr != nil {
		if isExpectedLedgerErr(txErr) {
			return txErr
		}
		return fmt.Errorf("debiting account %d: %w", args.AccountID, txErr)
	}
	return nil
}

func (s *LedgerService) History(ctx context.Context, accountID int64, limit uint) ([]domain.LedgerEntry, error) {
	entries, err := s.ledgerRepo.GetByAccountID(ctx, accountID, limit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return entries, nil
}

// creditPoints общий шаг начисления внутри уже открытой транзакции. Используется
// и движком заказов, и движком наград - семантика одна.
func creditPoints(ctx context.Context, tx uow.TX, args LedgerOpArgs) error {
	accountRepo, accountRepoErr := uow.GetAs[domain.AccountRepository](tx, uow.RepositoryName(domain.AccountRepoName))
	if accountRepoErr != nil {
		return accountRepoErr //nolint:wrapcheck
	}
	ledgerRepo, ledgerRepoErr := uow.GetAs[domain.LedgerRepository](tx, uow.RepositoryName(domain.LedgerRepoName))
	if ledgerRepoErr != nil {
		return ledgerRepoErr //nolint:wrapcheck
	}

	if err := accountRepo.AddPoints(ctx, args.AccountID, args.Amount); err != nil {
		return err //nolint:wrapcheck
	}
	_, appendErr := ledgerRepo.Append(ctx, repoargs.LedgerAppend{
		AccountID:   args.AccountID,
		Reason:      args.Reason,
		Amount:      args.Amount,
		Description: args.Description,
		ReferenceID: args.ReferenceID,
	})
	return appendErr //nolint:wrapcheck
}

// debitPoints общий шаг списания внутри уже открытой транзакции. Запись журнала
// получает отрицательную сумму.
func debitPoints(ctx context.Context, tx uow.TX, args LedgerOpArgs) error {
	accountRepo, accountRepoErr := uow.GetAs[domain.AccountRepository](tx, uow.RepositoryName(domain.AccountRepoName))
	if accountRepoErr != nil {
		return accountRepoErr //nolint:wrapcheck
	}
	ledgerRepo, ledgerRepoErr := uow.GetAs[domain.LedgerRepository](tx, uow.RepositoryName(domain.LedgerRepoName))
	if ledgerRepoErr != nil {
		return ledgerRepoErr //nolint:wrapcheck
	}

	if err := accountRepo.SpendPoints(ctx, args.AccountID, args.Amount); err != nil {
		return err //nolint:wrapcheck
	}
	_, appendErr := ledgerRepo.Append(ctx, repoargs.LedgerAppend{
		AccountID:   args.AccountID,
		Reason:      args.Reason,
		Amount:      -args.Amount,
		Description: args.Description,
		ReferenceID: args.ReferenceID,
	})
	return appendErr //nolint:wrapcheck
}

func isExpectedLedgerErr(err error) bool {
	return errors.Is(err, domain.ErrInsufficientFunds) ||
		errors.Is(err, domain.ErrRecordNotFound)
}
