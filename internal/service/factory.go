package service

import (
	"fmt"

	"github.com/fsdevblog/tg-store/pkg/uow"
)

type AppServices struct {
	AccountService  *AccountService
	LedgerService   *LedgerService
	OrderService    *OrderService
	RewardService   *RewardService
	CatalogService  *CatalogService
	SettingsService *SettingsService
	AdminService    *AdminService
}

type FactoryArgs struct {
	UnitOfWork    uow.UOW
	Shortener     LinkShortener
	OfferSource   OfferSource    // nil допустим, импорт офферов будет недоступен
	SettingsCache SettingsCacher // nil допустим, настройки будут читаться из БД напрямую
}

func Factory(args FactoryArgs) (*AppServices, error) {
	settingsService, settingsErr := NewSettingsService(args.UnitOfWork, args.SettingsCache)
	if settingsErr != nil {
		return nil, fmt.Errorf("service factory: %s", settingsErr.Error())
	}

	rewardService := NewRewardService(args.UnitOfWork, settingsService, args.Shortener)

	accountService, accountErr := NewAccountService(args.UnitOfWork, rewardService)
	if accountErr != nil {
		return nil, fmt.Errorf("service factory: %s", accountErr.Error())
	}

	ledgerService, ledgerErr := NewLedgerService(args.UnitOfWork)
	if ledgerErr != nil {
		return nil, fmt.Errorf("service factory: %s", ledgerErr.Error())
	}

	orderService, orderErr := NewOrderService(args.UnitOfWork)
	if orderErr != nil {
		return nil, fmt.Errorf("service factory: %s", orderErr.Error())
	}

	catalogService, catalogErr := NewCatalogService(args.UnitOfWork)
	if catalogErr != nil {
		return nil, fmt.Errorf("service factory: %s", catalogErr.Error())
	}

	adminService := NewAdminService(args.UnitOfWork, settingsService, args.OfferSource)

	return &AppServices{
		AccountService:  accountService,
		LedgerService:   ledgerService,
		OrderService:    orderService,
		RewardService:   rewardService,
		CatalogService:  catalogService,
		SettingsService: settingsService,
		AdminService:    adminService,
	}, nil
}
