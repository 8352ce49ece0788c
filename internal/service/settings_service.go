package service

import (
	"context"
	"strconv"

	"github.com/fsdevblog/tg-store/internal/domain"
	"github.com/fsdevblog/tg-store/pkg/uow"
)

// SettingsService таблица настроек с кешем поверх. Кеш опционален: без него
// сервис просто ходит в БД на каждое чтение.
type SettingsService struct {
	settingsRepo domain.SettingsRepository
	cache        SettingsCacher
}

func NewSettingsService(u uow.UOW, cache SettingsCacher) (*SettingsService, error) {
	settingsRepo, err := uow.GetRepositoryAs[domain.SettingsRepository](u, uow.RepositoryName(domain.SettingsRepoName))
	if err != nil {
		return nil, err
	}
	return &SettingsService{
		settingsRepo: settingsRepo,
		cache:        cache,
	}, nil
}

func (s *SettingsService) Get(ctx context.Context, key string) (string, error) {
	if s.cache != nil {
		if value, ok, cacheErr := s.cache.Get(ctx, key); cacheErr == nil && ok {
			return value, nil
		}
	}

	value, err := s.settingsRepo.Get(ctx, key)
	if err != nil {
		return "", err //nolint:wrapcheck
	}

	if s.cache != nil {
		// ошибка кеширования не мешает отдать значение
		_ = s.cache.Set(ctx, key, value)
	}
	return value, nil
}

// GetInt возвращает числовую настройку, fallback при отсутствии или мусорном значении.
func (s *SettingsService) GetInt(ctx context.Context, key string, fallback int64) int64 {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return fallback
	}
	value, parseErr := strconv.ParseInt(raw, 10, 64)
	if parseErr != nil {
		return fallback
	}
	return value
}

func (s *SettingsService) GetAll(ctx context.Context) ([]domain.Setting, error) {
	settings, err := s.settingsRepo.GetAll(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return settings, nil
}

func (s *SettingsService) Set(ctx context.Context, key string, value string) error {
	if err := s.settingsRepo.Set(ctx, key, value); err != nil {
		return err //nolint:wrapcheck
	}
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, key)
	}
	return nil
}
