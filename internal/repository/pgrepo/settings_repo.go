package pgrepo

import (
	"context"

	"github.com/fsdevblog/tg-store/internal/domain"
	"github.com/fsdevblog/tg-store/pkg/uow"
)

type SettingsRepository struct {
	db uow.DBTX
}

func NewSettingsRepository(db uow.DBTX) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRow(ctx, `SELECT value FROM settings WHERE key = $1`, key).Scan(&value)
	if err != nil {
		return "", convertErr(err, "getting setting %q", key)
	}
	return value, nil
}

func (r *SettingsRepository) GetAll(ctx context.Context) ([]domain.Setting, error) {
	rows, err := r.db.Query(ctx, `SELECT key, value, updated_at FROM settings ORDER BY key`)
	if err != nil {
		return nil, convertErr(err, "getting settings")
	}
	defer rows.Close()

	var settings []domain.Setting
	for rows.Next() {
		var s domain.Setting
		if scanErr := rows.Scan(&s.Key, &s.Value, &s.UpdatedAt); scanErr != nil {
			return nil, convertErr(scanErr, "scanning setting")
		}
		settings = append(settings, s)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting settings")
	}
	return settings, nil
}

func (r *SettingsRepository) Set(ctx context.Context, key string, value string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = now()`,
		key, value)
	return convertErr(err, "setting %q", key)
}
