package tx

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
)

// Manager открывает транзакции с фиксированным уровнем изоляции.
// Вложенные вызовы Do переиспользуют транзакцию из контекста.
type Manager struct {
	internal *manager.Manager
	level    pgx.TxIsoLevel
}

// New создаёт менеджер с уровнем изоляции SERIALIZABLE.
func New(db pgxv5.Transactional) *Manager {
	return NewWithIsoLevel(db, pgx.Serializable)
}

// NewWithIsoLevel нужен операциям, которые сами берут блокировки строк
// (SELECT ... FOR UPDATE) и должны видеть свежие коммиты после ожидания.
func NewWithIsoLevel(db pgxv5.Transactional, level pgx.TxIsoLevel) *Manager {
	return &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
		level:    level,
	}
}

func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: m.level}),
	)
	return m.internal.DoWithSettings(ctx, txSettings, fn)
}

func (m *Manager) IsoLevel() pgx.TxIsoLevel {
	return m.level
}
