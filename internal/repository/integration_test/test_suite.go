package integration_test

import (
	"context"
	"log"
	"sync"
	"testing"
	"time"

	"fastfeet/internal/pkg/postgres"
	"fastfeet/pkg/logger/zap_adapter"
	"fastfeet/pkg/querier"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	poolInstance    *pgxpool.Pool
	querierInstance *querier.Querier
	querierOnce     sync.Once
)

// GetPool один контейнер на пакет тестов; его останавливает reaper testcontainers.
func GetPool() *pgxpool.Pool {
	querierOnce.Do(func() {
		ctx := context.Background()

		container, err := tcpostgres.Run(ctx,
			"postgres:16-alpine",
			tcpostgres.WithDatabase("fastfeet_test"),
			tcpostgres.WithUsername("test_user"),
			tcpostgres.WithPassword("test_pass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second),
			),
		)
		if err != nil {
			log.Fatalf("failed to start postgres testcontainer: %v", err)
		}

		connStr, err := container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			log.Fatalf("failed to get connection string from container: %v", err)
		}

		pool, err := pgxpool.New(ctx, connStr)
		if err != nil {
			log.Fatalf("failed to create pgx pool: %v", err)
		}

		if err := postgres.Migrate(ctx, zap_adapter.NewNop(), pool); err != nil {
			log.Fatalf("failed to apply migrations: %v", err)
		}

		poolInstance = pool
		querierInstance = querier.New(pool, pgxv5.DefaultCtxGetter)
	})

	return poolInstance
}

func GetQuerier() *querier.Querier {
	GetPool()
	return querierInstance
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if setupSql == "" {
		GetPool()
		return
	}

	_, err := GetQuerier().Exec(ctx, setupSql)
	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE queued_tasks, delivery_problems, orders, recipients, deliverers, files RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}

// Fixtures базовый набор: курьеры 1 и 2, получатель 1, файл 1.
const Fixtures = `
	INSERT INTO files (id, name, path) VALUES (1, 'assinatura.png', 'a1b2c3.png');
	INSERT INTO deliverers (id, name, email) VALUES
		(1, 'João Silva', 'joao@fastfeet.com'),
		(2, 'Ana Souza', 'ana@fastfeet.com');
	INSERT INTO recipients (id, name, street, number, compl, state, city, zipcode) VALUES
		(1, 'Maria Lima', 'Rua Beira Rio', '1729', 'Casa 2', 'SC', 'Rio do Sul', '89160-000');
	SELECT setval('files_id_seq', 1);
	SELECT setval('deliverers_id_seq', 2);
	SELECT setval('recipients_id_seq', 1);
`
