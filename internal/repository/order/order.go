package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fastfeet/internal/entities"
	"fastfeet/internal/repository"
	"fastfeet/internal/service/order"
	"fastfeet/pkg/querier"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

const columns = `id, recipient_id, deliverer_id, signature_id, product,
	canceled_at, start_date, end_date, created_at, updated_at`

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	orderModifyModel := FromDomainModify(&orderModify)

	query := `INSERT INTO orders (recipient_id, deliverer_id, signature_id, product)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + columns

	orderModel, err := scanOrder(r.querier.QueryRow(
		ctx,
		query,
		orderModifyModel.RecipientID,
		orderModifyModel.DelivererID,
		orderModifyModel.SignatureID,
		orderModifyModel.Product,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, referenceError(err)
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	return r.getByID(ctx, id, "")
}

func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.Order, error) {
	return r.getByID(ctx, id, "FOR UPDATE")
}

func (r *Repository) getByID(ctx context.Context, id int64, lock string) (*entities.Order, error) {
	query := `SELECT ` + columns + `
		FROM orders
		WHERE id = $1 ` + lock

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) GetAll(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	builder := querier.Builder.
		Select(columns).
		From("orders").
		OrderBy("id")

	if filter.DelivererID != nil {
		builder = builder.Where(sq.Eq{"deliverer_id": *filter.DelivererID})
	}
	if filter.Status != nil {
		// отменённые не попадают ни в один из списков доставок
		builder = builder.Where(sq.Eq{"canceled_at": nil})

		switch *filter.Status {
		case entities.DeliveryPending:
			builder = builder.Where(sq.Eq{"end_date": nil})
		case entities.DeliveryCompleted:
			builder = builder.Where(sq.NotEq{"end_date": nil})
		}
	}

	rows, err := r.querier.QueryBuilder(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		orderModel, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
		}
		orderModels = append(orderModels, *orderModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}

	return ToDomainList(orderModels), nil
}

func (r *Repository) Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	orderModifyModel := FromDomainModify(&orderModify)
	if orderModifyModel.ID == nil {
		return nil, order.ErrInvalidOrderID
	}

	builder := querier.Builder.
		Update("orders")

	// опциональные поля
	if orderModifyModel.RecipientID != nil {
		builder = builder.Set("recipient_id", orderModifyModel.RecipientID)
	}
	if orderModifyModel.DelivererID != nil {
		builder = builder.Set("deliverer_id", orderModifyModel.DelivererID)
	}
	if orderModifyModel.SignatureID != nil {
		builder = builder.Set("signature_id", orderModifyModel.SignatureID)
	}
	if orderModifyModel.Product != nil {
		builder = builder.Set("product", orderModifyModel.Product)
	}
	if orderModifyModel.StartDate != nil {
		builder = builder.Set("start_date", orderModifyModel.StartDate)
	}
	if orderModifyModel.EndDate != nil {
		builder = builder.Set("end_date", orderModifyModel.EndDate)
	}

	builder = builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": orderModifyModel.ID}).
		Suffix("RETURNING " + columns)

	orderModel, err := scanOrder(r.querier.QueryRowBuilder(ctx, builder))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, referenceError(err)
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(orderModel), nil
}

// Cancel при гонке двух отмен второй получает ErrAlreadyCancelled.
func (r *Repository) Cancel(ctx context.Context, id int64, canceledAt time.Time) (*entities.Order, error) {
	query := `UPDATE orders
		SET canceled_at = $2, updated_at = NOW()
		WHERE id = $1 AND canceled_at IS NULL
		RETURNING ` + columns

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, id, canceledAt))
	if err == nil {
		return ToDomain(orderModel), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("unexpected order repository cancel error: %w", err)
	}

	var exists bool
	err = r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository cancel error: %w", err)
	}
	if !exists {
		return nil, order.ErrOrderNotFound
	}
	return nil, order.ErrAlreadyCancelled
}

// CountPickupsSince отменённые после забора заказы тоже считаются.
func (r *Repository) CountPickupsSince(ctx context.Context, delivererID int64, since time.Time) (int, error) {
	query := `SELECT COUNT(*)
		FROM orders
		WHERE deliverer_id = $1 AND start_date >= $2`

	var count int
	if err := r.querier.QueryRow(ctx, query, delivererID, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("unexpected order repository count pickups error: %w", err)
	}
	return count, nil
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	var orderModel OrderDB
	err := row.Scan(
		&orderModel.ID,
		&orderModel.RecipientID,
		&orderModel.DelivererID,
		&orderModel.SignatureID,
		&orderModel.Product,
		&orderModel.CanceledAt,
		&orderModel.StartDate,
		&orderModel.EndDate,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &orderModel, nil
}

func referenceError(err error) error {
	switch repository.PgConstraint(err) {
	case "orders_deliverer_id_fkey":
		return order.ErrCourierNotFound
	case "orders_recipient_id_fkey":
		return order.ErrRecipientNotFound
	case "orders_signature_id_fkey":
		return order.ErrFileNotFound
	default:
		return fmt.Errorf("%w: %w", order.ErrReferenceNotFound, err)
	}
}
