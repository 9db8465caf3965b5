package problem

import (
	"context"
	"errors"
	"fmt"

	"fastfeet/internal/entities"
	"fastfeet/internal/repository"
	"fastfeet/internal/service/problem"
	"fastfeet/pkg/querier"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

const columns = `id, order_id, description, created_at, updated_at`

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, deliveryProblem entities.DeliveryProblem) (*entities.DeliveryProblem, error) {
	query := `INSERT INTO delivery_problems (order_id, description)
		VALUES ($1, $2)
		RETURNING ` + columns

	problemModel, err := scanProblem(r.querier.QueryRow(ctx, query, deliveryProblem.OrderID, deliveryProblem.Description))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, problem.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected problem repository create error: %w", err)
	}

	return problemModel.toDomain(), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.DeliveryProblem, error) {
	query := `SELECT ` + columns + ` FROM delivery_problems WHERE id = $1`

	problemModel, err := scanProblem(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, problem.ErrProblemNotFound
		}
		return nil, fmt.Errorf("unexpected problem repository getbyid error: %w", err)
	}

	return problemModel.toDomain(), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.ProblemWithOrder, error) {
	return r.list(ctx, nil)
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID int64) ([]entities.ProblemWithOrder, error) {
	return r.list(ctx, sq.Eq{"p.order_id": orderID})
}

func (r *Repository) UpdateDescription(ctx context.Context, id int64, description string) (*entities.DeliveryProblem, error) {
	builder := querier.Builder.
		Update("delivery_problems").
		Set("description", description).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + columns)

	problemModel, err := scanProblem(r.querier.QueryRowBuilder(ctx, builder))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, problem.ErrProblemNotFound
		}
		return nil, fmt.Errorf("unexpected problem repository update error: %w", err)
	}

	return problemModel.toDomain(), nil
}

func (r *Repository) list(ctx context.Context, where sq.Sqlizer) ([]entities.ProblemWithOrder, error) {
	builder := querier.Builder.
		Select(
			"p.id", "p.order_id", "p.description", "p.created_at", "p.updated_at",
			"o.id", "o.recipient_id", "o.deliverer_id", "o.signature_id", "o.product",
			"o.canceled_at", "o.start_date", "o.end_date", "o.created_at", "o.updated_at",
		).
		From("delivery_problems p").
		Join("orders o ON o.id = p.order_id").
		OrderBy("p.id")
	if where != nil {
		builder = builder.Where(where)
	}

	rows, err := r.querier.QueryBuilder(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected problem repository list error: %w", err)
	}
	defer rows.Close()

	result := make([]entities.ProblemWithOrder, 0, 8)
	for rows.Next() {
		var m ProblemWithOrderDB
		err := rows.Scan(
			&m.ID,
			&m.OrderID,
			&m.Description,
			&m.CreatedAt,
			&m.UpdatedAt,
			&m.Order.ID,
			&m.Order.RecipientID,
			&m.Order.DelivererID,
			&m.Order.SignatureID,
			&m.Order.Product,
			&m.Order.CanceledAt,
			&m.Order.StartDate,
			&m.Order.EndDate,
			&m.Order.CreatedAt,
			&m.Order.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected problem repository list error: %w", err)
		}
		result = append(result, m.toDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected problem repository list error: %w", err)
	}

	return result, nil
}

func scanProblem(row pgx.Row) (*ProblemDB, error) {
	var problemModel ProblemDB
	err := row.Scan(
		&problemModel.ID,
		&problemModel.OrderID,
		&problemModel.Description,
		&problemModel.CreatedAt,
		&problemModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &problemModel, nil
}
