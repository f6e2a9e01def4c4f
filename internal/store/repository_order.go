package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-diner/internal/logger"
	"github.com/MKhiriev/go-diner/internal/query"
	"github.com/MKhiriev/go-diner/models"
)

// orderRepository is the SQL implementation of [OrderRepository] over the
// "orders" table.
type orderRepository struct {
	db     *DB
	ids    IDGenerator
	logger *logger.Logger
}

func NewOrderRepository(db *DB, ids IDGenerator, logger *logger.Logger) OrderRepository {
	logger.Debug().Msg("creating order repository")
	return &orderRepository{
		db:     db,
		ids:    ids,
		logger: logger,
	}
}

// CreateOrder inserts order under a fresh storage id. OrderedAt defaults to
// the current time.
func (r *orderRepository) CreateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	log := logger.FromContext(ctx)

	order.ID = r.ids.Generate()
	if order.OrderedAt.IsZero() {
		order.OrderedAt = time.Now().UTC()
	}

	stmt, args, err := r.db.builder().
		Insert("orders").
		Columns("id", "email", "food_id", "food_name", "price", "quantity", "order_count", "ordered_at").
		Values(order.ID, order.Email, order.FoodID, order.FoodName, order.Price, order.Quantity, order.OrderCount, order.OrderedAt).
		ToSql()
	if err != nil {
		return models.Order{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, stmt, args...); err != nil {
		log.Err(err).Str("func", "*orderRepository.CreateOrder").Str("email", order.Email).Str("classification", r.db.classify(err)).Msg("failed to insert order")
		return models.Order{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return order, nil
}

func (r *orderRepository) ListOrders(ctx context.Context, spec query.Spec) ([]models.Order, error) {
	log := logger.FromContext(ctx)

	builder, err := applySpec(r.db.builder().Select(orderSelectColumns).From("orders"), spec, orderColumns)
	if err != nil {
		return nil, err
	}

	stmt, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.ListOrders").Str("classification", r.db.classify(err)).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	orders := make([]models.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			log.Err(err).Str("func", "*orderRepository.ListOrders").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return orders, nil
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id string) (models.Order, error) {
	log := logger.FromContext(ctx)

	stmt, args, err := r.db.builder().
		Select(orderSelectColumns).
		From("orders").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Order{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	order, err := scanOrder(r.db.QueryRowContext(ctx, stmt, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, ErrOrderNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.GetOrderByID").Str("id", id).Str("classification", r.db.classify(err)).Msg("failed to get order")
		return models.Order{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return order, nil
}

// DeleteOrder removes the order with the given storage id and returns the
// number of deleted rows.
func (r *orderRepository) DeleteOrder(ctx context.Context, id string) (int64, error) {
	log := logger.FromContext(ctx)

	stmt, args, err := r.db.builder().
		Delete("orders").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, stmt, args...)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.DeleteOrder").Str("id", id).Str("classification", r.db.classify(err)).Msg("failed to delete order")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return deleted, nil
}

func scanOrder(row rowScanner) (models.Order, error) {
	var o models.Order
	err := row.Scan(
		&o.ID,
		&o.Email,
		&o.FoodID,
		&o.FoodName,
		&o.Price,
		&o.Quantity,
		&o.OrderCount,
		&o.OrderedAt,
	)
	return o, err
}
