package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-diner/internal/logger"
	"github.com/MKhiriev/go-diner/internal/query"
	"github.com/MKhiriev/go-diner/models"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// foodRepository is the SQL implementation of [FoodRepository] over the
// "foods" table.
type foodRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewFoodRepository(db *DB, logger *logger.Logger) FoodRepository {
	logger.Debug().Msg("creating food repository")
	return &foodRepository{
		db:     db,
		logger: logger,
	}
}

// ListFoods returns the food items matching spec. Without a sort the
// database order is kept.
func (r *foodRepository) ListFoods(ctx context.Context, spec query.Spec) ([]models.Food, error) {
	log := logger.FromContext(ctx)

	builder, err := applySpec(r.db.builder().Select(foodSelectColumns).From("foods"), spec, foodColumns)
	if err != nil {
		return nil, err
	}

	stmt, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*foodRepository.ListFoods").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		log.Err(err).Str("func", "*foodRepository.ListFoods").Str("classification", r.db.classify(err)).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	foods := make([]models.Food, 0)
	for rows.Next() {
		food, err := scanFood(rows)
		if err != nil {
			log.Err(err).Str("func", "*foodRepository.ListFoods").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		foods = append(foods, food)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*foodRepository.ListFoods").Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return foods, nil
}

// GetFoodByFoodID returns the item with the given app-assigned id or
// [ErrFoodNotFound].
func (r *foodRepository) GetFoodByFoodID(ctx context.Context, foodID int64) (models.Food, error) {
	log := logger.FromContext(ctx)

	stmt, args, err := r.db.builder().
		Select(foodSelectColumns).
		From("foods").
		Where(sq.Eq{"food_id": foodID}).
		ToSql()
	if err != nil {
		return models.Food{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	food, err := scanFood(r.db.QueryRowContext(ctx, stmt, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Food{}, ErrFoodNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*foodRepository.GetFoodByFoodID").Int64("food_id", foodID).Str("classification", r.db.classify(err)).Msg("failed to get food")
		return models.Food{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return food, nil
}

// UpdateFood overwrites the non-nil fields of update on the item with
// storage id update.ID and returns the updated item.
func (r *foodRepository) UpdateFood(ctx context.Context, update models.FoodUpdate) (models.Food, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return models.Food{}, ErrNothingToUpdate
	}

	builder := r.db.builder().Update("foods")
	if update.Quantity != nil {
		builder = builder.Set("quantity", *update.Quantity)
	}
	if update.OrderCount != nil {
		builder = builder.Set("order_count", *update.OrderCount)
	}

	stmt, args, err := builder.
		Where(sq.Eq{"id": update.ID}).
		Suffix("RETURNING " + foodSelectColumns).
		ToSql()
	if err != nil {
		return models.Food{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	food, err := scanFood(r.db.QueryRowContext(ctx, stmt, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Food{}, ErrFoodNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*foodRepository.UpdateFood").Str("id", update.ID).Str("classification", r.db.classify(err)).Msg("failed to update food")
		return models.Food{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return food, nil
}

// CountFoods returns the approximate number of items. On PostgreSQL the
// planner estimate is used; a table never analysed reports -1 and falls back
// to an exact count.
func (r *foodRepository) CountFoods(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	if r.db.dialect == dialectPostgres {
		var estimate int64
		err := r.db.QueryRowContext(ctx, approximateFoodCount).Scan(&estimate)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			log.Err(err).Str("func", "*foodRepository.CountFoods").Str("classification", r.db.classify(err)).Msg("failed to read estimate")
			return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if err == nil && estimate >= 0 {
			return estimate, nil
		}
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, exactFoodCount).Scan(&count); err != nil {
		log.Err(err).Str("func", "*foodRepository.CountFoods").Str("classification", r.db.classify(err)).Msg("failed to count foods")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func scanFood(row rowScanner) (models.Food, error) {
	var f models.Food
	err := row.Scan(
		&f.ID,
		&f.FoodID,
		&f.Name,
		&f.Category,
		&f.Price,
		&f.Quantity,
		&f.OrderCount,
		&f.Image,
		&f.Description,
		&f.Origin,
		&f.MadeBy,
	)
	return f, err
}
