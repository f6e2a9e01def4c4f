package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-diner/internal/logger"
	"github.com/MKhiriev/go-diner/internal/query"
	"github.com/MKhiriev/go-diner/models"
)

// addedFoodRepository is the SQL implementation of [AddedFoodRepository]
// over the "added_foods" table.
type addedFoodRepository struct {
	db     *DB
	ids    IDGenerator
	logger *logger.Logger
}

func NewAddedFoodRepository(db *DB, ids IDGenerator, logger *logger.Logger) AddedFoodRepository {
	logger.Debug().Msg("creating added food repository")
	return &addedFoodRepository{
		db:     db,
		ids:    ids,
		logger: logger,
	}
}

func (r *addedFoodRepository) CreateAddedFood(ctx context.Context, food models.AddedFood) (models.AddedFood, error) {
	log := logger.FromContext(ctx)

	food.ID = r.ids.Generate()
	food.CreatedAt = time.Now().UTC()

	stmt, args, err := r.db.builder().
		Insert("added_foods").
		Columns("id", "email", "name", "category", "price", "quantity", "image", "description", "origin", "created_at").
		Values(food.ID, food.Email, food.Name, food.Category, food.Price, food.Quantity, food.Image, food.Description, food.Origin, food.CreatedAt).
		ToSql()
	if err != nil {
		return models.AddedFood{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, stmt, args...); err != nil {
		log.Err(err).Str("func", "*addedFoodRepository.CreateAddedFood").Str("email", food.Email).Str("classification", r.db.classify(err)).Msg("failed to insert added food")
		return models.AddedFood{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return food, nil
}

func (r *addedFoodRepository) ListAddedFoods(ctx context.Context, spec query.Spec) ([]models.AddedFood, error) {
	log := logger.FromContext(ctx)

	builder, err := applySpec(r.db.builder().Select(addedFoodSelectColumns).From("added_foods"), spec, addedFoodColumns)
	if err != nil {
		return nil, err
	}

	stmt, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		log.Err(err).Str("func", "*addedFoodRepository.ListAddedFoods").Str("classification", r.db.classify(err)).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	foods := make([]models.AddedFood, 0)
	for rows.Next() {
		var f models.AddedFood
		if err := rows.Scan(&f.ID, &f.Email, &f.Name, &f.Category, &f.Price, &f.Quantity, &f.Image, &f.Description, &f.Origin, &f.CreatedAt); err != nil {
			log.Err(err).Str("func", "*addedFoodRepository.ListAddedFoods").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		foods = append(foods, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return foods, nil
}
