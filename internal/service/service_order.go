package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-diner/internal/logger"
	"github.com/MKhiriev/go-diner/internal/query"
	"github.com/MKhiriev/go-diner/internal/sequencer"
	"github.com/MKhiriev/go-diner/internal/store"
	"github.com/MKhiriev/go-diner/internal/validators"
	"github.com/MKhiriev/go-diner/models"
)

// orderService places and manages orders.
//
// Placement touches two records: the stock of the ordered food and the new
// order row. The two writes are independent statements without a
// transaction; a failure between them is logged and leaves the stock
// already decremented.
type orderService struct {
	orderRepository store.OrderRepository
	foodRepository  store.FoodRepository
	sequencer       sequencer.Sequencer
	metrics         OrderMetrics
	validator       validators.Validator

	// now is replaced in tests.
	now func() time.Time

	logger *logger.Logger
}

// NewOrderService returns an OrderService. metrics may be nil.
func NewOrderService(
	orderRepository store.OrderRepository,
	foodRepository store.FoodRepository,
	seq sequencer.Sequencer,
	metrics OrderMetrics,
	logger *logger.Logger,
) OrderService {
	return &orderService{
		orderRepository: orderRepository,
		foodRepository:  foodRepository,
		sequencer:       seq,
		metrics:         metrics,
		validator:       validators.NewDinerValidator(),
		now:             time.Now,
		logger:          logger,
	}
}

// PlaceOrder stamps order with the next sequence number, decrements the stock
// of the ordered food, increments its order count and stores the order.
//
// An order without an email is placed for the claim owner and an order without
// a quantity is for a single item. A positive stock
// is decremented; an empty stock is left at zero and the order is still
// accepted.
func (o *orderService) PlaceOrder(ctx context.Context, claim models.Claim, order models.Order) (models.Order, error) {
	log := logger.FromContext(ctx).With().Str("func", "*orderService.PlaceOrder").Logger()

	if err := CheckIdentity(claim, order.Email); err != nil {
		log.Warn().Str("claim", claim.Email).Str("email", order.Email).Msg("order for another user rejected")
		return models.Order{}, err
	}
	if order.Email == "" {
		order.Email = claim.Email
	}
	if order.Quantity == 0 {
		order.Quantity = 1
	}
	if err := o.validator.Validate(ctx, order); err != nil {
		log.Error().Err(err).Int64("food_id", order.FoodID).Int("quantity", order.Quantity).Msg("invalid order")
		return models.Order{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	food, err := o.foodRepository.GetFoodByFoodID(ctx, order.FoodID)
	if err != nil {
		return models.Order{}, fmt.Errorf("place order: %w", err)
	}

	seq, err := o.sequencer.Next(ctx)
	if err != nil {
		log.Err(err).Msg("sequence number not assigned")
		return models.Order{}, fmt.Errorf("%w: %w", ErrOrderNotPlaced, err)
	}

	quantity := sequencer.DecrementStock(food.Quantity)
	orderCount := food.OrderCount + 1
	if _, err = o.foodRepository.UpdateFood(ctx, models.FoodUpdate{
		ID:         food.ID,
		Quantity:   &quantity,
		OrderCount: &orderCount,
	}); err != nil {
		log.Err(err).Int64("seq", seq).Str("food", food.ID).Msg("stock update failed, order not stored")
		return models.Order{}, fmt.Errorf("%w: %w", ErrOrderNotPlaced, err)
	}

	order.OrderCount = seq
	order.FoodName = food.Name
	order.Price = food.Price
	order.OrderedAt = o.now().UTC()

	created, err := o.orderRepository.CreateOrder(ctx, order)
	if err != nil {
		log.Err(err).Int64("seq", seq).Str("food", food.ID).
			Msg("order insert failed after stock was decremented")
		return models.Order{}, fmt.Errorf("place order: %w", err)
	}

	if o.metrics != nil {
		o.metrics.OrderPlaced(food.Category)
	}
	log.Info().Int64("seq", seq).Str("order", created.ID).Msg("order placed")

	return created, nil
}

// ListOrders lists the orders of email. email must match the claim; an empty
// email lists without owner scoping.
func (o *orderService) ListOrders(ctx context.Context, claim models.Claim, email string, spec query.Spec) ([]models.Order, error) {
	if err := CheckIdentity(claim, email); err != nil {
		logger.FromContext(ctx).Warn().Str("claim", claim.Email).Str("email", email).Msg("order listing for another user rejected")
		return nil, err
	}

	if email != "" {
		spec = spec.WithFilter("email", query.Equals(email))
	}

	orders, err := o.orderRepository.ListOrders(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// DeleteOrder removes the order id owned by the claim.
func (o *orderService) DeleteOrder(ctx context.Context, claim models.Claim, id string) (int64, error) {
	if id == "" {
		return 0, ErrInvalidDataProvided
	}

	order, err := o.orderRepository.GetOrderByID(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete order %s: %w", id, err)
	}

	if err = CheckIdentity(claim, order.Email); err != nil {
		logger.FromContext(ctx).Warn().Str("claim", claim.Email).Str("order", id).Msg("deleting order of another user rejected")
		return 0, err
	}

	deleted, err := o.orderRepository.DeleteOrder(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete order %s: %w", id, err)
	}
	return deleted, nil
}
