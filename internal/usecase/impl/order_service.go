package impl

import (
	"context"
	"fmt"
	"time"

	"souk/internal/domain/entity"
	domainerrors "souk/internal/domain/errors"
	"souk/internal/domain/repository"
	"souk/internal/usecase"

	"github.com/pkg/errors"
)

const deliveryDateLayout = "2006-01-02"

type orderService struct {
	orders    repository.Store[entity.Order]
	customers repository.Store[entity.Customer]
	addresses repository.Store[entity.CustomerAddress]
}

// NewOrderService creates the order management service.
func NewOrderService(
	orders repository.Store[entity.Order],
	customers repository.Store[entity.Customer],
	addresses repository.Store[entity.CustomerAddress],
) usecase.OrderUsecase {
	return &orderService{orders: orders, customers: customers, addresses: addresses}
}

// CreateOrder places an order after checking that the customer exists.
func (s *orderService) CreateOrder(ctx context.Context, input *usecase.OrderInput) (*entity.Order, error) {
	if _, err := s.customers.FindByID(ctx, input.CustomerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrOrderCustomerMissing
		}

		return nil, fmt.Errorf("failed to verify order customer: %w", err)
	}

	order, err := orderFromInput(input)
	if err != nil {
		return nil, err
	}

	if err := s.resolveAddress(ctx, order); err != nil {
		return nil, err
	}

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return order, nil
}

// GetOrder retrieves one order with its item lines.
func (s *orderService) GetOrder(ctx context.Context, id int64) (*entity.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	return order, nil
}

// ListOrders returns every order with item lines.
func (s *orderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

// UpdateOrder replaces the order's fields and item lines. Lines omitted from
// the input are removed.
func (s *orderService) UpdateOrder(ctx context.Context, id int64, input *usecase.OrderInput) (*entity.Order, error) {
	existing, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.CustomerID != existing.CustomerID {
		if _, err := s.customers.FindByID(ctx, input.CustomerID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, domainerrors.ErrOrderCustomerMissing
			}

			return nil, fmt.Errorf("failed to verify order customer: %w", err)
		}
	}

	order, err := orderFromInput(input)
	if err != nil {
		return nil, err
	}
	order.ID = id
	// Re-stamp the lines: orderFromInput ran before the path id was known.
	order.SetItems(order.Items)

	if err := s.resolveAddress(ctx, order); err != nil {
		return nil, err
	}

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	return order, nil
}

// resolveAddress drops an address reference that points at no existing
// address, so a stale id never persists as a dangling foreign key.
func (s *orderService) resolveAddress(ctx context.Context, order *entity.Order) error {
	if order.AddressID == nil {
		return nil
	}

	if _, err := s.addresses.FindByID(ctx, *order.AddressID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			order.AddressID = nil

			return nil
		}

		return fmt.Errorf("failed to resolve order address: %w", err)
	}

	return nil
}

// DeleteOrder removes the order and its item lines.
func (s *orderService) DeleteOrder(ctx context.Context, id int64) error {
	if err := s.orders.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return fmt.Errorf("failed to delete order: %w", err)
	}

	return nil
}

func orderFromInput(input *usecase.OrderInput) (*entity.Order, error) {
	status, _ := entity.ParseOrderStatus(input.Status)
	payment, _ := entity.ParsePaymentMethod(input.PaymentMethod)
	flexibility, _ := entity.ParseDeliveryFlexibility(input.DeliveryFlexibility)

	deliveryDate, err := parseDeliveryDate(input.RequestedDeliveryDate)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		CustomerID:            input.CustomerID,
		AddressID:             input.AddressID,
		TotalAmount:           input.TotalAmount,
		Status:                status,
		PaymentMethod:         payment,
		RequestedDeliveryDate: deliveryDate,
		DeliveryFlexibility:   flexibility,
		DeliverySlotStart:     input.DeliverySlotStart,
		DeliverySlotEnd:       input.DeliverySlotEnd,
		Notes:                 input.Notes,
	}

	items := make([]*entity.OrderItem, 0, len(input.Items))
	for _, line := range input.Items {
		lineFlexibility, _ := entity.ParseDeliveryFlexibility(line.DeliveryFlexibility)
		lineDate, err := parseDeliveryDate(line.RequestedDeliveryDate)
		if err != nil {
			return nil, err
		}

		items = append(items, &entity.OrderItem{
			ID:                    line.ID,
			ProductID:             line.ProductID,
			Quantity:              line.Quantity,
			UnitPrice:             line.UnitPrice,
			RequestedDeliveryDate: lineDate,
			DeliveryFlexibility:   lineFlexibility,
			DeliverySlotStart:     line.DeliverySlotStart,
			DeliverySlotEnd:       line.DeliverySlotEnd,
		})
	}
	order.SetItems(items)

	return order, nil
}

func parseDeliveryDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse(deliveryDateLayout, raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(
			fmt.Sprintf("invalid delivery date %q, expected YYYY-MM-DD", raw))
	}

	return &parsed, nil
}
