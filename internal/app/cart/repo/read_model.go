package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/storefront-checkout/internal/app/cart/contracts"
	"github.com/light-bringer/storefront-checkout/internal/app/cart/domain"
	"github.com/light-bringer/storefront-checkout/internal/models/m_order"
	"github.com/light-bringer/storefront-checkout/internal/pkg/query"
)

// OrderReadModelImpl implements OrderReadModel for Spanner, bypassing
// the domain layer for display-oriented reads.
type OrderReadModelImpl struct {
	client *spanner.Client
}

// NewOrderReadModel creates a new order read model.
func NewOrderReadModel(client *spanner.Client) contracts.OrderReadModel {
	return &OrderReadModelImpl{client: client}
}

// ListOrders retrieves a paginated list of orders with filtering.
func (rm *OrderReadModelImpl) ListOrders(ctx context.Context, filter *contracts.OrderListFilter) (*contracts.OrderListResult, error) {
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 50 // Default page size
	}
	if pageSize > 100 {
		pageSize = 100 // Max page size
	}

	builder := query.From(m_order.TableName).Select(
		m_order.OrderID,
		m_order.SessionID,
		m_order.SubtotalNumerator,
		m_order.SubtotalDenominator,
		m_order.TaxNumerator,
		m_order.TaxDenominator,
		m_order.ShippingNumerator,
		m_order.ShippingDenominator,
		m_order.DiscountNumerator,
		m_order.DiscountDenominator,
		m_order.TotalNumerator,
		m_order.TotalDenominator,
		m_order.ShippingAddress,
		m_order.ShippingCity,
		m_order.ShippingState,
		m_order.ShippingCountry,
		m_order.ShippingPinCode,
		m_order.ClientSecret,
		m_order.Status,
		m_order.CreatedAt,
		m_order.UpdatedAt,
		m_order.PlacedAt,
	)

	if filter.SessionID != "" {
		builder = builder.Where(query.Eq(m_order.SessionID, filter.SessionID))
	}
	if filter.Status != "" {
		builder = builder.Where(query.Eq(m_order.Status, filter.Status))
	}

	totalCount, err := rm.countOrders(ctx, builder)
	if err != nil {
		return nil, err
	}

	stmt := builder.
		OrderBy(m_order.CreatedAt, query.Desc).
		Limit(int64(pageSize)).
		Offset(int64(filter.Offset)).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	orders := make([]*contracts.OrderDTO, 0, pageSize)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate orders: %w", err)
		}

		var data m_order.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse order: %w", err)
		}

		dto, err := dataToDTO(&data)
		if err != nil {
			return nil, fmt.Errorf("failed to convert to DTO: %w", err)
		}
		orders = append(orders, dto)
	}

	return &contracts.OrderListResult{
		Orders:     orders,
		TotalCount: totalCount,
	}, nil
}

func (rm *OrderReadModelImpl) countOrders(ctx context.Context, builder *query.Builder) (int64, error) {
	iter := rm.client.Single().Query(ctx, builder.Count().Build())
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}

	var count int64
	if err := row.Column(0, &count); err != nil {
		return 0, fmt.Errorf("failed to parse order count: %w", err)
	}
	return count, nil
}

// dataToDTO converts database Data to an OrderDTO.
func dataToDTO(data *m_order.Data) (*contracts.OrderDTO, error) {
	amounts := make([]float64, 0, 5)
	for _, pair := range [][2]int64{
		{data.SubtotalNumerator, data.SubtotalDenominator},
		{data.TaxNumerator, data.TaxDenominator},
		{data.ShippingNumerator, data.ShippingDenominator},
		{data.DiscountNumerator, data.DiscountDenominator},
		{data.TotalNumerator, data.TotalDenominator},
	} {
		m, err := domain.NewMoney(pair[0], pair[1])
		if err != nil {
			return nil, fmt.Errorf("invalid stored amount: %w", err)
		}
		amounts = append(amounts, m.Float64())
	}

	dto := &contracts.OrderDTO{
		OrderID:         data.OrderID,
		SessionID:       data.SessionID,
		Subtotal:        amounts[0],
		Tax:             amounts[1],
		ShippingCharges: amounts[2],
		Discount:        amounts[3],
		Total:           amounts[4],
		Status:          data.Status,
		CreatedAt:       data.CreatedAt,
	}

	if data.PlacedAt.Valid {
		t := data.PlacedAt.Time
		dto.PlacedAt = &t
	}

	return dto, nil
}
