package repo

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/storefront-checkout/internal/app/cart/contracts"
	"github.com/light-bringer/storefront-checkout/internal/app/cart/domain"
	"github.com/light-bringer/storefront-checkout/internal/models/m_order"
	"github.com/light-bringer/storefront-checkout/internal/pkg/clock"
)

// OrderRepo implements OrderRepository for Spanner.
type OrderRepo struct {
	client *spanner.Client
	model  *m_order.Model
	clock  clock.Clock
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(client *spanner.Client, clk clock.Clock) contracts.OrderRepository {
	return &OrderRepo{
		client: client,
		model:  m_order.NewModel(),
		clock:  clk,
	}
}

// InsertMut creates a mutation for inserting a new order.
func (r *OrderRepo) InsertMut(order *domain.Order) (*spanner.Mutation, error) {
	data, err := r.domainToData(order)
	if err != nil {
		return nil, err
	}
	return r.model.InsertMut(data), nil
}

// UpdateMut creates a mutation for updating an order (only dirty fields).
func (r *OrderRepo) UpdateMut(order *domain.Order) (*spanner.Mutation, error) {
	changes := order.Changes()
	if !changes.HasChanges() {
		return nil, nil
	}

	updates := make(map[string]interface{})

	if changes.Dirty(domain.FieldStatus) {
		updates[m_order.Status] = string(order.Status())
	}

	if changes.Dirty(domain.FieldClientSecret) {
		updates[m_order.ClientSecret] = order.ClientSecret()
	}

	if changes.Dirty(domain.FieldPlacedAt) {
		if placedAt := order.PlacedAt(); placedAt != nil {
			updates[m_order.PlacedAt] = *placedAt
		} else {
			updates[m_order.PlacedAt] = spanner.NullTime{}
		}
	}

	if len(updates) == 0 {
		return nil, nil
	}

	return r.model.UpdateMut(order.ID(), updates), nil
}

// GetByID retrieves an order by ID, reconstructing the domain aggregate.
func (r *OrderRepo) GetByID(ctx context.Context, orderID string) (*domain.Order, error) {
	row, err := r.client.Single().ReadRow(ctx, m_order.TableName, spanner.Key{orderID}, []string{
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
	})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to read order %s: %w", orderID, err)
	}

	var data m_order.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse order row: %w", err)
	}

	return dataToDomain(&data)
}

func (r *OrderRepo) domainToData(order *domain.Order) (*m_order.Data, error) {
	totals := order.Totals()

	pairs := []struct {
		name  string
		value *domain.Money
	}{
		{"subtotal", totals.Subtotal},
		{"tax", totals.Tax},
		{"shipping", totals.ShippingCharges},
		{"discount", totals.Discount},
		{"total", totals.Total},
	}
	for _, p := range pairs {
		if !p.value.IsSafeForStorage() {
			return nil, fmt.Errorf("order %s exceeds storage capacity: %w", p.name, domain.ErrMoneyOverflow)
		}
	}

	info := order.ShippingInfo()
	data := &m_order.Data{
		OrderID:             order.ID(),
		SessionID:           order.SessionID(),
		SubtotalNumerator:   totals.Subtotal.Numerator(),
		SubtotalDenominator: totals.Subtotal.Denominator(),
		TaxNumerator:        totals.Tax.Numerator(),
		TaxDenominator:      totals.Tax.Denominator(),
		ShippingNumerator:   totals.ShippingCharges.Numerator(),
		ShippingDenominator: totals.ShippingCharges.Denominator(),
		DiscountNumerator:   totals.Discount.Numerator(),
		DiscountDenominator: totals.Discount.Denominator(),
		TotalNumerator:      totals.Total.Numerator(),
		TotalDenominator:    totals.Total.Denominator(),
		ShippingAddress:     info.Address,
		ShippingCity:        info.City,
		ShippingState:       info.State,
		ShippingCountry:     info.Country,
		ShippingPinCode:     info.PinCode,
		ClientSecret:        order.ClientSecret(),
		Status:              string(order.Status()),
	}

	if placedAt := order.PlacedAt(); placedAt != nil {
		data.PlacedAt = spanner.NullTime{Time: *placedAt, Valid: true}
	}

	return data, nil
}

func dataToDomain(data *m_order.Data) (*domain.Order, error) {
	money := func(num, den int64) (*domain.Money, error) {
		return domain.NewMoney(num, den)
	}

	subtotal, err := money(data.SubtotalNumerator, data.SubtotalDenominator)
	if err != nil {
		return nil, fmt.Errorf("invalid stored subtotal: %w", err)
	}
	tax, err := money(data.TaxNumerator, data.TaxDenominator)
	if err != nil {
		return nil, fmt.Errorf("invalid stored tax: %w", err)
	}
	shipping, err := money(data.ShippingNumerator, data.ShippingDenominator)
	if err != nil {
		return nil, fmt.Errorf("invalid stored shipping: %w", err)
	}
	discount, err := money(data.DiscountNumerator, data.DiscountDenominator)
	if err != nil {
		return nil, fmt.Errorf("invalid stored discount: %w", err)
	}
	total, err := money(data.TotalNumerator, data.TotalDenominator)
	if err != nil {
		return nil, fmt.Errorf("invalid stored total: %w", err)
	}

	var placedAt *time.Time
	if data.PlacedAt.Valid {
		t := data.PlacedAt.Time
		placedAt = &t
	}

	return domain.ReconstructOrder(
		data.OrderID,
		data.SessionID,
		domain.Totals{
			Subtotal:        subtotal,
			Tax:             tax,
			ShippingCharges: shipping,
			Discount:        discount,
			Total:           total,
		},
		domain.ShippingInfo{
			Address: data.ShippingAddress,
			City:    data.ShippingCity,
			State:   data.ShippingState,
			Country: data.ShippingCountry,
			PinCode: data.ShippingPinCode,
		},
		data.ClientSecret,
		domain.OrderStatus(data.Status),
		data.CreatedAt,
		data.UpdatedAt,
		placedAt,
	), nil
}
