package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/light-bringer/storefront-checkout/internal/app/cart/contracts"
	"github.com/light-bringer/storefront-checkout/internal/app/cart/domain"
)

const cartKeyPrefix = "cart:session:"

// CartRepo implements CartRepository on Redis. Snapshots are stored as
// JSON records holding items, discount, and shipping info; totals are
// deliberately not persisted so rehydration always recomputes them.
type CartRepo struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCartRepo creates a new CartRepo. Snapshots expire after ttl.
func NewCartRepo(client *redis.Client, ttl time.Duration) contracts.CartRepository {
	return &CartRepo{
		client: client,
		ttl:    ttl,
	}
}

// cartRecord is the persisted snapshot shape.
type cartRecord struct {
	Items        []lineItemRecord    `json:"items"`
	DiscountNum  int64               `json:"discount_numerator"`
	DiscountDen  int64               `json:"discount_denominator"`
	ShippingInfo *shippingInfoRecord `json:"shipping_info,omitempty"`
}

type lineItemRecord struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Photo     string `json:"photo"`
	PriceNum  int64  `json:"price_numerator"`
	PriceDen  int64  `json:"price_denominator"`
	Stock     int64  `json:"stock"`
	Quantity  int64  `json:"quantity"`
}

type shippingInfoRecord struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	PinCode string `json:"pin_code"`
}

// Save persists the cart snapshot for a session.
func (r *CartRepo) Save(ctx context.Context, sessionID string, cart *domain.Cart) error {
	record, err := domainToRecord(cart)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to serialize cart snapshot: %w", err)
	}

	if err := r.client.Set(ctx, cartKeyPrefix+sessionID, payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store cart snapshot: %w", err)
	}
	return nil
}

// Load retrieves the cart snapshot for a session, or (nil, nil) when
// none exists.
func (r *CartRepo) Load(ctx context.Context, sessionID string) (*domain.Cart, error) {
	payload, err := r.client.Get(ctx, cartKeyPrefix+sessionID).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cart snapshot: %w", err)
	}

	var record cartRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("failed to decode cart snapshot: %w", err)
	}

	return recordToDomain(&record)
}

// Delete removes the cart snapshot for a session.
func (r *CartRepo) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, cartKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete cart snapshot: %w", err)
	}
	return nil
}

func domainToRecord(cart *domain.Cart) (*cartRecord, error) {
	items := cart.Items()
	record := &cartRecord{
		Items: make([]lineItemRecord, 0, len(items)),
	}

	for _, item := range items {
		price := item.Price()
		if !price.IsSafeForStorage() {
			return nil, fmt.Errorf("item %s price exceeds storage capacity: %w", item.ProductID(), domain.ErrMoneyOverflow)
		}
		record.Items = append(record.Items, lineItemRecord{
			ProductID: item.ProductID(),
			Name:      item.Name(),
			Photo:     item.Photo(),
			PriceNum:  price.Numerator(),
			PriceDen:  price.Denominator(),
			Stock:     item.Stock(),
			Quantity:  item.Quantity(),
		})
	}

	discount := cart.Discount()
	if !discount.IsSafeForStorage() {
		return nil, fmt.Errorf("discount exceeds storage capacity: %w", domain.ErrMoneyOverflow)
	}
	record.DiscountNum = discount.Numerator()
	record.DiscountDen = discount.Denominator()

	if info := cart.ShippingInfo(); info != nil {
		record.ShippingInfo = &shippingInfoRecord{
			Address: info.Address,
			City:    info.City,
			State:   info.State,
			Country: info.Country,
			PinCode: info.PinCode,
		}
	}

	return record, nil
}

func recordToDomain(record *cartRecord) (*domain.Cart, error) {
	items := make([]domain.LineItem, 0, len(record.Items))
	for _, rec := range record.Items {
		price, err := domain.NewMoney(rec.PriceNum, rec.PriceDen)
		if err != nil {
			return nil, fmt.Errorf("invalid stored price for %s: %w", rec.ProductID, err)
		}
		item, err := domain.NewLineItem(rec.ProductID, rec.Name, rec.Photo, price, rec.Stock, rec.Quantity)
		if err != nil {
			return nil, fmt.Errorf("invalid stored line item %s: %w", rec.ProductID, err)
		}
		items = append(items, item)
	}

	discount, err := domain.NewMoney(record.DiscountNum, record.DiscountDen)
	if err != nil {
		return nil, fmt.Errorf("invalid stored discount: %w", err)
	}

	var info *domain.ShippingInfo
	if record.ShippingInfo != nil {
		info = &domain.ShippingInfo{
			Address: record.ShippingInfo.Address,
			City:    record.ShippingInfo.City,
			State:   record.ShippingInfo.State,
			Country: record.ShippingInfo.Country,
			PinCode: record.ShippingInfo.PinCode,
		}
	}

	return domain.ReconstructCart(items, discount, info), nil
}
