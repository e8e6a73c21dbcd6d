package domain

// ShippingInfo is the postal address attached to a cart before checkout.
// It is stored verbatim; field-level validation belongs to the caller.
type ShippingInfo struct {
	Address string
	City    string
	State   string
	Country string
	PinCode string
}
