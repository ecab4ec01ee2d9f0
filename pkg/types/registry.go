package types

// Standard entity type names. Each maps to one backend collection endpoint
// and one client-side store.
const (
	EntityCustomers     = "customers"
	EntityProducts      = "products"
	EntityDiscounts     = "discounts"
	EntityGiftCards     = "gift-cards"
	EntityInvoices      = "invoices"
	EntityLoyalty       = "loyalty"
	EntityReturns       = "returns"
	EntityShippingZones = "shipping-zones"
	EntityCarriers      = "carriers"
	EntityOrders        = "orders"
)

// StandardEntities lists all entity type names for enumeration, in the order
// the console presents them.
var StandardEntities = []string{
	EntityCustomers,
	EntityProducts,
	EntityDiscounts,
	EntityGiftCards,
	EntityInvoices,
	EntityLoyalty,
	EntityReturns,
	EntityShippingZones,
	EntityCarriers,
	EntityOrders,
}

// entityEndpoints maps entity type names to backend collection paths.
// Paths are relative to the API base URL, without a leading slash.
var entityEndpoints = map[string]string{
	EntityCustomers:     "customers",
	EntityProducts:      "products",
	EntityDiscounts:     "discounts",
	EntityGiftCards:     "gift-cards",
	EntityInvoices:      "invoices",
	EntityLoyalty:       "loyalty",
	EntityReturns:       "returns",
	EntityShippingZones: "shipping-zones",
	EntityCarriers:      "carriers",
	EntityOrders:        "orders",
}

// Endpoint returns the collection endpoint path for an entity type name.
// Returns ErrUnknownEntity for names outside StandardEntities.
func Endpoint(entity string) (string, error) {
	path, ok := entityEndpoints[entity]
	if !ok {
		return "", ErrUnknownEntity
	}
	return path, nil
}

// ValidEntity reports whether name is a standard entity type.
func ValidEntity(name string) bool {
	_, ok := entityEndpoints[name]
	return ok
}
