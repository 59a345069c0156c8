package inventory

// Item is one row of the inventory table. The id is assigned by the store
// on insert and never changes.
type Item struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Supplier string  `json:"supplier"`
}
