package models

import "time"

// CartItem is a single line in a session's cart. Quantity is always >= 1 while
// the item is in the cart; an item dropped to zero is removed, never kept.
type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image,omitempty"`
	Category string  `json:"category,omitempty"`
}

// Cart holds a session's line items.
type Cart struct {
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// TaxRate is the flat GST applied to the cart subtotal.
const TaxRate = 0.18

// TotalItems sums the quantities of all lines.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// Subtotal sums price * quantity over all lines.
func (c *Cart) Subtotal() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Tax returns the flat-rate tax on the subtotal.
func (c *Cart) Tax() float64 {
	return c.Subtotal() * TaxRate
}

// Total returns the subtotal plus tax.
func (c *Cart) Total() float64 {
	return c.Subtotal() * (1 + TaxRate)
}

// CartSummary is the cart with its derived totals, as returned to clients.
type CartSummary struct {
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"total_items"`
	Subtotal   float64    `json:"subtotal"`
	Tax        float64    `json:"tax"`
	Total      float64    `json:"total"`
}

// Summarize derives the totals for the current cart contents.
func (c *Cart) Summarize() CartSummary {
	items := c.Items
	if items == nil {
		items = []CartItem{}
	}
	return CartSummary{
		Items:      items,
		TotalItems: c.TotalItems(),
		Subtotal:   c.Subtotal(),
		Tax:        c.Tax(),
		Total:      c.Total(),
	}
}
