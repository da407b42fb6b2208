package cart

import (
	"github.com/fmcommerce/storefront/internal/catalog"
	"github.com/shopspring/decimal"
)

// LineItem is one cart entry: a product snapshot plus its quantity.
// Quantity is always >= 1; a line dropping to 0 is removed, never retained.
type LineItem struct {
	ID       int64           `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Quantity int             `json:"quantity"`
}

// State is the ordered line item collection, at most one line per product id.
type State struct {
	Items []LineItem
}

// Count sums quantities across all line items.
func (s State) Count() int {
	total := 0
	for _, item := range s.Items {
		total += item.Quantity
	}
	return total
}

// Total sums price times quantity across all line items.
func (s State) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

func (s State) find(id int64) int {
	for i, item := range s.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func cloneItems(items []LineItem) []LineItem {
	if items == nil {
		return nil
	}
	cloned := make([]LineItem, len(items))
	copy(cloned, items)
	return cloned
}

// AddItem increments the quantity of an existing line for the product, keeping
// the original price/title/image snapshot, or appends a new line with
// quantity 1. Pure: the input state is never mutated.
func AddItem(state State, product catalog.Product) State {
	items := cloneItems(state.Items)
	if i := state.find(product.ID); i >= 0 {
		items[i].Quantity++
		return State{Items: items}
	}
	items = append(items, LineItem{
		ID:       product.ID,
		Title:    product.Title,
		Price:    product.Price,
		Image:    product.Image,
		Quantity: 1,
	})
	return State{Items: items}
}

// RemoveItem drops the line with the given id. Removing an absent id is a
// valid transition that leaves the state unchanged.
func RemoveItem(state State, id int64) State {
	items := make([]LineItem, 0, len(state.Items))
	for _, item := range state.Items {
		if item.ID != id {
			items = append(items, item)
		}
	}
	return State{Items: items}
}

// UpdateQuantity sets the line's quantity, removing it when the requested
// quantity is zero or negative. Absent ids are left untouched.
func UpdateQuantity(state State, id int64, quantity int) State {
	if quantity <= 0 {
		return RemoveItem(state, id)
	}
	items := cloneItems(state.Items)
	if i := state.find(id); i >= 0 {
		items[i].Quantity = quantity
	}
	return State{Items: items}
}

// Clear empties the cart.
func Clear(State) State {
	return State{Items: []LineItem{}}
}
