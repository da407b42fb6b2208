package cart

import (
	"testing"

	"github.com/fmcommerce/storefront/internal/catalog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shoe() catalog.Product {
	return catalog.Product{ID: 1, Title: "Shoe", Price: decimal.NewFromInt(10), Image: "x"}
}

func hat() catalog.Product {
	return catalog.Product{ID: 2, Title: "Hat", Price: decimal.NewFromFloat(5.5), Image: "y"}
}

func TestAddItemToEmptyCart(t *testing.T) {
	t.Parallel()

	state := AddItem(State{}, shoe())

	require.Len(t, state.Items, 1)
	item := state.Items[0]
	assert.Equal(t, int64(1), item.ID)
	assert.Equal(t, "Shoe", item.Title)
	assert.True(t, item.Price.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, "x", item.Image)
	assert.Equal(t, 1, item.Quantity)
}

func TestAddItemTwiceIncrementsQuantity(t *testing.T) {
	t.Parallel()

	state := AddItem(AddItem(State{}, shoe()), shoe())

	require.Len(t, state.Items, 1)
	assert.Equal(t, 2, state.Items[0].Quantity)
}

func TestAddItemKeepsOriginalSnapshot(t *testing.T) {
	t.Parallel()

	state := AddItem(State{}, shoe())

	repriced := shoe()
	repriced.Price = decimal.NewFromInt(99)
	repriced.Title = "Fancy Shoe"
	state = AddItem(state, repriced)

	require.Len(t, state.Items, 1)
	assert.True(t, state.Items[0].Price.Equal(decimal.NewFromInt(10)), "price snapshot must not be refreshed")
	assert.Equal(t, "Shoe", state.Items[0].Title)
	assert.Equal(t, 2, state.Items[0].Quantity)
}

func TestAddItemPreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	state := AddItem(AddItem(State{}, shoe()), hat())
	state = AddItem(state, shoe())

	require.Len(t, state.Items, 2)
	assert.Equal(t, int64(1), state.Items[0].ID)
	assert.Equal(t, int64(2), state.Items[1].ID)
}

func TestAddItemDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	original := AddItem(State{}, shoe())
	_ = AddItem(original, shoe())

	assert.Equal(t, 1, original.Items[0].Quantity, "input state must stay untouched")
}

func TestRemoveItem(t *testing.T) {
	t.Parallel()

	state := AddItem(AddItem(State{}, shoe()), hat())

	state = RemoveItem(state, 1)
	require.Len(t, state.Items, 1)
	assert.Equal(t, int64(2), state.Items[0].ID)
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	t.Parallel()

	state := AddItem(AddItem(State{}, shoe()), hat())

	once := RemoveItem(state, 1)
	twice := RemoveItem(once, 1)

	assert.Equal(t, once.Items, twice.Items)
}

func TestRemoveAbsentIDIsValidNoOp(t *testing.T) {
	t.Parallel()

	state := AddItem(State{}, shoe())
	next := RemoveItem(state, 42)

	assert.Equal(t, state.Items, next.Items)
}

func TestUpdateQuantitySetsValue(t *testing.T) {
	t.Parallel()

	state := AddItem(AddItem(State{}, shoe()), shoe())
	state = UpdateQuantity(state, 1, 5)

	require.Len(t, state.Items, 1)
	assert.Equal(t, 5, state.Items[0].Quantity)
	assert.True(t, state.Total().Equal(decimal.NewFromInt(50)), "total must follow the new quantity")
}

func TestUpdateQuantityZeroEqualsRemove(t *testing.T) {
	t.Parallel()

	state := AddItem(AddItem(State{}, shoe()), hat())

	viaUpdate := UpdateQuantity(state, 1, 0)
	viaRemove := RemoveItem(state, 1)

	assert.Equal(t, viaRemove.Items, viaUpdate.Items)

	viaNegative := UpdateQuantity(state, 1, -3)
	assert.Equal(t, viaRemove.Items, viaNegative.Items)
}

func TestUpdateQuantityAbsentIDIsNoOp(t *testing.T) {
	t.Parallel()

	state := AddItem(State{}, shoe())
	next := UpdateQuantity(state, 42, 7)

	assert.Equal(t, state.Items, next.Items)
}

func TestClearEmptiesAnyState(t *testing.T) {
	t.Parallel()

	state := AddItem(AddItem(AddItem(State{}, shoe()), hat()), shoe())

	cleared := Clear(state)
	assert.Empty(t, cleared.Items)

	assert.Empty(t, Clear(State{}).Items)
}

func TestDerivedCountAndTotal(t *testing.T) {
	t.Parallel()

	state := AddItem(AddItem(AddItem(State{}, shoe()), shoe()), hat())

	assert.Equal(t, 3, state.Count())
	assert.True(t, state.Total().Equal(decimal.NewFromFloat(25.5)), "got %s", state.Total())

	empty := State{}
	assert.Equal(t, 0, empty.Count())
	assert.True(t, empty.Total().IsZero())
}
