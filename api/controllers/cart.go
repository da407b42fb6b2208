package controllers

import (
	"context"
	"net/http"

	"github.com/fmcommerce/storefront/api/responses"
	"github.com/fmcommerce/storefront/api/validators"
	"github.com/fmcommerce/storefront/internal/cart"
	"github.com/fmcommerce/storefront/internal/catalog"
	pkgerrors "github.com/fmcommerce/storefront/pkg/errors"
	"github.com/fmcommerce/storefront/pkg/logger"
	"github.com/shopspring/decimal"
)

// CartStore is the store surface the cart handlers dispatch into.
type CartStore interface {
	State() cart.State
	AddItem(ctx context.Context, product catalog.Product) cart.State
	RemoveItem(ctx context.Context, id int64) cart.State
	UpdateQuantity(ctx context.Context, id int64, quantity int) cart.State
	Clear(ctx context.Context) cart.State
}

type productFetcher interface {
	FetchProduct(ctx context.Context, id int64) (*catalog.Product, error)
}

type cartResponse struct {
	Items []cart.LineItem `json:"items"`
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

func newCartResponse(state cart.State) cartResponse {
	items := state.Items
	if items == nil {
		items = []cart.LineItem{}
	}
	return cartResponse{
		Items: items,
		Count: state.Count(),
		Total: state.Total(),
	}
}

type addItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,min=1"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartFetch returns the current cart with its derived count and total.
func CartFetch(store CartStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart store unavailable"))
			return
		}
		responses.WriteSuccess(w, newCartResponse(store.State()))
	}
}

// CartAddItem loads the product from the catalog and adds it to the cart.
// The stores never talk to the catalog themselves; this handler mediates.
func CartAddItem(store CartStore, products productFetcher, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil || products == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart store unavailable"))
			return
		}

		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := products.FetchProduct(r.Context(), payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		state := store.AddItem(r.Context(), *product)
		responses.WriteSuccessStatus(w, http.StatusCreated, newCartResponse(state))
	}
}

// CartUpdateItem sets a line item's quantity; zero or less removes the line.
func CartUpdateItem(store CartStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart store unavailable"))
			return
		}

		id, err := productIDFromPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		state := store.UpdateQuantity(r.Context(), id, payload.Quantity)
		responses.WriteSuccess(w, newCartResponse(state))
	}
}

// CartRemoveItem drops a line item; removing an absent id still succeeds.
func CartRemoveItem(store CartStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart store unavailable"))
			return
		}

		id, err := productIDFromPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		state := store.RemoveItem(r.Context(), id)
		responses.WriteSuccess(w, newCartResponse(state))
	}
}

// CartClear empties the cart.
func CartClear(store CartStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart store unavailable"))
			return
		}
		responses.WriteSuccess(w, newCartResponse(store.Clear(r.Context())))
	}
}

// CartCheckout clears the cart. There is no payment flow; checkout only
// resets local state.
func CartCheckout(store CartStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart store unavailable"))
			return
		}
		responses.WriteSuccess(w, newCartResponse(store.Clear(r.Context())))
	}
}
