package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fmcommerce/storefront/api/responses"
	"github.com/fmcommerce/storefront/api/validators"
	"github.com/fmcommerce/storefront/internal/catalog"
	pkgerrors "github.com/fmcommerce/storefront/pkg/errors"
	"github.com/fmcommerce/storefront/pkg/logger"
	"github.com/fmcommerce/storefront/pkg/pagination"
	"github.com/shopspring/decimal"
)

type catalogClient interface {
	FetchProducts(ctx context.Context) ([]catalog.Product, error)
	FetchProduct(ctx context.Context, id int64) (*catalog.Product, error)
	FetchCategories(ctx context.Context) ([]string, error)
}

type productListResponse struct {
	Products []catalog.Product `json:"products"`
	Total    int               `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
	PriceMin decimal.Decimal   `json:"price_min"`
	PriceMax decimal.Decimal   `json:"price_max"`
}

// ProductsList fetches the catalog and applies the query's filter criteria.
func ProductsList(client catalogClient, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if client == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog client unavailable"))
			return
		}

		products, err := client.FetchProducts(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		criteria := catalog.CriteriaForCatalog(products)
		priceMin, priceMax := criteria.PriceMin, criteria.PriceMax

		criteria.Category = r.URL.Query().Get("category")
		criteria.Search = r.URL.Query().Get("q")
		if criteria.PriceMin, err = validators.ParseQueryDecimal(r, "price_min", criteria.PriceMin); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if criteria.PriceMax, err = validators.ParseQueryDecimal(r, "price_max", criteria.PriceMax); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		offset, err := validators.ParseQueryInt(r, "offset", 0, 0, 1<<30)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		page := pagination.Normalize(pagination.Params{Limit: limit, Offset: offset})

		filtered := catalog.Filter(products, criteria)
		responses.WriteSuccess(w, productListResponse{
			Products: pagination.Page(filtered, page),
			Total:    len(filtered),
			Limit:    page.Limit,
			Offset:   page.Offset,
			PriceMin: priceMin,
			PriceMax: priceMax,
		})
	}
}

// ProductDetail returns a single product by id.
func ProductDetail(client catalogClient, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if client == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog client unavailable"))
			return
		}

		id, err := productIDFromPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := client.FetchProduct(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

// CategoriesList returns the catalog's category names.
func CategoriesList(client catalogClient, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if client == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog client unavailable"))
			return
		}

		categories, err := client.FetchCategories(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"categories": categories})
	}
}

func productIDFromPath(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "product id must be a positive integer").
			WithDetails(map[string]any{"id": raw})
	}
	return id, nil
}
