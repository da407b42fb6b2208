package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/fmcommerce/storefront/pkg/config"
	pkgerrors "github.com/fmcommerce/storefront/pkg/errors"
)

// Client fetches product and category lists from the remote catalog API.
// It is read-only; the cart and theme stores never call it directly.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient builds a catalog client for the configured API.
func NewClient(cfg config.CatalogConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("catalog base URL required")
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpc:   &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// FetchProducts returns the full catalog.
func (c *Client) FetchProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.getJSON(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// FetchProduct returns a single product by catalog identifier.
func (c *Client) FetchProduct(ctx context.Context, id int64) (*Product, error) {
	var product Product
	if err := c.getJSON(ctx, fmt.Sprintf("/products/%d", id), &product); err != nil {
		// The upstream API answers an unknown id with 200 and an empty
		// or null body rather than a 404.
		if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeDecode && errors.Is(err, io.EOF) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, err
	}
	if product.ID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return &product, nil
}

// FetchCategories returns the list of known category names.
func (c *Client) FetchCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.getJSON(ctx, "/products/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Ping reports whether the catalog endpoint is reachable.
func (c *Client) Ping(ctx context.Context) error {
	var categories []string
	return c.getJSON(ctx, "/products/categories", &categories)
}

func (c *Client) getJSON(ctx context.Context, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build catalog request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "catalog unreachable").
			WithDetails(map[string]any{"path": path})
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return pkgerrors.New(pkgerrors.CodeDependency, "catalog returned non-2xx status").
			WithDetails(map[string]any{"path": path, "status": resp.StatusCode})
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDecode, err, "decode catalog payload").
			WithDetails(map[string]any{"path": path})
	}
	return nil
}
