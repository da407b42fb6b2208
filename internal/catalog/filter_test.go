package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
)

func testProducts() []Product {
	return []Product{
		{ID: 1, Title: "iPhone 13", Description: "Latest Apple smartphone", Category: "electronics", Price: decimal.NewFromInt(999)},
		{ID: 2, Title: "Nike Shoes", Description: "Running shoes", Category: "clothing", Price: decimal.NewFromInt(120)},
		{ID: 3, Title: "Samsung TV", Description: "4K display", Category: "electronics", Price: decimal.NewFromFloat(549.99)},
		{ID: 4, Title: "Leather Jacket", Description: "Classic biker jacket", Category: "clothing", Price: decimal.NewFromFloat(89.5)},
	}
}

func openCriteria() Criteria {
	return Criteria{PriceMin: decimal.Zero, PriceMax: decimal.NewFromInt(1000)}
}

func TestFilterNoCriteriaReturnsAllInOrder(t *testing.T) {
	t.Parallel()

	products := testProducts()
	got := Filter(products, openCriteria())
	if len(got) != len(products) {
		t.Fatalf("expected %d products, got %d", len(products), len(got))
	}
	for i := range got {
		if got[i].ID != products[i].ID {
			t.Fatalf("order not preserved at %d: got id %d", i, got[i].ID)
		}
	}
}

func TestFilterSearchIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	criteria := openCriteria()
	criteria.Search = "iphone"

	got := Filter(testProducts(), criteria)
	if len(got) != 1 || got[0].Title != "iPhone 13" {
		t.Fatalf("expected only iPhone 13, got %+v", got)
	}
}

func TestFilterSearchMatchesDescription(t *testing.T) {
	t.Parallel()

	criteria := openCriteria()
	criteria.Search = "4k DISPLAY"

	got := Filter(testProducts(), criteria)
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("expected Samsung TV via description, got %+v", got)
	}
}

func TestFilterCategoryIsExactMatch(t *testing.T) {
	t.Parallel()

	criteria := openCriteria()
	criteria.Category = "electronics"
	if got := Filter(testProducts(), criteria); len(got) != 2 {
		t.Fatalf("expected 2 electronics, got %d", len(got))
	}

	criteria.Category = "Electronics"
	if got := Filter(testProducts(), criteria); len(got) != 0 {
		t.Fatalf("category match must be case-sensitive, got %d results", len(got))
	}
}

func TestFilterPriceBoundsAreInclusive(t *testing.T) {
	t.Parallel()

	criteria := openCriteria()
	criteria.PriceMin = decimal.NewFromInt(120)
	criteria.PriceMax = decimal.NewFromInt(999)

	got := Filter(testProducts(), criteria)
	if len(got) != 3 {
		t.Fatalf("expected 3 products within [120, 999], got %d", len(got))
	}
}

func TestFilterInvertedBoundsMatchNothing(t *testing.T) {
	t.Parallel()

	criteria := openCriteria()
	criteria.PriceMin = decimal.NewFromInt(500)
	criteria.PriceMax = decimal.NewFromInt(100)

	if got := Filter(testProducts(), criteria); len(got) != 0 {
		t.Fatalf("inverted bounds should match nothing, got %d", len(got))
	}
}

func TestFilterComposesAsConjunction(t *testing.T) {
	t.Parallel()

	products := testProducts()

	first := openCriteria()
	first.Category = "electronics"

	second := openCriteria()
	second.Search = "apple"

	combined := openCriteria()
	combined.Category = "electronics"
	combined.Search = "apple"

	sequential := Filter(Filter(products, first), second)
	direct := Filter(products, combined)

	if len(sequential) != len(direct) {
		t.Fatalf("sequential and combined filtering disagree: %d vs %d", len(sequential), len(direct))
	}
	for i := range direct {
		if sequential[i].ID != direct[i].ID {
			t.Fatalf("mismatch at %d: %d vs %d", i, sequential[i].ID, direct[i].ID)
		}
	}
}

func TestPriceBounds(t *testing.T) {
	t.Parallel()

	min, max := PriceBounds(testProducts())
	if !min.Equal(decimal.NewFromInt(89)) {
		t.Fatalf("expected floor 89, got %s", min)
	}
	if !max.Equal(decimal.NewFromInt(999)) {
		t.Fatalf("expected ceil 999, got %s", max)
	}

	min, max = PriceBounds(nil)
	if !min.IsZero() || !max.IsZero() {
		t.Fatalf("empty catalog should yield zero bounds, got %s..%s", min, max)
	}
}

func TestCriteriaForCatalogMatchesEverything(t *testing.T) {
	t.Parallel()

	products := testProducts()
	got := Filter(products, CriteriaForCatalog(products))
	if len(got) != len(products) {
		t.Fatalf("default criteria should match all %d products, got %d", len(products), len(got))
	}
}
