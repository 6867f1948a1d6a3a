package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"

	"commerce-chatbot-be/internal/entity"

	"github.com/shopspring/decimal"
)

// fakeStore serves catalog queries from a slice, preserving slice order
// the way the real repository preserves ascending id order.
type fakeStore struct {
	products []*entity.Product
	failWith error
}

func (f *fakeStore) ListCategories(ctx context.Context) ([]string, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	seen := map[string]bool{}
	var out []string
	for _, p := range f.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out, nil
}

func (f *fakeStore) ListAttributeValues(ctx context.Context, category, attribute string) ([]string, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	seen := map[string]bool{}
	var out []string
	for _, p := range f.products {
		if !strings.EqualFold(p.Category, category) {
			continue
		}
		var v string
		switch attribute {
		case AttributeColor:
			v = p.Color
		case AttributeSize:
			v = p.Size
		case AttributeStyle:
			v = p.Style
		}
		if v != "" && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeStore) FindProductByNameSubstring(ctx context.Context, text string) (*entity.Product, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, p := range f.products {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(text)) {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ListAllProducts(ctx context.Context) ([]*entity.Product, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.products, nil
}

func (f *fakeStore) FindProductByAttributes(ctx context.Context, category, color, size, style string) (*entity.Product, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, p := range f.products {
		if strings.EqualFold(p.Category, category) &&
			strings.EqualFold(p.Color, color) &&
			strings.EqualFold(p.Size, size) &&
			strings.EqualFold(p.Style, style) {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ListProductsByCategoryAndStyle(ctx context.Context, category, style string) ([]*entity.Product, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []*entity.Product
	for _, p := range f.products {
		if strings.EqualFold(p.Category, category) && strings.EqualFold(p.Style, style) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeStore) ListProductsByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []*entity.Product
	for _, p := range f.products {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out, nil
}

func product(id uint, name, category, color, size, style string, qty int) *entity.Product {
	return &entity.Product{
		Id:       id,
		Name:     name,
		Category: category,
		Color:    color,
		Size:     size,
		Style:    style,
		Material: "Cotton",
		Price:    decimal.NewFromFloat(29.99),
		Quantity: qty,
	}
}

func TestResolverDirectHit(t *testing.T) {
	store := &fakeStore{products: []*entity.Product{
		product(1, "Black Hoodie", "Hoodies", "Black", "M", "Pullover", 5),
	}}
	r := NewResolver(store)

	got, err := r.ResolveByName(context.Background(), "hoodie")
	if err != nil {
		t.Fatalf("ResolveByName returned error: %v", err)
	}
	if got.Id != 1 {
		t.Errorf("resolved product id = %d, want 1", got.Id)
	}
}

func TestResolverDirectHitSoldOut(t *testing.T) {
	store := &fakeStore{products: []*entity.Product{
		product(1, "Black Hoodie", "Hoodies", "Black", "M", "Pullover", 0),
	}}
	r := NewResolver(store)

	_, err := r.ResolveByName(context.Background(), "hoodie")
	if !errors.Is(err, ErrProductSoldOut) {
		t.Errorf("err = %v, want ErrProductSoldOut", err)
	}
}

func TestResolverNormalizedFallback(t *testing.T) {
	// "t--shirt" is not a raw substring of any name, but normalizes to
	// "tshirt" which both normalized names contain.
	store := &fakeStore{products: []*entity.Product{
		product(1, "Sold Out T-Shirt", "T-Shirts", "White", "S", "Crew", 0),
		product(2, "Blue T-Shirt", "T-Shirts", "Blue", "M", "Crew", 3),
	}}
	r := NewResolver(store)

	got, err := r.ResolveByName(context.Background(), "t--shirt")
	if err != nil {
		t.Fatalf("ResolveByName returned error: %v", err)
	}
	if got.Id != 1 && got.Id != 2 {
		t.Fatalf("unexpected product id %d", got.Id)
	}
	// First in-stock candidate in storage order wins.
	if got.Id != 2 {
		t.Errorf("resolved product id = %d, want 2 (first with stock)", got.Id)
	}
}

func TestResolverNotFound(t *testing.T) {
	store := &fakeStore{products: []*entity.Product{
		product(1, "Black Hoodie", "Hoodies", "Black", "M", "Pullover", 5),
	}}
	r := NewResolver(store)

	_, err := r.ResolveByName(context.Background(), "submarine")
	if !errors.Is(err, ErrProductNotFound) {
		t.Errorf("err = %v, want ErrProductNotFound", err)
	}
}

func TestResolverStorageError(t *testing.T) {
	boom := errors.New("connection refused")
	r := NewResolver(&fakeStore{failWith: boom})

	_, err := r.ResolveByName(context.Background(), "hoodie")
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped storage error", err)
	}
}

func TestMatcherExactMatch(t *testing.T) {
	store := &fakeStore{products: []*entity.Product{
		product(1, "Black Hoodie", "Hoodies", "Black", "M", "Pullover", 5),
	}}
	m := NewMatcher(store)

	got, err := m.ResolveByAttributes(context.Background(), "hoodies", "black", "m", "pullover")
	if err != nil {
		t.Fatalf("ResolveByAttributes returned error: %v", err)
	}
	if got.Id != 1 {
		t.Errorf("resolved product id = %d, want 1", got.Id)
	}
}

func TestMatcherExactMatchSoldOut(t *testing.T) {
	store := &fakeStore{products: []*entity.Product{
		product(1, "Black Hoodie", "Hoodies", "Black", "M", "Pullover", 0),
	}}
	m := NewMatcher(store)

	_, err := m.ResolveByAttributes(context.Background(), "Hoodies", "Black", "M", "Pullover")
	if !errors.Is(err, ErrProductSoldOut) {
		t.Errorf("err = %v, want ErrProductSoldOut", err)
	}
}

func TestMatcherFallbackPrefersLowestScoreStable(t *testing.T) {
	// Requested: Red / L. Scores: p1=2 (both wrong), p2=1 (size wrong),
	// p3=1 (color wrong), p4=0.
	store := &fakeStore{products: []*entity.Product{
		product(1, "Hoodie A", "Hoodies", "Blue", "S", "Pullover", 5),
		product(2, "Hoodie B", "Hoodies", "Red", "S", "Pullover", 5),
		product(3, "Hoodie C", "Hoodies", "Green", "L", "Pullover", 5),
		product(4, "Hoodie D", "Hoodies", "Red", "L", "Zip", 5),
	}}
	m := NewMatcher(store)

	// No exact match for Red/L/Pullover; p4 has a different style so it
	// is outside the candidate set. First score-1 candidate (p2) wins
	// over the score-2 candidate even though p1 comes first.
	got, err := m.ResolveByAttributes(context.Background(), "Hoodies", "Red", "L", "Pullover")
	if err != nil {
		t.Fatalf("ResolveByAttributes returned error: %v", err)
	}
	if got.Id != 2 {
		t.Errorf("resolved product id = %d, want 2 (first minimum-score candidate)", got.Id)
	}
}

func TestMatcherFallbackZeroScoreWins(t *testing.T) {
	// Scores in storage order: {2, 0, 1, 0}; the FIRST score-0 candidate
	// must win.
	store := &fakeStore{products: []*entity.Product{
		product(1, "Hoodie A", "Hoodies", "Blue", "S", "Pullover", 5),
		product(2, "Hoodie B", "Hoodies", "Red", "L", "Pullover", 5),
		product(3, "Hoodie C", "Hoodies", "Red", "S", "Pullover", 5),
		product(4, "Hoodie D", "Hoodies", "Red", "L", "Pullover", 5),
	}}
	// Remove the exact match path by marking p2/p4 differently sized in
	// the store lookup: the exact finder matches p2, so instead request
	// an XL that nobody carries in exact form.
	store.products[1].Size = "XL"
	store.products[3].Size = "XL"

	m := NewMatcher(store)
	got, err := m.ResolveByAttributes(context.Background(), "Hoodies", "Red", "XXL", "Pullover")
	if err != nil {
		t.Fatalf("ResolveByAttributes returned error: %v", err)
	}
	// Scores for Red/XXL: p1 (Blue,S)=2, p2 (Red,XL)=1, p3 (Red,S)=1,
	// p4 (Red,XL)=1 -> first score-1 candidate is p2.
	if got.Id != 2 {
		t.Errorf("resolved product id = %d, want 2", got.Id)
	}
}

func TestMatcherFallbackSkipsOutOfStock(t *testing.T) {
	store := &fakeStore{products: []*entity.Product{
		product(1, "Hoodie A", "Hoodies", "Red", "L", "Pullover", 0),
		product(2, "Hoodie B", "Hoodies", "Blue", "L", "Pullover", 5),
	}}
	m := NewMatcher(store)

	// Exact match (p1) is sold out -> ErrProductSoldOut, not fallback.
	_, err := m.ResolveByAttributes(context.Background(), "Hoodies", "Red", "L", "Pullover")
	if !errors.Is(err, ErrProductSoldOut) {
		t.Errorf("err = %v, want ErrProductSoldOut", err)
	}

	// A combination with no exact match falls back past the sold-out
	// candidate.
	got, err := m.ResolveByAttributes(context.Background(), "Hoodies", "Red", "M", "Pullover")
	if err != nil {
		t.Fatalf("ResolveByAttributes returned error: %v", err)
	}
	if got.Id != 2 {
		t.Errorf("resolved product id = %d, want 2", got.Id)
	}
}

func TestMatcherNoCandidates(t *testing.T) {
	store := &fakeStore{products: []*entity.Product{
		product(1, "Hoodie A", "Hoodies", "Red", "L", "Pullover", 5),
	}}
	m := NewMatcher(store)

	_, err := m.ResolveByAttributes(context.Background(), "Hoodies", "Red", "L", "Zip")
	if !errors.Is(err, ErrProductNotFound) {
		t.Errorf("err = %v, want ErrProductNotFound", err)
	}
}

func TestInferrerAboveThreshold(t *testing.T) {
	store := &fakeStore{products: []*entity.Product{
		product(1, "Black Hoodie", "Hoodies", "Black", "M", "Pullover", 5),
		product(2, "Leather Wallet", "Accessories", "Brown", "One Size", "Bifold", 5),
	}}
	i := NewInferrer(store)

	got, err := i.InferCategory(context.Background(), "hoodies")
	if err != nil {
		t.Fatalf("InferCategory returned error: %v", err)
	}
	if got != "Hoodies" {
		t.Errorf("InferCategory = %q, want %q", got, "Hoodies")
	}
}

func TestInferrerBelowThreshold(t *testing.T) {
	store := &fakeStore{products: []*entity.Product{
		product(1, "Black Hoodie", "Hoodies", "Black", "M", "Pullover", 5),
	}}
	i := NewInferrer(store)

	got, err := i.InferCategory(context.Background(), "xyzq")
	if err != nil {
		t.Fatalf("InferCategory returned error: %v", err)
	}
	if got != "" {
		t.Errorf("InferCategory = %q, want empty", got)
	}
}
