package dialogue

import (
	"context"
	"errors"
	"strings"
	"testing"

	"commerce-chatbot-be/internal/dto"
	"commerce-chatbot-be/internal/entity"
	"commerce-chatbot-be/pkg/catalog"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedPrompter replays canned answers and records everything the
// engine said or asked.
type scriptedPrompter struct {
	answers []string
	next    int
	prompts []string
	said    []string
}

func (p *scriptedPrompter) Ask(prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	if p.next >= len(p.answers) {
		return "", errors.New("script exhausted")
	}
	answer := p.answers[p.next]
	p.next++
	return answer, nil
}

func (p *scriptedPrompter) Say(message string) {
	p.said = append(p.said, message)
}

func (p *scriptedPrompter) saidContaining(fragment string) bool {
	for _, s := range p.said {
		if strings.Contains(s, fragment) {
			return true
		}
	}
	return false
}

type dialogueStore struct {
	products []*entity.Product
}

func (s *dialogueStore) ListCategories(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out, nil
}

func (s *dialogueStore) ListAttributeValues(ctx context.Context, category, attribute string) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, p := range s.products {
		if !strings.EqualFold(p.Category, category) {
			continue
		}
		var v string
		switch attribute {
		case catalog.AttributeColor:
			v = p.Color
		case catalog.AttributeSize:
			v = p.Size
		case catalog.AttributeStyle:
			v = p.Style
		}
		if v != "" && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *dialogueStore) FindProductByNameSubstring(ctx context.Context, text string) (*entity.Product, error) {
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(text)) {
			return p, nil
		}
	}
	return nil, nil
}

func (s *dialogueStore) ListAllProducts(ctx context.Context) ([]*entity.Product, error) {
	return s.products, nil
}

func (s *dialogueStore) FindProductByAttributes(ctx context.Context, category, color, size, style string) (*entity.Product, error) {
	for _, p := range s.products {
		if strings.EqualFold(p.Category, category) &&
			strings.EqualFold(p.Color, color) &&
			strings.EqualFold(p.Size, size) &&
			strings.EqualFold(p.Style, style) {
			return p, nil
		}
	}
	return nil, nil
}

func (s *dialogueStore) ListProductsByCategoryAndStyle(ctx context.Context, category, style string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range s.products {
		if strings.EqualFold(p.Category, category) && strings.EqualFold(p.Style, style) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *dialogueStore) ListProductsByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range s.products {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakePlacer struct {
	calls int
	draft *dto.OrderDraft
	id    uint
	err   error
}

func (f *fakePlacer) PlaceOrder(ctx context.Context, draft *dto.OrderDraft) (uint, error) {
	f.calls++
	f.draft = draft
	return f.id, f.err
}

func hoodieCatalog(stock int) *dialogueStore {
	return &dialogueStore{products: []*entity.Product{{
		Id:       1,
		Name:     "Black Hoodie",
		Category: "Hoodies",
		Color:    "Black",
		Material: "Cotton",
		Style:    "Pullover",
		Size:     "M",
		Price:    decimal.NewFromFloat(49.99),
		Quantity: stock,
	}}}
}

func newTestEngine(store catalog.Store, placer OrderPlacer) *Engine {
	return NewEngine(store, catalog.NewMatcher(store), placer, NewValidator())
}

func TestRunCompletesOrder(t *testing.T) {
	store := hoodieCatalog(5)
	placer := &fakePlacer{id: 42}
	engine := newTestEngine(store, placer)
	prompter := &scriptedPrompter{answers: []string{
		"hoodies",        // category
		"ok",             // single color
		"ok",             // single size
		"ok",             // single style
		"2",              // quantity
		"yes",            // price
		"Jane Roe",       // name
		"1 Main St",      // address
		"jane@mail.com",  // email
		"+201111111111",  // phone
		"cash",           // payment
	}}

	result, err := engine.Run(context.Background(), prompter)
	require.NoError(t, err)
	require.Equal(t, OutcomeCompleted, result.Outcome)
	assert.Equal(t, uint(42), result.OrderId)
	assert.Contains(t, result.Message, "order ID: 42")

	require.Equal(t, 1, placer.calls)
	draft := placer.draft
	assert.Equal(t, uint(1), draft.ProductId)
	assert.Equal(t, "Black Hoodie", draft.ProductName)
	assert.Equal(t, 2, draft.Quantity)
	assert.True(t, draft.TotalPrice.Equal(decimal.NewFromFloat(99.98)), "total = %s", draft.TotalPrice)
	assert.Equal(t, "jane@mail.com", draft.Email)
	assert.Equal(t, "+201111111111", draft.Phone)
	assert.True(t, prompter.saidContaining("Available stock: 5 unit(s)."))
}

func TestRunCancelsAtColorPrompt(t *testing.T) {
	store := hoodieCatalog(5)
	placer := &fakePlacer{id: 1}
	engine := newTestEngine(store, placer)
	prompter := &scriptedPrompter{answers: []string{
		"Hoodies",
		"hmm", // neither synonym set: re-prompt
		"no",  // cancel
	}}

	result, err := engine.Run(context.Background(), prompter)
	require.NoError(t, err)
	assert.Equal(t, OutcomeCancelled, result.Outcome)
	assert.Equal(t, "Order cancelled.", result.Message)
	assert.Equal(t, 0, placer.calls, "no storage create on cancellation")
	assert.True(t, prompter.saidContaining("Invalid input. Please type 'ok' or 'no'."))
}

func TestRunQuantityGuard(t *testing.T) {
	store := hoodieCatalog(5)
	placer := &fakePlacer{id: 7}
	engine := newTestEngine(store, placer)
	prompter := &scriptedPrompter{answers: []string{
		"Hoodies", "ok", "ok", "ok",
		"abc", // non-numeric: re-prompt
		"0",   // below one: re-prompt
		"99",  // over stock: re-prompt
		"5",   // exactly stock: accepted
		"yes",
		"Jane Roe", "1 Main St", "jane@mail.com", "+201111111111", "cash",
	}}

	result, err := engine.Run(context.Background(), prompter)
	require.NoError(t, err)
	require.Equal(t, OutcomeCompleted, result.Outcome)
	assert.Equal(t, 5, placer.draft.Quantity)
	assert.True(t, prompter.saidContaining("Please enter a valid number."))
	assert.True(t, prompter.saidContaining("only 5 unit(s) are available"))
}

func TestRunPriceDeclineCancels(t *testing.T) {
	// Any non-affirmative cancels at the price prompt, not just the
	// negative synonyms.
	store := hoodieCatalog(5)
	placer := &fakePlacer{id: 7}
	engine := newTestEngine(store, placer)
	prompter := &scriptedPrompter{answers: []string{
		"Hoodies", "ok", "ok", "ok", "1",
		"maybe",
	}}

	result, err := engine.Run(context.Background(), prompter)
	require.NoError(t, err)
	assert.Equal(t, OutcomeCancelled, result.Outcome)
	assert.Equal(t, "Order cancelled.", result.Message)
	assert.Equal(t, 0, placer.calls)
}

func TestRunPhoneValidation(t *testing.T) {
	store := hoodieCatalog(5)
	placer := &fakePlacer{id: 7}
	engine := newTestEngine(store, placer)
	prompter := &scriptedPrompter{answers: []string{
		"Hoodies", "ok", "ok", "ok", "1", "yes",
		"Jane Roe", "1 Main St",
		"not-an-email",  // rejected
		"jane@mail.com", // accepted
		"+20111111111",  // 12 chars: rejected
		"201111111111",  // no plus: rejected
		"+201111111111", // 13 chars with plus: accepted
		"cash",
	}}

	result, err := engine.Run(context.Background(), prompter)
	require.NoError(t, err)
	require.Equal(t, OutcomeCompleted, result.Outcome)
	assert.Equal(t, "+201111111111", placer.draft.Phone)
	assert.True(t, prompter.saidContaining("valid phone number"))
	assert.True(t, prompter.saidContaining("valid E-mail address"))
}

func TestRunMultiOptionPick(t *testing.T) {
	store := hoodieCatalog(5)
	store.products = append(store.products, &entity.Product{
		Id:       2,
		Name:     "Blue Hoodie",
		Category: "Hoodies",
		Color:    "Blue",
		Material: "Cotton",
		Style:    "Pullover",
		Size:     "M",
		Price:    decimal.NewFromFloat(39.99),
		Quantity: 3,
	})
	placer := &fakePlacer{id: 9}
	engine := newTestEngine(store, placer)
	prompter := &scriptedPrompter{answers: []string{
		"Hoodies",
		"green", // not listed: re-prompt
		"blue",  // case-insensitive pick
		"ok", "ok", "1", "yes",
		"Jane Roe", "1 Main St", "jane@mail.com", "+201111111111", "cash",
	}}

	result, err := engine.Run(context.Background(), prompter)
	require.NoError(t, err)
	require.Equal(t, OutcomeCompleted, result.Outcome)
	assert.Equal(t, "Blue Hoodie", placer.draft.ProductName)
	assert.True(t, prompter.saidContaining("Invalid color. Please choose from: Black, Blue."))
}

func TestRunNoMatchListsAlternativesAndCancels(t *testing.T) {
	store := hoodieCatalog(5)
	store.products = append(store.products, &entity.Product{
		Id:       2,
		Name:     "Zip Hoodie",
		Category: "Hoodies",
		Color:    "Black",
		Material: "Fleece",
		Style:    "Zip",
		Size:     "L",
		Quantity: 0,
		Price:    decimal.NewFromFloat(59.99),
	})
	placer := &fakePlacer{id: 9}
	engine := newTestEngine(store, placer)
	// Black/L/Zip matches the sold-out Zip Hoodie exactly and no
	// in-stock Zip fallback exists, so the engine must list the
	// category alternatives and cancel.
	prompter := &scriptedPrompter{answers: []string{
		"Hoodies",
		"ok",  // color Black
		"l",   // size
		"zip", // style -> exact match sold out, no in-stock fallback
	}}

	result, err := engine.Run(context.Background(), prompter)
	require.NoError(t, err)
	assert.Equal(t, OutcomeCancelled, result.Outcome)
	assert.Contains(t, result.Message, "we do not have a product matching that configuration in 'Hoodies'")
	assert.Contains(t, result.Message, "Available alternatives in this category:")
	assert.Contains(t, result.Message, "Name: Black Hoodie")
	assert.Equal(t, 0, placer.calls)
}

func TestRunPlacerFailure(t *testing.T) {
	store := hoodieCatalog(5)
	placer := &fakePlacer{err: errors.New("insert failed")}
	engine := newTestEngine(store, placer)
	prompter := &scriptedPrompter{answers: []string{
		"Hoodies", "ok", "ok", "ok", "1", "yes",
		"Jane Roe", "1 Main St", "jane@mail.com", "+201111111111", "cash",
	}}

	result, err := engine.Run(context.Background(), prompter)
	require.NoError(t, err)
	assert.Equal(t, OutcomeCancelled, result.Outcome)
	assert.Equal(t, "There was an error placing your order.", result.Message)
}

func TestRunPrompterAbortPropagates(t *testing.T) {
	store := hoodieCatalog(5)
	engine := newTestEngine(store, &fakePlacer{})
	prompter := &scriptedPrompter{answers: nil} // first Ask errors

	_, err := engine.Run(context.Background(), prompter)
	require.Error(t, err)
}
