package dialogue

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"commerce-chatbot-be/internal/dto"
	"commerce-chatbot-be/internal/entity"
	"commerce-chatbot-be/pkg/catalog"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Prompter supplies the user's side of the dialogue. Ask blocks until
// the next utterance; an error from Ask (exit sentinel, idle timeout,
// closed input) aborts the run and is returned to the caller verbatim.
type Prompter interface {
	Ask(prompt string) (string, error)
	Say(message string)
}

// OrderPlacer persists a finished draft and returns the new order id.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, draft *dto.OrderDraft) (uint, error)
}

// Outcome is the terminal state of a dialogue run. Every run that does
// not error ends in exactly one of these.
type Outcome string

const (
	OutcomeCompleted Outcome = "completed"
	OutcomeCancelled Outcome = "cancelled"
)

// Result describes how a run ended. Message is the closing chat line
// for the caller to show and record; OrderId is set only on completion.
type Result struct {
	Outcome Outcome
	OrderId uint
	Message string
}

// Engine drives the order-placement dialogue: category, color, size and
// style selection, product resolution, quantity and price confirmation,
// customer details, submission. One Run per placement attempt; the
// engine itself holds no per-run state and is safe to share.
type Engine struct {
	store    catalog.Store
	matcher  *catalog.Matcher
	placer   OrderPlacer
	validate *validator.Validate
}

func NewEngine(store catalog.Store, matcher *catalog.Matcher, placer OrderPlacer, validate *validator.Validate) *Engine {
	return &Engine{
		store:    store,
		matcher:  matcher,
		placer:   placer,
		validate: validate,
	}
}

// Run executes one placement attempt against the given prompter. It
// returns a Result for every conversational ending and an error only
// for storage failures or an aborted prompter.
func (e *Engine) Run(ctx context.Context, prompter Prompter) (*Result, error) {
	category, result, err := e.selectCategory(ctx, prompter)
	if result != nil || err != nil {
		return result, err
	}

	draft := &dto.OrderDraft{Category: category}
	for _, attribute := range []string{catalog.AttributeColor, catalog.AttributeSize, catalog.AttributeStyle} {
		value, result, err := e.selectAttribute(ctx, prompter, category, attribute)
		if result != nil || err != nil {
			return result, err
		}
		switch attribute {
		case catalog.AttributeColor:
			draft.Color = value
		case catalog.AttributeSize:
			draft.Size = value
		case catalog.AttributeStyle:
			draft.Style = value
		}
	}

	product, result, err := e.resolveProduct(ctx, prompter, draft)
	if result != nil || err != nil {
		return result, err
	}

	quantity, err := e.askQuantity(prompter, product)
	if err != nil {
		return nil, err
	}
	draft.Quantity = quantity
	draft.TotalPrice = product.Price.Mul(decimal.NewFromInt(int64(quantity)))

	accepted, err := e.confirmPrice(prompter, product, draft)
	if err != nil {
		return nil, err
	}
	if !accepted {
		return &Result{Outcome: OutcomeCancelled, Message: "Order cancelled."}, nil
	}

	if err := e.collectCustomer(prompter, draft); err != nil {
		return nil, err
	}

	return e.submit(ctx, draft)
}

func (e *Engine) selectCategory(ctx context.Context, prompter Prompter) (string, *Result, error) {
	categories, err := e.store.ListCategories(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("list categories: %w", err)
	}
	if len(categories) == 0 {
		return "", &Result{Outcome: OutcomeCancelled, Message: "No product categories available."}, nil
	}

	joined := strings.Join(categories, ", ")
	input, err := prompter.Ask(fmt.Sprintf("Please specify the product category from the following options: %s: ", joined))
	if err != nil {
		return "", nil, err
	}
	for {
		for _, c := range categories {
			if strings.EqualFold(c, strings.TrimSpace(input)) {
				return c, nil, nil
			}
		}
		input, err = prompter.Ask(fmt.Sprintf("Invalid category. Please choose from: %s: ", joined))
		if err != nil {
			return "", nil, err
		}
	}
}

// selectAttribute queries the option set for one attribute and walks the
// user to a choice. A single option needs an affirmative to accept or a
// negative to cancel; multiple options need an exact (case-insensitive)
// pick. Anything else re-prompts.
func (e *Engine) selectAttribute(ctx context.Context, prompter Prompter, category, attribute string) (string, *Result, error) {
	options, err := e.store.ListAttributeValues(ctx, category, attribute)
	if err != nil {
		return "", nil, fmt.Errorf("list %s options: %w", attribute, err)
	}
	if len(options) == 0 {
		return "", &Result{
			Outcome: OutcomeCancelled,
			Message: fmt.Sprintf("Sorry, no %ss available for this category.", attribute),
		}, nil
	}

	if len(options) == 1 {
		single := options[0]
		for {
			input, err := prompter.Ask(fmt.Sprintf("What %s would you like? Only option is '%s' (type 'ok' to confirm or 'no' to cancel order): ", attribute, single))
			if err != nil {
				return "", nil, err
			}
			switch {
			case isAffirmative(input):
				return single, nil, nil
			case isNegative(input):
				prompter.Say("You chose 'no'. Cancelling the order process.")
				return "", &Result{Outcome: OutcomeCancelled, Message: "Order cancelled."}, nil
			default:
				prompter.Say("Invalid input. Please type 'ok' or 'no'.")
			}
		}
	}

	joined := strings.Join(options, ", ")
	for {
		input, err := prompter.Ask(fmt.Sprintf("What %s would you like? Available options: %s: ", attribute, joined))
		if err != nil {
			return "", nil, err
		}
		for _, opt := range options {
			if strings.EqualFold(opt, strings.TrimSpace(input)) {
				return opt, nil, nil
			}
		}
		prompter.Say(fmt.Sprintf("Invalid %s. Please choose from: %s.", attribute, joined))
	}
}

// resolveProduct matches the collected attributes to a product. A miss
// lists category alternatives and cancels; there is no retry of the
// attribute selection.
func (e *Engine) resolveProduct(ctx context.Context, prompter Prompter, draft *dto.OrderDraft) (*entity.Product, *Result, error) {
	product, err := e.matcher.ResolveByAttributes(ctx, draft.Category, draft.Color, draft.Size, draft.Style)
	if err != nil {
		if !errors.Is(err, catalog.ErrProductNotFound) && !errors.Is(err, catalog.ErrProductSoldOut) {
			return nil, nil, err
		}
		alternatives, altErr := e.store.ListProductsByCategory(ctx, draft.Category)
		if altErr != nil {
			return nil, nil, fmt.Errorf("list alternatives: %w", altErr)
		}
		if len(alternatives) == 0 {
			return nil, &Result{
				Outcome: OutcomeCancelled,
				Message: fmt.Sprintf("Sorry, we do not have a product matching that configuration in '%s', and no alternatives are available.", draft.Category),
			}, nil
		}
		return nil, &Result{
			Outcome: OutcomeCancelled,
			Message: fmt.Sprintf("Sorry, we do not have a product matching that configuration in '%s'.\nAvailable alternatives in this category:\n%s",
				draft.Category, catalog.FormatProducts(alternatives)),
		}, nil
	}

	draft.ProductId = product.Id
	draft.ProductName = product.Name
	draft.Color = product.Color
	draft.Material = product.Material
	draft.Style = product.Style
	draft.Size = product.Size
	draft.Price = product.Price

	prompter.Say(fmt.Sprintf("We have '%s' available in %s, material: %s, style: %s, size: %s, priced at $%s.",
		product.Name, product.Color, product.Material, product.Style, product.Size, product.Price.StringFixed(2)))
	prompter.Say(fmt.Sprintf("Available stock: %d unit(s).", product.Quantity))
	return product, nil, nil
}

// askQuantity loops until a positive integer within stock is entered.
// Bad numbers and over-stock requests only re-prompt, never cancel.
func (e *Engine) askQuantity(prompter Prompter, product *entity.Product) (int, error) {
	for {
		input, err := prompter.Ask("How many would you like to order? (enter a number): ")
		if err != nil {
			return 0, err
		}
		quantity, convErr := strconv.Atoi(strings.TrimSpace(input))
		if convErr != nil || quantity < 1 {
			prompter.Say("Please enter a valid number.")
			continue
		}
		if quantity > product.Quantity {
			prompter.Say(fmt.Sprintf("Sorry, only %d unit(s) are available. Please choose a quantity up to %d.", product.Quantity, product.Quantity))
			continue
		}
		return quantity, nil
	}
}

// confirmPrice asks once. Unlike attribute prompts, ANY non-affirmative
// answer cancels here; there is no re-prompt.
func (e *Engine) confirmPrice(prompter Prompter, product *entity.Product, draft *dto.OrderDraft) (bool, error) {
	input, err := prompter.Ask(fmt.Sprintf("The total price for %d unit(s) of '%s' is $%s. Do you accept this price? (yes/no): ",
		draft.Quantity, product.Name, draft.TotalPrice.StringFixed(2)))
	if err != nil {
		return false, err
	}
	return isAffirmative(input), nil
}

func (e *Engine) collectCustomer(prompter Prompter, draft *dto.OrderDraft) error {
	name, err := prompter.Ask("Please enter your full name: ")
	if err != nil {
		return err
	}
	draft.CustomerName = strings.TrimSpace(name)

	address, err := prompter.Ask("Please enter your address (street, city, state, zip): ")
	if err != nil {
		return err
	}
	draft.ShippingAddress = strings.TrimSpace(address)

	for {
		email, err := prompter.Ask("Please enter your email address (for order confirmation and tracking): ")
		if err != nil {
			return err
		}
		email = strings.TrimSpace(email)
		if e.validate.Var(email, "required,looseemail") == nil {
			draft.Email = email
			break
		}
		prompter.Say("Please enter a valid E-mail address.")
	}

	for {
		phone, err := prompter.Ask("Please enter your phone number (e.g., +201111111111): ")
		if err != nil {
			return err
		}
		phone = strings.TrimSpace(phone)
		if e.validate.Var(phone, "required,intlphone") == nil {
			draft.Phone = phone
			break
		}
		prompter.Say("Please enter a valid phone number in the format: +201111111111 (13 characters, including '+').")
	}

	payment, err := prompter.Ask("Please enter your payment information (enter card details or type 'cash' for cash on delivery): ")
	if err != nil {
		return err
	}
	draft.PaymentInfo = strings.TrimSpace(payment)
	return nil
}

func (e *Engine) submit(ctx context.Context, draft *dto.OrderDraft) (*Result, error) {
	if err := e.validate.Struct(draft); err != nil {
		// Collection loops should make this unreachable; treat it as a
		// failed placement rather than a panic.
		return &Result{Outcome: OutcomeCancelled, Message: "There was an error placing your order."}, nil
	}
	orderId, err := e.placer.PlaceOrder(ctx, draft)
	if err != nil {
		return &Result{Outcome: OutcomeCancelled, Message: "There was an error placing your order."}, nil
	}
	return &Result{
		Outcome: OutcomeCompleted,
		OrderId: orderId,
		Message: fmt.Sprintf("Order placed successfully with order ID: %d", orderId),
	}, nil
}
