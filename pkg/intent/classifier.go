package intent

import (
	"regexp"
	"strings"

	"commerce-chatbot-be/pkg/utils"
)

// Intent is the resolved user intention for a single utterance.
type Intent string

const (
	IntentCancelOrder    Intent = "cancel_order"
	IntentOrderStatus    Intent = "order_status"
	IntentInquireProduct Intent = "inquire_product"
	IntentListProducts   Intent = "list_products"
	IntentGeneral        Intent = "general"
	IntentAddToCart      Intent = "add_to_cart"
	IntentPlaceOrder     Intent = "place_order"
	IntentSearchProduct  Intent = "search_product"
)

// orderSimilarityThreshold accepts near-misses of the bare word "order"
// ("ordr", "orderr") as a placement request.
const orderSimilarityThreshold = 0.8

var (
	orderVerbs    = regexp.MustCompile(`(?i)\border\b|\bbuy\b|\bpurchase\b`)
	searchVerbs   = regexp.MustCompile(`(?i)\bfind\b|\bavailable\b|\bsearch\b`)
	interrogative = regexp.MustCompile(`(?i)^(how|what|where|when|why|which)\b`)
)

// rule pairs a predicate with the intent it yields. Rules are evaluated
// top to bottom and the first match wins; the ordering below is the
// single source of truth for precedence between overlapping rules.
type rule struct {
	name    string
	matches func(raw, lower string) bool
	intent  Intent
}

type Classifier struct {
	rules []rule
}

func NewClassifier() *Classifier {
	return &Classifier{
		rules: []rule{
			{
				name: "suggest_or_order_similarity",
				matches: func(raw, lower string) bool {
					if strings.Contains(lower, "suggest") {
						return true
					}
					return utils.Ratio(utils.Normalize(raw), "order") >= orderSimilarityThreshold
				},
				intent: IntentPlaceOrder,
			},
			{
				name: "cancel_phrases",
				matches: func(raw, lower string) bool {
					return strings.Contains(lower, "cancel order") || strings.Contains(lower, "cancel my order")
				},
				intent: IntentCancelOrder,
			},
			{
				name: "status_phrases",
				matches: func(raw, lower string) bool {
					return strings.Contains(lower, "order status") ||
						strings.Contains(lower, "track my order") ||
						strings.Contains(lower, "status of my order") ||
						strings.Contains(lower, "status of an order")
				},
				intent: IntentOrderStatus,
			},
			{
				name: "inquiry_phrases",
				matches: func(raw, lower string) bool {
					if strings.Contains(lower, "do you have") {
						return true
					}
					return strings.Contains(lower, "i want") && !orderVerbs.MatchString(raw)
				},
				intent: IntentInquireProduct,
			},
			{
				name: "list_products_phrases",
				matches: func(raw, lower string) bool {
					if strings.Contains(lower, "show me your products") || strings.Contains(lower, "list your products") {
						return true
					}
					return strings.Contains(lower, "products") &&
						(strings.Contains(lower, "show") || strings.Contains(lower, "list"))
				},
				intent: IntentListProducts,
			},
			{
				name: "interrogative_prefix",
				matches: func(raw, lower string) bool {
					return interrogative.MatchString(strings.TrimSpace(raw))
				},
				intent: IntentGeneral,
			},
			{
				name: "add_to_cart_phrase",
				matches: func(raw, lower string) bool {
					return strings.Contains(lower, "add it to the cart")
				},
				intent: IntentAddToCart,
			},
			{
				name: "order_verbs",
				matches: func(raw, lower string) bool {
					return orderVerbs.MatchString(raw)
				},
				intent: IntentPlaceOrder,
			},
			{
				name: "search_verbs",
				matches: func(raw, lower string) bool {
					return searchVerbs.MatchString(raw)
				},
				intent: IntentSearchProduct,
			},
		},
	}
}

// Classify maps an utterance to an intent. Pure function of the input;
// utterances matching no rule fall through to IntentGeneral.
func (c *Classifier) Classify(utterance string) Intent {
	intent, _ := c.ClassifyWithRule(utterance)
	return intent
}

// ClassifyWithRule also reports the name of the rule that fired, which
// the chat service logs for every turn.
func (c *Classifier) ClassifyWithRule(utterance string) (Intent, string) {
	lower := strings.ToLower(utterance)
	for _, r := range c.rules {
		if r.matches(utterance, lower) {
			return r.intent, r.name
		}
	}
	return IntentGeneral, "fallback"
}
