package constant

const (
	ChatMessageRoleUser  = "user"
	ChatMessageRoleModel = "model"

	// Fixed degradation replies for the text-completion collaborator.
	// These are user-facing and must never change per-error.
	ChatMessageCompletionUnavailable   = "I'm sorry, I couldn't generate a response."
	ChatMessageCompletionNotConfigured = "I'm sorry, the text generation service is not configured."

	ChatMessageWelcome = "Welcome to the automated e-commerce chatbot! Type 'exit' at any prompt to quit; either you should choose from the choices."

	ChatMessageAddToCart = "We currently support placing orders directly, not a cart-based flow. Please use 'order' or 'buy'."

	ChatMessageOrderNotFound       = "Order not found."
	ChatMessageOrderCancelError    = "There was an error cancelling your order."
	ChatMessageOrderCancelled      = "Your order has been cancelled successfully."
	ChatMessageOrderOnDelivery     = "Order is on delivery and cannot be cancelled"
	ChatMessageInvalidOrderId      = "Please enter a valid order ID."
	ChatMessageNoProductsAvailable = "No products available."
	ChatMessageStorageFailure      = "Sorry, something went wrong on our side. Please try again later."
)
