package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"commerce-chatbot-be/internal/constant"
	"commerce-chatbot-be/internal/pkg/logger"
	"commerce-chatbot-be/internal/repository/contract"
	"commerce-chatbot-be/pkg/catalog"
	"commerce-chatbot-be/pkg/chatbot"
	"commerce-chatbot-be/pkg/dialogue"
	"commerce-chatbot-be/pkg/intent"
	"commerce-chatbot-be/pkg/store"
)

type IChatService interface {
	// HandleTurn processes one user utterance and returns the chatbot
	// reply. The prompter is used for follow-up questions within the
	// turn (order ids, the whole placement dialogue). Errors from the
	// prompter (exit, idle timeout) propagate to the caller.
	HandleTurn(ctx context.Context, sessionId, utterance string, prompter dialogue.Prompter) (string, error)
}

type chatService struct {
	classifier   *intent.Classifier
	catalogStore catalog.Store
	resolver     *catalog.Resolver
	inferrer     *catalog.Inferrer
	engine       *dialogue.Engine
	orderService IOrderService
	sessionRepo  contract.SessionRepository
	geminiApiKey string
	log          logger.ILogger
}

func NewChatService(
	classifier *intent.Classifier,
	catalogStore catalog.Store,
	resolver *catalog.Resolver,
	inferrer *catalog.Inferrer,
	engine *dialogue.Engine,
	orderService IOrderService,
	sessionRepo contract.SessionRepository,
	geminiApiKey string,
	log logger.ILogger,
) IChatService {
	return &chatService{
		classifier:   classifier,
		catalogStore: catalogStore,
		resolver:     resolver,
		inferrer:     inferrer,
		engine:       engine,
		orderService: orderService,
		sessionRepo:  sessionRepo,
		geminiApiKey: geminiApiKey,
		log:          log,
	}
}

func (s *chatService) HandleTurn(ctx context.Context, sessionId, utterance string, prompter dialogue.Prompter) (string, error) {
	session, ok := s.sessionRepo.Get(sessionId)
	if !ok {
		session = &store.Session{ID: sessionId, CreatedAt: time.Now()}
	}
	session.Append(store.RoleUser, utterance)
	session.LastQuery = utterance

	reply, err := s.dispatch(ctx, session, utterance, prompter)
	if err != nil {
		// Keep the transcript so an aborted turn is still visible to
		// the next one.
		s.sessionRepo.Save(session)
		return "", err
	}

	session.Append(store.RoleAssistant, reply)
	s.sessionRepo.Save(session)
	return reply, nil
}

func (s *chatService) dispatch(ctx context.Context, session *store.Session, utterance string, prompter dialogue.Prompter) (string, error) {
	resolved, ruleName := s.classifier.ClassifyWithRule(utterance)
	s.log.Debug("chat", "intent classified", map[string]interface{}{
		"session_id": session.ID,
		"intent":     string(resolved),
		"rule":       ruleName,
	})

	switch resolved {
	case intent.IntentOrderStatus:
		return s.handleOrderStatus(ctx, prompter)
	case intent.IntentCancelOrder:
		return s.handleCancelOrder(ctx, prompter)
	case intent.IntentListProducts:
		return s.handleListProducts(ctx)
	case intent.IntentInquireProduct:
		return s.handleInquireProduct(ctx, utterance)
	case intent.IntentSearchProduct:
		return s.handleSearchProduct(ctx, utterance)
	case intent.IntentAddToCart:
		return constant.ChatMessageAddToCart, nil
	case intent.IntentPlaceOrder:
		return s.handlePlaceOrder(ctx, prompter)
	default:
		return s.handleGeneral(ctx, session), nil
	}
}

func (s *chatService) handleOrderStatus(ctx context.Context, prompter dialogue.Prompter) (string, error) {
	input, err := prompter.Ask("Please enter your order ID to check its status: ")
	if err != nil {
		return "", err
	}
	orderId, convErr := strconv.Atoi(strings.TrimSpace(input))
	if convErr != nil || orderId < 1 {
		return constant.ChatMessageInvalidOrderId, nil
	}

	status, err := s.orderService.Status(ctx, uint(orderId))
	switch {
	case errors.Is(err, ErrOrderNotFound):
		return constant.ChatMessageOrderNotFound, nil
	case err != nil:
		s.log.Error("chat", "order status lookup failed", map[string]interface{}{
			"order_id": orderId,
			"error":    err.Error(),
		})
		return constant.ChatMessageStorageFailure, nil
	}
	return fmt.Sprintf("Your order status is: %s", status), nil
}

func (s *chatService) handleCancelOrder(ctx context.Context, prompter dialogue.Prompter) (string, error) {
	input, err := prompter.Ask("Please enter your order ID to cancel: ")
	if err != nil {
		return "", err
	}
	orderId, convErr := strconv.Atoi(strings.TrimSpace(input))
	if convErr != nil || orderId < 1 {
		return constant.ChatMessageInvalidOrderId, nil
	}

	err = s.orderService.Cancel(ctx, uint(orderId))
	switch {
	case errors.Is(err, ErrOrderNotFound):
		return constant.ChatMessageOrderNotFound, nil
	case errors.Is(err, ErrOrderNotCancellable):
		return constant.ChatMessageOrderOnDelivery, nil
	case err != nil:
		s.log.Error("chat", "order cancellation failed", map[string]interface{}{
			"order_id": orderId,
			"error":    err.Error(),
		})
		return constant.ChatMessageOrderCancelError, nil
	}
	return constant.ChatMessageOrderCancelled, nil
}

func (s *chatService) handleListProducts(ctx context.Context) (string, error) {
	products, err := s.catalogStore.ListAllProducts(ctx)
	if err != nil {
		s.log.Error("chat", "product listing failed", map[string]interface{}{"error": err.Error()})
		return constant.ChatMessageStorageFailure, nil
	}
	if len(products) == 0 {
		return constant.ChatMessageNoProductsAvailable, nil
	}
	return fmt.Sprintf("Here are our products:\n%s", catalog.FormatProducts(products)), nil
}

func (s *chatService) handleInquireProduct(ctx context.Context, utterance string) (string, error) {
	query := intent.ExtractInquiryQuery(utterance)
	product, err := s.resolver.ResolveByName(ctx, query)
	if err == nil {
		return fmt.Sprintf("Yes, we have %s available.", catalog.FormatProduct(product)), nil
	}
	if errors.Is(err, catalog.ErrProductSoldOut) {
		return fmt.Sprintf("Sorry, '%s' is sold out.", query), nil
	}
	if !errors.Is(err, catalog.ErrProductNotFound) {
		s.log.Error("chat", "inquiry lookup failed", map[string]interface{}{"query": query, "error": err.Error()})
		return constant.ChatMessageStorageFailure, nil
	}

	// Nothing matched the query directly; guess the closest category
	// and offer its products as alternatives.
	category, err := s.inferrer.InferCategory(ctx, query)
	if err != nil {
		s.log.Error("chat", "category inference failed", map[string]interface{}{"query": query, "error": err.Error()})
		return constant.ChatMessageStorageFailure, nil
	}
	if category != "" {
		alternatives, err := s.catalogStore.ListProductsByCategory(ctx, category)
		if err != nil {
			s.log.Error("chat", "alternatives listing failed", map[string]interface{}{"category": category, "error": err.Error()})
			return constant.ChatMessageStorageFailure, nil
		}
		if len(alternatives) == 0 {
			return fmt.Sprintf("Sorry, we do not have any '%s' available.", query), nil
		}
		return fmt.Sprintf("Sorry, we do not have '%s' available. However, here are alternatives in the '%s' category:\n%s",
			query, category, catalog.FormatProducts(alternatives)), nil
	}

	categories, err := s.catalogStore.ListCategories(ctx)
	if err != nil {
		s.log.Error("chat", "category listing failed", map[string]interface{}{"error": err.Error()})
		return constant.ChatMessageStorageFailure, nil
	}
	return fmt.Sprintf("Sorry, we do not have '%s' available. Our available categories are: %s.",
		query, strings.Join(categories, ", ")), nil
}

func (s *chatService) handleSearchProduct(ctx context.Context, utterance string) (string, error) {
	query := intent.ExtractSearchQuery(utterance)
	product, err := s.resolver.ResolveByName(ctx, query)
	switch {
	case err == nil:
		return fmt.Sprintf("Found product: %s", catalog.FormatProduct(product)), nil
	case errors.Is(err, catalog.ErrProductSoldOut):
		return fmt.Sprintf("Sorry, '%s' is sold out.", query), nil
	case errors.Is(err, catalog.ErrProductNotFound):
		return fmt.Sprintf("Sorry, we do not have '%s' in our inventory.", query), nil
	default:
		s.log.Error("chat", "product search failed", map[string]interface{}{"query": query, "error": err.Error()})
		return constant.ChatMessageStorageFailure, nil
	}
}

func (s *chatService) handlePlaceOrder(ctx context.Context, prompter dialogue.Prompter) (string, error) {
	result, err := s.engine.Run(ctx, prompter)
	if err != nil {
		return "", err
	}
	return result.Message, nil
}

// handleGeneral forwards the transcript to the text-completion
// collaborator. It degrades to a fixed apology on any failure and
// never returns an error.
func (s *chatService) handleGeneral(ctx context.Context, session *store.Session) string {
	if s.geminiApiKey == "" {
		return constant.ChatMessageCompletionNotConfigured
	}

	histories := make([]*chatbot.ChatHistory, 0, len(session.Transcript))
	for _, u := range session.Transcript {
		role := constant.ChatMessageRoleUser
		if u.Role == store.RoleAssistant {
			role = constant.ChatMessageRoleModel
		}
		histories = append(histories, &chatbot.ChatHistory{
			Chat: u.Text,
			Role: role,
		})
	}

	response, err := chatbot.GetGeminiResponse(ctx, s.geminiApiKey, histories)
	if err != nil {
		s.log.Warn("chat", "gemini completion failed", map[string]interface{}{
			"session_id": session.ID,
			"error":      err.Error(),
		})
		return constant.ChatMessageCompletionUnavailable
	}
	return response
}
