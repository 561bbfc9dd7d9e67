package services

import (
	"context"
	"time"

	"studio-service/database"
	"studio-service/models"

	"go.uber.org/zap"
)

// CartService owns the per-session cart: line-item mutations and the derived
// totals. Totals are never stored, always recomputed from the lines.
type CartService struct {
	store  database.SessionStore
	logger *zap.Logger
}

func NewCartService(store database.SessionStore, logger *zap.Logger) *CartService {
	return &CartService{store: store, logger: logger}
}

// Get returns the cart with its derived totals.
func (s *CartService) Get(ctx context.Context, sessionID string) (models.CartSummary, *ServiceError) {
	var summary models.CartSummary
	serr := mutateSession(ctx, s.store, sessionID, func(session *models.Session) *ServiceError {
		summary = session.Cart.Summarize()
		return nil
	})
	if serr != nil {
		return models.CartSummary{}, serr
	}
	return summary, nil
}

// AddItem adds a line, merging quantities when the id already exists.
func (s *CartService) AddItem(ctx context.Context, sessionID string, item models.CartItem) (models.CartSummary, *ServiceError) {
	if item.ID == "" {
		return models.CartSummary{}, &ServiceError{StatusCode: 400, Message: "Item id is required"}
	}
	if item.Price < 0 {
		return models.CartSummary{}, &ServiceError{StatusCode: 400, Message: "Item price cannot be negative"}
	}
	if item.Quantity <= 0 {
		return models.CartSummary{}, &ServiceError{StatusCode: 400, Message: "Item quantity must be positive"}
	}

	var summary models.CartSummary
	serr := mutateSession(ctx, s.store, sessionID, func(session *models.Session) *ServiceError {
		found := false
		for i, existing := range session.Cart.Items {
			if existing.ID == item.ID {
				session.Cart.Items[i].Quantity += item.Quantity
				found = true
				break
			}
		}
		if !found {
			session.Cart.Items = append(session.Cart.Items, item)
		}
		session.Cart.UpdatedAt = time.Now()
		summary = session.Cart.Summarize()
		return nil
	})
	if serr != nil {
		if serr.StatusCode == 500 {
			s.logger.Error("Failed to save cart", zap.String("session_id", sessionID))
		}
		return models.CartSummary{}, serr
	}
	return summary, nil
}

// UpdateQuantity replaces a line's quantity. Quantities clamp at zero and a
// zero-quantity line is dropped from the cart. An unknown id is a silent
// no-op, matching the storefront's behavior.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) (models.CartSummary, *ServiceError) {
	if quantity < 0 {
		quantity = 0
	}

	var summary models.CartSummary
	serr := mutateSession(ctx, s.store, sessionID, func(session *models.Session) *ServiceError {
		items := session.Cart.Items[:0]
		for _, item := range session.Cart.Items {
			if item.ID == itemID {
				if quantity == 0 {
					continue
				}
				item.Quantity = quantity
			}
			items = append(items, item)
		}
		session.Cart.Items = items
		session.Cart.UpdatedAt = time.Now()
		summary = session.Cart.Summarize()
		return nil
	})
	if serr != nil {
		if serr.StatusCode == 500 {
			s.logger.Error("Failed to save cart", zap.String("session_id", sessionID))
		}
		return models.CartSummary{}, serr
	}
	return summary, nil
}

// RemoveItem unconditionally drops a line.
func (s *CartService) RemoveItem(ctx context.Context, sessionID, itemID string) (models.CartSummary, *ServiceError) {
	return s.UpdateQuantity(ctx, sessionID, itemID, 0)
}

// Clear empties the cart but keeps the session.
func (s *CartService) Clear(ctx context.Context, sessionID string) (models.CartSummary, *ServiceError) {
	var summary models.CartSummary
	serr := mutateSession(ctx, s.store, sessionID, func(session *models.Session) *ServiceError {
		session.Cart.Items = []models.CartItem{}
		session.Cart.UpdatedAt = time.Now()
		summary = session.Cart.Summarize()
		return nil
	})
	if serr != nil {
		if serr.StatusCode == 500 {
			s.logger.Error("Failed to clear cart", zap.String("session_id", sessionID))
		}
		return models.CartSummary{}, serr
	}
	return summary, nil
}
