package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	stripe "github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/webhook"
	"go.uber.org/zap"
)

// checkoutCompleted is the only event type that triggers delivery.
const checkoutCompleted = "checkout.session.completed"

// maxPayloadBytes bounds the webhook request body.
const maxPayloadBytes = 1 << 16

// Deliverer hands purchased files to a buyer. Implemented by the delivery
// package; tests substitute their own.
type Deliverer interface {
	Deliver(ctx context.Context, email, name string, metadata map[string]string) error
}

// WebhookHandler verifies signed Stripe events and triggers delivery on
// completed checkouts.
type WebhookHandler struct {
	secret    string
	deliverer Deliverer
	log       *zap.Logger
}

// NewWebhookHandler creates the handler with the endpoint's signing secret.
func NewWebhookHandler(secret string, deliverer Deliverer, log *zap.Logger) *WebhookHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &WebhookHandler{secret: secret, deliverer: deliverer, log: log}
}

func (h *WebhookHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}

	event, err := webhook.ConstructEvent(payload, r.Header.Get("Stripe-Signature"), h.secret)
	if err != nil {
		h.log.Warn("webhook signature rejected", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid signature"})
		return
	}

	if string(event.Type) == checkoutCompleted {
		h.handleCheckout(r.Context(), event)
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleCheckout extracts the buyer from the session and triggers delivery.
// Delivery failures are logged, not surfaced to Stripe: the event was valid
// and retrying it would not fix a local SMTP problem.
func (h *WebhookHandler) handleCheckout(ctx context.Context, event stripe.Event) {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		h.log.Error("failed to decode checkout session", zap.Error(err))
		return
	}

	email, name := "", "Customer"
	if session.CustomerDetails != nil {
		email = session.CustomerDetails.Email
		if session.CustomerDetails.Name != "" {
			name = session.CustomerDetails.Name
		}
	}

	h.log.Info("payment received",
		zap.String("email", email),
		zap.String("type", session.Metadata["type"]))
	fmt.Printf("💰 Payment received from %s\n", email)

	if h.deliverer == nil {
		return
	}
	if err := h.deliverer.Deliver(ctx, email, name, session.Metadata); err != nil {
		h.log.Error("delivery failed", zap.String("email", email), zap.Error(err))
	}
}

// NewServer builds the one-route webhook server.
func NewServer(addr string, handler *WebhookHandler) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/webhook", handler)
	return &http.Server{Addr: addr, Handler: mux}
}

func writeJSON(w http.ResponseWriter, status int, body map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
