package payments

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	stripe "github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/webhook"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const testSecret = "whsec_test_secret"

// fakeDeliverer records the delivery it was asked to make.
type fakeDeliverer struct {
	calls    int
	email    string
	name     string
	metadata map[string]string
	fail     bool
}

func (f *fakeDeliverer) Deliver(_ context.Context, email, name string, metadata map[string]string) error {
	f.calls++
	f.email = email
	f.name = name
	f.metadata = metadata
	if f.fail {
		return errors.New("smtp down")
	}
	return nil
}

func checkoutPayload(t *testing.T) []byte {
	t.Helper()
	return []byte(fmt.Sprintf(`{
		"id": "evt_test_1",
		"object": "event",
		"api_version": %q,
		"type": "checkout.session.completed",
		"data": {
			"object": {
				"object": "checkout.session",
				"customer_details": {"email": "joe@example.com", "name": "Joe Smith"},
				"metadata": {"type": "business_card_redesign", "prospect_name": "Joe Smith Plumbing"}
			}
		}
	}`, stripe.APIVersion))
}

// signedRequest builds a webhook POST carrying a valid Stripe-Signature
// header for the payload.
func signedRequest(t *testing.T, payload []byte) *http.Request {
	t.Helper()
	now := time.Now()
	sig := webhook.ComputeSignature(now, payload, testSecret)
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(string(payload)))
	req.Header.Set("Stripe-Signature", fmt.Sprintf("t=%d,v1=%s", now.Unix(), hex.EncodeToString(sig)))
	return req
}

func TestWebhookCheckoutCompletedTriggersDelivery(t *testing.T) {
	deliverer := &fakeDeliverer{}
	h := NewWebhookHandler(testSecret, deliverer, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, signedRequest(t, checkoutPayload(t)))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, deliverer.calls)
	assert.Equal(t, "joe@example.com", deliverer.email)
	assert.Equal(t, "Joe Smith", deliverer.name)
	assert.Equal(t, "Joe Smith Plumbing", deliverer.metadata["prospect_name"])
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	deliverer := &fakeDeliverer{}
	h := NewWebhookHandler(testSecret, deliverer, nil)

	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(string(checkoutPayload(t))))
	req.Header.Set("Stripe-Signature", "t=1,v1=deadbeef")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, deliverer.calls)
}

func TestWebhookIgnoresOtherEventTypes(t *testing.T) {
	deliverer := &fakeDeliverer{}
	h := NewWebhookHandler(testSecret, deliverer, nil)

	payload := []byte(fmt.Sprintf(`{"id":"evt_test_2","object":"event","api_version":%q,"type":"invoice.paid","data":{"object":{}}}`, stripe.APIVersion))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, signedRequest(t, payload))

	// Unhandled events are acknowledged so Stripe stops retrying them.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, deliverer.calls)
}

func TestWebhookRejectsNonPOST(t *testing.T) {
	h := NewWebhookHandler(testSecret, &fakeDeliverer{}, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/webhook", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestWebhookDeliveryFailureStillAcknowledges(t *testing.T) {
	deliverer := &fakeDeliverer{fail: true}
	h := NewWebhookHandler(testSecret, deliverer, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, signedRequest(t, checkoutPayload(t)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, deliverer.calls)
}

func TestWebhookMissingCustomerDetails(t *testing.T) {
	deliverer := &fakeDeliverer{}
	h := NewWebhookHandler(testSecret, deliverer, nil)

	payload := []byte(fmt.Sprintf(`{"id":"evt_test_3","object":"event","api_version":%q,"type":"checkout.session.completed","data":{"object":{"object":"checkout.session"}}}`, stripe.APIVersion))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, signedRequest(t, payload))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, deliverer.calls)
	assert.Empty(t, deliverer.email)
	assert.Equal(t, "Customer", deliverer.name)
}

func TestNewServerRoutesWebhook(t *testing.T) {
	srv := NewServer(":0", NewWebhookHandler(testSecret, nil, nil))

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/other", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
