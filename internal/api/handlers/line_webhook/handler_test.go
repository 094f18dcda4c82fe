package line_webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeDeduper struct {
	seen map[string]bool
}

func newFakeDeduper() *fakeDeduper {
	return &fakeDeduper{seen: make(map[string]bool)}
}

func (f *fakeDeduper) MarkOnce(_ context.Context, key string, _ time.Duration) (bool, error) {
	if f.seen[key] {
		return false, nil
	}
	f.seen[key] = true
	return true, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func post(h *Handler, body []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/line/webhook", bytes.NewReader(body))
	if signature != "" {
		req.Header.Set("X-Line-Signature", signature)
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_ValidSignatureAccepted(t *testing.T) {
	h := NewHandler("secret", newFakeDeduper(), noopLogger{})
	body := []byte(`{"destination":"U-bot","events":[{"type":"follow","webhookEventId":"ev-1","source":{"type":"user","userId":"U-alice"}}]}`)

	rec := post(h, body, sign("secret", body))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandle_BadSignatureRejected(t *testing.T) {
	h := NewHandler("secret", newFakeDeduper(), noopLogger{})
	body := []byte(`{"events":[]}`)

	rec := post(h, body, sign("wrong-secret", body))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = post(h, body, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_TamperedBodyRejected(t *testing.T) {
	h := NewHandler("secret", newFakeDeduper(), noopLogger{})
	body := []byte(`{"events":[]}`)
	signature := sign("secret", body)

	rec := post(h, []byte(`{"events":[{"type":"follow"}]}`), signature)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_UnsetSecretAcksWithoutProcessing(t *testing.T) {
	deduper := newFakeDeduper()
	h := NewHandler("", deduper, noopLogger{})
	body := []byte(`{"events":[{"type":"follow","webhookEventId":"ev-1"}]}`)

	rec := post(h, body, "anything")
	assert.Equal(t, http.StatusOK, rec.Code, "unset secret must not bounce LINE into retrying")
	assert.Empty(t, deduper.seen, "events are dropped, not processed")
}

func TestHandle_DuplicateEventProcessedOnce(t *testing.T) {
	deduper := newFakeDeduper()
	h := NewHandler("secret", deduper, noopLogger{})
	body := []byte(`{"events":[{"type":"follow","webhookEventId":"ev-42","source":{"type":"user","userId":"U-alice"}}]}`)
	signature := sign("secret", body)

	assert.Equal(t, http.StatusOK, post(h, body, signature).Code)
	assert.Equal(t, http.StatusOK, post(h, body, signature).Code, "redelivery still answers 200")
	assert.Len(t, deduper.seen, 1)
}

func TestHandle_MalformedBodyStillAcks(t *testing.T) {
	h := NewHandler("secret", newFakeDeduper(), noopLogger{})
	body := []byte(`not json`)

	rec := post(h, body, sign("secret", body))
	assert.Equal(t, http.StatusOK, rec.Code)
}
