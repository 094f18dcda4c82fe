package line_webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"time"
)

const dedupTTL = time.Hour

type Handler struct {
	channelSecret string
	deduper       Deduper
	logger        Logger
}

func NewHandler(channelSecret string, deduper Deduper, logger Logger) *Handler {
	return &Handler{
		channelSecret: channelSecret,
		deduper:       deduper,
		logger:        logger,
	}
}

// Handle POST /api/v1/line/webhook
//
// LINE signs the raw body with the channel secret; a mismatch is rejected
// with 401. Anything past the signature check answers 200: LINE retries on
// non-2xx, and a retry storm over a handler bug helps nobody.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		h.logger.Error("POST /line/webhook - read body: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if h.channelSecret == "" {
		h.logger.Warn("POST /line/webhook - channel secret not configured, events dropped")
		w.WriteHeader(http.StatusOK)
		return
	}

	if !h.validSignature(body, r.Header.Get("X-Line-Signature")) {
		h.logger.Warn("POST /line/webhook - signature mismatch")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var payload webhookBody
	if err := json.Unmarshal(body, &payload); err != nil {
		h.logger.Warn("POST /line/webhook - malformed body: %v", err)
		w.WriteHeader(http.StatusOK)
		return
	}

	for _, ev := range payload.Events {
		h.processEvent(r, ev)
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) validSignature(body []byte, signature string) bool {
	mac := hmac.New(sha256.New, []byte(h.channelSecret))
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (h *Handler) processEvent(r *http.Request, ev webhookEvent) {
	if ev.WebhookEventID != "" {
		first, err := h.deduper.MarkOnce(r.Context(), "line:webhook:"+ev.WebhookEventID, dedupTTL)
		if err != nil {
			// dedup is best effort; a redelivered follow event is harmless
			h.logger.Warn("POST /line/webhook - dedup check for %s: %v", ev.WebhookEventID, err)
		} else if !first {
			h.logger.Info("POST /line/webhook - duplicate event %s skipped", ev.WebhookEventID)
			return
		}
	}

	switch ev.Type {
	case "follow":
		h.logger.Info("POST /line/webhook - user %s followed the account", ev.Source.UserID)
	case "unfollow":
		h.logger.Info("POST /line/webhook - user %s unfollowed the account", ev.Source.UserID)
	case "message":
		h.logger.Info("POST /line/webhook - %s message from %s", ev.Message.Type, ev.Source.UserID)
	default:
		h.logger.Info("POST /line/webhook - %s event", ev.Type)
	}
}
