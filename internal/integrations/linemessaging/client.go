package linemessaging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultPushURL = "https://api.line.me/v2/bot/message/push"

// Logger is the logging subset the client needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client delivers push messages through the LINE Messaging API
type Client struct {
	pushURL     string
	accessToken string
	httpClient  *http.Client
	log         Logger
}

// NewClient creates a push client. An empty accessToken is allowed so the
// service can start without LINE configured; SendText then fails with
// ErrMissingCredential and the outbox keeps the message for manual relay.
func NewClient(accessToken string, timeout time.Duration, log Logger) *Client {
	return &Client{
		pushURL:     defaultPushURL,
		accessToken: accessToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

type pushMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type pushRequest struct {
	To       string        `json:"to"`
	Messages []pushMessage `json:"messages"`
}

// SendText pushes one text message to a LINE user. Exactly one API call is
// made per invocation; retries are the caller's decision.
func (c *Client) SendText(ctx context.Context, recipientID, text string) error {
	if c.accessToken == "" {
		return ErrMissingCredential
	}
	if recipientID == "" {
		return ErrMissingRecipient
	}

	payload, err := json.Marshal(pushRequest{
		To:       recipientID,
		Messages: []pushMessage{{Type: "text", Text: text}},
	})
	if err != nil {
		return fmt.Errorf("%w: marshal request: %v", ErrPushFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.pushURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: create request: %v", ErrPushFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: execute request: %v", ErrPushFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: status %d: %s", ErrPushFailed, resp.StatusCode, string(body))
	}

	c.log.Info("linemessaging: push delivered to %s", recipientID)
	return nil
}
