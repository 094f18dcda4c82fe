package lineauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultVerifyURL = "https://api.line.me/oauth2/v2.1/verify"

// Logger is the logging subset the client needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client verifies LIFF id tokens against the LINE platform. Every call is
// bounded by the configured timeout so a slow identity provider degrades
// the login path instead of hanging it.
type Client struct {
	verifyURL  string
	channelID  string
	httpClient *http.Client
	log        Logger
}

func NewClient(channelID string, timeout time.Duration, log Logger) *Client {
	return &Client{
		verifyURL: defaultVerifyURL,
		channelID: channelID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// VerifyIDToken checks the id token with LINE and returns the verified
// profile. ErrTokenInvalid means the token is bad; ErrVerifyUnavailable
// means LINE could not be reached in time.
func (c *Client) VerifyIDToken(ctx context.Context, idToken string) (*Profile, error) {
	if idToken == "" {
		return nil, fmt.Errorf("%w: empty id token", ErrTokenInvalid)
	}

	form := url.Values{}
	form.Set("id_token", idToken)
	form.Set("client_id", c.channelID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("lineauth: verify request failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrVerifyUnavailable, err)
	}
	defer resp.Body.Close()

	var body verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrInternal, err)
	}

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("lineauth: token rejected (status=%d, error=%s, desc=%s)",
			resp.StatusCode, body.Error, body.Desc)
		return nil, fmt.Errorf("%w: %s", ErrTokenInvalid, body.Desc)
	}

	if body.Sub == "" {
		return nil, fmt.Errorf("%w: response has no subject", ErrTokenInvalid)
	}

	return &Profile{
		UserID:      body.Sub,
		DisplayName: body.Name,
		Picture:     body.Picture,
	}, nil
}
