package feishu

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// maxResponseBody caps how much of the endpoint's reply we read.
const maxResponseBody = 64 * 1024

const contentTypeJSON = "application/json; charset=utf-8"

// Client sends signed text notifications to a single bot webhook.
type Client struct {
	webhook string
	secret  string
	client  *http.Client

	// now is swappable so tests can pin the signing timestamp.
	now func() time.Time
}

func NewClient(webhook, secret string, timeout time.Duration) *Client {
	return &Client{
		webhook: webhook,
		secret:  secret,
		client:  &http.Client{Timeout: timeout},
		now:     time.Now,
	}
}

// Send signs and delivers one text message. One attempt, no retries.
//
// The recipient spec is accepted but not embedded in the payload: the
// upstream bot API's at-mention markup for plain text messages is
// unconfirmed, so targeted delivery stays unimplemented rather than
// guessed at.
func (c *Client) Send(ctx context.Context, msg, ats string) (*Response, error) {
	recipients := SplitRecipients(ats)
	if len(recipients) > maxRecipients {
		// The endpoint documents a cap of 10; whether it enforces it is its
		// call, not ours.
		log.Warn().Int("recipients", len(recipients)).Msg("recipient list exceeds the endpoint's documented cap")
	}

	timestamp := c.now().Unix()
	payload := textMessage{
		Timestamp: strconv.FormatInt(timestamp, 10),
		Sign:      Sign(c.secret, timestamp),
		MsgType:   "text",
		Content:   textContent{Text: msg},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &EncodeError{Msg: msg, Cause: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhook, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Msg: msg, Cause: err.Error()}
	}
	req.Header.Set("Content-Type", contentTypeJSON)

	log.Debug().
		Int64("timestamp", timestamp).
		Int("recipients", len(recipients)).
		Msg("sending text message")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &TransportError{Msg: msg, Cause: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{Msg: msg, Cause: fmt.Sprintf("HTTP %d", resp.StatusCode)}
	}

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, &TransportError{Msg: msg, Cause: fmt.Sprintf("read response: %v", err)}
	}

	var decoded Response
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return nil, &DecodeError{Msg: msg, Cause: err.Error()}
	}

	if decoded.Code != 0 {
		return nil, &RemoteError{Msg: msg, Code: decoded.Code, Remote: decoded.Msg}
	}

	log.Debug().Int("code", decoded.Code).Msg("message accepted")
	return &decoded, nil
}
