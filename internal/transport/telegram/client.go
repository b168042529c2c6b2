package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

const apiBase = "https://api.telegram.org/bot"

// Sender defines the outbound Bot API surface consumed by the relay.
type Sender interface {
	CopyMessage(ctx context.Context, fromChatID int64, messageID int64, toChatID int64) (copiedMessageID int64, err error)
	SendMessage(ctx context.Context, chatID int64, text string, replyToMessageID int64) error
	SetWebhook(ctx context.Context, url string) error
}

// Check interface implementation explicitly
var (
	_ Sender = (*Client)(nil)
)

// apiResponse is the envelope wrapping every Bot API result.
type apiResponse struct {
	OK          bool            `json:"ok"`
	Description string          `json:"description,omitempty"`
	Result      json.RawMessage `json:"result,omitempty"`
}

// Client is a thin resty-based Bot API client.
type Client struct {
	base string
	http *resty.Client
}

// NewClient initializes a Client object for the given bot token.
func NewClient(token string) *Client {
	return &Client{
		base: apiBase + token,
		http: resty.New().SetTimeout(30 * time.Second),
	}
}

func (c *Client) call(ctx context.Context, method string, params map[string]string) (json.RawMessage, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetFormData(params).
		Post(c.base + "/" + method)
	if err != nil {
		return nil, fmt.Errorf("telegram %s: %w", method, err)
	}
	var body apiResponse
	if err := json.Unmarshal(res.Body(), &body); err != nil {
		return nil, fmt.Errorf("telegram %s: malformed response: %w", method, err)
	}
	if !body.OK {
		return nil, fmt.Errorf("telegram %s: %s", method, body.Description)
	}
	return body.Result, nil
}

// CopyMessage duplicates a message into another chat and returns the id of the copy.
func (c *Client) CopyMessage(ctx context.Context, fromChatID int64, messageID int64, toChatID int64) (int64, error) {
	result, err := c.call(ctx, "copyMessage", map[string]string{
		"chat_id":      strconv.FormatInt(toChatID, 10),
		"from_chat_id": strconv.FormatInt(fromChatID, 10),
		"message_id":   strconv.FormatInt(messageID, 10),
	})
	if err != nil {
		return 0, err
	}
	var copied struct {
		MessageID int64 `json:"message_id"`
	}
	if err := json.Unmarshal(result, &copied); err != nil {
		return 0, fmt.Errorf("telegram copyMessage: malformed result: %w", err)
	}
	return copied.MessageID, nil
}

// SendMessage sends a text message, optionally as a reply to a previous message.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string, replyToMessageID int64) error {
	params := map[string]string{
		"chat_id": strconv.FormatInt(chatID, 10),
		"text":    text,
	}
	if replyToMessageID != 0 {
		params["reply_to_message_id"] = strconv.FormatInt(replyToMessageID, 10)
	}
	_, err := c.call(ctx, "sendMessage", params)
	return err
}

// SetWebhook registers the webhook URL updates should be delivered to.
func (c *Client) SetWebhook(ctx context.Context, url string) error {
	_, err := c.call(ctx, "setWebhook", map[string]string{"url": url})
	return err
}
