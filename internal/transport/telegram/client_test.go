package telegram

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestBotServer(t *testing.T, handler http.HandlerFunc) *Client {
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	client := NewClient("test_token")
	client.base = ts.URL + "/bottest_token"
	return client
}

// Tests

func TestCopyMessage(t *testing.T) {
	client := newTestBotServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottest_token/copyMessage", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "-1001234567890", r.Form.Get("chat_id"))
		assert.Equal(t, "555", r.Form.Get("from_chat_id"))
		assert.Equal(t, "42", r.Form.Get("message_id"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"result":{"message_id":987}}`))
	})
	copiedID, err := client.CopyMessage(context.Background(), 555, 42, -1001234567890)
	assert.NoError(t, err)
	assert.Equal(t, int64(987), copiedID)
}

func TestSendMessage_Reply(t *testing.T) {
	client := newTestBotServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottest_token/sendMessage", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "555", r.Form.Get("chat_id"))
		assert.Equal(t, "https://viralbox.in/abc123", r.Form.Get("text"))
		assert.Equal(t, "42", r.Form.Get("reply_to_message_id"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"result":{"message_id":43}}`))
	})
	err := client.SendMessage(context.Background(), 555, "https://viralbox.in/abc123", 42)
	assert.NoError(t, err)
}

func TestCall_APIError(t *testing.T) {
	client := newTestBotServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":false,"description":"Bad Request: chat not found"}`))
	})
	err := client.SendMessage(context.Background(), 555, "hello", 0)
	assert.ErrorContains(t, err, "chat not found")
}

func TestMessage_Command(t *testing.T) {
	msg := Message{Text: "/set_api some_api_key"}
	command, args := msg.Command()
	assert.Equal(t, "/set_api", command)
	assert.Equal(t, []string{"some_api_key"}, args)

	msg = Message{Text: "/start@UploaderBot"}
	command, args = msg.Command()
	assert.Equal(t, "/start", command)
	assert.Empty(t, args)

	msg = Message{Text: "plain text"}
	command, _ = msg.Command()
	assert.Equal(t, "", command)
}

func TestMessage_HasMedia(t *testing.T) {
	assert.False(t, (&Message{Text: "hi"}).HasMedia())
	assert.True(t, (&Message{Document: &Document{FileID: "f"}}).HasMedia())
	assert.True(t, (&Message{Photo: []PhotoSize{{FileID: "f"}}}).HasMedia())
	assert.True(t, (&Message{VideoNote: &VideoNote{FileID: "f"}}).HasMedia())
}
