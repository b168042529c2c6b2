// Package telegram provides a thin client and wire types for the Telegram Bot API.
package telegram

import "strings"

// Update is one inbound event delivered to the webhook.
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message,omitempty"`
}

// Message is an inbound or outbound chat message.
type Message struct {
	MessageID int64       `json:"message_id"`
	From      *User       `json:"from,omitempty"`
	Chat      Chat        `json:"chat"`
	Text      string      `json:"text,omitempty"`
	Document  *Document   `json:"document,omitempty"`
	Photo     []PhotoSize `json:"photo,omitempty"`
	Video     *Video      `json:"video,omitempty"`
	Audio     *Audio      `json:"audio,omitempty"`
	Voice     *Voice      `json:"voice,omitempty"`
	VideoNote *VideoNote  `json:"video_note,omitempty"`
}

// User is the sender identity assigned by the platform.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
}

// Chat identifies the conversation a message belongs to.
type Chat struct {
	ID int64 `json:"id"`
}

type Document struct {
	FileID string `json:"file_id"`
}

type PhotoSize struct {
	FileID string `json:"file_id"`
}

type Video struct {
	FileID string `json:"file_id"`
}

type Audio struct {
	FileID string `json:"file_id"`
}

type Voice struct {
	FileID string `json:"file_id"`
}

type VideoNote struct {
	FileID string `json:"file_id"`
}

// HasMedia reports whether the message carries an archivable payload.
func (m *Message) HasMedia() bool {
	return m.Document != nil || len(m.Photo) != 0 || m.Video != nil ||
		m.Audio != nil || m.Voice != nil || m.VideoNote != nil
}

// Command splits a leading bot command from its arguments, stripping any
// @BotName suffix. It returns an empty command for non-command messages.
func (m *Message) Command() (string, []string) {
	if !strings.HasPrefix(m.Text, "/") {
		return "", nil
	}
	fields := strings.Fields(m.Text)
	command := fields[0]
	if at := strings.Index(command, "@"); at != -1 {
		command = command[:at]
	}
	return command, fields[1:]
}
