// Package modelmsg provides locally used types for archived message handling between modules.
package modelmsg

// StoredMessage references the archived copy of an upload inside the storage channel.
type StoredMessage struct {
	ChannelID int64
	MessageID int64
}
