// Package storage provides interfaces for types to be in compliance with.
package storage

import (
	"context"

	"github.com/nathdadu26/viralbox-uploader-bot/internal/service/modelmsg"
)

// CredentialSetter defines a set of methods for types implementing CredentialSetter.
type CredentialSetter interface {
	SetCredential(ctx context.Context, userID int64, apiKey string) error
}

// CredentialGetter defines a set of methods for types implementing CredentialGetter.
type CredentialGetter interface {
	GetCredential(ctx context.Context, userID int64) (apiKey string, err error)
}

// MappingSetter defines a set of methods for types implementing MappingSetter.
type MappingSetter interface {
	InsertMapping(ctx context.Context, mappingID string, stored modelmsg.StoredMessage) error
}

// MappingGetter defines a set of methods for types implementing MappingGetter.
type MappingGetter interface {
	RetrieveMapping(ctx context.Context, mappingID string) (stored modelmsg.StoredMessage, err error)
}

// LinkRecorder defines a set of methods for types implementing LinkRecorder.
type LinkRecorder interface {
	RecordLink(ctx context.Context, longURL string, shortURL string) error
}

// Pinger defines a set of methods for types implementing Pinger.
type Pinger interface {
	PingDB() error
}

// Closer defines a set of methods for types implementing Closer.
type Closer interface {
	CloseDB() error
}

// RelayStorage defines a set of embedded interfaces for types implementing RelayStorage.
type RelayStorage interface {
	CredentialSetter
	CredentialGetter
	MappingSetter
	MappingGetter
	LinkRecorder
	Pinger
	Closer
}
