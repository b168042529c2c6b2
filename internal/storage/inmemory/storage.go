// Package inmemory provides data types and methods for in-memory storage operations.
package inmemory

import (
	"context"
	"sync"

	"github.com/nathdadu26/viralbox-uploader-bot/internal/service/modelmsg"
	"github.com/nathdadu26/viralbox-uploader-bot/internal/storage"
	storageErrors "github.com/nathdadu26/viralbox-uploader-bot/internal/storage/errors"
)

// Check interface implementation explicitly
var (
	_ storage.RelayStorage = (*Storage)(nil)
)

// LinkEntry is one appended audit record.
type LinkEntry struct {
	LongURL  string
	ShortURL string
}

// Storage struct defines data structure handling and provides support for adding new implementations.
type Storage struct {
	mu          sync.Mutex
	credentials map[int64]string
	mappings    map[string]modelmsg.StoredMessage
	links       []LinkEntry
}

// InitStorage initializes a Storage object and sets its attributes.
func InitStorage() *Storage {
	return &Storage{
		credentials: make(map[int64]string),
		mappings:    make(map[string]modelmsg.StoredMessage),
	}
}

// SetCredential stores a shortening API key for a user, overwriting any previous key.
func (s *Storage) SetCredential(_ context.Context, userID int64, apiKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credentials[userID] = apiKey
	return nil
}

// GetCredential returns the stored shortening API key for a user.
func (s *Storage) GetCredential(_ context.Context, userID int64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	apiKey, ok := s.credentials[userID]
	if !ok {
		return "", &storageErrors.NotFoundError{ID: "credential"}
	}
	return apiKey, nil
}

// InsertMapping stores a mapping identifier with a reference to the archived message.
func (s *Storage) InsertMapping(_ context.Context, mappingID string, stored modelmsg.StoredMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.mappings[mappingID]; ok {
		return &storageErrors.AlreadyExistsError{ID: mappingID}
	}
	s.mappings[mappingID] = stored
	return nil
}

// RetrieveMapping returns the archived message reference for a mapping identifier.
func (s *Storage) RetrieveMapping(_ context.Context, mappingID string) (modelmsg.StoredMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.mappings[mappingID]
	if !ok {
		return modelmsg.StoredMessage{}, &storageErrors.NotFoundError{ID: mappingID}
	}
	return stored, nil
}

// RecordLink appends an audit record pairing a worker URL with its shortened URL.
func (s *Storage) RecordLink(_ context.Context, longURL string, shortURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.links = append(s.links, LinkEntry{LongURL: longURL, ShortURL: shortURL})
	return nil
}

// Links returns a copy of all appended audit records.
func (s *Storage) Links() []LinkEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	links := make([]LinkEntry, len(s.links))
	copy(links, s.links)
	return links
}

// Mappings returns the number of stored mapping records.
func (s *Storage) Mappings() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.mappings)
}

// PingDB is a mock for PSQL DB pinger for in-memory DB handling.
func (s *Storage) PingDB() error {
	return nil
}

// CloseDB is a mock for PSQL DB closer for in-memory DB handling.
func (s *Storage) CloseDB() error {
	return nil
}
