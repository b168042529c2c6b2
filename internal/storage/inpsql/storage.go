// Package inpsql provides data types and methods for PSQL storage operations.
package inpsql

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"sync"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/nathdadu26/viralbox-uploader-bot/internal/config"
	"github.com/nathdadu26/viralbox-uploader-bot/internal/service/modelmsg"
	"github.com/nathdadu26/viralbox-uploader-bot/internal/storage"
	storageErrors "github.com/nathdadu26/viralbox-uploader-bot/internal/storage/errors"
	"github.com/nathdadu26/viralbox-uploader-bot/internal/storage/modelstorage"
)

// Check interface implementation explicitly
var (
	_ storage.RelayStorage = (*Storage)(nil)
)

// Storage struct defines data structure handling and provides support for adding new implementations.
type Storage struct {
	mu  sync.Mutex
	Cfg *config.StorageConfig
	DB  *sqlx.DB
}

// InitStorage initializes a Storage object, sets its attributes and starts a listener for DB closure.
func InitStorage(ctx context.Context, wg *sync.WaitGroup, cfg *config.StorageConfig) (*Storage, error) {
	db, err := sqlx.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	st := Storage{
		Cfg: cfg,
		DB:  db,
	}
	err = st.createTables(ctx)
	if err != nil {
		return nil, err
	}
	// start a goroutine to listen for ctx cancellation followed by DB closure,
	// use sync.WaitGroup to prevent goroutine premature termination when main exits
	go func() {
		defer wg.Done()
		<-ctx.Done()
		err := st.DB.Close()
		if err != nil {
			log.Fatal(err)
		}
		log.Println("PSQL DB connection closed successfully")
	}()
	return &st, nil
}

// SetCredential stores a shortening API key for a user, overwriting any previous key.
func (s *Storage) SetCredential(ctx context.Context, userID int64, apiKey string) error {
	query := `INSERT INTO user_apis (user_id, api_key) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET api_key = excluded.api_key`
	setDone := make(chan bool)
	setError := make(chan error)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		_, err := s.DB.ExecContext(ctx, query, userID, apiKey)
		if err != nil {
			setError <- &storageErrors.ExecutionPSQLError{Err: err}
			return
		}
		setDone <- true
	}()

	// wait for the first channel to retrieve a value
	select {
	case <-ctx.Done():
		log.Println("Setting credential:", ctx.Err())
		return &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case setErr := <-setError:
		log.Println("Setting credential:", setErr.Error())
		return setErr
	case <-setDone:
		log.Println("Setting credential: done for user", userID)
		return nil
	}
}

// GetCredential returns the stored shortening API key for a user.
func (s *Storage) GetCredential(ctx context.Context, userID int64) (string, error) {
	query := `SELECT id, user_id, api_key FROM user_apis WHERE user_id = $1`
	getDone := make(chan string)
	getError := make(chan error)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		var entry modelstorage.CredentialPostgresEntry
		err := s.DB.GetContext(ctx, &entry, query, userID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				getError <- &storageErrors.NotFoundError{Err: err, ID: "credential"}
				return
			}
			getError <- &storageErrors.ScanningPSQLError{Err: err}
			return
		}
		getDone <- entry.APIKey
	}()

	// wait for the first channel to retrieve a value
	select {
	case <-ctx.Done():
		log.Println("Getting credential:", ctx.Err())
		return "", &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case getErr := <-getError:
		log.Println("Getting credential:", getErr.Error())
		return "", getErr
	case apiKey := <-getDone:
		log.Println("Getting credential: done for user", userID)
		return apiKey, nil
	}
}

// InsertMapping stores a mapping identifier with a reference to the archived message.
// The unique constraint on mapping_id is the correctness backstop against id collisions.
func (s *Storage) InsertMapping(ctx context.Context, mappingID string, stored modelmsg.StoredMessage) error {
	query := `INSERT INTO mappings (mapping_id, channel_id, message_id) VALUES ($1, $2, $3)`
	insertDone := make(chan bool)
	insertError := make(chan error)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		_, err := s.DB.ExecContext(ctx, query, mappingID, stored.ChannelID, stored.MessageID)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				insertError <- &storageErrors.AlreadyExistsError{Err: err, ID: mappingID}
				return
			}
			insertError <- &storageErrors.ExecutionPSQLError{Err: err}
			return
		}
		insertDone <- true
	}()

	// wait for the first channel to retrieve a value
	select {
	case <-ctx.Done():
		log.Println("Inserting mapping:", ctx.Err())
		return &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case insertErr := <-insertError:
		log.Println("Inserting mapping:", insertErr.Error())
		return insertErr
	case <-insertDone:
		log.Println("Inserting mapping: stored", mappingID, "as", stored.ChannelID, "/", stored.MessageID)
		return nil
	}
}

// RetrieveMapping returns the archived message reference for a mapping identifier.
func (s *Storage) RetrieveMapping(ctx context.Context, mappingID string) (modelmsg.StoredMessage, error) {
	query := `SELECT id, mapping_id, channel_id, message_id FROM mappings WHERE mapping_id = $1`
	retrieveDone := make(chan modelmsg.StoredMessage)
	retrieveError := make(chan error)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		var entry modelstorage.MappingPostgresEntry
		err := s.DB.GetContext(ctx, &entry, query, mappingID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				retrieveError <- &storageErrors.NotFoundError{Err: err, ID: mappingID}
				return
			}
			retrieveError <- &storageErrors.ScanningPSQLError{Err: err}
			return
		}
		retrieveDone <- modelmsg.StoredMessage{ChannelID: entry.ChannelID, MessageID: entry.MessageID}
	}()

	// wait for the first channel to retrieve a value
	select {
	case <-ctx.Done():
		log.Println("Retrieving mapping:", ctx.Err())
		return modelmsg.StoredMessage{}, &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case retrieveErr := <-retrieveError:
		log.Println("Retrieving mapping:", retrieveErr.Error())
		return modelmsg.StoredMessage{}, retrieveErr
	case stored := <-retrieveDone:
		log.Println("Retrieving mapping:", mappingID, "as", stored.ChannelID, "/", stored.MessageID)
		return stored, nil
	}
}

// RecordLink appends an audit record pairing a worker URL with its shortened URL.
func (s *Storage) RecordLink(ctx context.Context, longURL string, shortURL string) error {
	query := `INSERT INTO links (long_url, short_url) VALUES ($1, $2)`
	recordDone := make(chan bool)
	recordError := make(chan error)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		_, err := s.DB.ExecContext(ctx, query, longURL, shortURL)
		if err != nil {
			recordError <- &storageErrors.ExecutionPSQLError{Err: err}
			return
		}
		recordDone <- true
	}()

	// wait for the first channel to retrieve a value
	select {
	case <-ctx.Done():
		log.Println("Recording link:", ctx.Err())
		return &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case recordErr := <-recordError:
		log.Println("Recording link:", recordErr.Error())
		return recordErr
	case <-recordDone:
		log.Println("Recording link:", longURL, "as", shortURL)
		return nil
	}
}

// PingDB checks the PSQL DB connection.
func (s *Storage) PingDB() error {
	return s.DB.Ping()
}

// CloseDB closes the PSQL DB connection.
func (s *Storage) CloseDB() error {
	return s.DB.Close()
}

// createTables creates tables for PSQL DB storage if not exist.
func (s *Storage) createTables(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS user_apis (
		id bigserial not null,
		user_id bigint not null unique,
		api_key text not null
	);
	CREATE TABLE IF NOT EXISTS mappings (
		id bigserial not null,
		mapping_id text not null unique,
		channel_id bigint not null,
		message_id bigint not null
	);
	CREATE TABLE IF NOT EXISTS links (
		id bigserial not null,
		long_url text not null,
		short_url text not null
	);`
	_, err := s.DB.ExecContext(ctx, query)
	return err
}
