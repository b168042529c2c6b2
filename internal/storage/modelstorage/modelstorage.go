// Package modelstorage provides locally used types and their structure for storage entries.
package modelstorage

// CredentialPostgresEntry is one row of the user_apis table.
type CredentialPostgresEntry struct {
	ID     int64  `db:"id"`
	UserID int64  `db:"user_id"`
	APIKey string `db:"api_key"`
}

// MappingPostgresEntry is one row of the mappings table.
type MappingPostgresEntry struct {
	ID        int64  `db:"id"`
	MappingID string `db:"mapping_id"`
	ChannelID int64  `db:"channel_id"`
	MessageID int64  `db:"message_id"`
}

// LinkPostgresEntry is one row of the links table.
type LinkPostgresEntry struct {
	ID       int64  `db:"id"`
	LongURL  string `db:"long_url"`
	ShortURL string `db:"short_url"`
}
