package models

// Database is the view-model for a registered tenant database. Connection
// metadata is optional; the connection string arrives masked from the
// backend and is never edited locally.
type Database struct {
	ID               int64
	ProjectName      string
	DBName           string
	IsActive         bool
	ServerName       string
	Port             int
	DatabaseType     string
	ConnectionString string
}

// NewDatabase is the create/edit draft for a registered database.
type NewDatabase struct {
	ProjectName  string
	DBName       string
	IsActive     bool
	ServerName   string
	Port         int
	DatabaseType string
}

// OpResult reports the outcome of a server-side maintenance action
// (connection test, backup).
type OpResult struct {
	Success bool
	Message string
}
