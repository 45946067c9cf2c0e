package config

import "time"

// Database connection pool settings
const (
	DBMaxOpenConns    = 10
	DBMaxIdleConns    = 2
	DBConnMaxLifetime = 5 * time.Minute
)

// HTTP server timeouts
const (
	ServerRequestTimeout  = 60 * time.Second
	ServerReadTimeout     = 15 * time.Second
	ServerWriteTimeout    = 60 * time.Second
	ServerIdleTimeout     = 120 * time.Second
	ServerShutdownTimeout = 30 * time.Second
)

// Database ping timeout for health checks
const DBPingTimeout = 5 * time.Second

// Admin sessions live for a day; there is no logout.
const AdminSessionTTL = 24 * time.Hour

// Background job settings
const (
	CleanupJobInterval = 5 * time.Minute
	CleanupJobTimeout  = 30 * time.Second
	CleanupLockTTL     = time.Minute
	CleanupLockKey     = "bookreview:jobs:session-cleanup"
)

// DefaultGenre is stored when a book is created without a genre.
const DefaultGenre = "Uncategorized"

// CORSMaxAge is sent on preflight responses, in seconds.
const CORSMaxAge = 86400
