package config

import "time"

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	// RemoteWriteTimeout bounds the background remote phase of the
	// optimistic writes.
	RemoteWriteTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Database interface {
	// Driver selects the store backend: "mongo" or "memory".
	Driver() string
	DSN() string
	DatabaseName() string
	CustomersCollection() string
	RecordsCollection() string
	InventoryCollection() string
}

type Photos interface {
	// Driver selects the blob backend: "gcs" or "local".
	Driver() string
	Bucket() string
	LocalDir() string
	BaseURL() string
}
