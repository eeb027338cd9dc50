package config

import "time"

const (
	DefaultMongoDatabaseName = "resortly"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort = "8080"

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// Cancellations earlier than this far before the stay start are
	// refund eligible.
	DefaultRefundCutoff = 72 * time.Hour

	DefaultKafkaTopic       = "resortly.booking-events"
	DefaultKafkaMaxAttempts = 3

	DefaultLogLevel = "info"
)
