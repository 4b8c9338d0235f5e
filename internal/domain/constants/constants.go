package constants

// Pub/Sub providers accepted by config.PubSubConfig.Provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Storage backends accepted by config.StorageConfig.Backend.
const (
	StorageBackendMemory   = "memory"
	StorageBackendPostgres = "postgres"
)

// Onboarding sources, used for event attributes and metric labels.
const (
	SourceSingle = "single"
	SourceBulk   = "bulk"
	SourceFile   = "file"
)
