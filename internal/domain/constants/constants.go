package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvLocal      = "local"
	EnvProduction = "production"
)

// Pub/Sub providers for change notifications
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderRedis  = "redis"
	PubSubProviderKafka  = "kafka"
)

// Storage drivers
const (
	StorageDriverMemory   = "memory"
	StorageDriverBlob     = "blob"
	StorageDriverPostgres = "postgres"
	StorageDriverRedis    = "redis"
)

// Geolocation providers
const (
	GeolocationProviderRequest = "request"
	GeolocationProviderStatic  = "static"
)

// Storage keys
const (
	KeyUsers       = "users"
	KeyAlerts      = "alerts"
	KeyCurrentUser = "currentUser"
)

// Request headers carrying the client's device position
const (
	HeaderGeolocation      = "X-Geolocation"
	HeaderGeolocationError = "X-Geolocation-Error"
	HeaderTileAttribution  = "X-Tile-Attribution"
)
