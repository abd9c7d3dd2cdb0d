package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultAlertRadius         = 50
	defaultAlertMaxRadius      = 1000
	defaultDescriptionPreview  = 60
	defaultMapCenterLat        = -23.550520
	defaultMapCenterLng        = -46.633308
	defaultMapZoom             = 13
	defaultMapPollInterval     = time.Second
	defaultMapZoneSegments     = 64
	defaultMapTimezone         = "America/Sao_Paulo"
	defaultTileURL             = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	defaultTileAttribution     = "© OpenStreetMap contributors"
	defaultGeocodingBaseURL    = "https://nominatim.openstreetmap.org"
	defaultGeocodingUserAgent  = "RiskMonitor/1.0"
	defaultGeocodingLanguage   = "pt-BR"
	defaultGeocodingCacheTTL   = 24 * time.Hour
	defaultWeatherBaseURL      = "https://api.openweathermap.org/data/2.5"
	defaultWeatherUnits        = "metric"
	defaultWeatherLang         = "pt_br"
	defaultExternalHTTPTimeout = 10 * time.Second
	defaultBcryptCost          = 10
	defaultAccessTokenTTL      = 24 * time.Hour
	defaultStorageDriver       = "memory"
	defaultGeolocationProvider = "request"
	defaultQRCodeSize          = 256
	defaultQRCodeLevel         = "medium"
	defaultTileType            = "mvt"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// AllowedOrigins lists browser origins for CORS; empty allows any
		AllowedOrigins []string `json:"allowedOrigins" yaml:"allowedOrigins"`
		Timeouts       struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Storage selects the key-value backend holding users, alerts and the session
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Alerts *AlertsConfig `json:"alerts" yaml:"alerts"`

	Geolocation *GeolocationConfig `json:"geolocation" yaml:"geolocation"`

	Map *MapConfig `json:"map" yaml:"map"`

	// PMTiles configuration for the local tile proxy
	PMTiles *PMTilesConfig `json:"pmtiles" yaml:"pmtiles"`

	Geocoding *GeocodingConfig `json:"geocoding" yaml:"geocoding"`

	Weather *WeatherConfig `json:"weather" yaml:"weather"`

	// PubSub configuration for cross-instance change notifications
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Firebase configuration for high-risk push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for alert share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
	// File enables a rotating file sink in addition to stdout
	File *LogFileConfig `json:"file" yaml:"file"`
}

type LogFileConfig struct {
	Path       string `json:"path" yaml:"path"`
	MaxSizeMB  int    `json:"maxSizeMb" yaml:"maxSizeMb"`
	MaxBackups int    `json:"maxBackups" yaml:"maxBackups"`
	MaxAgeDays int    `json:"maxAgeDays" yaml:"maxAgeDays"`
	Compress   bool   `json:"compress" yaml:"compress"`
}

// StorageConfig defines the key-value backend
type StorageConfig struct {
	// Driver is one of "memory", "blob", "postgres" or "redis"
	Driver string `json:"driver" yaml:"driver"`

	// BlobURL is a gocloud bucket URL (file:///var/lib/riskmonitor, mem://, gs://bucket)
	BlobURL string `json:"blobUrl" yaml:"blobUrl"`

	// KeyPrefix namespaces keys for shared backends (redis, blob)
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost     int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL time.Duration `json:"accessTokenTtl" yaml:"accessTokenTtl"`
}

// AlertsConfig defines alert lifecycle defaults
type AlertsConfig struct {
	DefaultRadius            float64 `json:"defaultRadius" yaml:"defaultRadius"`
	MaxRadius                float64 `json:"maxRadius" yaml:"maxRadius"`
	DescriptionPreviewLength int     `json:"descriptionPreviewLength" yaml:"descriptionPreviewLength"`
}

// GeolocationConfig selects where the device position comes from
type GeolocationConfig struct {
	// Provider is "request" (client-reported fix) or "static"
	Provider  string  `json:"provider" yaml:"provider"`
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

type MapConfig struct {
	CenterLat    float64       `json:"centerLat" yaml:"centerLat"`
	CenterLng    float64       `json:"centerLng" yaml:"centerLng"`
	Zoom         int           `json:"zoom" yaml:"zoom"`
	PollInterval time.Duration `json:"pollInterval" yaml:"pollInterval"`
	TileURL      string        `json:"tileUrl" yaml:"tileUrl"`
	Attribution  string        `json:"attribution" yaml:"attribution"`
	// ZoneSegments is the number of vertices used to approximate a zone circle in GeoJSON
	ZoneSegments int    `json:"zoneSegments" yaml:"zoneSegments"`
	Timezone     string `json:"timezone" yaml:"timezone"`
}

// PMTilesConfig defines the local tile archive
type PMTilesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Source is a bucket URL plus archive name, e.g. file:///data/tiles/saopaulo
	Source string `json:"source" yaml:"source"`

	// TileType is the archive's tile extension: mvt, png, jpg or webp
	TileType string `json:"tileType" yaml:"tileType"`
}

type GeocodingConfig struct {
	BaseURL        string        `json:"baseUrl" yaml:"baseUrl"`
	UserAgent      string        `json:"userAgent" yaml:"userAgent"`
	AcceptLanguage string        `json:"acceptLanguage" yaml:"acceptLanguage"`
	Timeout        time.Duration `json:"timeout" yaml:"timeout"`
	// CacheTTL applies only when redis is configured
	CacheTTL time.Duration `json:"cacheTtl" yaml:"cacheTtl"`
}

type WeatherConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	APIKey  string        `json:"apiKey" yaml:"apiKey"`
	Units   string        `json:"units" yaml:"units"`
	Lang    string        `json:"lang" yaml:"lang"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// PubSubConfig defines how storage changes reach other instances
type PubSubConfig struct {
	// Provider type: "" / "noop", "local", "google", "redis" or "kafka"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint of a peer instance (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// PushAudience enables OIDC verification on the push endpoint when set
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`

	// PushPort starts a dedicated push listener; the API server always serves /internal/pubsub/push
	PushPort int `json:"pushPort" yaml:"pushPort"`

	RedisChannel string `json:"redisChannel" yaml:"redisChannel"`

	KafkaBrokers []string `json:"kafkaBrokers" yaml:"kafkaBrokers"`
	KafkaTopic   string   `json:"kafkaTopic" yaml:"kafkaTopic"`
	KafkaGroupID string   `json:"kafkaGroupId" yaml:"kafkaGroupId"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	// Topic receives high-risk alert announcements
	Topic string `json:"topic" yaml:"topic"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: MAP_POLLINTERVAL -> map.pollInterval (not map.pollinterval)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills every optional section so a minimal file boots.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = defaultStorageDriver
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost <= 0 {
		cfg.Auth.BcryptCost = defaultBcryptCost
	}
	if cfg.Auth.AccessTokenTTL <= 0 {
		cfg.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}

	if cfg.Alerts == nil {
		cfg.Alerts = &AlertsConfig{}
	}
	if cfg.Alerts.DefaultRadius <= 0 {
		cfg.Alerts.DefaultRadius = defaultAlertRadius
	}
	if cfg.Alerts.MaxRadius <= 0 {
		cfg.Alerts.MaxRadius = defaultAlertMaxRadius
	}
	if cfg.Alerts.DescriptionPreviewLength <= 0 {
		cfg.Alerts.DescriptionPreviewLength = defaultDescriptionPreview
	}

	if cfg.Geolocation == nil {
		cfg.Geolocation = &GeolocationConfig{}
	}
	if cfg.Geolocation.Provider == "" {
		cfg.Geolocation.Provider = defaultGeolocationProvider
	}

	applyMapDefaults(cfg)

	if cfg.PMTiles == nil {
		cfg.PMTiles = &PMTilesConfig{}
	}
	if cfg.PMTiles.TileType == "" {
		cfg.PMTiles.TileType = defaultTileType
	}

	if cfg.Geocoding == nil {
		cfg.Geocoding = &GeocodingConfig{}
	}
	if cfg.Geocoding.BaseURL == "" {
		cfg.Geocoding.BaseURL = defaultGeocodingBaseURL
	}
	if cfg.Geocoding.UserAgent == "" {
		cfg.Geocoding.UserAgent = defaultGeocodingUserAgent
	}
	if cfg.Geocoding.AcceptLanguage == "" {
		cfg.Geocoding.AcceptLanguage = defaultGeocodingLanguage
	}
	if cfg.Geocoding.Timeout <= 0 {
		cfg.Geocoding.Timeout = defaultExternalHTTPTimeout
	}
	if cfg.Geocoding.CacheTTL <= 0 {
		cfg.Geocoding.CacheTTL = defaultGeocodingCacheTTL
	}

	if cfg.Weather == nil {
		cfg.Weather = &WeatherConfig{}
	}
	if cfg.Weather.BaseURL == "" {
		cfg.Weather.BaseURL = defaultWeatherBaseURL
	}
	if cfg.Weather.Units == "" {
		cfg.Weather.Units = defaultWeatherUnits
	}
	if cfg.Weather.Lang == "" {
		cfg.Weather.Lang = defaultWeatherLang
	}
	if cfg.Weather.Timeout <= 0 {
		cfg.Weather.Timeout = defaultExternalHTTPTimeout
	}

	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = defaultQRCodeSize
	}
	if cfg.QRCode.ErrorCorrectionLevel == "" {
		cfg.QRCode.ErrorCorrectionLevel = defaultQRCodeLevel
	}
}

func applyMapDefaults(cfg *Config) {
	if cfg.Map == nil {
		cfg.Map = &MapConfig{}
	}
	if cfg.Map.CenterLat == 0 && cfg.Map.CenterLng == 0 {
		cfg.Map.CenterLat = defaultMapCenterLat
		cfg.Map.CenterLng = defaultMapCenterLng
	}
	if cfg.Map.Zoom <= 0 {
		cfg.Map.Zoom = defaultMapZoom
	}
	if cfg.Map.PollInterval <= 0 {
		cfg.Map.PollInterval = defaultMapPollInterval
	}
	if cfg.Map.TileURL == "" {
		cfg.Map.TileURL = defaultTileURL
	}
	if cfg.Map.Attribution == "" {
		cfg.Map.Attribution = defaultTileAttribution
	}
	if cfg.Map.ZoneSegments < 8 {
		cfg.Map.ZoneSegments = defaultMapZoneSegments
	}
	if cfg.Map.Timezone == "" {
		cfg.Map.Timezone = defaultMapTimezone
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
