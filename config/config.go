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
	defaultMaxRequestBodySize = "10MB"
	DefaultSessionTTL         = 20 * 24 * time.Hour
	DefaultResetTTL           = time.Hour
	defaultBcryptCost         = 10
	defaultMetricsPath        = "/metrics"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		CORSAllowOrigins   []string `json:"corsAllowOrigins" yaml:"corsAllowOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// SecretKey holds one signing key per role plus the password-reset key.
	SecretKey SecretKeyConfig `json:"secretKey" yaml:"secretKey"`

	Session *SessionConfig `json:"session" yaml:"session"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Frontend is used to build links placed in outgoing emails.
	Frontend *FrontendConfig `json:"frontend" yaml:"frontend"`

	Mail *MailConfig `json:"mail" yaml:"mail"`

	Media *MediaConfig `json:"media" yaml:"media"`

	Outbox *OutboxConfig `json:"outbox" yaml:"outbox"`

	// PubSub configuration for lifecycle event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// SecretKeyConfig defines the HMAC keys used to sign session and reset tokens.
type SecretKeyConfig struct {
	Consumer        string `json:"consumer" yaml:"consumer"`
	ServiceProvider string `json:"serviceProvider" yaml:"serviceProvider"`
	Admin           string `json:"admin" yaml:"admin"`
	Reset           string `json:"reset" yaml:"reset"`
}

// SessionConfig defines how session cookies are issued.
type SessionConfig struct {
	TTL      time.Duration `json:"ttl" yaml:"ttl"`
	ResetTTL time.Duration `json:"resetTtl" yaml:"resetTtl"`
	Secure   bool          `json:"secure" yaml:"secure"`
	SameSite string        `json:"sameSite" yaml:"sameSite"` // lax, strict or none
	Domain   string        `json:"domain" yaml:"domain"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`
}

type FrontendConfig struct {
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
}

// MailConfig defines outbound email delivery.
type MailConfig struct {
	// Provider is "smtp" or "log". The log provider only writes messages to the logger.
	Provider string `json:"provider" yaml:"provider"`
	From     string `json:"from" yaml:"from"`
	FromName string `json:"fromName" yaml:"fromName"`
	SMTP     struct {
		Host     string        `json:"host" yaml:"host"`
		Port     int           `json:"port" yaml:"port"`
		Username string        `json:"username" yaml:"username"`
		Password string        `json:"password" yaml:"password"`
		TLS      string        `json:"tls" yaml:"tls"` // mandatory, opportunistic or none
		Timeout  time.Duration `json:"timeout" yaml:"timeout"`
	} `json:"smtp" yaml:"smtp"`
}

// MediaConfig defines where uploaded images are stored.
type MediaConfig struct {
	// Provider is "s3", "file" or "mem".
	Provider      string `json:"provider" yaml:"provider"`
	Bucket        string `json:"bucket" yaml:"bucket"`
	Region        string `json:"region" yaml:"region"`
	Endpoint      string `json:"endpoint" yaml:"endpoint"`
	AccessKeyID   string `json:"accessKeyId" yaml:"accessKeyId"`
	SecretKey     string `json:"secretKey" yaml:"secretKey"`
	Dir           string `json:"dir" yaml:"dir"`
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
	MaxUploadSize string `json:"maxUploadSize" yaml:"maxUploadSize"`
}

// OutboxConfig controls the relay that drains email and event jobs.
type OutboxConfig struct {
	Enabled      bool          `json:"enabled" yaml:"enabled"`
	BatchSize    int           `json:"batchSize" yaml:"batchSize"`
	PollInterval time.Duration `json:"pollInterval" yaml:"pollInterval"`
	MaxAttempts  int           `json:"maxAttempts" yaml:"maxAttempts"`
	BaseBackoff  time.Duration `json:"baseBackoff" yaml:"baseBackoff"`
	MaxBackoff   time.Duration `json:"maxBackoff" yaml:"maxBackoff"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "google" for Google Pub/Sub, empty or "noop" to disable
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// RedisConfig backs the token version cache. Disabled means every request reads the database.
type RedisConfig struct {
	Enabled  bool          `json:"enabled" yaml:"enabled"`
	Address  string        `json:"address" yaml:"address"`
	Password string        `json:"password" yaml:"password"`
	DB       int           `json:"db" yaml:"db"`
	TTL      time.Duration `json:"ttl" yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
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

	// Example: MAIL_SMTP_HOST -> mail.smtp.host, SECRETKEY_SERVICEPROVIDER -> secretKey.serviceProvider
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

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
	// A missing .env file is fine; only real parse errors matter.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env failed")
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if c.Session == nil {
		c.Session = &SessionConfig{Secure: true}
	}
	if c.Session.TTL <= 0 {
		c.Session.TTL = DefaultSessionTTL
	}
	if c.Session.ResetTTL <= 0 {
		c.Session.ResetTTL = DefaultResetTTL
	}
	if c.Auth == nil {
		c.Auth = &AuthConfig{}
	}
	if c.Auth.BcryptCost == 0 {
		c.Auth.BcryptCost = defaultBcryptCost
	}
	if c.Frontend == nil {
		c.Frontend = &FrontendConfig{}
	}
	if len(c.HTTP.CORSAllowOrigins) == 0 && c.Frontend.BaseURL != "" {
		c.HTTP.CORSAllowOrigins = []string{c.Frontend.BaseURL}
	}
	if c.Mail == nil {
		c.Mail = &MailConfig{Provider: "log"}
	}
	if c.Media == nil {
		c.Media = &MediaConfig{Provider: "mem"}
	}
	if c.Outbox == nil {
		c.Outbox = &OutboxConfig{}
	}
	c.Outbox.applyDefaults()
	if c.Metrics != nil && c.Metrics.Path == "" {
		c.Metrics.Path = defaultMetricsPath
	}
}

func (o *OutboxConfig) applyDefaults() {
	if o.BatchSize <= 0 {
		o.BatchSize = 50
	}
	if o.PollInterval <= 0 {
		o.PollInterval = 500 * time.Millisecond
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = 10
	}
	if o.BaseBackoff <= 0 {
		o.BaseBackoff = 2 * time.Second
	}
	if o.MaxBackoff <= 0 {
		o.MaxBackoff = 10 * time.Minute
	}
}

// Validate checks the settings that cannot be defaulted.
func (c *Config) Validate() error {
	keys := map[string]string{
		"secretKey.consumer":        c.SecretKey.Consumer,
		"secretKey.serviceProvider": c.SecretKey.ServiceProvider,
		"secretKey.admin":           c.SecretKey.Admin,
		"secretKey.reset":           c.SecretKey.Reset,
	}
	seen := make(map[string]string, len(keys))
	for name, value := range keys {
		if strings.TrimSpace(value) == "" {
			return errors.Errorf("%s must be set", name)
		}
		if other, ok := seen[value]; ok {
			return errors.Errorf("%s and %s must not share a signing key", name, other)
		}
		seen[value] = name
	}

	return nil
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
