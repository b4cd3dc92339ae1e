package conf

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Log    LogConfig
	Search SearchConfig
	Render RenderConfig
	MinIO  MinIOConfig
	Redis  RedisConfig
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type LogConfig struct {
	Level            string        `mapstructure:"level"`
	Format           string        `mapstructure:"format"`
	Output           string        `mapstructure:"output"`
	File             FileLogConfig `mapstructure:"file"`
	EnableCaller     bool          `mapstructure:"enablecaller"`
	EnableStacktrace bool          `mapstructure:"enablestacktrace"`
}

type FileLogConfig struct {
	Filename   string `mapstructure:"filename"`
	MaxSize    int    `mapstructure:"maxsize"`
	MaxAge     int    `mapstructure:"maxage"`
	MaxBackups int    `mapstructure:"maxbackups"`
	Compress   bool   `mapstructure:"compress"`
}

type SearchConfig struct {
	Provider   string `mapstructure:"provider"`
	Name       string `mapstructure:"name"`
	APIHost    string `mapstructure:"api_host"`
	APIKey     string `mapstructure:"api_key"`
	Timeout    int    `mapstructure:"timeout"`
	MaxResults int    `mapstructure:"max_results"`
	// SiteScope restricts the search tier to one catalog domain.
	SiteScope string `mapstructure:"site_scope"`
}

type RenderConfig struct {
	// Mode is "placeholder" (demo parity) or "minio" (fetch, rasterize, store).
	Mode string `mapstructure:"mode"`
	// MaxFetchBytes caps the PDF download size.
	MaxFetchBytes int64 `mapstructure:"max_fetch_bytes"`
	// FetchTimeout is the PDF download timeout in seconds.
	FetchTimeout int `mapstructure:"fetch_timeout"`
	// DPI used when rasterizing the first page.
	DPI float64 `mapstructure:"dpi"`
	// CacheTTL is the rendered-URL cache TTL in seconds (0 disables the cache).
	CacheTTL int `mapstructure:"cache_ttl"`
}

type MinIOConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	UseSSL    bool   `mapstructure:"use_ssl"`
	Bucket    string `mapstructure:"bucket"`
	// PublicBaseURL overrides the URL prefix for stored objects; defaults to
	// the endpoint itself.
	PublicBaseURL string `mapstructure:"public_base_url"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func LoadConfig(path string) (*Config, error) {
	viper.SetConfigFile(path)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.setDefaults()

	return &config, nil
}

func (c *Config) setDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Search.SiteScope == "" {
		c.Search.SiteScope = "mutopiaproject.org"
	}
	if c.Search.MaxResults == 0 {
		c.Search.MaxResults = 10
	}
	if c.Render.Mode == "" {
		c.Render.Mode = "placeholder"
	}
	if c.Render.MaxFetchBytes == 0 {
		c.Render.MaxFetchBytes = 32 << 20
	}
	if c.Render.FetchTimeout == 0 {
		c.Render.FetchTimeout = 30
	}
	if c.Render.DPI == 0 {
		c.Render.DPI = 150
	}
}
