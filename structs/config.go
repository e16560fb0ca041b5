package structs

import "time"

type Config struct {
	Server    *ServerConfig
	Cors      *CorsConfig
	Database  *DatabaseConfig
	Auth      *AuthConfig
	Email     *EmailConfig
	Cache     *CacheConfig
	RateLimit *RateLimitConfig
	Storage   *StorageConfig
	Quotes    *QuoteConfig
}

type ServerConfig struct {
	AppName        string        // TREE Uniformes
	Environment    string        // development, production
	Port           string        // :8080
	FrontendURL    string        // storefront origin, used in emails
	ReadTimeout    time.Duration // in seconds
	WriteTimeout   time.Duration // in seconds
	IdleTimeout    time.Duration // in seconds
	MaxHeaderBytes int           // in bytes
}

type CorsConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

type DatabaseConfig struct {
	URL          string // full DSN, takes precedence when set
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	MaxConns     int
	MinConns     int
	MaxLifetime  time.Duration // in seconds
	MaxIdleTime  time.Duration // in seconds
	ReadTimeout  time.Duration // in seconds
	WriteTimeout time.Duration // in seconds
}

type AuthConfig struct {
	AccessTokenSecret  string
	AccessTokenExpiry  time.Duration
	RefreshTokenSecret string
	RefreshTokenExpiry time.Duration
	CacheUserTTL       time.Duration
	BlacklistCacheTTL  time.Duration
}

type EmailConfig struct {
	ApiKey     string // Resend API key
	From       string // e.g. "TREE Uniformes <pedidos@treeuniformes.mx>"
	SalesEmail string // admin inbox for order/quote notifications
}

type CacheConfig struct {
	Address  string
	Username string
	Password string
	DB       int

	PoolSize     int
	MinIdleConns int
	MaxIdleConns int
	PoolTimeout  time.Duration
	IdleTimeout  time.Duration

	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	MaxRetries      int
	MinRetryBackoff time.Duration
	MaxRetryBackoff time.Duration

	ProductListTTL time.Duration
	LookupTTL      time.Duration
}

type RateLimitConfig struct {
	Enabled bool

	GeneralLimit  int
	GeneralWindow time.Duration

	AuthLimit  int
	AuthWindow time.Duration

	AdminLimit  int
	AdminWindow time.Duration

	ExpensiveLimit  int
	ExpensiveWindow time.Duration
}

type StorageConfig struct {
	Bucket        string
	Region        string
	UploadPrefix  string
	PresignExpiry time.Duration
}

type QuoteConfig struct {
	ValidityDays  int
	SweepInterval time.Duration
}
