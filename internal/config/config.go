package config

type Config interface {
	EnvConfig
	APIConfig
	StorageConfig
	CorsConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
	GetLogLevel() string
}

type APIConfig interface {
	GetAPIBaseURL() string
	GetTokenPath() string
	GetOIDCIssuer() string
}

type StorageConfig interface {
	GetDataFolder() string
	GetTokenPassphrase() string
}

type CorsConfig interface {
	GetAllowedOrigins() AllowedOrigins
	GetAllowedMethods() string
	GetAllowedHeaders() string
}

type mainConfig struct {
	EnvVars
	API
	Storage
	Cors
}

func New() Config {
	return mainConfig{}
}
