package config

// EnvPrefix scopes every environment variable this service reads.
const EnvPrefix = "HOMAZON"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv     = "HOMAZON_APP_ENV"
	EnvPort       = "HOMAZON_APP_PORT"
	EnvDBDSN      = "HOMAZON_DB_DSN"
	EnvDBHost     = "HOMAZON_DB_HOST"
	EnvDBUser     = "HOMAZON_DB_USER"
	EnvDBName     = "HOMAZON_DB_NAME"
	EnvRedisURL   = "HOMAZON_REDIS_URL"
	EnvJWTSecret  = "HOMAZON_JWT_SECRET"
	EnvJWTIssuer  = "HOMAZON_JWT_ISSUER"
	EnvJWTExpMins = "HOMAZON_JWT_EXPIRATION_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
