package config

// EnvPrefix namespaces every environment variable consumed by the app.
const EnvPrefix = "KTUCRM"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names, kept in one place so tests and docs can
// reference them without string drift.
const (
	EnvAppEnv         = "KTUCRM_APP_ENV"
	EnvPort           = "KTUCRM_APP_PORT"
	EnvLogLevel       = "KTUCRM_LOG_LEVEL"
	EnvBackendBaseURL = "KTUCRM_BACKEND_BASE_URL"
	EnvBackendTimeout = "KTUCRM_BACKEND_REQUEST_TIMEOUT"
	EnvRedisURL       = "KTUCRM_REDIS_URL"
	EnvPermissionFlag = "KTUCRM_PERMISSION_CHECK_ENABLED"
)
