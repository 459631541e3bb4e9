package config

// EnvPrefix is passed to envconfig; individual fields carry explicit names so
// the prefix stays empty.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	EnvAppEnv     = "INVENTORY_APP_ENV"
	EnvPort       = "INVENTORY_APP_PORT"
	EnvDBDSN      = "INVENTORY_DB_DSN"
	EnvDBHost     = "INVENTORY_DB_HOST"
	EnvDBUser     = "INVENTORY_DB_USER"
	EnvDBName     = "INVENTORY_DB_NAME"
	EnvUseSQLite  = "INVENTORY_USE_SQLITE"
	EnvSQLitePath = "INVENTORY_DB_SQLITE_PATH"
)

var requiredDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
