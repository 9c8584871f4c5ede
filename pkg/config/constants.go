package config

// EnvPrefix scopes every environment variable the service reads.
const EnvPrefix = "MOBIMART"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const (
	EnvDBDSN  = "MOBIMART_DB_DSN"
	EnvDBHost = "MOBIMART_DB_HOST"
	EnvDBUser = "MOBIMART_DB_USER"
	EnvDBName = "MOBIMART_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
