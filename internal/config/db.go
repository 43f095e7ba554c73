package config

// Supported gorm engines.
const (
	EnginePostgres = "postgres"
	EngineMySQL    = "mysql"
	EngineSQLite   = "sqlite"
)

// DB holds the database configuration settings.
type DB struct {
	URL        string // full connection url, wins over the discrete fields (DATABASE_URL)
	Extras     string
	Host       string
	Port       int
	User       string
	Password   string
	Name       string
	SSLMode    string
	GormEngine string
	Path       string // sqlite database file
	Debug      bool   // log every sql statement
}
