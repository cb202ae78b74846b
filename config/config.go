package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
)

type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type Config struct {
	Port        string
	DSN         string
	JWTSecret   string
	TokenTTLMin int
	CORSOrigins []string

	LogLevel string
	LogJSON  bool
	LogFile  string

	DBMaxOpenConns       int
	DBMaxIdleConns       int
	DBConnMaxLifetimeMin int

	S3 S3Config
}

func Load() (*Config, error) {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:                 envOrDefault("PORT", "8080"),
		DSN:                  dsn,
		JWTSecret:            strings.TrimSpace(os.Getenv("JWT_SECRET")),
		TokenTTLMin:          envIntOrDefault("TOKEN_TTL_MIN", 60),
		CORSOrigins:          parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
		LogLevel:             envOrDefault("LOG_LEVEL", "info"),
		LogJSON:              envBool("LOG_JSON"),
		LogFile:              strings.TrimSpace(os.Getenv("LOG_FILE")),
		DBMaxOpenConns:       envIntOrDefault("DB_MAX_OPEN", 25),
		DBMaxIdleConns:       envIntOrDefault("DB_MAX_IDLE", 5),
		DBConnMaxLifetimeMin: envIntOrDefault("DB_CONN_LIFETIME_MIN", 30),
		S3: S3Config{
			Endpoint:  strings.TrimSpace(os.Getenv("S3_ENDPOINT")),
			AccessKey: os.Getenv("S3_ACCESS_KEY"),
			SecretKey: os.Getenv("S3_SECRET_KEY"),
			Bucket:    os.Getenv("S3_BUCKET"),
			UseSSL:    envBool("S3_USE_SSL"),
		},
	}
	return cfg, nil
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func envIntOrDefault(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func envBool(key string) bool {
	v, _ := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	return v
}

func parseCORSOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// resolveMySQLDSN accepts either a mysql:// URL in MYSQL_URL/DATABASE_URL or
// the discrete DB_* variables, and produces a go-sql-driver DSN.
func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}
	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		// Assume the value already is a driver DSN.
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := os.Getenv("DB_PASS")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	name := envOrDefault("DB_NAME", "akkor_hotel")

	return buildDSN(user, pass, host+":"+port, name, url.Values{}), nil
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	name := strings.TrimPrefix(u.Path, "/")
	if name == "" {
		return "", fmt.Errorf("mysql url %q is missing a database name", raw)
	}

	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	user := u.User.Username()
	pass, _ := u.User.Password()

	return buildDSN(user, pass, host+":"+port, name, u.Query()), nil
}

func buildDSN(user, pass, addr, name string, params url.Values) string {
	cfg := mysql.NewConfig()
	cfg.User = user
	cfg.Passwd = pass
	cfg.Net = "tcp"
	cfg.Addr = addr
	cfg.DBName = name
	cfg.ParseTime = true

	if charset := params.Get("charset"); charset != "" {
		cfg.Params = map[string]string{"charset": charset}
	} else {
		cfg.Params = map[string]string{"charset": "utf8mb4"}
	}
	return cfg.FormatDSN()
}
