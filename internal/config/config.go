package config

import (
	"fmt"
	"os"
)

type Config struct {
	Env      string
	HTTPAddr string
	Version  string
	Database DatabaseConfig
	Storage  StorageConfig
	Registry RegistryConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// StorageConfig selects the record and blob backends for the process.
// Any pairing is legal; the submission pipeline only sees the interfaces.
// DSN renders the lib/pq connection string for the named database. An empty
// name targets the configured database.
func (d DatabaseConfig) DSN(dbName string) string {
	if dbName == "" {
		dbName = d.Name
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, dbName, d.SSLMode,
	)
}

type StorageConfig struct {
	RecordDriver string // postgres | sqlite | csv | memory
	BlobDriver   string // s3 | fs | memory
	SQLitePath   string
	CSVPath      string
	FSRoot       string
	S3           S3Config
}

type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	PathStyle bool
}

type RegistryConfig struct {
	// File optionally overrides the compiled-in checkpoint table
	// with a JSON map of id -> {grupo, local}.
	File string
}

func Load() *Config {
	return &Config{
		Env:      getEnv("ENV", "development"),
		HTTPAddr: normalizeAddr(getEnv("HTTP_ADDR", ":8080")),
		Version:  getEnv("APP_VERSION", "dev"),
		Database: DatabaseConfig{
			Host:     getEnv("DATABASE_HOST", "localhost"),
			Port:     getEnv("DATABASE_PORT", "5432"),
			User:     getEnv("DATABASE_USER", "postgres"),
			Password: getEnv("DATABASE_PASSWORD", "postgres"),
			Name:     getEnv("DATABASE_NAME", "rondas"),
			SSLMode:  getEnv("DATABASE_SSL_MODE", "disable"),
		},
		Storage: StorageConfig{
			RecordDriver: getEnv("RECORD_DRIVER", "postgres"),
			BlobDriver:   getEnv("BLOB_DRIVER", "fs"),
			SQLitePath:   getEnv("SQLITE_PATH", "rondas.db"),
			CSVPath:      getEnv("CSV_PATH", "rondas.csv"),
			FSRoot:       getEnv("BLOB_FS_ROOT", "./fotos"),
			S3: S3Config{
				Bucket:    getEnv("BLOB_S3_BUCKET", ""),
				Region:    getEnv("BLOB_S3_REGION", "us-east-1"),
				Endpoint:  getEnv("BLOB_S3_ENDPOINT", ""),
				PathStyle: getEnv("BLOB_S3_PATH_STYLE", "false") == "true",
			},
		},
		Registry: RegistryConfig{
			File: getEnv("REGISTRY_FILE", ""),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func normalizeAddr(addr string) string {
	if addr == "" {
		return addr
	}

	if addr[0] == ':' || addr[0] == '[' {
		return addr
	}

	for _, r := range addr {
		if r < '0' || r > '9' {
			return addr
		}
	}

	return ":" + addr
}
