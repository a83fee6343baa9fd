package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Data files; relative paths resolve under DataDir
	DataDir     string
	LevelDir    string
	BankAllFile string // canonical aggregate
	BankFile    string // alias the app loads from

	DBPath   string
	MediaDir string

	CORSOrigins    []string
	LevelReaders   int
	RebuildOnStart bool
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:   mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout: mustGetDuration("SHUTDOWN_TIMEOUT"),
		DataDir:         getenvDefault("DATA_DIR", "."),
		LevelDir:        getenvDefault("LEVEL_DIR", "levels"),
		BankAllFile:     getenvDefault("BANK_ALL_FILE", "questions_all.csv"),
		BankFile:        getenvDefault("BANK_FILE", "questions.csv"),
		DBPath:          getenvDefault("DB_PATH", "wordboard.db"),
		MediaDir:        getenvDefault("MEDIA_DIR", "media"),
		CORSOrigins:     csvOr("CORS_ORIGINS", "*"),
		LevelReaders:    envInt("LEVEL_READERS", 4),
		RebuildOnStart:  envBool("REBUILD_ON_START", true),
	}
}

func (c *Config) LevelPath() string { return c.resolve(c.LevelDir) }
func (c *Config) BankAllPath() string { return c.resolve(c.BankAllFile) }
func (c *Config) BankPath() string { return c.resolve(c.BankFile) }
func (c *Config) MediaPath() string { return c.resolve(c.MediaDir) }
func (c *Config) DBFilePath() string { return c.resolve(c.DBPath) }

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.DataDir, p)
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		log.Printf("config: %s=%q is not a positive integer, using %d", k, v, def)
		return def
	}
	return n
}

func csvOr(k, def string) []string {
	v := getenvDefault(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
