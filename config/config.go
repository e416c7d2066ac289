package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// DefaultJWTSecret is what the server signs tokens with when JWT_SECRET is
// unset. It is deliberately kept (and warned about) rather than generated:
// a random secret would invalidate every issued token on restart.
const DefaultJWTSecret = "cambiame_por_algo_muy_secreto"

// Config carries everything the process reads from its environment. It is
// built once in main and handed to each component at construction.
type Config struct {
	Port      string
	JWTSecret []byte
	DBPath    string
}

// Load reads the environment (and an optional .env file) into a Config.
func Load() *Config {
	godotenv.Load()

	cfg := &Config{
		Port:      getenv("PORT", "3000"),
		JWTSecret: []byte(getenv("JWT_SECRET", DefaultJWTSecret)),
		DBPath:    getenv("DB_PATH", "agrokit.db"),
	}
	if string(cfg.JWTSecret) == DefaultJWTSecret {
		log.Println("WARNING: JWT_SECRET not set, using the insecure default")
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
