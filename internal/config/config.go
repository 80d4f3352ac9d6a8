package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config contiene la configuración del servidor leída del entorno
type Config struct {
	ServerPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Origen único permitido para CORS
	CORSOrigin string
}

// LoadConfig carga la configuración desde variables de entorno, leyendo antes
// un archivo .env si existe
func LoadConfig() (*Config, error) {
	// El .env es opcional; en producción las variables vienen del entorno
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: getEnvOrDefault("SERVER_PORT", "5000"),
		DBHost:     getEnvOrDefault("DB_HOST", "127.0.0.1"),
		DBPort:     getEnvOrDefault("DB_PORT", "5432"),
		DBUser:     getEnvOrDefault("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnvOrDefault("DB_NAME", "bdrecepcion"),
		DBSSLMode:  getEnvOrDefault("DB_SSLMODE", "disable"),
		CORSOrigin: getEnvOrDefault("CORS_ORIGIN", "http://localhost:3000"),
	}

	if cfg.DBName == "" {
		return nil, fmt.Errorf("DB_NAME no puede estar vacío")
	}

	return cfg, nil
}

// GetDBConnString construye la cadena de conexión para lib/pq
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
