package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Gemini GeminiConfig
	Upload UploadConfig
	Roast  RoastConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type GeminiConfig struct {
	APIKey      string
	Model       string
	Temperature float32
}

type UploadConfig struct {
	SpoolPath   string
	MaxFileSize int64
}

type RoastConfig struct {
	Persona         string
	MinTextLength   int
	MaxTextLength   int
	MaxOutputTokens int32
}

// Persona variants for the roast system prompt.
const (
	PersonaComedian   = "comedian"
	PersonaStrategist = "strategist"
)

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using environment values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Gemini: GeminiConfig{
			APIKey:      getEnv("GEMINI_API_KEY", ""),
			Model:       getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			Temperature: getEnvAsFloat32("GEMINI_TEMPERATURE", 0.7),
		},
		Upload: UploadConfig{
			SpoolPath:   getEnv("UPLOAD_SPOOL_PATH", "./tmp/uploads"),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Roast: RoastConfig{
			Persona:         getEnv("ROAST_PERSONA", PersonaComedian),
			MinTextLength:   getEnvAsInt("MIN_TEXT_LENGTH", 100),
			MaxTextLength:   getEnvAsInt("MAX_TEXT_LENGTH", 50000),
			MaxOutputTokens: int32(getEnvAsInt("MAX_OUTPUT_TOKENS", 8192)),
		},
	}
}

// Validate rejects configurations the server cannot run with. The API key
// check happens here so a missing credential fails at startup rather than
// on the first upload.
func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}

	if c.Roast.Persona != PersonaComedian && c.Roast.Persona != PersonaStrategist {
		return fmt.Errorf("unknown ROAST_PERSONA %q (expected %q or %q)",
			c.Roast.Persona, PersonaComedian, PersonaStrategist)
	}

	if c.Upload.MaxFileSize <= 0 {
		return fmt.Errorf("MAX_FILE_SIZE must be positive")
	}

	if c.Roast.MinTextLength <= 0 || c.Roast.MaxTextLength < c.Roast.MinTextLength {
		return fmt.Errorf("invalid text length bounds: min=%d max=%d",
			c.Roast.MinTextLength, c.Roast.MaxTextLength)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 32); err == nil {
		return float32(value)
	}
	return defaultValue
}
