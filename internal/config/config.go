package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Template TemplateConfig
	Redis    RedisConfig
	Upload   UploadConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// TemplateConfig describes the card artwork and its layout: where the photo
// goes, where the text boxes sit, and which fonts to draw with. Defaults
// match the bundled template artwork.
type TemplateConfig struct {
	Path string

	PhotoSlot SlotConfig

	NameBox        BoxConfig
	DesignationBox BoxConfig
	MinFontSize    float64

	NameFontPath        string
	DesignationFontPath string

	NameColor        string
	DesignationColor string

	QRX    int
	QRY    int
	QRSize int
}

type SlotConfig struct {
	X      int
	Y      int
	Width  int
	Height int
}

type BoxConfig struct {
	X1          int
	X2          int
	Y1          int
	Y2          int
	MaxFontSize float64
}

type RedisConfig struct {
	Addr          string
	Password      string
	DB            int
	CacheDuration time.Duration
}

type UploadConfig struct {
	MaxFileSize int64
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getDuration("READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDuration("WRITE_TIMEOUT", 10*time.Second),
		},
		Template: TemplateConfig{
			Path: getEnv("TEMPLATE_PATH", "assets/template.png"),
			PhotoSlot: SlotConfig{
				X:      getEnvAsInt("SLOT_X", 245),
				Y:      getEnvAsInt("SLOT_Y", 85),
				Width:  getEnvAsInt("SLOT_W", 600),
				Height: getEnvAsInt("SLOT_H", 800),
			},
			NameBox: BoxConfig{
				X1:          getEnvAsInt("NAME_BOX_X1", 288),
				X2:          getEnvAsInt("NAME_BOX_X2", 790),
				Y1:          getEnvAsInt("NAME_BOX_Y1", 705),
				Y2:          getEnvAsInt("NAME_BOX_Y2", 790),
				MaxFontSize: getEnvAsFloat("NAME_MAX_FONT", 66),
			},
			DesignationBox: BoxConfig{
				X1:          getEnvAsInt("DESG_BOX_X1", 367),
				X2:          getEnvAsInt("DESG_BOX_X2", 712),
				Y1:          getEnvAsInt("DESG_BOX_Y1", 807),
				Y2:          getEnvAsInt("DESG_BOX_Y2", 855),
				MaxFontSize: getEnvAsFloat("DESG_MAX_FONT", 32),
			},
			MinFontSize:         getEnvAsFloat("MIN_FONT_SIZE", 12),
			NameFontPath:        getEnv("NAME_FONT_PATH", ""),
			DesignationFontPath: getEnv("DESG_FONT_PATH", ""),
			NameColor:           getEnv("NAME_COLOR", "#FFFFFF"),
			DesignationColor:    getEnv("DESG_COLOR", "#000000"),
			QRX:                 getEnvAsInt("QR_X", 40),
			QRY:                 getEnvAsInt("QR_Y", 40),
			QRSize:              getEnvAsInt("QR_SIZE", 120),
		},
		Redis: RedisConfig{
			Addr:          getEnv("REDIS_ADDR", ""),
			Password:      getEnv("REDIS_PASSWORD", ""),
			DB:            getEnvAsInt("REDIS_DB", 0),
			CacheDuration: getDuration("CACHE_DURATION", 24*time.Hour),
		},
		Upload: UploadConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10*1024*1024), // 10MB
		},
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsInt64(key string, defaultVal int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsFloat(key string, defaultVal float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultVal
}
