package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	UpstreamBaseURL  string
	UpstreamTimeout  time.Duration
	UpstreamMaxPages int
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	UpstreamBaseURL = GetEnv("UPSTREAM_BASE_URL")
	UpstreamTimeout = time.Duration(GetEnvInt("UPSTREAM_TIMEOUT_SECONDS", 10)) * time.Second
	UpstreamMaxPages = GetEnvInt("UPSTREAM_MAX_PAGES", 1000)

	if UpstreamBaseURL == "" {
		log.Println("❌ UPSTREAM_BASE_URL belum diset!")
	} else {
		log.Println("✅ UPSTREAM_BASE_URL berhasil dimuat.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// GetEnvInt: ambil ENV numerik, fallback ke default jika kosong/invalid.
func GetEnvInt(key string, defaultValue int) int {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Printf("⚠️ %s tidak valid (%q), pakai default %d", key, raw, defaultValue)
		return defaultValue
	}
	return n
}
