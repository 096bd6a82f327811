// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config 收攏所有外部設定，啟動時載入一次後注入各元件，
// 元件內部不再直接讀取環境變數。
type Config struct {
	DatabaseURL      string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	JWTSecret        string
	JWTRefreshSecret string
	Port             int
	WorkerCount      int
}

// godotenvLoad 可在測試中覆寫。
var godotenvLoad = godotenv.Load

// Load 讀取環境變數（支援 .env 檔）並回傳 Config，缺少必要值時回傳錯誤。
func Load() (*Config, error) {
	// .env 不存在時忽略，正式環境直接吃環境變數
	_ = godotenvLoad()

	cfg := &Config{
		Port:        8080,
		WorkerCount: 1,
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}

	cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("環境變數 REDIS_ADDR 未設定")
	}
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("無效的 REDIS_DB: %v", err)
		}
		cfg.RedisDB = n
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("環境變數 JWT_SECRET 未設定")
	}
	cfg.JWTRefreshSecret = os.Getenv("JWT_REFRESH_SECRET")
	if cfg.JWTRefreshSecret == "" {
		return nil, fmt.Errorf("環境變數 JWT_REFRESH_SECRET 未設定")
	}
	if cfg.JWTSecret == cfg.JWTRefreshSecret {
		return nil, fmt.Errorf("JWT_SECRET 與 JWT_REFRESH_SECRET 不可相同")
	}

	if v := os.Getenv("PORT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("無效的 PORT: %v", v)
		}
		cfg.Port = n
	}

	if v := os.Getenv("WORKER_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("無效的 WORKER_COUNT: %v", v)
		}
		cfg.WorkerCount = n
	}

	return cfg, nil
}
