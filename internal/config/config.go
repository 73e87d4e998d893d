package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Admin  AdminConfig
	CORS   CORSConfig
	Order  OrderConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

// AdminConfig is the fixed credential pair guarding the admin area.
type AdminConfig struct {
	Username string
	Password string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// OrderConfig holds the fixed delays of the order status simulation.
type OrderConfig struct {
	AcceptDelay  time.Duration
	PrepareDelay time.Duration
	ReadyDelay   time.Duration
	ResetDelay   time.Duration
}

func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "admin123")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"})
	viper.SetDefault("ORDER_ACCEPT_DELAY", "2s")
	viper.SetDefault("ORDER_PREPARE_DELAY", "2s")
	viper.SetDefault("ORDER_READY_DELAY", "3s")
	viper.SetDefault("ORDER_RESET_DELAY", "3s")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	}

	return &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Env:  viper.GetString("SERVER_ENV"),
		},
		Admin: AdminConfig{
			Username: viper.GetString("ADMIN_USERNAME"),
			Password: viper.GetString("ADMIN_PASSWORD"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
		},
		Order: OrderConfig{
			AcceptDelay:  viper.GetDuration("ORDER_ACCEPT_DELAY"),
			PrepareDelay: viper.GetDuration("ORDER_PREPARE_DELAY"),
			ReadyDelay:   viper.GetDuration("ORDER_READY_DELAY"),
			ResetDelay:   viper.GetDuration("ORDER_RESET_DELAY"),
		},
	}
}
