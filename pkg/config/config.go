package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// OTP settings for registration / password reset flows
	OTPExpiryDuration time.Duration
	OTPDigits         int

	// Rate limit applied to the auth endpoints, in ulule/limiter format (e.g. "10-M")
	AuthRateLimit string

	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "karobar-backend")
	viper.SetDefault("OTP_EXPIRY_DURATION", "10m")
	viper.SetDefault("OTP_DIGITS", 6)
	viper.SetDefault("AUTH_RATE_LIMIT", "10-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiry, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiry = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiry)
	}
	cfg.JWTExpiryDuration = jwtExpiry
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	otpExpiryStr := viper.GetString("OTP_EXPIRY_DURATION")
	otpExpiry, err := time.ParseDuration(otpExpiryStr)
	if err != nil {
		otpExpiry = 10 * time.Minute
		log.Printf("Warning: Invalid value for OTP_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", otpExpiryStr, otpExpiry)
	}
	cfg.OTPExpiryDuration = otpExpiry

	cfg.OTPDigits = viper.GetInt("OTP_DIGITS")
	if cfg.OTPDigits < 4 || cfg.OTPDigits > 10 {
		log.Printf("Warning: OTP_DIGITS out of range (%d). Defaulting to 6.\n", cfg.OTPDigits)
		cfg.OTPDigits = 6
	}

	cfg.AuthRateLimit = viper.GetString("AUTH_RATE_LIMIT")
	cfg.CORSAllowedOrigins = viper.GetStringSlice("CORS_ALLOWED_ORIGINS")

	return cfg, nil
}
