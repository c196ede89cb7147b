package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	AppPort    string        // Application port
	DBUser     string        // Database user
	DBPassword string        // Database password
	DBHost     string        // Database host
	DBPort     string        // Database port
	DBName     string        // Database name
	JWTSecret  string        // JWT signing secret
	TokenTTL   time.Duration // Bearer token lifetime
	RedisAddr  string        // Redis server address
	RedisPass  string        // Redis password
	RedisDB    int           // Redis database number
	IsProd     bool          // Is production environment

	PushInterval time.Duration // Live odds push cadence

	Bank BankDetails // Manual bank-transfer instructions
}

// BankDetails is the static payload served on the manual payment
// details endpoint.
type BankDetails struct {
	BankName      string `json:"bankName"`
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
	IFSC          string `json:"ifsc"`
	UPIID         string `json:"upiId"`
	Note          string `json:"note"`
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		AppPort:      getEnv("APP_PORT", "5000"),
		DBUser:       os.Getenv("DB_USER"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBHost:       os.Getenv("DB_HOST"),
		DBPort:       os.Getenv("DB_PORT"),
		DBName:       os.Getenv("DB_NAME"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		TokenTTL:     getDuration("TOKEN_TTL", 24*time.Hour),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		RedisPass:    os.Getenv("REDIS_PASS"),
		RedisDB:      redisDB,
		IsProd:       os.Getenv("IS_PROD") == "true",
		PushInterval: getDuration("ODDS_PUSH_INTERVAL", 5*time.Second),
		Bank: BankDetails{
			BankName:      getEnv("BANK_NAME", "FastMoney Bank"),
			AccountName:   getEnv("BANK_ACCOUNT_NAME", "FastMoney Games Pvt Ltd"),
			AccountNumber: getEnv("BANK_ACCOUNT_NUMBER", "1234567890"),
			IFSC:          getEnv("BANK_IFSC", "FAST0001234"),
			UPIID:         getEnv("BANK_UPI_ID", "fastmoney@upi"),
			Note:          getEnv("BANK_NOTE", "Send UTR/reference number through support after payment."),
		},
	}
}

// DSN builds the MySQL data source name from the DB fields.
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
