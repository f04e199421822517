package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	StripeSecretKey string
	CheckoutSuccess string
	CheckoutCancel  string

	// flat platform fee applied on top of the package price
	PlatformFeeRate decimal.Decimal
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBSource:        getEnv("DB_SOURCE", "flexihire.db"),
		Port:            getEnv("PORT", "8000"),
		JWTSecret:       getEnv("JWT_SECRET", "changeme"),
		JWTTTL:          24 * time.Hour,
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		CheckoutSuccess: getEnv("CHECKOUT_SUCCESS_URL", "http://localhost:3000/orders/success"),
		CheckoutCancel:  getEnv("CHECKOUT_CANCEL_URL", "http://localhost:3000/orders/cancel"),
		PlatformFeeRate: decimal.NewFromFloat(0.10),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
