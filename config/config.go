package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	ServiceName         string
	JaegerAddress       string
	AmadeusBaseURL      string
	AmadeusClientID     string
	AmadeusClientSecret string
	HotelOfferLimit     int
	EmailFrom           string
	EmailReceiver       string
	SMTPHost            string
	SMTPPort            int
	SMTPUser            string
	SMTPPass            string
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		fmt.Println("No .env file found, reading configuration from environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	baseURL := os.Getenv("AMADEUS_BASE_URL")
	if baseURL == "" {
		baseURL = "https://test.api.amadeus.com"
	}

	hotelLimit := 20
	if v := os.Getenv("HOTEL_OFFER_LIMIT"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			fmt.Printf("Invalid HOTEL_OFFER_LIMIT %q, using default 20\n", v)
		} else {
			hotelLimit = parsed
		}
	}

	smtpPort := 587
	if v := os.Getenv("SMTP_PORT"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			fmt.Printf("Couldn't convert SMTP_PORT to int: %v\n", err)
		} else {
			smtpPort = parsed
		}
	}

	receiver := os.Getenv("EMAIL_RECEIVER")
	if receiver == "" {
		receiver = os.Getenv("EMAIL_FROM")
	}

	return &Config{
		Port:                port,
		ServiceName:         "booking-intake-service",
		JaegerAddress:       os.Getenv("JAEGER_ADDRESS"),
		AmadeusBaseURL:      baseURL,
		AmadeusClientID:     os.Getenv("AMADEUS_CLIENT_ID"),
		AmadeusClientSecret: os.Getenv("AMADEUS_CLIENT_SECRET"),
		HotelOfferLimit:     hotelLimit,
		EmailFrom:           os.Getenv("EMAIL_FROM"),
		EmailReceiver:       receiver,
		SMTPHost:            os.Getenv("SMTP_HOST"),
		SMTPPort:            smtpPort,
		SMTPUser:            os.Getenv("SMTP_USER"),
		SMTPPass:            os.Getenv("SMTP_PASS"),
	}
}
