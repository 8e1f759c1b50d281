package main

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	JwtSecret string
	DBPath    string
}

func MustLoadConfig() *Config {
	godotenv.Load()
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		panic("JWT_SECRET is not provided!")
	}
	dbPath := os.Getenv("DB_PATH")
	return &Config{port, jwtSecret, dbPath}
}
