package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/vietanh2810/raffle-api/cmd/app"
)

// @title       Raffle API
// @version     1.0
// @description Ticket allocation and purchase ledger for charity raffles.
// @BasePath    /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token issued by the identity provider
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
