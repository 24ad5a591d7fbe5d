package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/jkalnins/daybook/internal/server"
	"github.com/jkalnins/daybook/internal/server/config"
)

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg := config.LoadConfig()

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run()
}
