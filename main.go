package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"learnhub/app"
	"learnhub/config"
	"learnhub/database"
	"learnhub/utils"
)

func main() {
	config.LoadConfig()

	store, err := database.ConnectStore(config.AppConfig)
	if err != nil {
		log.Fatalf("Failed to connect to store: %v", err)
	}

	scheduler := utils.NewCronScheduler()

	application, err := app.New(context.Background(), config.AppConfig, store, scheduler)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	server := application.Router()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			log.Printf("Error shutting down server: %v", err)
		}
	}()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	if err := server.Listen(":" + config.AppConfig.Port); err != nil {
		log.Printf("Server stopped: %v", err)
	}

	application.Close()
	scheduler.Stop()
	if err := store.Close(); err != nil {
		log.Printf("Error closing store: %v", err)
	}
	log.Println("Server exited")
}
