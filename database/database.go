package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"learnhub/config"
	"learnhub/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectStore opens the store selected by cfg.StoreDriver.
func ConnectStore(cfg *config.Config) (Store, error) {
	switch cfg.StoreDriver {
	case "", "memory":
		log.Println("[STORE] Using in-memory store")
		return NewMemoryStore(), nil
	case "redis":
		return connectRedis(cfg)
	case "sqlite", "postgres", "mysql":
		db, err := openGorm(cfg)
		if err != nil {
			return nil, err
		}
		return NewGormStore(db), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func openGorm(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.StoreDriver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DBName)
	case "postgres":
		dialector = postgres.Open(fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
		))
	case "mysql":
		dialector = mysql.Open(fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
		))
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.StoreDriver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	if err := runMigrations(db); err != nil {
		return nil, err
	}
	log.Printf("[STORE] Connected to %s", cfg.StoreDriver)
	return db, nil
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) error {
	log.Println("Running Migrations...")
	if err := db.AutoMigrate(&models.KVEntry{}); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	log.Println("Migrations completed successfully.")
	return nil
}

func connectRedis(cfg *config.Config) (Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	var err error
	maxRetries := 5
	for i := 1; i <= maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err = client.Ping(ctx).Err()
		cancel()
		if err == nil {
			break
		}
		log.Printf("[STORE] Waiting for Redis... (%d/%d)", i, maxRetries)
		time.Sleep(time.Second)
	}
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis after %d attempts: %w", maxRetries, err)
	}

	log.Printf("[STORE] Connected to Redis at %s", cfg.RedisAddr)
	return NewRedisStore(client, cfg.RedisPrefix), nil
}
