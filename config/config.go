package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"resto-pos-api/models"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Log is the process-wide structured logger
var Log *zap.Logger

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "resto_pos_super_secret_2026"))

// LockWaitTimeout bounds how long an order-creation transaction may wait on
// contended menu rows before the caller gets a retryable busy error
var LockWaitTimeout = time.Duration(getEnvInt("LOCK_WAIT_TIMEOUT", 5)) * time.Second

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func InitLogger() {
	var err error
	if os.Getenv("GIN_MODE") == "release" {
		Log, err = zap.NewProduction()
	} else {
		Log, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
}

// InitDB connects to Postgres when DATABASE_URL is set, otherwise to a local
// SQLite file (tests use an in-memory one via InitTestDB).
func InitDB() {
	var (
		dialector gorm.Dialector
		err       error
	)
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(getEnv("DB_PATH", "resto_pos.db"))
	}

	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		Log.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := migrate(DB); err != nil {
		Log.Fatal("Failed to migrate database", zap.Error(err))
	}

	Log.Info("Database connected and migrated")
}

// InitTestDB opens a fresh in-memory SQLite database, used by package tests
func InitTestDB() {
	if Log == nil {
		Log = zap.NewNop()
	}
	var err error
	DB, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatal("Failed to open test database:", err)
	}
	// Each new connection to :memory: is a distinct database, so pin the
	// pool to one connection; concurrent transactions queue on it.
	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatal("Failed to access test database pool:", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := migrate(DB); err != nil {
		log.Fatal("Failed to migrate test database:", err)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Table{},
		&models.MenuItem{},
		&models.Transaction{},
		&models.TransactionLine{},
	)
}
