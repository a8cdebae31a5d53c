package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Attendance AttendanceConfig
	Payroll    PayrollConfig
	Telegram   TelegramConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// AttendanceConfig holds the attendance status-engine tunables.
// LateAfter is the time-of-day ("15:04") after which a full-day
// check-in counts as Late; AutoAbsentAfter is the earliest
// time-of-day at which the auto-absent batch may run.
type AttendanceConfig struct {
	LateAfter       string
	AutoAbsentAfter string
}

// PayrollConfig holds the fallback amounts used by the monthly run
// when an employee has no configured basic salary.
type PayrollConfig struct {
	DefaultBasicSalary decimal.Decimal
	DefaultAllowances  decimal.Decimal
	DefaultDeductions  decimal.Decimal
}

type TelegramConfig struct {
	BotToken string
	ChatID   int64
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "staffhub"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	// Attendance status engine
	config.Attendance = AttendanceConfig{
		LateAfter:       getEnv("ATTENDANCE_LATE_AFTER", "09:30"),
		AutoAbsentAfter: getEnv("ATTENDANCE_AUTO_ABSENT_AFTER", "12:00"),
	}

	// Payroll defaults
	defaultBasic, err := decimal.NewFromString(getEnv("PAYROLL_DEFAULT_BASIC_SALARY", "5000"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_DEFAULT_BASIC_SALARY: %w", err)
	}
	defaultAllowances, err := decimal.NewFromString(getEnv("PAYROLL_DEFAULT_ALLOWANCES", "500"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_DEFAULT_ALLOWANCES: %w", err)
	}
	defaultDeductions, err := decimal.NewFromString(getEnv("PAYROLL_DEFAULT_DEDUCTIONS", "200"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_DEFAULT_DEDUCTIONS: %w", err)
	}

	config.Payroll = PayrollConfig{
		DefaultBasicSalary: defaultBasic,
		DefaultAllowances:  defaultAllowances,
		DefaultDeductions:  defaultDeductions,
	}

	// Telegram notifications (optional)
	chatID, _ := strconv.ParseInt(getEnv("TELEGRAM_CHAT_ID", "0"), 10, 64)
	config.Telegram = TelegramConfig{
		BotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		ChatID:   chatID,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.Parse("15:04", c.Attendance.LateAfter); err != nil {
		return fmt.Errorf("invalid ATTENDANCE_LATE_AFTER: %w", err)
	}
	if _, err := time.Parse("15:04", c.Attendance.AutoAbsentAfter); err != nil {
		return fmt.Errorf("invalid ATTENDANCE_AUTO_ABSENT_AFTER: %w", err)
	}
	if c.Payroll.DefaultBasicSalary.IsNegative() ||
		c.Payroll.DefaultAllowances.IsNegative() ||
		c.Payroll.DefaultDeductions.IsNegative() {
		return fmt.Errorf("payroll default amounts must be non-negative")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
