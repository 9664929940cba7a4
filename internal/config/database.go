package config

import (
	"time"

	"leearn-backend/internal/infrastructure/database"
)

// LoadDatabaseConfig maps the application config onto the pool config used
// by the database infrastructure.
func (c *Config) LoadDatabaseConfig() *database.DBConfig {
	return &database.DBConfig{
		Host:     c.Database.Host,
		Port:     c.Database.Port,
		Username: c.Database.User,
		Password: c.Database.Password,
		DBName:   c.Database.Database,
		SSLMode:  c.Database.SSLMode,

		MaxConns:          int32(c.Database.MaxConns),
		MinConns:          int32(c.Database.MinConns),
		MaxConnLifetime:   time.Hour,
		MaxConnIdleTime:   30 * time.Minute,
		HealthCheckPeriod: time.Minute,

		MaxRetries:     5,
		RetryDelay:     time.Second,
		ConnectTimeout: 10 * time.Second,
	}
}
