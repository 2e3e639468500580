package db

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // Регистрируем pgx драйвер для database/sql
)

// DefaultQueryTimeout таймаут запроса, пока настройка из БД не применена
const DefaultQueryTimeout = 5 * time.Second

// Config содержит настройки подключения к базе данных
type Config struct {
	DSN               string
	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
}

// NewConfig создает конфигурацию подключения к БД
func NewConfig(dsn string) *Config {
	return &Config{
		DSN:               dsn,
		MaxConns:          10,
		MinConns:          1,
		MaxConnLifetime:   time.Hour,
		MaxConnIdleTime:   time.Minute * 30,
		HealthCheckPeriod: time.Minute,
	}
}

// Connect создает пул подключений к PostgreSQL
func (c *Config) Connect(ctx context.Context) (Database, error) {
	if c.DSN == "" {
		return nil, fmt.Errorf("database DSN is required")
	}

	// sql.DB нужен только для миграций
	sqlDB, err := sql.Open("pgx", c.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open sql database: %w", err)
	}
	sqlDB.SetMaxOpenConns(2)
	sqlDB.SetConnMaxIdleTime(c.MaxConnIdleTime)

	poolConfig, err := pgxpool.ParseConfig(c.DSN)
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = c.MaxConns
	poolConfig.MinConns = c.MinConns
	poolConfig.MaxConnLifetime = c.MaxConnLifetime
	poolConfig.MaxConnIdleTime = c.MaxConnIdleTime
	poolConfig.HealthCheckPeriod = c.HealthCheckPeriod

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return NewDBAdapter(pool, sqlDB), nil
}

//go:generate mockery --name Database

// Database интерфейс для работы с базой данных
type Database interface {
	Ping(ctx context.Context) error
	Close()
	// Возвращает *sql.DB для миграций
	DB() *sql.DB
	// SetQueryTimeout меняет таймаут запросов во время работы
	SetQueryTimeout(d time.Duration)
}

// DBAdapter адаптер для pgxpool.Pool к Database интерфейсу
type DBAdapter struct {
	Pool         *pgxpool.Pool
	SQLDB        *sql.DB
	queryTimeout atomic.Int64
}

// NewDBAdapter создает новый адаптер
func NewDBAdapter(pool *pgxpool.Pool, sqlDB *sql.DB) *DBAdapter {
	a := &DBAdapter{
		Pool:  pool,
		SQLDB: sqlDB,
	}
	a.queryTimeout.Store(int64(DefaultQueryTimeout))
	return a
}

// Ping проверяет подключение
func (d *DBAdapter) Ping(ctx context.Context) error {
	return d.Pool.Ping(ctx)
}

// Close закрывает соединения
func (d *DBAdapter) Close() {
	d.Pool.Close()
	if d.SQLDB != nil {
		d.SQLDB.Close()
	}
}

// DB возвращает *sql.DB
func (d *DBAdapter) DB() *sql.DB {
	return d.SQLDB
}

// SetQueryTimeout задает таймаут для последующих запросов; неположительное значение игнорируется
func (d *DBAdapter) SetQueryTimeout(timeout time.Duration) {
	if timeout <= 0 {
		return
	}
	d.queryTimeout.Store(int64(timeout))
}

// QueryTimeout возвращает текущий таймаут запроса
func (d *DBAdapter) QueryTimeout() time.Duration {
	return time.Duration(d.queryTimeout.Load())
}

// WithTimeout ограничивает контекст текущим таймаутом запроса
func (d *DBAdapter) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, d.QueryTimeout())
}
