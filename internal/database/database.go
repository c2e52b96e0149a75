package database

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

func Connect() (*sql.DB, error) {
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "quiz_user")
	password := getEnv("DB_PASSWORD", "quiz_password")
	dbname := getEnv("DB_NAME", "spanish_quiz")
	sslmode := getEnv("DB_SSLMODE", "disable")

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

func Migrate(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		name VARCHAR(255) NOT NULL,
		password VARCHAR(255) NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);

	CREATE TABLE IF NOT EXISTS quizzes (
		id         VARCHAR(100) PRIMARY KEY,
		config     JSONB NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS participants (
		id           BIGSERIAL PRIMARY KEY,
		quiz_id      VARCHAR(100) NOT NULL REFERENCES quizzes(id) ON DELETE CASCADE,
		name         VARCHAR(255) NOT NULL DEFAULT '',
		email        VARCHAR(255) NOT NULL DEFAULT '',
		level_id     VARCHAR(50) NOT NULL,
		level_title  VARCHAR(255) NOT NULL,
		score        INT NOT NULL DEFAULT 0,
		accuracy     DECIMAL(5,2) NOT NULL DEFAULT 0,
		total_time   REAL NOT NULL DEFAULT 0,
		summary      JSONB NOT NULL,
		journey      JSONB NOT NULL,
		completed_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_participants_quiz ON participants(quiz_id, completed_at DESC);
	CREATE INDEX IF NOT EXISTS idx_participants_level ON participants(quiz_id, level_id);
	CREATE INDEX IF NOT EXISTS idx_participants_email ON participants(email);
	`

	_, err := db.Exec(query)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	// Idempotent for databases created before these columns existed.
	alterStatements := []string{
		`ALTER TABLE participants ADD COLUMN IF NOT EXISTS journey JSONB NOT NULL DEFAULT '{}'::jsonb`,
		`ALTER TABLE participants ADD COLUMN IF NOT EXISTS total_time REAL NOT NULL DEFAULT 0`,
	}

	for _, stmt := range alterStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("alter table failed: %w", err)
		}
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
