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
	user := getEnv("DB_USER", "study_user")
	password := getEnv("DB_PASSWORD", "study_password")
	dbname := getEnv("DB_NAME", "study_companion")
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
		id VARCHAR(36) PRIMARY KEY,
		username VARCHAR(50) UNIQUE NOT NULL,
		email VARCHAR(255),
		password VARCHAR(255) NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_users_username ON users(username);

	CREATE TABLE IF NOT EXISTS exam_records (
		id              BIGSERIAL PRIMARY KEY,
		user_id         VARCHAR(36) NOT NULL,
		exam_id         VARCHAR(36) NOT NULL,
		exam_type       VARCHAR(100) NOT NULL,
		questions       JSONB,
		total_questions INT NOT NULL DEFAULT 0,
		total_points    INT NOT NULL DEFAULT 0,
		score           INT NOT NULL DEFAULT 0,
		status          VARCHAR(20) NOT NULL DEFAULT 'created',
		created_at      TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_exam_records_user ON exam_records(user_id);
	CREATE INDEX IF NOT EXISTS idx_exam_records_lookup ON exam_records(user_id, exam_id);

	CREATE TABLE IF NOT EXISTS study_materials (
		id            BIGSERIAL PRIMARY KEY,
		user_id       VARCHAR(36) NOT NULL,
		material_id   VARCHAR(36) NOT NULL,
		material_type VARCHAR(30) NOT NULL,
		topic         VARCHAR(200) NOT NULL,
		content       TEXT NOT NULL,
		text_length   INT NOT NULL DEFAULT 0,
		created_at    TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_materials_user ON study_materials(user_id);
	CREATE INDEX IF NOT EXISTS idx_materials_lookup ON study_materials(user_id, material_id);

	CREATE TABLE IF NOT EXISTS flashcards (
		id         BIGSERIAL PRIMARY KEY,
		user_id    VARCHAR(36) NOT NULL,
		card_id    VARCHAR(36) NOT NULL,
		front      TEXT NOT NULL,
		back       TEXT NOT NULL,
		category   VARCHAR(200) NOT NULL,
		difficulty VARCHAR(20) NOT NULL DEFAULT 'Medium',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_flashcards_user ON flashcards(user_id);
	`

	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
