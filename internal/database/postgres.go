package database

import (
	"database/sql"
	"log"
	"time"

	_ "github.com/lib/pq"
)

var PostgresDB *sql.DB

// ConnectPostgres connects to PostgreSQL database
func ConnectPostgres(postgresURI string) error {
	var err error

	PostgresDB, err = sql.Open("postgres", postgresURI)
	if err != nil {
		return err
	}

	// Set connection pool settings
	PostgresDB.SetMaxOpenConns(25)
	PostgresDB.SetMaxIdleConns(5)
	PostgresDB.SetConnMaxLifetime(5 * time.Minute)

	// Test connection
	if err = PostgresDB.Ping(); err != nil {
		return err
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize tables
	if err = InitPostgresTables(); err != nil {
		return err
	}

	return nil
}

// InitPostgresTables creates all necessary tables if they don't exist
func InitPostgresTables() error {
	queries := []string{
		// Users table (credentials only, public data lives in profiles)
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			username VARCHAR(30) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			is_active BOOLEAN NOT NULL DEFAULT TRUE
		)`,

		// Profiles table (one per user, public-facing data)
		`CREATE TABLE IF NOT EXISTS profiles (
			id UUID PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
			username VARCHAR(30) NOT NULL UNIQUE,
			name VARCHAR(100) NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			avatar_url TEXT NOT NULL DEFAULT '',
			prayer_req TEXT NOT NULL DEFAULT '',
			prayer_req_display BOOLEAN NOT NULL DEFAULT FALSE,
			life_verse_display BOOLEAN NOT NULL DEFAULT FALSE,
			life_verse_book VARCHAR(30),
			life_verse_chapter INTEGER,
			life_verse_start INTEGER,
			life_verse_end INTEGER
		)`,

		// Notes table (one TAWG entry per row)
		`CREATE TABLE IF NOT EXISTS notes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
			title VARCHAR(50) NOT NULL DEFAULT '',
			public_notes_content TEXT,
			private_notes_content TEXT,
			public_prayer_content TEXT,
			private_prayer_content TEXT,
			visibility VARCHAR(20) NOT NULL DEFAULT 'public_all',
			pdf_url TEXT,
			mem_verse_display BOOLEAN NOT NULL DEFAULT FALSE,
			mem_verse_book VARCHAR(30),
			mem_verse_chapter INTEGER,
			mem_verse_start INTEGER,
			mem_verse_end INTEGER
		)`,

		// Chapters read during one entry
		`CREATE TABLE IF NOT EXISTS note_references (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			note_id UUID NOT NULL REFERENCES notes(id) ON DELETE CASCADE,
			book VARCHAR(30) NOT NULL,
			chapter INTEGER NOT NULL
		)`,

		// Friendships, stored as a mirrored pair of directed rows
		`CREATE TABLE IF NOT EXISTS friends (
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			friend_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			PRIMARY KEY (user_id, friend_id)
		)`,

		// Pending friend requests (row existence is the pending state)
		`CREATE TABLE IF NOT EXISTS friend_requests (
			sender_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			receiver_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			PRIMARY KEY (sender_id, receiver_id)
		)`,

		// Create indexes for better performance
		`CREATE INDEX IF NOT EXISTS idx_users_username_lower ON users(LOWER(username))`,
		`CREATE INDEX IF NOT EXISTS idx_profiles_username ON profiles(username)`,
		`CREATE INDEX IF NOT EXISTS idx_notes_user_id ON notes(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_notes_created_at ON notes(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_notes_visibility ON notes(visibility)`,
		`CREATE INDEX IF NOT EXISTS idx_note_references_note_id ON note_references(note_id)`,
		`CREATE INDEX IF NOT EXISTS idx_friends_user_id ON friends(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_friend_requests_receiver_id ON friend_requests(receiver_id)`,
	}

	for _, query := range queries {
		if _, err := PostgresDB.Exec(query); err != nil {
			return err
		}
	}

	log.Println("✅ PostgreSQL tables initialized")
	return nil
}

// DisconnectPostgres closes the PostgreSQL connection
func DisconnectPostgres() error {
	if PostgresDB != nil {
		return PostgresDB.Close()
	}
	return nil
}
