package services

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/tawg-app/tawg-backend/internal/database"
	"github.com/tawg-app/tawg-backend/internal/models"
	"github.com/tawg-app/tawg-backend/pkg/utils"
)

// CreateUser inserts the credentials row and the profile row in one
// transaction. Returns ErrUsernameTaken on a username conflict.
func CreateUser(username, passwordHash string) (uuid.UUID, error) {
	tx, err := database.PostgresDB.Begin()
	if err != nil {
		return uuid.Nil, err
	}
	defer tx.Rollback()

	userID := uuid.New()
	_, err = tx.Exec(`
		INSERT INTO users (id, username, password_hash, created_at, is_active)
		VALUES ($1, $2, $3, NOW(), TRUE)
	`, userID, username, passwordHash)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return uuid.Nil, ErrUsernameTaken
	}
	if err != nil {
		return uuid.Nil, err
	}

	_, err = tx.Exec(`
		INSERT INTO profiles (id, username, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
	`, userID, username)
	if err != nil {
		return uuid.Nil, err
	}

	return userID, tx.Commit()
}

// UsernameExists reports whether a username is taken, case-insensitively.
func UsernameExists(username string) (bool, error) {
	var exists bool
	err := database.PostgresDB.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(username) = LOWER($1))
	`, username).Scan(&exists)
	return exists, err
}

// GenerateUniqueUsername builds random adjective_animal usernames until one
// is free. The anonymity-friendly default identity for new accounts.
func GenerateUniqueUsername() (string, error) {
	for {
		username := utils.RandomUsername()
		taken, err := UsernameExists(username)
		if err != nil {
			return "", err
		}
		if !taken {
			return username, nil
		}
	}
}

// GetCredentials fetches login data for a username. Returns ErrNotFound for
// unknown usernames.
func GetCredentials(username string) (uuid.UUID, string, bool, error) {
	var userID uuid.UUID
	var passwordHash string
	var isActive bool
	err := database.PostgresDB.QueryRow(`
		SELECT id, password_hash, is_active FROM users WHERE LOWER(username) = LOWER($1)
	`, username).Scan(&userID, &passwordHash, &isActive)
	if errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, "", false, ErrNotFound
	}
	if err != nil {
		return uuid.Nil, "", false, err
	}
	return userID, passwordHash, isActive, nil
}

// GetUsernameByID resolves a user id to their profile username.
func GetUsernameByID(userID uuid.UUID) (string, error) {
	var username string
	err := database.PostgresDB.QueryRow(`
		SELECT username FROM profiles WHERE id = $1
	`, userID).Scan(&username)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	return username, err
}

const profileColumns = `
	id, created_at, updated_at, username,
	name, description, avatar_url,
	prayer_req, prayer_req_display,
	life_verse_display, COALESCE(life_verse_book, ''),
	COALESCE(life_verse_chapter, 0), COALESCE(life_verse_start, 0), COALESCE(life_verse_end, 0)`

func scanProfile(row interface{ Scan(...interface{}) error }) (models.Profile, error) {
	var p models.Profile
	err := row.Scan(
		&p.ID, &p.CreatedAt, &p.UpdatedAt, &p.Username,
		&p.Name, &p.Description, &p.AvatarURL,
		&p.PrayerReq, &p.PrayerReqDisplay,
		&p.LifeVerseDisplay, &p.LifeVerseBook,
		&p.LifeVerseChapter, &p.LifeVerseStart, &p.LifeVerseEnd,
	)
	return p, err
}

// GetProfile fetches one profile. Returns ErrNotFound if absent.
func GetProfile(userID uuid.UUID) (models.Profile, error) {
	row := database.PostgresDB.QueryRow(`SELECT `+profileColumns+` FROM profiles WHERE id = $1`, userID)
	p, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Profile{}, ErrNotFound
	}
	return p, err
}

// UpdateProfile rewrites the editable profile fields.
func UpdateProfile(p *models.Profile) error {
	result, err := database.PostgresDB.Exec(`
		UPDATE profiles SET
			updated_at = NOW(),
			name = $2,
			description = $3,
			avatar_url = $4,
			prayer_req = $5,
			prayer_req_display = $6,
			life_verse_display = $7,
			life_verse_book = $8,
			life_verse_chapter = $9,
			life_verse_start = $10,
			life_verse_end = $11
		WHERE id = $1
	`, p.ID, p.Name, p.Description, p.AvatarURL,
		p.PrayerReq, p.PrayerReqDisplay,
		p.LifeVerseDisplay, nullIfEmpty(p.LifeVerseBook), p.LifeVerseChapter, p.LifeVerseStart, p.LifeVerseEnd)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err == nil && n == 0 {
		return ErrNotFound
	}
	return err
}

// ListProfilesExcept returns all profiles except the given user's, for the
// find-friends listing.
func ListProfilesExcept(userID uuid.UUID) ([]models.Profile, error) {
	rows, err := database.PostgresDB.Query(`
		SELECT `+profileColumns+` FROM profiles WHERE id != $1 ORDER BY username
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := make([]models.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}
