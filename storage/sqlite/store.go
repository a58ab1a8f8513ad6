// Package sqlite provides the SQLite-backed persistence layer: user
// accounts, refresh tokens, and every wellness repository.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	apperrors "github.com/mindwell-app/mindwell/internal/errors"
	"github.com/mindwell-app/mindwell/token/refresh"
	"github.com/mindwell-app/mindwell/users"
	"github.com/mindwell-app/mindwell/wellness"
)

// Store persists all service state in a single SQLite database.
type Store struct {
	sqlDB *sql.DB
}

type userRepo Store
type refreshRepo Store

var (
	_ users.UserRepo = (*userRepo)(nil)
	_ refresh.Repo   = (*refreshRepo)(nil)
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	email         TEXT NOT NULL DEFAULT '',
	password_hash TEXT NOT NULL,
	date_joined   INTEGER NOT NULL,
	last_login    INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS refresh_tokens (
	token   TEXT PRIMARY KEY,
	user_id TEXT NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
	iat     INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS mood_entries (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id         TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	text            TEXT NOT NULL,
	sentiment_score REAL NOT NULL,
	emotion         TEXT NOT NULL,
	response        TEXT NOT NULL,
	timestamp       INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_mood_user_ts ON mood_entries(user_id, timestamp DESC);
CREATE INDEX IF NOT EXISTS idx_mood_emotion_ts ON mood_entries(emotion, timestamp DESC);

CREATE TABLE IF NOT EXISTS daily_checkins (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id   TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	emotion   TEXT NOT NULL,
	note      TEXT NOT NULL DEFAULT '',
	date      TEXT NOT NULL,
	timestamp INTEGER NOT NULL,
	UNIQUE(user_id, date)
);
CREATE INDEX IF NOT EXISTS idx_checkin_user_date ON daily_checkins(user_id, date DESC);

CREATE TABLE IF NOT EXISTS goals (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id       TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	title         TEXT NOT NULL,
	description   TEXT NOT NULL DEFAULT '',
	goal_type     TEXT NOT NULL DEFAULT 'custom',
	target_value  INTEGER NOT NULL,
	current_value INTEGER NOT NULL DEFAULT 0,
	start_date    TEXT NOT NULL,
	target_date   TEXT NOT NULL,
	completed     INTEGER NOT NULL DEFAULT 0,
	created_at    INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_goal_user_created ON goals(user_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_goal_user_completed ON goals(user_id, completed);

CREATE TABLE IF NOT EXISTS gratitude_entries (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id   TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	text      TEXT NOT NULL,
	timestamp INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_gratitude_user_ts ON gratitude_entries(user_id, timestamp DESC);

CREATE TABLE IF NOT EXISTS user_preferences (
	user_id              TEXT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
	reminder_enabled     INTEGER NOT NULL DEFAULT 0,
	reminder_time        TEXT NOT NULL DEFAULT '09:00:00',
	notification_enabled INTEGER NOT NULL DEFAULT 0,
	preferred_theme      TEXT NOT NULL DEFAULT 'auto',
	created_at           INTEGER NOT NULL,
	updated_at           INTEGER NOT NULL
);
`

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens the SQLite store and creates the schema when absent.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// UserRepo returns the user repository backed by this store.
func (s *Store) UserRepo() users.UserRepo {
	return (*userRepo)(s)
}

// RefreshRepo returns the refresh token repository backed by this store.
func (s *Store) RefreshRepo() refresh.Repo {
	return (*refreshRepo)(s)
}

// WellnessRepos returns the wellness repository bundle backed by this store.
func (s *Store) WellnessRepos() wellness.Repos {
	return wellness.Repos{
		Moods:       (*moodRepo)(s),
		CheckIns:    (*checkinRepo)(s),
		Goals:       (*goalRepo)(s),
		Gratitude:   (*gratitudeRepo)(s),
		Preferences: (*preferencesRepo)(s),
	}
}

// ---- users.UserRepo ----

func (r *userRepo) Upsert(user *users.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	_, err := r.sqlDB.Exec(`
		INSERT INTO users (id, username, email, password_hash, date_joined, last_login)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			username = excluded.username,
			email = excluded.email,
			password_hash = excluded.password_hash,
			last_login = excluded.last_login`,
		user.ID, user.Username, user.Email, user.PasswordHash,
		toMillis(user.DateJoined), toMillis(user.LastLogin))
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}

func (r *userRepo) Delete(username string) error {
	res, err := r.sqlDB.Exec(`DELETE FROM users WHERE username = ?`, username)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

func (r *userRepo) scanUser(row *sql.Row) (*users.User, error) {
	var user users.User
	var joined, lastLogin int64
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &joined, &lastLogin)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	user.DateJoined = fromMillis(joined)
	user.LastLogin = fromMillis(lastLogin)
	return &user, nil
}

func (r *userRepo) GetByUsername(username string) (*users.User, error) {
	return r.scanUser(r.sqlDB.QueryRow(`
		SELECT id, username, email, password_hash, date_joined, last_login
		FROM users WHERE username = ?`, username))
}

func (r *userRepo) GetByID(id string) (*users.User, error) {
	return r.scanUser(r.sqlDB.QueryRow(`
		SELECT id, username, email, password_hash, date_joined, last_login
		FROM users WHERE id = ?`, id))
}

// ---- refresh.Repo ----

func (r *refreshRepo) Upsert(ctx context.Context, rt *refresh.StoredRefreshToken) error {
	_, err := r.sqlDB.ExecContext(ctx, `
		INSERT INTO refresh_tokens (token, user_id, iat) VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET token = excluded.token, iat = excluded.iat`,
		rt.Token, rt.UserID, toMillis(rt.Iat))
	if err != nil {
		return fmt.Errorf("upsert refresh token: %w", err)
	}
	return nil
}

func (r *refreshRepo) Delete(ctx context.Context, token string) error {
	res, err := r.sqlDB.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE token = ?`, token)
	if err != nil {
		return fmt.Errorf("delete refresh token: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *refreshRepo) scanRefresh(row *sql.Row) (*refresh.StoredRefreshToken, error) {
	var rt refresh.StoredRefreshToken
	var iat int64
	err := row.Scan(&rt.Token, &rt.UserID, &iat)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan refresh token: %w", err)
	}
	rt.Iat = fromMillis(iat)
	return &rt, nil
}

func (r *refreshRepo) Get(ctx context.Context, token string) (*refresh.StoredRefreshToken, error) {
	return r.scanRefresh(r.sqlDB.QueryRowContext(ctx,
		`SELECT token, user_id, iat FROM refresh_tokens WHERE token = ?`, token))
}

func (r *refreshRepo) GetByUserID(ctx context.Context, userID string) (*refresh.StoredRefreshToken, error) {
	return r.scanRefresh(r.sqlDB.QueryRowContext(ctx,
		`SELECT token, user_id, iat FROM refresh_tokens WHERE user_id = ?`, userID))
}
