package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
	_ "modernc.org/sqlite"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidUsername    = errors.New("invalid username")
	ErrInvalidPassword    = errors.New("invalid password")
)

const (
	MinPasswordLength = 4
	MaxUsernameLength = 32
	// MaxPasswordLength is the most bytes bcrypt will hash.
	MaxPasswordLength = 72
)

type User struct {
	ID       int64  `db:"id"`
	Username string `db:"username"`
	Password string `db:"password"`
}

// Store keeps user accounts in SQLite.
type Store struct {
	db   *sqlx.DB
	cost int
}

// Open opens or creates the account database at path.
func Open(path string, opts ...StoreOpt) (*Store, error) {
	db, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening account db: %w", err)
	}

	s := &Store{db: db, cost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrating account db: %w", err)
	}
	return s, nil
}

// Start keeps the database open until ctx ends.
func (s *Store) Start(ctx context.Context) error {
	<-ctx.Done()
	return s.Close()
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL
	);`)
	return err
}

var fold = cases.Fold()

// Normalize puts a username in the form it is stored and compared in.
func Normalize(username string) string {
	return fold.String(norm.NFC.String(strings.TrimSpace(username)))
}

// Register creates an account and returns its id.
func (s *Store) Register(ctx context.Context, username, password string) (int64, error) {
	name := Normalize(username)
	if name == "" || len([]rune(name)) > MaxUsernameLength {
		return 0, ErrInvalidUsername
	}
	if len(password) < MinPasswordLength || len(password) > MaxPasswordLength {
		return 0, ErrInvalidPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return 0, fmt.Errorf("hashing password: %w", err)
	}

	var exists bool
	if err := s.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM users WHERE username = ?)`, name); err != nil {
		return 0, fmt.Errorf("checking username: %w", err)
	}
	if exists {
		return 0, ErrUsernameTaken
	}

	res, err := s.db.ExecContext(ctx, `INSERT INTO users (username, password) VALUES (?, ?)`, name, string(hash))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return 0, ErrUsernameTaken
		}
		return 0, fmt.Errorf("inserting user: %w", err)
	}
	return res.LastInsertId()
}

// Verify checks a username and password pair.
func (s *Store) Verify(ctx context.Context, username, password string) (*User, error) {
	var u User
	err := s.db.GetContext(ctx, &u, `SELECT id, username, password FROM users WHERE username = ?`, Normalize(username))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("loading user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &u, nil
}
