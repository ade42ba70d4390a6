package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"rain-radar/internal/types"

	_ "modernc.org/sqlite"
)

// Store is the minimal persistence interface the survey service needs.
type Store interface {
	SaveSurvey(survey *types.Survey) (int64, error)
	ListSurveys(limit int) ([]types.Survey, error)
	Close() error
}

// SQLiteStore persists surveys in a local SQLite database. Records are
// stored as a JSON column; nothing downstream queries inside them.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens (and initializes if needed) the database at path. Use
// ":memory:" for an ephemeral store.
func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS surveys (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		center_lat REAL NOT NULL,
		center_lon REAL NOT NULL,
		radius_meters REAL NOT NULL,
		created_at TEXT NOT NULL,
		records TEXT NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create surveys table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// SaveSurvey inserts a completed survey and returns its row id.
func (s *SQLiteStore) SaveSurvey(survey *types.Survey) (int64, error) {
	records, err := json.Marshal(survey.Records)
	if err != nil {
		return 0, fmt.Errorf("encode survey records: %w", err)
	}

	res, err := s.db.Exec(
		`INSERT INTO surveys(center_lat, center_lon, radius_meters, created_at, records) VALUES(?,?,?,?,?)`,
		survey.Center.Latitude,
		survey.Center.Longitude,
		survey.RadiusMeters,
		survey.Timestamp.UTC().Format(time.RFC3339),
		string(records),
	)
	if err != nil {
		return 0, fmt.Errorf("insert survey: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read survey id: %w", err)
	}
	return id, nil
}

// ListSurveys returns up to limit surveys, most recent first.
func (s *SQLiteStore) ListSurveys(limit int) ([]types.Survey, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, center_lat, center_lon, radius_meters, created_at, records
		 FROM surveys ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query surveys: %w", err)
	}
	defer rows.Close()

	out := make([]types.Survey, 0)
	for rows.Next() {
		var (
			survey    types.Survey
			createdAt string
			records   string
		)
		if err := rows.Scan(&survey.ID, &survey.Center.Latitude, &survey.Center.Longitude,
			&survey.RadiusMeters, &createdAt, &records); err != nil {
			return nil, fmt.Errorf("scan survey row: %w", err)
		}

		survey.Timestamp, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse survey timestamp %q: %w", createdAt, err)
		}
		if err := json.Unmarshal([]byte(records), &survey.Records); err != nil {
			return nil, fmt.Errorf("decode survey records: %w", err)
		}

		out = append(out, survey)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
