package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"voice-catalog-go/internal/record"
)

// SQLiteStore holds each session as a JSON document in a single table,
// keyed by the timestamped session id.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dataSourceName string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err = store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS sessions (
        id TEXT PRIMARY KEY,
        record TEXT NOT NULL,
        created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
        updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
    );
    `
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) exists(id string) bool {
	var one int
	err := s.db.QueryRow("SELECT 1 FROM sessions WHERE id = ?", id).Scan(&one)
	return err == nil
}

func encodeRecord(rec record.BusinessRecord) (string, error) {
	data, err := json.Marshal(record.NormalizeBusiness(rec))
	if err != nil {
		return "", fmt.Errorf("failed to encode record: %w", err)
	}
	return string(data), nil
}

func decodeRecord(data string) (record.BusinessRecord, error) {
	var rec record.BusinessRecord
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return record.BusinessRecord{}, fmt.Errorf("failed to decode record: %w", err)
	}
	return record.NormalizeBusiness(rec), nil
}

func (s *SQLiteStore) Create(rec record.BusinessRecord) (string, error) {
	id := newSessionID(time.Now(), s.exists)
	encoded, err := encodeRecord(rec)
	if err != nil {
		return "", err
	}
	_, err = s.db.Exec("INSERT INTO sessions (id, record) VALUES (?, ?)", id, encoded)
	if err != nil {
		return "", fmt.Errorf("failed to insert session: %w", err)
	}
	return id, nil
}

func (s *SQLiteStore) Load(id string) (record.BusinessRecord, error) {
	var encoded string
	err := s.db.QueryRow("SELECT record FROM sessions WHERE id = ?", id).Scan(&encoded)
	if err != nil {
		if err == sql.ErrNoRows {
			return record.BusinessRecord{}, ErrNotFound
		}
		return record.BusinessRecord{}, fmt.Errorf("failed to query session: %w", err)
	}
	return decodeRecord(encoded)
}

func (s *SQLiteStore) AppendProducts(id string, products []record.ProductRecord) (record.BusinessRecord, error) {
	rec, err := s.Load(id)
	if err != nil {
		return record.BusinessRecord{}, err
	}
	rec.Products = append(rec.Products, products...)
	return s.save(id, rec)
}

func (s *SQLiteStore) Replace(id string, rec record.BusinessRecord) (record.BusinessRecord, error) {
	if !s.exists(id) {
		return record.BusinessRecord{}, ErrNotFound
	}
	return s.save(id, rec)
}

func (s *SQLiteStore) save(id string, rec record.BusinessRecord) (record.BusinessRecord, error) {
	normalized := record.NormalizeBusiness(rec)
	encoded, err := encodeRecord(normalized)
	if err != nil {
		return record.BusinessRecord{}, err
	}
	_, err = s.db.Exec("UPDATE sessions SET record = ?, updated_at = ? WHERE id = ?", encoded, time.Now(), id)
	if err != nil {
		return record.BusinessRecord{}, fmt.Errorf("failed to update session: %w", err)
	}
	return normalized, nil
}

func (s *SQLiteStore) List() ([]Session, error) {
	rows, err := s.db.Query("SELECT id, record FROM sessions ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var id, encoded string
		if err := rows.Scan(&id, &encoded); err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		rec, err := decodeRecord(encoded)
		if err != nil {
			continue
		}
		sessions = append(sessions, Session{ID: id, Record: rec})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate session rows: %w", err)
	}
	if sessions == nil {
		sessions = []Session{}
	}
	return sessions, nil
}

func (s *SQLiteStore) Delete(id string) (bool, error) {
	res, err := s.db.Exec("DELETE FROM sessions WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete session: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check delete result: %w", err)
	}
	return affected > 0, nil
}
