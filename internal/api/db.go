package api

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"rod-cutting-optimizer/internal/rodcut"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const (
	dropTables = `
		DROP TABLE IF EXISTS solves;
	`

	createTables = `
		CREATE TABLE IF NOT EXISTS solves (
			id TEXT PRIMARY KEY,
			length INTEGER NOT NULL,
			strategy TEXT NOT NULL,
			prices TEXT NOT NULL,
			max_profit INTEGER NOT NULL,
			cuts TEXT NOT NULL,
			number_of_cuts INTEGER NOT NULL,
			created_at TIMESTAMP NOT NULL
		);
	`
)

// SolveRecord is a stored rod-cutting solve
type SolveRecord struct {
	ID        string
	Length    int
	Strategy  rodcut.Strategy
	Prices    []int
	Result    rodcut.Result
	CreatedAt time.Time
}

// InitDB initializes and returns a SQLite database connection
func InitDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// CreateSchema creates the tables used by the service if they do not exist
func CreateSchema(db *sql.DB) error {
	if _, err := db.Exec(createTables); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

// ResetSchema drops and recreates all tables, discarding stored solves
func ResetSchema(db *sql.DB) error {
	if _, err := db.Exec(dropTables); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	return CreateSchema(db)
}

// SaveSolve stores a solve and returns its generated ID
func SaveSolve(db *sql.DB, length int, strategy rodcut.Strategy, prices []int, res rodcut.Result) (string, error) {
	id := uuid.New().String()

	pricesJSON, err := json.Marshal(append([]int{}, prices[:length]...))
	if err != nil {
		return "", fmt.Errorf("failed to encode prices: %w", err)
	}
	cutsJSON, err := json.Marshal(res.Cuts)
	if err != nil {
		return "", fmt.Errorf("failed to encode cuts: %w", err)
	}

	query := `INSERT INTO solves (id, length, strategy, prices, max_profit, cuts, number_of_cuts, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := db.Exec(query, id, length, string(strategy), string(pricesJSON),
		res.MaxProfit, string(cutsJSON), res.NumberOfCuts, time.Now().UTC()); err != nil {
		return "", fmt.Errorf("failed to insert solve: %w", err)
	}

	return id, nil
}

// GetSolve fetches a single solve by its ID
func GetSolve(db *sql.DB, id string) (*SolveRecord, error) {
	query := `SELECT id, length, strategy, prices, max_profit, cuts, number_of_cuts, created_at
		FROM solves WHERE id = ?`

	rec, err := scanSolve(db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil // Solve not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query solve: %w", err)
	}

	return rec, nil
}

// ListSolves fetches the most recent solves, newest first
func ListSolves(db *sql.DB, limit int) ([]SolveRecord, error) {
	query := `SELECT id, length, strategy, prices, max_profit, cuts, number_of_cuts, created_at
		FROM solves ORDER BY rowid DESC LIMIT ?`

	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query solves: %w", err)
	}
	defer rows.Close()

	records := []SolveRecord{}
	for rows.Next() {
		rec, err := scanSolve(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}
		records = append(records, *rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating solves: %w", err)
	}

	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSolve(row rowScanner) (*SolveRecord, error) {
	var rec SolveRecord
	var strategy, pricesJSON, cutsJSON string

	if err := row.Scan(&rec.ID, &rec.Length, &strategy, &pricesJSON,
		&rec.Result.MaxProfit, &cutsJSON, &rec.Result.NumberOfCuts, &rec.CreatedAt); err != nil {
		return nil, err
	}

	rec.Strategy = rodcut.Strategy(strategy)
	if err := json.Unmarshal([]byte(pricesJSON), &rec.Prices); err != nil {
		return nil, fmt.Errorf("failed to decode prices: %w", err)
	}
	if err := json.Unmarshal([]byte(cutsJSON), &rec.Result.Cuts); err != nil {
		return nil, fmt.Errorf("failed to decode cuts: %w", err)
	}

	return &rec, nil
}
