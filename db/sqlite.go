package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"photoacoustics/utils"

	_ "github.com/mattn/go-sqlite3" // SQLite driver registration
)

// Run records the summary of a single pipeline invocation.
type Run struct {
	ID            int64          `json:"id"`
	Timestamp     time.Time      `json:"timestamp"`
	Pipeline      string         `json:"pipeline"`
	PeakAmplitude float64        `json:"peakAmplitude,omitempty"`
	AverageEnergy float64        `json:"averageEnergy,omitempty"`
	DominantHz    float64        `json:"dominantHz,omitempty"`
	EstimateCount int            `json:"estimateCount,omitempty"`
	Accuracy      float64        `json:"accuracy,omitempty"`
	Details       map[string]any `json:"details,omitempty"`
}

// SQLiteClient stores pipeline run summaries in a local SQLite file.
type SQLiteClient struct {
	db *sql.DB
}

// NewSQLiteClient opens (and if needed creates) the run database.
func NewSQLiteClient(dataSourceName string) (*SQLiteClient, error) {
	// Extract the file path before query parameters
	dbPath := dataSourceName
	if idx := strings.Index(dataSourceName, "?"); idx != -1 {
		dbPath = dataSourceName[:idx]
	}

	// Create the directory if it doesn't exist (cross-platform)
	dbDir := filepath.Dir(dbPath)
	if dbDir != "." && dbDir != "" {
		if err := utils.CreateFolder(dbDir); err != nil {
			return nil, fmt.Errorf("error creating database directory: %s", err)
		}
	}

	// Add busy timeout param to DSN (milliseconds)
	if !strings.Contains(dataSourceName, "_busy_timeout") {
		if strings.Contains(dataSourceName, "?") {
			dataSourceName += "&_busy_timeout=5000" // 5 seconds
		} else {
			dataSourceName += "?_busy_timeout=5000"
		}
	}

	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("error connecting to SQLite: %s", err)
	}

	if err := createTables(db); err != nil {
		return nil, fmt.Errorf("error creating tables: %s", err)
	}

	return &SQLiteClient{db: db}, nil
}

// createTables creates the required tables if they don't exist
func createTables(db *sql.DB) error {
	createRunsTable := `
    CREATE TABLE IF NOT EXISTS runs (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        timestamp DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
        pipeline TEXT NOT NULL,
        peak_amplitude REAL NOT NULL DEFAULT 0,
        average_energy REAL NOT NULL DEFAULT 0,
        dominant_hz REAL NOT NULL DEFAULT 0,
        estimate_count INTEGER NOT NULL DEFAULT 0,
        accuracy REAL NOT NULL DEFAULT 0,
        details TEXT
    );
    CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp);
    CREATE INDEX IF NOT EXISTS idx_runs_pipeline ON runs(pipeline);
    `

	if _, err := db.Exec(createRunsTable); err != nil {
		return fmt.Errorf("error creating runs table: %s", err)
	}
	return nil
}

// SaveRun appends a run summary. A zero timestamp is filled with the current
// time; the generated row ID is written back to the run.
func (c *SQLiteClient) SaveRun(run *Run) error {
	if run.Pipeline == "" {
		return fmt.Errorf("run is missing a pipeline name")
	}
	if run.Timestamp.IsZero() {
		run.Timestamp = time.Now()
	}

	details := "{}"
	if run.Details != nil {
		encoded, err := json.Marshal(run.Details)
		if err != nil {
			return fmt.Errorf("error encoding run details: %s", err)
		}
		details = string(encoded)
	}

	result, err := c.db.Exec(`
        INSERT INTO runs (timestamp, pipeline, peak_amplitude, average_energy, dominant_hz, estimate_count, accuracy, details)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.Timestamp, run.Pipeline, run.PeakAmplitude, run.AverageEnergy,
		run.DominantHz, run.EstimateCount, run.Accuracy, details,
	)
	if err != nil {
		return fmt.Errorf("error inserting run: %s", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("error reading run id: %s", err)
	}
	run.ID = id
	return nil
}

// RecentRuns returns the newest run summaries, most recent first.
func (c *SQLiteClient) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := c.db.Query(`
        SELECT id, timestamp, pipeline, peak_amplitude, average_energy, dominant_hz, estimate_count, accuracy, details
        FROM runs ORDER BY timestamp DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying runs: %s", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var details sql.NullString
		if err := rows.Scan(&run.ID, &run.Timestamp, &run.Pipeline, &run.PeakAmplitude,
			&run.AverageEnergy, &run.DominantHz, &run.EstimateCount, &run.Accuracy, &details); err != nil {
			return nil, fmt.Errorf("error scanning run: %s", err)
		}
		if details.Valid && details.String != "" && details.String != "{}" {
			if err := json.Unmarshal([]byte(details.String), &run.Details); err != nil {
				return nil, fmt.Errorf("error decoding run details: %s", err)
			}
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func (c *SQLiteClient) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}
