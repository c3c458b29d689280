package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/daniel/program-coach/internal/types"
)

// ProgramRecord is a persisted training program row.
type ProgramRecord struct {
	ID        uuid.UUID             `json:"id"`
	UserID    uuid.UUID             `json:"user_id"`
	Name      string                `json:"name"`
	Program   types.TrainingProgram `json:"program"`
	Metadata  types.ProgramMetadata `json:"metadata"`
	IsActive  bool                  `json:"is_active"`
	CreatedAt time.Time             `json:"created_at"`
}

// SaveTrainingProgram stores a validated program together with its derived
// scientific metadata and marks it active, deactivating any previously
// active programs for the user in the same transaction.
func (db *DB) SaveTrainingProgram(ctx context.Context, userID uuid.UUID, program *types.TrainingProgram, metadata types.ProgramMetadata) (uuid.UUID, error) {
	programJSON, err := json.Marshal(program)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal program: %w", err)
	}
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal program metadata: %w", err)
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx,
		`UPDATE training_programs
		 SET is_active = FALSE, deactivated_at = NOW()
		 WHERE user_id = $1 AND is_active`,
		userID,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to deactivate prior programs: %w", err)
	}

	var id uuid.UUID
	err = tx.QueryRow(ctx,
		`INSERT INTO training_programs (user_id, program_name, program, metadata, is_active)
		 VALUES ($1, $2, $3, $4, TRUE)
		 RETURNING id`,
		userID, program.ProgramName, programJSON, metadataJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert program: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit program: %w", err)
	}
	return id, nil
}

// RecentPrograms returns up to limit most recent programs for the user,
// newest first. Satisfies the variation planner's history store.
func (db *DB) RecentPrograms(ctx context.Context, userID uuid.UUID, limit int) ([]types.TrainingProgram, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT program FROM training_programs
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query program history: %w", err)
	}
	defer rows.Close()

	var programs []types.TrainingProgram
	for rows.Next() {
		var programJSON []byte
		if err := rows.Scan(&programJSON); err != nil {
			return nil, fmt.Errorf("failed to scan program row: %w", err)
		}
		var program types.TrainingProgram
		if err := json.Unmarshal(programJSON, &program); err != nil {
			return nil, fmt.Errorf("failed to decode stored program: %w", err)
		}
		programs = append(programs, program)
	}
	return programs, rows.Err()
}

// GetActiveProgram retrieves the user's currently active program, or nil
// when the user has none.
func (db *DB) GetActiveProgram(ctx context.Context, userID uuid.UUID) (*ProgramRecord, error) {
	var rec ProgramRecord
	var programJSON, metadataJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, program_name, program, metadata, is_active, created_at
		 FROM training_programs
		 WHERE user_id = $1 AND is_active`,
		userID,
	).Scan(&rec.ID, &rec.UserID, &rec.Name, &programJSON, &metadataJSON, &rec.IsActive, &rec.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active program: %w", err)
	}

	if err := json.Unmarshal(programJSON, &rec.Program); err != nil {
		return nil, fmt.Errorf("failed to decode stored program: %w", err)
	}
	if len(metadataJSON) > 0 {
		if err := json.Unmarshal(metadataJSON, &rec.Metadata); err != nil {
			return nil, fmt.Errorf("failed to decode program metadata: %w", err)
		}
	}
	return &rec, nil
}
