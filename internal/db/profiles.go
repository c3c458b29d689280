package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/daniel/program-coach/internal/types"
)

// GetUserProfile retrieves a user's intake snapshot. Returns nil when no
// profile exists for the user.
func (db *DB) GetUserProfile(ctx context.Context, userID uuid.UUID) (*types.UserProfile, error) {
	var p types.UserProfile
	var liftsJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT user_id, goal, experience, days_per_week, session_minutes,
		        equipment, COALESCE(injuries, ''), lifts, weight_unit
		 FROM user_profiles WHERE user_id = $1`,
		userID,
	).Scan(&p.UserID, &p.Goal, &p.Experience, &p.DaysPerWeek, &p.SessionMinutes,
		&p.Equipment, &p.Injuries, &liftsJSON, &p.WeightUnit)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}

	if len(liftsJSON) > 0 {
		if err := json.Unmarshal(liftsJSON, &p.Lifts); err != nil {
			return nil, fmt.Errorf("failed to decode lift estimates: %w", err)
		}
	}
	return &p, nil
}

// SaveUserProfile upserts a user's intake snapshot.
func (db *DB) SaveUserProfile(ctx context.Context, profile *types.UserProfile) error {
	liftsJSON, err := json.Marshal(profile.Lifts)
	if err != nil {
		return fmt.Errorf("failed to marshal lift estimates: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO user_profiles (user_id, goal, experience, days_per_week,
		        session_minutes, equipment, injuries, lifts, weight_unit)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (user_id) DO UPDATE SET
		        goal = $2, experience = $3, days_per_week = $4,
		        session_minutes = $5, equipment = $6, injuries = $7,
		        lifts = $8, weight_unit = $9, updated_at = NOW()`,
		profile.UserID, profile.Goal, profile.Experience, profile.DaysPerWeek,
		profile.SessionMinutes, profile.Equipment, profile.Injuries, liftsJSON,
		profile.WeightUnit,
	)
	if err != nil {
		return fmt.Errorf("failed to save user profile: %w", err)
	}
	return nil
}
