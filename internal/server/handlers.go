package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/daniel/program-coach/internal/engine"
	"github.com/daniel/program-coach/internal/server/middleware"
	"github.com/daniel/program-coach/internal/types"
)

var validate = validator.New()

// GenerateRequest is the body of POST /api/generate. All fields are optional;
// the profile itself comes from the authenticated user's stored intake.
type GenerateRequest struct {
	DurationWeeks int `json:"duration_weeks" validate:"omitempty,min=1,max=52"`
}

// GenerateResponse is the body returned by POST /api/generate.
type GenerateResponse struct {
	ProgramID  uuid.UUID              `json:"program_id"`
	Program    *types.TrainingProgram `json:"program"`
	Metadata   types.ProgramMetadata  `json:"metadata"`
	Validation types.ValidationResult `json:"validation"`
}

// handleGenerate runs the full pipeline for the authenticated user.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req GenerateRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}
	if err := validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	profile, err := s.loadProfile(r, userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	out, err := s.generator.Generate(r.Context(), *profile, engine.Options{
		DurationWeeks: req.DurationWeeks,
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, GenerateResponse{
		ProgramID:  out.ProgramID,
		Program:    out.Program,
		Metadata:   out.Metadata,
		Validation: out.Validation,
	})
}

// handleLandmarks returns the deterministic analysis for a user without
// touching the generative backend.
func (s *Server) handleLandmarks(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("userID"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	profile, err := s.loadProfile(r, userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	analysis, err := engine.Analyze(*profile)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, analysis)
}

// ProfileRequest is the body of PUT /api/profile. The user ID comes from
// the bearer token, never the body.
type ProfileRequest struct {
	Goal           string              `json:"goal" validate:"required,oneof=muscle_gain strength fat_loss general_fitness endurance"`
	Experience     string              `json:"experience" validate:"required,oneof=beginner intermediate advanced"`
	DaysPerWeek    int                 `json:"days_per_week" validate:"required,min=1,max=7"`
	SessionMinutes int                 `json:"session_minutes" validate:"required,min=15,max=240"`
	Equipment      []string            `json:"equipment"`
	Injuries       string              `json:"injuries"`
	Lifts          types.LiftEstimates `json:"lifts"`
	WeightUnit     string              `json:"weight_unit" validate:"omitempty,oneof=kg lb"`
}

// handleSaveProfile upserts the authenticated user's intake profile.
func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	if req.WeightUnit == "" {
		req.WeightUnit = string(types.UnitKilograms)
	}
	profile := &types.UserProfile{
		UserID:         userID,
		Goal:           types.Goal(req.Goal),
		Experience:     types.ExperienceLevel(req.Experience),
		DaysPerWeek:    req.DaysPerWeek,
		SessionMinutes: req.SessionMinutes,
		Equipment:      req.Equipment,
		Injuries:       req.Injuries,
		Lifts:          req.Lifts,
		WeightUnit:     types.WeightUnit(req.WeightUnit),
	}

	if err := s.store.SaveUserProfile(r.Context(), profile); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to save profile")
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}

// handleActiveProgram returns the authenticated user's active program.
func (s *Server) handleActiveProgram(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	record, err := s.store.GetActiveProgram(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load program")
		return
	}
	if record == nil {
		s.errorResponse(w, http.StatusNotFound, "no active program")
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}

func (s *Server) loadProfile(r *http.Request, userID uuid.UUID) (*types.UserProfile, error) {
	profile, err := s.store.GetUserProfile(r.Context(), userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// extractValidationErrors formats the first field error from validator.
func extractValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrors) > 0 {
			ve := validationErrors[0]
			return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
		}
	}
	return "validation error: invalid request"
}
