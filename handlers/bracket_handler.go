package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/models"
	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/services"
)

type BracketHandler struct {
	bracketService services.BracketService
}

func NewBracketHandler(bracketService services.BracketService) *BracketHandler {
	return &BracketHandler{bracketService: bracketService}
}

func bracketStageFromURL(r *http.Request) (models.BracketStage, error) {
	switch stage := chi.URLParam(r, "stage"); stage {
	case string(models.StageBracket):
		return models.StageBracket, nil
	case string(models.StagePlayoff):
		return models.StagePlayoff, nil
	default:
		return "", errors.New("stage must be \"stage2\" or \"playoff\"")
	}
}

func (h *BracketHandler) State(w http.ResponseWriter, r *http.Request) {
	stage, err := bracketStageFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	state, err := h.bracketService.State(r.Context(), stage)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"bracket": state}, nil)
}

type bracketMatchInput struct {
	BracketRound int     `json:"bracket_round"`
	Position     int     `json:"position"`
	Team1        *string `json:"team1"`
	Team2        *string `json:"team2"`
	Team1Score   *int    `json:"team1_score"`
	Team2Score   *int    `json:"team2_score"`
	WinnerName   *string `json:"winner_name"`
	IsPlayed     bool    `json:"is_played"`
}

func (h *BracketHandler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	stage, err := bracketStageFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input bracketMatchInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match := &models.BracketMatch{
		Stage:        stage,
		BracketRound: input.BracketRound,
		Position:     input.Position,
		Team1:        input.Team1,
		Team2:        input.Team2,
		Team1Score:   input.Team1Score,
		Team2Score:   input.Team2Score,
		WinnerName:   input.WinnerName,
		IsPlayed:     input.IsPlayed,
	}
	if err := h.bracketService.CreateMatch(r.Context(), match); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, jsonResponse{"match": match}, nil)
}

func (h *BracketHandler) RecordResult(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input bracketMatchInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match := &models.BracketMatch{
		ID:           id,
		BracketRound: input.BracketRound,
		Position:     input.Position,
		Team1:        input.Team1,
		Team2:        input.Team2,
		Team1Score:   input.Team1Score,
		Team2Score:   input.Team2Score,
		WinnerName:   input.WinnerName,
		IsPlayed:     input.IsPlayed,
	}
	if err := h.bracketService.RecordResult(r.Context(), match); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil)
}

func (h *BracketHandler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.bracketService.DeleteMatch(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *BracketHandler) RoundWinners(w http.ResponseWriter, r *http.Request) {
	stage, err := bracketStageFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	round, err := strconv.Atoi(chi.URLParam(r, "round"))
	if err != nil || round < 1 {
		badRequestResponse(w, r, errors.New("invalid round parameter"))
		return
	}

	winners, err := h.bracketService.RoundWinners(r.Context(), stage, round)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"winners": winners}, nil)
}
