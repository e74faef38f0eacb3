package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/models"
	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/services"
)

var errInvalidRoundParam = errors.New("invalid round query parameter")

type SwissHandler struct {
	swissService services.SwissService
}

func NewSwissHandler(swissService services.SwissService) *SwissHandler {
	return &SwissHandler{swissService: swissService}
}

func (h *SwissHandler) Standings(w http.ResponseWriter, r *http.Request) {
	records, warnings, err := h.swissService.Standings(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"records": records, "warnings": warnings}, nil)
}

func (h *SwissHandler) SuggestNextRound(w http.ResponseWriter, r *http.Request) {
	pairings, unpaired, err := h.swissService.SuggestNextRound(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"pairings": pairings, "unpaired": unpaired}, nil)
}

type swissMatchInput struct {
	RoundNumber     int                   `json:"round_number"`
	Team1           string                `json:"team1"`
	Team2           string                `json:"team2"`
	Team1Score      *int                  `json:"team1_score"`
	Team2Score      *int                  `json:"team2_score"`
	TechnicalWin    bool                  `json:"technical_win"`
	TechnicalWinner *string               `json:"technical_winner"`
	IsPlayed        bool                  `json:"is_played"`
	MatchType       models.SwissMatchType `json:"match_type"`
	IsDecisive      bool                  `json:"is_decisive"`
}

func (input swissMatchInput) toModel(id int) *models.SwissMatch {
	return &models.SwissMatch{
		ID:              id,
		RoundNumber:     input.RoundNumber,
		Team1:           input.Team1,
		Team2:           input.Team2,
		Team1Score:      input.Team1Score,
		Team2Score:      input.Team2Score,
		TechnicalWin:    input.TechnicalWin,
		TechnicalWinner: input.TechnicalWinner,
		IsPlayed:        input.IsPlayed,
		MatchType:       input.MatchType,
		IsDecisive:      input.IsDecisive,
	}
}

func (h *SwissHandler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	var input swissMatchInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match := input.toModel(0)
	if err := h.swissService.CreateMatch(r.Context(), match); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, jsonResponse{"match": match}, nil)
}

func (h *SwissHandler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input swissMatchInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match := input.toModel(id)
	if err := h.swissService.UpdateMatch(r.Context(), match); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil)
}

func (h *SwissHandler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.swissService.DeleteMatch(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SwissHandler) ListMatches(w http.ResponseWriter, r *http.Request) {
	var round *int
	if roundStr := r.URL.Query().Get("round"); roundStr != "" {
		value, err := strconv.Atoi(roundStr)
		if err != nil || value < 1 {
			badRequestResponse(w, r, errInvalidRoundParam)
			return
		}
		round = &value
	}

	matches, err := h.swissService.ListMatches(r.Context(), round)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil)
}

func (h *SwissHandler) ReplaceSeedTeams(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Teams []string `json:"teams"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.swissService.ReplaceSeedTeams(r.Context(), input.Teams); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"message": "seed teams replaced"}, nil)
}
