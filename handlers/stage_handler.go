package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/models"
	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/services"
)

type StageHandler struct {
	stageService services.StageService
}

func NewStageHandler(stageService services.StageService) *StageHandler {
	return &StageHandler{stageService: stageService}
}

func tournamentStageFromURL(r *http.Request) (models.TournamentStage, error) {
	switch stage := chi.URLParam(r, "stage"); stage {
	case string(models.StageGroups):
		return models.StageGroups, nil
	case string(models.StageTwo):
		return models.StageTwo, nil
	case string(models.StageSwiss):
		return models.StageSwiss, nil
	case string(models.StageFour):
		return models.StageFour, nil
	default:
		return "", errors.New("stage must be one of \"groups\", \"stage2\", \"swiss\", \"playoff\"")
	}
}

func (h *StageHandler) QualifiedTeams(w http.ResponseWriter, r *http.Request) {
	stage, err := tournamentStageFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	teams, err := h.stageService.QualifiedTeams(r.Context(), stage)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"stage": stage, "qualified": teams}, nil)
}

func (h *StageHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.stageService.Overview(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"tournament": overview}, nil)
}

func (h *StageHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	stage, err := tournamentStageFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	cfg, err := h.stageService.GetConfig(r.Context(), stage)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"config": cfg}, nil)
}

func (h *StageHandler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	stage, err := tournamentStageFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		WinThreshold    int `json:"win_threshold"`
		LossThreshold   int `json:"loss_threshold"`
		AdvanceCount    int `json:"advance_count"`
		QualifyingRound int `json:"qualifying_round"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	cfg := &models.StageConfig{
		Stage:           stage,
		WinThreshold:    input.WinThreshold,
		LossThreshold:   input.LossThreshold,
		AdvanceCount:    input.AdvanceCount,
		QualifyingRound: input.QualifyingRound,
	}
	if err := h.stageService.UpdateConfig(r.Context(), cfg); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"config": cfg}, nil)
}
