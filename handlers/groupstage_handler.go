package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/models"
	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/services"
)

type GroupStageHandler struct {
	groupStageService services.GroupStageService
	groupService      services.GroupService
}

func NewGroupStageHandler(groupStageService services.GroupStageService, groupService services.GroupService) *GroupStageHandler {
	return &GroupStageHandler{groupStageService: groupStageService, groupService: groupService}
}

// --- Группы и составы ---

func (h *GroupStageHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name         string `json:"name"`
		AdvanceCount int    `json:"advance_count"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	group, err := h.groupService.Create(r.Context(), input.Name, input.AdvanceCount)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, jsonResponse{"group": group}, nil)
}

func (h *GroupStageHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.groupService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"groups": groups}, nil)
}

func (h *GroupStageHandler) AddTeamToGroup(w http.ResponseWriter, r *http.Request) {
	groupName := chi.URLParam(r, "groupName")

	var input struct {
		TeamName string `json:"team_name"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.groupService.AddTeam(r.Context(), groupName, input.TeamName); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"message": "team added to group"}, nil)
}

func (h *GroupStageHandler) RemoveTeamFromGroup(w http.ResponseWriter, r *http.Request) {
	groupName := chi.URLParam(r, "groupName")
	teamName := chi.URLParam(r, "teamName")

	if err := h.groupService.RemoveTeam(r.Context(), groupName, teamName); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	// Состав изменился — пересчитываем снапшот группы.
	standings, warnings, err := h.groupStageService.RecomputeGroup(r.Context(), groupName)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"standings": standings, "warnings": warnings}, nil)
}

func (h *GroupStageHandler) UpdateAdvanceCount(w http.ResponseWriter, r *http.Request) {
	groupName := chi.URLParam(r, "groupName")

	var input struct {
		AdvanceCount int `json:"advance_count"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.groupService.UpdateAdvanceCount(r.Context(), groupName, input.AdvanceCount); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"message": "advance count updated"}, nil)
}

func (h *GroupStageHandler) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	groupName := chi.URLParam(r, "groupName")

	if err := h.groupService.Delete(r.Context(), groupName); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Матчи и таблица ---

type groupMatchInput struct {
	GroupName       string  `json:"group_name"`
	Team1           string  `json:"team1"`
	Team2           string  `json:"team2"`
	Team1Score      int     `json:"team1_score"`
	Team2Score      int     `json:"team2_score"`
	TechnicalWin    bool    `json:"technical_win"`
	TechnicalWinner *string `json:"technical_winner"`
}

func (h *GroupStageHandler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	var input groupMatchInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match := &models.GroupMatch{
		GroupName:       input.GroupName,
		Team1:           input.Team1,
		Team2:           input.Team2,
		Team1Score:      input.Team1Score,
		Team2Score:      input.Team2Score,
		TechnicalWin:    input.TechnicalWin,
		TechnicalWinner: input.TechnicalWinner,
	}
	warnings, err := h.groupStageService.CreateMatch(r.Context(), match)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, jsonResponse{"match": match, "warnings": warnings}, nil)
}

func (h *GroupStageHandler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input groupMatchInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match := &models.GroupMatch{
		ID:              id,
		Team1:           input.Team1,
		Team2:           input.Team2,
		Team1Score:      input.Team1Score,
		Team2Score:      input.Team2Score,
		TechnicalWin:    input.TechnicalWin,
		TechnicalWinner: input.TechnicalWinner,
	}
	warnings, err := h.groupStageService.UpdateMatch(r.Context(), match)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"match": match, "warnings": warnings}, nil)
}

func (h *GroupStageHandler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	warnings, err := h.groupStageService.DeleteMatch(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"message": "match deleted", "warnings": warnings}, nil)
}

func (h *GroupStageHandler) ListMatches(w http.ResponseWriter, r *http.Request) {
	var groupName *string
	if g := r.URL.Query().Get("group"); g != "" {
		groupName = &g
	}

	matches, err := h.groupStageService.ListMatches(r.Context(), groupName)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil)
}

func (h *GroupStageHandler) ListStandings(w http.ResponseWriter, r *http.Request) {
	standings, err := h.groupStageService.ListStandings(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"standings": standings}, nil)
}

func (h *GroupStageHandler) RecomputeGroup(w http.ResponseWriter, r *http.Request) {
	groupName := chi.URLParam(r, "groupName")

	standings, warnings, err := h.groupStageService.RecomputeGroup(r.Context(), groupName)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"standings": standings, "warnings": warnings}, nil)
}
