package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/loscamioneros/web/internal/domain"
)

func (s *Server) handleListDishes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Dishes.List(r.Context()))
}

type dishMutation struct {
	Dish   domain.Dish `json:"dish"`
	Action string      `json:"action"`
}

// handleMutateDishes is the multiplexed mutation endpoint keyed by action.
func (s *Server) handleMutateDishes(w http.ResponseWriter, r *http.Request) {
	var req dishMutation
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	switch req.Action {
	case "add":
		dish, err := s.Dishes.Create(r.Context(), req.Dish)
		if err != nil {
			writeStoreError(w, s.Logger, "create dish", err)
			return
		}
		s.Recorder.Record("admin", "Añadió plato: "+dish.Name, "create", fmt.Sprintf("ID %d", dish.ID))
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "dish": dish})
	case "update":
		dish, err := s.Dishes.Update(r.Context(), req.Dish)
		if err != nil {
			writeStoreError(w, s.Logger, "update dish", err)
			return
		}
		s.Recorder.Record("admin", "Editó plato: "+dish.Name, "update", fmt.Sprintf("ID %d", dish.ID))
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "dish": dish})
	case "delete":
		if err := s.Dishes.Delete(r.Context(), req.Dish.ID); err != nil {
			writeStoreError(w, s.Logger, "delete dish", err)
			return
		}
		s.Recorder.Record("admin", "Eliminó plato", "delete", fmt.Sprintf("ID %d", req.Dish.ID))
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	default:
		writeError(w, http.StatusBadRequest, "Unknown action")
	}
}

func (s *Server) handleUpsertDish(w http.ResponseWriter, r *http.Request) {
	var dish domain.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	dish, created, err := s.Dishes.Upsert(r.Context(), dish)
	if err != nil {
		writeStoreError(w, s.Logger, "upsert dish", err)
		return
	}

	verb := "Editó"
	if created {
		verb = "Creó"
	}
	s.Recorder.Record("admin", verb+" plato: "+dish.Name, actionType(created), fmt.Sprintf("ID %d", dish.ID))
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "dish": dish})
}

func (s *Server) handleDeleteDish(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	if err := s.Dishes.Delete(r.Context(), id); err != nil {
		writeStoreError(w, s.Logger, "delete dish", err)
		return
	}
	s.Recorder.Record("admin", "Eliminó plato", "delete", fmt.Sprintf("ID %d", id))
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func actionType(created bool) string {
	if created {
		return "create"
	}
	return "update"
}
