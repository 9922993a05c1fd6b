package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/jaym93/gtpower/internal/service"
)

// BuildingsHandler serves the building directory and category catalog.
type BuildingsHandler struct {
	buildings *service.BuildingService
	logger    *zap.Logger
}

func NewBuildingsHandler(buildings *service.BuildingService, logger *zap.Logger) *BuildingsHandler {
	return &BuildingsHandler{buildings: buildings, logger: logger}
}

// List handles GET /buildings.
func (h *BuildingsHandler) List(w http.ResponseWriter, r *http.Request) {
	buildings, err := h.buildings.ListBuildings(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, buildings)
}

// GetByID handles GET /buildings_id/{b_id}.
func (h *BuildingsHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	detail, err := h.buildings.GetBuilding(r.Context(), mux.Vars(r)["b_id"])
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// SearchByName handles GET /buildings/{name}.
func (h *BuildingsHandler) SearchByName(w http.ResponseWriter, r *http.Request) {
	buildings, err := h.buildings.SearchBuildings(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, buildings)
}

// ListCategories handles GET /categories.
func (h *BuildingsHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.buildings.ListCategories(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// AddCategory handles POST /categories and returns the refreshed catalog.
func (h *BuildingsHandler) AddCategory(w http.ResponseWriter, r *http.Request) {
	categories, err := h.buildings.AddCategory(r.Context(), formValue(r, "category"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}
