package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/jaym93/gtpower/internal/service"
)

// FacilitiesHandler serves the energy, power and sensor endpoints.
type FacilitiesHandler struct {
	readings *service.ReadingService
	logger   *zap.Logger
}

func NewFacilitiesHandler(readings *service.ReadingService, logger *zap.Logger) *FacilitiesHandler {
	return &FacilitiesHandler{readings: readings, logger: logger}
}

// EnergyByBuilding handles GET /facilities/energy/{b_id}.
func (h *FacilitiesHandler) EnergyByBuilding(w http.ResponseWriter, r *http.Request) {
	items, err := h.readings.EnergyByBuilding(r.Context(),
		mux.Vars(r)["b_id"], formValue(r, "start"), formValue(r, "stop"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// PowerByBuilding handles GET /facilities/power/{b_id}.
func (h *FacilitiesHandler) PowerByBuilding(w http.ResponseWriter, r *http.Request) {
	items, err := h.readings.PowerByBuilding(r.Context(),
		mux.Vars(r)["b_id"], formValue(r, "start"), formValue(r, "stop"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// SensorSeries handles GET /facilities/sensor/{sensor_id}.
func (h *FacilitiesHandler) SensorSeries(w http.ResponseWriter, r *http.Request) {
	items, err := h.readings.SensorSeries(r.Context(),
		mux.Vars(r)["sensor_id"], formValue(r, "start"), formValue(r, "stop"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// SensorMetadata handles GET /facilities/sensor_metadata/{sensor_id}.
func (h *FacilitiesHandler) SensorMetadata(w http.ResponseWriter, r *http.Request) {
	sensor, err := h.readings.SensorMetadata(r.Context(), mux.Vars(r)["sensor_id"])
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, sensor)
}

// Export handles GET /facilities/export/{b_id}, streaming the building's
// readings for the window as an xlsx workbook. The type parameter selects
// energy (default) or power.
func (h *FacilitiesHandler) Export(w http.ResponseWriter, r *http.Request) {
	bID := mux.Vars(r)["b_id"]
	start, stop := formValue(r, "start"), formValue(r, "stop")

	kind := formValue(r, "type")
	if kind == "" {
		kind = "energy"
	}

	var items []service.ReadingItem
	var err error
	switch kind {
	case "energy":
		items, err = h.readings.EnergyByBuilding(r.Context(), bID, start, stop)
	case "power":
		items, err = h.readings.PowerByBuilding(r.Context(), bID, start, stop)
	default:
		writeError(w, http.StatusBadRequest, "type must be energy or power")
		return
	}
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	book, err := buildReadingsWorkbook(items)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	defer book.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+kind+"_"+bID+`.xlsx"`)
	if err := book.Write(w); err != nil {
		h.logger.Error("failed to stream workbook", zap.String("b_id", bID), zap.Error(err))
	}
}
