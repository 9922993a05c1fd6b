// Package httpapi wires the REST surface: routing, handlers, the error
// envelope and the session middleware.
package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/jaym93/gtpower/internal/auth"
)

// RouterDeps collects everything the router needs to mount the API.
type RouterDeps struct {
	Facilities *FacilitiesHandler
	Buildings  *BuildingsHandler
	Tags       *TagsHandler
	Auth       *AuthHandler
	Health     *HealthHandler
	Sessions   auth.SessionStore
	Logger     *zap.Logger
}

// NewRouter mounts every endpoint. Reads are public; tag and category
// mutations require a CAS-backed session.
func NewRouter(deps RouterDeps) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, msgNotFound)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.HandleFunc("/health", deps.Health.Health).Methods(http.MethodGet)

	r.HandleFunc("/facilities/energy/{b_id}", deps.Facilities.EnergyByBuilding).Methods(http.MethodGet)
	r.HandleFunc("/facilities/power/{b_id}", deps.Facilities.PowerByBuilding).Methods(http.MethodGet)
	r.HandleFunc("/facilities/sensor/{sensor_id}", deps.Facilities.SensorSeries).Methods(http.MethodGet)
	r.HandleFunc("/facilities/sensor_metadata/{sensor_id}", deps.Facilities.SensorMetadata).Methods(http.MethodGet)
	r.HandleFunc("/facilities/export/{b_id}", deps.Facilities.Export).Methods(http.MethodGet)

	r.HandleFunc("/buildings", deps.Buildings.List).Methods(http.MethodGet)
	r.HandleFunc("/buildings_id/{b_id}", deps.Buildings.GetByID).Methods(http.MethodGet)
	r.HandleFunc("/buildings/{name}", deps.Buildings.SearchByName).Methods(http.MethodGet)

	r.HandleFunc("/categories", deps.Buildings.ListCategories).Methods(http.MethodGet)
	r.HandleFunc("/categories",
		RequireSession(deps.Sessions, deps.Logger, deps.Buildings.AddCategory)).Methods(http.MethodPost)

	r.HandleFunc("/tags", deps.Tags.List).Methods(http.MethodGet)
	r.HandleFunc("/tags",
		RequireSession(deps.Sessions, deps.Logger, deps.Tags.Add)).Methods(http.MethodPost)
	r.HandleFunc("/tags/{name}", deps.Tags.GetByName).Methods(http.MethodGet)
	r.HandleFunc("/flag",
		RequireSession(deps.Sessions, deps.Logger, deps.Tags.Flag)).Methods(http.MethodPost)

	r.HandleFunc("/login", deps.Auth.Login).Methods(http.MethodGet)
	r.HandleFunc("/logout", deps.Auth.Logout).Methods(http.MethodGet)
	r.HandleFunc("/checkuser",
		RequireSession(deps.Sessions, deps.Logger, deps.Auth.CheckUser)).Methods(http.MethodGet)

	return loggingMiddleware(deps.Logger, r)
}

// loggingMiddleware logs one line per request.
func loggingMiddleware(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr))
		next.ServeHTTP(w, r)
	})
}
