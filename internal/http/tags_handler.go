package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/jaym93/gtpower/internal/service"
)

// TagsHandler serves the crowd-sourced building tags.
type TagsHandler struct {
	tags   *service.TagService
	logger *zap.Logger
}

func NewTagsHandler(tags *service.TagService, logger *zap.Logger) *TagsHandler {
	return &TagsHandler{tags: tags, logger: logger}
}

// List handles GET /tags.
func (h *TagsHandler) List(w http.ResponseWriter, r *http.Request) {
	tags, err := h.tags.ListTags(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, tags)
}

// GetByName handles GET /tags/{name}.
func (h *TagsHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	tag, err := h.tags.GetTagByName(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, tag)
}

// Add handles POST /tags. Requires a session; the actor is the logged-in
// user.
func (h *TagsHandler) Add(w http.ResponseWriter, r *http.Request) {
	tag, err := h.tags.AddTag(r.Context(),
		formValue(r, "b_id"), formValue(r, "tag"), usernameFrom(r.Context()))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, tag)
}

// Flag handles POST /flag. Requires a session; repeat flags by the same
// user leave the tag unchanged.
func (h *TagsHandler) Flag(w http.ResponseWriter, r *http.Request) {
	tag, err := h.tags.FlagTag(r.Context(),
		formValue(r, "tag_name"), usernameFrom(r.Context()))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, tag)
}
