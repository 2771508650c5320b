package handlers

import (
	"log/slog"
	"net/http"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Dosada05/league-stats/middleware"
	"github.com/Dosada05/league-stats/services"
)

type AdminHandler struct {
	snapshotService services.SnapshotService
}

func NewAdminHandler(ss services.SnapshotService) *AdminHandler {
	return &AdminHandler{snapshotService: ss}
}

type publishSnapshotInput struct {
	Scope string `json:"scope"`
}

// PublishSnapshotHandler godoc
// @Summary Publish the rating tables to object storage
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body publishSnapshotInput false "optional scope"
// @Success 201 {object} models.SnapshotResult
// @Failure 503 {object} map[string]string
// @Router /admin/snapshots [post]
func (h *AdminHandler) PublishSnapshotHandler(w http.ResponseWriter, r *http.Request) {
	var input publishSnapshotInput
	if r.ContentLength != 0 {
		if err := readJSON(w, r, &input); err != nil {
			badRequestResponse(w, r, err)
			return
		}
	}
	if scope := r.URL.Query().Get("scope"); scope != "" {
		input.Scope = scope
	}

	result, err := h.snapshotService.PublishRatings(r.Context(), input.Scope)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	adminID, _ := middleware.GetUserIDFromContext(r.Context())
	slog.Info("snapshot published by admin",
		"admin_id", adminID,
		"key", result.Key,
		"request_id", chiMiddleware.GetReqID(r.Context()),
	)

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"snapshot": result}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
