// Package http provides the setlist API handlers: catalog search and playlist export.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/setlistify/setlistify/internal/auth/domain"
	authHTTP "github.com/setlistify/setlistify/internal/auth/http"
	apperrors "github.com/setlistify/setlistify/internal/errors"
	"github.com/setlistify/setlistify/internal/httputil"
	"github.com/setlistify/setlistify/internal/setlist/http/dto"
	"github.com/setlistify/setlistify/internal/setlist/service"
)

// SetlistHandler handles catalog search and playlist export requests. Every
// handler re-checks the credential through the session gate before the
// upstream call; the router middleware only checked presence.
type SetlistHandler struct {
	catalog service.Catalog
	gate    *authHTTP.SessionGate
	logger  *slog.Logger
}

// NewSetlistHandler creates a new SetlistHandler.
func NewSetlistHandler(catalog service.Catalog, gate *authHTTP.SessionGate, logger *slog.Logger) *SetlistHandler {
	return &SetlistHandler{catalog: catalog, gate: gate, logger: logger}
}

// Search handles GET /api/search?query=. Requires the service-scoped token.
func (h *SetlistHandler) Search(c *gin.Context) {
	token, reason := h.gate.Check(c, authDomain.CookieServiceAccessToken)
	if reason != authDomain.ReasonNone {
		h.logger.Debug("search rejected", slog.String("reason", string(reason)))
		httputil.HandleErrorGin(c, authDomain.ReasonError(reason), h.logger)
		return
	}

	query := c.Query("query")
	if query == "" {
		httputil.HandleValidationErrorGin(c,
			apperrors.Wrap(apperrors.ErrInvalidInput, "query is required"), h.logger)
		return
	}

	result, err := h.catalog.Search(c.Request.Context(), token.Value, query)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreatePlaylist handles POST /api/playlists. Requires the user-scoped token.
func (h *SetlistHandler) CreatePlaylist(c *gin.Context) {
	token, reason := h.gate.Check(c, authDomain.CookieUserAccessToken)
	if reason != authDomain.ReasonNone {
		h.logger.Debug("playlist export rejected", slog.String("reason", string(reason)))
		httputil.HandleErrorGin(c, authDomain.ReasonError(reason), h.logger)
		return
	}

	var req dto.CreatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	ctx := c.Request.Context()

	userID, err := h.catalog.CurrentUserID(ctx, token.Value)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	playlist, err := h.catalog.CreatePlaylist(ctx, token.Value, userID, req.Name, req.Description)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if err := h.catalog.AddTracks(ctx, token.Value, playlist.ID, req.TrackURIs); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("playlist exported",
		slog.String("playlist_id", playlist.ID),
		slog.Int("tracks", len(req.TrackURIs)),
	)
	c.JSON(http.StatusCreated, playlist)
}
