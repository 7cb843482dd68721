package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/setlistify/setlistify/internal/auth/domain"
	"github.com/setlistify/setlistify/internal/auth/http/dto"
	"github.com/setlistify/setlistify/internal/auth/service"
	apperrors "github.com/setlistify/setlistify/internal/errors"
	"github.com/setlistify/setlistify/internal/httputil"
)

// AuthHandler serves the acquisition routes: authorization initiation, the
// provider callback, and the client-credentials token route.
type AuthHandler struct {
	exchanger service.Exchanger
	store     *CredentialStore
	logger    *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(exchanger service.Exchanger, store *CredentialStore, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{exchanger: exchanger, store: store, logger: logger}
}

// Authorize handles GET /authorize. It sends the caller to the identity
// provider's consent page, encoding the original destination as OAuth state.
func (h *AuthHandler) Authorize(c *gin.Context) {
	state := authDomain.RedirectState{
		Path:  c.Query("redirect"),
		Query: c.Query("query"),
	}.Sanitize()

	c.Redirect(http.StatusFound, h.exchanger.AuthCodeURL(state.TargetURL()))
}

// Callback handles GET /callback, the identity provider's redirect target. It
// exchanges the one-time code for a user token pair, writes the encrypted
// cookies, and sends the caller back to where they started.
func (h *AuthHandler) Callback(c *gin.Context) {
	if denied := c.Query("error"); denied != "" {
		h.logger.Warn("authorization denied by provider", slog.String("error", denied))
		httputil.HandleErrorGin(c, apperrors.Wrap(apperrors.ErrUnauthorized, "authorization denied"), h.logger)
		return
	}

	req := dto.CallbackRequest{Code: c.Query("code"), State: c.Query("state")}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	pair, err := h.exchanger.ExchangeCode(c.Request.Context(), req.Code)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if err := h.store.WriteUserTokens(c, pair); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("user tokens issued")

	if req.State == "" {
		c.JSON(http.StatusOK, dto.TokenIssuedResponse{
			ExpiresAt: pair.Access.ExpiresAt,
			Scopes:    pair.Access.Scopes,
		})
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, authDomain.ParseRedirectState(req.State).TargetURL())
}

// GenerateAccessToken handles GET /generate-access-token. It performs the
// client-credentials exchange, writes the encrypted service cookie, then
// replays the original request via a 307 redirect, or answers 200 JSON when no
// redirect destination was supplied.
//
// On a provider failure nothing is written: the caller gets a 500 and no cookie.
func (h *AuthHandler) GenerateAccessToken(c *gin.Context) {
	req := dto.GenerateAccessTokenRequest{Redirect: c.Query("redirect"), Query: c.Query("query")}

	token, err := h.exchanger.ClientCredentialsToken(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if err := h.store.WriteServiceToken(c, token); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("service token issued")

	if req.Redirect == "" {
		c.JSON(http.StatusOK, dto.TokenIssuedResponse{ExpiresAt: token.ExpiresAt})
		return
	}

	state := authDomain.RedirectState{Path: req.Redirect, Query: req.Query}
	c.Redirect(http.StatusTemporaryRedirect, state.TargetURL())
}
