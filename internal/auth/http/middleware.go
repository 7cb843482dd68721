package http

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	authDomain "github.com/setlistify/setlistify/internal/auth/domain"
)

// The redirect router. Guards are pure presence checks: no decryption, no
// expiry check, no side effects. Validity is re-checked by the SessionGate at
// the point of use. The acquisition routes themselves are never wrapped by
// these middlewares, so the chain terminates in at most two hops and cannot loop.

// RequireUserSession guards page routes that need a user-scoped credential.
// Requests without a user access or refresh cookie are sent through the
// authorization-code flow, carrying the original path as state.
func RequireUserSession(store *CredentialStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store.Has(c, authDomain.CookieUserAccessToken) || store.Has(c, authDomain.CookieUserRefreshToken) {
			c.Next()
			return
		}

		state := authDomain.RedirectState{
			Path:  c.Request.URL.Path,
			Query: c.Query("query"),
		}
		c.Redirect(http.StatusTemporaryRedirect, "/authorize?redirect="+url.QueryEscape(state.TargetURL()))
		c.Abort()
	}
}

// RequireServiceToken guards API routes that need a service-scoped credential.
// Requests without the service access cookie are sent to the token-acquisition
// route, carrying the original path and the "query" search parameter so the
// request can be replayed exactly after acquisition.
func RequireServiceToken(store *CredentialStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store.Has(c, authDomain.CookieServiceAccessToken) {
			c.Next()
			return
		}

		target := "/generate-access-token?redirect=" + url.QueryEscape(c.Request.URL.Path)
		if q := c.Query("query"); q != "" {
			target += "&query=" + url.QueryEscape(q)
		}
		c.Redirect(http.StatusTemporaryRedirect, target)
		c.Abort()
	}
}
