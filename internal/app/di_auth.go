package app

import (
	"fmt"
	"sync"

	authHTTP "github.com/setlistify/setlistify/internal/auth/http"
	authService "github.com/setlistify/setlistify/internal/auth/service"
)

// authComponents groups the credential-broker dependencies.
type authComponents struct {
	tokenCodec      authService.TokenCodec
	exchanger       authService.Exchanger
	credentialStore *authHTTP.CredentialStore
	sessionGate     *authHTTP.SessionGate
	handler         *authHTTP.AuthHandler

	tokenCodecInit      sync.Once
	exchangerInit       sync.Once
	credentialStoreInit sync.Once
	sessionGateInit     sync.Once
	handlerInit         sync.Once
}

// TokenCodec returns the cookie token codec.
func (c *Container) TokenCodec() (authService.TokenCodec, error) {
	c.auth.tokenCodecInit.Do(func() {
		key, err := c.config.CookieKey()
		if err != nil {
			c.initErrors["tokenCodec"] = fmt.Errorf("failed to load cookie encryption key: %w", err)
			return
		}
		codec, err := authService.NewTokenCodec(key, c.config.CookieCipher)
		if err != nil {
			c.initErrors["tokenCodec"] = fmt.Errorf("failed to create token codec: %w", err)
			return
		}
		c.auth.tokenCodec = codec
	})
	if storedErr, exists := c.initErrors["tokenCodec"]; exists {
		return nil, storedErr
	}
	return c.auth.tokenCodec, nil
}

// Exchanger returns the Spotify token acquisition client.
func (c *Container) Exchanger() (authService.Exchanger, error) {
	c.auth.exchangerInit.Do(func() {
		c.auth.exchanger = authService.NewSpotifyClient(authService.SpotifyClientOptions{
			ClientID:     c.config.SpotifyClientID,
			ClientSecret: c.config.SpotifyClientSecret,
			RedirectURI:  c.config.RedirectURI(),
			Scopes:       c.config.SpotifyScopes,
			Timeout:      c.config.SpotifyTimeout,
		})
	})
	return c.auth.exchanger, nil
}

// CredentialStore returns the encrypted cookie store.
func (c *Container) CredentialStore() (*authHTTP.CredentialStore, error) {
	c.auth.credentialStoreInit.Do(func() {
		codec, err := c.TokenCodec()
		if err != nil {
			c.initErrors["credentialStore"] = err
			return
		}
		c.auth.credentialStore = authHTTP.NewCredentialStore(codec, c.config.CookieSecure)
	})
	if storedErr, exists := c.initErrors["credentialStore"]; exists {
		return nil, storedErr
	}
	return c.auth.credentialStore, nil
}

// SessionGate returns the decrypt-at-use token gate.
func (c *Container) SessionGate() (*authHTTP.SessionGate, error) {
	c.auth.sessionGateInit.Do(func() {
		store, err := c.CredentialStore()
		if err != nil {
			c.initErrors["sessionGate"] = err
			return
		}
		c.auth.sessionGate = authHTTP.NewSessionGate(store)
	})
	if storedErr, exists := c.initErrors["sessionGate"]; exists {
		return nil, storedErr
	}
	return c.auth.sessionGate, nil
}

// AuthHandler returns the token acquisition HTTP handler.
func (c *Container) AuthHandler() (*authHTTP.AuthHandler, error) {
	c.auth.handlerInit.Do(func() {
		exchanger, err := c.Exchanger()
		if err != nil {
			c.initErrors["authHandler"] = err
			return
		}
		store, err := c.CredentialStore()
		if err != nil {
			c.initErrors["authHandler"] = err
			return
		}
		c.auth.handler = authHTTP.NewAuthHandler(exchanger, store, c.Logger())
	})
	if storedErr, exists := c.initErrors["authHandler"]; exists {
		return nil, storedErr
	}
	return c.auth.handler, nil
}
