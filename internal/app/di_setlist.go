package app

import (
	"sync"

	setlistHTTP "github.com/setlistify/setlistify/internal/setlist/http"
	setlistService "github.com/setlistify/setlistify/internal/setlist/service"
)

// setlistComponents groups the catalog proxy dependencies.
type setlistComponents struct {
	catalog setlistService.Catalog
	handler *setlistHTTP.SetlistHandler

	catalogInit sync.Once
	handlerInit sync.Once
}

// Catalog returns the Spotify Web API catalog client.
func (c *Container) Catalog() setlistService.Catalog {
	c.setlist.catalogInit.Do(func() {
		c.setlist.catalog = setlistService.NewSpotifyCatalog(c.config.SpotifyTimeout, "")
	})
	return c.setlist.catalog
}

// SetlistHandler returns the catalog HTTP handler.
func (c *Container) SetlistHandler() (*setlistHTTP.SetlistHandler, error) {
	c.setlist.handlerInit.Do(func() {
		gate, err := c.SessionGate()
		if err != nil {
			c.initErrors["setlistHandler"] = err
			return
		}
		c.setlist.handler = setlistHTTP.NewSetlistHandler(c.Catalog(), gate, c.Logger())
	})
	if storedErr, exists := c.initErrors["setlistHandler"]; exists {
		return nil, storedErr
	}
	return c.setlist.handler, nil
}
