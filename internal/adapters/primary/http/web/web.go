// Package web serves the dashboard page.
package web

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed index.html
var indexHTML []byte

// Index serves the single-page dashboard. The page fetches its layout from
// the API and keeps its charts current over the dashboard WebSocket.
func Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}
