package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RedirectMap names the browser destinations for each flow outcome. The
// values are declared at the routing layer and injected here, so handlers
// stay free of page paths.
type RedirectMap struct {
	RegisterDone string
	LoginAdmin   string
	LoginTeacher string
	LoginStudent string
	LogoutDone   string
	ApplyDone    string
	ContactDone  string
}

// wantsHTML reports whether the client is a browser form post rather than
// an API caller, judged by the Accept header.
func wantsHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}

// respondOrRedirect sends the JSON payload to API callers and a 302 to the
// given location for browser callers.
func respondOrRedirect(c *gin.Context, status int, payload interface{}, location string) {
	if wantsHTML(c) && location != "" {
		c.Redirect(http.StatusFound, location)
		return
	}
	c.JSON(status, payload)
}
