package handlers

import (
	"net/http"
	"strings"

	"proposal_forecasting/pkg"

	"github.com/gin-gonic/gin"
)

// HeaderUserID carries the authenticated caller. Authentication itself happens upstream
// at the gateway.
const HeaderUserID = "X-User-ID"

var errMissingCaller = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing caller identity", http.StatusUnauthorized)

// callerID returns the caller id, or writes a 401 and returns false.
func callerID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.GetHeader(HeaderUserID))
	if id == "" {
		c.JSON(errMissingCaller.HTTPStatus, errMissingCaller.ToHTTPError())
		return "", false
	}
	return id, true
}
