package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tanzeemhub/reports-go/internal/application"
	"github.com/tanzeemhub/reports-go/pkg/apperr"
	"github.com/tanzeemhub/reports-go/pkg/response"
	"github.com/tanzeemhub/reports-go/pkg/utils"
)

// actorFrom lifts the verified claims into the caller identity services use.
func actorFrom(c *gin.Context) (application.Actor, error) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		return application.Actor{}, err
	}
	return application.ActorFromClaims(claims), nil
}

// writeError maps service errors onto HTTP statuses. Anything without a kind
// is treated as an internal failure.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		status = http.StatusBadRequest
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindAuthorization:
		status = http.StatusForbidden
	case apperr.KindConflict:
		status = http.StatusConflict
	}
	c.JSON(status, response.ErrorResponse{Error: err.Error()})
}
