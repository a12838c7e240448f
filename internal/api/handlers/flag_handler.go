package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tanzeemhub/reports-go/internal/application"
	"github.com/tanzeemhub/reports-go/internal/domain/submission"
	"github.com/tanzeemhub/reports-go/pkg/response"
	"github.com/tanzeemhub/reports-go/pkg/utils"
)

type FlagHandler struct {
	svc *application.FlagService
}

func NewFlagHandler(svc *application.FlagService) *FlagHandler {
	return &FlagHandler{svc: svc}
}

// RaiseFlag godoc
// @Summary Raise an attention flag on a submission
// @Tags flags
// @Accept json
// @Produce json
// @Param id path int true "Submission ID"
// @Param input body submission.RaiseFlagDTO true "Flag reason"
// @Success 201 {object} submission.SubmissionFlag
// @Failure 409 {object} response.ErrorResponse "Active flag already exists"
// @Router /submissions/{id}/flags [post]
func (h *FlagHandler) RaiseFlag(c *gin.Context) {
	submissionID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input submission.RaiseFlagDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	actor, err := actorFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	flag, err := h.svc.Raise(actor, submissionID, input.Reason)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, flag)
}

func (h *FlagHandler) ResolveFlag(c *gin.Context) {
	flagID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input submission.ResolveFlagDTO
	if err := c.ShouldBindJSON(&input); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	actor, err := actorFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	flag, err := h.svc.Resolve(actor, flagID, input.Notes)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, flag)
}

func (h *FlagHandler) ListFlags(c *gin.Context) {
	submissionID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	flags, err := h.svc.ListBySubmission(submissionID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, flags)
}
