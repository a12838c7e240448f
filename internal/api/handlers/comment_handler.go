package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tanzeemhub/reports-go/internal/application"
	"github.com/tanzeemhub/reports-go/internal/domain/submission"
	"github.com/tanzeemhub/reports-go/pkg/response"
	"github.com/tanzeemhub/reports-go/pkg/utils"
)

type CommentHandler struct {
	svc *application.CommentService
}

func NewCommentHandler(svc *application.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// AddComment godoc
// @Summary Comment on a submission
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Submission ID"
// @Param input body submission.AddCommentDTO true "Comment content, optional parent"
// @Success 201 {object} submission.SubmissionComment
// @Failure 400 {object} response.ErrorResponse "Invalid content or parent"
// @Router /submissions/{id}/comments [post]
func (h *CommentHandler) AddComment(c *gin.Context) {
	submissionID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input submission.AddCommentDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	actor, err := actorFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	cm, err := h.svc.Add(actor, submissionID, input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, cm)
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	commentID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input submission.UpdateCommentDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	actor, err := actorFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	cm, err := h.svc.Update(actor, commentID, input.Content)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, cm)
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	actor, err := actorFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.svc.Delete(actor, commentID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Comment deleted"})
}

func (h *CommentHandler) ListComments(c *gin.Context) {
	submissionID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	actor, err := actorFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	includeDeleted, _ := strconv.ParseBool(c.DefaultQuery("include_deleted", "false"))

	comments, err := h.svc.List(actor, submissionID, includeDeleted)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}
