package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tanzeemhub/reports-go/internal/application"
	"github.com/tanzeemhub/reports-go/pkg/response"
	"github.com/tanzeemhub/reports-go/pkg/utils"
)

type AttachmentHandler struct {
	svc *application.AttachmentService
}

func NewAttachmentHandler(svc *application.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{svc: svc}
}

// Upload godoc
// @Summary Attach a file to a draft submission
// @Tags attachments
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Submission ID"
// @Param question_id formData string true "Question the file answers"
// @Param description formData string false "Attachment description"
// @Param file formData file true "Payload, max 10MB"
// @Success 201 {object} submission.FileAttachment
// @Failure 400 {object} response.ErrorResponse "Missing file or oversized payload"
// @Failure 409 {object} response.ErrorResponse "Submission is not a draft"
// @Router /submissions/{id}/attachments [post]
func (h *AttachmentHandler) Upload(c *gin.Context) {
	submissionID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file is required"})
		return
	}

	actor, err := actorFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "failed to read file: " + err.Error()})
		return
	}
	defer src.Close()

	att, err := h.svc.Upload(c.Request.Context(), actor, application.UploadAttachmentInput{
		SubmissionID: submissionID,
		QuestionID:   c.PostForm("question_id"),
		FileName:     fileHeader.Filename,
		ContentType:  fileHeader.Header.Get("Content-Type"),
		Size:         fileHeader.Size,
		Description:  c.PostForm("description"),
		Data:         src,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, att)
}

func (h *AttachmentHandler) Download(c *gin.Context) {
	attachmentID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	actor, err := actorFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	att, reader, err := h.svc.Download(c.Request.Context(), actor, attachmentID)
	if err != nil {
		writeError(c, err)
		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", `attachment; filename="`+att.FileName+`"`)
	c.DataFromReader(http.StatusOK, att.Size, att.ContentType, reader, nil)
}

func (h *AttachmentHandler) Delete(c *gin.Context) {
	attachmentID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	actor, err := actorFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.svc.Remove(c.Request.Context(), actor, attachmentID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Attachment removed"})
}

func (h *AttachmentHandler) ListBySubmission(c *gin.Context) {
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

	atts, err := h.svc.ListBySubmission(actor, submissionID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, atts)
}
