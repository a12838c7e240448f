package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tanzeemhub/reports-go/internal/application"
	"github.com/tanzeemhub/reports-go/internal/domain/submission"
	"github.com/tanzeemhub/reports-go/internal/repository"
	"github.com/tanzeemhub/reports-go/pkg/response"
	"github.com/tanzeemhub/reports-go/pkg/utils"
)

type SubmissionHandler struct {
	svc   *application.SubmissionService
	bulk  *application.BulkService
	repos *repository.Repos
}

func NewSubmissionHandler(svc *application.SubmissionService, bulk *application.BulkService, repos *repository.Repos) *SubmissionHandler {
	return &SubmissionHandler{svc: svc, bulk: bulk, repos: repos}
}

// SaveDraft godoc
// @Summary Save or update a draft report
// @Tags submissions
// @Accept json
// @Produce json
// @Param input body submission.SaveDraftDTO true "Draft content"
// @Success 200 {object} submission.ReportSubmission
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Router /submissions/draft [post]
func (h *SubmissionHandler) SaveDraft(c *gin.Context) {
	var input submission.SaveDraftDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	actor, err := actorFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	sub, err := h.svc.SaveDraft(actor, input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

// Submit godoc
// @Summary Submit a report for review
// @Tags submissions
// @Accept json
// @Produce json
// @Param input body submission.SubmitDTO true "Report content"
// @Success 200 {object} submission.ReportSubmission
// @Failure 400 {object} response.ErrorResponse "Window not open"
// @Failure 409 {object} response.ErrorResponse "Template inactive"
// @Router /submissions/submit [post]
func (h *SubmissionHandler) Submit(c *gin.Context) {
	var input submission.SubmitDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	actor, err := actorFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	sub, err := h.svc.Submit(actor, input)
	if err != nil {
		writeError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, "submit", "submission", fmt.Sprint(sub.ID), nil, sub, "report submitted", h.repos.Audit)
	c.JSON(http.StatusOK, sub)
}

func (h *SubmissionHandler) List(c *gin.Context) {
	actor, err := actorFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	filter, err := parseListFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	subs, total, err := h.svc.List(actor, filter)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.PagedResponse{
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
		Items: subs,
	})
}

func (h *SubmissionHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	actor, err := actorFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	sub, err := h.svc.Get(actor, id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

// Approve godoc
// @Summary Approve a submitted report
// @Tags submissions
// @Accept json
// @Produce json
// @Param id path int true "Submission ID"
// @Param input body submission.ApproveDTO false "Optional comments"
// @Success 200 {object} submission.ReportSubmission
// @Failure 403 {object} response.ErrorResponse "Out of scope"
// @Failure 409 {object} response.ErrorResponse "Not in submitted state"
// @Router /submissions/{id}/approve [put]
func (h *SubmissionHandler) Approve(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input submission.ApproveDTO
	if err := c.ShouldBindJSON(&input); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	actor, err := actorFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	sub, err := h.svc.Approve(actor, id, input.Comments)
	if err != nil {
		writeError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, "approve", "submission", fmt.Sprint(sub.ID), nil, sub, "report approved", h.repos.Audit)
	c.JSON(http.StatusOK, sub)
}

// Reject godoc
// @Summary Reject a submitted report
// @Tags submissions
// @Accept json
// @Produce json
// @Param id path int true "Submission ID"
// @Param input body submission.RejectDTO true "Rejection reason"
// @Success 200 {object} submission.ReportSubmission
// @Failure 400 {object} response.ErrorResponse "Missing reason"
// @Failure 409 {object} response.ErrorResponse "Not in submitted state"
// @Router /submissions/{id}/reject [put]
func (h *SubmissionHandler) Reject(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input submission.RejectDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	actor, err := actorFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	sub, err := h.svc.Reject(actor, id, input.Reason)
	if err != nil {
		writeError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, "reject", "submission", fmt.Sprint(sub.ID), nil, sub, "report rejected", h.repos.Audit)
	c.JSON(http.StatusOK, sub)
}

func (h *SubmissionHandler) ReturnToDraft(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	actor, err := actorFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	sub, err := h.svc.ReturnToDraft(actor, id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

// BulkApprove godoc
// @Summary Approve up to 100 submissions in one call
// @Tags submissions
// @Accept json
// @Produce json
// @Param input body submission.BulkDecisionDTO true "Submission ids and optional comments"
// @Success 200 {object} response.BulkResultResponse
// @Failure 400 {object} response.ErrorResponse "Empty or oversized batch"
// @Router /submissions/bulk-approve [post]
func (h *SubmissionHandler) BulkApprove(c *gin.Context) {
	var input submission.BulkDecisionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	actor, err := actorFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	result, err := h.bulk.BulkApprove(actor, input.SubmissionIDs, input.Comments)
	if err != nil {
		writeError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, "bulk-approve", "submission", "", nil, result, "bulk approve", h.repos.Audit)
	c.JSON(http.StatusOK, result)
}

func (h *SubmissionHandler) BulkReject(c *gin.Context) {
	var input submission.BulkDecisionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	actor, err := actorFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	result, err := h.bulk.BulkReject(actor, input.SubmissionIDs, input.Reason)
	if err != nil {
		writeError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, "bulk-reject", "submission", "", nil, result, "bulk reject", h.repos.Audit)
	c.JSON(http.StatusOK, result)
}

// Ledger lists the append-only approval history of one submission.
func (h *SubmissionHandler) Ledger(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	actor, err := actorFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	entries, err := h.svc.Ledger(actor, id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

func parseListFilter(c *gin.Context) (submission.ListFilter, error) {
	var filter submission.ListFilter

	if tid, err := utils.ParseQueryUintParam(c, "template_id"); err == nil {
		filter.TemplateID = &tid
	}
	if wid, err := utils.ParseQueryUintParam(c, "window_id"); err == nil {
		filter.WindowID = &wid
	}
	if s := c.Query("status"); s != "" {
		status := submission.Status(s)
		filter.Status = &status
	}
	if from := c.Query("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return filter, fmt.Errorf("invalid from time: %w", err)
		}
		filter.From = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return filter, fmt.Errorf("invalid to time: %w", err)
		}
		filter.To = &t
	}

	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))

	return filter, nil
}
