package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tanzeemhub/reports-go/internal/application"
	"github.com/tanzeemhub/reports-go/internal/domain/window"
	"github.com/tanzeemhub/reports-go/internal/repository"
	"github.com/tanzeemhub/reports-go/pkg/response"
	"github.com/tanzeemhub/reports-go/pkg/utils"
)

type WindowHandler struct {
	svc   *application.WindowService
	repos *repository.Repos
}

func NewWindowHandler(svc *application.WindowService, repos *repository.Repos) *WindowHandler {
	return &WindowHandler{svc: svc, repos: repos}
}

// OpenWindow godoc
// @Summary Open a submission window for a template
// @Tags windows
// @Accept json
// @Produce json
// @Param id path int true "Template ID"
// @Param input body window.OpenWindowDTO true "Window definition"
// @Success 201 {object} window.SubmissionWindow
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Overlapping active window"
// @Router /templates/{id}/windows [post]
func (h *WindowHandler) OpenWindow(c *gin.Context) {
	templateID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input window.OpenWindowDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	actor, err := actorFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	w, err := h.svc.Open(actor, templateID, input)
	if err != nil {
		writeError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, "open", "window", fmt.Sprint(w.ID), nil, w, "submission window opened", h.repos.Audit)
	c.JSON(http.StatusCreated, w)
}

func (h *WindowHandler) UpdateWindow(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input window.UpdateWindowDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	w, err := h.svc.Update(id, input)
	if err != nil {
		writeError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, "update", "window", fmt.Sprint(w.ID), nil, w, "submission window updated", h.repos.Audit)
	c.JSON(http.StatusOK, w)
}

func (h *WindowHandler) DeactivateWindow(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	w, err := h.svc.Deactivate(id)
	if err != nil {
		writeError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, "deactivate", "window", fmt.Sprint(w.ID), nil, w, "submission window deactivated", h.repos.Audit)
	c.JSON(http.StatusOK, w)
}

func (h *WindowHandler) GetWindow(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	w, err := h.svc.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, w)
}

func (h *WindowHandler) ListWindows(c *gin.Context) {
	if tid, err := utils.ParseQueryUintParam(c, "template_id"); err == nil {
		windows, err := h.svc.ListByTemplate(tid)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, windows)
		return
	}

	windows, err := h.svc.List()
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, windows)
}

// ListOverdue reports closed windows whose expected submitter count was not
// met, with per-window counts.
func (h *WindowHandler) ListOverdue(c *gin.Context) {
	overdue, err := h.svc.ListOverdue()
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, overdue)
}
