package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tanzeemhub/reports-go/internal/application"
	"github.com/tanzeemhub/reports-go/internal/domain/template"
	"github.com/tanzeemhub/reports-go/internal/repository"
	"github.com/tanzeemhub/reports-go/pkg/response"
	"github.com/tanzeemhub/reports-go/pkg/utils"
)

type TemplateHandler struct {
	svc   *application.TemplateService
	repos *repository.Repos
}

func NewTemplateHandler(svc *application.TemplateService, repos *repository.Repos) *TemplateHandler {
	return &TemplateHandler{svc: svc, repos: repos}
}

// CreateTemplate godoc
// @Summary Create a report template
// @Tags templates
// @Accept json
// @Produce json
// @Param input body template.CreateTemplateDTO true "Template definition"
// @Success 201 {object} template.ReportTemplate
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Router /templates [post]
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var input template.CreateTemplateDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	actor, err := actorFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	tpl, err := h.svc.Create(actor, input)
	if err != nil {
		writeError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, "create", "template", fmt.Sprint(tpl.ID), nil, tpl, "template created", h.repos.Audit)
	c.JSON(http.StatusCreated, tpl)
}

func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input template.UpdateTemplateDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	tpl, err := h.svc.Update(id, input)
	if err != nil {
		writeError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, "update", "template", fmt.Sprint(tpl.ID), nil, tpl, "template updated", h.repos.Audit)
	c.JSON(http.StatusOK, tpl)
}

func (h *TemplateHandler) ActivateTemplate(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	tpl, err := h.svc.Activate(id)
	if err != nil {
		writeError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, "activate", "template", fmt.Sprint(tpl.ID), nil, tpl, "template activated", h.repos.Audit)
	c.JSON(http.StatusOK, tpl)
}

func (h *TemplateHandler) DeactivateTemplate(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	tpl, err := h.svc.Deactivate(id)
	if err != nil {
		writeError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, "deactivate", "template", fmt.Sprint(tpl.ID), nil, tpl, "template deactivated", h.repos.Audit)
	c.JSON(http.StatusOK, tpl)
}

func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	tpl, err := h.svc.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, tpl)
}

func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	tpls, err := h.svc.List()
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, tpls)
}
