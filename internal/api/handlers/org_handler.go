package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tanzeemhub/reports-go/internal/application"
	"github.com/tanzeemhub/reports-go/internal/domain/org"
	"github.com/tanzeemhub/reports-go/pkg/response"
)

type OrgHandler struct {
	svc *application.OrgService
}

func NewOrgHandler(svc *application.OrgService) *OrgHandler {
	return &OrgHandler{svc: svc}
}

func (h *OrgHandler) CreateZone(c *gin.Context) {
	var input org.CreateZoneDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	zone, err := h.svc.CreateZone(input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, zone)
}

func (h *OrgHandler) CreateDila(c *gin.Context) {
	var input org.CreateDilaDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	dila, err := h.svc.CreateDila(input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dila)
}

func (h *OrgHandler) CreateMuqam(c *gin.Context) {
	var input org.CreateMuqamDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	muqam, err := h.svc.CreateMuqam(input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, muqam)
}

func (h *OrgHandler) CreateJamaat(c *gin.Context) {
	var input org.CreateJamaatDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	jamaat, err := h.svc.CreateJamaat(input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, jamaat)
}

func (h *OrgHandler) ListZones(c *gin.Context) {
	zones, err := h.svc.ListZones()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, zones)
}

func (h *OrgHandler) ListDilas(c *gin.Context) {
	dilas, err := h.svc.ListDilas()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dilas)
}

func (h *OrgHandler) ListMuqams(c *gin.Context) {
	muqams, err := h.svc.ListMuqams()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, muqams)
}

func (h *OrgHandler) ListJamaats(c *gin.Context) {
	jamaats, err := h.svc.ListJamaats()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, jamaats)
}
