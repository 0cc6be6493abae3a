package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/der-api/internal/model"
	"github.com/stemsi/der-api/internal/response"
	"github.com/stemsi/der-api/internal/service"
)

// InstitutionHandler serves the /instituicoes resource.
type InstitutionHandler struct {
	institutionService service.InstitutionService
}

func NewInstitutionHandler(institutionService service.InstitutionService) *InstitutionHandler {
	return &InstitutionHandler{institutionService: institutionService}
}

func (h *InstitutionHandler) List(c *gin.Context) {
	institutions, err := h.institutionService.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, institutions)
}

func (h *InstitutionHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	institution, err := h.institutionService.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, institution)
}

func (h *InstitutionHandler) Create(c *gin.Context) {
	var req model.InstitutionInput
	if !bind(c, &req) {
		return
	}

	institution, err := h.institutionService.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, institution)
}

func (h *InstitutionHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.InstitutionInput
	if !bind(c, &req) {
		return
	}

	institution, err := h.institutionService.Update(c.Request.Context(), id, &req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, institution)
}

func (h *InstitutionHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.institutionService.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Instituição excluída com sucesso"})
}
