package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/der-api/internal/model"
	"github.com/stemsi/der-api/internal/response"
	"github.com/stemsi/der-api/internal/service"
)

// ProfessorHandler serves the /professores resource.
type ProfessorHandler struct {
	professorService service.ProfessorService
}

func NewProfessorHandler(professorService service.ProfessorService) *ProfessorHandler {
	return &ProfessorHandler{professorService: professorService}
}

// List godoc
// GET /professores
// Each row carries the institution's tx_sigla and tx_descricao.
func (h *ProfessorHandler) List(c *gin.Context) {
	professors, err := h.professorService.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, professors)
}

// Get godoc
// GET /professores/:id
func (h *ProfessorHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	professor, err := h.professorService.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, professor)
}

// Create godoc
// POST /professores
func (h *ProfessorHandler) Create(c *gin.Context) {
	var req model.ProfessorInput
	if !bind(c, &req) {
		return
	}

	professor, err := h.professorService.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, professor)
}

// Update godoc
// PUT /professores/:id
func (h *ProfessorHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.ProfessorInput
	if !bind(c, &req) {
		return
	}

	professor, err := h.professorService.Update(c.Request.Context(), id, &req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, professor)
}

// Delete godoc
// DELETE /professores/:id
func (h *ProfessorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.professorService.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Professor excluído com sucesso"})
}
