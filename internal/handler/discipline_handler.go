package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/der-api/internal/model"
	"github.com/stemsi/der-api/internal/response"
	"github.com/stemsi/der-api/internal/service"
)

// DisciplineHandler serves the /disciplinas resource and the per-course listing.
type DisciplineHandler struct {
	disciplineService service.DisciplineService
}

func NewDisciplineHandler(disciplineService service.DisciplineService) *DisciplineHandler {
	return &DisciplineHandler{disciplineService: disciplineService}
}

// List godoc
// GET /disciplinas
func (h *DisciplineHandler) List(c *gin.Context) {
	disciplines, err := h.disciplineService.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, disciplines)
}

// ListByCourse godoc
// GET /cursos/:id/disciplinas
// An unknown course answers with an empty list rather than 404.
func (h *DisciplineHandler) ListByCourse(c *gin.Context) {
	courseID, ok := parseID(c)
	if !ok {
		return
	}

	disciplines, err := h.disciplineService.ListByCourse(c.Request.Context(), courseID)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, disciplines)
}

// Get godoc
// GET /disciplinas/:id
func (h *DisciplineHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	discipline, err := h.disciplineService.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, discipline)
}

// Create godoc
// POST /disciplinas
func (h *DisciplineHandler) Create(c *gin.Context) {
	var req model.DisciplineInput
	if !bind(c, &req) {
		return
	}

	discipline, err := h.disciplineService.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, discipline)
}

// Update godoc
// PUT /disciplinas/:id
func (h *DisciplineHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.DisciplineInput
	if !bind(c, &req) {
		return
	}

	discipline, err := h.disciplineService.Update(c.Request.Context(), id, &req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, discipline)
}

// Delete godoc
// DELETE /disciplinas/:id
func (h *DisciplineHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.disciplineService.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Disciplina excluída com sucesso"})
}
