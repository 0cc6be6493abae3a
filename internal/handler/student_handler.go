package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/der-api/internal/model"
	"github.com/stemsi/der-api/internal/response"
	"github.com/stemsi/der-api/internal/service"
)

// StudentHandler serves the /alunos resource.
type StudentHandler struct {
	studentService service.StudentService
}

func NewStudentHandler(studentService service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// List godoc
// GET /alunos
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.studentService.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, students)
}

// Get godoc
// GET /alunos/:id
func (h *StudentHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	student, err := h.studentService.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, student)
}

// Create godoc
// POST /alunos
func (h *StudentHandler) Create(c *gin.Context) {
	var req model.StudentInput
	if !bind(c, &req) {
		return
	}

	student, err := h.studentService.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, student)
}

// Update godoc
// PUT /alunos/:id
func (h *StudentHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.StudentInput
	if !bind(c, &req) {
		return
	}

	student, err := h.studentService.Update(c.Request.Context(), id, &req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, student)
}

// Delete godoc
// DELETE /alunos/:id
func (h *StudentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.studentService.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Aluno excluído com sucesso"})
}
