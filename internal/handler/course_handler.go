package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/der-api/internal/model"
	"github.com/stemsi/der-api/internal/response"
	"github.com/stemsi/der-api/internal/service"
)

// CourseHandler serves the /cursos resource.
type CourseHandler struct {
	courseService service.CourseService
}

func NewCourseHandler(courseService service.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// List godoc
// GET /cursos
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courseService.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, courses)
}

// Get godoc
// GET /cursos/:id
func (h *CourseHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	course, err := h.courseService.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, course)
}

// Create godoc
// POST /cursos
func (h *CourseHandler) Create(c *gin.Context) {
	var req model.CourseInput
	if !bind(c, &req) {
		return
	}

	course, err := h.courseService.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, course)
}

// Update godoc
// PUT /cursos/:id
func (h *CourseHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.CourseInput
	if !bind(c, &req) {
		return
	}

	course, err := h.courseService.Update(c.Request.Context(), id, &req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, course)
}

// Delete godoc
// DELETE /cursos/:id
func (h *CourseHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.courseService.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Curso excluído com sucesso"})
}
