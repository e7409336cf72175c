package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kennywonda/EMS-sub000/internal/apperr"
	"github.com/kennywonda/EMS-sub000/internal/dto"
	"github.com/kennywonda/EMS-sub000/internal/service"
	"github.com/rs/zerolog/log"
)

type StudentController struct {
	studentService service.StudentService
}

func NewStudentController(studentService service.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// RegisterStudent godoc
// @Summary (Admin) Register a student in the directory
// @Tags Admin - Students
// @Accept json
// @Produce json
// @Param student_data body dto.StudentCreateDTO true "Student name and institutional display ID"
// @Success 201 {object} dto.StudentResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input or duplicate display ID"
// @Router /admin/students [post]
func (c *StudentController) RegisterStudent(ctx *gin.Context) {
	var req dto.StudentCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("RegisterStudent: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	student, err := c.studentService.RegisterStudent(req)
	if err != nil {
		log.Error().Err(err).Str("displayID", req.DisplayID).Msg("RegisterStudent: Service error")
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, student)
}

// ListStudents godoc
// @Summary (Admin) List registered students
// @Tags Admin - Students
// @Produce json
// @Success 200 {array} dto.StudentResponseDTO
// @Router /admin/students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.ListStudents()
	if err != nil {
		log.Error().Err(err).Msg("ListStudents: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to list students"})
		return
	}
	ctx.JSON(http.StatusOK, students)
}
