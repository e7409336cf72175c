package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kennywonda/EMS-sub000/internal/apperr"
	"github.com/kennywonda/EMS-sub000/internal/dto"
	"github.com/kennywonda/EMS-sub000/internal/service"
	"github.com/rs/zerolog/log"
)

type ExamController struct {
	adminExamService service.AdminExamService
}

func NewExamController(adminExamService service.AdminExamService) *ExamController {
	return &ExamController{adminExamService: adminExamService}
}

// CreateExam godoc
// @Summary (Admin) Create a new exam
// @Description Admin creates an exam with its full ordered question list. Total points are computed server-side.
// @Tags Admin - Exams
// @Accept json
// @Produce json
// @Param exam_data body dto.ExamCreateDTO true "Exam definition including all questions"
// @Success 201 {object} dto.ExamResponseDTO "Exam created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid exam definition"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/exams [post]
func (c *ExamController) CreateExam(ctx *gin.Context) {
	var req dto.ExamCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateExam: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	examResp, err := c.adminExamService.CreateExam(req)
	if err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Admin CreateExam: Service error")
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: "Failed to create exam", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, examResp)
}

// GetExamDetails godoc
// @Summary (Admin) Get full exam details
// @Description Full exam definition including correct-answer labels. Admin/teacher facing only.
// @Tags Admin - Exams
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Success 200 {object} dto.ExamResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Exam ID format"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /admin/exams/{exam_id} [get]
func (c *ExamController) GetExamDetails(ctx *gin.Context) {
	examID, err := strconv.ParseUint(ctx.Param("exam_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Exam ID format"})
		return
	}

	examResp, err := c.adminExamService.GetExamDetails(uint(examID))
	if err != nil {
		log.Warn().Err(err).Uint64("examID", examID).Msg("Admin GetExamDetails: Service error")
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, examResp)
}
