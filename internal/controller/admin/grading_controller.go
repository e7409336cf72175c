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

type GradingController struct {
	gradingService    service.GradingService
	submissionService service.SubmissionService
}

func NewGradingController(gradingService service.GradingService, submissionService service.SubmissionService) *GradingController {
	return &GradingController{gradingService: gradingService, submissionService: submissionService}
}

// ListSubmissions godoc
// @Summary (Teacher) List all submissions for an exam
// @Tags Teacher - Grading
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Success 200 {array} dto.SubmissionSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Exam ID format"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /admin/exams/{exam_id}/submissions [get]
func (c *GradingController) ListSubmissions(ctx *gin.Context) {
	examID, err := strconv.ParseUint(ctx.Param("exam_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Exam ID format"})
		return
	}

	submissions, err := c.submissionService.ListSubmissions(uint(examID))
	if err != nil {
		log.Error().Err(err).Uint64("examID", examID).Msg("ListSubmissions: Service error")
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, submissions)
}

// ListPendingSubmissions godoc
// @Summary (Teacher) List submissions awaiting manual grading
// @Description Submissions still in status "submitted", i.e. with at least one ungraded subjective answer.
// @Tags Teacher - Grading
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Success 200 {array} dto.SubmissionSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Exam ID format"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /admin/exams/{exam_id}/submissions/pending [get]
func (c *GradingController) ListPendingSubmissions(ctx *gin.Context) {
	examID, err := strconv.ParseUint(ctx.Param("exam_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Exam ID format"})
		return
	}

	submissions, err := c.gradingService.ListPendingSubmissions(uint(examID))
	if err != nil {
		log.Error().Err(err).Uint64("examID", examID).Msg("ListPendingSubmissions: Service error")
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, submissions)
}

// GradeSubmission godoc
// @Summary (Teacher) Manually grade the subjective answers of a submission
// @Description Batch point awards for every subjective answer. Re-aggregates the score and moves the submission to its terminal "graded" state.
// @Tags Teacher - Grading
// @Accept json
// @Produce json
// @Param submission_id path int true "Submission ID"
// @Param grades body dto.GradeSubmissionDTO true "Point awards and optional feedback per subjective question"
// @Success 200 {object} dto.SubmissionDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Out-of-range points, type mismatch or incomplete grade batch"
// @Failure 404 {object} dto.ErrorResponse "Submission or question not found"
// @Router /admin/submissions/{submission_id}/grade [post]
func (c *GradingController) GradeSubmission(ctx *gin.Context) {
	submissionID, err := strconv.ParseUint(ctx.Param("submission_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Submission ID format"})
		return
	}

	var req dto.GradeSubmissionDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("GradeSubmission: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	submission, err := c.gradingService.GradeSubmission(uint(submissionID), req)
	if err != nil {
		log.Warn().Err(err).Uint64("submissionID", submissionID).Msg("GradeSubmission: Service error")
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, submission)
}
