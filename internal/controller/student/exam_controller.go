package student

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
	studentExamService service.StudentExamService
	submissionService  service.SubmissionService
}

func NewExamController(studentExamService service.StudentExamService, submissionService service.SubmissionService) *ExamController {
	return &ExamController{
		studentExamService: studentExamService,
		submissionService:  submissionService,
	}
}

// GetAllExams godoc
// @Summary (Student) List all available exams
// @Tags Student - Exams & Submissions
// @Produce json
// @Success 200 {array} dto.ExamSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams [get]
func (c *ExamController) GetAllExams(ctx *gin.Context) {
	exams, err := c.studentExamService.GetAllExams()
	if err != nil {
		log.Error().Err(err).Msg("Student GetAllExams: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve exams", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, exams)
}

// GetExamDetails godoc
// @Summary (Student) Get details of a specific exam
// @Description Full exam with its questions for a student to start an attempt. Correct-answer labels are redacted.
// @Tags Student - Exams & Submissions
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Success 200 {object} dto.StudentExamDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Exam ID format"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /exams/{exam_id} [get]
func (c *ExamController) GetExamDetails(ctx *gin.Context) {
	examID, err := strconv.ParseUint(ctx.Param("exam_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Exam ID format"})
		return
	}

	exam, err := c.studentExamService.GetExamDetails(uint(examID))
	if err != nil {
		log.Warn().Err(err).Uint64("examID", examID).Msg("Student GetExamDetails: Service error")
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, exam)
}

// SubmitExam godoc
// @Summary (Student) Submit answers for an exam
// @Description Objective answers are auto-graded immediately; subjective answers await manual grading. Attempts past the exam's cap are rejected.
// @Tags Student - Exams & Submissions
// @Accept json
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Param submission_data body dto.SubmissionSubmitDTO true "Student ID and the full answer list"
// @Success 201 {object} dto.SubmissionDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Exam, student or question not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt limit exceeded"
// @Router /exams/{exam_id}/submissions [post]
func (c *ExamController) SubmitExam(ctx *gin.Context) {
	examID, err := strconv.ParseUint(ctx.Param("exam_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Exam ID format"})
		return
	}

	var req dto.SubmissionSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitExam: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	log.Info().Uint64("examID", examID).Uint("studentID", req.StudentID).
		Int("answerCount", len(req.Answers)).Msg("Received exam submission")

	submission, err := c.submissionService.Submit(uint(examID), req)
	if err != nil {
		log.Warn().Err(err).Uint64("examID", examID).Uint("studentID", req.StudentID).Msg("SubmitExam: Service error")
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, submission)
}

// GetMySubmissions godoc
// @Summary (Student) List own submissions for an exam
// @Tags Student - Exams & Submissions
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Param student_id query int true "Student ID (temporary - will come from auth)"
// @Success 200 {array} dto.SubmissionSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Router /exams/{exam_id}/my-submissions [get]
func (c *ExamController) GetMySubmissions(ctx *gin.Context) {
	examID, err := strconv.ParseUint(ctx.Param("exam_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Exam ID format"})
		return
	}
	studentID, err := strconv.ParseUint(ctx.Query("student_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Student ID format in query"})
		return
	}

	submissions, err := c.submissionService.ListStudentSubmissions(uint(examID), uint(studentID))
	if err != nil {
		log.Error().Err(err).Uint64("examID", examID).Uint64("studentID", studentID).Msg("GetMySubmissions: Service error")
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, submissions)
}

// GetSubmissionDetails godoc
// @Summary (Student) Get details of a specific submission
// @Description Full submission with per-answer scores and feedback. The pass/fail verdict is absent while manual grading is pending.
// @Tags Student - Exams & Submissions
// @Produce json
// @Param submission_id path int true "Submission ID"
// @Success 200 {object} dto.SubmissionDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Submission ID format"
// @Failure 404 {object} dto.ErrorResponse "Submission not found"
// @Router /submissions/{submission_id} [get]
func (c *ExamController) GetSubmissionDetails(ctx *gin.Context) {
	submissionID, err := strconv.ParseUint(ctx.Param("submission_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Submission ID format"})
		return
	}

	submission, err := c.submissionService.GetSubmission(uint(submissionID))
	if err != nil {
		log.Warn().Err(err).Uint64("submissionID", submissionID).Msg("GetSubmissionDetails: Service error")
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, submission)
}
