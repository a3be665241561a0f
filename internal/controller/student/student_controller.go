package student

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lanhoang/perfreview/internal/dto"
	"github.com/lanhoang/perfreview/internal/service"
	"github.com/rs/zerolog/log"
)

// Scripts are photos or scans of a single exam sheet; anything bigger than
// this is almost certainly the wrong file.
const maxScriptSize = 20 << 20

type StudentController struct {
	submissionService service.SubmissionService
	reviewService     service.ReviewService
}

func NewStudentController(submissionService service.SubmissionService, reviewService service.ReviewService) *StudentController {
	return &StudentController{
		submissionService: submissionService,
		reviewService:     reviewService,
	}
}

// SubmitExam godoc
// @Summary (Student) Submit a scanned exam script for analysis
// @Description Validates the staff access code, forwards the script to the analysis pipeline, and files the resulting record. Resubmitting for the same subject replaces the previous record.
// @Tags Student
// @Accept mpfd
// @Produce json
// @Param file formData file true "Scanned exam script (image or PDF)"
// @Param access_code formData string true "Live staff access code"
// @Param student_name formData string true "Student name"
// @Param student_id formData string true "Student registration number"
// @Success 200 {object} dto.ExamAnalysisDTO
// @Failure 400 {object} dto.ErrorResponse "Missing file or form fields"
// @Failure 401 {object} dto.ErrorResponse "Invalid or expired access code"
// @Failure 502 {object} dto.ErrorResponse "Analysis pipeline failed; retry with the same file"
// @Router /submissions [post]
func (c *StudentController) SubmitExam(ctx *gin.Context) {
	var form dto.SubmitExamForm
	if err := ctx.ShouldBind(&form); err != nil {
		log.Warn().Err(err).Msg("SubmitExam: Failed to bind form")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid submission form", Details: []string{err.Error()}})
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "A script file is required"})
		return
	}
	if fileHeader.Size > maxScriptSize {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Script file is too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error().Err(err).Str("fileName", fileHeader.Filename).Msg("SubmitExam: Failed to open uploaded file")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Could not read uploaded file"})
		return
	}
	defer file.Close()

	document, err := io.ReadAll(file)
	if err != nil {
		log.Error().Err(err).Str("fileName", fileHeader.Filename).Msg("SubmitExam: Failed to read uploaded file")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Could not read uploaded file"})
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	analysis, err := c.submissionService.Submit(ctx.Request.Context(), service.SubmitExamRequest{
		Document:    document,
		MIMEType:    mimeType,
		FileName:    fileHeader.Filename,
		AccessCode:  form.AccessCode,
		StudentName: form.StudentName,
		StudentID:   form.StudentID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAccessCode):
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired access code. Ask your instructor for a current one."})
		case errors.Is(err, service.ErrProcessingFailure):
			ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{Message: "The analysis service could not process this script. Please try again.", Details: []string{err.Error()}})
		default:
			log.Error().Err(err).Str("studentID", form.StudentID).Msg("SubmitExam: Service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to file the analysis", Details: []string{err.Error()}})
		}
		return
	}
	ctx.JSON(http.StatusOK, analysis)
}

// GetStudentAnalyses godoc
// @Summary (Student) List a student's analysis records
// @Description All filed analyses for one registration number, newest submissions first.
// @Tags Student
// @Produce json
// @Param student_id path string true "Student registration number"
// @Success 200 {array} dto.ExamAnalysisDTO
// @Router /students/{student_id}/analyses [get]
func (c *StudentController) GetStudentAnalyses(ctx *gin.Context) {
	studentID := ctx.Param("student_id")
	ctx.JSON(http.StatusOK, c.reviewService.StudentAnalyses(studentID))
}
