package teacher

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lanhoang/perfreview/internal/dto"
	"github.com/lanhoang/perfreview/internal/service"
	"github.com/rs/zerolog/log"
)

type TeacherController struct {
	accessCodeService service.AccessCodeService
	reviewService     service.ReviewService
}

func NewTeacherController(accessCodeService service.AccessCodeService, reviewService service.ReviewService) *TeacherController {
	return &TeacherController{
		accessCodeService: accessCodeService,
		reviewService:     reviewService,
	}
}

// IssueAccessCode godoc
// @Summary (Staff) Issue a fresh submission access code
// @Description Generates a new time-limited code, replacing any existing one.
// @Tags Staff
// @Produce json
// @Success 201 {object} dto.AccessCodeDTO
// @Router /teacher/access-code [post]
func (c *TeacherController) IssueAccessCode(ctx *gin.Context) {
	session := c.accessCodeService.Issue()
	ctx.JSON(http.StatusCreated, dto.AccessCodeDTO{
		Active:      true,
		Code:        session.Code,
		Expiry:      session.Expiry,
		SecondsLeft: int64(time.Until(session.ExpiresAt()).Seconds()),
	})
}

// GetAccessCode godoc
// @Summary (Staff) Get the live access code
// @Description Returns the current code and its remaining lifetime. The dashboard polls this to drive the countdown; an expired or never-issued code yields {"active": false}, not an error.
// @Tags Staff
// @Produce json
// @Success 200 {object} dto.AccessCodeDTO
// @Router /teacher/access-code [get]
func (c *TeacherController) GetAccessCode(ctx *gin.Context) {
	session := c.accessCodeService.Current()
	if session == nil {
		ctx.JSON(http.StatusOK, dto.AccessCodeDTO{Active: false})
		return
	}
	ctx.JSON(http.StatusOK, dto.AccessCodeDTO{
		Active:      true,
		Code:        session.Code,
		Expiry:      session.Expiry,
		SecondsLeft: int64(time.Until(session.ExpiresAt()).Seconds()),
	})
}

// GetSubjects godoc
// @Summary (Staff) List subjects with filed analyses
// @Tags Staff
// @Produce json
// @Success 200 {array} string
// @Router /teacher/subjects [get]
func (c *TeacherController) GetSubjects(ctx *gin.Context) {
	subjects := c.reviewService.Subjects()
	if subjects == nil {
		subjects = []string{}
	}
	ctx.JSON(http.StatusOK, subjects)
}

// GetSubjectStats godoc
// @Summary (Staff) Aggregated performance statistics for a subject
// @Description Score-distribution histogram, per-topic mastery aggregates, subject average, and mastery rate. A subject with no analyses returns zero scripts and null stats.
// @Tags Staff
// @Produce json
// @Param subject path string true "Subject name"
// @Success 200 {object} dto.SubjectStatsDTO
// @Router /teacher/subjects/{subject}/stats [get]
func (c *TeacherController) GetSubjectStats(ctx *gin.Context) {
	subject := ctx.Param("subject")
	stats := c.reviewService.SubjectStats(subject)
	if stats.Stats == nil {
		log.Info().Str("subject", subject).Msg("Stats requested for subject with no analyses")
	}
	ctx.JSON(http.StatusOK, stats)
}

// GetSubjectAnalyses godoc
// @Summary (Staff) List the analysis records of a subject
// @Tags Staff
// @Produce json
// @Param subject path string true "Subject name"
// @Success 200 {array} dto.ExamAnalysisDTO
// @Router /teacher/subjects/{subject}/analyses [get]
func (c *TeacherController) GetSubjectAnalyses(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.reviewService.SubjectAnalyses(ctx.Param("subject")))
}

// GetTopicFolder godoc
// @Summary (Staff) Browse one topic folder of a subject
// @Description Per-student segmented answers for a single topic, the drill-down behind the topic storage explorer.
// @Tags Staff
// @Produce json
// @Param subject path string true "Subject name"
// @Param topic path string true "Topic folder name"
// @Success 200 {array} dto.TopicFolderEntryDTO
// @Router /teacher/subjects/{subject}/topics/{topic}/segments [get]
func (c *TeacherController) GetTopicFolder(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.reviewService.TopicFolder(ctx.Param("subject"), ctx.Param("topic")))
}
