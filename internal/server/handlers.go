package server

import (
	"errors"
	"net/http"

	"github.com/anmicius0/instructor-dashboard-api/internal/client"
	"github.com/anmicius0/instructor-dashboard-api/internal/service"
	"github.com/anmicius0/instructor-dashboard-api/internal/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler bundles request-time dependencies for the API routes.
type Handler struct {
	svc     Services
	metrics *Metrics
	rb      *ResponseBuilder
}

func newHandler(svc Services, metrics *Metrics) *Handler {
	return &Handler{
		svc:     svc,
		metrics: metrics,
		rb:      newResponseBuilder(),
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "status": StatusHealthy})
}

// requireCourseAccess resolves the course named by the path and checks that the
// requester holds at least level on it.
func (h *Handler) requireCourseAccess(level string) gin.HandlerFunc {
	return func(c *gin.Context) {
		courseID := service.CourseKey{Org: c.Param("org"), Course: c.Param("course"), Run: c.Param("run")}.String()
		if _, err := service.ParseCourseID(courseID); err != nil {
			h.abortWithError(c, err)
			return
		}

		if _, err := h.svc.Courses.GetCourseWithAccess(c.Request.Context(), requester(c), courseID, level); err != nil {
			h.abortWithError(c, err)
			return
		}
		c.Set(ctxCourseID, courseID)
		c.Next()
	}
}

func courseID(c *gin.Context) string {
	return c.GetString(ctxCourseID)
}

// abortWithError maps domain and collaborator errors onto HTTP responses.
func (h *Handler) abortWithError(c *gin.Context, err error) {
	var paramErr *service.InvalidParameterError
	switch {
	case errors.As(err, &paramErr):
		badRequest(c, paramErr.Error())
	case errors.Is(err, client.ErrUserNotFound):
		badRequest(c, MessageUserNotFound)
	case errors.Is(err, client.ErrRoleNotFound):
		badRequest(c, MessageRoleNotFound)
	case errors.Is(err, client.ErrModuleNotFound):
		badRequest(c, MessageModuleNotFound)
	case errors.Is(err, service.ErrTaskAlreadyRunning), errors.Is(err, service.ErrInvalidCourseID):
		badRequest(c, err.Error())
	case errors.Is(err, client.ErrCourseNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, client.ErrAccessDenied):
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		utils.WithComponent("handlers").Error("Request failed",
			zap.String(utils.FieldPath, c.Request.URL.Path),
			zap.String(utils.FieldCourseID, courseID(c)),
			zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": MessageInternalError})
	}
}

// badRequest writes a plain-text 400.
func badRequest(c *gin.Context, message string) {
	c.String(http.StatusBadRequest, message)
	c.Abort()
}

// isTrue matches the spellings the dashboard sends for a checked box.
func isTrue(value string) bool {
	return value == "true" || value == "True"
}
