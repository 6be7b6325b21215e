package server

import (
	"github.com/anmicius0/instructor-dashboard-api/internal/client"
	"github.com/anmicius0/instructor-dashboard-api/internal/config"
	"github.com/anmicius0/instructor-dashboard-api/internal/service"
	"github.com/gin-gonic/gin"
)

// Services are the collaborators the API routes delegate to.
type Services struct {
	Courses    client.CourseAccessClient
	Enrollment *service.EnrollmentManager
	Access     *service.AccessManager
	Analytics  *service.AnalyticsManager
	Tasks      *service.TaskManager
}

// NewRouter builds the Gin router with the instructor API routes.
func NewRouter(cfg *config.Config, svc Services, metrics *Metrics) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(metrics))

	handler := newHandler(svc, metrics)

	router.GET(HealthEndpoint, handler.health)
	router.GET(MetricsPath, gin.WrapH(metrics.Handler()))

	api := router.Group(CourseAPIPath, noCache, requireRequester(cfg.JWTSecret))
	staff := handler.requireCourseAccess(service.AccessStaff)
	instructor := handler.requireCourseAccess(service.AccessInstructor)

	api.GET(PathUpdateEnrollment,
		requireQueryParams(param("action", "enroll or unenroll"), param("emails", "stringified list of emails")),
		staff, handler.studentsUpdateEnrollment)
	api.GET(PathAccessAllowRevoke,
		requireQueryParams(
			param("email", "user email"),
			param("rolename", "'instructor', 'staff', or 'beta'"),
			param("mode", "'allow' or 'revoke'")),
		instructor, handler.accessAllowRevoke)
	api.GET(PathListCourseRoleMembers,
		requireQueryParams(param("rolename", "'instructor', 'staff', or 'beta'")),
		staff, handler.listCourseRoleMembers)
	api.GET(PathGradingConfig, staff, handler.gradingConfig)
	api.GET(PathEnrolledProfiles, staff, handler.enrolledStudentsProfiles)
	api.GET(PathEnrolledProfilesCSV, staff, handler.enrolledStudentsProfilesCSV)
	api.GET(PathProfileDistribution,
		requireQueryParams(param("features", "feature name or JSON list of feature names")),
		staff, handler.profileDistribution)
	api.GET(PathStudentProgressURL, staff, handler.getStudentProgressURL)
	api.GET(PathRedirectToProgress,
		requireQueryParams(param("student_email", "student email")),
		staff, handler.redirectToStudentProgress)
	api.GET(PathResetStudentAttempts, staff, handler.resetStudentAttempts)
	api.GET(PathRescoreProblem, staff, handler.rescoreProblem)
	api.GET(PathListInstructorTasks, instructor, handler.listInstructorTasks)
	api.GET(PathListForumMembers,
		requireQueryParams(param("rolename", "'Administrator', 'Moderator', or 'Community TA'")),
		staff, handler.listForumMembers)
	api.GET(PathUpdateForumMembership,
		requireQueryParams(
			param("email", "user email"),
			param("rolename", "'Administrator', 'Moderator', or 'Community TA'"),
			param("mode", "'allow' or 'revoke'")),
		instructor, handler.updateForumRoleMembership)

	return router
}
