package server

const (
	HealthEndpoint = "/health"
	MetricsPath    = "/metrics"
	CourseAPIPath  = "/courses/:org/:course/:run/instructor/api"
)

// Endpoint names under CourseAPIPath.
const (
	PathUpdateEnrollment      = "/students_update_enrollment"
	PathAccessAllowRevoke     = "/access_allow_revoke"
	PathListCourseRoleMembers = "/list_course_role_members"
	PathGradingConfig         = "/grading_config"
	PathEnrolledProfiles      = "/enrolled_students_profiles"
	PathEnrolledProfilesCSV   = "/enrolled_students_profiles/csv"
	PathProfileDistribution   = "/profile_distribution"
	PathStudentProgressURL    = "/get_student_progress_url"
	PathRedirectToProgress    = "/redirect_to_student_progress"
	PathResetStudentAttempts  = "/reset_student_attempts"
	PathRescoreProblem        = "/rescore_problem"
	PathListInstructorTasks   = "/list_instructor_tasks"
	PathListForumMembers      = "/list_forum_members"
	PathUpdateForumMembership = "/update_forum_role_membership"
)

const (
	StatusHealthy = "healthy"
	TaskCreated   = "created"
	Done          = "YES"
)

const (
	MessageMissingParams       = "Missing required query parameter(s)"
	MessageInvalidToken        = "Invalid token"
	MessageInternalError       = "internal error"
	MessageUserNotFound        = "User does not exist."
	MessageRoleNotFound        = "Role does not exist."
	MessageModuleNotFound      = "Module does not exist."
	MessageStudentRequired     = "student_email is required"
	MessageProblemRequired     = "problem_to_reset and one of student_email or all_students are required"
	MessageDeleteAllStudents   = "delete_module cannot be combined with all_students"
	MessageProblemURLNameFirst = "student_email requires problem_urlname"
)

const (
	CacheControlNoCache = "no-cache, no-store, must-revalidate"
	ProfilesCSVFilename = "enrolled_profiles.csv"
)

// gin context keys
const (
	ctxRequester = "requester"
	ctxCourseID  = "course_id"
)
