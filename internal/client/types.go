package client

// Course is the subset of course data the dashboard needs.
type Course struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// User represents an LMS user account.
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// EnrollmentState is a snapshot of one email's standing in a course.
type EnrollmentState struct {
	// User is true when an account exists for the email
	User bool `json:"user"`
	// Enrollment is true when that account is enrolled
	Enrollment bool `json:"enrollment"`
	// Allowed is true when the email may enroll once it registers
	Allowed bool `json:"allowed"`
	// AutoEnroll is true when registration enrolls automatically
	AutoEnroll bool `json:"auto_enroll"`
}

// EnrollmentChange is the state of an email before and after an enrollment action.
type EnrollmentChange struct {
	Before EnrollmentState `json:"before"`
	After  EnrollmentState `json:"after"`
}

// ProfileDistribution is the count of enrolled students per choice of a profile feature.
type ProfileDistribution struct {
	Feature             string            `json:"feature"`
	FeatureDisplayName  string            `json:"feature_display_name"`
	Type                string            `json:"type"`
	Data                map[string]int    `json:"data"`
	ChoicesDisplayNames map[string]string `json:"choices_display_names,omitempty"`
}

type gradingContextResponse struct {
	GradingConfigSummary string `json:"grading_config_summary"`
}

type studentProfilesResponse struct {
	Students []map[string]any `json:"students"`
}

type taskStatusResponse struct {
	TaskID    string `json:"task_id"`
	TaskState string `json:"task_state"`
}

type taskPayload struct {
	TaskID    string `json:"task_id"`
	TaskType  string `json:"task_type"`
	CourseID  string `json:"course_id"`
	TaskInput string `json:"task_input"`
	Requester string `json:"requester"`
}
