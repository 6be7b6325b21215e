package utils

// Log field names shared across packages.
const (
	FieldComponent = "component"
	FieldCourseID  = "course_id"
	FieldEmail     = "email"
	FieldUsername  = "username"
	FieldRole      = "rolename"
	FieldMode      = "mode"
	FieldAction    = "action"
	FieldTaskID    = "task_id"
	FieldTaskType  = "task_type"
	FieldModuleKey = "module_state_key"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldHost      = "host"
	FieldPort      = "port"
	FieldSignal    = "signal"
)
