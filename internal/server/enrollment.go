package server

import (
	"net/http"

	"github.com/anmicius0/instructor-dashboard-api/internal/config"
	"github.com/anmicius0/instructor-dashboard-api/internal/service"
	"github.com/gin-gonic/gin"
)

func (h *Handler) studentsUpdateEnrollment(c *gin.Context) {
	action := c.Query("action")
	emails := service.SplitInputList(c.Query("emails"))
	autoEnroll := isTrue(c.Query("auto_enroll"))

	results, err := h.svc.Enrollment.UpdateEnrollment(c.Request.Context(), courseID(c), action, emails, autoEnroll)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	h.metrics.observeBatch(action, len(results), service.CountFailed(results))

	c.JSON(http.StatusOK, gin.H{
		"action":      action,
		"results":     h.rb.BuildEnrollmentResults(results),
		"auto_enroll": autoEnroll,
	})
}

func (h *Handler) getStudentProgressURL(c *gin.Context) {
	email := c.Query("student_email")
	if email == "" {
		badRequest(c, MessageStudentRequired)
		return
	}
	h.studentProgress(c, email)
}

func (h *Handler) redirectToStudentProgress(c *gin.Context) {
	h.studentProgress(c, c.Query("student_email"))
}

func (h *Handler) studentProgress(c *gin.Context, email string) {
	url, err := h.svc.Enrollment.StudentProgressURL(c.Request.Context(), courseID(c), email)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"course_id": courseID(c), "progress_url": url})
}

// resetStudentAttempts resets one student now, or submits a task resetting
// every student.
func (h *Handler) resetStudentAttempts(c *gin.Context) {
	problem := c.Query("problem_to_reset")
	email := c.Query("student_email")
	allStudents := isTrue(c.Query("all_students"))
	deleteModule := isTrue(c.Query("delete_module"))

	if problem == "" || (email == "" && !allStudents) {
		badRequest(c, MessageProblemRequired)
		return
	}
	if deleteModule && allStudents {
		badRequest(c, MessageDeleteAllStudents)
		return
	}

	key, err := service.ModuleStateKey(courseID(c), problem)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	resp := gin.H{"problem_to_reset": problem}
	ctx := c.Request.Context()
	if email != "" {
		err = h.svc.Enrollment.ResetStudentAttempts(ctx, courseID(c), email, key, deleteModule)
	} else {
		_, err = h.svc.Tasks.SubmitResetAttemptsForAllStudents(ctx, courseID(c), key, requester(c))
		if err == nil {
			h.metrics.observeTask(config.TaskTypeResetProblemAttempts)
			resp["task"] = TaskCreated
		}
	}
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
