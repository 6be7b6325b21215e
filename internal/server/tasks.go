package server

import (
	"net/http"

	"github.com/anmicius0/instructor-dashboard-api/internal/config"
	"github.com/anmicius0/instructor-dashboard-api/internal/service"
	"github.com/gin-gonic/gin"
)

// rescoreProblem submits a rescore task. A student_email takes precedence over all_students.
func (h *Handler) rescoreProblem(c *gin.Context) {
	problem := c.Query("problem_to_reset")
	email := c.Query("student_email")
	allStudents := isTrue(c.Query("all_students"))

	if problem == "" || (email == "" && !allStudents) {
		badRequest(c, MessageProblemRequired)
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
		resp["student_email"] = email
		_, err = h.svc.Tasks.SubmitRescoreForStudent(ctx, courseID(c), key, email, requester(c))
	} else {
		_, err = h.svc.Tasks.SubmitRescoreForAllStudents(ctx, courseID(c), key, requester(c))
	}
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	h.metrics.observeTask(config.TaskTypeRescoreProblem)
	resp["task"] = TaskCreated
	c.JSON(http.StatusOK, resp)
}

// listInstructorTasks lists running tasks, or the history of one problem when
// problem_urlname is given.
func (h *Handler) listInstructorTasks(c *gin.Context) {
	problem := c.Query("problem_urlname")
	email := c.Query("student_email")

	if email != "" && problem == "" {
		badRequest(c, MessageProblemURLNameFirst)
		return
	}

	var tasks []config.Task
	if problem != "" {
		key, err := service.ModuleStateKey(courseID(c), problem)
		if err != nil {
			h.abortWithError(c, err)
			return
		}
		tasks, err = h.svc.Tasks.TaskHistory(c.Request.Context(), courseID(c), key, email)
		if err != nil {
			h.abortWithError(c, err)
			return
		}
	} else {
		tasks = h.svc.Tasks.RunningTasks(c.Request.Context(), courseID(c))
	}

	c.JSON(http.StatusOK, gin.H{"tasks": h.rb.BuildTaskFeatures(tasks)})
}
