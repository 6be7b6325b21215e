package server

import (
	"net/http"

	"github.com/anmicius0/instructor-dashboard-api/internal/service"
	"github.com/gin-gonic/gin"
)

func (h *Handler) gradingConfig(c *gin.Context) {
	summary, err := h.svc.Analytics.GradingConfig(c.Request.Context(), courseID(c))
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"course_id":              courseID(c),
		"grading_config_summary": summary,
	})
}

func (h *Handler) enrolledStudentsProfiles(c *gin.Context) {
	profiles, err := h.svc.Analytics.EnrolledStudentProfiles(c.Request.Context(), courseID(c))
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	students := profiles.Students
	if students == nil {
		students = []map[string]any{}
	}
	c.JSON(http.StatusOK, gin.H{
		"course_id":          courseID(c),
		"students":           students,
		"students_count":     len(students),
		"queried_features":   profiles.QueriedFeatures,
		"available_features": profiles.AvailableFeatures,
	})
}

func (h *Handler) enrolledStudentsProfilesCSV(c *gin.Context) {
	profiles, err := h.svc.Analytics.EnrolledStudentProfiles(c.Request.Context(), courseID(c))
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	data, err := h.rb.BuildCSV(profiles.QueriedFeatures, profiles.Students)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+ProfilesCSVFilename+`"`)
	c.Data(http.StatusOK, "text/csv", data)
}

func (h *Handler) profileDistribution(c *gin.Context) {
	features, err := service.ParseFeatures(c.Query("features"))
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	dists, err := h.svc.Analytics.ProfileDistributions(c.Request.Context(), courseID(c), features)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"course_id":          courseID(c),
		"queried_features":   dists.QueriedFeatures,
		"available_features": dists.AvailableFeatures,
		"display_names":      dists.DisplayNames,
		"feature_results":    dists.Results,
	})
}
