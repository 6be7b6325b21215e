package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) accessAllowRevoke(c *gin.Context) {
	err := h.svc.Access.UpdateCourseAccess(c.Request.Context(), courseID(c),
		c.Query("email"), c.Query("rolename"), c.Query("mode"))
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"DONE": Done})
}

func (h *Handler) listCourseRoleMembers(c *gin.Context) {
	rolename := c.Query("rolename")
	users, err := h.svc.Access.ListCourseRoleMembers(c.Request.Context(), courseID(c), rolename)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"course_id": courseID(c),
		rolename:    h.rb.BuildUserInfo(users),
	})
}

func (h *Handler) listForumMembers(c *gin.Context) {
	rolename := c.Query("rolename")
	users, err := h.svc.Access.ListForumMembers(c.Request.Context(), courseID(c), rolename)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"course_id": courseID(c),
		rolename:    h.rb.BuildUserInfo(users),
	})
}

func (h *Handler) updateForumRoleMembership(c *gin.Context) {
	mode := c.Query("mode")
	err := h.svc.Access.UpdateForumRoleMembership(c.Request.Context(), courseID(c),
		c.Query("email"), c.Query("rolename"), mode)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"course_id": courseID(c),
		"mode":      mode,
		"DONE":      Done,
	})
}
