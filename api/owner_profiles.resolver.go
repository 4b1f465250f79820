package api

import (
	"github.com/gin-gonic/gin"
)

// listOwnerProfiles returns the owner-role users available for store
// assignment.
func (m ApiHandler) listOwnerProfiles(c *gin.Context) {
	profiles, err := m.UserRoleRepository.ListOwnerProfiles(m.Db)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, profiles)
}
