package utils

import (
	"giftshop/entity"

	"github.com/gin-gonic/gin"
)

// CtxAdminKey is where the session gate parks the resolved admin for
// the rest of the request.
const CtxAdminKey = "currentAdmin"

func CurrentAdmin(c *gin.Context) *entity.AdminUser {
	if v, ok := c.Get(CtxAdminKey); ok {
		if admin, ok := v.(*entity.AdminUser); ok {
			return admin
		}
	}
	return nil
}
