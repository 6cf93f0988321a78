package cookie

import (
	"github.com/gin-gonic/gin"
)

// AccessTokenCookieName is read by the auth middleware when the back-office UI
// sends the token as a cookie instead of a bearer header.
const AccessTokenCookieName = "access_token"

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}
