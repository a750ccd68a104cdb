package middlewares

import (
	"gin-manufacturer/constants"
	"gin-manufacturer/services"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware Authorizationヘッダーがなければ401、トークンの検証に失敗したら403
// 成功したらトークンのemailをctxに入れる
func AuthMiddleware(tokenService services.ITokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": constants.MsgUnauthorized})
			return
		}

		claims, err := tokenService.Verify(bearerToken(header))
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": constants.MsgForbiddenAccess})
			return
		}

		ctx.Set(constants.ContextEmailKey, claims.Email)

		ctx.Next()
	}
}

// bearerToken "Bearer <token>" の2番目の要素。なければ空文字（=Malformed）
func bearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// AuthenticatedEmail AuthMiddlewareが入れたemailを取り出す
func AuthenticatedEmail(ctx *gin.Context) (string, bool) {
	email := ctx.GetString(constants.ContextEmailKey)
	return email, email != ""
}
