package middlewares

import (
	"gin-manufacturer/constants"
	"gin-manufacturer/infra"
	"gin-manufacturer/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RoleBasedAccessControl 指定されたロールのみアクセスを許可するミドルウェア
// AuthMiddlewareの後に使用することを想定（ctxに"email"が設定されている必要がある）
func RoleBasedAccessControl(userService services.IUserService, allowedRoles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		email, ok := AuthenticatedEmail(ctx)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": constants.MsgUnauthorized})
			return
		}

		// 重要: トークンではなくDBに保存されたロールで判定する
		// 管理者権限を外されたユーザーは次のリクエストから拒否される
		hasAccess, err := userService.HasRole(ctx.Request.Context(), email, allowedRoles...)
		if err != nil {
			infra.LoggerFromContext(ctx.Request.Context()).Error("role lookup failed",
				zap.String("email", email), zap.Error(err))
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
			return
		}

		if !hasAccess {
			infra.LoggerFromContext(ctx.Request.Context()).Info("access denied",
				zap.String("email", email), zap.Strings("required_roles", allowedRoles))
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": constants.MsgForbidden})
			return
		}

		ctx.Next()
	}
}
