package middlewares

import (
	"gin-manufacturer/services"

	"github.com/gin-gonic/gin"
)

type PolicyKind int

const (
	PolicyOpen PolicyKind = iota
	PolicyRequireAuth
	PolicyRequireRole
)

// Policy ルートごとのアクセス制御。Open / RequireAuth / RequireRole(role)
type Policy struct {
	Kind PolicyKind
	Role string
}

var (
	Open        = Policy{Kind: PolicyOpen}
	RequireAuth = Policy{Kind: PolicyRequireAuth}
)

func RequireRole(role string) Policy {
	return Policy{Kind: PolicyRequireRole, Role: role}
}

func (p Policy) String() string {
	switch p.Kind {
	case PolicyRequireAuth:
		return "auth"
	case PolicyRequireRole:
		return "role:" + p.Role
	default:
		return "open"
	}
}

// Gatekeeper ポリシーをginのハンドラーチェーンに展開する
type Gatekeeper struct {
	authenticate gin.HandlerFunc
	userService  services.IUserService
}

func NewGatekeeper(tokenService services.ITokenService, userService services.IUserService) *Gatekeeper {
	return &Gatekeeper{
		authenticate: AuthMiddleware(tokenService),
		userService:  userService,
	}
}

// Gate ロールの確認は必ず認証の後に並べる
func (g *Gatekeeper) Gate(policy Policy) []gin.HandlerFunc {
	switch policy.Kind {
	case PolicyRequireAuth:
		return []gin.HandlerFunc{g.authenticate}
	case PolicyRequireRole:
		return []gin.HandlerFunc{g.authenticate, RoleBasedAccessControl(g.userService, policy.Role)}
	default:
		return nil
	}
}
