package constants

// ユーザーロール
// ロールなしのユーザーは空文字
const (
	RoleAdmin = "admin"
	RoleNone  = ""
)

// エラーメッセージ
const (
	ErrUnexpected   = "Unexpected error"
	ErrInvalidID    = "Invalid id"
	ErrInvalidEmail = "Invalid email"
	ErrInvalidInput = "Invalid input"
)

// 認可エラーのメッセージ（{"message": ...} で返す）
const (
	MsgUnauthorized    = "UnAuthorized access"
	MsgForbiddenAccess = "Forbidden Access"
	MsgForbidden       = "forbidden"
)

// gin.Context のキー
const ContextEmailKey = "email"

// 一覧の上限件数
const (
	FeaturedProductLimit = 6
	LatestReviewLimit    = 6
)

// 決済
const (
	PaymentCurrency = "usd"
)

// 管理者付与ポリシー
const (
	AdminGrantPolicyGated  = "gated"
	AdminGrantPolicyLegacy = "legacy"
)
