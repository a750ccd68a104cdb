package main

import (
	"gin-manufacturer/constants"
	"gin-manufacturer/controllers"
	"gin-manufacturer/middlewares"
	"net/http"

	"github.com/gin-gonic/gin"
)

type route struct {
	method  string
	path    string
	policy  middlewares.Policy
	handler gin.HandlerFunc
}

type routeHandlers struct {
	products controllers.IProductController
	users    controllers.IUserController
	reviews  controllers.IReviewController
	bookings controllers.IBookingController
	payments controllers.IPaymentController
	health   gin.HandlerFunc
	metrics  gin.HandlerFunc
}

var (
	open        = middlewares.Open
	requireAuth = middlewares.RequireAuth
	adminOnly   = middlewares.RequireRole(constants.RoleAdmin)
)

// routeTable すべてのルートとそのアクセスポリシー
func routeTable(h routeHandlers, grantPolicy string) []route {
	grantAdmin := h.users.MakeAdmin
	if grantPolicy == constants.AdminGrantPolicyLegacy {
		grantAdmin = h.users.MakeAdminLegacy
	}

	return []route{
		{http.MethodGet, "/", open, hello},
		{http.MethodGet, "/health", open, h.health},
		{http.MethodGet, "/metrics", open, h.metrics},

		{http.MethodGet, "/product", open, h.products.FindFeatured},
		{http.MethodGet, "/products", open, h.products.FindAll},
		{http.MethodPost, "/products", adminOnly, h.products.Create},
		{http.MethodGet, "/products/:id", open, h.products.FindById},
		{http.MethodPatch, "/products/:id", requireAuth, h.products.UpdateQuantity},
		{http.MethodDelete, "/products/:id", adminOnly, h.products.Delete},

		{http.MethodGet, "/user", requireAuth, h.users.FindAll},
		{http.MethodPut, "/user/admin/:email", adminGrantPolicy(grantPolicy), grantAdmin},
		{http.MethodPut, "/user/:email", open, h.users.Upsert},
		{http.MethodGet, "/admin/:email", requireAuth, h.users.CheckAdmin},

		{http.MethodGet, "/reviews", open, h.reviews.FindLatest},
		{http.MethodPost, "/reviews", requireAuth, h.reviews.Create},

		{http.MethodPost, "/booking", requireAuth, h.bookings.Create},
		{http.MethodGet, "/booking", requireAuth, h.bookings.FindAll},
		{http.MethodGet, "/booking/:id", requireAuth, h.bookings.FindById},
		{http.MethodPatch, "/booking/:id", requireAuth, h.bookings.MarkPaid},
		{http.MethodPatch, "/bookings/:id", adminOnly, h.bookings.MarkDelivered},
		{http.MethodDelete, "/bookings/:id", requireAuth, h.bookings.Delete},
		{http.MethodGet, "/bookings", requireAuth, h.bookings.FindByEmail},

		{http.MethodPost, "/create-payment-intent", requireAuth, h.payments.CreatePaymentIntent},
	}
}

// adminGrantPolicy legacyでは認証だけにして、ロールの確認はハンドラーで行う
func adminGrantPolicy(policy string) middlewares.Policy {
	if policy == constants.AdminGrantPolicyLegacy {
		return middlewares.RequireAuth
	}
	return middlewares.RequireRole(constants.RoleAdmin)
}

func hello(ctx *gin.Context) {
	ctx.String(http.StatusOK, "Hello There! from Server...")
}
