package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edulevels_backend/internals/constants"
	certificateRoute "edulevels_backend/internals/features/certificates/route"
	enrollmentRoute "edulevels_backend/internals/features/lms/enrollments/route"
	moduleRoute "edulevels_backend/internals/features/lms/modules/route"
	resultRoute "edulevels_backend/internals/features/lms/results/route"
	testRoute "edulevels_backend/internals/features/lms/tests/route"
	paymentRoute "edulevels_backend/internals/features/payment/paystack/route"
	authRoute "edulevels_backend/internals/features/users/auth/route"
	userRoute "edulevels_backend/internals/features/users/user/route"
	authMiddleware "edulevels_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api")
	authRoute.AuthRoutes(public, db)
	moduleRoute.AllModuleRoutes(public, db)
	testRoute.AllTestRoutes(public, db)
	paymentRoute.PaymentPublicRoutes(public, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	userRoute.UserRoutes(user, db)
	enrollmentRoute.EnrollmentUserRoutes(user, db)
	resultRoute.TestResultUserRoutes(user, db)
	paymentRoute.PaymentUserRoutes(user, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("manage content"), constants.AdminOnly...),
	)
	userRoute.UserAdminRoutes(admin, db)
	moduleRoute.ModuleAdminRoutes(admin, db)
	testRoute.TestAdminRoutes(admin, db)
	certificateRoute.CertificateAdminRoutes(admin, db)
}
