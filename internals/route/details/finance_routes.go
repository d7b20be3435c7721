package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasa_backend/internals/constants"
	donationRoute "madrasa_backend/internals/features/finance/donations/route"
	expenseRoute "madrasa_backend/internals/features/finance/expenses/route"
	feeRoute "madrasa_backend/internals/features/finance/fees/route"
	gatewayRoute "madrasa_backend/internals/features/finance/gateways/route"
	salaryRoute "madrasa_backend/internals/features/finance/salaries/route"
	reportRoute "madrasa_backend/internals/features/reports/route"
	"madrasa_backend/internals/helpers/email"
	authMiddleware "madrasa_backend/internals/middlewares/auth"
)

func FinancePublicRoutes(public fiber.Router, db *gorm.DB, mailer email.Sender) {
	donationRoute.DonationPublicRoutes(public, db, mailer)
}

func FinanceAdminRoutes(admin fiber.Router, db *gorm.DB, mailer email.Sender) {
	financeOnly := authMiddleware.OnlyRolesSlice(constants.RoleErrorFinance("keuangan"), constants.FinanceRoles)
	for _, prefix := range []string{"/fees", "/salaries", "/donations", "/expenses", "/reports", "/dashboard"} {
		admin.Use(prefix, financeOnly)
	}
	// kredensial gateway hanya admin
	admin.Use("/payment-gateways", adminOnly("payment gateway"))

	feeRoute.FeeAdminRoutes(admin, db)
	salaryRoute.SalaryAdminRoutes(admin, db)
	donationRoute.DonationAdminRoutes(admin, db, mailer)
	expenseRoute.ExpenseAdminRoutes(admin, db)
	gatewayRoute.GatewayAdminRoutes(admin, db)
	reportRoute.ReportAdminRoutes(admin, db)
}
