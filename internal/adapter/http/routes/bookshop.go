package routes

import (
	"bookshop_billing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers = "/customers"
	PathItems     = "/items"
	PathCart      = "/cart"
	PathBills     = "/bills"
	PathPayments  = "/payments"
	PathReports   = "/reports"
)

func addCustomerRoutes(rg *gin.RouterGroup, h *handlers.CustomerHandler) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", h.CreateCustomer)
		customers.GET("", h.ListCustomers)
		customers.GET("/:id", h.GetCustomer)
		customers.PUT("/:id", h.UpdateCustomer)
		customers.DELETE("/:id", h.DeleteCustomer)
	}
}

func addItemRoutes(rg *gin.RouterGroup, h *handlers.ItemHandler) {
	items := rg.Group(PathItems)
	{
		items.POST("", h.CreateItem)
		items.GET("", h.ListItems)
		items.GET("/low-stock", h.ListLowStock)
		items.GET("/in-stock", h.ListInStock)
		items.GET("/:id", h.GetItem)
		items.PUT("/:id", h.UpdateItem)
		items.DELETE("/:id", h.DeleteItem)
		items.PATCH("/:id/stock", h.AdjustStock)
	}
}

func addCartRoutes(rg *gin.RouterGroup, h *handlers.CartHandler) {
	cart := rg.Group(PathCart)
	{
		cart.GET("", h.GetCart)
		cart.DELETE("", h.ClearCart)
		cart.POST("/lines", h.AddLine)
		cart.DELETE("/lines/:index", h.RemoveLine)
		cart.POST("/commit", h.Commit)
	}
}

func addBillRoutes(rg *gin.RouterGroup, reports *handlers.ReportHandler, payments *handlers.BillingPaymentHandler) {
	bills := rg.Group(PathBills)
	{
		bills.GET("", reports.ListBills)
		bills.GET("/recent", reports.RecentBills)
		bills.GET("/:id", reports.GetBill)
		bills.POST("/:id/payments", payments.CreatePayment)
		bills.GET("/:id/payments", payments.ListPayments)
	}

	rg.GET(PathPayments+"/:payment_id", payments.GetPayment)
}

func addReportRoutes(rg *gin.RouterGroup, h *handlers.ReportHandler) {
	reports := rg.Group(PathReports)
	{
		reports.GET("/sales", h.SalesReport)
		reports.GET("/revenue", h.RevenueReport)
		reports.GET("/inventory", h.InventoryReport)
		reports.GET("/customers", h.CustomerReport)
		reports.GET("/dashboard", h.Dashboard)
	}
}
