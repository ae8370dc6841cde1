package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	response "bookshop_billing/internal/adapter/http/dto/response"
	"bookshop_billing/internal/domain/entities"
	"bookshop_billing/internal/usecase"
	"bookshop_billing/pkg"

	"github.com/gin-gonic/gin"
)

const defaultRecentBills = 10

var errInvalidQuery = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid query parameter", http.StatusBadRequest)

// ReportHandler serves the Bill Ledger reads and the derived reports.
type ReportHandler struct {
	usecase usecase.IReportUseCase
	now     func() time.Time
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc, now: func() time.Time { return time.Now().UTC() }}
}

// ListBills godoc
// @Summary      List bills
// @Description  Filters by customer_id, or by the inclusive start/end date range. Without filters returns the whole ledger in creation order.
// @Tags         bills
// @Produce      json
// @Param        customer_id  query     string  false  "Customer ID"
// @Param        start        query     string  false  "YYYY-MM-DD"
// @Param        end          query     string  false  "YYYY-MM-DD"
// @Success      200          {array}   response.BillResponse
// @Failure      400          {object}  pkg.HTTPError
// @Router       /bills [get]
func (h *ReportHandler) ListBills(c *gin.Context) {
	ctx := c.Request.Context()
	customerID := c.Query("customer_id")
	start, end := c.Query("start"), c.Query("end")

	var (
		bills []entities.Bill
		err   error
	)
	switch {
	case customerID != "":
		bills, err = h.usecase.BillsForCustomer(ctx, customerID)
	case start != "" || end != "":
		bills, err = h.usecase.BillsInRange(ctx, start, end)
	default:
		bills, err = h.usecase.ListBills(ctx)
	}
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBills(bills))
}

// RecentBills godoc
// @Summary      Latest bills, newest date first
// @Tags         bills
// @Produce      json
// @Param        limit  query     int  false  "Maximum number of bills (default 10)"
// @Success      200    {array}   response.BillResponse
// @Failure      400    {object}  pkg.HTTPError
// @Router       /bills/recent [get]
func (h *ReportHandler) RecentBills(c *gin.Context) {
	limit := defaultRecentBills
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(errInvalidQuery.HTTPStatus, errInvalidQuery.ToHTTPError())
			return
		}
		limit = n
	}

	bills, err := h.usecase.RecentBills(c.Request.Context(), limit)
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBills(bills))
}

// GetBill godoc
// @Summary      Get a bill
// @Tags         bills
// @Produce      json
// @Param        id   path      int  true  "Bill ID"
// @Success      200  {object}  response.BillResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /bills/{id} [get]
func (h *ReportHandler) GetBill(c *gin.Context) {
	id, ok := billIDParam(c)
	if !ok {
		c.JSON(errInvalidPathID.HTTPStatus, errInvalidPathID.ToHTTPError())
		return
	}

	bill, err := h.usecase.GetBill(c.Request.Context(), id)
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBill(bill))
}

// SalesReport godoc
// @Summary      Total sales on a date
// @Tags         reports
// @Produce      json
// @Param        date  query     string  false  "YYYY-MM-DD (default today)"
// @Success      200   {object}  response.SalesResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /reports/sales [get]
func (h *ReportHandler) SalesReport(c *gin.Context) {
	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		date = h.now().Format(entities.BillDateLayout)
	}

	total, err := h.usecase.SalesOnDate(c.Request.Context(), date)
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSales(date, total))
}

// RevenueReport godoc
// @Summary      Revenue for a calendar month
// @Tags         reports
// @Produce      json
// @Param        year   query     int  false  "Year (default current)"
// @Param        month  query     int  false  "Month 1-12 (default current)"
// @Success      200    {object}  response.RevenueResponse
// @Failure      400    {object}  pkg.HTTPError
// @Router       /reports/revenue [get]
func (h *ReportHandler) RevenueReport(c *gin.Context) {
	now := h.now()
	year, okYear := intQuery(c, "year", now.Year())
	month, okMonth := intQuery(c, "month", int(now.Month()))
	if !okYear || !okMonth {
		c.JSON(errInvalidQuery.HTTPStatus, errInvalidQuery.ToHTTPError())
		return
	}

	total, err := h.usecase.RevenueInMonth(c.Request.Context(), year, month)
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRevenue(year, month, total))
}

// InventoryReport godoc
// @Summary      Stock value and low-stock summary
// @Tags         reports
// @Produce      json
// @Success      200  {object}  response.InventoryReportResponse
// @Router       /reports/inventory [get]
func (h *ReportHandler) InventoryReport(c *gin.Context) {
	report, err := h.usecase.InventoryReport(c.Request.Context())
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInventoryReport(report))
}

// CustomerReport godoc
// @Summary      Purchase totals per customer
// @Tags         reports
// @Produce      json
// @Success      200  {array}  response.CustomerPurchasesResponse
// @Router       /reports/customers [get]
func (h *ReportHandler) CustomerReport(c *gin.Context) {
	rows, err := h.usecase.CustomerReport(c.Request.Context())
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCustomerReport(rows))
}

// Dashboard godoc
// @Summary      Headline figures for today
// @Tags         reports
// @Produce      json
// @Success      200  {object}  response.DashboardResponse
// @Router       /reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *gin.Context) {
	d, err := h.usecase.Dashboard(c.Request.Context(), h.now())
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(d))
}

func billIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func intQuery(c *gin.Context, key string, fallback int) (int, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}
