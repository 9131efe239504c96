package orderControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/hasnaintypes/3legant-platform/models"
)

// GET /orders/export downloads all orders as an Excel workbook.
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "UserID", "TrackingNumber", "Status", "PaymentStatus", "PaymentMethod",
			"ShippingMethod", "ShippingCost", "Subtotal", "FinalTotal", "TotalItems",
			"ProductIDs", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, o := range orders {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.UserID)
			row.AddCell().SetValue(o.TrackingNumber)
			row.AddCell().SetValue(string(o.OrderStatus))
			row.AddCell().SetValue(string(o.PaymentStatus))
			row.AddCell().SetValue(string(o.PaymentMethod))
			row.AddCell().SetValue(string(o.ShippingMethod))
			row.AddCell().SetValue(o.ShippingCost)
			row.AddCell().SetValue(o.Subtotal)
			row.AddCell().SetValue(o.FinalTotal)
			row.AddCell().SetValue(o.TotalItems)

			var productIDs []string
			for _, item := range o.Items {
				productIDs = append(productIDs, strconv.Itoa(int(item.ProductID)))
			}
			row.AddCell().SetValue(strings.Join(productIDs, ","))

			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
