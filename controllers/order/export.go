package orderControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/praveenkumar11901/marketplace-api/models"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// GET /admin/orders/export — download all orders as a spreadsheet.
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Product").Order("created_at DESC").Find(&orders).Error; err != nil {
			log.Println("orders: export query failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"OrderID", "UserID", "ProductID", "ProductTitle",
			"Quantity", "UnitPrice", "LineTotal", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.UserID)
			row.AddCell().SetValue(o.ProductID)

			title := "(deleted)"
			unitPrice := decimal.Zero
			if o.Product != nil {
				title = o.Product.Title
				unitPrice = o.Product.Price
			}
			row.AddCell().SetValue(title)
			row.AddCell().SetValue(o.Quantity)
			row.AddCell().SetValue(unitPrice.String())
			row.AddCell().SetValue(unitPrice.Mul(decimal.NewFromInt(int64(o.Quantity))).String())
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

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
