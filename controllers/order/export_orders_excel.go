package orderControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/stitchlink-api/store"
	"github.com/tealeg/xlsx"
)

// ExportOrdersToExcel writes one row per order line.
func ExportOrdersToExcel(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"OrderID", "Date", "CustomerID", "CustomerName", "Status",
			"DesignID", "FabricColor", "Quantity", "CustomNotes", "PriceAtPurchase", "LineTotal", "OrderTotal",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range s.Orders() {
			for _, item := range o.Items {
				row := sheet.AddRow()
				row.AddCell().SetValue(o.ID)
				row.AddCell().SetValue(o.Date)
				row.AddCell().SetValue(o.CustomerID)
				row.AddCell().SetValue(o.CustomerName)
				row.AddCell().SetValue(string(o.Status))
				row.AddCell().SetValue(item.DesignID)
				row.AddCell().SetValue(item.FabricColor)
				row.AddCell().SetValue(item.Quantity)
				row.AddCell().SetValue(item.CustomNotes)
				row.AddCell().SetValue(item.PriceAtPurchase.String())
				row.AddCell().SetValue(item.LineTotal().String())
				row.AddCell().SetValue(o.Total.String())
			}
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			log.Printf("❌ Failed to write orders workbook: %v", err)
		}
	}
}
