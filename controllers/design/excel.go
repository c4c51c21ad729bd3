package designcontroller

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/stitchlink-api/models"
	"github.com/junaidrashid-git/stitchlink-api/store"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
)

// Sheet layout shared by import and export.
var designColumns = []string{"ID", "Title", "Description", "Price", "Category", "Image", "Tags", "Stitches"}

// ImportDesignsFromExcel adds one design per data row of the first sheet.
// Rows without a title or a valid price are skipped, as are rows whose ID is
// already in the catalog.
func ImportDesignsFromExcel(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		now := time.Now()
		createdCount, skippedCount := 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			design, ok := designFromRow(sheet.Rows[i], now, i)
			if !ok {
				skippedCount++
				continue
			}
			if _, err := s.Design(design.ID); err == nil {
				skippedCount++
				continue
			}
			s.AddDesign(design)
			createdCount++
		}

		log.Printf("📦 Design import: %d created, %d skipped", createdCount, skippedCount)
		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"skipped_count": skippedCount,
		})
	}
}

func designFromRow(row *xlsx.Row, now time.Time, index int) (models.Design, bool) {
	if row == nil {
		return models.Design{}, false
	}
	get := func(i int) string {
		if i < len(row.Cells) {
			return strings.TrimSpace(row.Cells[i].String())
		}
		return ""
	}

	title := get(1)
	price, err := decimal.NewFromString(get(3))
	if title == "" || err != nil || price.IsNegative() {
		return models.Design{}, false
	}
	stitches, _ := strconv.Atoi(get(7))

	id := get(0)
	if id == "" {
		id = fmt.Sprintf("d-%d-%d", now.UnixMilli(), index)
	}

	return models.Design{
		ID:          id,
		Title:       title,
		Description: orDefault(get(2), DefaultDescription),
		Price:       price,
		Category:    orDefault(get(4), DefaultCategory),
		Image:       orDefault(get(5), DefaultImage),
		Tags:        splitTags(get(6)),
		Stitches:    stitches,
	}, true
}

func ExportDesignsToExcel(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Designs")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headerRow := sheet.AddRow()
		for _, h := range designColumns {
			headerRow.AddCell().SetValue(h)
		}

		for _, d := range s.Designs() {
			row := sheet.AddRow()
			row.AddCell().SetValue(d.ID)
			row.AddCell().SetValue(d.Title)
			row.AddCell().SetValue(d.Description)
			row.AddCell().SetValue(d.Price.String())
			row.AddCell().SetValue(d.Category)
			row.AddCell().SetValue(d.Image)
			row.AddCell().SetValue(strings.Join(d.Tags, ","))
			row.AddCell().SetValue(d.Stitches)
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=designs.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			log.Printf("❌ Failed to write designs workbook: %v", err)
		}
	}
}
