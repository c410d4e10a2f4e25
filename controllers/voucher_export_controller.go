package controllers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/tealeg/xlsx"

	"github.com/openvoucher/voucherhub/config"
	"github.com/openvoucher/voucherhub/models"
	"github.com/openvoucher/voucherhub/services"
	"github.com/openvoucher/voucherhub/utils"
)

// exportRowLimit caps how many vouchers a single report may contain
const exportRowLimit = 10000

// DownloadVoucherReportExcel exports the filtered voucher listing as an
// Excel workbook with a per-status summary section.
func DownloadVoucherReportExcel(c *gin.Context) {
	utils.LogInfo("DownloadVoucherReportExcel called")

	vouchers, stats, ok := fetchReportData(c)
	if !ok {
		return
	}
	utils.LogDebug("Retrieved %d vouchers for Excel report", len(vouchers))

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Voucher Report")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}

	titleRow := sheet.AddRow()
	titleRow.AddCell().SetString("VOUCHERHUB - Voucher Report")
	dateRow := sheet.AddRow()
	dateRow.AddCell().SetString("Generated: " + time.Now().UTC().Format("2006-01-02 15:04:05") + " UTC")
	sheet.AddRow() // spacing

	headers := []string{"ID", "Name", "Price", "Discount %", "Status", "Available", "Expiry Date", "Used At", "Created At"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	for i := range vouchers {
		v := &vouchers[i]
		row := sheet.AddRow()
		row.AddCell().SetInt(int(v.ID))
		row.AddCell().SetString(v.Name)
		row.AddCell().SetString(v.Price.StringFixed(2))
		row.AddCell().SetString(v.DiscountPercentage.StringFixed(2))
		row.AddCell().SetString(string(v.Status))
		row.AddCell().SetBool(v.IsAvailable)
		row.AddCell().SetString(v.ExpiryDate.UTC().Format("2006-01-02 15:04"))
		if v.UsedAt != nil {
			row.AddCell().SetString(v.UsedAt.UTC().Format("2006-01-02 15:04"))
		} else {
			row.AddCell().SetString("-")
		}
		row.AddCell().SetString(v.CreatedAt.UTC().Format("2006-01-02 15:04"))
	}

	sheet.AddRow() // spacing

	summaryRow := sheet.AddRow()
	summaryRow.AddCell().SetString("Summary")
	style := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	style.Font = *font
	summaryRow.Cells[0].SetStyle(style)

	for _, line := range summaryLines(stats) {
		row := sheet.AddRow()
		row.AddCell().SetString(line[0])
		row.AddCell().SetString(line[1])
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=voucher_report_%s.xlsx", time.Now().UTC().Format("2006-01-02")))
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to write Excel file", err.Error())
		return
	}
	utils.LogInfo("Successfully generated Excel voucher report with %d rows", len(vouchers))
}

// DownloadVoucherReportPDF exports the filtered voucher listing as a PDF
func DownloadVoucherReportPDF(c *gin.Context) {
	utils.LogInfo("DownloadVoucherReportPDF called")

	vouchers, stats, ok := fetchReportData(c)
	if !ok {
		return
	}
	utils.LogDebug("Retrieved %d vouchers for PDF report", len(vouchers))

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(0, 12, "VOUCHERHUB - Voucher Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, "Generated: "+time.Now().UTC().Format("2006-01-02 15:04:05")+" UTC")
	pdf.Ln(12)

	headers := []string{"ID", "Name", "Price", "Discount %", "Status", "Available", "Expiry Date"}
	widths := []float64{15, 80, 30, 30, 25, 25, 45}

	pdf.SetFont("Arial", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for i := range vouchers {
		v := &vouchers[i]
		available := "no"
		if v.IsAvailable {
			available = "yes"
		}
		pdf.CellFormat(widths[0], 7, fmt.Sprintf("%d", v.ID), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, v.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, v.Price.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 7, v.DiscountPercentage.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 7, string(v.Status), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[5], 7, available, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[6], 7, v.ExpiryDate.UTC().Format("2006-01-02 15:04"), "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	for _, line := range summaryLines(stats) {
		pdf.Cell(60, 6, line[0])
		pdf.Cell(0, 6, line[1])
		pdf.Ln(6)
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=voucher_report_%s.pdf", time.Now().UTC().Format("2006-01-02")))
	if err := pdf.Output(c.Writer); err != nil {
		utils.LogError("Failed to write PDF file: %v", err)
		utils.InternalServerError(c, "Failed to write PDF file", err.Error())
		return
	}
	utils.LogInfo("Successfully generated PDF voucher report with %d rows", len(vouchers))
}

// fetchReportData loads the filtered vouchers plus their status summary
func fetchReportData(c *gin.Context) ([]models.Voucher, *services.Statistics, bool) {
	filters, err := parseVoucherFilters(c)
	if err != nil {
		utils.LogError("Invalid filter parameters: %v", err)
		utils.BadRequest(c, err.Error(), nil)
		return nil, nil, false
	}

	service := services.NewVoucherService(config.DB)
	vouchers, _, _, err := service.ListVouchers(1, exportRowLimit, filters)
	if err != nil {
		utils.LogError("Failed to fetch vouchers for report: %v", err)
		utils.InternalServerError(c, "Failed to fetch vouchers", err.Error())
		return nil, nil, false
	}

	stats, err := service.GetStatistics(filters)
	if err != nil {
		utils.LogError("Failed to compute report summary: %v", err)
		utils.InternalServerError(c, "Failed to compute report summary", err.Error())
		return nil, nil, false
	}

	return vouchers, stats, true
}

func summaryLines(stats *services.Statistics) [][2]string {
	return [][2]string{
		{"Total Vouchers", fmt.Sprintf("%d", stats.Total)},
		{"Unused", fmt.Sprintf("%d", stats.ByStatus[string(models.VoucherStatusUnused)])},
		{"Used", fmt.Sprintf("%d", stats.ByStatus[string(models.VoucherStatusUsed)])},
		{"Expired", fmt.Sprintf("%d", stats.ByStatus[string(models.VoucherStatusExpired)])},
	}
}
