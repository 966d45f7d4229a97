// internal/handlers/export.go
package handlers

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx/v3"

	"github.com/akozlova/marketplace-be/internal/core/ports"
)

// skuExportRow is one line of the sku catalog export
type skuExportRow struct {
	ID          string
	CreatedAt   time.Time
	BasePrice   decimal.Decimal
	ActualPrice decimal.Decimal
	IsHidden    bool
	ValidCount  int
	DefectCount int
	Reserved    int
}

// ExportHandler streams catalog exports
type ExportHandler struct {
	db     ports.Database
	logger *slog.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(db ports.Database, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		db:     db,
		logger: logger.With(slog.String("handler", "export")),
	}
}

// ExportSkusExcel handles GET /api/v1/export/skus.xlsx
func (h *ExportHandler) ExportSkusExcel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	h.logger.InfoContext(ctx, "starting sku export")

	rows, err := h.getSkuRows(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to retrieve sku data",
			slog.String("error", err.Error()))
		respondError(h.logger, w, http.StatusInternalServerError, "Failed to retrieve data")
		return
	}

	excelData, err := h.generateExcelFile(rows)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate Excel file",
			slog.String("error", err.Error()))
		respondError(h.logger, w, http.StatusInternalServerError, "Failed to generate Excel file")
		return
	}

	filename := fmt.Sprintf("sku_export_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(excelData)))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	if _, err := w.Write(excelData); err != nil {
		h.logger.ErrorContext(ctx, "failed to write Excel response",
			slog.String("error", err.Error()))
		return
	}

	h.logger.InfoContext(ctx, "sku export completed",
		slog.Int("total_rows", len(rows)),
		slog.String("filename", filename))
}

// getSkuRows loads the catalog with per-status stock counts.
func (h *ExportHandler) getSkuRows(ctx context.Context) ([]skuExportRow, error) {
	query := `
		SELECT sk.id, sk.created_at, sk.base_price, sk.actual_price, sk.is_hidden,
		       COUNT(st.id) FILTER (WHERE st.status = 'Valid')      AS valid_count,
		       COUNT(st.id) FILTER (WHERE st.status = 'Defect')     AS defect_count,
		       COUNT(st.id) FILTER (WHERE st.is_reserved)           AS reserved
		FROM skus sk
		LEFT JOIN items i ON i.sku_id = sk.id
		LEFT JOIN stocks st ON st.item_id = i.id
		GROUP BY sk.id, sk.created_at, sk.base_price, sk.actual_price, sk.is_hidden
		ORDER BY sk.created_at DESC`

	rows, err := h.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sku export data: %w", err)
	}
	defer rows.Close()

	var result []skuExportRow
	for rows.Next() {
		var row skuExportRow
		if err := rows.Scan(&row.ID, &row.CreatedAt, &row.BasePrice, &row.ActualPrice,
			&row.IsHidden, &row.ValidCount, &row.DefectCount, &row.Reserved); err != nil {
			return nil, fmt.Errorf("failed to scan sku export row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sku export rows: %w", err)
	}

	return result, nil
}

// generateExcelFile creates the workbook in memory from the data.
func (h *ExportHandler) generateExcelFile(data []skuExportRow) ([]byte, error) {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet("Skus")
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}

	headers := []string{
		"Sku ID", "Created At", "Base Price", "Actual Price", "Hidden",
		"Valid Items", "Defect Items", "Reserved Items",
	}

	headerRow := sheet.AddRow()
	for _, header := range headers {
		cell := headerRow.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
		cell.GetStyle().Fill.PatternType = "solid"
		cell.GetStyle().Fill.FgColor = "CCCCCC"
	}

	for _, row := range data {
		dataRow := sheet.AddRow()
		for _, value := range []string{
			row.ID,
			row.CreatedAt.Format("2006-01-02 15:04:05"),
			row.BasePrice.StringFixed(2),
			row.ActualPrice.StringFixed(2),
			h.boolValue(row.IsHidden),
			strconv.Itoa(row.ValidCount),
			strconv.Itoa(row.DefectCount),
			strconv.Itoa(row.Reserved),
		} {
			cell := dataRow.AddCell()
			cell.Value = value
		}
	}

	for i := 0; i < len(headers); i++ {
		sheet.SetColWidth(i, i, 18)
	}

	var buffer bytes.Buffer
	if err := file.Write(&buffer); err != nil {
		return nil, fmt.Errorf("failed to write Excel file to buffer: %w", err)
	}

	return buffer.Bytes(), nil
}

func (h *ExportHandler) boolValue(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}
