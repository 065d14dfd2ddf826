package labourhdl

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"labour_ledger/internal/common"

	"github.com/gofiber/fiber/v3"
)

// HandleDownload xuất sổ chấm công ra file CSV theo phạm vi lọc từ query.
// Tối đa 10.000 dòng một lần tải; dữ liệu lớn hơn tải theo từng lát lọc.
func (h *AttendanceHandler) HandleDownload(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		match, err := attendanceScopeFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		rows, err := h.attendanceService.ExportRows(c.Context(), match)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var buf bytes.Buffer
		writer := csv.NewWriter(&buf)
		if err := writer.WriteAll(rows); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeInternalServer, "Lỗi ghi file CSV", common.StatusInternalServerError, err))
			return nil
		}
		writer.Flush()

		filename := fmt.Sprintf("attendance_%s.csv", time.Now().UTC().Format("2006-01-02"))
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
		return c.Send(buf.Bytes())
	})
}
