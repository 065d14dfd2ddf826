// Package channels - các kênh gửi thông báo ra ngoài hệ thống.
package channels

import (
	"fmt"
	"time"

	"labour_ledger/config"

	"gopkg.in/gomail.v2"
)

// PayslipNotice là nội dung thông báo lương gửi cho lao động.
type PayslipNotice struct {
	LabourerName     string
	StartPeriod      time.Time
	EndPeriod        time.Time
	TotalDaysPresent int64
	DailyWage        float64
	TotalSalary      float64
	PaymentDate      time.Time
	PayslipURL       string
}

// SendPayslipEmail gửi phiếu lương qua SMTP.
// Trả về lỗi khi SMTP chưa cấu hình; caller quyết định mức độ nghiêm trọng.
func SendPayslipEmail(cfg *config.Configuration, recipient string, notice *PayslipNotice) error {
	if cfg.SMTP_Host == "" {
		return fmt.Errorf("SMTP chưa được cấu hình")
	}

	htmlContent := fmt.Sprintf(`
		<p>Chào %s,</p>
		<p>Lương kỳ công từ <b>%s</b> đến <b>%s</b> của bạn đã được thanh toán ngày <b>%s</b>.</p>
		<table style="border-collapse:collapse">
			<tr><td style="padding:4px 12px">Số ngày công</td><td style="padding:4px 12px"><b>%d</b></td></tr>
			<tr><td style="padding:4px 12px">Lương công nhật</td><td style="padding:4px 12px"><b>%.2f</b></td></tr>
			<tr><td style="padding:4px 12px">Tổng lương</td><td style="padding:4px 12px"><b>%.2f</b></td></tr>
		</table>`,
		notice.LabourerName,
		notice.StartPeriod.Format("2006-01-02"),
		notice.EndPeriod.Format("2006-01-02"),
		notice.PaymentDate.Format("2006-01-02"),
		notice.TotalDaysPresent,
		notice.DailyWage,
		notice.TotalSalary,
	)
	if notice.PayslipURL != "" {
		htmlContent += fmt.Sprintf(`<p><a href="%s">Xem phiếu lương chi tiết</a></p>`, notice.PayslipURL)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", cfg.SMTP_From)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", fmt.Sprintf("Thông báo lương kỳ %s - %s",
		notice.StartPeriod.Format("2006-01-02"), notice.EndPeriod.Format("2006-01-02")))
	msg.SetBody("text/html", htmlContent)

	dialer := gomail.NewDialer(cfg.SMTP_Host, cfg.SMTP_Port, cfg.SMTP_Username, cfg.SMTP_Password)
	return dialer.DialAndSend(msg)
}
