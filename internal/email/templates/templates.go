package templates

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"isp_billing_backend/internal/models"
)

// Notification types. Anything else renders as a reminder.
const (
	TypeReminder      = "reminder"
	TypeReceipt       = "receipt"
	TypeDisconnection = "disconnection"
)

// DefaultSubject is used when the caller does not supply a subject line.
const DefaultSubject = "Billing Reminder"

const brandName = "NetLink Internet"

// Style selects the banner appearance for a notification type.
type Style struct {
	BannerColor string
	Caption     string
}

var styles = map[string]Style{
	TypeReminder:      {BannerColor: "#f0ad4e", Caption: "Payment Reminder"},
	TypeReceipt:       {BannerColor: "#5cb85c", Caption: "Payment Received"},
	TypeDisconnection: {BannerColor: "#d9534f", Caption: "Service Disconnection Notice"},
}

// StyleFor returns the style for a notification type, falling back to the
// reminder style for unrecognized or empty types.
func StyleFor(notificationType string) Style {
	if s, ok := styles[notificationType]; ok {
		return s
	}
	return styles[TypeReminder]
}

// Engine renders notification emails. Now supplies the wall-clock time stamped
// onto receipts; tests pin it to get byte-identical output.
type Engine struct {
	Now func() time.Time
}

// NewEngine creates an Engine using the real clock.
func NewEngine() *Engine {
	return &Engine{Now: time.Now}
}

type templateData struct {
	Brand       string
	Caption     string
	BannerColor string
	Name        string
	Message     template.HTML
	Wifi        string
	Amount      string
	DueDate     string
	Device      string
	Timestamp   string
}

// Render produces the plain-text and HTML bodies for one notification.
// Every client field is optional; empty fields render as "-". Rendering never
// fails: the templates are static and the data struct matches them exactly.
func (e *Engine) Render(client models.ClientSnapshot, message, notificationType string) (textBody, htmlBody string) {
	style := StyleFor(notificationType)

	data := templateData{
		Brand:       brandName,
		Caption:     style.Caption,
		BannerColor: style.BannerColor,
		Name:        strings.TrimSpace(client.Name),
		Message:     htmlMessage(message),
		Wifi:        orDash(client.Wifi),
		Amount:      displayAmount(client.Amount),
		DueDate:     orDash(client.DueDate),
		Device:      orDash(client.Phone),
	}

	var sb strings.Builder
	if notificationType == TypeReceipt {
		data.Timestamp = e.Now().Format("2006-01-02 15:04")
		_ = receiptTmpl.Execute(&sb, data)
	} else {
		_ = bannerTmpl.Execute(&sb, data)
	}
	return renderText(data, message, notificationType), sb.String()
}

// htmlMessage escapes the free-text message and converts line breaks to <br>
// so the result can be embedded verbatim in the HTML body.
func htmlMessage(message string) template.HTML {
	escaped := template.HTMLEscapeString(message)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// displayAmount prefixes the opaque amount string with the currency glyph.
func displayAmount(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return "$" + s
}

func renderText(data templateData, message, notificationType string) string {
	var b strings.Builder

	greeting := "Dear subscriber,"
	if data.Name != "" {
		greeting = "Dear " + data.Name + ","
	}

	fmt.Fprintf(&b, "%s\n%s\n\n", data.Brand, data.Caption)
	fmt.Fprintf(&b, "%s\n\n%s\n\n", greeting, message)

	if notificationType == TypeReceipt {
		fmt.Fprintf(&b, "Date: %s\n", data.Timestamp)
		fmt.Fprintf(&b, "Internet service: %s\n", data.Amount)
		fmt.Fprintf(&b, "TOTAL: %s\n", data.Amount)
		fmt.Fprintf(&b, "Payment method: Cash\n")
		b.WriteString("No signature required\n\n")
	}

	fmt.Fprintf(&b, "WiFi: %s\n", data.Wifi)
	fmt.Fprintf(&b, "Amount: %s\n", data.Amount)
	fmt.Fprintf(&b, "Due date: %s\n", data.DueDate)
	fmt.Fprintf(&b, "Device: %s\n", data.Device)
	b.WriteString("\nThis is an automated message, please do not reply.\n")
	return b.String()
}

// bannerTmpl is the shared layout for reminder and disconnection notices:
// brand header, colored status banner, message, details table.
var bannerTmpl = template.Must(template.New("banner").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="margin:0;padding:0;background-color:#f4f4f4;font-family:Arial,Helvetica,sans-serif;">
<div style="max-width:600px;margin:0 auto;background-color:#ffffff;">
  <div style="background-color:#1a3c6e;color:#ffffff;padding:20px;text-align:center;">
    <h1 style="margin:0;font-size:22px;">{{.Brand}}</h1>
  </div>
  <div style="background-color:{{.BannerColor}};color:#ffffff;padding:12px;text-align:center;font-size:16px;font-weight:bold;">{{.Caption}}</div>
  <div style="padding:20px;color:#333333;font-size:14px;line-height:1.6;">
    <p>{{if .Name}}Dear {{.Name}},{{else}}Dear subscriber,{{end}}</p>
    <p>{{.Message}}</p>
  </div>
  <div style="padding:0 20px 20px 20px;">
    <table style="width:100%;border-collapse:collapse;font-size:13px;color:#333333;">
      <tr><td style="padding:6px 10px;border:1px solid #dddddd;font-weight:bold;">WiFi</td><td style="padding:6px 10px;border:1px solid #dddddd;">{{.Wifi}}</td></tr>
      <tr><td style="padding:6px 10px;border:1px solid #dddddd;font-weight:bold;">Amount</td><td style="padding:6px 10px;border:1px solid #dddddd;">{{.Amount}}</td></tr>
      <tr><td style="padding:6px 10px;border:1px solid #dddddd;font-weight:bold;">Due date</td><td style="padding:6px 10px;border:1px solid #dddddd;">{{.DueDate}}</td></tr>
      <tr><td style="padding:6px 10px;border:1px solid #dddddd;font-weight:bold;">Device</td><td style="padding:6px 10px;border:1px solid #dddddd;">{{.Device}}</td></tr>
    </table>
  </div>
  <div style="padding:16px;text-align:center;color:#999999;font-size:11px;">This is an automated message, please do not reply.</div>
</div>
</body>
</html>
`))

// receiptTmpl is the fixed-width printed-slip layout used only for receipts.
var receiptTmpl = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="margin:0;padding:20px;background-color:#f4f4f4;">
<div style="font-family:'Courier New',Courier,monospace;font-size:12px;color:#222222;background-color:#ffffff;width:320px;margin:0 auto;border:1px dashed #999999;padding:16px;">
  <div style="text-align:center;font-weight:bold;font-size:14px;">{{.Brand}}</div>
  <div style="text-align:center;">{{.Caption}}</div>
  <div style="border-top:1px dashed #999999;margin:8px 0;"></div>
  <div>Date: {{.Timestamp}}</div>
  <div>{{if .Name}}Client: {{.Name}}{{else}}Client: -{{end}}</div>
  <div>WiFi: {{.Wifi}}</div>
  <div>Device: {{.Device}}</div>
  <div style="border-top:1px dashed #999999;margin:8px 0;"></div>
  <table style="width:100%;font-family:'Courier New',Courier,monospace;font-size:12px;">
    <tr><td>Internet service</td><td style="text-align:right;">{{.Amount}}</td></tr>
    <tr><td style="font-weight:bold;">TOTAL</td><td style="text-align:right;font-weight:bold;">{{.Amount}}</td></tr>
  </table>
  <div style="border-top:1px dashed #999999;margin:8px 0;"></div>
  <div>Payment method: Cash</div>
  <div>Next due date: {{.DueDate}}</div>
  <div style="margin:8px 0;">{{.Message}}</div>
  <div style="border-top:1px dashed #999999;margin:8px 0;"></div>
  <div style="text-align:center;">No signature required</div>
  <div style="text-align:center;">Thank you for your payment</div>
</div>
</body>
</html>
`))
