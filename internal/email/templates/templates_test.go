package templates_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isp_billing_backend/internal/email/templates"
	"isp_billing_backend/internal/models"
)

func fixedEngine() *templates.Engine {
	return &templates.Engine{
		Now: func() time.Time {
			return time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
		},
	}
}

func TestRender_Deterministic(t *testing.T) {
	t.Parallel()

	engine := fixedEngine()
	client := models.ClientSnapshot{
		Name:    "Ana",
		Amount:  "500",
		DueDate: "2025-02-01",
		Wifi:    "ana-wifi",
	}

	for _, typ := range []string{templates.TypeReminder, templates.TypeReceipt, templates.TypeDisconnection} {

		typ := typ
		t.Run(typ, func(t *testing.T) {
			t.Parallel()

			text1, html1 := engine.Render(client, "Your payment is due.", typ)
			text2, html2 := engine.Render(client, "Your payment is due.", typ)
			assert.Equal(t, text1, text2)
			assert.Equal(t, html1, html2)
		})
	}
}

func TestRender_EmptySnapshotUsesPlaceholders(t *testing.T) {
	t.Parallel()

	engine := fixedEngine()
	text, html := engine.Render(models.ClientSnapshot{}, "hello", templates.TypeReminder)

	require.NotEmpty(t, html)
	assert.Contains(t, html, "Dear subscriber,")
	assert.Contains(t, html, ">-</td>")

	assert.Contains(t, text, "WiFi: -\n")
	assert.Contains(t, text, "Amount: -\n")
	assert.Contains(t, text, "Due date: -\n")
	assert.Contains(t, text, "Device: -\n")
}

func TestRender_BannerStylePerType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ     string
		color   string
		caption string
	}{
		{templates.TypeReminder, "#f0ad4e", "Payment Reminder"},
		{templates.TypeDisconnection, "#d9534f", "Service Disconnection Notice"},
	}

	engine := fixedEngine()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.typ, func(t *testing.T) {
			t.Parallel()

			_, html := engine.Render(models.ClientSnapshot{}, "msg", tt.typ)
			assert.Contains(t, html, tt.color)
			assert.Contains(t, html, tt.caption)
		})
	}
}

func TestRender_UnknownTypeFallsBackToReminder(t *testing.T) {
	t.Parallel()

	engine := fixedEngine()
	_, known := engine.Render(models.ClientSnapshot{}, "msg", templates.TypeReminder)
	_, unknown := engine.Render(models.ClientSnapshot{}, "msg", "newsletter")
	_, empty := engine.Render(models.ClientSnapshot{}, "msg", "")

	assert.Equal(t, known, unknown)
	assert.Equal(t, known, empty)
}

func TestRender_ReceiptSlip(t *testing.T) {
	t.Parallel()

	engine := fixedEngine()
	client := models.ClientSnapshot{
		Name:   "Ana",
		Amount: "500",
		Wifi:   "ana-wifi",
	}
	text, html := engine.Render(client, "Thank you.", templates.TypeReceipt)

	assert.Contains(t, html, "Courier New")
	assert.Contains(t, html, "Date: 2025-03-15 10:30")
	assert.Contains(t, html, "Payment method: Cash")
	assert.Contains(t, html, "No signature required")
	assert.Equal(t, 2, strings.Count(html, "$500"), "amount must appear as line item and total")
	assert.NotContains(t, html, "#5cb85c", "receipt uses the slip layout, not the banner")

	assert.Contains(t, text, "TOTAL: $500")
	assert.Contains(t, text, "Payment method: Cash")
}

func TestRender_AmountCurrencyPrefix(t *testing.T) {
	t.Parallel()

	engine := fixedEngine()
	_, html := engine.Render(models.ClientSnapshot{Amount: "1200"}, "msg", templates.TypeReminder)
	assert.Contains(t, html, "$1200")
}

func TestRender_MessageLineBreaksAndEscaping(t *testing.T) {
	t.Parallel()

	engine := fixedEngine()
	_, html := engine.Render(models.ClientSnapshot{}, "line one\nline two", templates.TypeReminder)
	assert.Contains(t, html, "line one<br>line two")

	_, html = engine.Render(models.ClientSnapshot{}, "<script>alert(1)</script>", templates.TypeReminder)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestStyleFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Payment Received", templates.StyleFor(templates.TypeReceipt).Caption)
	assert.Equal(t, templates.StyleFor(templates.TypeReminder), templates.StyleFor("bogus"))
}
