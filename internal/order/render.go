package order

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const separator = "━━━━━━━━━━━━━━━━━━"

// FormatPrice renders an amount the Argentinian way: "$ 18.750,00".
// Rounding to two decimals happens here, at the display boundary.
func FormatPrice(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)
	s := d.StringFixed(2)

	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	parts := strings.SplitN(s, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var grouped strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(r)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s$ %s,%s", sign, grouped.String(), fracPart)
}

// RenderWhatsAppText renders an order snapshot as the WhatsApp message the
// storefront hands off to the distributor.
func RenderWhatsAppText(snap Snapshot, at time.Time) string {
	var b strings.Builder

	b.WriteString("*PEDIDO - CASA FABIO*\n")
	b.WriteString(separator + "\n\n")
	b.WriteString(fmt.Sprintf("*Fecha:* %s\n\n", at.Format("02/01/2006 15:04")))
	b.WriteString("*DETALLE DEL PEDIDO*\n")
	b.WriteString(separator + "\n\n")

	for i, line := range snap.Lines {
		b.WriteString(fmt.Sprintf("%d. *%s*\n", i+1, line.Product.Code))
		b.WriteString(fmt.Sprintf("   %s\n", line.Product.Description))
		b.WriteString(fmt.Sprintf("   Cant: %d | ", line.Quantity))
		b.WriteString(fmt.Sprintf("Ganancia: %s%% | ", trimPercent(line.MarkupPercent)))
		b.WriteString(fmt.Sprintf("P.Unit: %s\n", FormatPrice(line.UnitPrice)))
		b.WriteString(fmt.Sprintf("   *Subtotal: %s*\n\n", FormatPrice(line.Subtotal)))
	}

	b.WriteString(separator + "\n")
	b.WriteString(fmt.Sprintf("*TOTAL: %s*\n", FormatPrice(snap.Total)))
	b.WriteString(separator + "\n\n")
	b.WriteString("_Distribuidora Casa Fabio - Autopartes_")

	return b.String()
}

// WhatsAppURL builds the wa.me handoff URL for the snapshot. An empty phone
// yields the generic URL that lets the sender pick a contact.
func WhatsAppURL(snap Snapshot, phone string, at time.Time) string {
	text := url.QueryEscape(RenderWhatsAppText(snap, at))
	if phone != "" {
		return fmt.Sprintf("https://wa.me/%s?text=%s", phone, text)
	}
	return fmt.Sprintf("https://wa.me/?text=%s", text)
}

// trimPercent renders a markup percentage without trailing zeros (25, 30.5).
func trimPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

// RenderOrderCSV renders an order snapshot as CSV, one row per line.
func RenderOrderCSV(snap Snapshot) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Código", "Descripción", "Cantidad", "Ganancia %", "Precio Unitario", "Subtotal"}); err != nil {
		return "", err
	}

	for _, line := range snap.Lines {
		record := []string{
			line.Product.Code,
			line.Product.Description,
			strconv.Itoa(line.Quantity),
			trimPercent(line.MarkupPercent),
			strconv.FormatFloat(line.UnitPrice, 'f', 2, 64),
			strconv.FormatFloat(line.Subtotal, 'f', 2, 64),
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}

	if err := w.Write([]string{"", "", "", "", "Total", strconv.FormatFloat(snap.Total, 'f', 2, 64)}); err != nil {
		return "", err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
