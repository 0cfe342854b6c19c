package order

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPrice(t *testing.T) {
	cases := map[float64]string{
		0:         "$ 0,00",
		18750:     "$ 18.750,00",
		56250:     "$ 56.250,00",
		1234567.5: "$ 1.234.567,50",
		999:       "$ 999,00",
		-1500:     "-$ 1.500,00",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatPrice(in), "amount %v", in)
	}
}

func renderedSnapshot(t *testing.T) Snapshot {
	t.Helper()
	o := New()
	require.NoError(t, o.AddOrUpdateLine(brakeProduct(), 3, 25))
	require.NoError(t, o.AddOrUpdateLine(filterProduct(), 2, 30))
	return o.Snapshot()
}

func TestRenderWhatsAppText(t *testing.T) {
	at := time.Date(2026, 8, 30, 14, 5, 0, 0, time.UTC)
	text := RenderWhatsAppText(renderedSnapshot(t), at)

	assert.True(t, strings.HasPrefix(text, "*PEDIDO - CASA FABIO*\n"))
	assert.Contains(t, text, "*Fecha:* 30/08/2026 14:05")
	assert.Contains(t, text, "1. *FR-001*")
	assert.Contains(t, text, "   Pastillas de freno")
	assert.Contains(t, text, "Cant: 3 | Ganancia: 25% | P.Unit: $ 18.750,00")
	assert.Contains(t, text, "*Subtotal: $ 56.250,00*")
	assert.Contains(t, text, "2. *MO-210*")
	assert.Contains(t, text, "*TOTAL: $ 66.650,00*")
	assert.True(t, strings.HasSuffix(text, "_Distribuidora Casa Fabio - Autopartes_"))
}

func TestWhatsAppURL(t *testing.T) {
	at := time.Now()
	snap := renderedSnapshot(t)

	withPhone := WhatsAppURL(snap, "5491122334455", at)
	assert.True(t, strings.HasPrefix(withPhone, "https://wa.me/5491122334455?text="))
	assert.NotContains(t, withPhone, " ", "message must be URL encoded")

	generic := WhatsAppURL(snap, "", at)
	assert.True(t, strings.HasPrefix(generic, "https://wa.me/?text="))
}

func TestRenderOrderCSV(t *testing.T) {
	out, err := RenderOrderCSV(renderedSnapshot(t))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4) // header, two lines, total row

	assert.Contains(t, lines[0], "Código")
	assert.Contains(t, lines[1], "FR-001")
	assert.Contains(t, lines[1], "18750.00")
	assert.Contains(t, lines[3], "66650.00")
}
