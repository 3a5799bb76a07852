package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyaga-richard/tire-manager-sub000/internal/core/types"
	"github.com/nyaga-richard/tire-manager-sub000/internal/domain/ledger"
)

func sampleReport() *ledger.Report {
	price := types.MustMoney("500")
	entries := []ledger.Entry{
		{
			Date:           time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
			UserName:       "wanjiku",
			Location:       "Main Store",
			Opening:        0,
			QtyIn:          1,
			Closing:        1,
			Price:          &price,
			Reference:      `Kingsway "KT" Tyres/INV-204`,
			DocumentNumber: "GRN-2026-031",
			TypeLabel:      "Purchase",
		},
		{
			Date:           time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
			UserName:       "System",
			Location:       "Main Store",
			Opening:        1,
			QtyOut:         1,
			Closing:        0,
			Reference:      "KBX 123A/FL",
			DocumentNumber: "INST-1",
			TypeLabel:      "Installation",
		},
	}
	return ledger.BuildReport(
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		entries,
	)
}

func TestBuildLedgerCSV(t *testing.T) {
	out := string(BuildLedgerCSV(sampleReport(), DefaultFormat()))

	assert.True(t, strings.HasPrefix(out, "\xEF\xBB\xBF"), "UTF-8 BOM")

	lines := strings.Split(strings.TrimSuffix(out, "\r\n"), "\r\n")
	require.Len(t, lines, 3, "header plus one row per entry")

	assert.Contains(t, lines[0], `"Date","Type","Reference"`)
	assert.Contains(t, lines[1], `"2026-03-01"`)
	assert.Contains(t, lines[1], `"Kingsway ""KT"" Tyres/INV-204"`, "embedded quotes doubled")
	assert.Contains(t, lines[1], `"KES 500.00"`)
	assert.Contains(t, lines[2], `""`, "missing price renders empty, not zero")
	assert.Contains(t, lines[2], `"Installation"`)
}

func TestBuildLedgerPDF(t *testing.T) {
	out, err := BuildLedgerPDF(sampleReport(), DefaultFormat())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"))
}

func TestBuildLedgerXLSX(t *testing.T) {
	out, err := BuildLedgerXLSX(sampleReport(), DefaultFormat())
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	// XLSX is a zip archive
	assert.Equal(t, "PK", string(out[:2]))
}
