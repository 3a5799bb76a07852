package export

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/nyaga-richard/tire-manager-sub000/internal/domain/ledger"
)

// utf8BOM lets Excel detect UTF-8 instead of assuming a legacy codepage.
const utf8BOM = "\xEF\xBB\xBF"

var csvHeader = []string{
	"Date", "Type", "Reference", "Document No", "User", "Location",
	"Opening Stock", "Qty In", "Qty Out", "Closing Stock", "Price",
}

// BuildLedgerCSV renders the report as UTF-8 CSV with BOM, one row per
// ledger entry. Every field is quoted.
func BuildLedgerCSV(report *ledger.Report, f Format) []byte {
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)

	writeCSVRow(&buf, csvHeader)
	for _, e := range report.Entries {
		writeCSVRow(&buf, []string{
			f.date(e.Date),
			e.TypeLabel,
			e.Reference,
			e.DocumentNumber,
			e.UserName,
			e.Location,
			strconv.Itoa(e.Opening),
			strconv.Itoa(e.QtyIn),
			strconv.Itoa(e.QtyOut),
			strconv.Itoa(e.Closing),
			f.price(e.Price),
		})
	}

	return buf.Bytes()
}

// writeCSVRow quotes every field unconditionally. encoding/csv only quotes
// when required, which breaks consumers expecting fully quoted exports.
func writeCSVRow(buf *bytes.Buffer, fields []string) {
	for i, field := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strings.ReplaceAll(field, `"`, `""`))
		buf.WriteByte('"')
	}
	buf.WriteString("\r\n")
}
