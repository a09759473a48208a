package export

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/shreeramghimire/salmonometer/internal/models"
)

// EncodeCSV writes the header row and one line per row, with no index column
func EncodeCSV(set models.RecordSet) ([]byte, error) {
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)

	if err := writer.Write(set.Header()); err != nil {
		return nil, err
	}
	for _, cells := range set.Table() {
		record := make([]string, len(cells))
		for i, v := range cells {
			record[i] = FormatCell(v, set.Columns[i])
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatFloat(v float64, decimals int) string {
	if decimals < 0 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
