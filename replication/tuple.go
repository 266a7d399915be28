package replication

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jackc/pglogrepl"
)

// buildPayload renders one decoded tuple as a JSON object whose keys are
// column names in declaration order. If the tuple carries fewer entries
// than the relation has columns, the remainder is omitted; extras past
// the column count are dropped.
func buildPayload(columns []string, cols []*pglogrepl.TupleDataColumn) (string, error) {
	n := len(columns)
	if len(cols) < n {
		n = len(cols)
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i := 0; i < n; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(columns[i])
		if err != nil {
			return "", err
		}
		buf.Write(key)
		buf.WriteByte(':')

		val, err := coerceColumn(cols[i])
		if err != nil {
			return "", err
		}
		valBytes, err := json.Marshal(val)
		if err != nil {
			return "", err
		}
		buf.Write(valBytes)
	}
	buf.WriteByte('}')
	return buf.String(), nil
}

// coerceColumn applies the §4.3 coercion rules to a single tuple field.
func coerceColumn(col *pglogrepl.TupleDataColumn) (interface{}, error) {
	switch col.DataType {
	case 'n', 'u': // null, unchanged toast
		return nil, nil
	case 't':
		return coerceText(decodeLossy(col.Data)), nil
	default:
		// pgoutput tuples are text or null/toast in practice; anything else
		// is treated the same as the protocol's Binary variant.
		return decodeLossy(col.Data), nil
	}
}

func coerceText(text string) interface{} {
	switch strings.ToLower(text) {
	case "null":
		return nil
	case "true":
		return true
	case "false":
		return false
	}
	if iv, err := strconv.ParseInt(text, 10, 64); err == nil {
		return iv
	}
	if fv, err := strconv.ParseFloat(text, 64); err == nil && !math.IsNaN(fv) && !math.IsInf(fv, 0) {
		return fv
	}
	return text
}

// decodeLossy decodes raw bytes as UTF-8, substituting U+FFFD for any
// invalid byte sequence rather than failing.
func decodeLossy(b []byte) string {
	return strings.ToValidUTF8(string(b), string(utf8.RuneError))
}
