package replication

import (
	"testing"

	"github.com/jackc/pglogrepl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textCol(s string) *pglogrepl.TupleDataColumn {
	return &pglogrepl.TupleDataColumn{DataType: 't', Data: []byte(s)}
}

func nullCol() *pglogrepl.TupleDataColumn {
	return &pglogrepl.TupleDataColumn{DataType: 'n'}
}

func toastCol() *pglogrepl.TupleDataColumn {
	return &pglogrepl.TupleDataColumn{DataType: 'u'}
}

func TestBuildPayloadOrderAndKeys(t *testing.T) {
	payload, err := buildPayload([]string{"id", "name"}, []*pglogrepl.TupleDataColumn{
		textCol("1"),
		textCol("a"),
	})
	require.NoError(t, err)
	assert.Equal(t, `{"id":1,"name":"a"}`, payload)
}

func TestBuildPayloadFewerEntriesThanColumns(t *testing.T) {
	payload, err := buildPayload([]string{"id", "name", "extra"}, []*pglogrepl.TupleDataColumn{
		textCol("1"),
		textCol("a"),
	})
	require.NoError(t, err)
	assert.Equal(t, `{"id":1,"name":"a"}`, payload)
}

func TestBuildPayloadExtraEntriesDropped(t *testing.T) {
	payload, err := buildPayload([]string{"id"}, []*pglogrepl.TupleDataColumn{
		textCol("1"),
		textCol("a"),
	})
	require.NoError(t, err)
	assert.Equal(t, `{"id":1}`, payload)
}

func TestCoerceColumnNullAndToast(t *testing.T) {
	v, err := coerceColumn(nullCol())
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = coerceColumn(toastCol())
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestCoerceColumnTextClassification(t *testing.T) {
	cases := []struct {
		text string
		want interface{}
	}{
		{"null", nil},
		{"NULL", nil},
		{"true", true},
		{"FALSE", false},
		{"123", int64(123)},
		{"-45", int64(-45)},
		{"3.14", 3.14},
		{"NaN", "NaN"},
		{"hello", "hello"},
	}
	for _, c := range cases {
		v, err := coerceColumn(textCol(c.text))
		require.NoError(t, err)
		assert.Equal(t, c.want, v, "text %q", c.text)
	}
}

func TestCoerceColumnInvalidUTF8(t *testing.T) {
	v, err := coerceColumn(&pglogrepl.TupleDataColumn{DataType: 't', Data: []byte{0xC3, 0x28}})
	require.NoError(t, err)
	assert.Equal(t, "�(", v)
}
