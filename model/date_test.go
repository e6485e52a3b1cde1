package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSONFormat(t *testing.T) {
	d := NewDate(2024, time.May, 1)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-05-01"`, string(b))

	var parsed Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-05-01"`), &parsed))
	assert.Equal(t, d.Format("2006-01-02"), parsed.Format("2006-01-02"))
}

func TestDateUnmarshalRejectsDatetime(t *testing.T) {
	var d Date
	err := json.Unmarshal([]byte(`"2024-05-01T19:00:00Z"`), &d)
	assert.Error(t, err)
}

func TestDateScan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan("2024-05-01"))
	assert.Equal(t, "2024-05-01", d.Format("2006-01-02"))

	require.NoError(t, d.Scan(time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-05-01", d.Format("2006-01-02"))

	require.NoError(t, d.Scan(nil))
}

func TestDateValue(t *testing.T) {
	v, err := NewDate(2024, time.May, 1).Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", v)
}
