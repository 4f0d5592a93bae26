package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	var item Item
	require.NoError(t, json.Unmarshal([]byte(`{"name":"x","date":"2023-04-28"}`), &item))
	assert.Equal(t, NewDate(2023, time.April, 28), item.Date)

	out, err := json.Marshal(item.Date)
	require.NoError(t, err)
	assert.JSONEq(t, `"2023-04-28"`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"date":"28/04/2023"}`), &item))
}

func TestDate_Scan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2023, 4, 28, 15, 4, 5, 0, time.UTC)))
	assert.Equal(t, "2023-04-28", d.String())

	require.NoError(t, d.Scan("2024-01-02 00:00:00+00:00"))
	assert.Equal(t, "2024-01-02", d.String())

	require.NoError(t, d.Scan([]byte("2024-02-03")))
	assert.Equal(t, "2024-02-03", d.String())

	assert.Error(t, d.Scan(42))
	assert.Error(t, d.Scan("2024"))
}

func TestDate_UnmarshalParam(t *testing.T) {
	var d Date
	require.NoError(t, d.UnmarshalParam("2023-05-01"))
	assert.Equal(t, NewDate(2023, time.May, 1), d)
	assert.Error(t, d.UnmarshalParam("yesterday"))
}
