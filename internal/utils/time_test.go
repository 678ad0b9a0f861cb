package util_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	util "github.com/saulo-duarte/learnhub/internal/utils"
)

func TestDateOf(t *testing.T) {
	at := time.Date(2024, 3, 9, 23, 59, 1, 0, time.UTC)
	d := util.DateOf(at)

	assert.Equal(t, "2024-03-09", d.String())
	assert.True(t, util.DateOf(time.Time{}).IsZero())
}

func TestDateJSON(t *testing.T) {
	d := util.DateOf(time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC))

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-09"`, string(b))

	var back util.Date
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, back.Equal(d))

	b, err = json.Marshal(util.Date{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(b))
}

func TestDateScan(t *testing.T) {
	var d util.Date

	require.NoError(t, d.Scan("2024-03-09 14:00:00"))
	assert.Equal(t, "2024-03-09", d.String())

	require.NoError(t, d.Scan(time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-01-02", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}
