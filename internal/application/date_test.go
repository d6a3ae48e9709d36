package application

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateUnmarshal(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2021-04-12"`), &d))
	assert.Equal(t, time.Date(2021, 4, 12, 0, 0, 0, 0, time.UTC), d.Time)
}

func TestDateUnmarshalRejectsOtherLayouts(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"12/04/2021"`), &d))
}

func TestDateMarshal(t *testing.T) {
	d := NewDate(time.Date(2021, 4, 12, 15, 30, 0, 0, time.UTC))
	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2021-04-12"`, string(out))
}
