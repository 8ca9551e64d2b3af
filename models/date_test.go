package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_MarshalJSON(t *testing.T) {
	d := NewDate(2024, time.March, 5)

	got, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-05"`, string(got))
}

func TestDate_MarshalJSON_Zero(t *testing.T) {
	got, err := json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(got))
}

func TestDate_UnmarshalJSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2023-12-31"`), &d))
	assert.Equal(t, NewDate(2023, time.December, 31), d)
}

func TestDate_UnmarshalJSON_Null(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())
}

func TestDate_UnmarshalJSON_Invalid(t *testing.T) {
	var d Date
	err := json.Unmarshal([]byte(`"31/12/2023"`), &d)
	assert.Error(t, err)
}

func TestDate_Scan_Time(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, time.July, 1, 15, 4, 5, 0, time.UTC)))
	assert.Equal(t, NewDate(2024, time.July, 1), d)
}

func TestDate_Scan_String(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan("2024-07-01"))
	assert.Equal(t, NewDate(2024, time.July, 1), d)
}

func TestDate_Scan_DatetimeString(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan("2024-07-01 00:00:00"))
	assert.Equal(t, NewDate(2024, time.July, 1), d)
}

func TestDate_Scan_Nil(t *testing.T) {
	d := NewDate(2024, time.July, 1)
	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())
}

func TestDate_Value_Zero(t *testing.T) {
	v, err := Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestAccount_JSONRoundTrip(t *testing.T) {
	original := Account{
		ID:          7,
		Name:        "Bea",
		Email:       "b@x.com",
		Address:     "1 Rd",
		PhoneNumber: "555-0100",
		DateJoined:  NewDate(2024, time.January, 15),
	}

	raw, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Account
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, original, decoded)
}

func TestAccountFilter_IsEmpty(t *testing.T) {
	assert.True(t, AccountFilter{}.IsEmpty())
	assert.False(t, AccountFilter{Name: "Bea"}.IsEmpty())
	assert.False(t, AccountFilter{Email: "b@x.com"}.IsEmpty())
}
