package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDColumnMarshal(t *testing.T) {
	tests := []struct {
		name   string
		column IDColumn
		want   string
	}{
		{"empty", "[]", "[]"},
		{"ids", "[5,9]", "[5,9]"},
		{"corrupt degrades", "not json", "[]"},
		{"invalid entries dropped", `[1,"x",null,2]`, "[1,2]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := json.Marshal(tt.column)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestUserJSONHidesPasswordShowsLists(t *testing.T) {
	user := User{
		ID:       1,
		Name:     "Ali",
		Email:    "ali@example.com",
		Password: "hash",
		LDergi:   "[5]",
		LSayi:    "[]",
		LYazar:   "[3,4]",
	}

	out, err := json.Marshal(user)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))

	_, hasPassword := decoded["password"]
	assert.False(t, hasPassword, "password must never leave the service")
	assert.Equal(t, []interface{}{float64(5)}, decoded["lDergi"])
	assert.Equal(t, []interface{}{}, decoded["lSayi"])
	assert.Equal(t, []interface{}{float64(3), float64(4)}, decoded["lYazar"])
}
