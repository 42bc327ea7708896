package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    ListKind
		wantErr bool
	}{
		{"author", KindYazar, false},
		{"dergi", KindDergi, false},
		{"sayi", KindSayi, false},
		{"", "", true},
		{"unknown", "", true},
		{"Author", "", true},
	}

	for _, tt := range tests {
		kind, err := ParseKind(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, kind)
	}
}

func TestKindColumn(t *testing.T) {
	assert.Equal(t, "l_yazar", KindYazar.Column())
	assert.Equal(t, "l_dergi", KindDergi.Column())
	assert.Equal(t, "l_sayi", KindSayi.Column())
}

func TestParseIDSequence(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []int64
	}{
		{"empty string", "", []int64{}},
		{"empty array", "[]", []int64{}},
		{"plain ids", "[1,2,3]", []int64{1, 2, 3}},
		{"not json", "not json", []int64{}},
		{"wrong shape", "{}", []int64{}},
		{"null", "null", []int64{}},
		{"invalid entries dropped", `[1,"x",null,2]`, []int64{1, 2}},
		{"fractional dropped", "[1,2.5,3]", []int64{1, 3}},
		{"negative kept", "[-5,7]", []int64{-5, 7}},
		{"order preserved", "[9,3,7]", []int64{9, 3, 7}},
		{"duplicates preserved", "[4,4]", []int64{4, 4}},
		{"nested array dropped", "[1,[2],3]", []int64{1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseIDSequence(tt.raw)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSerializeIDSequence(t *testing.T) {
	assert.Equal(t, "[]", SerializeIDSequence(nil))
	assert.Equal(t, "[]", SerializeIDSequence([]int64{}))
	assert.Equal(t, "[5]", SerializeIDSequence([]int64{5}))
	assert.Equal(t, "[1,2,3]", SerializeIDSequence([]int64{1, 2, 3}))
}

func TestParseSerializeRoundTrip(t *testing.T) {
	sequences := [][]int64{
		{},
		{42},
		{1, 2, 3},
		{7, 7, 7},
		{-1, 0, 1},
	}
	for _, seq := range sequences {
		got := ParseIDSequence(SerializeIDSequence(seq))
		if len(seq) == 0 {
			assert.Empty(t, got)
			continue
		}
		assert.Equal(t, seq, got)
	}
}

func TestContains(t *testing.T) {
	ids := []int64{1, 2, 3}
	assert.True(t, Contains(ids, 2))
	assert.False(t, Contains(ids, 4))
	assert.False(t, Contains(nil, 1))
}
