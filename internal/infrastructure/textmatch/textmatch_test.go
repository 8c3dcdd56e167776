package textmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLower(t *testing.T) {
	assert.Equal(t, "koramangala ", Lower("Koramangala "))
	assert.Equal(t, "straße", Lower("STRAßE"))
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank(" \t\n"))
	assert.False(t, IsBlank(" pg "))
}

func TestMatcher_MatchAny(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		haystacks []string
		want      bool
	}{
		{"empty query matches", "", []string{"Urban Nest PG"}, true},
		{"whitespace query matches", "   ", []string{"anything"}, true},
		{"case-insensitive", "URBAN", []string{"Urban Nest PG"}, true},
		{"substring of second field", "kora", []string{"Urban Nest PG", "Koramangala, Bangalore"}, true},
		{"no haystacks", "nest", nil, false},
		{"no match", "delhi", []string{"Urban Nest PG", "Bangalore"}, false},
		{"inner spaces are kept", "nest pg", []string{"Urban Nest PG"}, true},
		{"trailing space is part of the query", "Nest PG ", []string{"Urban Nest PG"}, false},
		{"leading space is part of the query", " nest", []string{"Urban Nest PG"}, true},
		{"leading space needs a preceding space", " urban", []string{"Urban Nest PG"}, false},
		{"unicode lowercase", "ÉCOLE", []string{"Near école Road"}, true},
		{"lowercasing does not fold ss", "strasse", []string{"Hauptstraße"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatcher(tt.query)
			assert.Equal(t, tt.want, m.MatchAny(tt.haystacks...))
		})
	}
}

func TestMatcher_IsEmpty(t *testing.T) {
	assert.True(t, NewMatcher(" ").IsEmpty())
	assert.False(t, NewMatcher("pg").IsEmpty())
	assert.False(t, NewMatcher("pg ").IsEmpty())
}
