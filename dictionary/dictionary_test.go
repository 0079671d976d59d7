package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZeroxCorbin/gs1-syntax-engine/aitable"
)

func TestParseLines(t *testing.T) {
	lines := []string{
		"# GS1 Syntax Dictionary excerpt",
		"",
		"00  *  N18,csum,key  # SSCC",
		"01  *  N14,csum,key  ex=02,255,37  # GTIN",
		"10  X1..20  req=01,02,8006,8026  # BATCH/LOT",
		"3100-3105  *  N6  req=01,02  # NET WEIGHT (kg)",
		"7007  N6,yymmdd [N6],yymmdd  req=01,02  # HARVEST DATE",
		"8008  N8,yymmddhh [N2..4],mmoptss  req=01,02  # PROD TIME",
		"253  N13,csum,key [X1..17]  dlpkey  # GDTI",
	}

	entries, err := ParseLines(lines)
	require.NoError(t, err)
	require.Len(t, entries, 12) // 6 singles + the 3100-3105 run

	byAI := map[string]aitable.Entry{}
	for _, e := range entries {
		byAI[e.AI] = e
	}

	sscc := byAI["00"]
	assert.False(t, sscc.FNC1)
	require.Len(t, sscc.Components, 1)
	assert.Equal(t, aitable.CSetNumeric, sscc.Components[0].CSet)
	assert.Equal(t, uint8(18), sscc.Components[0].Min)
	assert.Equal(t, uint8(18), sscc.Components[0].Max)
	assert.Equal(t, []string{"csum", "key"}, sscc.Components[0].Linters)
	assert.Equal(t, "SSCC", sscc.Title)

	gtin := byAI["01"]
	assert.Equal(t, "ex=02,255,37", gtin.Attrs)

	batch := byAI["10"]
	assert.True(t, batch.FNC1)
	assert.Equal(t, aitable.CSet82, batch.Components[0].CSet)
	assert.Equal(t, uint8(1), batch.Components[0].Min)
	assert.Equal(t, uint8(20), batch.Components[0].Max)

	for _, ai := range []string{"3100", "3101", "3102", "3103", "3104", "3105"} {
		e, ok := byAI[ai]
		require.True(t, ok, ai)
		assert.False(t, e.FNC1)
		assert.Equal(t, "NET WEIGHT (kg)", e.Title)
	}

	harvest := byAI["7007"]
	require.Len(t, harvest.Components, 2)
	assert.False(t, harvest.Components[0].Optional)
	assert.True(t, harvest.Components[1].Optional)
	assert.Equal(t, []string{"yymmdd"}, harvest.Components[1].Linters)

	prodTime := byAI["8008"]
	require.Len(t, prodTime.Components, 2)
	assert.Equal(t, uint8(2), prodTime.Components[1].Min)
	assert.Equal(t, uint8(4), prodTime.Components[1].Max)
	assert.Equal(t, []string{"mmoptss"}, prodTime.Components[1].Linters)

	gdti := byAI["253"]
	require.Len(t, gdti.Components, 2)
	assert.True(t, gdti.Components[1].Optional)
	assert.Equal(t, "", gdti.Attrs) // dlpkey is ignored

	// The run is emitted sorted.
	for i := 1; i < len(entries); i++ {
		assert.True(t, entries[i-1].AI < entries[i].AI)
	}
}

func TestParseLines_acceptedByTable(t *testing.T) {
	lines := []string{
		"01  *  N14,csum,key  # GTIN",
		"10  X1..20  req=01  # BATCH/LOT",
	}
	entries, err := ParseLines(lines)
	require.NoError(t, err)

	_, err = aitable.New(entries)
	require.NoError(t, err)
}

func TestParseLines_errors(t *testing.T) {
	for _, tt := range []struct {
		name string
		line string
	}{
		{"missing components", "01 *"},
		{"malformed AI", "0A X1..20"},
		{"AI too long", "12345 X1..20"},
		{"range ends differ in width", "310-3105 N6"},
		{"range reversed", "3105-3100 N6"},
		{"component after attrs", "10 req=01 X1..20"},
		{"bad component lengths", "10 X20..1"},
		{"stray field", "10 X1..20 bogus"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLines([]string{tt.line})
			assert.Error(t, err, tt.line)
		})
	}
}
