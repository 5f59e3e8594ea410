package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"black", "#000000"},
		{"white", "#ffffff"},
		{"lightgrey", "#d3d3d3"},
		{"LightGrey", "#d3d3d3"},
		{"grey", "#808080"},
		{"darkgrey", "#a9a9a9"},
		{"lightblue", "#add8e6"},
		{"#757575", "#757575"},
		{"#B0B0B0", "#b0b0b0"},
		{"#fff", "#ffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := HexColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColorRejects(t *testing.T) {
	for _, in := range []string{"", "   ", "#", "#12", "#12345", "#1234567", "#ggg", "lightgreyish", "rgb(1,2,3)", " navy ", "white\n", "\t#fff"} {
		_, err := ParseColor(in)
		assert.Error(t, err, in)
	}
}

func TestBlend(t *testing.T) {
	got, err := Blend("black", "white", 0)
	require.NoError(t, err)
	assert.Equal(t, "#000000", got)

	got, err = Blend("black", "white", 1)
	require.NoError(t, err)
	assert.Equal(t, "#ffffff", got)

	got, err = Blend("#000000", "#222222", 0.5)
	require.NoError(t, err)
	assert.Equal(t, "#111111", got)

	// lightgrey (211) поверх grey (128): середина 169.5
	got, err = Blend("lightgrey", "grey", 0.5)
	require.NoError(t, err)
	c, err := ParseColor(got)
	require.NoError(t, err)
	r, g, b := c.RGB255()
	for _, v := range []uint8{r, g, b} {
		assert.InDelta(t, 169.5, float64(v), 0.5)
	}

	got, err = Blend("lightgrey", "grey", 0.25)
	require.NoError(t, err)
	c, err = ParseColor(got)
	require.NoError(t, err)
	r, _, _ = c.RGB255()
	assert.InDelta(t, 190.25, float64(r), 0.75, "base weighs more at low alpha")

	_, err = Blend("black", "nope", 0.5)
	assert.Error(t, err)
}
