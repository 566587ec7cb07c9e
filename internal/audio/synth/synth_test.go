package synth

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLengths(t *testing.T) {
	tests := []struct {
		sound Sound
		secs  float64
	}{
		{Eat, 0.09},
		{GameOver, 0.75},
		{Reset, 0.065},
		{HighScore, 0.30},
	}
	for _, tc := range tests {
		t.Run(tc.sound.String(), func(t *testing.T) {
			buf := Generate(tc.sound)
			require.NotEmpty(t, buf)
			assert.Zero(t, len(buf)%FrameBytes)
			assert.InDelta(t, tc.secs, Duration(buf), 0.002)
		})
	}
}

func TestGenerateUnknown(t *testing.T) {
	assert.Nil(t, Generate(Sound(99)))
}

func TestSamplesStayInRange(t *testing.T) {
	for _, s := range []Sound{Eat, HighScore, GameOver, Reset} {
		buf := Generate(s)
		peak := 0.0
		for i := 0; i+4 <= len(buf); i += 4 {
			v := float64(math.Float32frombits(binary.LittleEndian.Uint32(buf[i:])))
			require.False(t, math.IsNaN(v), "%s: NaN sample", s)
			assert.LessOrEqual(t, math.Abs(v), 1.0, "%s: sample out of range", s)
			peak = math.Max(peak, math.Abs(v))
		}
		assert.Greater(t, peak, 0.05, "%s: silent", s)
	}
}

func TestChannelsMatch(t *testing.T) {
	buf := Generate(Eat)
	for f := 0; f < Frames(buf); f++ {
		o := f * FrameBytes
		assert.Equal(t, buf[o:o+4], buf[o+4:o+8])
	}
}

func TestSoftSatIsBounded(t *testing.T) {
	for _, x := range []float64{-100, -2, -1, 0, 0.5, 1, 2, 100} {
		y := softSat(x)
		assert.LessOrEqual(t, math.Abs(y), 1.0, "softSat(%v)", x)
	}
}
