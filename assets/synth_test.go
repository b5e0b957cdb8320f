package assets

import (
	"encoding/binary"
	"testing"

	"github.com/automoto/playdead/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeLayout(t *testing.T) {
	pcm := Synthesize(config.Tone{Freq: 440, EndFreq: 880, Seconds: 0.1}, 1000)
	require.Len(t, pcm, 100*4)

	// Stereo channels carry the same sample.
	for i := 0; i < 100; i++ {
		l := binary.LittleEndian.Uint16(pcm[i*4:])
		r := binary.LittleEndian.Uint16(pcm[i*4+2:])
		assert.Equal(t, l, r)
	}

	// The envelope starts from silence.
	assert.Zero(t, binary.LittleEndian.Uint16(pcm[0:]))
}

func TestSynthesizeEmptyTone(t *testing.T) {
	assert.Nil(t, Synthesize(config.Tone{Freq: 440}, 44100))
}

func TestEnvelopeBounds(t *testing.T) {
	buf := []float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}
	applyEnvelope(buf, 2, 2)
	assert.Equal(t, []float64{0, 0.5, 1, 1, 1, 1, 1, 1, 1, 0.5}, buf)
}
