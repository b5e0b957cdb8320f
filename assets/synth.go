package assets

import (
	"encoding/binary"
	"math"

	"github.com/automoto/playdead/config"
)

const (
	toneAttack  = 0.01
	toneRelease = 0.08
	toneGain    = 0.4
)

// Synthesize renders a tone as 16-bit little-endian stereo PCM, the format
// audio.Context players read.
func Synthesize(t config.Tone, sampleRate int) []byte {
	samples := int(t.Seconds * float64(sampleRate))
	if samples <= 0 {
		return nil
	}

	buf := sweep(t.Freq, t.EndFreq, samples, sampleRate)
	applyEnvelope(buf, toneAttack*float64(sampleRate), toneRelease*float64(sampleRate))

	out := make([]byte, samples*4)
	for i, v := range buf {
		s := uint16(int16(v * toneGain * math.MaxInt16))
		binary.LittleEndian.PutUint16(out[i*4:], s)
		binary.LittleEndian.PutUint16(out[i*4+2:], s)
	}
	return out
}

// sweep is a square wave gliding linearly from freq to endFreq.
func sweep(freq, endFreq float64, samples, sampleRate int) []float64 {
	if endFreq <= 0 {
		endFreq = freq
	}
	buf := make([]float64, samples)
	phase := 0.0
	for i := range buf {
		f := freq + (endFreq-freq)*float64(i)/float64(samples)
		if phase < 0.5 {
			buf[i] = 1
		} else {
			buf[i] = -1
		}
		phase += f / float64(sampleRate)
		if phase >= 1 {
			phase -= 1
		}
	}
	return buf
}

func applyEnvelope(buf []float64, attack, release float64) {
	total := len(buf)
	attackSamples := int(attack)
	releaseSamples := int(release)

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := range buf {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}
