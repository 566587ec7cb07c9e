// Package synth renders the game's sound effects procedurally as
// interleaved stereo float32 little-endian PCM.
package synth

import "math"

const (
	SampleRate   = 44100
	ChannelCount = 2
	FrameBytes   = 4 * ChannelCount
)

// Sound identifies a sound effect.
type Sound int

const (
	Eat Sound = iota
	HighScore
	GameOver
	Reset
)

func (s Sound) String() string {
	switch s {
	case Eat:
		return "eat"
	case HighScore:
		return "high_score"
	case GameOver:
		return "game_over"
	case Reset:
		return "reset"
	default:
		return "unknown"
	}
}

// Generate renders s. Unknown sounds render to nil.
func Generate(s Sound) []byte {
	switch s {
	case Eat:
		return genEat()
	case HighScore:
		return genHighScore()
	case GameOver:
		return genGameOver()
	case Reset:
		return genReset()
	}
	return nil
}

// Frames returns the number of stereo frames in a rendered buffer.
func Frames(buf []byte) int {
	return len(buf) / FrameBytes
}

// Duration returns the playback length of a rendered buffer in seconds.
func Duration(buf []byte) float64 {
	return float64(Frames(buf)) / SampleRate
}

// putStereo writes a [-1,1] sample to both channels of frame i.
func putStereo(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	o := i * FrameBytes
	for c := 0; c < ChannelCount; c++ {
		buf[o+c*4] = byte(v)
		buf[o+c*4+1] = byte(v >> 8)
		buf[o+c*4+2] = byte(v >> 16)
		buf[o+c*4+3] = byte(v >> 24)
	}
}

// softSat applies gentle tanh-like saturation, never a hard clip.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns one FM sample: carrier frequency, modulator ratio and depth.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// render saturates a mono mix into a stereo buffer.
func render(mix []float64) []byte {
	buf := make([]byte, len(mix)*FrameBytes)
	for i, s := range mix {
		putStereo(buf, i, softSat(s))
	}
	return buf
}

// genEat is a short rising FM pop.
func genEat() []byte {
	n := int(0.09 * SampleRate)
	mix := make([]float64, n)
	for i := range mix {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.0, 0.1)
		freq := 480 + 720*p
		mix[i] = fm(t, freq, 2.0, 3.5*env)*env*0.5 +
			math.Sin(2*math.Pi*freq*3*t)*env*0.06
	}
	return render(mix)
}

// genHighScore is a quick two-note bell, played on top of the eat pop.
func genHighScore() []byte {
	notes := []float64{880, 1318.51}
	step := int(0.06 * SampleRate)
	total := len(notes)*step + int(0.18*SampleRate)
	mix := make([]float64, total)
	for k, freq := range notes {
		start := k * step
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			env := adsr(float64(j)/float64(dur), 0.004, 0.6, 0.05, 0.3)
			mix[start+j] += fm(t, freq, 3.5, 4.0*env) * env * 0.22
		}
	}
	return render(mix)
}

// genGameOver is a slow descending minor chord, staggered.
func genGameOver() []byte {
	n := int(0.75 * SampleRate)
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.00}, // E4
		{261.63, 0.14}, // C4
		{220.00, 0.28}, // A3
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.025)
			mix[i] += fm(t, freq, 2.0, 2.0*env)*env*0.32 +
				math.Sin(2*math.Pi*freq*0.5*t)*env*0.1
		}
	}
	return render(mix)
}

// genReset is a crisp click with a falling tone.
func genReset() []byte {
	n := SampleRate * 65 / 1000
	mix := make([]float64, n)
	for i := range mix {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		freq := 1400 - 700*p
		mix[i] = fm(t, freq, 1.0, 0.6) * env * 0.38
	}
	return render(mix)
}
