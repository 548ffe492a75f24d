package term

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	clickFreq  = 880
	clickLen   = 40 * time.Millisecond
)

// Clicker plays a short tick when a piece locks.
type Clicker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewClicker creates a clicker. Call Initialize before Click.
func NewClicker() *Clicker {
	return &Clicker{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. On error the clicker stays silent.
func (c *Clicker) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Click plays one lock sound. It is a no-op when audio is unavailable.
func (c *Clicker) Click() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Add(NewClickGenerator(sampleRate, clickFreq, clickLen))
	speaker.Unlock()
}

// Close silences pending sounds.
func (c *Clicker) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}

// ClickGenerator is a sine tone with a linear decay that ends after a fixed
// number of samples.
type ClickGenerator struct {
	sr    beep.SampleRate
	freq  float64
	total int
	pos   int
}

// NewClickGenerator creates a click of the given frequency and length.
func NewClickGenerator(sr beep.SampleRate, freq float64, length time.Duration) *ClickGenerator {
	return &ClickGenerator{sr: sr, freq: freq, total: sr.N(length)}
}

func (g *ClickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			break
		}
		t := float64(g.pos) / float64(g.sr)
		envelope := 1 - float64(g.pos)/float64(g.total)
		sample := 0.25 * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
		n++
	}
	return n, true
}

func (g *ClickGenerator) Err() error {
	return nil
}
