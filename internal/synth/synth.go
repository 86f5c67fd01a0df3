// Package synth 用 beep 合成游戏音效
//
// 游戏不附带音频文件，所有音效在启动时合成并渲染为
// 16 位小端立体声 PCM，可直接交给 ebiten audio 播放。
package synth

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// 音效 ID
const (
	SoundShoot = "shoot"
	SoundDash  = "dash"
	SoundOrb   = "orb"
	SoundCatch = "catch"
	SoundTick  = "tick"
	SoundClick = "click"
)

// SampleRate 与 ebiten audio.Context 保持一致
const SampleRate = beep.SampleRate(48000)

// Wave 振荡器波形
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// sweep 频率线性滑动的振荡器
type sweep struct {
	from, to float64
	phase    float64
	total    int
	pos      int
	wave     Wave
	rate     beep.SampleRate
	rng      *rand.Rand
}

// Sweep 创建从 from Hz 滑动到 to Hz 的振荡器，from == to 时为固定音高
func Sweep(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:  from,
		to:    to,
		total: rate.N(d),
		wave:  wave,
		rate:  rate,
		rng:   rand.New(rand.NewPCG(0x5eed, uint64(from))),
	}
}

func (o *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.pos >= o.total {
			return i, i > 0
		}

		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				v = 1
			} else {
				v = -1
			}
		case WaveSaw:
			v = 2 * (o.phase - 0.5)
		case WaveNoise:
			v = o.rng.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		freq := o.from + (o.to-o.from)*float64(o.pos)/float64(o.total)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *sweep) Err() error { return nil }

// envelope 线性起音/释音包络
type envelope struct {
	s       beep.Streamer
	pos     int
	total   int
	attack  int
	release int
}

// Envelope 给 s 加上起音和释音，总长为 d
func Envelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		s:       s,
		total:   rate.N(d),
		attack:  rate.N(attack),
		release: rate.N(release),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	for i := 0; i < n; i++ {
		if e.pos >= e.total {
			return i, i > 0
		}
		gain := 1.0
		if e.attack > 0 && e.pos < e.attack {
			gain = float64(e.pos) / float64(e.attack)
		}
		if start := e.total - e.release; e.release > 0 && e.pos >= start {
			gain = math.Min(gain, float64(e.total-e.pos)/float64(e.release))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// Gain 线性音量，0 表示静音
func Gain(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// Render 把有限长度的 streamer 渲染为 16 位小端立体声 PCM
func Render(s beep.Streamer) ([]byte, error) {
	buf := make([][2]float64, 512)
	out := make([]byte, 0, 4*len(buf))
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[1])))
		}
		if !ok || n == 0 {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("render stream: %w", err)
	}
	return out, nil
}

func toInt16(v float64) int16 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int16(v * math.MaxInt16)
}

// tone 固定音高的短音符
func tone(freq float64, d time.Duration, wave Wave, release time.Duration) beep.Streamer {
	return Envelope(Sweep(freq, freq, d, wave, SampleRate), d, 3*time.Millisecond, release, SampleRate)
}

// shoot 下滑的方波 "啾"
func shoot() (beep.Streamer, error) {
	const d = 90 * time.Millisecond
	s := Envelope(Sweep(880, 330, d, WaveSquare, SampleRate), d, 2*time.Millisecond, 60*time.Millisecond, SampleRate)
	return Gain(s, 0.25), nil
}

// dash 噪声加上扬的锯齿波
func dash() (beep.Streamer, error) {
	const d = 180 * time.Millisecond
	noise := Envelope(Sweep(0, 0, d, WaveNoise, SampleRate), d, 20*time.Millisecond, 140*time.Millisecond, SampleRate)
	rise := Envelope(Sweep(200, 640, d, WaveSaw, SampleRate), d, 10*time.Millisecond, 120*time.Millisecond, SampleRate)
	return Gain(beep.Mix(Gain(noise, 0.5), Gain(rise, 0.2)), 0.6), nil
}

// orb 基音与八度泛音的铃声
func orb() (beep.Streamer, error) {
	const d = 250 * time.Millisecond
	fund := Envelope(Sweep(660, 660, d, WaveSine, SampleRate), d, 2*time.Millisecond, 220*time.Millisecond, SampleRate)
	over := Envelope(Sweep(1320, 1320, d, WaveSine, SampleRate), d, 2*time.Millisecond, 120*time.Millisecond, SampleRate)
	return Gain(beep.Mix(Gain(fund, 0.7), Gain(over, 0.3)), 0.5), nil
}

// catchJingle C-E-G 上行琶音
func catchJingle() (beep.Streamer, error) {
	const d = 90 * time.Millisecond
	return Gain(beep.Seq(
		tone(523.25, d, WaveSquare, 40*time.Millisecond),
		tone(659.25, d, WaveSquare, 40*time.Millisecond),
		tone(783.99, 2*d, WaveSquare, 120*time.Millisecond),
	), 0.25), nil
}

// tick 倒计时的短促正弦
func tick() (beep.Streamer, error) {
	const d = 40 * time.Millisecond
	sine, err := generators.SineTone(SampleRate, 1000)
	if err != nil {
		return nil, fmt.Errorf("sine tone: %w", err)
	}
	s := Envelope(beep.Take(SampleRate.N(d), sine), d, time.Millisecond, 30*time.Millisecond, SampleRate)
	return Gain(s, 0.4), nil
}

// click 按钮点击
func click() (beep.Streamer, error) {
	const d = 25 * time.Millisecond
	return Gain(tone(1200, d, WaveSquare, 20*time.Millisecond), 0.2), nil
}

var recipes = map[string]func() (beep.Streamer, error){
	SoundShoot: shoot,
	SoundDash:  dash,
	SoundOrb:   orb,
	SoundCatch: catchJingle,
	SoundTick:  tick,
	SoundClick: click,
}

// IDs 返回所有音效 ID
func IDs() []string {
	return []string{SoundShoot, SoundDash, SoundOrb, SoundCatch, SoundTick, SoundClick}
}

// Stream 返回指定音效的 streamer，每次调用都是新的实例
func Stream(id string) (beep.Streamer, error) {
	recipe, ok := recipes[id]
	if !ok {
		return nil, fmt.Errorf("unknown sound %q", id)
	}
	s, err := recipe()
	if err != nil {
		return nil, fmt.Errorf("sound %s: %w", id, err)
	}
	return s, nil
}

// Generate 合成指定音效的 PCM 数据
func Generate(id string) ([]byte, error) {
	s, err := Stream(id)
	if err != nil {
		return nil, err
	}
	pcm, err := Render(s)
	if err != nil {
		return nil, fmt.Errorf("sound %s: %w", id, err)
	}
	return pcm, nil
}
