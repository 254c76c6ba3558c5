package game

import (
	"encoding/binary"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	// AudioSampleRate 音频上下文采样率
	AudioSampleRate = 48000

	chimeFrequency  = 880.0 // A5
	chimeDurationMs = 180
	chimeVolume     = 0.5
)

// AudioManager 播放彩带爆开时的提示音
//
// 提示音在创建时合成为 PCM，之后每次播放复用同一个播放器。
// SettingsManager 中 SoundEnabled 为 false 时不播放。
type AudioManager struct {
	settingsManager *SettingsManager
	chimePlayer     *audio.Player
}

// NewAudioManager 创建音频管理器
//
// 参数：
//   - ctx: 音频上下文，为 nil 时所有播放都是空操作（无头运行、测试）
//   - sm: 设置管理器，可为 nil（始终播放）
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	am := &AudioManager{settingsManager: sm}
	if ctx != nil {
		am.chimePlayer = ctx.NewPlayerFromBytes(synthesizeChime(ctx.SampleRate(), chimeFrequency, chimeDurationMs))
		am.chimePlayer.SetVolume(chimeVolume)
	}
	return am
}

// PlayChime 播放一次提示音，返回是否真的播放了
func (am *AudioManager) PlayChime() bool {
	if am.chimePlayer == nil {
		return false
	}
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	if err := am.chimePlayer.Rewind(); err != nil {
		log.Printf("[Audio] 提示音重置失败: %v", err)
		return false
	}
	am.chimePlayer.Play()
	return true
}

// synthesizeChime 合成一段指数衰减的正弦波
// 输出为 16 位小端立体声 PCM，audio.Context 要求的格式
func synthesizeChime(sampleRate int, freq float64, durationMs int) []byte {
	samples := sampleRate * durationMs / 1000
	buf := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		t := float64(i) / float64(sampleRate)
		envelope := math.Exp(-t * 18)
		v := int16(math.Sin(2*math.Pi*freq*t) * envelope * math.MaxInt16 * 0.8)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
