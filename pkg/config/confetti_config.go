package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/decker502/confetti/internal/confetti"
	"github.com/decker502/confetti/pkg/embedded"
)

// DefaultConfettiConfigPath 内置配置文件位置
const DefaultConfettiConfigPath = "data/confetti.yaml"

// ConfettiConfig 彩带爆炸效果配置
//
// 配置文件位置: data/confetti.yaml
type ConfettiConfig struct {
	// Burst 粒子模拟参数
	Burst confetti.Config `yaml:"burst"`

	// Origin 发射点，相对于屏幕宽高的比例 (0-1)
	Origin OriginConfig `yaml:"origin"`

	// Palette 颜色列表，格式 "#AARRGGBB" 或 "#RRGGBB"
	Palette []string `yaml:"palette"`

	// Pieces 彩带图形列表
	Pieces []PieceConfig `yaml:"pieces"`

	// Icon 成功图标弹跳动画
	Icon IconConfig `yaml:"icon"`

	// Toast 资源加载失败时的提示
	Toast ToastConfig `yaml:"toast"`

	colors []color.NRGBA
}

// OriginConfig 相对发射点
type OriginConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// PieceConfig 单个彩带图形
//
// Shape 和 Image 二选一：Shape 为内置矢量图形，Image 为嵌入资源中的 PNG 路径。
type PieceConfig struct {
	ID    string `yaml:"id"`
	Shape string `yaml:"shape,omitempty"`
	Image string `yaml:"image,omitempty"`
}

// IconConfig 成功图标弹跳动画参数
type IconConfig struct {
	DelayMs    int64   `yaml:"delayMs"`
	DurationMs int64   `yaml:"durationMs"`
	Tension    float64 `yaml:"tension"`
	// Radius 图标半径（dp）
	Radius float64 `yaml:"radius"`
}

// ToastConfig 提示消息参数
type ToastConfig struct {
	DurationMs int64  `yaml:"durationMs"`
	Message    string `yaml:"message"`
}

// DefaultConfettiConfig 返回默认配置（不含图形列表）
func DefaultConfettiConfig() ConfettiConfig {
	return ConfettiConfig{
		Burst:  confetti.DefaultConfig(),
		Origin: OriginConfig{X: 0.5, Y: 0.35},
		Palette: []string{
			"#FFFF5225", "#FFFC379E", "#FFFFB53E", "#FF3E8EFF",
			"#FFFFB53E", "#FFFF5826", "#FF39C5EE", "#FF3AC6F4",
			"#FF50DFB2", "#FFFF5826", "#FF3DC4EF", "#FFFFB53E",
		},
		Icon: IconConfig{
			DelayMs:    100,
			DurationMs: 500,
			Tension:    1.2,
			Radius:     48,
		},
		Toast: ToastConfig{
			DurationMs: 2000,
			Message:    "Animation failed to load, please check resources",
		},
	}
}

// LoadConfettiConfig 加载彩带配置
//
// "data/" 开头的路径从嵌入资源读取，其余路径从磁盘读取。
//
// 参数:
//   - path: 配置文件路径（如 "data/confetti.yaml"）
//
// 返回:
//   - *ConfettiConfig: 解析并验证后的配置
//   - error: 读取、解析或验证失败
func LoadConfettiConfig(path string) (*ConfettiConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read confetti config %s: %w", path, err)
	}

	cfg, err := ParseConfettiConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfettiConfig 解析 YAML 数据，缺省字段保留默认值
func ParseConfettiConfig(data []byte) (*ConfettiConfig, error) {
	cfg := DefaultConfettiConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse confetti config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid confetti config: %w", err)
	}
	return &cfg, nil
}

func readConfigFile(path string) ([]byte, error) {
	if strings.HasPrefix(strings.TrimPrefix(path, "./"), "data/") && embedded.IsInitialized() {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}

// Validate 验证配置有效性并解析颜色
//
// 检查：
//   - 模拟参数合法（confetti.Config.Validate）
//   - 发射点比例在 [0, 1] 内
//   - 至少一种颜色，且每种颜色格式正确
//   - 每个图形都有 id，且 shape/image 恰好设置一个
//   - 图标动画时长为正
func (c *ConfettiConfig) Validate() error {
	if err := c.Burst.Validate(); err != nil {
		return err
	}

	if c.Origin.X < 0 || c.Origin.X > 1 || c.Origin.Y < 0 || c.Origin.Y > 1 {
		return fmt.Errorf("origin must be within [0, 1], got (%.2f, %.2f)", c.Origin.X, c.Origin.Y)
	}

	if len(c.Palette) == 0 {
		return fmt.Errorf("palette must contain at least one color")
	}
	colors := make([]color.NRGBA, 0, len(c.Palette))
	for i, s := range c.Palette {
		clr, err := ParseHexColor(s)
		if err != nil {
			return fmt.Errorf("palette[%d]: %w", i, err)
		}
		colors = append(colors, clr)
	}

	seen := make(map[string]bool, len(c.Pieces))
	for i, piece := range c.Pieces {
		if piece.ID == "" {
			return fmt.Errorf("piece #%d is missing 'id'", i)
		}
		if seen[piece.ID] {
			return fmt.Errorf("duplicate piece id '%s'", piece.ID)
		}
		seen[piece.ID] = true
		if (piece.Shape == "") == (piece.Image == "") {
			return fmt.Errorf("piece '%s' must set exactly one of 'shape' or 'image'", piece.ID)
		}
	}

	if c.Icon.DurationMs <= 0 {
		return fmt.Errorf("icon durationMs must be > 0, got %d", c.Icon.DurationMs)
	}
	if c.Icon.DelayMs < 0 {
		return fmt.Errorf("icon delayMs must be >= 0, got %d", c.Icon.DelayMs)
	}
	if c.Toast.DurationMs <= 0 {
		return fmt.Errorf("toast durationMs must be > 0, got %d", c.Toast.DurationMs)
	}

	c.colors = colors
	return nil
}

// Colors 返回解析后的调色板
// 未调用 Validate 时按 Palette 即时解析，无法解析的条目被忽略
func (c *ConfettiConfig) Colors() []color.NRGBA {
	if c.colors == nil {
		for _, hex := range c.Palette {
			if clr, err := ParseHexColor(hex); err == nil {
				c.colors = append(c.colors, clr)
			}
		}
	}
	return c.colors
}

// ParseHexColor 解析 "#AARRGGBB" 或 "#RRGGBB"（可省略 "#"，也接受 "0x" 前缀）
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimSpace(s)
	hex = strings.TrimPrefix(hex, "#")
	hex = strings.TrimPrefix(strings.TrimPrefix(hex, "0x"), "0X")

	switch len(hex) {
	case 6:
		hex = "FF" + hex
	case 8:
	default:
		return color.NRGBA{}, fmt.Errorf("invalid color %q: want #AARRGGBB or #RRGGBB", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return confetti.ARGB(uint32(v)), nil
}
