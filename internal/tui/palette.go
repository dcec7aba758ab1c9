package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
	"github.com/lucasb-eyer/go-colorful"
)

// Color цвет с прозрачностью
type Color struct {
	colorful.Color
	A uint8
}

// ParseHex разбирает цвет вида "#rrggbb" или "#rrggbbaa"
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 6:
		c, err := colorful.Hex("#" + hex)
		if err != nil {
			return Color{}, errors.Wrapf(err, "цвет %q", s)
		}
		return Color{Color: c, A: 255}, nil
	case 8:
		c, err := colorful.Hex("#" + hex[:6])
		if err != nil {
			return Color{}, errors.Wrapf(err, "цвет %q", s)
		}
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return Color{}, errors.Wrapf(err, "прозрачность цвета %q", s)
		}
		return Color{Color: c, A: uint8(a)}, nil
	default:
		return Color{}, errors.Newf("некорректная hex строка %q", s)
	}
}

// Over накладывает цвет на фон с учетом прозрачности
func (c Color) Over(bg colorful.Color) colorful.Color {
	return bg.BlendRgb(c.Color, float64(c.A)/255).Clamped()
}

// MustHex разбирает цвет и паникует при ошибке. Только для констант.
// Прозрачные цвета накладываются на основной фон.
func MustHex(s string) lipgloss.Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	if c.A == 255 {
		return lipgloss.Color(c.Hex())
	}
	bg, _ := colorful.Hex(nordDark1)
	return lipgloss.Color(c.Over(bg).Hex())
}

// Палитра Nord
const (
	nordDark0  = "#2e3440"
	nordDark1  = "#3b4252"
	nordDark2  = "#434c5e"
	nordDark3  = "#4c566a"
	nordLight0 = "#eceff4"
	nordLight2 = "#d8dee9"
	nordGreen  = "#a3be8c"
	nordFrost0 = "#8fbcbb"
	nordFrost1 = "#88c0d0"
)

var (
	colorDark0  = MustHex(nordDark0)
	colorDark1  = MustHex(nordDark1)
	colorDark2  = MustHex(nordDark2)
	colorDark3  = MustHex(nordDark3)
	colorLight0 = MustHex(nordLight0)
	colorLight2 = MustHex(nordLight2)
	colorGreen  = MustHex(nordGreen)
	colorFrost0 = MustHex(nordFrost0)
	colorFrost1 = MustHex(nordFrost1)
)
