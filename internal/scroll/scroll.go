// Package scroll реализует плавную прокрутку списка с затуханием
package scroll

import "math"

// Params параметры прокрутки в мировых единицах
type Params struct {
	WheelGain float32 // Прирост скорости за одно деление колеса
	Decay     float32 // Множитель затухания скорости за кадр
	RowPitch  float32 // Шаг строки списка
}

// DefaultParams значения, подобранные под ощущение "бросить и остановиться"
var DefaultParams = Params{WheelGain: 5, Decay: 0.9, RowPitch: 30}

// State состояние прокрутки. Offset лежит в [-LowerBound, 0] относительно верхнего края.
type State struct {
	Params     Params
	Offset     float32
	Velocity   float32
	LowerBound float32
}

// New создает состояние прокрутки
func New(params Params) *State {
	return &State{Params: params}
}

// Update выполняет шаг прокрутки за кадр. wheel — смещение колеса за кадр
// (положительное вверх), viewport — высота видимой области.
func (s *State) Update(wheel float32, count int, viewport float32) {
	s.Velocity += wheel * s.Params.WheelGain
	s.Offset += s.Velocity
	s.Velocity *= s.Params.Decay

	s.LowerBound = max(0, float32(count)*s.Params.RowPitch-viewport)
	s.Offset = min(0, max(-s.LowerBound, s.Offset))
}

// RowY положение строки i относительно верхнего края видимой области
func (s *State) RowY(i int) float32 {
	return float32(i)*s.Params.RowPitch + s.Offset
}

// Visible сообщает, помещается ли строка i целиком в видимую область
func (s *State) Visible(i int, viewport float32) bool {
	y := s.RowY(i)
	return y >= 0 && y+s.Params.RowPitch <= viewport
}

// Range возвращает полуинтервал [first, last) видимых строк
func (s *State) Range(count int, viewport float32) (first, last int) {
	pitch := float64(s.Params.RowPitch)
	offset := float64(s.Offset)

	first = int(math.Ceil(-offset / pitch))
	last = int(math.Floor((float64(viewport) - offset) / pitch))

	first = max(0, min(first, count))
	last = max(first, min(last, count))

	// Поправка на погрешность округления float32
	for first < last && !s.Visible(first, viewport) {
		first++
	}
	for last > first && !s.Visible(last-1, viewport) {
		last--
	}
	return first, last
}
