// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Clamp ограничивает v отрезком [lo, hi]. NaN превращается в lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// CubicBezier returns the CSS timing function cubic-bezier(x1, y1, x2, y2).
// x1 и x2 должны лежать в [0, 1], тогда x(t) монотонна и ищется бисекцией.
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	bez := func(p1, p2, t float64) float64 {
		u := 1 - t
		return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
	}
	return func(x float64) float64 {
		x = Clamp01(x)
		if x == 0 || x == 1 {
			return x
		}
		lo, hi := 0.0, 1.0
		for i := 0; i < 48; i++ {
			mid := (lo + hi) / 2
			if bez(x1, x2, mid) < x {
				lo = mid
			} else {
				hi = mid
			}
		}
		return bez(y1, y2, (lo+hi)/2)
	}
}

// Pulse — затухающее «вздутие» кнопки после клика.
func Pulse(elapsed float64) float64 {
	return 1.0 + 0.3*math.Exp(-elapsed*8)
}
