package sprites

import (
	"image"
	"image/color"
	"math"
)

// Paint renders the procedural placeholder for a spec at its scaled size.
// Each shape is a signed test in normalised coordinates u,v ∈ [-1,1].
func Paint(spec Spec) *image.RGBA {
	w, h := spec.Size()
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			u := (float64(x)+0.5)/float64(w)*2 - 1
			v := (float64(y)+0.5)/float64(h)*2 - 1
			if clr, ok := shade(spec, u, v); ok {
				img.SetRGBA(x, y, clr)
			}
		}
	}
	return img
}

func shade(spec Spec, u, v float64) (color.RGBA, bool) {
	body, accent := spec.Body, spec.Accent
	r := math.Hypot(u, v)

	switch spec.Shape {
	case ShapeArrow:
		// Nose points right
		edge := 1 - (u+1)/2
		if math.Abs(v) > edge {
			return color.RGBA{}, false
		}
		if u > 0.2 && math.Abs(v) < 0.25 {
			return accent, true
		}
		return body, true

	case ShapeSaucer:
		dome := math.Hypot(u*1.8, (v+0.35)*2.2)
		hull := math.Hypot(u, v*3)
		if dome <= 1 && v < -0.1 {
			return accent, true
		}
		if hull <= 1 {
			return body, true
		}
		return color.RGBA{}, false

	case ShapeSkull:
		if r > 0.95 && v < 0.4 {
			return color.RGBA{}, false
		}
		if v >= 0.4 && math.Abs(u) > 0.55 {
			return color.RGBA{}, false
		}
		if math.Hypot(math.Abs(u)-0.38, v+0.1) < 0.22 {
			return accent, true
		}
		if v > 0.5 && math.Mod(math.Abs(u)*10, 2) < 1 {
			return color.RGBA{}, false
		}
		return body, true

	case ShapeDisc:
		if math.Hypot(u, v*1.2) > 1 {
			return color.RGBA{}, false
		}
		if math.Abs(v) < 0.18 && math.Abs(u) < 0.7 {
			return accent, true
		}
		return body, true

	case ShapeSlab:
		if math.Abs(v) > 0.8 || math.Abs(u) > 0.95 {
			return color.RGBA{}, false
		}
		if math.Abs(v) < 0.15 || (u < -0.6 && math.Abs(v) < 0.5) {
			return accent, true
		}
		return body, true

	case ShapeBeast:
		if math.Hypot(u*1.1, v*1.4) <= 1 {
			if math.Hypot(u+0.45, v+0.25) < 0.12 {
				return accent, true
			}
			return body, true
		}
		// Horns
		if v < -0.55 && math.Abs(math.Abs(u)-0.6) < 0.12*(1+v) {
			return accent, true
		}
		return color.RGBA{}, false

	case ShapeTentacles:
		if math.Hypot(u, v*1.3+0.3) <= 0.7 {
			if math.Hypot(u+0.3, v+0.2) < 0.1 || math.Hypot(u-0.3, v+0.2) < 0.1 {
				return accent, true
			}
			return body, true
		}
		if v > 0.1 {
			wave := math.Sin(v*9) * 0.08
			for i := -3; i <= 3; i++ {
				if math.Abs(u-float64(i)*0.22-wave) < 0.05 {
					return body, true
				}
			}
		}
		return color.RGBA{}, false

	case ShapeTrain:
		if v > 0.75 {
			for _, wx := range []float64{-0.6, 0, 0.6} {
				if math.Hypot(u-wx, v-0.8) < 0.18 {
					return accent, true
				}
			}
			return color.RGBA{}, false
		}
		if v < -0.6 && (u > -0.4 || u < -0.75) {
			return color.RGBA{}, false
		}
		if v < -0.2 && v > -0.5 && u < 0.7 && u > 0.1 {
			return accent, true
		}
		if math.Abs(u) > 0.95 {
			return color.RGBA{}, false
		}
		return body, true

	case ShapeBall:
		if r > 1 {
			return color.RGBA{}, false
		}
		if math.Mod((u+1)*5+(v+1)*3, 2) < 0.5 {
			return accent, true
		}
		return body, true

	case ShapeNoodle:
		// A looping pasta strand
		band := math.Abs(r - 0.6 - 0.15*math.Sin(math.Atan2(v, u)*5))
		if band < 0.14 {
			return body, true
		}
		if r < 0.3 {
			return accent, true
		}
		return color.RGBA{}, false

	case ShapePlanet:
		if r > 1 {
			return color.RGBA{}, false
		}
		lit := 0.55 + 0.45*(1-math.Hypot(u+0.4, v+0.4)/2)
		c := body
		if math.Mod((v+1)*4+math.Sin(u*3), 1) < 0.3 {
			c = accent
		}
		return color.RGBA{
			R: uint8(float64(c.R) * lit),
			G: uint8(float64(c.G) * lit),
			B: uint8(float64(c.B) * lit),
			A: 255,
		}, true

	case ShapeKeys:
		// Three rows of key caps: arrows, WASD and the action keys
		cols, rows := 9.0, 3.0
		cu := (u + 1) / 2 * cols
		cv := (v + 1) / 2 * rows
		fu := cu - math.Floor(cu)
		fv := cv - math.Floor(cv)
		if fu < 0.1 || fu > 0.9 || fv < 0.1 || fv > 0.9 {
			return color.RGBA{}, false
		}
		if fu < 0.2 || fu > 0.8 || fv < 0.2 || fv > 0.8 {
			return accent, true
		}
		return body, true
	}

	return color.RGBA{}, false
}
