// Package styleai classifies an image into one of six coarse fashion-style
// labels using aggregate pixel statistics. It is threshold heuristics for
// user-facing entertainment, not a trained model.
package styleai

import (
	"image"
	"io"
	"math"

	// Decoders for the common consumer formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Stats holds the rounded pixel statistics exposed alongside a result.
type Stats struct {
	AvgBrightness int `json:"avgBrightness"`
	Colorfulness  int `json:"colorfulness"`
	DarkRatio     int `json:"darkRatio"`
	LightRatio    int `json:"lightRatio"`
}

// Result is the outcome of a style analysis. Confidence is a heuristic
// percentage in [70, 88], not a calibrated probability.
type Result struct {
	PrimaryStyle string   `json:"primaryStyle"`
	Confidence   int      `json:"confidence"`
	Tags         []string `json:"tags"`
	ColorPalette string   `json:"colorPalette"`
	Occasion     string   `json:"occasion"`
	Suggestions  []string `json:"suggestions"`
	Analysis     Stats    `json:"analysis"`
}

// Analyze decodes the image and maps its pixel statistics onto a style
// category. It never fails: undecodable input yields the casual default.
func Analyze(r io.Reader) Result {
	img, _, err := image.Decode(r)
	if err != nil {
		return defaultResult()
	}
	return classify(measure(img))
}

type measurement struct {
	meanR, meanG, meanB float64
	brightness          float64
	darkRatio           float64
	lightRatio          float64
	colorfulRatio       float64
}

func measure(img image.Image) measurement {
	bounds := img.Bounds()

	var sumR, sumG, sumB float64
	var dark, light, colorful int

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r16, g16, b16, _ := img.At(x, y).RGBA()
			r := float64(r16 >> 8)
			g := float64(g16 >> 8)
			b := float64(b16 >> 8)

			sumR += r
			sumG += g
			sumB += b

			brightness := (r + g + b) / 3
			if brightness < 100 {
				dark++
			} else if brightness > 200 {
				light++
			}

			if max3(r, g, b)-min3(r, g, b) > 50 {
				colorful++
			}
		}
	}

	total := float64(bounds.Dx() * bounds.Dy())
	if total == 0 {
		total = 1
	}

	m := measurement{
		meanR:         sumR / total,
		meanG:         sumG / total,
		meanB:         sumB / total,
		darkRatio:     float64(dark) / total,
		lightRatio:    float64(light) / total,
		colorfulRatio: float64(colorful) / total,
	}
	m.brightness = (m.meanR + m.meanG + m.meanB) / 3
	return m
}

// classify applies the threshold rules in order; the first match wins.
func classify(m measurement) Result {
	style := "casual"
	confidence := 70

	switch {
	case m.brightness > 180 && m.colorfulRatio < 0.30 && m.lightRatio > 0.40:
		style, confidence = "luxury", 85
	case m.colorfulRatio > 0.40 && m.darkRatio > 0.20:
		style, confidence = "streetwear", 80
	case m.darkRatio > 0.50 && m.colorfulRatio < 0.20:
		style, confidence = "formal", 82
	case m.colorfulRatio < 0.15 && math.Abs(m.meanR-m.meanG) < 20 && math.Abs(m.meanG-m.meanB) < 20:
		style, confidence = "minimalist", 88
	case m.brightness > 120 && m.brightness < 180 && m.colorfulRatio > 0.20 && m.colorfulRatio < 0.40:
		style, confidence = "vintage", 75
	}

	return Result{
		PrimaryStyle: style,
		Confidence:   confidence,
		Tags:         styleTags[style][:3],
		ColorPalette: palette(m),
		Occasion:     occasions[style],
		Suggestions:  suggestions[style],
		Analysis: Stats{
			AvgBrightness: int(math.Round(m.brightness)),
			Colorfulness:  int(math.Round(m.colorfulRatio * 100)),
			DarkRatio:     int(math.Round(m.darkRatio * 100)),
			LightRatio:    int(math.Round(m.lightRatio * 100)),
		},
	}
}

func palette(m measurement) string {
	switch {
	case m.colorfulRatio > 0.40:
		return "bold"
	case m.brightness < 100:
		return "monochrome"
	case m.meanR > m.meanG && m.meanR > m.meanB:
		return "warm tones"
	case m.meanB > m.meanR && m.meanB > m.meanG:
		return "cool tones"
	default:
		return "neutral"
	}
}

// defaultResult is returned when the image cannot be decoded.
func defaultResult() Result {
	return Result{
		PrimaryStyle: "casual",
		Confidence:   70,
		Tags:         styleTags["casual"][:3],
		ColorPalette: "neutral",
		Occasion:     occasions["casual"],
		Suggestions:  suggestions["casual"],
	}
}

func max3(a, b, c float64) float64 { return math.Max(a, math.Max(b, c)) }
func min3(a, b, c float64) float64 { return math.Min(a, math.Min(b, c)) }
