package luma_test

import (
	"fmt"
	"image/color"

	"github.com/pixkit/pixsort/luma"
)

// ExampleBrightness shows the brightness key of a warm mid-tone pixel.
func ExampleBrightness() {
	c := color.NRGBA{R: 200, G: 100, B: 60, A: 255}
	fmt.Println(luma.Brightness(c))
	// Output:
	// 120
}

// ExampleParseMode demonstrates parsing a configuration string and the
// order its comparator imposes on a dark and a light pixel.
func ExampleParseMode() {
	mode, err := luma.ParseMode("white")
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	dark := color.NRGBA{R: 30, G: 30, B: 30, A: 255}
	light := color.NRGBA{R: 220, G: 220, B: 220, A: 255}
	less := mode.Comparator()

	fmt.Printf("mode=%s darkFirst=%t\n", mode, less(dark, light))
	// Output:
	// mode=white darkFirst=true
}
