// SPDX-License-Identifier: Unlicense OR MIT

package colorspace_test

import (
	"fmt"

	"github.com/imageview/widecolor/colorspace"
	"golang.org/x/image/colornames"
)

func ExampleConverter_Pixel() {
	conv := colorspace.NewConverter(colorspace.SRGB, colorspace.DisplayP3)
	white := colornames.White
	r, g, b := conv.Pixel(white.R, white.G, white.B)
	fmt.Println(r, g, b)
	// Output: 255 255 255
}
