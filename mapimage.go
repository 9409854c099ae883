package main

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// defaultImageLevel is the gray level above which a pixel counts as occupied
const defaultImageLevel = 200

// RasterizeImage converts img into occupancy values, one cell per pixel, where image
// row r becomes grid row r. A pixel is an obstacle (1) when its gray level is above
// level, or at most level when darkIsObstacle is set; otherwise it is free (0).
func RasterizeImage(img image.Image, level uint8, darkIsObstacle bool) (height, width int, values []int) {
	b := img.Bounds()
	height, width = b.Dy(), b.Dx()
	values = make([]int, 0, height*width)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			gray := color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
			occupied := gray > level
			if darkIsObstacle {
				occupied = !occupied
			}
			if occupied {
				values = append(values, 1)
			} else {
				values = append(values, 0)
			}
		}
	}
	return height, width, values
}

// LoadImageGrid decodes a PNG or JPEG map and rasterizes it
func LoadImageGrid(filename string, level uint8, darkIsObstacle bool) (height, width int, values []int, err error) {
	f, err := os.Open(filename)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("failed to open map: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("failed to decode map: %w", err)
	}
	height, width, values = RasterizeImage(img, level, darkIsObstacle)
	return height, width, values, nil
}
