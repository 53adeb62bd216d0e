package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/BeatGlow/raster/export"
	"github.com/BeatGlow/raster/framebuffer"
	"github.com/BeatGlow/raster/ppm"
)

func main() {
	convertFlag := flag.String("convert", "", "Also write the image to this file (png, bmp, tiff or ppm)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-convert <file>] <file.ppm>\n", os.Args[0])
		os.Exit(1)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatalln("open failed: ", err)
	}
	img, err := ppm.Decode(f)
	_ = f.Close()
	if err != nil {
		log.Fatalln("decode failed: ", err)
	}
	fmt.Printf("%s: %dx%d, depth %d\n", flag.Arg(0), img.Width, img.Height, img.Depth)

	if *convertFlag == "" {
		return
	}
	fb, err := framebuffer.New(framebuffer.Config{
		Width:  img.Width,
		Height: img.Height,
		Depth:  img.Depth,
		Data:   img.Pix,
	})
	if err != nil {
		log.Fatalln("invalid image: ", err)
	}
	if err = export.WriteFile(*convertFlag, fb.Image()); err != nil {
		log.Fatalln("convert failed: ", err)
	}
	fmt.Println("converted to", *convertFlag)
}
