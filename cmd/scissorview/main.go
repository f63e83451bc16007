// Command scissorview renders a preview PNG of a binary STL file, such as
// the lift mesh written by scissorcalc -stl.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"github.com/soypat/scissor/render"
)

type viewConfig struct {
	// what position (point) to look at
	lookat fauxgl.Vector
	// which way is up (direction)
	up fauxgl.Vector
	// where the camera/eye located at (point)
	eyepos fauxgl.Vector
	far    float64
	near   float64
}

// Lift meshes have Z up and the scissor planes stacked along Y.
var views = map[string]viewConfig{
	"iso":   {up: fauxgl.V(0, 0, 1), eyepos: fauxgl.V(2.4, -2.4, 2.4), near: 1, far: 10},
	"front": {up: fauxgl.V(0, 0, 1), eyepos: fauxgl.V(0, -3.5, 0), near: 1, far: 10},
	"side":  {up: fauxgl.V(0, 0, 1), eyepos: fauxgl.V(3.5, 0, 0), near: 1, far: 10},
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("scissorview: ")
	var (
		output = flag.String("o", "", "output PNG file (default input name with .png extension)")
		view   = flag.String("view", "iso", "camera view: iso, front or side")
		width  = flag.Int("width", 768, "output width in pixels")
		height = flag.Int("height", 432, "output height in pixels")
		ss     = flag.Int("ss", 2, "supersampling factor")
		color  = flag.String("color", "#468966", "object color")
	)
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("usage: scissorview [flags] model.stl")
	}
	input := flag.Arg(0)
	cfg, ok := views[*view]
	if !ok {
		log.Fatalf("unknown view %q", *view)
	}
	if *width <= 0 || *height <= 0 || *ss < 1 {
		log.Fatal("image size and supersampling must be positive")
	}
	if *output == "" {
		*output = strings.TrimSuffix(input, ".stl") + ".png"
	}
	if err := checkSTL(input); err != nil {
		log.Fatal(err)
	}
	err := stlToPNG(input, *output, cfg, *width, *height, *ss, fauxgl.HexColor(*color))
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s (%s)", *output, getHumanSize(*output))
}

// checkSTL validates a binary STL before rasterizing it.
func checkSTL(name string) error {
	fp, err := os.Open(name)
	if err != nil {
		return err
	}
	defer fp.Close()
	model, err := render.ReadSTL(fp)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	log.Printf("%s: %d triangles", name, len(model))
	return nil
}

func stlToPNG(stlName, outputname string, view viewConfig, width, height, scale int, color fauxgl.Color) error {
	mesh, err := fauxgl.LoadSTL(stlName)
	if err != nil {
		return err
	}
	const fovy = 30 // vertical field of view in degrees

	var (
		far    = view.far
		near   = view.near
		eye    = view.eyepos                          // camera position
		center = view.lookat                          // view center position
		up     = view.up                              // up vector
		light  = fauxgl.V(-0.75, -1, 0.5).Normalize() // light direction
	)

	// fit mesh in a bi-unit cube centered at the origin
	mesh.BiUnitCube()
	// create a rendering context
	context := fauxgl.NewContext(width*scale, height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	// create transformation matrix and light direction
	aspect := float64(width) / float64(height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, near, far)
	// use builtin phong shader
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = color
	context.Shader = shader
	// render
	context.DrawMesh(mesh)
	// downsample image for antialiasing
	image := context.Image()
	image = resize.Resize(uint(width), uint(height), image, resize.Bilinear)
	return fauxgl.SavePNG(outputname, image)
}

func getHumanSize(fileName string) (size string) {
	const (
		kB = 1000
		MB = 1000 * kB
	)
	info, err := os.Stat(fileName)
	if err != nil {
		return "unknown size"
	}
	bytes := info.Size()
	switch {
	case bytes < 10*kB:
		size = fmt.Sprintf("%dB", bytes)
	case bytes < 10*MB:
		size = fmt.Sprintf("%dkB", bytes/kB)
	default:
		size = fmt.Sprintf("%dMB", bytes/MB)
	}
	return size
}
