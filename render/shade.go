package render

import (
	"errors"
	"image"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
)

// Shade renders the mesh of a Renderer as a shaded image of the given size,
// viewed from the side with the Z axis running horizontally.
func Shade(r Renderer, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New("image dimensions must be positive")
	}
	model, err := RenderAll(r)
	if err != nil {
		return nil, err
	}
	if len(model) == 0 {
		return nil, errors.New("empty mesh")
	}
	tris := make([]*fauxgl.Triangle, len(model))
	for i, t := range model {
		tris[i] = fauxgl.NewTriangleForPoints(
			fauxgl.V(t.V[0].X, t.V[0].Y, t.V[0].Z),
			fauxgl.V(t.V[1].X, t.V[1].Y, t.V[1].Z),
			fauxgl.V(t.V[2].X, t.V[2].Y, t.V[2].Z),
		)
	}
	mesh := fauxgl.NewTriangleMesh(tris)
	const (
		scale = 2  // supersampling
		fovy  = 30 // vertical field of view in degrees
		near  = 1
		far   = 10
	)
	var (
		eye    = fauxgl.V(1.5, -3.5, 0)
		center = fauxgl.V(0, 0, 0)
		up     = fauxgl.V(1, 0, 0)
		light  = fauxgl.V(0.5, -1, 0.25).Normalize()
		color  = fauxgl.HexColor("#C0C8D0")
	)
	// fit mesh in a bi-unit cube centered at the origin
	mesh.BiUnitCube()
	context := fauxgl.NewContext(width*scale, height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFFFFF"))
	aspect := float64(width) / float64(height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, near, far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = color
	context.Shader = shader
	context.DrawMesh(mesh)
	// downsample image for antialiasing
	return resize.Resize(uint(width), uint(height), context.Image(), resize.Bilinear), nil
}

// CreateShadedPNG writes the shaded image of Shade to a PNG file.
func CreateShadedPNG(path string, r Renderer, width, height int) error {
	img, err := Shade(r, width, height)
	if err != nil {
		return err
	}
	return fauxgl.SavePNG(path, img)
}
