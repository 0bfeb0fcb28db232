// Package viz renders a skeleton's rest hierarchy as a 2D line drawing.
// It consumes pose buffers through the buffer capability interfaces, the
// same way downstream sampling and blending jobs do, so it doubles as the
// in-repo consumer of that abstraction.
package viz

import (
	"image"
	"image/color"
	"math"

	"ozz-skel-runtime/internal/buffer"
	"ozz-skel-runtime/internal/ozzerr"
	"ozz-skel-runtime/internal/skeleton"
	"ozz-skel-runtime/internal/soa"
)

// ModelPositions composes the local pose buffer along the joint hierarchy
// and returns each joint's model-space position. The buffer must hold at
// least NumSoaJoints transform groups; local poses beyond the joint count
// are ignored.
func ModelPositions(s *skeleton.Skeleton, poses buffer.Buf[soa.Transform]) ([]soa.ScalarVec3, error) {
	view, err := poses.Acquire()
	if err != nil {
		return nil, err
	}
	defer view.Release()

	locals := view.Data()
	if len(locals) < s.NumSoaJoints() {
		return nil, ozzerr.InvalidIndex(s.NumSoaJoints()-1, len(locals))
	}

	models := make([]soa.ScalarTransform, s.NumJoints())
	positions := make([]soa.ScalarVec3, s.NumJoints())
	s.IterDepthFirst(-1, func(joint, parent int16) {
		local := locals[joint/4].Lane(int(joint % 4))
		if parent == skeleton.NoParent {
			models[joint] = local
		} else {
			models[joint] = soa.Combine(models[parent], local)
		}
		positions[joint] = models[joint].Translation
	})
	return positions, nil
}

// Options controls rendering. Zero values fall back to a 256px canvas
// with 2x supersampling.
type Options struct {
	Size        int
	Supersample int
	BoneColor   color.NRGBA
	JointColor  color.NRGBA
}

func (o *Options) resolve() {
	if o.Size <= 0 {
		o.Size = 256
	}
	if o.Supersample <= 0 {
		o.Supersample = 2
	}
	zero := color.NRGBA{}
	if o.BoneColor == zero {
		o.BoneColor = color.NRGBA{R: 230, G: 230, B: 235, A: 255}
	}
	if o.JointColor == zero {
		o.JointColor = color.NRGBA{R: 255, G: 170, B: 40, A: 255}
	}
}

// Render draws joint-to-parent segments of the posed skeleton, projected
// orthographically onto the XY plane, into a square image of opts.Size.
func Render(s *skeleton.Skeleton, poses buffer.Buf[soa.Transform], opts Options) (*image.NRGBA, error) {
	opts.resolve()

	positions, err := ModelPositions(s, poses)
	if err != nil {
		return nil, err
	}

	big := opts.Size * opts.Supersample
	img := image.NewNRGBA(image.Rect(0, 0, big, big))
	if len(positions) == 0 {
		return Downsample(img, opts.Size), nil
	}

	px, py := project(positions, big)
	for joint := range positions {
		parent := s.Parent(joint)
		if parent != skeleton.NoParent {
			drawLine(img, px[parent], py[parent], px[joint], py[joint], opts.BoneColor)
		}
	}
	// Joints on top of bones.
	r := opts.Supersample
	for joint := range positions {
		drawDot(img, px[joint], py[joint], r, opts.JointColor)
	}

	return Downsample(img, opts.Size), nil
}

// project maps model XY coordinates into pixel coordinates, preserving
// aspect ratio with a 10% margin. Y points up in model space and down in
// image space.
func project(positions []soa.ScalarVec3, size int) (px, py []int) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range positions {
		minX = math.Min(minX, float64(p[0]))
		maxX = math.Max(maxX, float64(p[0]))
		minY = math.Min(minY, float64(p[1]))
		maxY = math.Max(maxY, float64(p[1]))
	}

	span := math.Max(maxX-minX, maxY-minY)
	if span <= 0 {
		span = 1
	}
	scale := float64(size) * 0.8 / span
	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	half := float64(size) / 2

	px = make([]int, len(positions))
	py = make([]int, len(positions))
	for i, p := range positions {
		px[i] = int(half + (float64(p[0])-cx)*scale + 0.5)
		py[i] = int(half - (float64(p[1])-cy)*scale + 0.5)
	}
	return px, py
}

func drawLine(img *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	dx, dy := x1-x0, y1-y0
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		img.SetNRGBA(x0, y0, c)
		return
	}
	for i := 0; i <= steps; i++ {
		x := x0 + dx*i/steps
		y := y0 + dy*i/steps
		img.SetNRGBA(x, y, c)
	}
}

func drawDot(img *image.NRGBA, x, y, r int, c color.NRGBA) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				img.SetNRGBA(x+dx, y+dy, c)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
