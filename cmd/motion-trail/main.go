// Command motion-trail renders a motion persistence visualization from
// a directory of PNG frames.
//
// Usage:
//
//	motion-trail -in frames/ -out trails/
//	motion-trail -in frames/ -out trails/ -move spiral -speed 2 -rotation 0.05
//	motion-trail -in frames/ -out trails/ -options preset.yaml
//	motion-trail -in frames/ -out trails/ -simd -stats
//
// Input frames are processed in lexical filename order and must all
// share the dimensions of the first frame. Output frames are grayscale
// PNGs named after their inputs.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	motion "github.com/tphakala/go-motion-persist"
)

const (
	// Output directory permissions.
	outputDirPerm = 0o755

	// Progress logging interval in frames.
	progressInterval = 30
)

func main() {
	var (
		inDir       = flag.String("in", "", "input directory of PNG frames (required)")
		outDir      = flag.String("out", "", "output directory (required)")
		optionsPath = flag.String("options", "", "YAML options preset file")
		moveTag     = flag.String("move", "", "move type: none, direction, radial, spiral, wave")
		angle       = flag.Float64("angle", 0, "direction warp angle in radians")
		speed       = flag.Float64("speed", 0, "warp speed in pixels per frame")
		rotation    = flag.Float64("rotation", 0.1, "spiral rotation speed in radians per frame")
		decay       = flag.Float64("decay", motion.DefaultDecayRate, "trail decay rate")
		threshold   = flag.Float64("threshold", motion.DefaultThreshold, "motion threshold at frame center")
		sensitivity = flag.Float64("sensitivity", motion.DefaultSensitivity, "motion gain")
		simd        = flag.Bool("simd", false, "enable SIMD acceleration")
		stats       = flag.Bool("stats", false, "log per-frame trail statistics")
	)
	flag.Parse()

	if *inDir == "" || *outDir == "" {
		flag.Usage()
		os.Exit(1)
	}

	opts, err := buildOptions(*optionsPath, *moveTag, flagScalars{
		angle:       float32(*angle),
		speed:       float32(*speed),
		rotation:    float32(*rotation),
		decay:       float32(*decay),
		threshold:   float32(*threshold),
		sensitivity: float32(*sensitivity),
	})
	if err != nil {
		log.Fatal(err)
	}

	frames, err := listFrames(*inDir)
	if err != nil {
		log.Fatal(err)
	}
	if len(frames) == 0 {
		log.Fatalf("no PNG frames found in %s", *inDir)
	}

	if err := os.MkdirAll(*outDir, outputDirPerm); err != nil {
		log.Fatal(err)
	}

	first, err := loadFrame(frames[0])
	if err != nil {
		log.Fatal(err)
	}
	bounds := first.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	det, err := motion.New(&motion.Config{
		Width:      width,
		Height:     height,
		EnableSIMD: *simd,
	})
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("Input: %s (%d frames, %dx%d)", *inDir, len(frames), width, height)
	log.Printf("Output: %s", *outDir)
	log.Printf("Move: %s", opts.Move.Type)
	if *simd {
		log.Printf("SIMD: enabled")
	}

	output := motion.AllocFrame(width, height)
	start := time.Now()

	for n, path := range frames {
		img := first
		if n > 0 {
			img, err = loadFrame(path)
			if err != nil {
				log.Fatal(err)
			}
			if img.Bounds().Dx() != width || img.Bounds().Dy() != height {
				log.Fatalf("%s: frame is %dx%d, want %dx%d",
					path, img.Bounds().Dx(), img.Bounds().Dy(), width, height)
			}
		}

		if err := det.Process(img.Pix, output, opts); err != nil {
			log.Fatalf("%s: %v", path, err)
		}

		if err := saveFrame(filepath.Join(*outDir, filepath.Base(path)), output, width, height); err != nil {
			log.Fatal(err)
		}

		if *stats {
			s := det.Stats()
			log.Printf("frame %d: mean=%.2f peak=%.2f active=%.1f%%",
				n, s.Mean, s.Peak, s.ActiveFraction*100)
		} else if n > 0 && n%progressInterval == 0 {
			log.Printf("processed %d/%d frames", n, len(frames))
		}
	}

	elapsed := time.Since(start)
	log.Printf("Done: %d frames in %v (%.1f fps)",
		len(frames), elapsed.Round(time.Millisecond),
		float64(len(frames))/elapsed.Seconds())
}

// listFrames returns the PNG files in dir in lexical order.
func listFrames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory: %w", err)
	}

	var frames []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".png") {
			frames = append(frames, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(frames)
	return frames, nil
}

// loadFrame decodes a PNG file into a tightly packed RGBA image.
func loadFrame(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if rgba, ok := img.(*image.RGBA); ok && rgba.Stride == rgba.Bounds().Dx()*4 {
		return rgba, nil
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba, nil
}

// saveFrame encodes an RGBA byte buffer as a PNG file.
func saveFrame(path string, pix []byte, width, height int) error {
	img := &image.RGBA{
		Pix:    pix,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}
