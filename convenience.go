package motion

// Common frame geometries for convenience constructors.
const (
	// WidthQVGA and HeightQVGA describe the QVGA (320x240) geometry.
	WidthQVGA  = 320
	HeightQVGA = 240

	// WidthVGA and HeightVGA describe the VGA (640x480) geometry.
	WidthVGA  = 640
	HeightVGA = 480

	// WidthHD720 and HeightHD720 describe the 720p geometry.
	WidthHD720  = 1280
	HeightHD720 = 720

	// WidthHD1080 and HeightHD1080 describe the 1080p geometry.
	WidthHD1080  = 1920
	HeightHD1080 = 1080
)

// NewQVGA creates a detector for QVGA (320x240) frames, the typical
// low-latency webcam preview size.
func NewQVGA() (Detector, error) {
	return New(&Config{Width: WidthQVGA, Height: HeightQVGA})
}

// NewVGA creates a detector for VGA (640x480) frames.
func NewVGA() (Detector, error) {
	return New(&Config{Width: WidthVGA, Height: HeightVGA})
}

// NewHD720 creates a detector for 720p (1280x720) frames.
func NewHD720() (Detector, error) {
	return New(&Config{Width: WidthHD720, Height: HeightHD720})
}

// NewHD1080 creates a detector for 1080p (1920x1080) frames.
func NewHD1080() (Detector, error) {
	return New(&Config{Width: WidthHD1080, Height: HeightHD1080})
}

// AllocFrame allocates an RGBA frame buffer sized for the given
// geometry, suitable as the output argument of Process.
func AllocFrame(width, height int) []byte {
	return make([]byte, width*height*bytesPerPixel)
}
