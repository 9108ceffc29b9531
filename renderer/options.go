package renderer

type Options struct {
	// Window dims. For fullscreen windows these are the requested mode;
	// the achieved framebuffer size may differ.
	Width  uint32
	Height uint32

	Fullscreen bool

	// Sync buffer swaps to the display refresh rate. Benchmark runs
	// disable this so frame times measure render work.
	VSync bool

	Title string
}
