package sdl

import (
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"uk.ac.bris.cs/vida/util"
)

// Largest side of the window in screen pixels; the grid is scaled up to it.
const maxWindowSide = 768

type Window struct {
	Width, Height int32
	window        *sdl.Window
	renderer      *sdl.Renderer
	texture       *sdl.Texture
	pixels        []byte
}

// NewWindow opens a window showing a width x height grid, every cell dead.
// Each cell is drawn cellSize pixels wide; zero or less picks the largest
// scale that keeps the window within maxWindowSide.
func NewWindow(width, height, cellSize int32) *Window {
	err := sdl.Init(sdl.INIT_EVERYTHING)
	util.Check(err)

	scale := cellSize
	if scale <= 0 {
		scale = fitScale(width, height)
	}

	window, err := sdl.CreateWindow("Conway's Game of Life", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		width*scale, height*scale, sdl.WINDOW_SHOWN)
	util.Check(err)

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	util.Check(err)
	err = renderer.SetLogicalSize(width, height)
	util.Check(err)

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ARGB8888, sdl.TEXTUREACCESS_STATIC, width, height)
	util.Check(err)

	return &Window{
		Width:    width,
		Height:   height,
		window:   window,
		renderer: renderer,
		texture:  texture,
		pixels:   make([]byte, pixelBytes(width, height)),
	}
}

func (w *Window) Destroy() {
	_ = w.texture.Destroy()
	_ = w.renderer.Destroy()
	_ = w.window.Destroy()
	sdl.Quit()
}

// PollEvent returns key presses and quit requests, nil for anything else.
func (w *Window) PollEvent() sdl.Event {
	event := sdl.PollEvent()
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN {
			return e
		}
	case *sdl.QuitEvent:
		return e
	}
	return nil
}

func (w *Window) RenderFrame() {
	err := w.texture.Update(nil, unsafe.Pointer(&w.pixels[0]), int(w.Width)*4)
	util.Check(err)
	err = w.renderer.Clear()
	util.Check(err)
	err = w.renderer.Copy(w.texture, nil, nil)
	util.Check(err)
	w.renderer.Present()
}

// FlipPixel toggles one cell between black and white.
func (w *Window) FlipPixel(x, y int) {
	index := 4 * (y*int(w.Width) + x)
	for i := 0; i != 4; i++ {
		w.pixels[index+i] = ^w.pixels[index+i]
	}
}

// Largest whole scale that keeps both sides within maxWindowSide, at least 1
func fitScale(width, height int32) int32 {
	scale := int32(1)
	for (width*(scale+1) <= maxWindowSide) && (height*(scale+1) <= maxWindowSide) {
		scale++
	}
	return scale
}

// Size of an ARGB8888 buffer for the grid, computed in int so large grids do not overflow int32
func pixelBytes(width, height int32) int {
	return int(width) * int(height) * 4
}
