// SPDX-License-Identifier: Unlicense OR MIT

package widecolor

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/imageview/widecolor/internal/alog"
	"github.com/imageview/widecolor/internal/egl"
)

// Sentinel error classes. The per-mode errors are absorbed by Create,
// which advances the fallback chain; only ErrDisplayInit and
// ErrNoSupportedMode escape to the caller.
var (
	ErrDisplayInit     = errors.New("widecolor: display initialization failed")
	ErrNoConfig        = errors.New("widecolor: no matching config")
	ErrContextCreation = errors.New("widecolor: context creation failed")
	ErrWindowGeometry  = errors.New("widecolor: window buffer geometry rejected")
	ErrSurfaceCreation = errors.New("widecolor: surface creation failed")
	ErrNoSupportedMode = errors.New("widecolor: no supported wide color mode")
)

const modeInvalid Mode = -1

// Passthrough disables the display side OETF: the framebuffer content
// must already be OETF encoded and samplers must skip their EOTF.
// Available from Android 10.
var passthroughExts = []string{
	"EGL_KHR_gl_colorspace",
	"GL_EXT_gl_colorspace_display_p3_passthrough",
}

// Display-P3 surfaces need EGL_EXT_gl_colorspace_display_p3, which in
// turn needs EGL 1.4.
var displayP3Exts = []string{
	"EGL_KHR_gl_colorspace",
	"EGL_EXT_gl_colorspace_display_p3",
}

// Engine negotiates and owns one EGL display, context and surface.
// It is not safe for concurrent use; every method must run on the
// thread that owns the native window.
type Engine struct {
	api egl.API
	win Window

	disp egl.Display
	ctx  egl.Context
	surf egl.Surface

	mode          Mode
	space         ColorSpace
	format        PixelFormat
	width, height int

	modes         []Mode
	noPassthrough bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithModes overrides the negotiated fallback chain with a fixed
// candidate list, tried in order exactly as given; Create does not
// append the implicit legacy retry. Useful for bring-up and tests.
func WithModes(modes ...Mode) Option {
	for _, m := range modes {
		if !m.valid() {
			panic(fmt.Sprintf("widecolor: invalid mode %d", int(m)))
		}
	}
	return func(e *Engine) {
		e.modes = modes
	}
}

// WithoutPassthrough skips the passthrough extension probe. Some
// panels advertise passthrough but render it poorly; this keeps the
// quality/compatibility trade-off in the caller's hands.
func WithoutPassthrough() Option {
	return func(e *Engine) {
		e.noPassthrough = true
	}
}

// WithAPI substitutes an already loaded EGL binding.
func WithAPI(api egl.API) Option {
	return func(e *Engine) {
		e.api = api
	}
}

// NewEngine records the window collaborator and options. No platform
// calls happen until Create or CreateMode.
func NewEngine(win Window, opts ...Option) *Engine {
	e := &Engine{win: win, mode: modeInvalid}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Create negotiates the best supported mode: it opens the display,
// probes extensions to select a candidate chain, and tries each mode
// until one succeeds. If a negotiated wide gamut chain is exhausted
// the legacy sRGB mode is attempted as a final fallback; a chain
// pinned with WithModes is tried verbatim. Per-mode failures are
// absorbed; the returned error is nil on success, ErrDisplayInit if
// no display could be obtained, or ErrNoSupportedMode if even the
// legacy mode failed.
func (e *Engine) Create() error {
	if err := e.openDisplay(); err != nil {
		return err
	}
	modes := e.fallbackChain()
	var lastErr error
	for _, mode := range modes {
		if err := e.CreateMode(mode); err != nil {
			alog.Infof("mode %v is not supported: %v", mode, err)
			lastErr = err
			continue
		}
		return nil
	}
	// The legacy retry applies to negotiated wide gamut chains only;
	// a list pinned with WithModes is tried verbatim.
	if e.modes == nil && modes[len(modes)-1] != ModeSRGBRGBA8888 {
		if err := e.CreateMode(ModeSRGBRGBA8888); err != nil {
			lastErr = err
		} else {
			return nil
		}
	}
	alog.Errorf("no supported wide color mode: %v", lastErr)
	return fmt.Errorf("%w: %v", ErrNoSupportedMode, lastErr)
}

// CreateMode attempts a single mode: match exactly one config, create
// an ES 3 context, retarget the window buffers to the config's native
// visual, create the window surface with the mode's colorspace and
// make the pair current. A failure at any step releases exactly the
// resources acquired so far, in reverse order, and leaves the engine
// unready.
func (e *Engine) CreateMode(mode Mode) error {
	if !mode.valid() {
		panic(fmt.Sprintf("widecolor: invalid mode %d", int(mode)))
	}
	if err := e.openDisplay(); err != nil {
		return err
	}
	native := nativeModeCfg[mode]
	// Only the standard wide gamut half-float mode asks for float
	// components; everything else, the passthrough FP16 variant
	// included, requests a fixed component type.
	component := egl.ColorComponentTypeFixed
	if mode == ModeP3FP16 {
		component = egl.ColorComponentTypeFloat
	}
	attribs := []egl.Int{
		egl.SurfaceType, egl.WindowBit,
		egl.RenderableType, egl.OpenGLES3Bit,
		egl.BlueSize, native.b,
		egl.GreenSize, native.g,
		egl.RedSize, native.r,
		egl.AlphaSize, native.a,
		egl.ColorComponentType, component,
		egl.None,
	}

	var acquired []func()
	unwind := func() {
		for i := len(acquired) - 1; i >= 0; i-- {
			acquired[i]()
		}
	}

	cfg, count, ok := e.api.ChooseConfig(e.disp, attribs)
	if !ok || count != 1 {
		return fmt.Errorf("%w: mode %v matched %d configs (0x%x)", ErrNoConfig, mode, count, e.api.GetError())
	}
	ctx := e.api.CreateContext(e.disp, cfg, egl.NoContext, []egl.Int{
		egl.ContextClientVersion, 3,
		egl.None,
	})
	if ctx == egl.NoContext {
		return fmt.Errorf("%w: mode %v: eglCreateContext failed (0x%x)", ErrContextCreation, mode, e.api.GetError())
	}
	acquired = append(acquired, func() { e.api.DestroyContext(e.disp, ctx) })

	visID, ok := e.api.GetConfigAttrib(e.disp, cfg, egl.NativeVisualID)
	if !ok {
		unwind()
		return fmt.Errorf("%w: mode %v: no native visual id (0x%x)", ErrWindowGeometry, mode, e.api.GetError())
	}
	if err := e.win.SetBuffersGeometry(int32(visID)); err != nil {
		unwind()
		return fmt.Errorf("%w: mode %v: %v", ErrWindowGeometry, mode, err)
	}

	surf := e.api.CreateWindowSurface(e.disp, cfg, e.win.NativeWindow(), []egl.Int{
		egl.GLColorSpace, native.space,
		egl.None,
	})
	if surf == egl.NoSurface {
		unwind()
		return fmt.Errorf("%w: mode %v: eglCreateWindowSurface failed (0x%x)", ErrSurfaceCreation, mode, e.api.GetError())
	}
	acquired = append(acquired, func() { e.api.DestroySurface(e.disp, surf) })

	// Every precondition was just validated; a failed bind means the
	// driver or environment is corrupt.
	if !e.api.MakeCurrent(e.disp, surf, surf, ctx) {
		panic(fmt.Sprintf("widecolor: eglMakeCurrent failed for validated mode %v (0x%x)", mode, e.api.GetError()))
	}

	e.ctx = ctx
	e.surf = surf
	e.mode = mode
	e.space = mode.ColorSpace()
	e.format = mode.PixelFormat()
	w, _ := e.api.QuerySurface(e.disp, surf, egl.Width)
	h, _ := e.api.QuerySurface(e.disp, surf, egl.Height)
	e.width, e.height = int(w), int(h)
	alog.Infof("created %v context, %dx%d render target", mode, e.width, e.height)
	return nil
}

// Destroy releases the surface, context and display connection and
// resets the engine to its uninitialized state. It is idempotent and
// safe after a partially failed creation.
func (e *Engine) Destroy() {
	if e.disp == egl.NoDisplay {
		return
	}
	e.api.MakeCurrent(e.disp, egl.NoSurface, egl.NoSurface, egl.NoContext)
	if e.ctx != egl.NoContext {
		e.api.DestroyContext(e.disp, e.ctx)
	}
	if e.surf != egl.NoSurface {
		e.api.DestroySurface(e.disp, e.surf)
	}
	e.api.Terminate(e.disp)
	e.api.ReleaseThread()
	e.disp = egl.NoDisplay
	e.ctx = egl.NoContext
	e.surf = egl.NoSurface
	e.mode = modeInvalid
	e.space = ColorSpaceUnspecified
	e.format = PixelFormatUnspecified
	e.width, e.height = 0, 0
}

// Present swaps the surface buffers. The engine must be ready.
func (e *Engine) Present() error {
	if !e.Ready() {
		panic("widecolor: context is not active")
	}
	if !e.api.SwapBuffers(e.disp, e.surf) {
		return fmt.Errorf("eglSwapBuffers failed (0x%x)", e.api.GetError())
	}
	return nil
}

// SetSwapInterval sets the minimum number of vsyncs between buffer
// swaps. The engine must be ready.
func (e *Engine) SetSwapInterval(interval int) error {
	if !e.Ready() {
		panic("widecolor: context is not active")
	}
	if !e.api.SwapInterval(e.disp, egl.Int(interval)) {
		return fmt.Errorf("eglSwapInterval failed (0x%x)", e.api.GetError())
	}
	return nil
}

// Ready reports whether a context and surface pair is live and bound.
func (e *Engine) Ready() bool {
	return e.ctx != egl.NoContext && e.surf != egl.NoSurface
}

// Mode returns the negotiated mode, or an invalid mode when the
// engine is not ready.
func (e *Engine) Mode() Mode {
	return e.mode
}

// ColorSpace returns the colorspace of the live surface, or
// ColorSpaceUnspecified when the engine is not ready.
func (e *Engine) ColorSpace() ColorSpace {
	return e.space
}

// PixelFormat returns the pixel format of the live surface, or
// PixelFormatUnspecified when the engine is not ready.
func (e *Engine) PixelFormat() PixelFormat {
	return e.format
}

// Size returns the realized render target size in pixels, or the
// zero point when the engine is not ready.
func (e *Engine) Size() image.Point {
	return image.Pt(e.width, e.height)
}

func (e *Engine) openDisplay() error {
	if e.disp != egl.NoDisplay {
		return nil
	}
	if e.api == nil {
		api, err := egl.Load()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrDisplayInit, err)
		}
		e.api = api
	}
	disp := e.api.GetDisplay(egl.DefaultDisplay)
	if disp == egl.NoDisplay {
		alog.Errorf("eglGetDisplay failed (0x%x)", e.api.GetError())
		return fmt.Errorf("%w: eglGetDisplay failed (0x%x)", ErrDisplayInit, e.api.GetError())
	}
	major, minor, ok := e.api.Initialize(disp)
	if !ok {
		alog.Errorf("eglInitialize failed (0x%x)", e.api.GetError())
		return fmt.Errorf("%w: eglInitialize failed (0x%x)", ErrDisplayInit, e.api.GetError())
	}
	e.disp = disp
	alog.Infof("EGL %d.%d, vendor %q", major, minor, e.api.QueryString(disp, egl.Vendor))
	return nil
}

// fallbackChain selects the ranked candidate list for the display's
// advertised extensions: passthrough variants when available, then
// standard Display-P3 variants, otherwise the single legacy mode.
func (e *Engine) fallbackChain() []Mode {
	if e.modes != nil {
		return e.modes
	}
	if !e.noPassthrough && hasExtensions(e.api, e.disp, passthroughExts) {
		return []Mode{ModeP3PassthroughRGBA8888, ModeP3PassthroughRGBA1010102, ModeP3PassthroughFP16}
	}
	if hasExtensions(e.api, e.disp, displayP3Exts) {
		return []Mode{ModeP3RGBA8888, ModeP3RGBA1010102, ModeP3FP16}
	}
	alog.Warnf("Display-P3 is not supported, creating legacy sRGB context")
	return []Mode{ModeSRGBRGBA8888}
}

// hasExtensions reports whether every required token occurs in the
// display's extension string. Matching is substring based, not token
// boundary safe.
func hasExtensions(api egl.API, disp egl.Display, required []string) bool {
	exts := api.QueryString(disp, egl.Extensions)
	for _, ext := range required {
		if !strings.Contains(exts, ext) {
			return false
		}
	}
	return true
}
