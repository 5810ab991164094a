package engine

import (
	"sync"
	"time"

	"github.com/umbra3d/umbra/common"
	"github.com/umbra3d/umbra/engine/core"
	"github.com/umbra3d/umbra/engine/profiler"
	"github.com/umbra3d/umbra/engine/renderer"
	"github.com/umbra3d/umbra/engine/scene"
	"github.com/umbra3d/umbra/engine/window"
)

// engine implements the Engine interface.
// Coordinates the update, render, and window threads.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window window.Window
	keys   *common.KeyTracker

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)
	renderCallback func(deltaTime float32)

	activeScene scene.Scene

	vsync bool

	titleMu      sync.Mutex
	pendingTitle string
	baseTitle    string

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
}

// Engine is the main entry point for the renderer runtime.
// It orchestrates the update loop, render loop, and window management.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Keys returns the engine's key state tracker. Feed it to camera and
	// model Control methods from the tick callback.
	//
	// Returns:
	//   - *common.KeyTracker: the key tracker
	Keys() *common.KeyTracker

	// EnableProfiler enables performance profiling output to the log and
	// the frame time readout in the window title.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in frames per second.
	// The tick callback will be called at this rate for logic updates.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called each engine tick.
	// Use this for input processing and animation updates.
	//
	// Parameters:
	//   - callback: function to call at the configured tick rate, receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderCallback registers the function called each render frame after
	// the scene has been drawn.
	//
	// Parameters:
	//   - callback: function to call each render frame, receiving the delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets an optional render frame rate cap in frames per second.
	// Pass 0 to uncap the render loop (default).
	//
	// Parameters:
	//   - fps: maximum render frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// SetScene sets the scene the render loop draws each frame.
	//
	// Parameters:
	//   - s: the Scene to render
	SetScene(s scene.Scene)

	// Scene returns the active scene, or nil if none is set.
	//
	// Returns:
	//   - scene.Scene: the active scene
	Scene() scene.Scene

	// ToggleVSync flips the renderer's present mode between vsync and
	// uncapped and reconfigures the surface. Bound to the P key by default.
	ToggleVSync()

	// Run starts the main engine loop (blocks until window closes).
	Run()

	// Quit signals all engine goroutines to stop and shuts down the engine.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// Wires window input into the key tracker and binds the default toggles:
// 1 freezes the light orbit, P flips vsync.
//
// Parameters:
//   - options: functional options for engine configuration (window, scene, tick rate, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		keys:            common.NewKeyTracker(),
		profiler:        profiler.NewProfiler(),
		engineTickRate:  time.Second / 60,
		vsync:           true,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window != nil {
		e.window.SetResizeCallback(func(width, height int) {
			if e.activeScene == nil {
				return
			}
			if r := e.activeScene.Renderer(); r != nil {
				r.Resize(width, height)
			}
			if c := e.activeScene.Camera(); c != nil {
				c.SetAspect(float32(width) / float32(height))
			}
		})
		e.window.SetKeyDownCallback(func(keyCode uint32) {
			e.handleKeyDown(keyCode)
		})
		e.window.SetKeyUpCallback(func(keyCode uint32) {
			e.keys.Release(keyCode)
		})
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Keys() *common.KeyTracker {
	return e.keys
}

func (e *engine) Run() {
	e.running = true
	if e.window != nil {
		e.baseTitle = e.window.Title()
		e.window.SetUpdateCallback(e.applyPendingTitle)
	}
	e.handle()
	e.window.ProcessMessages()
	e.signalQuit()
	e.wg.Wait()
}

// Quit signals all engine goroutines to stop and shuts down the engine.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.running = false
		close(e.quitChannel)
	})
}

// handleKeyDown records the key press and applies the engine-level toggles.
// Repeats arrive for held keys; the tracker dedupes them so toggles only
// fire on the initial press.
func (e *engine) handleKeyDown(keyCode uint32) {
	if e.keys.IsDown(keyCode) {
		return
	}
	e.keys.Press(keyCode)

	switch keyCode {
	case common.Key1:
		if e.activeScene != nil {
			e.activeScene.ToggleOrbit()
		}
	case common.KeyP:
		e.ToggleVSync()
	}
}

func (e *engine) ToggleVSync() {
	if e.activeScene == nil {
		return
	}
	r := e.activeScene.Renderer()
	if r == nil {
		return
	}

	e.vsync = !e.vsync
	mode := renderer.PresentModeVSync
	if !e.vsync {
		mode = renderer.PresentModeUncapped
	}
	r.SetPresentMode(mode)
	if e.window != nil {
		r.Resize(e.window.Width(), e.window.Height())
	}
	core.LogInfo("vsync %v", e.vsync)
}

// handle launches the update, render, and quit goroutines.
// Each goroutine is tracked by the engine's WaitGroup.
func (e *engine) handle() {
	e.wg.Add(3)
	go e.handleEngine()
	go e.handleRender()
	go e.handleQuit()
}

// handleEngine runs the fixed-rate update loop in its own goroutine.
// Advances the scene animation and fires the tick callback at the configured
// rate, listening for dynamic rate changes via tickRateChannel. Exits when
// the quit channel is closed.
func (e *engine) handleEngine() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			if e.activeScene != nil {
				e.activeScene.Update(dt)
			}
			if e.tickCallback != nil {
				e.tickCallback(dt)
			}
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		}
	}
}

// handleRender runs the uncapped (or frame-limited) render loop in its own
// goroutine. Each iteration renders the active scene's full frame: shadow
// depth passes first, then the main colour pass, then present. Recovers from
// panics to avoid crashing the process and signals quit on recovery.
func (e *engine) handleRender() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			core.LogError("render goroutine recovered from panic: %v", r)
			e.signalQuit()
		}
	}()

	lastRender := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		default:
			now := time.Now()
			dt := float32(now.Sub(lastRender).Seconds())
			lastRender = now

			if e.activeScene != nil {
				if err := e.activeScene.RenderFrame(); err != nil {
					core.LogError("frame render failed: %v", err)
				}
			}

			if e.renderCallback != nil {
				e.renderCallback(dt)
			}

			if e.profilingEnabled && e.profiler != nil {
				if e.profiler.Tick() {
					e.stageTitle(e.baseTitle + " | " + e.profiler.Summary())
				}
			}

			// Frame rate limiting
			if e.renderFrameLimit > 0 {
				elapsed := time.Since(lastRender)
				if remaining := e.renderFrameLimit - elapsed; remaining > 0 {
					time.Sleep(remaining)
				}
			}
		}
	}
}

// stageTitle queues a window title update for the message loop thread.
// GLFW window calls must happen on the thread running ProcessMessages.
func (e *engine) stageTitle(title string) {
	e.titleMu.Lock()
	e.pendingTitle = title
	e.titleMu.Unlock()
}

// applyPendingTitle runs on the message loop thread each iteration and
// applies any staged title update.
func (e *engine) applyPendingTitle() {
	e.titleMu.Lock()
	title := e.pendingTitle
	e.pendingTitle = ""
	e.titleMu.Unlock()

	if title != "" && e.window != nil {
		e.window.SetTitle(title)
	}
}

// handleQuit blocks until the quit channel is closed, then decrements the WaitGroup.
func (e *engine) handleQuit() {
	defer e.wg.Done()
	<-e.quitChannel
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetTickRate sets the engine tick rate in frames per second.
// If the engine is running, the change takes effect immediately.
func (e *engine) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	newRate := time.Second / time.Duration(fps)

	if e.running {
		// Non-blocking send; if a rate change is already pending, replace it.
		select {
		case e.tickRateChannel <- newRate:
		default:
			select {
			case <-e.tickRateChannel:
			default:
			}
			e.tickRateChannel <- newRate
		}
	} else {
		e.engineTickRate = newRate
	}
}

// SetTickCallback registers the function called each engine tick.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

// SetRenderCallback registers the function called each render frame.
func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

// SetRenderFrameLimit sets an optional render frame rate cap.
// Pass 0 to uncap the render loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Second / time.Duration(fps)
}

func (e *engine) SetScene(s scene.Scene) {
	e.activeScene = s
}

func (e *engine) Scene() scene.Scene {
	return e.activeScene
}
