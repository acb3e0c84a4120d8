// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sim

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/render"
	"github.com/gogpu/xrframe/xr"
)

// Runtime is a simulated XR runtime. It is safe for concurrent use.
type Runtime struct {
	viewCount     int
	viewWidth     uint32
	viewHeight    uint32
	imageCount    int
	requirements  xr.GraphicsRequirements
	period        xr.Duration
	autoLifecycle bool
	head          xr.Posef

	mu          sync.Mutex
	nextHandle  uint64
	instance    xr.Instance
	session     xr.Session
	state       xr.SessionState
	running     bool
	exitPending bool
	events      []xr.Event
	spaces      map[xr.Space]xr.ReferenceSpaceType
	swapchains  map[xr.Swapchain]*simSwapchain
	failures    map[string]failure
	calls       []string

	now          xr.Time
	frameWaited  bool
	frameBegun   bool
	shouldRender bool
	viewFlags    xr.ViewStateFlags
	submitted    []xr.FrameEndInfo
}

type simSwapchain struct {
	info     xr.SwapchainCreateInfo
	images   []*render.PixmapTarget
	next     int
	acquired bool
	waited   bool
	acquires int
	releases int
}

// New creates a simulated runtime.
func New(opts ...Option) *Runtime {
	r := &Runtime{
		viewCount:     DefaultViewCount,
		viewWidth:     DefaultViewWidth,
		viewHeight:    DefaultViewHeight,
		imageCount:    DefaultImageCount,
		requirements:  DefaultRequirements,
		period:        DefaultDisplayPeriod,
		autoLifecycle: true,
		head: xr.Posef{
			Orientation: xr.Quaternionf{W: 1},
			Position:    xr.Vector3f{Y: DefaultEyeHeight},
		},
		spaces:       make(map[xr.Space]xr.ReferenceSpaceType),
		swapchains:   make(map[xr.Swapchain]*simSwapchain),
		failures:     make(map[string]failure),
		now:          xr.Time(1_000_000_000),
		shouldRender: true,
		viewFlags: xr.ViewStateOrientationValid | xr.ViewStatePositionValid |
			xr.ViewStateOrientationTracked | xr.ViewStatePositionTracked,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// record appends op to the call log and returns the injected failure for
// op, if any. Must be called with mu held.
func (r *Runtime) record(op string) error {
	r.calls = append(r.calls, op)
	f, ok := r.failures[op]
	if !ok {
		return nil
	}
	if f.skip > 0 {
		f.skip--
		r.failures[op] = f
		return nil
	}
	delete(r.failures, op)
	return xr.NewError(op, f.result)
}

// failure is a scheduled one-shot error.
type failure struct {
	skip   int
	result xr.Result
}

func (r *Runtime) handle() uint64 {
	r.nextHandle++
	return r.nextHandle
}

// setState queues a state change for the owned session and applies it to
// the runtime side immediately. Must be called with mu held.
func (r *Runtime) setState(s xr.SessionState) {
	r.state = s
	r.events = append(r.events, xr.SessionStateChanged{Session: r.session, State: s, Time: r.now})
}

// Instance

func (r *Runtime) CreateInstance(info xr.InstanceCreateInfo) (xr.Instance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("xrCreateInstance"); err != nil {
		return 0, err
	}
	if !r.instance.IsNull() {
		return 0, xr.NewError("xrCreateInstance", xr.ErrorCallOrderInvalid)
	}
	if info.Application.APIVersion.Major() != xr.CurrentAPIVersion.Major() {
		return 0, xr.NewError("xrCreateInstance", xr.ErrorAPIVersionUnsupported)
	}
	for _, ext := range info.Extensions {
		if !supportedExtension(ext) {
			return 0, xr.NewError("xrCreateInstance", xr.ErrorExtensionNotPresent)
		}
	}
	r.instance = xr.Instance(r.handle())
	return r.instance, nil
}

// SupportedExtensions lists the extensions the simulated runtime accepts.
var SupportedExtensions = []string{
	"XR_KHR_opengl_es_enable",
	"XR_KHR_opengl_enable",
	"XR_KHR_vulkan_enable2",
}

func supportedExtension(name string) bool {
	for _, s := range SupportedExtensions {
		if s == name {
			return true
		}
	}
	return false
}

func (r *Runtime) DestroyInstance(instance xr.Instance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("xrDestroyInstance"); err != nil {
		return err
	}
	if instance != r.instance || instance.IsNull() {
		return xr.NewError("xrDestroyInstance", xr.ErrorHandleInvalid)
	}
	r.instance = 0
	r.session = 0
	r.running = false
	r.state = xr.SessionStateUnknown
	r.events = nil
	r.spaces = make(map[xr.Space]xr.ReferenceSpaceType)
	r.swapchains = make(map[xr.Swapchain]*simSwapchain)
	return nil
}

func (r *Runtime) InstanceProperties(instance xr.Instance) (xr.InstanceProperties, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("xrGetInstanceProperties"); err != nil {
		return xr.InstanceProperties{}, err
	}
	if instance != r.instance || instance.IsNull() {
		return xr.InstanceProperties{}, xr.NewError("xrGetInstanceProperties", xr.ErrorHandleInvalid)
	}
	return xr.InstanceProperties{
		RuntimeName:    "xrframe simulated runtime",
		RuntimeVersion: xr.MakeVersion(0, 1, 0),
	}, nil
}

const simSystem xr.SystemID = 1

func (r *Runtime) GetSystem(instance xr.Instance, formFactor xr.FormFactor) (xr.SystemID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("xrGetSystem"); err != nil {
		return xr.NullSystemID, err
	}
	if instance != r.instance || instance.IsNull() {
		return xr.NullSystemID, xr.NewError("xrGetSystem", xr.ErrorHandleInvalid)
	}
	if formFactor != xr.FormFactorHeadMountedDisplay {
		return xr.NullSystemID, xr.NewError("xrGetSystem", xr.ErrorFormFactorUnavailable)
	}
	return simSystem, nil
}

func (r *Runtime) SystemProperties(instance xr.Instance, system xr.SystemID) (xr.SystemProperties, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("xrGetSystemProperties"); err != nil {
		return xr.SystemProperties{}, err
	}
	if system != simSystem {
		return xr.SystemProperties{}, xr.NewError("xrGetSystemProperties", xr.ErrorSystemInvalid)
	}
	return xr.SystemProperties{
		SystemID:   system,
		VendorID:   0x1d5c,
		SystemName: "Simulated HMD",
		Graphics: xr.SystemGraphicsProperties{
			MaxSwapchainImageWidth:  r.viewWidth * 2,
			MaxSwapchainImageHeight: r.viewHeight * 2,
			MaxLayerCount:           16,
		},
		Tracking: xr.SystemTrackingProperties{
			OrientationTracking: true,
			PositionTracking:    true,
		},
	}, nil
}

func (r *Runtime) GraphicsRequirements(instance xr.Instance, system xr.SystemID) (xr.GraphicsRequirements, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("xrGetGraphicsRequirements"); err != nil {
		return xr.GraphicsRequirements{}, err
	}
	if system != simSystem {
		return xr.GraphicsRequirements{}, xr.NewError("xrGetGraphicsRequirements", xr.ErrorSystemInvalid)
	}
	return r.requirements, nil
}

func (r *Runtime) PollEvent(instance xr.Instance) (xr.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("xrPollEvent"); err != nil {
		return nil, err
	}
	if len(r.events) == 0 {
		return nil, xr.ErrEventUnavailable
	}
	ev := r.events[0]
	r.events = r.events[1:]
	return ev, nil
}

// Session

func (r *Runtime) CreateSession(instance xr.Instance, info xr.SessionCreateInfo) (xr.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("xrCreateSession"); err != nil {
		return 0, err
	}
	if instance != r.instance || instance.IsNull() {
		return 0, xr.NewError("xrCreateSession", xr.ErrorHandleInvalid)
	}
	if info.SystemID != simSystem {
		return 0, xr.NewError("xrCreateSession", xr.ErrorSystemInvalid)
	}
	if info.Graphics.Display == 0 || info.Graphics.Context == 0 {
		return 0, xr.NewError("xrCreateSession", xr.ErrorGraphicsDeviceInvalid)
	}
	if !r.session.IsNull() {
		return 0, xr.NewError("xrCreateSession", xr.ErrorCallOrderInvalid)
	}
	r.session = xr.Session(r.handle())
	r.state = xr.SessionStateUnknown
	if r.autoLifecycle {
		r.setState(xr.SessionStateIdle)
		r.setState(xr.SessionStateReady)
	}
	return r.session, nil
}

func (r *Runtime) DestroySession(session xr.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("xrDestroySession"); err != nil {
		return err
	}
	if session != r.session || session.IsNull() {
		return xr.NewError("xrDestroySession", xr.ErrorHandleInvalid)
	}
	r.session = 0
	r.running = false
	r.exitPending = false
	r.frameWaited = false
	r.frameBegun = false
	r.state = xr.SessionStateUnknown
	r.spaces = make(map[xr.Space]xr.ReferenceSpaceType)
	r.swapchains = make(map[xr.Swapchain]*simSwapchain)
	return nil
}

func (r *Runtime) BeginSession(session xr.Session, viewConfiguration xr.ViewConfigurationType) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("xrBeginSession"); err != nil {
		return err
	}
	if session != r.session || session.IsNull() {
		return xr.NewError("xrBeginSession", xr.ErrorHandleInvalid)
	}
	if r.running {
		return xr.NewError("xrBeginSession", xr.ErrorSessionRunning)
	}
	if r.state != xr.SessionStateReady {
		return xr.NewError("xrBeginSession", xr.ErrorSessionNotReady)
	}
	if viewConfiguration != r.viewConfiguration() {
		return xr.NewError("xrBeginSession", xr.ErrorValidationFailure)
	}
	r.running = true
	if r.autoLifecycle {
		r.setState(xr.SessionStateSynchronized)
		r.setState(xr.SessionStateVisible)
		r.setState(xr.SessionStateFocused)
	}
	return nil
}

func (r *Runtime) EndSession(session xr.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("xrEndSession"); err != nil {
		return err
	}
	if session != r.session || session.IsNull() {
		return xr.NewError("xrEndSession", xr.ErrorHandleInvalid)
	}
	if !r.running {
		return xr.NewError("xrEndSession", xr.ErrorSessionNotRunning)
	}
	if r.state != xr.SessionStateStopping {
		return xr.NewError("xrEndSession", xr.ErrorSessionNotStopping)
	}
	r.running = false
	r.frameWaited = false
	r.frameBegun = false
	if r.autoLifecycle {
		r.setState(xr.SessionStateIdle)
		if r.exitPending {
			r.setState(xr.SessionStateExiting)
		}
	}
	return nil
}

func (r *Runtime) viewConfiguration() xr.ViewConfigurationType {
	if r.viewCount == 1 {
		return xr.ViewConfigurationPrimaryMono
	}
	return xr.ViewConfigurationPrimaryStereo
}

func (r *Runtime) CreateReferenceSpace(session xr.Session, spaceType xr.ReferenceSpaceType, poseInSpace xr.Posef) (xr.Space, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("xrCreateReferenceSpace"); err != nil {
		return 0, err
	}
	if session != r.session || session.IsNull() {
		return 0, xr.NewError("xrCreateReferenceSpace", xr.ErrorHandleInvalid)
	}
	switch spaceType {
	case xr.ReferenceSpaceView, xr.ReferenceSpaceLocal, xr.ReferenceSpaceStage:
	default:
		return 0, xr.NewError("xrCreateReferenceSpace", xr.ErrorValidationFailure)
	}
	s := xr.Space(r.handle())
	r.spaces[s] = spaceType
	return s, nil
}

func (r *Runtime) DestroySpace(space xr.Space) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("xrDestroySpace"); err != nil {
		return err
	}
	if _, ok := r.spaces[space]; !ok {
		return xr.NewError("xrDestroySpace", xr.ErrorHandleInvalid)
	}
	delete(r.spaces, space)
	return nil
}

// Swapchain

func (r *Runtime) EnumerateViewConfigurationViews(instance xr.Instance, system xr.SystemID, viewConfiguration xr.ViewConfigurationType) ([]xr.ViewConfigurationView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("xrEnumerateViewConfigurationViews"); err != nil {
		return nil, err
	}
	if system != simSystem {
		return nil, xr.NewError("xrEnumerateViewConfigurationViews", xr.ErrorSystemInvalid)
	}
	if viewConfiguration != r.viewConfiguration() {
		return nil, xr.NewError("xrEnumerateViewConfigurationViews", xr.ErrorValidationFailure)
	}
	views := make([]xr.ViewConfigurationView, r.viewCount)
	for i := range views {
		views[i] = xr.ViewConfigurationView{
			RecommendedImageRectWidth:       r.viewWidth,
			MaxImageRectWidth:               r.viewWidth * 2,
			RecommendedImageRectHeight:      r.viewHeight,
			MaxImageRectHeight:              r.viewHeight * 2,
			RecommendedSwapchainSampleCount: 1,
			MaxSwapchainSampleCount:         4,
		}
	}
	return views, nil
}

func (r *Runtime) CreateSwapchain(session xr.Session, info xr.SwapchainCreateInfo) (xr.Swapchain, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("xrCreateSwapchain"); err != nil {
		return 0, err
	}
	if session != r.session || session.IsNull() {
		return 0, xr.NewError("xrCreateSwapchain", xr.ErrorHandleInvalid)
	}
	if info.Width == 0 || info.Height == 0 || info.Width > r.viewWidth*2 || info.Height > r.viewHeight*2 {
		return 0, xr.NewError("xrCreateSwapchain", xr.ErrorValidationFailure)
	}
	sc := &simSwapchain{info: info}
	for i := 0; i < r.imageCount; i++ {
		sc.images = append(sc.images, render.NewPixmapTarget(int(info.Width), int(info.Height)))
	}
	h := xr.Swapchain(r.handle())
	r.swapchains[h] = sc
	return h, nil
}

func (r *Runtime) DestroySwapchain(swapchain xr.Swapchain) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("xrDestroySwapchain"); err != nil {
		return err
	}
	if _, ok := r.swapchains[swapchain]; !ok {
		return xr.NewError("xrDestroySwapchain", xr.ErrorHandleInvalid)
	}
	delete(r.swapchains, swapchain)
	return nil
}

func (r *Runtime) EnumerateSwapchainImages(swapchain xr.Swapchain) ([]xr.SwapchainImage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("xrEnumerateSwapchainImages"); err != nil {
		return nil, err
	}
	sc, ok := r.swapchains[swapchain]
	if !ok {
		return nil, xr.NewError("xrEnumerateSwapchainImages", xr.ErrorHandleInvalid)
	}
	images := make([]xr.SwapchainImage, len(sc.images))
	for i, img := range sc.images {
		images[i] = xr.SwapchainImage{Handle: img}
	}
	return images, nil
}

func (r *Runtime) AcquireSwapchainImage(swapchain xr.Swapchain) (uint32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("xrAcquireSwapchainImage"); err != nil {
		return 0, err
	}
	sc, ok := r.swapchains[swapchain]
	if !ok {
		return 0, xr.NewError("xrAcquireSwapchainImage", xr.ErrorHandleInvalid)
	}
	if sc.acquired {
		return 0, xr.NewError("xrAcquireSwapchainImage", xr.ErrorCallOrderInvalid)
	}
	idx := sc.next
	sc.next = (sc.next + 1) % len(sc.images)
	sc.acquired = true
	sc.waited = false
	sc.acquires++
	return uint32(idx), nil //nolint:gosec // ring index is small
}

func (r *Runtime) WaitSwapchainImage(swapchain xr.Swapchain, timeout xr.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("xrWaitSwapchainImage"); err != nil {
		return err
	}
	sc, ok := r.swapchains[swapchain]
	if !ok {
		return xr.NewError("xrWaitSwapchainImage", xr.ErrorHandleInvalid)
	}
	if !sc.acquired || sc.waited {
		return xr.NewError("xrWaitSwapchainImage", xr.ErrorCallOrderInvalid)
	}
	if timeout <= 0 {
		return xr.NewError("xrWaitSwapchainImage", xr.TimeoutExpired)
	}
	sc.waited = true
	return nil
}

func (r *Runtime) ReleaseSwapchainImage(swapchain xr.Swapchain) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("xrReleaseSwapchainImage"); err != nil {
		return err
	}
	sc, ok := r.swapchains[swapchain]
	if !ok {
		return xr.NewError("xrReleaseSwapchainImage", xr.ErrorHandleInvalid)
	}
	if !sc.acquired {
		return xr.NewError("xrReleaseSwapchainImage", xr.ErrorCallOrderInvalid)
	}
	sc.acquired = false
	sc.waited = false
	sc.releases++
	return nil
}

// Frame

func (r *Runtime) WaitFrame(session xr.Session) (xr.FrameState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("xrWaitFrame"); err != nil {
		return xr.FrameState{}, err
	}
	if session != r.session || session.IsNull() {
		return xr.FrameState{}, xr.NewError("xrWaitFrame", xr.ErrorHandleInvalid)
	}
	if !r.running {
		return xr.FrameState{}, xr.NewError("xrWaitFrame", xr.ErrorSessionNotRunning)
	}
	r.now += xr.Time(r.period)
	r.frameWaited = true
	return xr.FrameState{
		PredictedDisplayTime:   r.now,
		PredictedDisplayPeriod: r.period,
		ShouldRender:           r.shouldRender,
	}, nil
}

func (r *Runtime) BeginFrame(session xr.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("xrBeginFrame"); err != nil {
		return err
	}
	if session != r.session || session.IsNull() {
		return xr.NewError("xrBeginFrame", xr.ErrorHandleInvalid)
	}
	if !r.frameWaited || r.frameBegun {
		return xr.NewError("xrBeginFrame", xr.ErrorCallOrderInvalid)
	}
	r.frameWaited = false
	r.frameBegun = true
	return nil
}

func (r *Runtime) EndFrame(session xr.Session, info xr.FrameEndInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("xrEndFrame"); err != nil {
		r.frameBegun = false
		return err
	}
	if session != r.session || session.IsNull() {
		return xr.NewError("xrEndFrame", xr.ErrorHandleInvalid)
	}
	if !r.frameBegun {
		return xr.NewError("xrEndFrame", xr.ErrorCallOrderInvalid)
	}
	r.frameBegun = false
	if err := r.validateLayers(info); err != nil {
		return err
	}
	r.submitted = append(r.submitted, copyEndInfo(info))
	return nil
}

func (r *Runtime) validateLayers(info xr.FrameEndInfo) error {
	if len(info.Layers) > 0 && info.EnvironmentBlendMode != xr.BlendModeOpaque {
		return xr.NewError("xrEndFrame", xr.ErrorValidationFailure)
	}
	for _, layer := range info.Layers {
		if _, ok := r.spaces[layer.Space]; !ok {
			return xr.NewError("xrEndFrame", xr.ErrorHandleInvalid)
		}
		if len(layer.Views) != r.viewCount {
			return xr.NewError("xrEndFrame", xr.ErrorValidationFailure)
		}
		for _, v := range layer.Views {
			sc, ok := r.swapchains[v.SubImage.Swapchain]
			if !ok {
				return xr.NewError("xrEndFrame", xr.ErrorHandleInvalid)
			}
			if sc.acquired {
				return xr.NewError("xrEndFrame", xr.ErrorCallOrderInvalid)
			}
		}
	}
	return nil
}

func copyEndInfo(info xr.FrameEndInfo) xr.FrameEndInfo {
	out := info
	out.Layers = make([]xr.CompositionLayerProjection, len(info.Layers))
	for i, l := range info.Layers {
		out.Layers[i] = xr.CompositionLayerProjection{
			Space: l.Space,
			Views: append([]xr.CompositionLayerProjectionView(nil), l.Views...),
		}
	}
	return out
}

// Default symmetric field of view, about 90 degrees in each axis.
var defaultFov = xr.Fovf{
	AngleLeft:  -0.785398,
	AngleRight: 0.785398,
	AngleUp:    0.785398,
	AngleDown:  -0.785398,
}

func (r *Runtime) LocateViews(session xr.Session, info xr.ViewLocateInfo) (xr.ViewStateFlags, []xr.View, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("xrLocateViews"); err != nil {
		return 0, nil, err
	}
	if session != r.session || session.IsNull() {
		return 0, nil, xr.NewError("xrLocateViews", xr.ErrorHandleInvalid)
	}
	if _, ok := r.spaces[info.Space]; !ok {
		return 0, nil, xr.NewError("xrLocateViews", xr.ErrorHandleInvalid)
	}
	if info.ViewConfiguration != r.viewConfiguration() {
		return 0, nil, xr.NewError("xrLocateViews", xr.ErrorValidationFailure)
	}

	views := make([]xr.View, r.viewCount)
	for i := range views {
		offset := xr.Vector3f{}
		if r.viewCount > 1 {
			// Eyes spread evenly across the IPD, view 0 leftmost.
			t := float32(i)/float32(r.viewCount-1) - 0.5
			offset.X = t * DefaultIPD
		}
		views[i] = xr.View{
			Pose: xr.Posef{
				Orientation: r.head.Orientation,
				Position:    r.head.Position.Add(r.head.Orientation.Rotate(offset)),
			},
			Fov: defaultFov,
		}
	}
	return r.viewFlags, views, nil
}

func (r *Runtime) LocateSpace(space, baseSpace xr.Space, time xr.Time) (xr.SpaceLocation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("xrLocateSpace"); err != nil {
		return xr.SpaceLocation{}, err
	}
	st, ok := r.spaces[space]
	if !ok {
		return xr.SpaceLocation{}, xr.NewError("xrLocateSpace", xr.ErrorHandleInvalid)
	}
	bt, ok := r.spaces[baseSpace]
	if !ok {
		return xr.SpaceLocation{}, xr.NewError("xrLocateSpace", xr.ErrorHandleInvalid)
	}
	flags := xr.SpaceLocationOrientationValid | xr.SpaceLocationPositionValid |
		xr.SpaceLocationOrientationTracked | xr.SpaceLocationPositionTracked
	return xr.SpaceLocation{
		Flags: flags,
		Pose:  r.spaceOrigin(bt).Inverse().Mul(r.spaceOrigin(st)),
	}, nil
}

// spaceOrigin returns the origin of a reference space in LOCAL coordinates.
// The floor sits one eye height below the LOCAL origin.
func (r *Runtime) spaceOrigin(t xr.ReferenceSpaceType) xr.Posef {
	switch t {
	case xr.ReferenceSpaceStage:
		return xr.Posef{
			Orientation: xr.Quaternionf{W: 1},
			Position:    xr.Vector3f{Y: -DefaultEyeHeight},
		}
	case xr.ReferenceSpaceView:
		return r.head
	default:
		return xr.IdentityPose
	}
}

// String describes the runtime for logs.
func (r *Runtime) String() string {
	return fmt.Sprintf("sim(%d views %dx%d, %d images)", r.viewCount, r.viewWidth, r.viewHeight, r.imageCount)
}
