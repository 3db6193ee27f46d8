// Package playback adapts the renderer's animation speed to its observed
// frame throughput. One controller instance is driven by exactly one render
// loop: it is single-writer state with no locking, and must not be invoked
// from multiple goroutines.
package playback

// Clock is the external renderer's time-scale control. The controller only
// ever touches the multiplier; it never changes keyframe content.
type Clock interface {
	SetMultiplier(multiplier float64)
}

const (
	DefaultTargetFPS = 90

	windowSize     = 30  // frame-time samples per evaluation
	cooldownFrames = 60  // frames to wait after an adjustment
	slowRatio      = 1.3 // frame budget exceeded by 30%+
	fastRatio      = 0.8 // comfortably under budget
	adjustStep     = 0.10
	minSpeedFactor = 0.5 // floor relative to base speed
)

// Options configures a Controller. Zero values take defaults: TargetFPS 90,
// BaseSpeed 1.
type Options struct {
	TargetFPS float64
	BaseSpeed float64
}

// Controller is a sampling feedback loop over per-frame render durations.
// Every windowSize observations outside a cooldown it compares the average
// frame time against the target budget and nudges the speed multiplier.
type Controller struct {
	targetFrameTime float64 // milliseconds
	baseSpeed       float64
	speed           float64

	window   [windowSize]float64
	samples  int // total observations, window index is samples % windowSize
	cooldown int

	clock Clock
}

// New returns a controller targeting opts.TargetFPS at opts.BaseSpeed.
func New(opts Options) *Controller {
	if opts.TargetFPS <= 0 {
		opts.TargetFPS = DefaultTargetFPS
	}
	if opts.BaseSpeed <= 0 {
		opts.BaseSpeed = 1
	}
	return &Controller{
		targetFrameTime: 1000 / opts.TargetFPS,
		baseSpeed:       opts.BaseSpeed,
		speed:           opts.BaseSpeed,
	}
}

// Bind attaches the renderer clock. Subsequent speed changes are pushed into
// it; the current speed is pushed immediately.
func (c *Controller) Bind(clock Clock) {
	c.clock = clock
	if clock != nil {
		clock.SetMultiplier(c.speed)
	}
}

// Multiplier returns the current speed multiplier.
func (c *Controller) Multiplier() float64 {
	return c.speed
}

// Observe records one frame duration in milliseconds and, on every 30th
// observation outside a cooldown, adjusts the speed multiplier: 10% down when
// frames run 30% over budget (floored at half the base speed), 10% up when
// frames run comfortably under budget and speed is below base. Either
// adjustment starts a 60-frame cooldown. Out-of-range speeds are always
// clamped, never an error.
func (c *Controller) Observe(frameMillis float64) {
	c.window[c.samples%windowSize] = frameMillis
	c.samples++

	if c.cooldown > 0 {
		c.cooldown--
		return
	}
	if c.samples < windowSize || c.samples%windowSize != 0 {
		return
	}

	var sum float64
	for _, v := range c.window {
		sum += v
	}
	ratio := sum / windowSize / c.targetFrameTime

	switch {
	case ratio > slowRatio:
		c.setSpeed(c.speed * (1 - adjustStep))
		c.cooldown = cooldownFrames
	case ratio < fastRatio && c.speed < c.baseSpeed:
		c.setSpeed(c.speed * (1 + adjustStep))
		c.cooldown = cooldownFrames
	}
}

func (c *Controller) setSpeed(speed float64) {
	floor := c.baseSpeed * minSpeedFactor
	if speed < floor {
		speed = floor
	}
	if speed > c.baseSpeed {
		speed = c.baseSpeed
	}
	if speed == c.speed {
		return
	}
	c.speed = speed
	if c.clock != nil {
		c.clock.SetMultiplier(speed)
	}
}
