package partycle

import (
	"time"

	"github.com/oliverbestmann/gmrand/color"
	"github.com/oliverbestmann/gmrand/gm"
)

// Shape describes the area an Emitter spawns its particles in.
// The shape is scaled by the Radius of the Emitter.
type Shape uint8

const (
	// ShapePoint spawns all particles at the emitters position.
	ShapePoint Shape = iota

	// ShapeCircle spawns particles on the edge of a circle.
	ShapeCircle

	// ShapeDisk spawns particles inside a circle, denser towards the center.
	ShapeDisk

	// ShapeUniformDisk spawns particles evenly distributed inside a circle.
	ShapeUniformDisk

	// ShapeSquare spawns particles inside an axis aligned square
	// with a half size of Radius.
	ShapeSquare
)

func (s Shape) String() string {
	switch s {
	case ShapePoint:
		return "point"
	case ShapeCircle:
		return "circle"
	case ShapeDisk:
		return "disk"
	case ShapeUniformDisk:
		return "uniform-disk"
	case ShapeSquare:
		return "square"
	default:
		return "unknown"
	}
}

type Particle struct {
	Lifetime Timer

	Position gm.Vec
	Rotation gm.Rad
	Scale    gm.Vec
	Color    color.Color

	// initial scale, multiplied with the ScaleCurve
	BaseScale gm.Vec

	// tint picked at spawn time, multiplied with the ColorCurve
	Tint color.Color

	LinearVelocity  gm.Vec
	AngularVelocity gm.Rad

	LinearAcceleration  gm.Vec
	AngularAcceleration gm.Rad

	LinearDampening  float64
	AngularDampening float64

	ColorCurve Curve[color.Color]
	ScaleCurve Curve[gm.Vec]
}

type Emitter struct {
	Position gm.Vec

	ParticlesPerSecond       float64
	ParticlesPerSecondJitter float64

	// Burst particles are emitted every BurstInterval, in addition
	// to the continuous ParticlesPerSecond.
	Burst         int
	BurstInterval time.Duration

	LinearVelocity       gm.Vec
	LinearVelocityJitter gm.Vec

	// Speed adds a velocity of this magnitude in a random direction.
	Speed       float64
	SpeedJitter float64

	LinearAcceleration       gm.Vec
	LinearAccelerationJitter gm.Vec

	AngularVelocity       gm.Rad
	AngularVelocityJitter gm.Rad

	AngularAcceleration       gm.Rad
	AngularAccelerationJitter gm.Rad

	// RandomRotation gives every particle a random initial rotation,
	// otherwise Rotation with RotationJitter is used.
	RandomRotation bool
	Rotation       gm.Rad
	RotationJitter gm.Rad

	DampeningLinear        float64
	DampeningLinearJitter  float64
	DampeningAngular       float64
	DampeningAngularJitter float64

	ParticleLifetime       time.Duration
	ParticleLifetimeJitter time.Duration

	// defaults to constant white
	ColorCurve Curve[color.Color]

	// defaults to constant 1
	ScaleCurve Curve[gm.Vec]

	// RandomTint tints each particle with a random opaque color.
	RandomTint bool

	Shape  Shape
	Radius float64

	// Orientation rotates the emission shape as well as
	// LinearVelocity and LinearAcceleration.
	Orientation gm.Rad

	Disabled bool

	// accumulator for number of particles to spawn
	spawnAcc float64

	burstTimer            Timer
	burstTimerInitialized bool

	// the previous position in the last update.
	// we use this to emit particles somewhere "between" the updates
	previous            gm.Vec
	previousInitialized bool
}

type Curve[T any] struct {
	// If the Lerper is nil, no lerping will be performed and the
	// nearest Value will be used. This is especially fine for
	// static "one value" curves
	Lerper Lerper[T]

	Values []CurveValue[T]
}

type CurveValue[T any] struct {
	Time  float64
	Value T
}

func (c Curve[T]) HasValues() bool {
	return len(c.Values) > 0
}

// ValueAt evaluates the curve at t. Times before the first and after the
// last value are clamped.
func (c Curve[T]) ValueAt(t float64) T {
	if len(c.Values) == 0 {
		var zeroValue T
		return zeroValue
	}

	if len(c.Values) == 1 || t <= c.Values[0].Time {
		return c.Values[0].Value
	}

	for idx := 0; idx < len(c.Values)-1; idx++ {
		lhs := c.Values[idx]
		rhs := c.Values[idx+1]
		if t >= rhs.Time {
			continue
		}

		if c.Lerper == nil {
			return lhs.Value
		}

		f := (t - lhs.Time) / (rhs.Time - lhs.Time)
		return c.Lerper(f, lhs.Value, rhs.Value)
	}

	return c.Values[len(c.Values)-1].Value
}

func StaticValueCurve[T any](value T) Curve[T] {
	return Curve[T]{
		Values: []CurveValue[T]{
			{
				Value: value,
			},
		},
	}
}

// EquidistantCurve spreads the given values evenly over the range [0, 1].
func EquidistantCurve[T any](lerper Lerper[T], firstValue, secondValue T, values ...T) Curve[T] {
	divider := float64(len(values) + 1)

	curveValues := make([]CurveValue[T], 0, len(values)+2)

	curveValues = append(curveValues,
		CurveValue[T]{Time: 0, Value: firstValue},
		CurveValue[T]{Time: 1 / divider, Value: secondValue},
	)

	for idx, value := range values {
		curveValues = append(curveValues, CurveValue[T]{
			Time:  float64(idx+2) / divider,
			Value: value,
		})
	}

	return Curve[T]{
		Lerper: lerper,
		Values: curveValues,
	}
}
