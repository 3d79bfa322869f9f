package partycle

import (
	"log/slog"
	"slices"
	"time"

	"github.com/oliverbestmann/gmrand"
	"github.com/oliverbestmann/gmrand/color"
	"github.com/oliverbestmann/gmrand/gm"
)

// System owns a set of emitters and the particles they spawned.
// It is not safe for concurrent use.
type System struct {
	sampler  *gmrand.Sampler
	emitters []*Emitter

	// MaxParticles limits the number of live particles. Zero means no limit.
	MaxParticles int

	Particles []Particle

	dropped int
}

// NewSystem creates a particle system drawing all random values from sampler.
// A nil sampler uses gmrand.Shared.
func NewSystem(sampler *gmrand.Sampler) *System {
	if sampler == nil {
		sampler = gmrand.Shared()
	}

	return &System{sampler: sampler}
}

func (s *System) AddEmitter(emitter *Emitter) {
	s.emitters = append(s.emitters, emitter)
}

func (s *System) RemoveEmitter(emitter *Emitter) {
	s.emitters = slices.DeleteFunc(s.emitters, func(e *Emitter) bool { return e == emitter })
}

// Dropped returns the number of particles not spawned because
// MaxParticles was reached.
func (s *System) Dropped() int {
	return s.dropped
}

// Update advances all live particles by delta and spawns new ones.
// Particles whose lifetime has ended are removed. Particles spawned
// during this call are not advanced until the next call.
func (s *System) Update(delta time.Duration) {
	for idx := range s.Particles {
		s.Particles[idx].advance(delta)
	}

	s.Particles = slices.DeleteFunc(s.Particles, func(p Particle) bool {
		return p.Lifetime.Finished()
	})

	for _, emitter := range s.emitters {
		s.emit(emitter, delta)
	}
}

func (s *System) emit(e *Emitter, delta time.Duration) {
	if !e.previousInitialized {
		e.previous = e.Position
		e.previousInitialized = true
	}

	previousPosition := e.previous
	e.previous = e.Position

	if e.Disabled {
		return
	}

	var count int

	e.spawnAcc += gmrand.Jitter(s.sampler, e.ParticlesPerSecond, e.ParticlesPerSecondJitter) * delta.Seconds()
	for e.spawnAcc >= 1 {
		e.spawnAcc -= 1
		count++
	}

	if e.Burst > 0 && e.BurstInterval > 0 {
		if !e.burstTimerInitialized {
			e.burstTimer = NewTimer(e.BurstInterval, TimerModeRepeating)
			e.burstTimerInitialized = true

			// first burst fires immediately
			count += e.Burst
		}

		count += e.burstTimer.Tick(delta).TimesFinishedThisTick() * e.Burst
	}

	for range count {
		if s.MaxParticles > 0 && len(s.Particles) >= s.MaxParticles {
			s.dropped++

			if s.dropped == 1 {
				slog.Debug("Particle limit reached, dropping particles",
					slog.Int("maxParticles", s.MaxParticles))
			}

			continue
		}

		particle, ok := s.spawn(e, previousPosition)
		if !ok {
			continue
		}

		s.Particles = append(s.Particles, particle)
	}
}

func (s *System) spawn(e *Emitter, previousPosition gm.Vec) (Particle, bool) {
	lifetime := gmrand.Jitter(s.sampler, e.ParticleLifetime, e.ParticleLifetimeJitter)
	if lifetime <= 0 {
		return Particle{}, false
	}

	rotation := gm.RotationMat(e.Orientation)

	velocity := rotation.Transform(gmrand.JitterVec(s.sampler, e.LinearVelocity, e.LinearVelocityJitter))

	if e.Speed != 0 || e.SpeedJitter != 0 {
		speed := gmrand.Jitter(s.sampler, e.Speed, e.SpeedJitter)
		velocity = velocity.Add(s.sampler.PointOnUnitCircle().Mul(speed))
	}

	particle := Particle{
		Lifetime:            NewTimer(lifetime, TimerModeOnce),
		LinearVelocity:      velocity,
		LinearAcceleration:  rotation.Transform(gmrand.JitterVec(s.sampler, e.LinearAcceleration, e.LinearAccelerationJitter)),
		LinearDampening:     gmrand.Jitter(s.sampler, e.DampeningLinear, e.DampeningLinearJitter),
		AngularVelocity:     gmrand.Jitter(s.sampler, e.AngularVelocity, e.AngularVelocityJitter),
		AngularAcceleration: gmrand.Jitter(s.sampler, e.AngularAcceleration, e.AngularAccelerationJitter),
		AngularDampening:    gmrand.Jitter(s.sampler, e.DampeningAngular, e.DampeningAngularJitter),
		Tint:                color.White,
		BaseScale:           gm.VecOne,
	}

	if e.ColorCurve.HasValues() {
		particle.ColorCurve = e.ColorCurve
	} else {
		particle.ColorCurve = StaticValueCurve(color.White)
	}

	if e.ScaleCurve.HasValues() {
		particle.ScaleCurve = e.ScaleCurve
	} else {
		particle.ScaleCurve = StaticValueCurve(gm.VecOne)
	}

	if e.RandomTint {
		particle.Tint = s.sampler.RandomColorFullAlpha()
	}

	if e.RandomRotation {
		particle.Rotation = s.sampler.RandomAngle()
	} else {
		particle.Rotation = gmrand.Jitter(s.sampler, e.Rotation, e.RotationJitter)
	}

	// interpolate along the path moved since the previous update
	origin := e.Position.Sub(previousPosition).
		Mul(s.sampler.UniformUnit()).
		Add(previousPosition)

	// maps the unit emission shape into world space
	emission := gm.IdentityAffine().
		Translate(origin).
		Rotate(e.Orientation).
		Scale(gm.VecSplat(e.Radius))

	particle.Position = emission.Transform(s.shapeOffset(e.Shape))

	particle.Scale = particle.BaseScale.MulEach(particle.ScaleCurve.ValueAt(0))
	particle.Color = tinted(particle.ColorCurve.ValueAt(0), particle.Tint)

	return particle, true
}

// maps the unit square onto the square [-1, 1] x [-1, 1]
var unitSquareToShape = gm.RectWithCenterAndSize(gm.VecZero, gm.VecSplat(2.0)).UnitAffine()

// shapeOffset samples a point of the shape in unit size, centered on the origin.
func (s *System) shapeOffset(shape Shape) gm.Vec {
	switch shape {
	case ShapeCircle:
		return s.sampler.PointOnUnitCircle()

	case ShapeDisk:
		return s.sampler.PointInUnitCircle()

	case ShapeUniformDisk:
		return s.sampler.UniformPointInUnitCircle()

	case ShapeSquare:
		return unitSquareToShape.Transform(s.sampler.PointInUnitSquare())

	default:
		return gm.VecZero
	}
}

func tinted(c, tint color.Color) color.Color {
	return color.Color{
		R: c.R * tint.R,
		G: c.G * tint.G,
		B: c.B * tint.B,
		A: c.A * tint.A,
	}
}
