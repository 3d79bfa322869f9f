package partycle

import (
	"math"
	"testing"
	"time"

	"github.com/oliverbestmann/gmrand"
	"github.com/oliverbestmann/gmrand/color"
	"github.com/oliverbestmann/gmrand/gm"
	"github.com/stretchr/testify/require"
)

func TestSystem_SpawnRate(t *testing.T) {
	system := NewSystem(gmrand.NewSeeded(1))
	system.AddEmitter(&Emitter{
		ParticlesPerSecond: 10,
		ParticleLifetime:   10 * time.Second,
	})

	system.Update(time.Second)
	require.Len(t, system.Particles, 10)

	system.Update(500 * time.Millisecond)
	require.Len(t, system.Particles, 15)
}

func TestSystem_Lifetime(t *testing.T) {
	system := NewSystem(gmrand.NewSeeded(2))

	emitter := &Emitter{
		ParticlesPerSecond: 10,
		ParticleLifetime:   time.Second,
	}

	system.AddEmitter(emitter)

	system.Update(time.Second)
	require.Len(t, system.Particles, 10)

	emitter.Disabled = true

	system.Update(500 * time.Millisecond)
	require.Len(t, system.Particles, 10)

	system.Update(600 * time.Millisecond)
	require.Empty(t, system.Particles)
}

func TestSystem_NegativeLifetimeIsSkipped(t *testing.T) {
	system := NewSystem(gmrand.NewSeeded(3))
	system.AddEmitter(&Emitter{
		ParticlesPerSecond: 10,
		ParticleLifetime:   -time.Second,
	})

	system.Update(time.Second)
	require.Empty(t, system.Particles)
}

func TestSystem_Shapes(t *testing.T) {
	center := gm.Vec{X: 100, Y: 50}

	run := func(t *testing.T, shape Shape, check func(offset gm.Vec)) {
		system := NewSystem(gmrand.NewSeeded(4))
		system.AddEmitter(&Emitter{
			Position:           center,
			ParticlesPerSecond: 1000,
			ParticleLifetime:   time.Minute,
			Shape:              shape,
			Radius:             5,
		})

		system.Update(time.Second)
		require.Len(t, system.Particles, 1000)

		for _, p := range system.Particles {
			check(p.Position.Sub(center))
		}
	}

	t.Run("point", func(t *testing.T) {
		run(t, ShapePoint, func(offset gm.Vec) {
			require.Equal(t, gm.VecZero, offset)
		})
	})

	t.Run("circle", func(t *testing.T) {
		run(t, ShapeCircle, func(offset gm.Vec) {
			require.InDelta(t, 5, offset.Length(), 1e-6)
		})
	})

	t.Run("disk", func(t *testing.T) {
		run(t, ShapeDisk, func(offset gm.Vec) {
			require.LessOrEqual(t, offset.Length(), 5+1e-9)
		})
	})

	t.Run("uniform disk", func(t *testing.T) {
		run(t, ShapeUniformDisk, func(offset gm.Vec) {
			require.LessOrEqual(t, offset.Length(), 5+1e-9)
		})
	})

	t.Run("square", func(t *testing.T) {
		run(t, ShapeSquare, func(offset gm.Vec) {
			require.InDelta(t, 0, offset.X, 5)
			require.InDelta(t, 0, offset.Y, 5)
		})
	})
}

func TestSystem_Burst(t *testing.T) {
	system := NewSystem(gmrand.NewSeeded(5))
	system.AddEmitter(&Emitter{
		Burst:            5,
		BurstInterval:    time.Second,
		ParticleLifetime: time.Minute,
	})

	system.Update(0)
	require.Len(t, system.Particles, 5)

	system.Update(2500 * time.Millisecond)
	require.Len(t, system.Particles, 15)
}

func TestSystem_MaxParticles(t *testing.T) {
	system := NewSystem(gmrand.NewSeeded(6))
	system.MaxParticles = 20
	system.AddEmitter(&Emitter{
		ParticlesPerSecond: 100,
		ParticleLifetime:   time.Minute,
	})

	system.Update(time.Second)
	require.Len(t, system.Particles, 20)
	require.Equal(t, 80, system.Dropped())
}

func TestSystem_Motion(t *testing.T) {
	system := NewSystem(gmrand.NewSeeded(7))
	system.AddEmitter(&Emitter{
		Burst:            1,
		BurstInterval:    time.Hour,
		ParticleLifetime: time.Minute,
		LinearVelocity:   gm.Vec{X: 10},
		AngularVelocity:  1,
		DampeningLinear:  0.5,
	})

	system.Update(0)
	require.Len(t, system.Particles, 1)
	require.Equal(t, gm.VecZero, system.Particles[0].Position)

	system.Update(time.Second)

	p := system.Particles[0]
	require.Greater(t, p.Position.X, 0.0)
	require.Less(t, p.Position.X, 10.0)
	require.Less(t, p.LinearVelocity.X, 10.0)
	require.InDelta(t, 1.0, float64(p.Rotation), 1e-9)
}

func TestSystem_ColorAndScale(t *testing.T) {
	system := NewSystem(gmrand.NewSeeded(8))
	system.AddEmitter(&Emitter{
		Burst:            10,
		BurstInterval:    time.Hour,
		ParticleLifetime: 2 * time.Second,
		RandomTint:       true,
		RandomRotation:   true,
		ColorCurve:       EquidistantCurve(LerpColor, color.White, color.Transparent),
		ScaleCurve:       EquidistantCurve(LerpVec, gm.VecOne, gm.VecSplat(3.0)),
	})

	system.Update(0)
	require.Len(t, system.Particles, 10)

	system.Update(time.Second)

	for _, p := range system.Particles {
		require.Equal(t, float32(1), p.Tint.A)
		require.InDelta(t, 0.5, p.Color.A, 1e-6)
		require.InDelta(t, 2.0, p.Scale.X, 1e-9)
		require.GreaterOrEqual(t, float64(p.Rotation), 0.0)
	}
}

func TestSystem_Deterministic(t *testing.T) {
	positions := func() []gm.Vec {
		system := NewSystem(gmrand.NewSeeded(9))
		system.AddEmitter(&Emitter{
			ParticlesPerSecond:   50,
			ParticleLifetime:     time.Minute,
			Shape:                ShapeDisk,
			Radius:               3,
			Speed:                4,
			LinearVelocityJitter: gm.Vec{X: 1, Y: 1},
		})

		for range 10 {
			system.Update(100 * time.Millisecond)
		}

		var result []gm.Vec
		for _, p := range system.Particles {
			result = append(result, p.Position)
		}

		return result
	}

	require.Equal(t, positions(), positions())
}

func TestSystem_RemoveEmitter(t *testing.T) {
	system := NewSystem(nil)

	emitter := &Emitter{ParticlesPerSecond: 10, ParticleLifetime: time.Second}
	system.AddEmitter(emitter)
	system.RemoveEmitter(emitter)

	system.Update(time.Second)
	require.Empty(t, system.Particles)
}

func TestShape_String(t *testing.T) {
	require.Equal(t, "uniform-disk", ShapeUniformDisk.String())
	require.Equal(t, "unknown", Shape(200).String())
}

func TestSystem_Orientation(t *testing.T) {
	system := NewSystem(gmrand.NewSeeded(10))
	system.AddEmitter(&Emitter{
		Position:           gm.Vec{X: 10, Y: 10},
		Burst:              500,
		BurstInterval:      time.Hour,
		ParticleLifetime:   time.Minute,
		LinearVelocity:     gm.Vec{X: 10},
		LinearAcceleration: gm.Vec{X: 2},
		Orientation:        gm.DegToRad(45),
		Shape:              ShapeSquare,
		Radius:             5,
	})

	system.Update(0)
	require.Len(t, system.Particles, 500)

	var leftOfAxisAligned bool

	for _, p := range system.Particles {
		require.InDelta(t, 10/math.Sqrt2, p.LinearVelocity.X, 1e-9)
		require.InDelta(t, 10/math.Sqrt2, p.LinearVelocity.Y, 1e-9)
		require.InDelta(t, 2/math.Sqrt2, p.LinearAcceleration.Y, 1e-9)

		// rotate back into the emitters frame, the square has a half size of 5
		local := gm.RotationMat(gm.DegToRad(-45)).Transform(p.Position.Sub(gm.Vec{X: 10, Y: 10}))
		require.InDelta(t, 0, local.X, 5+1e-9)
		require.InDelta(t, 0, local.Y, 5+1e-9)

		// corners of the rotated square reach beyond the unrotated one
		if p.Position.X < 5 {
			leftOfAxisAligned = true
		}
	}

	require.True(t, leftOfAxisAligned)
}
