package partycle

import (
	"math"
	"time"

	"github.com/oliverbestmann/gmrand/gm"
)

func (p *Particle) advance(delta time.Duration) {
	if p.Lifetime.Tick(delta).JustFinished() {
		return
	}

	dt := delta.Seconds()

	p.LinearVelocity = p.LinearVelocity.Add(p.LinearAcceleration.Mul(dt))
	p.AngularVelocity += p.AngularAcceleration * gm.Rad(dt)

	if p.LinearDampening != 0 {
		p.LinearVelocity = p.LinearVelocity.Mul(math.Exp(-p.LinearDampening * dt))
	}

	if p.AngularDampening != 0 {
		p.AngularVelocity *= gm.Rad(math.Exp(-p.AngularDampening * dt))
	}

	p.Rotation += p.AngularVelocity * gm.Rad(dt)
	p.Position = p.Position.Add(p.LinearVelocity.Mul(dt))

	fraction := p.Lifetime.Fraction()
	p.Scale = p.BaseScale.MulEach(p.ScaleCurve.ValueAt(fraction))
	p.Color = tinted(p.ColorCurve.ValueAt(fraction), p.Tint)
}
