// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import (
	"context"
	"image/color"
	"time"

	"github.com/tonalkit/matscheme/math32"
)

// Spring is the interpolation policy of an [Animator]: a damped
// spring with unit mass pulling every color channel toward its target.
type Spring struct {

	// Stiffness is the spring constant
	Stiffness float32

	// DampingRatio is 1 for a critically damped spring that never
	// overshoots, less than 1 for a bouncy one, and greater than 1
	// for an overdamped one.
	DampingRatio float32

	// Threshold is the distance from the target in 0-255 channel units
	// below which a channel snaps to its target and is at rest.
	Threshold float32
}

// DefaultSpring is a low stiffness, critically damped [Spring].
var DefaultSpring = Spring{Stiffness: 200, DampingRatio: 1, Threshold: 0.5}

// maxSubstep bounds the integration step so that large frame
// deltas stay stable.
const maxSubstep = time.Second / 240

// channel is the state of one color channel.
type channel struct {
	pos, vel, target float32
}

// Animator transitions every role of a [Scheme] toward a target scheme
// on frames driven by the caller. It is not safe for concurrent use.
type Animator struct {
	spring Spring
	chans  []channel
}

// NewAnimator returns a new [Animator] at rest on the given scheme.
// A zero Stiffness in spring means [DefaultSpring].
func NewAnimator(from Scheme, spring Spring) *Animator {
	if spring.Stiffness <= 0 {
		spring = DefaultSpring
	}
	a := &Animator{spring: spring, chans: make([]channel, 4*len(_RoleValues))}
	for i, rc := range from.Roles() {
		for j, v := range rgbaChannels(rc.Color) {
			a.chans[4*i+j] = channel{pos: v, target: v}
		}
	}
	return a
}

// SetTarget sets the scheme to animate toward,
// keeping the current position and velocity of every channel.
func (a *Animator) SetTarget(s Scheme) {
	for i, rc := range s.Roles() {
		for j, v := range rgbaChannels(rc.Color) {
			a.chans[4*i+j].target = v
		}
	}
}

// Step advances the animation by the given time
// and returns the resulting scheme.
func (a *Animator) Step(dt time.Duration) Scheme {
	for dt > 0 {
		sub := min(dt, maxSubstep)
		a.integrate(float32(sub.Seconds()))
		dt -= sub
	}
	return a.Scheme()
}

// integrate does one semi-implicit Euler step of every channel.
func (a *Animator) integrate(dt float32) {
	k := a.spring.Stiffness
	c := 2 * a.spring.DampingRatio * math32.Sqrt(k)
	for i := range a.chans {
		ch := &a.chans[i]
		if ch.pos == ch.target && ch.vel == 0 {
			continue
		}
		acc := -k*(ch.pos-ch.target) - c*ch.vel
		ch.vel += acc * dt
		ch.pos += ch.vel * dt
		if math32.Abs(ch.pos-ch.target) < a.spring.Threshold && math32.Abs(ch.vel) < a.spring.Threshold {
			ch.pos, ch.vel = ch.target, 0
		}
	}
}

// Done returns whether every channel is at rest on its target.
func (a *Animator) Done() bool {
	for _, ch := range a.chans {
		if ch.pos != ch.target || ch.vel != 0 {
			return false
		}
	}
	return true
}

// Scheme returns the current scheme of the animation.
func (a *Animator) Scheme() Scheme {
	var s Scheme
	for i, r := range _RoleValues {
		ch := a.chans[4*i : 4*i+4]
		*s.field(r) = color.RGBA{channelUint8(ch[0].pos), channelUint8(ch[1].pos), channelUint8(ch[2].pos), channelUint8(ch[3].pos)}
	}
	return s
}

// Run steps the animation on every tick of the given ticker, calling frame
// with each resulting scheme, until the animation is done, the ticker is
// closed, or the context is canceled. It returns the context error if canceled.
func (a *Animator) Run(ctx context.Context, ticker <-chan time.Time, frame func(Scheme)) error {
	var last time.Time
	for !a.Done() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now, ok := <-ticker:
			if !ok {
				return nil
			}
			var dt time.Duration
			if !last.IsZero() {
				dt = now.Sub(last)
			}
			last = now
			frame(a.Step(dt))
		}
	}
	return nil
}

// LerpScheme returns the channel-wise linear blend of the given schemes,
// where t = 0 gives a and t = 1 gives b.
func LerpScheme(t float32, a, b Scheme) Scheme {
	t = math32.Clamp(t, 0, 1)
	var s Scheme
	for _, r := range _RoleValues {
		ac, bc := rgbaChannels(a.Color(r)), rgbaChannels(b.Color(r))
		var out [4]uint8
		for j := range out {
			out[j] = channelUint8(math32.Lerp(ac[j], bc[j], t))
		}
		*s.field(r) = color.RGBA{out[0], out[1], out[2], out[3]}
	}
	return s
}

func rgbaChannels(c color.RGBA) [4]float32 {
	return [4]float32{float32(c.R), float32(c.G), float32(c.B), float32(c.A)}
}

func channelUint8(v float32) uint8 {
	return uint8(math32.Clamp(math32.Round(v), 0, 255))
}
