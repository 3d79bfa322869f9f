// Package gmrand provides random sampling helpers on top of the gm geometry
// types: uniform scalars, points on and in unit shapes, random rotations and
// random colors.
//
// All functions draw from a Sampler. The package level functions use the
// Shared sampler, which is seeded from system entropy and safe for concurrent
// use. Create a Sampler with NewSeeded for reproducible sequences, or with New
// to draw from any Source.
//
// The PointInUnitCircle, PointOnUnitSphere, PointInUnitSphere and
// RandomRotation functions keep their historic, non uniform distributions.
// The Uniform variants sample evenly over area, surface, volume and rotations.
package gmrand
