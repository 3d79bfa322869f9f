// Package gm (stands for geometry math) provides some geometry primitives.
//
// It includes a generic 2d vector type called Vec, the 3d and 4d vectors Vec3
// and Vec4, a 2d matrix type Mat, an affine transform matrix named Affine and
// a rotation quaternion Quat.
//
// There is also a type named Rad to represent angle values in radian, and the
// constant Tau for a full turn.
package gm
