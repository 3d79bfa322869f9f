package gm

// Affine maps points by a linear Matrix followed by a Translation. Samplers
// use it to place samples of a unit shape into a target area.
type Affine struct {
	Matrix      Mat
	Translation Vec
}

func IdentityAffine() Affine {
	return Affine{Matrix: IdentityMat()}
}

// Rotate returns a transform that rotates points before applying a.
func (a Affine) Rotate(angle Rad) Affine {
	return a.Mul(Affine{Matrix: RotationMat(angle)})
}

// Scale returns a transform that scales points before applying a.
func (a Affine) Scale(scale Vec) Affine {
	return a.Mul(Affine{Matrix: ScaleMat(scale)})
}

// Translate returns a transform that moves points by offset before applying a.
func (a Affine) Translate(offset Vec) Affine {
	return a.Mul(Affine{Matrix: IdentityMat(), Translation: offset})
}

// Transform maps a point.
func (a Affine) Transform(point Vec) Vec {
	return a.Matrix.Transform(point).Add(a.Translation)
}

// TransformVec maps a direction or offset, ignoring the translation.
func (a Affine) TransformVec(vec Vec) Vec {
	return a.Matrix.Transform(vec)
}

// Mul returns the transform that first applies other and then a.
func (a Affine) Mul(other Affine) Affine {
	return Affine{
		Matrix:      a.Matrix.Mul(other.Matrix),
		Translation: a.Transform(other.Translation),
	}
}
