// Copyright 2024 The Gofeather Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

// Pose is a rigid-body transform: a position and an orientation. Pose
// composition is not commutative (spec 4.1).
type Pose struct {
	Position    Vec3
	Orientation Quat
}

// IdentityPose is the identity transform (0, 1+0i+0j+0k).
var IdentityPose = Pose{Position: Zero3, Orientation: IdentityQuat}

// Compose implements a + b = (a.p + a.R*b.p, a.R*b.R) (spec 3).
func (a Pose) Compose(b Pose) Pose {
	return Pose{
		Position:    a.Position.Add(a.Orientation.Rotate(b.Position)),
		Orientation: a.Orientation.Mul(b.Orientation),
	}
}

// Inverse implements (-R^-1*p, R^-1); panics if the orientation has
// zero magnitude, since Quat.TryInvert would otherwise fail silently.
func (a Pose) Inverse() Pose {
	rInv, ok := a.Orientation.TryInvert()
	if !ok {
		panic("spatial: Pose.Inverse: orientation quaternion has zero magnitude")
	}
	return Pose{
		Position:    rInv.Rotate(a.Position).Neg(),
		Orientation: rInv,
	}
}
