// Package skeleton holds the immutable runtime joint hierarchy: rest
// poses, parent indices and joint names, stored in separate flat arrays to
// match how runtime algorithms consume them. The hierarchy is packed as an
// array of 16-bit parent indices in depth-first order, which is enough to
// traverse the whole tree without recursion or an explicit stack.
package skeleton

import (
	"ozz-skel-runtime/internal/ozzerr"
	"ozz-skel-runtime/internal/soa"
)

const (
	// MaxJoints bounds the joint count so indices fit comfortably in 16
	// bits and worst-case stack allocations stay bounded downstream.
	MaxJoints = 1024

	// MaxSoaJoints is the SoA group count matching MaxJoints.
	MaxSoaJoints = (MaxJoints + 3) / 4

	// NoParent marks the root joint, which has no parent.
	NoParent int16 = -1
)

// Skeleton is immutable once constructed: no joint is added, removed or
// renamed afterwards, so it can be shared across goroutines without
// locking.
type Skeleton struct {
	restPoses []soa.Transform
	parents   []int16
	names     *JointMap
}

// New assembles a skeleton from already-decoded parts. The parent array
// must be a depth-first linearization (every joint's parent precedes it);
// construction trusts this, traversal depends on it.
func New(restPoses []soa.Transform, parents []int16, names *JointMap) *Skeleton {
	return &Skeleton{restPoses: restPoses, parents: parents, names: names}
}

// NumJoints returns the number of joints.
func (s *Skeleton) NumJoints() int { return len(s.parents) }

// NumAlignedJoints returns the joint count rounded up to the SoA lane
// width.
func (s *Skeleton) NumAlignedJoints() int { return (len(s.parents) + 3) &^ 3 }

// NumSoaJoints returns the number of SoA groups, the size to allocate for
// SoA runtime buffers.
func (s *Skeleton) NumSoaJoints() int { return (len(s.parents) + 3) / 4 }

// RestPoses returns the SoA-packed rest poses.
func (s *Skeleton) RestPoses() []soa.Transform { return s.restPoses }

// Parents returns the parent index of every joint.
func (s *Skeleton) Parents() []int16 { return s.parents }

// Parent returns joint's parent index. The joint index must be in range;
// this is the unchecked hot-path variant.
func (s *Skeleton) Parent(joint int) int16 { return s.parents[joint] }

// ParentChecked is Parent with bounds checking surfaced as an error.
func (s *Skeleton) ParentChecked(joint int) (int16, error) {
	if joint < 0 || joint >= len(s.parents) {
		return 0, ozzerr.InvalidIndex(joint, len(s.parents))
	}
	return s.parents[joint], nil
}

// Names returns the bidirectional joint name map.
func (s *Skeleton) Names() *JointMap { return s.names }

// JointByName returns the index of the named joint.
func (s *Skeleton) JointByName(name string) (int16, bool) {
	return s.names.IndexByName(name)
}

// NameByJoint returns the name of the joint at index.
func (s *Skeleton) NameByJoint(index int16) (string, bool) {
	return s.names.NameByIndex(index)
}

// IsLeaf reports whether joint has no children: it is the last stored
// joint, or the next stored joint's parent is not it. Children are
// contiguous right after their parent in depth-first storage order.
func (s *Skeleton) IsLeaf(joint int) bool {
	next := joint + 1
	return next == len(s.parents) || int(s.parents[next]) != joint
}

// IterDepthFirst calls f(joint, parent) for every joint in the subtree
// rooted at from, in depth-first order. A negative from starts at the
// root and visits the whole hierarchy. The walk advances through storage
// while the parent index stays at or after from, which delimits the
// subtree exactly on conforming depth-first layouts.
func (s *Skeleton) IterDepthFirst(from int, f func(joint, parent int16)) {
	i := from
	if i < 0 {
		i = 0
	}
	n := len(s.parents)
	for i < n {
		f(int16(i), s.parents[i])
		i++
		if i >= n || int(s.parents[i]) < from {
			return
		}
	}
}

// IterDepthFirstReverse calls f(joint, parent) for every joint from last
// to first, so every child is visited before its parent. Used by
// algorithms that aggregate child state upward.
func (s *Skeleton) IterDepthFirstReverse(f func(joint, parent int16)) {
	for i := len(s.parents) - 1; i >= 0; i-- {
		f(int16(i), s.parents[i])
	}
}
