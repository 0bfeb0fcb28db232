package skeleton

import (
	"fmt"
	"io"

	"ozz-skel-runtime/internal/archive"
	"ozz-skel-runtime/internal/ozzerr"
	"ozz-skel-runtime/internal/soa"
)

const (
	// Tag is the skeleton resource tag in archive headers.
	Tag = "ozz-skeleton"

	// Version is the archive format version this decoder supports.
	Version uint32 = 2
)

// Meta is the header portion of a skeleton archive: everything except the
// rest poses. It is produced by ReadMeta and either consumed immediately
// by FromArchive or discarded by callers that only need counts and names.
type Meta struct {
	Version   uint32
	NumJoints int32
	Names     *JointMap
	Parents   []int16
}

// ReadMeta validates the archive header and decodes the hierarchy
// metadata. With withJoints false (or a zero joint count) it stops after
// the joint count and returns empty name and parent tables.
func ReadMeta(a *archive.Reader, withJoints bool) (*Meta, error) {
	if a.Tag() != Tag {
		return nil, ozzerr.InvalidTag(a.Tag(), Tag)
	}
	if a.Version() != Version {
		return nil, ozzerr.InvalidVersion(a.Version(), Version)
	}

	numJoints, err := a.ReadInt32()
	if err != nil {
		return nil, err
	}
	if numJoints < 0 || numJoints > MaxJoints {
		return nil, ozzerr.IO("read joint count", fmt.Errorf("count %d outside [0, %d]", numJoints, MaxJoints))
	}
	if numJoints == 0 || !withJoints {
		return &Meta{
			Version:   Version,
			NumJoints: numJoints,
			Names:     NewJointMap(0),
		}, nil
	}

	// Reserved aggregate character count; read to advance the stream.
	if _, err := a.ReadInt32(); err != nil {
		return nil, err
	}

	names := NewJointMap(int(numJoints))
	for idx := int32(0); idx < numJoints; idx++ {
		name, err := a.ReadString()
		if err != nil {
			return nil, err
		}
		names.Insert(name, int16(idx))
	}

	parents, err := a.ReadInt16s(int(numJoints))
	if err != nil {
		return nil, err
	}

	return &Meta{
		Version:   Version,
		NumJoints: numJoints,
		Names:     names,
		Parents:   parents,
	}, nil
}

// FromArchive decodes a complete skeleton. Any failure aborts the decode;
// a partially constructed skeleton is never returned.
func FromArchive(a *archive.Reader) (*Skeleton, error) {
	meta, err := ReadMeta(a, true)
	if err != nil {
		return nil, err
	}

	numSoa := (int(meta.NumJoints) + 3) / 4
	restPoses := make([]soa.Transform, 0, numSoa)
	for i := 0; i < numSoa; i++ {
		t, err := soa.ReadTransform(a)
		if err != nil {
			return nil, err
		}
		restPoses = append(restPoses, t)
	}

	return New(restPoses, meta.Parents, meta.Names), nil
}

// FromPath decodes a skeleton from an archive file, plain or
// zstd-compressed.
func FromPath(path string) (*Skeleton, error) {
	a, err := archive.OpenPath(path)
	if err != nil {
		return nil, err
	}
	return FromArchive(a)
}

// Write encodes the skeleton in the archive layout FromArchive reads:
// tag, version, joint count, character count, names in index order,
// parents, then SoA rest poses padded to the group boundary with identity
// lanes.
func (s *Skeleton) Write(w io.Writer) error {
	a, err := archive.NewWriter(w, Tag, Version)
	if err != nil {
		return err
	}

	numJoints := len(s.parents)
	if err := a.WriteInt32(int32(numJoints)); err != nil {
		return err
	}
	if numJoints == 0 {
		return nil
	}

	var charCount int32
	jointNames := make([]string, numJoints)
	for i := range jointNames {
		name, _ := s.names.NameByIndex(int16(i))
		jointNames[i] = name
		charCount += int32(len(name))
	}
	if err := a.WriteInt32(charCount); err != nil {
		return err
	}
	for _, name := range jointNames {
		if err := a.WriteString(name); err != nil {
			return err
		}
	}
	if err := a.WriteInt16s(s.parents); err != nil {
		return err
	}

	numSoa := (numJoints + 3) / 4
	for i := 0; i < numSoa; i++ {
		t := soa.Identity()
		if i < len(s.restPoses) {
			t = s.restPoses[i]
		}
		if err := soa.WriteTransform(a, t); err != nil {
			return err
		}
	}
	return nil
}
