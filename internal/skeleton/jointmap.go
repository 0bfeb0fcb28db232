package skeleton

import "ozz-skel-runtime/internal/hashutil"

// JointMap is a bidirectional, injective mapping between joint names and
// 16-bit joint indices. Name lookups go through a fixed-seed
// open-addressing table so the layout is reproducible across runs; index
// lookups go through a dense slice. Go's built-in map cannot take a
// deterministic hasher, which is the entire point of this table.
//
// Inserting an existing name or index displaces the old pairing, so the
// map stays injective in both directions. Built once at skeleton
// construction and read-only afterwards.
type JointMap struct {
	table []mapSlot
	mask  uint64
	count int

	names []string
	has   []bool
}

type mapSlot struct {
	hash  uint64
	name  string
	index int16
	state uint8 // slotEmpty, slotUsed or slotDead
}

const (
	slotEmpty = iota
	slotUsed
	slotDead
)

// NewJointMap returns a map pre-sized for about n joints.
func NewJointMap(n int) *JointMap {
	size := 8
	for size*3 < n*4 { // keep load factor under 3/4
		size *= 2
	}
	return &JointMap{
		table: make([]mapSlot, size),
		mask:  uint64(size - 1),
	}
}

// Len returns the number of name/index pairs.
func (m *JointMap) Len() int { return m.count }

// IndexByName returns the joint index mapped to name.
func (m *JointMap) IndexByName(name string) (int16, bool) {
	h := hashutil.String(name)
	for i := h & m.mask; ; i = (i + 1) & m.mask {
		slot := &m.table[i]
		switch slot.state {
		case slotEmpty:
			return 0, false
		case slotUsed:
			if slot.hash == h && slot.name == name {
				return slot.index, true
			}
		}
	}
}

// NameByIndex returns the joint name mapped to index.
func (m *JointMap) NameByIndex(index int16) (string, bool) {
	if index < 0 || int(index) >= len(m.names) || !m.has[index] {
		return "", false
	}
	return m.names[index], true
}

// Insert maps name to index, displacing any pairing either side had.
func (m *JointMap) Insert(name string, index int16) {
	if old, ok := m.IndexByName(name); ok {
		if old == index {
			return
		}
		m.deletePair(name, old)
	}
	if oldName, ok := m.NameByIndex(index); ok {
		m.deletePair(oldName, index)
	}

	if (m.count+1)*4 > len(m.table)*3 {
		m.grow()
	}
	m.insertSlot(hashutil.String(name), name, index)

	for int(index) >= len(m.names) {
		m.names = append(m.names, "")
		m.has = append(m.has, false)
	}
	m.names[index] = name
	m.has[index] = true
	m.count++
}

func (m *JointMap) insertSlot(h uint64, name string, index int16) {
	for i := h & m.mask; ; i = (i + 1) & m.mask {
		slot := &m.table[i]
		if slot.state != slotUsed {
			*slot = mapSlot{hash: h, name: name, index: index, state: slotUsed}
			return
		}
	}
}

func (m *JointMap) deletePair(name string, index int16) {
	h := hashutil.String(name)
	for i := h & m.mask; ; i = (i + 1) & m.mask {
		slot := &m.table[i]
		if slot.state == slotEmpty {
			return
		}
		if slot.state == slotUsed && slot.hash == h && slot.name == name {
			*slot = mapSlot{state: slotDead}
			m.names[index] = ""
			m.has[index] = false
			m.count--
			return
		}
	}
}

func (m *JointMap) grow() {
	old := m.table
	m.table = make([]mapSlot, len(old)*2)
	m.mask = uint64(len(m.table) - 1)
	for _, slot := range old {
		if slot.state == slotUsed {
			m.insertSlot(slot.hash, slot.name, slot.index)
		}
	}
}

// Equal reports whether both maps hold exactly the same pairs.
func (m *JointMap) Equal(o *JointMap) bool {
	if m.count != o.count {
		return false
	}
	for i, ok := range m.has {
		if !ok {
			continue
		}
		name, found := o.NameByIndex(int16(i))
		if !found || name != m.names[i] {
			return false
		}
	}
	return true
}
