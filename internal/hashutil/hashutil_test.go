package hashutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringIsStable(t *testing.T) {
	names := []string{"", "Hips", "Spine", "Bip01 R Toe0Nub", "左肩"}
	for _, name := range names {
		first := String(name)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, String(name), "hash of %q changed between calls", name)
		}
	}
}

func TestStringSeparatesNearbyNames(t *testing.T) {
	// Joint names in real rigs differ by one rune ("L"/"R", digit suffixes);
	// the table degenerates if those collide.
	assert.NotEqual(t, String("Bip01 L Foot"), String("Bip01 R Foot"))
	assert.NotEqual(t, String("Spine1"), String("Spine2"))
	assert.NotEqual(t, String("Hips"), String("hips"))
}
