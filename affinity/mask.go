// File: affinity/mask.go
// Author: momentics <momentics@gmail.com>
//
// Mask to core-id-list conversion. Ascending order and uniqueness of
// the id list hold by construction: ids are bit positions walked from
// the lowest set bit upward.

package affinity

import (
	"math/bits"

	"github.com/momentics/hioload-affinity/api"
)

// maskToIDs expands mask into the ascending list of set bit positions.
func maskToIDs(mask api.Mask) []int {
	ids := make([]int, 0, bits.OnesCount64(uint64(mask)))
	for m := uint64(mask); m != 0; m &= m - 1 {
		ids = append(ids, bits.TrailingZeros64(m))
	}
	return ids
}

// idsToMask folds ids into a mask. Duplicates and arbitrary order are
// accepted; any id outside [0,63] fails the whole conversion.
func idsToMask(ids []int) (api.Mask, bool) {
	var mask api.Mask
	for _, id := range ids {
		if id < 0 || id >= api.MaxCores {
			return 0, false
		}
		mask |= api.Mask(1) << uint(id)
	}
	return mask, true
}
