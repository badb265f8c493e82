/*
*	This file is part of confetti.
*
*	confetti is free software: you can redistribute it and/or modify it
*	under the terms of the GNU Lesser General Public License as published
*	by the Free Software Foundation, either version 3 of the License,
*	or (at your option) any later version.
*
*	confetti is distributed in the hope that it will be useful,
*	but WITHOUT ANY WARRANTY; without even the implied warranty
*	of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
*
*	See the GNU Lesser General Public License for more details.
*
*	You should have received a copy of the GNU Lesser General Public License
*	along with confetti. If not, see <https://www.gnu.org/licenses/>.
 */

package confetti

import "bytes"

// Equality orders two raw element values. Compare returns 0 when the values
// are considered equal, a negative number when a orders before b and a
// positive number when a orders after b. size is the number of bytes the
// caller considers significant.
//
// Both containers call Compare with the stored value first and the probe
// value second; sorts compare left to right.
type Equality interface {
	Compare(a []byte, b []byte, size uint64) int
}

// BytewiseEquality is the default Equality. A nil value compares less than a
// present one and two nil values compare equal; otherwise the values compare
// byte-wise over size bytes, clamped to the shorter operand.
type BytewiseEquality struct{}

func (e *BytewiseEquality) Compare(a []byte, b []byte, size uint64) int {
	if a == nil && b != nil {
		return -1
	} else if a != nil && b == nil {
		return 1
	} else if a == nil && b == nil {
		return 0
	}

	limit := size
	if uint64(len(a)) < limit {
		limit = uint64(len(a))
	}
	if uint64(len(b)) < limit {
		limit = uint64(len(b))
	}

	return bytes.Compare(a[:limit], b[:limit])
}
