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

// Iterator is the cursor contract shared by both containers. Next advances
// one step and returns the element at the new position; stepping past the
// last element, or into an empty container, returns ErrIndexOutOfRange and
// leaves the cursor rewound, so the following Next starts over at the first
// element. GetCurrent returns the element at the cursor without advancing,
// or nil while rewound. Rewind resets the cursor from any state.
//
// Iterators borrow the container's elements and never own them; callers
// must not free what Next or GetCurrent return. Structurally mutating a
// container while iterating it is unsupported.
type Iterator interface {
	Next() (*Element, error)
	GetCurrent() *Element
	Rewind()
}
