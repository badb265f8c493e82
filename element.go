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

// Element is an owned, size-tagged byte value held by a container slot or
// node. The size is zero exactly when no value is held; a valueless element
// is valid and distinct from an empty slot.
type Element struct {
	value []byte
	size  uint64
}

// Creates a new Element holding an independent copy of size bytes of value.
// The copy is zero padded when size exceeds the input. A nil value or a zero
// size produces a valueless element.
func NewElement(value []byte, size uint64) *Element {
	if value == nil || size == 0 {
		return &Element{}
	}

	buffer := make([]byte, size)
	copy(buffer, value)

	return &Element{value: buffer, size: size}
}

// Clone returns a deep copy of the element with an independent lifetime.
func (element *Element) Clone() (*Element, error) {
	if element == nil {
		return nil, ErrInvalidParams
	}

	if element.value == nil {
		return &Element{}, nil
	}

	buffer := make([]byte, element.size)
	copy(buffer, element.value)

	return &Element{value: buffer, size: element.size}, nil
}

// Set replaces the held value. A fresh buffer is allocated only when size
// differs from the stored size; same sized sets reuse the existing buffer.
// A zero size empties the element. A nil value with a positive size is
// rejected.
func (element *Element) Set(value []byte, size uint64) error {
	if element == nil {
		return ErrInvalidParams
	}

	if size == 0 {
		element.value = nil
		element.size = 0

		return nil
	}

	if value == nil {
		return ErrInvalidParams
	}

	if size != element.size {
		element.value = make([]byte, size)
		element.size = size
	}

	copied := copy(element.value, value)
	for i := copied; i < len(element.value); i++ {
		element.value[i] = 0
	}

	return nil
}

// Free drops the held buffer; the element becomes valueless.
func (element *Element) Free() error {
	if element == nil {
		return ErrInvalidParams
	}

	element.value = nil
	element.size = 0

	return nil
}

// returns the held bytes without copying
func (element *Element) GetValue() []byte {
	if element == nil {
		return nil
	}
	return element.value
}

// returns the size of the held value in bytes
func (element *Element) GetSize() uint64 {
	if element == nil {
		return 0
	}
	return element.size
}

// to string
func (element *Element) String() string {
	if element == nil {
		return ""
	}
	return string(element.value)
}
