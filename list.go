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

// number of slots a List starts with when no usable capacity is given
const DefaultListCapacity int64 = 8

// List is a dynamically resizing, array backed container of owned elements.
// Values are deep copied in on insertion and deep copied out on retrieval,
// so no byte buffer is ever shared between a list and its caller or between
// two lists. Slots between the live count and the capacity hold nothing.
//
// Lists must be created with NewList. A List is not safe for concurrent
// use.
type List struct {
	items    []*Element
	count    int64
	equality Equality
	sorter   ListSorter
}

// Creates a new List with the given number of preallocated slots. A
// capacity below one falls back to DefaultListCapacity; a nil equality or
// sorter falls back to the built in BytewiseEquality and QuickSorter.
func NewList(capacity int64, equality Equality, sorter ListSorter) *List {
	if capacity < 1 {
		capacity = DefaultListCapacity
	}

	if equality == nil {
		equality = &BytewiseEquality{}
	}

	if sorter == nil {
		sorter = &QuickSorter{}
	}

	return &List{
		items:    make([]*Element, capacity),
		count:    0,
		equality: equality,
		sorter:   sorter,
	}
}

// doubles the backing buffer, keeping every slot in place
func (v *List) grow() {
	resized := make([]*Element, int64(len(v.items))*2)
	copy(resized, v.items)
	v.items = resized
}

// Append deep copies size bytes of value into the slot after the last
// element, doubling the capacity when the buffer is full. O(1) amortized.
func (v *List) Append(value []byte, size uint64) error {
	if v == nil {
		return ErrNilList
	}

	if v.count == int64(len(v.items)) {
		v.grow()
	}

	v.items[v.count] = NewElement(value, size)
	v.count++

	return nil
}

// Prepend deep copies size bytes of value into the first slot, shifting
// every element one slot right. O(n).
func (v *List) Prepend(value []byte, size uint64) error {
	if v == nil {
		return ErrNilList
	}

	if v.count == int64(len(v.items)) {
		v.grow()
	}

	copy(v.items[1:v.count+1], v.items[:v.count])
	v.items[0] = NewElement(value, size)
	v.count++

	return nil
}

// Insert deep copies the value into the slot at index, shifting the
// elements at and after it one slot right. Index count behaves as an
// append.
func (v *List) Insert(index int64, value []byte, size uint64) error {
	if v == nil {
		return ErrNilList
	} else if index > v.count || index < 0 {
		return ErrIndexOutOfRange
	}

	if v.count == int64(len(v.items)) {
		v.grow()
	}

	copy(v.items[index+1:v.count+1], v.items[index:v.count])
	v.items[index] = NewElement(value, size)
	v.count++

	return nil
}

// Get returns an independently owned clone of the element at index. The
// caller may free or mutate the clone without touching the list.
func (v *List) Get(index int64) (*Element, error) {
	if v == nil {
		return nil, ErrNilList
	} else if index >= v.count || index < 0 {
		return nil, ErrIndexOutOfRange
	}

	return v.items[index].Clone()
}

// Set overwrites the element at index in place, reallocating its buffer
// only when size differs from the stored size. A zero size or a nil value
// is rejected. An empty slot inside the live range gets a fresh element.
func (v *List) Set(index int64, value []byte, size uint64) error {
	if v == nil {
		return ErrNilList
	} else if index >= v.count || index < 0 {
		return ErrIndexOutOfRange
	} else if size == 0 || value == nil {
		return ErrInvalidParams
	}

	if v.items[index] == nil {
		v.items[index] = NewElement(value, size)
		return nil
	}

	return v.items[index].Set(value, size)
}

// Remove frees the element at index and shifts the elements after it one
// slot left.
func (v *List) Remove(index int64) error {
	if v == nil {
		return ErrNilList
	} else if index >= v.count || index < 0 {
		return ErrIndexOutOfRange
	}

	if err := v.items[index].Free(); err != nil {
		return err
	}

	copy(v.items[index:v.count-1], v.items[index+1:v.count])
	v.items[v.count-1] = nil
	v.count--

	return nil
}

// Pop removes the element at index and returns an independently owned
// clone of it.
func (v *List) Pop(index int64) (*Element, error) {
	if v == nil {
		return nil, ErrNilList
	} else if index >= v.count || index < 0 {
		return nil, ErrIndexOutOfRange
	}

	clone, err := v.items[index].Clone()
	if err != nil {
		return nil, err
	}

	if err := v.items[index].Free(); err != nil {
		return nil, err
	}

	copy(v.items[index:v.count-1], v.items[index+1:v.count])
	v.items[v.count-1] = nil
	v.count--

	return clone, nil
}

// Resize reallocates the backing buffer to hold exactly capacity slots.
// Shrinking below the live count frees the excess elements and truncates
// the count to match. A capacity below one is rejected.
func (v *List) Resize(capacity int64) error {
	if v == nil {
		return ErrNilList
	} else if capacity < 1 {
		return ErrInvalidParams
	}

	if capacity == int64(len(v.items)) {
		return nil
	}

	if capacity < int64(len(v.items)) {
		for i := int64(len(v.items)) - 1; i >= capacity; i-- {
			if v.items[i] != nil {
				v.items[i].Free()
				v.items[i] = nil
			}
		}

		if v.count > capacity {
			v.count = capacity
		}
	}

	resized := make([]*Element, capacity)
	copy(resized, v.items)
	v.items = resized

	return nil
}

// Fill populates every slot between the live count and the capacity with
// an independent copy of value, growing the count to the capacity. Filling
// a full list is a no-op.
func (v *List) Fill(value []byte, size uint64) error {
	if v == nil {
		return ErrNilList
	}

	for i := v.count; i < int64(len(v.items)); i++ {
		v.items[i] = NewElement(value, size)
	}

	v.count = int64(len(v.items))

	return nil
}

// Reverse flips the live range in place with a symmetric slot swap. The
// capacity is untouched.
func (v *List) Reverse() error {
	if v == nil {
		return ErrNilList
	}

	for left, right := int64(0), v.count-1; left < right; left, right = left+1, right-1 {
		v.items[left], v.items[right] = v.items[right], v.items[left]
	}

	return nil
}

// Clear frees every live element and resets the count to zero. The backing
// buffer keeps its capacity.
func (v *List) Clear() error {
	if v == nil {
		return ErrNilList
	}

	for i := int64(0); i < v.count; i++ {
		if v.items[i] != nil {
			v.items[i].Free()
			v.items[i] = nil
		}
	}

	v.count = 0

	return nil
}

// Clone deep copies the list: same count, same capacity, independently
// owned elements, same equality and sorter.
func (v *List) Clone() (*List, error) {
	if v == nil {
		return nil, ErrNilList
	}

	clone := &List{
		items:    make([]*Element, len(v.items)),
		count:    v.count,
		equality: v.equality,
		sorter:   v.sorter,
	}

	for i := int64(0); i < v.count; i++ {
		elementClone, err := v.items[i].Clone()
		if err != nil {
			return nil, err
		}

		clone.items[i] = elementClone
	}

	return clone, nil
}

// Join creates a new list holding clones of every element of this list
// followed by clones of every element of other. The new list is sized to
// the combined count exactly and gets the default equality and sorter.
// Neither source is mutated.
func (v *List) Join(other *List) (*List, error) {
	if v == nil || other == nil {
		return nil, ErrNilList
	}

	joined := NewList(v.count+other.count, nil, nil)

	for i := int64(0); i < v.count; i++ {
		if err := joined.Append(v.items[i].GetValue(), v.items[i].GetSize()); err != nil {
			return nil, err
		}
	}

	for i := int64(0); i < other.count; i++ {
		if err := joined.Append(other.items[i].GetValue(), other.items[i].GetSize()); err != nil {
			return nil, err
		}
	}

	return joined, nil
}

// Includes reports whether any live element matches the value: the stored
// size must equal size and the equality must see the buffers as equal. A
// miss reports ErrElementNotFound.
func (v *List) Includes(value []byte, size uint64) error {
	if v == nil {
		return ErrNilList
	}

	for i := int64(0); i < v.count; i++ {
		element := v.items[i]

		if element == nil || element.size != size {
			continue
		}

		if v.equality.Compare(element.value, value, element.size) == 0 {
			return nil
		}
	}

	return ErrElementNotFound
}

// FindFirst scans forward from startIndex and returns the index of the
// first element matching the value. Only elements whose stored size equals
// size are handed to the equality. A miss returns -1 with
// ErrElementNotFound.
func (v *List) FindFirst(startIndex int64, value []byte, size uint64) (int64, error) {
	if v == nil {
		return -1, ErrNilList
	} else if startIndex >= v.count || startIndex < 0 {
		return -1, ErrIndexOutOfRange
	} else if size == 0 {
		return -1, ErrInvalidParams
	}

	for i := startIndex; i < v.count; i++ {
		element := v.items[i]

		if element == nil || element.size != size {
			continue
		}

		if v.equality.Compare(element.value, value, element.size) == 0 {
			return i, nil
		}
	}

	return -1, ErrElementNotFound
}

// FindLast scans forward from startIndex and returns the index of the
// last element matching the value, so matches before the start are never
// reported. Only elements whose stored size equals size are handed to the
// equality. A miss returns -1 with ErrElementNotFound.
func (v *List) FindLast(startIndex int64, value []byte, size uint64) (int64, error) {
	if v == nil {
		return -1, ErrNilList
	} else if startIndex >= v.count || startIndex < 0 {
		return -1, ErrIndexOutOfRange
	} else if size == 0 {
		return -1, ErrInvalidParams
	}

	lastFound := int64(-1)

	for i := startIndex; i < v.count; i++ {
		element := v.items[i]

		if element == nil || element.size != size {
			continue
		}

		if v.equality.Compare(element.value, value, element.size) == 0 {
			lastFound = i
		}
	}

	if lastFound == -1 {
		return -1, ErrElementNotFound
	}

	return lastFound, nil
}

// Sort orders the live range with the configured sorter. Lists of zero or
// one element are already sorted; a sorter error is surfaced unmodified.
func (v *List) Sort(ascending bool) error {
	if v == nil {
		return ErrNilList
	}

	if v.count < 2 {
		return nil
	}

	return v.sorter.Sort(v, ascending)
}

// Swap exchanges the slots at the two indexes. Equal indexes are a no-op.
func (v *List) Swap(index1 int64, index2 int64) error {
	if v == nil {
		return ErrNilList
	} else if index1 >= v.count || index1 < 0 {
		return ErrIndexOutOfRange
	} else if index2 >= v.count || index2 < 0 {
		return ErrIndexOutOfRange
	}

	if index1 == index2 {
		return nil
	}

	v.items[index1], v.items[index2] = v.items[index2], v.items[index1]

	return nil
}

// returns the number of live elements
func (v *List) GetSize() int64 {
	if v == nil {
		return 0
	}

	return v.count
}

// returns the number of allocated slots
func (v *List) GetCapacity() int64 {
	if v == nil {
		return 0
	}

	return int64(len(v.items))
}

// returns the equality the list was created with; custom sorters use it to
// order elements
func (v *List) GetEquality() Equality {
	if v == nil {
		return nil
	}

	return v.equality
}
