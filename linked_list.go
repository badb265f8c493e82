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

// linkedListNode is the chain's storage unit: one owned element and the
// link to the node after it.
type linkedListNode struct {
	element *Element
	next    *linkedListNode
}

// LinkedList is a singly linked chain of owned elements. Values are deep
// copied in on insertion and deep copied out on retrieval, so no byte
// buffer is ever shared between a list and its caller or between two
// lists. The tail is tracked so appends stay O(1).
//
// Lists must be created with NewLinkedList. A LinkedList is not safe for
// concurrent use.
type LinkedList struct {
	head     *linkedListNode
	tail     *linkedListNode
	count    int64
	equality Equality
	sorter   LinkedListSorter
}

// Creates a new, empty LinkedList. A nil equality or sorter falls back to
// the built in BytewiseEquality and MergeSorter.
func NewLinkedList(equality Equality, sorter LinkedListSorter) *LinkedList {
	if equality == nil {
		equality = &BytewiseEquality{}
	}

	if sorter == nil {
		sorter = &MergeSorter{}
	}

	return &LinkedList{
		equality: equality,
		sorter:   sorter,
	}
}

// nodeAt walks from the head to the node at index. The caller must have
// bounds checked the index.
func (v *LinkedList) nodeAt(index int64) *linkedListNode {
	node := v.head

	for i := int64(0); i < index; i++ {
		node = node.next
	}

	return node
}

// Append deep copies size bytes of value into a new node after the tail.
// O(1).
func (v *LinkedList) Append(value []byte, size uint64) error {
	if v == nil {
		return ErrNilList
	}

	node := &linkedListNode{element: NewElement(value, size)}

	if v.head == nil {
		v.head = node
		v.tail = node
	} else {
		v.tail.next = node
		v.tail = node
	}

	v.count++

	return nil
}

// Prepend deep copies size bytes of value into a new node before the head.
// O(1).
func (v *LinkedList) Prepend(value []byte, size uint64) error {
	if v == nil {
		return ErrNilList
	}

	node := &linkedListNode{element: NewElement(value, size), next: v.head}

	if v.head == nil {
		v.tail = node
	}

	v.head = node
	v.count++

	return nil
}

// Insert deep copies the value into a new node at index. Index count
// behaves as an append and index zero as a prepend.
func (v *LinkedList) Insert(index int64, value []byte, size uint64) error {
	if v == nil {
		return ErrNilList
	} else if index > v.count || index < 0 {
		return ErrIndexOutOfRange
	}

	node := &linkedListNode{element: NewElement(value, size)}

	if v.head == nil {
		v.head = node
		v.tail = node
	} else if index == 0 {
		node.next = v.head
		v.head = node
	} else if index == v.count {
		v.tail.next = node
		v.tail = node
	} else {
		previous := v.nodeAt(index - 1)
		node.next = previous.next
		previous.next = node
	}

	v.count++

	return nil
}

// Get returns an independently owned clone of the element at index. The
// caller may free or mutate the clone without touching the list. O(n).
func (v *LinkedList) Get(index int64) (*Element, error) {
	if v == nil {
		return nil, ErrNilList
	} else if index >= v.count || index < 0 {
		return nil, ErrIndexOutOfRange
	}

	return v.nodeAt(index).element.Clone()
}

// Set overwrites the element at index in place, reallocating its buffer
// only when size differs from the stored size. A zero size empties the
// element; a nil value with a positive size is rejected.
func (v *LinkedList) Set(index int64, value []byte, size uint64) error {
	if v == nil {
		return ErrNilList
	} else if index >= v.count || index < 0 {
		return ErrIndexOutOfRange
	}

	return v.nodeAt(index).element.Set(value, size)
}

// Remove unlinks the node at index and releases its element.
func (v *LinkedList) Remove(index int64) error {
	if v == nil {
		return ErrNilList
	} else if index >= v.count || index < 0 {
		return ErrIndexOutOfRange
	}

	var removed *linkedListNode

	if index == 0 {
		removed = v.head
		v.head = removed.next

		if v.tail == removed {
			v.tail = nil
		}
	} else {
		previous := v.nodeAt(index - 1)
		removed = previous.next
		previous.next = removed.next

		if v.tail == removed {
			v.tail = previous
		}
	}

	removed.element.Free()
	removed.next = nil
	v.count--

	return nil
}

// Pop unlinks the node at index and returns an independently owned clone
// of its element.
func (v *LinkedList) Pop(index int64) (*Element, error) {
	if v == nil {
		return nil, ErrNilList
	} else if index >= v.count || index < 0 {
		return nil, ErrIndexOutOfRange
	}

	clone, err := v.nodeAt(index).element.Clone()
	if err != nil {
		return nil, err
	}

	if err := v.Remove(index); err != nil {
		return nil, err
	}

	return clone, nil
}

// Resize grows the list to newSize nodes by appending empty elements, or
// shrinks it by cutting the chain after the new last node. Zero empties
// the list; a negative size is rejected.
func (v *LinkedList) Resize(newSize int64) error {
	if v == nil {
		return ErrNilList
	} else if newSize < 0 {
		return ErrInvalidParams
	}

	if newSize == v.count {
		return nil
	}

	if newSize == 0 {
		return v.Clear()
	}

	if newSize > v.count {
		grownBy := newSize - v.count

		for i := int64(0); i < grownBy; i++ {
			if err := v.Append(nil, 0); err != nil {
				return err
			}
		}

		return nil
	}

	newTail := v.nodeAt(newSize - 1)
	newTail.next = nil
	v.tail = newTail
	v.count = newSize

	return nil
}

// Reverse relinks the chain in place; the head and tail trade places.
func (v *LinkedList) Reverse() error {
	if v == nil {
		return ErrNilList
	}

	if v.head == nil {
		return nil
	}

	var previous *linkedListNode
	current := v.head

	for current != nil {
		next := current.next
		current.next = previous
		previous = current
		current = next
	}

	v.tail = v.head
	v.head = previous

	return nil
}

// Clear drops every node. The list handle survives with its equality and
// sorter.
func (v *LinkedList) Clear() error {
	if v == nil {
		return ErrNilList
	}

	v.head = nil
	v.tail = nil
	v.count = 0

	return nil
}

// Clone deep copies the list: every node and element, same equality and
// sorter.
func (v *LinkedList) Clone() (*LinkedList, error) {
	if v == nil {
		return nil, ErrNilList
	}

	clone := &LinkedList{
		count:    v.count,
		equality: v.equality,
		sorter:   v.sorter,
	}

	var previous *linkedListNode

	for node := v.head; node != nil; node = node.next {
		elementClone, err := node.element.Clone()
		if err != nil {
			return nil, err
		}

		nodeClone := &linkedListNode{element: elementClone}

		if clone.head == nil {
			clone.head = nodeClone
		} else {
			previous.next = nodeClone
		}

		previous = nodeClone
	}

	clone.tail = previous

	return clone, nil
}

// Join creates a new list holding clones of every element of this list
// followed by clones of every element of other. The new list gets the
// default equality and sorter. Neither source is mutated.
func (v *LinkedList) Join(other *LinkedList) (*LinkedList, error) {
	if v == nil || other == nil {
		return nil, ErrNilList
	}

	joined := NewLinkedList(nil, nil)

	for node := v.head; node != nil; node = node.next {
		if err := joined.Append(node.element.value, node.element.size); err != nil {
			return nil, err
		}
	}

	for node := other.head; node != nil; node = node.next {
		if err := joined.Append(node.element.value, node.element.size); err != nil {
			return nil, err
		}
	}

	return joined, nil
}

// Includes reports whether any element matches the value under the list's
// equality, comparing size bytes regardless of each stored size. A miss
// reports ErrElementNotFound.
func (v *LinkedList) Includes(value []byte, size uint64) error {
	if v == nil {
		return ErrNilList
	}

	for node := v.head; node != nil; node = node.next {
		if v.equality.Compare(node.element.value, value, size) == 0 {
			return nil
		}
	}

	return ErrElementNotFound
}

// FindFirst walks forward from startIndex and returns the index of the
// first element matching the value. A miss returns -1 with
// ErrElementNotFound.
func (v *LinkedList) FindFirst(startIndex int64, value []byte, size uint64) (int64, error) {
	if v == nil {
		return -1, ErrNilList
	} else if startIndex >= v.count || startIndex < 0 {
		return -1, ErrIndexOutOfRange
	}

	node := v.nodeAt(startIndex)

	for index := startIndex; node != nil; index, node = index+1, node.next {
		if v.equality.Compare(node.element.value, value, size) == 0 {
			return index, nil
		}
	}

	return -1, ErrElementNotFound
}

// FindLast walks forward from startIndex and returns the index of the
// last element matching the value, so matches before the start are never
// reported. A miss returns -1 with ErrElementNotFound.
func (v *LinkedList) FindLast(startIndex int64, value []byte, size uint64) (int64, error) {
	if v == nil {
		return -1, ErrNilList
	} else if startIndex >= v.count || startIndex < 0 {
		return -1, ErrIndexOutOfRange
	}

	lastFound := int64(-1)
	node := v.nodeAt(startIndex)

	for index := startIndex; node != nil; index, node = index+1, node.next {
		if v.equality.Compare(node.element.value, value, size) == 0 {
			lastFound = index
		}
	}

	if lastFound == -1 {
		return -1, ErrElementNotFound
	}

	return lastFound, nil
}

// Sort orders the chain with the configured sorter. Lists of zero or one
// element are already sorted; a sorter error is surfaced unmodified.
func (v *LinkedList) Sort(ascending bool) error {
	if v == nil {
		return ErrNilList
	}

	if v.count < 2 {
		return nil
	}

	return v.sorter.Sort(v, ascending)
}

// Swap exchanges the chain positions of the nodes at the two indexes by
// detaching both and reattaching each where the other stood. Elements stay
// inside their nodes; the head and tail are re-patched when an endpoint
// moved. Equal indexes are a no-op.
func (v *LinkedList) Swap(index1 int64, index2 int64) error {
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

	if index1 > index2 {
		index1, index2 = index2, index1
	}

	var firstPrevious *linkedListNode
	first := v.head

	for i := int64(0); i < index1; i++ {
		firstPrevious = first
		first = first.next
	}

	var secondPrevious *linkedListNode
	second := v.head

	for i := int64(0); i < index2; i++ {
		secondPrevious = second
		second = second.next
	}

	if first.next == second {
		// neighbors: detach second and splice it back in front of first
		first.next = second.next
		second.next = first
	} else {
		first.next, second.next = second.next, first.next
		secondPrevious.next = first
	}

	if firstPrevious == nil {
		v.head = second
	} else {
		firstPrevious.next = second
	}

	if v.tail == second {
		v.tail = first
	}

	return nil
}

// returns the number of elements in the chain
func (v *LinkedList) GetSize() int64 {
	if v == nil {
		return 0
	}

	return v.count
}

// returns the equality the list was created with; custom sorters use it to
// order elements
func (v *LinkedList) GetEquality() Equality {
	if v == nil {
		return nil
	}

	return v.equality
}
