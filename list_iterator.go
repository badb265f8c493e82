package confetti

// ListIterator is a cursor over a List, created rewound: positioned before
// the first element. It borrows the list and never owns the elements it
// exposes.
type ListIterator struct {
	list    *List
	index   int64
	element *Element
}

// Creates a rewound cursor over list.
func NewListIterator(list *List) (*ListIterator, error) {
	if list == nil {
		return nil, ErrNilList
	}

	return &ListIterator{list: list, index: -1}, nil
}

// Next advances one slot and returns the element there. Stepping past the
// last element, or into an empty list, returns ErrIndexOutOfRange and
// leaves the cursor rewound, so the following call starts over at the
// first element.
func (i *ListIterator) Next() (*Element, error) {
	if i == nil {
		return nil, ErrInvalidParams
	}

	if i.index+1 >= i.list.count {
		i.index = -1
		i.element = nil

		return nil, ErrIndexOutOfRange
	}

	i.index++
	i.element = i.list.items[i.index]

	return i.element, nil
}

// GetCurrent returns the element at the cursor without advancing, or nil
// while rewound. The element is the list's own copy; do not free it.
func (i *ListIterator) GetCurrent() *Element {
	if i == nil {
		return nil
	}

	return i.element
}

// returns the slot the cursor is on, or -1 while rewound
func (i *ListIterator) GetIndex() int64 {
	if i == nil {
		return -1
	}

	return i.index
}

// Rewind moves the cursor back before the first element.
func (i *ListIterator) Rewind() {
	if i == nil {
		return
	}

	i.index = -1
	i.element = nil
}
