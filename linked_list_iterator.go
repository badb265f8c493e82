package confetti

// LinkedListIterator is a cursor over a LinkedList, created rewound:
// positioned before the first element. It borrows the list and never owns
// the elements it exposes. Because the cursor holds the node it is on,
// advancing is O(1) per step.
type LinkedListIterator struct {
	list  *LinkedList
	node  *linkedListNode
	index int64
}

// Creates a rewound cursor over list.
func NewLinkedListIterator(list *LinkedList) (*LinkedListIterator, error) {
	if list == nil {
		return nil, ErrNilList
	}

	return &LinkedListIterator{list: list, index: -1}, nil
}

// Next advances one node and returns the element there. Stepping past the
// last node, or into an empty list, returns ErrIndexOutOfRange and leaves
// the cursor rewound, so the following call starts over at the first
// element.
func (i *LinkedListIterator) Next() (*Element, error) {
	if i == nil {
		return nil, ErrInvalidParams
	}

	if i.node == nil {
		if i.list.head == nil {
			return nil, ErrIndexOutOfRange
		}

		i.node = i.list.head
		i.index = 0

		return i.node.element, nil
	}

	if i.node.next == nil {
		i.node = nil
		i.index = -1

		return nil, ErrIndexOutOfRange
	}

	i.node = i.node.next
	i.index++

	return i.node.element, nil
}

// GetCurrent returns the element at the cursor without advancing, or nil
// while rewound. The element is the list's own copy; do not free it.
func (i *LinkedListIterator) GetCurrent() *Element {
	if i == nil || i.node == nil {
		return nil
	}

	return i.node.element
}

// returns the position the cursor is on, or -1 while rewound
func (i *LinkedListIterator) GetIndex() int64 {
	if i == nil {
		return -1
	}

	return i.index
}

// Rewind moves the cursor back before the first element.
func (i *LinkedListIterator) Rewind() {
	if i == nil {
		return
	}

	i.node = nil
	i.index = -1
}
