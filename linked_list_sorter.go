package confetti

// LinkedListSorter orders a LinkedList in place. Sort may return any error
// from the result taxonomy; LinkedList.Sort surfaces it unmodified.
// Implementations built outside this package work through the exported
// LinkedList surface: GetSize, GetEquality, Get, Pop and Insert.
type LinkedListSorter interface {
	Sort(list *LinkedList, ascending bool) error
}

// MergeSorter is the default LinkedListSorter: a recursive merge sort over
// the node chain. Elements that compare equal under the list's equality
// keep their relative order.
type MergeSorter struct{}

func (m *MergeSorter) Sort(list *LinkedList, ascending bool) error {
	if list == nil {
		return ErrNilList
	}

	head, tail := mergeSort(list.head, ascending, list.equality)
	list.head = head
	list.tail = tail

	return nil
}

// mergeSort sorts the chain starting at head and returns its new head and
// tail.
func mergeSort(head *linkedListNode, ascending bool, equality Equality) (*linkedListNode, *linkedListNode) {
	if head == nil || head.next == nil {
		return head, head
	}

	firstHalf, secondHalf := mergeSplit(head)

	firstHalf, _ = mergeSort(firstHalf, ascending, equality)
	secondHalf, _ = mergeSort(secondHalf, ascending, equality)

	return merge(firstHalf, secondHalf, ascending, equality)
}

// mergeSplit cuts a chain of at least two nodes into halves with the slow
// and fast pointer walk; the first half gets the extra node when the
// length is odd.
func mergeSplit(source *linkedListNode) (*linkedListNode, *linkedListNode) {
	singleStep := source
	doubleStep := source.next

	for doubleStep != nil && doubleStep.next != nil {
		singleStep = singleStep.next
		doubleStep = doubleStep.next.next
	}

	secondHalf := singleStep.next
	singleStep.next = nil

	return source, secondHalf
}

// merge interleaves two sorted chains into one and returns its head and
// tail. The first half's node wins ties, which is what keeps the sort
// stable; once a side runs out the other side's remainder is linked on
// whole.
func merge(firstHalf *linkedListNode, secondHalf *linkedListNode, ascending bool, equality Equality) (*linkedListNode, *linkedListNode) {
	if firstHalf == nil {
		return secondHalf, chainTail(secondHalf)
	} else if secondHalf == nil {
		return firstHalf, chainTail(firstHalf)
	}

	var newHead, lastMerged *linkedListNode

	for firstHalf != nil && secondHalf != nil {
		comparison := equality.Compare(firstHalf.element.value, secondHalf.element.value, firstHalf.element.size)

		takeFirst := comparison <= 0
		if !ascending {
			takeFirst = comparison >= 0
		}

		var taken *linkedListNode

		if takeFirst {
			taken = firstHalf
			firstHalf = firstHalf.next
		} else {
			taken = secondHalf
			secondHalf = secondHalf.next
		}

		if newHead == nil {
			newHead = taken
		} else {
			lastMerged.next = taken
		}

		lastMerged = taken
	}

	if firstHalf != nil {
		lastMerged.next = firstHalf
	} else {
		lastMerged.next = secondHalf
	}

	return newHead, chainTail(lastMerged)
}

// walks to the last node of a chain
func chainTail(node *linkedListNode) *linkedListNode {
	if node == nil {
		return nil
	}

	for node.next != nil {
		node = node.next
	}

	return node
}
