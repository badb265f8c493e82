package confetti

// ListSorter orders a List in place. Sort may return any error from the
// result taxonomy; List.Sort surfaces it unmodified. Implementations built
// outside this package work through the exported List surface: GetSize,
// GetEquality, Get and Swap.
type ListSorter interface {
	Sort(list *List, ascending bool) error
}

// QuickSorter is the default ListSorter: a recursive, in place quicksort
// with median-of-three pivot selection. Elements that compare equal under
// the list's equality are not guaranteed to keep their relative order.
type QuickSorter struct{}

func (q *QuickSorter) Sort(list *List, ascending bool) error {
	if list == nil {
		return ErrNilList
	}

	quicksort(list, 0, list.count-1, ascending)

	return nil
}

// sorts the slot range [low, high] in place
func quicksort(list *List, low int64, high int64, ascending bool) {
	if low >= high {
		return
	}

	// the pivot selection below needs three distinct slots; a pair is
	// resolved with a single compare and swap
	if high-low == 1 {
		comparison := list.equality.Compare(list.items[low].value, list.items[high].value, list.items[low].size)

		if (ascending && comparison > 0) || (!ascending && comparison < 0) {
			list.items[low], list.items[high] = list.items[high], list.items[low]
		}

		return
	}

	p := partition(list, low, high, ascending)

	quicksort(list, low, p-1, ascending)
	quicksort(list, p+1, high, ascending)
}

// partition orders the low, middle and high slots, parks the median at
// high-1 as the pivot, groups every element ordered against the pivot to
// its left and returns the pivot's final slot.
func partition(list *List, low int64, high int64, ascending bool) int64 {
	items := list.items
	equality := list.equality
	mid := low + (high-low)/2

	if ascending {
		if equality.Compare(items[low].value, items[mid].value, items[low].size) > 0 {
			items[low], items[mid] = items[mid], items[low]
		}

		if equality.Compare(items[low].value, items[high].value, items[low].size) > 0 {
			items[low], items[high] = items[high], items[low]
		}

		if equality.Compare(items[mid].value, items[high].value, items[mid].size) > 0 {
			items[mid], items[high] = items[high], items[mid]
		}
	} else {
		if equality.Compare(items[low].value, items[mid].value, items[low].size) < 0 {
			items[low], items[mid] = items[mid], items[low]
		}

		if equality.Compare(items[low].value, items[high].value, items[low].size) < 0 {
			items[low], items[high] = items[high], items[low]
		}

		if equality.Compare(items[mid].value, items[high].value, items[mid].size) < 0 {
			items[mid], items[high] = items[high], items[mid]
		}
	}

	items[mid], items[high-1] = items[high-1], items[mid]

	pivot := items[high-1]
	i := low - 1

	for j := low; j <= high-2; j++ {
		comparison := equality.Compare(items[j].value, pivot.value, pivot.size)

		ordered := comparison <= 0
		if !ascending {
			ordered = comparison >= 0
		}

		if ordered {
			i++
			items[i], items[j] = items[j], items[i]
		}
	}

	items[i+1], items[high-1] = items[high-1], items[i+1]

	return i + 1
}
