package service

// Combine returns the Cartesian product of the value lists, one tuple per
// input list in order. An empty input (or any empty list) yields no
// tuples; a single list yields length-1 tuples. No dedup and no cap:
// output size is the product of the list lengths.
func Combine(lists [][]uint) [][]uint {
	if len(lists) == 0 {
		return [][]uint{}
	}
	if len(lists) == 1 {
		tuples := make([][]uint, 0, len(lists[0]))
		for _, v := range lists[0] {
			tuples = append(tuples, []uint{v})
		}
		return tuples
	}

	rest := Combine(lists[1:])
	tuples := make([][]uint, 0, len(lists[0])*len(rest))
	for _, v := range lists[0] {
		for _, tail := range rest {
			tuple := make([]uint, 0, 1+len(tail))
			tuple = append(tuple, v)
			tuple = append(tuple, tail...)
			tuples = append(tuples, tuple)
		}
	}
	return tuples
}
