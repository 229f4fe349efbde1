package eigen

// SortEigenValues orders f.EigenValues by ascending modulus using an
// in-place heapsort (max-heap, then repeated pop-to-tail leaves the largest
// modulus at the end each pass), the same algorithm structure as the rest of
// this package's numerical kernels: no allocation, fixed work per element.
func (f *Francis) SortEigenValues() {
	n := f.N
	if n <= 0 {
		return
	}
	for i := n - 1; i >= 0; i-- {
		f.siftDown(i, n)
	}
	for i := n - 1; i > 0; i-- {
		f.EigenValues[0], f.EigenValues[i] = f.EigenValues[i], f.EigenValues[0]
		n--
		f.siftDown(0, n)
	}
}

func (f *Francis) siftDown(place, n int) {
	left := 2*place + 1
	right := left + 1
	swap := place

	if left < n && f.EigenValues[left].greater(f.EigenValues[swap]) {
		swap = left
	}
	if right < n && f.EigenValues[right].greater(f.EigenValues[swap]) {
		swap = right
	}
	if swap != place {
		f.EigenValues[place], f.EigenValues[swap] = f.EigenValues[swap], f.EigenValues[place]
		f.siftDown(swap, n)
	}
}
