package matrix

// Policy selects what a Dense does on its first write: CoW materializes a
// private copy before mutating if the buffer is shared, WiP always mutates
// the shared storage in place. The policy is a per-matrix choice, not a
// per-buffer one: two views of the same buffer may disagree.
type Policy int

const (
	// CoW is copy-on-write: the default for constructed matrices and views.
	CoW Policy = iota
	// WiP is write-in-place: writes propagate to every alias of the buffer.
	WiP
)

// Dense is a value-typed, rectangular, real dense matrix over a shared
// column-major buffer. Element (i, j) lives at buf.data[offset+j*prows+i].
// Dense is intentionally not used behind a pointer: assigning one Dense to
// another copies the header (rows, cols, prows, offset, policy) while both
// values keep referencing the same buffer until a write forces a private
// copy. See Alias for the one place Go needs an explicit call where the
// source material relied on a copy constructor.
type Dense struct {
	rows, cols int
	prows      int
	offset     int
	policy     Policy
	buf        *buffer
}

// New returns a rows×cols matrix with undefined (zero) contents.
func New(rows, cols int) Dense {
	if rows <= 0 || cols <= 0 {
		panic(ErrZeroLength)
	}
	return Dense{
		rows: rows, cols: cols,
		prows: rows,
		buf:   newBuffer(rows * cols),
	}
}

// NewFilled returns a rows×cols matrix with every element set to fill.
func NewFilled(rows, cols int, fill float64) Dense {
	d := New(rows, cols)
	for i := range d.buf.data {
		d.buf.data[i] = fill
	}
	return d
}

// NewDiag returns a rows×cols matrix, zeroed, with diag written along the
// main diagonal.
func NewDiag(rows, cols int, diag float64) Dense {
	d := New(rows, cols)
	n := rows
	if cols < n {
		n = cols
	}
	for i := 0; i < n; i++ {
		d.Set(i, i, diag)
	}
	return d
}

// NewFromRowMajor adopts an external flat row-major array, converting it to
// the package's column-major storage on ingest.
func NewFromRowMajor(rows, cols int, data []float64) Dense {
	if len(data) != rows*cols {
		panic(ErrShape)
	}
	d := New(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			d.Set(i, j, data[i*cols+j])
		}
	}
	return d
}

// Alias returns a Dense sharing d's buffer and copying d's shape, stride,
// offset and CoW policy. It stands in for the aliasing copy-assignment the
// C++ source this package is adapted from performed implicitly (ptr_t's
// copy constructor incrementing the buffer's reference count); Go has no
// copy constructors, so call sites that need that aliasing behaviour
// (notably the Francis engine and the Krylov restart logic) call Alias
// explicitly instead of a bare `:=`, which would also share the buffer
// pointer but without the bookkeeping a CoW check relies on.
func (d Dense) Alias() Dense {
	d.buf = d.buf.share()
	return d
}

// Rows returns the logical row count.
func (d Dense) Rows() int { return d.rows }

// Cols returns the logical column count.
func (d Dense) Cols() int { return d.cols }

// PRows returns the physical row stride (leading dimension) of the
// underlying column-major buffer.
func (d Dense) PRows() int { return d.prows }

// Raw returns the flat column-major storage backing d, for kernels that
// need direct stride arithmetic.
// The returned slice aliases d's buffer; callers must not resize it.
func (d Dense) Raw() []float64 { return d.buf.data }

// SetCoW switches d to copy-on-write: writes through d only materialize a
// private copy if d's buffer is shared.
func (d *Dense) SetCoW() { d.policy = CoW }

// SetWiP switches d to write-in-place: writes through d always mutate the
// shared buffer, visible to every alias.
func (d *Dense) SetWiP() { d.policy = WiP }

func (d Dense) index(i, j int) int {
	return d.offset + j*d.prows + i
}

// At returns the element at (i, j).
func (d Dense) At(i, j int) float64 {
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		panic(ErrIndex)
	}
	return d.buf.data[d.index(i, j)]
}

// materialize ensures d owns a private, exactly rows×cols buffer before a
// write, per the CoW policy: CoW copies only if the buffer is shared;
// WiP never copies.
func (d *Dense) materialize() {
	if d.policy == WiP {
		return
	}
	if d.buf.exclusive() {
		return
	}
	fresh := newBuffer(d.rows * d.cols)
	for j := 0; j < d.cols; j++ {
		for i := 0; i < d.rows; i++ {
			fresh.data[j*d.rows+i] = d.buf.data[d.index(i, j)]
		}
	}
	d.buf = fresh
	d.prows = d.rows
	d.offset = 0
}

// Set writes v to element (i, j), materializing a private copy first if
// d's CoW policy and buffer sharing require it.
func (d *Dense) Set(i, j int, v float64) {
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		panic(ErrIndex)
	}
	d.materialize()
	d.buf.data[d.index(i, j)] = v
}

// Copy forces d to become the exclusive owner of a private buffer sized
// exactly rows×cols, regardless of policy. It is the explicit counterpart
// of the CoW check inside Set, used by algorithms (inverse iteration) that
// need a guaranteed-private scratch copy before
// repeated in-place mutation.
func (d *Dense) Copy() {
	fresh := newBuffer(d.rows * d.cols)
	for j := 0; j < d.cols; j++ {
		for i := 0; i < d.rows; i++ {
			fresh.data[j*d.rows+i] = d.buf.data[d.index(i, j)]
		}
	}
	d.buf = fresh
	d.prows = d.rows
	d.offset = 0
}

// View returns a matrix aliasing d's buffer over the window
// [i, i+r) × [j, j+c). The view defaults to CoW unless wip is true.
func (d Dense) View(i, j, r, c int, wip ...bool) Dense {
	if i < 0 || j < 0 || r < 0 || c < 0 || i+r > d.rows || j+c > d.cols {
		panic(ErrIndex)
	}
	v := Dense{
		rows: r, cols: c,
		prows:  d.prows,
		offset: d.offset + j*d.prows + i,
		policy: CoW,
		buf:    d.buf.share(),
	}
	if len(wip) > 0 && wip[0] {
		v.policy = WiP
	}
	return v
}

// VecView returns a single-column view of column col, CoW unless wip is true.
func (d Dense) VecView(col int, wip ...bool) Dense {
	return d.View(0, col, d.rows, 1, wip...)
}

// ViewOriginal expands the logical shape back to (prows, pcols) of the
// underlying storage, recovering the full parent matrix from any window
// into it.
func (d Dense) ViewOriginal() Dense {
	pcols := len(d.buf.data) / d.prows
	return Dense{
		rows: d.prows, cols: pcols,
		prows:  d.prows,
		offset: 0,
		policy: d.policy,
		buf:    d.buf.share(),
	}
}

// Pipe copies src's elements into d's window. d and src must have identical
// shape; src's own sharing topology is left untouched.
func (d *Dense) Pipe(src Dense) {
	if d.rows != src.rows || d.cols != src.cols {
		panic(ErrShape)
	}
	d.materialize()
	for j := 0; j < d.cols; j++ {
		for i := 0; i < d.rows; i++ {
			d.buf.data[d.index(i, j)] = src.At(i, j)
		}
	}
}

// RandomFill fills every element with scale*U[0,1) samples drawn from src.
func (d *Dense) RandomFill(scale float64, src interface{ Float64() float64 }) {
	d.materialize()
	for j := 0; j < d.cols; j++ {
		for i := 0; i < d.rows; i++ {
			d.buf.data[d.index(i, j)] = scale * src.Float64()
		}
	}
}
