package matrix

// maxRowEntries bounds the number of nonzeros per row of a Sparse matrix
// (spec.md §4.3's row budget). It exists so a row can be stored as a flat
// array instead of a growable slice.
const maxRowEntries = 25

type sparseEntry struct {
	column int
	datum  float64
}

type sparseRow struct {
	used    int
	entries [maxRowEntries]sparseEntry
}

// Sparse is a row-bounded sparse matrix: each row holds at most
// maxRowEntries nonzero entries, appended in column order by Append. It is
// built for one thing, repeated A*v products inside Arnoldi/GMRES, and isn't a
// general-purpose sparse type; anything else should go through Dense via
// Densify.
type Sparse struct {
	rows, cols int
	data       []sparseRow
}

// NewSparse allocates an empty rows x cols sparse matrix.
func NewSparse(rows, cols int) Sparse {
	if rows <= 0 || cols <= 0 {
		panic(ErrShape)
	}
	return Sparse{rows: rows, cols: cols, data: make([]sparseRow, rows)}
}

func (s Sparse) Rows() int { return s.rows }
func (s Sparse) Cols() int { return s.cols }

// Append adds one nonzero entry (row, column, value) to the matrix. Entries
// within a row are expected in increasing column order, matching the
// original row_t's operator[]-as-append semantics; it panics if a row's
// budget of maxRowEntries is exceeded.
func (s *Sparse) Append(row, column int, value float64) {
	if row < 0 || row >= s.rows || column < 0 || column >= s.cols {
		panic(ErrIndex)
	}
	r := &s.data[row]
	if r.used >= maxRowEntries {
		panic(ErrRowBudget)
	}
	r.entries[r.used] = sparseEntry{column: column, datum: value}
	r.used++
}

// MulVec computes u = A*v for a column vector v, reading only the nonzero
// entries of each row. It is the only product this type supports; anything
// more general belongs on Dense.
func (s Sparse) MulVec(v Dense) Dense {
	v.requireColumnVector()
	if v.rows != s.cols {
		panic(ErrShape)
	}
	u := New(s.rows, 1)
	for i := 0; i < s.rows; i++ {
		row := &s.data[i]
		var sum float64
		for k := 0; k < row.used; k++ {
			e := row.entries[k]
			sum += e.datum * v.At(e.column, 0)
		}
		u.Set(i, 0, sum)
	}
	return u
}

// Densify materializes the sparse matrix as a Dense, for display or for
// algorithms (QR, Cholesky) that need the full factorization machinery.
func (s Sparse) Densify() Dense {
	d := New(s.rows, s.cols)
	for i := 0; i < s.rows; i++ {
		row := &s.data[i]
		for k := 0; k < row.used; k++ {
			e := row.entries[k]
			d.Set(i, e.column, e.datum)
		}
	}
	return d
}
