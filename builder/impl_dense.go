package builder

import "fmt"

const (
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	methodGrid              = "Grid"
	methodRandomSparse      = "RandomSparse"
	minCompleteNodes        = 1
	minGridSide             = 1
	minRandomSparseNodes    = 1
)

// Complete builds K_n (n >= 1). Undirected graphs get each pair once
// (i < j); directed graphs get both arcs, emitted in (i, j) row order.
func Complete(n int) Constructor {
	return func(b *Built, cfg config) error {
		if n < minCompleteNodes {
			return tooFew(methodComplete, "n", n, minCompleteNodes)
		}
		vs := b.addVertices(n)
		directed := b.Graph.Directed()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || (!directed && j < i) {
					continue
				}
				if err := b.addEdge(methodComplete, cfg, vs[i], vs[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// CompleteBipartite builds K_{n1,n2}: n1 left vertices, then n2 right ones,
// with every edge running left → right.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(b *Built, cfg config) error {
		if n1 < 1 {
			return tooFew(methodCompleteBipartite, "n1", n1, 1)
		}
		if n2 < 1 {
			return tooFew(methodCompleteBipartite, "n2", n2, 1)
		}
		left, right := b.addVertices(n1), b.addVertices(n2)
		for _, u := range left {
			for _, v := range right {
				if err := b.addEdge(methodCompleteBipartite, cfg, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid builds a rows×cols 4-neighbourhood lattice. Cell (r, c) is the
// (r*cols + c)-th new vertex; each cell emits its east edge, then its
// south edge.
func Grid(rows, cols int) Constructor {
	return func(b *Built, cfg config) error {
		if rows < minGridSide {
			return tooFew(methodGrid, "rows", rows, minGridSide)
		}
		if cols < minGridSide {
			return tooFew(methodGrid, "cols", cols, minGridSide)
		}
		vs := b.addVertices(rows * cols)
		at := func(r, c int) int { return vs[r*cols+c] }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := b.addEdge(methodGrid, cfg, at(r, c), at(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := b.addEdge(methodGrid, cfg, at(r, c), at(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// RandomSparse builds an Erdős-Rényi G(n, p) graph without self-loops:
// each candidate pair (each ordered pair when directed) is kept with
// probability p. p of exactly 0 or 1 needs no RNG.
func RandomSparse(n int, p float64) Constructor {
	return func(b *Built, cfg config) error {
		if n < minRandomSparseNodes {
			return tooFew(methodRandomSparse, "n", n, minRandomSparseNodes)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		vs := b.addVertices(n)
		directed := b.Graph.Directed()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || (!directed && j < i) {
					continue
				}
				keep := p == 1 || (p > 0 && cfg.rng.Float64() < p)
				if !keep {
					continue
				}
				if err := b.addEdge(methodRandomSparse, cfg, vs[i], vs[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
