package builder

import "fmt"

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minPathNodes  = 2
	minCycleNodes = 3
	minStarNodes  = 2
	minWheelNodes = 4
)

func tooFew(method, param string, n, lo int) error {
	return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, n, lo, ErrTooFewVertices)
}

// Path builds the path P_n (n >= 2) with edges v_i → v_{i+1}.
func Path(n int) Constructor {
	return func(b *Built, cfg config) error {
		if n < minPathNodes {
			return tooFew(methodPath, "n", n, minPathNodes)
		}
		vs := b.addVertices(n)
		for i := 0; i+1 < n; i++ {
			if err := b.addEdge(methodPath, cfg, vs[i], vs[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds the cycle C_n (n >= 3) with edges v_i → v_{(i+1) mod n}.
func Cycle(n int) Constructor {
	return func(b *Built, cfg config) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, "n", n, minCycleNodes)
		}
		vs := b.addVertices(n)
		for i := 0; i < n; i++ {
			if err := b.addEdge(methodCycle, cfg, vs[i], vs[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds a star on n >= 2 vertices. The first vertex is the center;
// edges run center → leaf.
func Star(n int) Constructor {
	return func(b *Built, cfg config) error {
		if n < minStarNodes {
			return tooFew(methodStar, "n", n, minStarNodes)
		}
		vs := b.addVertices(n)
		for _, leaf := range vs[1:] {
			if err := b.addEdge(methodStar, cfg, vs[0], leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel builds W_n (n >= 4): a center (first vertex) with spokes to a
// cycle over the remaining n-1 vertices. Rim edges come first, then spokes.
func Wheel(n int) Constructor {
	return func(b *Built, cfg config) error {
		if n < minWheelNodes {
			return tooFew(methodWheel, "n", n, minWheelNodes)
		}
		vs := b.addVertices(n)
		rim := vs[1:]
		for i := range rim {
			if err := b.addEdge(methodWheel, cfg, rim[i], rim[(i+1)%len(rim)]); err != nil {
				return err
			}
		}
		for _, r := range rim {
			if err := b.addEdge(methodWheel, cfg, vs[0], r); err != nil {
				return err
			}
		}

		return nil
	}
}
