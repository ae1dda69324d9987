package depends

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/gps/graph"
	"github.com/katalvlaran/gps/labeled"
	"github.com/katalvlaran/gps/traversal"
)

// Depends is a dependency graph of named targets.
type Depends struct {
	g     *labeled.Graph[Rule, struct{}]
	index map[string]int // target name → vertex
	names []string       // vertex → target name
	opts  Options
}

// New returns an empty dependency graph.
func New(opts ...Option) *Depends {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Depends{
		g:     labeled.New[Rule, struct{}](graph.NewDirected()),
		index: make(map[string]int),
		names: []string{""},
		opts:  o,
	}
}

// AddRule records r, merging it with any earlier rule for r.Target.
// Repeated prerequisites are kept once, at their first position.
// The graph is unchanged when an error is returned.
func (d *Depends) AddRule(r Rule) error {
	if r.Target == "" || slices.Contains(r.Prereqs, "") {
		return ErrEmptyTarget
	}

	merged := Rule{Target: r.Target}
	if v, ok := d.index[r.Target]; ok {
		if prev, ok := d.g.Label(v); ok {
			if len(prev.Commands) > 0 && len(r.Commands) > 0 {
				return fmt.Errorf("%w: %s", ErrDuplicateRule, r.Target)
			}
			merged = prev
		}
	}
	merged.Prereqs = slices.Clone(merged.Prereqs)
	if len(r.Commands) > 0 {
		merged.Commands = slices.Clone(r.Commands)
	}

	v := d.vertex(r.Target)
	for _, p := range r.Prereqs {
		u := d.vertex(p)
		if d.g.ContainsEdge(v, u) {
			continue
		}
		if _, err := d.g.AddEdge(v, u); err != nil {
			return err
		}
		merged.Prereqs = append(merged.Prereqs, p)
	}

	return d.g.SetLabel(v, merged)
}

// vertex returns the vertex for name, creating an unlabeled one if needed.
func (d *Depends) vertex(name string) int {
	if v, ok := d.index[name]; ok {
		return v
	}
	v := d.g.Add()
	d.index[name] = v
	for len(d.names) <= v {
		d.names = append(d.names, "")
	}
	d.names[v] = name

	return v
}

// Rule returns the merged rule for target, if one was added.
func (d *Depends) Rule(target string) (Rule, bool) {
	v, ok := d.index[target]
	if !ok {
		return Rule{}, false
	}

	return d.g.Label(v)
}

// Targets returns the targets that have rules, in the order first named.
func (d *Depends) Targets() []string {
	var out []string
	for v := range d.g.Vertices() {
		if _, ok := d.g.Label(v); ok {
			out = append(out, d.names[v])
		}
	}

	return out
}

// Prereqs returns every name target depends on directly, including those
// without rules.
func (d *Depends) Prereqs(target string) ([]string, error) {
	v, ok := d.index[target]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTarget, target)
	}
	var out []string
	for u := range d.g.Successors(v) {
		out = append(out, d.names[u])
	}

	return out, nil
}

// BuildOrder returns target and everything it depends on, prerequisites
// first and target last. Names without rules are included.
func (d *Depends) BuildOrder(target string) ([]string, error) {
	root, ok := d.index[target]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTarget, target)
	}

	ids, err := traversal.AcyclicPostOrder(d.g, []int{root}, traversal.WithLogger(d.opts.Logger))
	var ce *traversal.CycleError
	if errors.As(err, &ce) {
		return nil, fmt.Errorf("%w: %s depends on %s", ErrCycle, d.names[ce.From], d.names[ce.Vertex])
	}
	if err != nil {
		return nil, err
	}

	order := make([]string, len(ids))
	for i, v := range ids {
		order[i] = d.names[v]
	}

	return order, nil
}
