package depends_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gps/depends"
)

type DependsSuite struct {
	suite.Suite
	d *depends.Depends
}

// SetupTest builds
//
//	all: prog docs
//	prog: main.o util.o
//	main.o: main.c util.h
//	util.o: util.c util.h
//	docs: README
func (s *DependsSuite) SetupTest() {
	s.d = depends.New()
	for _, r := range []depends.Rule{
		{Target: "all", Prereqs: []string{"prog", "docs"}},
		{Target: "prog", Prereqs: []string{"main.o", "util.o"}, Commands: []string{"cc -o prog main.o util.o"}},
		{Target: "main.o", Prereqs: []string{"main.c", "util.h"}, Commands: []string{"cc -c main.c"}},
		{Target: "util.o", Prereqs: []string{"util.c", "util.h"}, Commands: []string{"cc -c util.c"}},
		{Target: "docs", Prereqs: []string{"README"}},
	} {
		s.Require().NoError(s.d.AddRule(r))
	}
}

func (s *DependsSuite) TestBuildOrder() {
	order, err := s.d.BuildOrder("all")
	s.Require().NoError(err)
	want := []string{"main.c", "util.h", "main.o", "util.c", "util.o", "prog", "README", "docs", "all"}
	if diff := cmp.Diff(want, order); diff != "" {
		s.T().Fatalf("build order mismatch (-want +got):\n%s", diff)
	}
}

func (s *DependsSuite) TestBuildOrder_Subtarget() {
	order, err := s.d.BuildOrder("util.o")
	s.Require().NoError(err)
	s.Equal([]string{"util.c", "util.h", "util.o"}, order)

	order, err = s.d.BuildOrder("README")
	s.Require().NoError(err)
	s.Equal([]string{"README"}, order)
}

func (s *DependsSuite) TestBuildOrder_Unknown() {
	_, err := s.d.BuildOrder("clean")
	s.ErrorIs(err, depends.ErrUnknownTarget)
	_, err = s.d.Prereqs("clean")
	s.ErrorIs(err, depends.ErrUnknownTarget)
}

func (s *DependsSuite) TestTargets() {
	s.Equal([]string{"all", "prog", "docs", "main.o", "util.o"}, s.d.Targets())
}

func (s *DependsSuite) TestRuleAndPrereqs() {
	r, ok := s.d.Rule("prog")
	s.True(ok)
	s.Equal([]string{"main.o", "util.o"}, r.Prereqs)
	s.Equal([]string{"cc -o prog main.o util.o"}, r.Commands)

	_, ok = s.d.Rule("main.c")
	s.False(ok, "a bare prerequisite has no rule")

	p, err := s.d.Prereqs("main.o")
	s.Require().NoError(err)
	s.Equal([]string{"main.c", "util.h"}, p)
}

func (s *DependsSuite) TestMergeRules() {
	s.Require().NoError(s.d.AddRule(depends.Rule{Target: "prog", Prereqs: []string{"util.o", "lib.a"}}))
	r, _ := s.d.Rule("prog")
	s.Equal([]string{"main.o", "util.o", "lib.a"}, r.Prereqs)
	s.Equal([]string{"cc -o prog main.o util.o"}, r.Commands)

	err := s.d.AddRule(depends.Rule{Target: "prog", Commands: []string{"ld"}})
	s.ErrorIs(err, depends.ErrDuplicateRule)

	// commands may arrive after a command-less rule
	s.Require().NoError(s.d.AddRule(depends.Rule{Target: "all", Commands: []string{"echo done"}}))
	r, _ = s.d.Rule("all")
	s.Equal([]string{"prog", "docs"}, r.Prereqs)
	s.Equal([]string{"echo done"}, r.Commands)
}

func (s *DependsSuite) TestCycle() {
	s.Require().NoError(s.d.AddRule(depends.Rule{Target: "util.h", Prereqs: []string{"prog"}}))
	_, err := s.d.BuildOrder("all")
	s.Require().ErrorIs(err, depends.ErrCycle)
	s.Contains(err.Error(), "util.h depends on prog")

	// util.c does not reach the cycle
	order, err := s.d.BuildOrder("util.c")
	s.Require().NoError(err)
	s.Equal([]string{"util.c"}, order)
}

func TestDependsSuite(t *testing.T) {
	suite.Run(t, new(DependsSuite))
}

func TestAddRule_EmptyNames(t *testing.T) {
	d := depends.New()
	assert.ErrorIs(t, d.AddRule(depends.Rule{}), depends.ErrEmptyTarget)
	assert.ErrorIs(t, d.AddRule(depends.Rule{Target: "x", Prereqs: []string{""}}), depends.ErrEmptyTarget)
	assert.Empty(t, d.Targets())
}

func TestBuildOrder_SelfLoop(t *testing.T) {
	d := depends.New()
	require.NoError(t, d.AddRule(depends.Rule{Target: "x", Prereqs: []string{"x"}}))
	_, err := d.BuildOrder("x")
	assert.ErrorIs(t, err, depends.ErrCycle)
	assert.Contains(t, err.Error(), "x")
}

func TestBuildOrder_SharedPrereqOnce(t *testing.T) {
	d := depends.New()
	require.NoError(t, d.AddRule(depends.Rule{Target: "a", Prereqs: []string{"b", "c"}}))
	require.NoError(t, d.AddRule(depends.Rule{Target: "b", Prereqs: []string{"c"}}))
	order, err := d.BuildOrder("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, order)
}

func TestBuildOrder_Logger(t *testing.T) {
	var buf bytes.Buffer
	d := depends.New(depends.WithLogger(log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})))
	require.NoError(t, d.AddRule(depends.Rule{Target: "a", Prereqs: []string{"b"}}))
	_, err := d.BuildOrder("a")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "post-visit")
}
