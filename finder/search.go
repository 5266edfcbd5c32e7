package finder

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/route"
)

// ctxCheckMask sets how often (in steps) the context is polled.
const ctxCheckMask = 1<<10 - 1

// frame is one level of the explicit search stack.
type frame struct {
	nbrs [4]grid.Coordinate // Surrounding() of the frame's cell
	next int                // index into nbrs of the next neighbour to try
}

// searcher encapsulates state during one search. buf is the current partial
// path; counts mirrors its per-cell occurrences and covered the number of
// distinct required cells in buf.
type searcher struct {
	f       *Finder
	goal    grid.Coordinate
	log     *zap.Logger
	buf     []grid.Coordinate
	counts  map[grid.Coordinate]int
	covered int
	stack   []frame
}

func newSearcher(f *Finder, goal grid.Coordinate, log *zap.Logger) *searcher {
	return &searcher{
		f:      f,
		goal:   goal,
		log:    log,
		buf:    make([]grid.Coordinate, 0, f.available.Len()),
		counts: make(map[grid.Coordinate]int, f.available.Len()),
		stack:  make([]frame, 0, f.available.Len()),
	}
}

// run drives the depth-first enumeration from start until the stack drains
// or an abort condition fires.
func (s *searcher) run(start grid.Coordinate) error {
	if err := s.push(start); err != nil {
		return err
	}

	for len(s.stack) > 0 {
		top := &s.stack[len(s.stack)-1]
		if top.next == len(top.nbrs) {
			s.pop()
			continue
		}
		n := top.nbrs[top.next]
		top.next++

		if !s.f.available.Contains(n) {
			s.f.stats.Pruned++
			continue
		}
		if !s.admit(n) {
			s.f.stats.Rejected++
			continue
		}
		if err := s.push(n); err != nil {
			return err
		}
	}

	return nil
}

// admit applies the duplicate policy to n against the current partial path.
func (s *searcher) admit(n grid.Coordinate) bool {
	if s.f.duplicates.Contains(n) {
		return s.counts[n] <= s.f.limit
	}

	return s.counts[n] == 0
}

// push extends the partial path with c. A path ending at the goal is
// evaluated and immediately popped so it is never extended.
func (s *searcher) push(c grid.Coordinate) error {
	st := &s.f.stats
	st.Steps++
	if s.f.opts.MaxSteps > 0 && st.Steps > s.f.opts.MaxSteps {
		return fmt.Errorf("%w: %d steps", ErrStepBudgetExceeded, s.f.opts.MaxSteps)
	}
	if st.Steps&ctxCheckMask == 0 {
		select {
		case <-s.f.opts.Ctx.Done():
			return s.f.opts.Ctx.Err()
		default:
		}
	}

	s.buf = append(s.buf, c)
	s.counts[c]++
	if s.counts[c] == 1 && s.f.required.Contains(c) {
		s.covered++
	}
	s.stack = append(s.stack, frame{nbrs: c.Surrounding()})
	if len(s.buf) > st.MaxDepth {
		st.MaxDepth = len(s.buf)
	}

	if c != s.goal {
		return nil
	}

	st.Completed++
	err := s.accept()
	s.pop()

	return err
}

// accept records the current path if it satisfies the coverage policy.
func (s *searcher) accept() error {
	if s.f.requireFull && s.covered != s.f.required.Len() {
		return nil
	}

	p := route.New(s.buf...)
	s.f.paths = append(s.f.paths, p)
	s.f.stats.Accepted++
	if ce := s.log.Check(zap.DebugLevel, "path accepted"); ce != nil {
		ce.Write(zap.Int("length", p.Len()), zap.Int("index", len(s.f.paths)-1))
	}

	if s.f.opts.OnAccept != nil {
		if err := s.f.opts.OnAccept(p.Clone()); err != nil {
			return fmt.Errorf("finder: OnAccept hook: %w", err)
		}
	}

	return nil
}

// pop removes the top frame and its cell from the partial path.
func (s *searcher) pop() {
	last := len(s.buf) - 1
	c := s.buf[last]
	s.counts[c]--
	if s.counts[c] == 0 {
		delete(s.counts, c)
		if s.f.required.Contains(c) {
			s.covered--
		}
	}
	s.buf = s.buf[:last]
	s.stack = s.stack[:len(s.stack)-1]
}
