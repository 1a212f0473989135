// Package editor turns pointer samples into graph mutations.
//
// The state is a tool mode plus one pending vertex slot shared by all modes.
// Step is a pure transition: it reads the graph, never writes it, and
// returns the next state with the mutations to apply. Machine owns a graph
// and applies those mutations once per tick.
package editor

import (
	"errors"
	"image/color"

	"gredit/core/graph"
	glog "gredit/internal/log"
)

// Sample is one pointer reading. Pointer is set while a gesture is sensed
// over the canvas, Hover whenever the pointer is over the canvas at all.
type Sample struct {
	Pointer   *graph.Point
	Primary   bool
	Secondary bool
	Hover     *graph.Point
}

// State is the tool mode and the pending (armed) vertex. A zero Pending
// means nothing is armed.
type State struct {
	Mode    Mode
	Pending graph.VertexID
}

func (s State) Armed() bool { return s.Pending.Valid() }

func (s State) arm(id graph.VertexID) State {
	s.Pending = id
	return s
}

func (s State) disarm() State {
	s.Pending = graph.VertexID{}
	return s
}

// WithMode switches tools. The pending slot carries over unless isolate is
// set, so a vertex armed in one mode becomes the anchor of the next.
func (s State) WithMode(m Mode, isolate bool) State {
	if isolate && m != s.Mode {
		s = s.disarm()
	}
	s.Mode = m
	return s
}

type Options struct {
	PickRadius  float64
	VertexColor color.Color
	EdgeColor   color.Color
	// ClearPendingOnModeSwitch disarms the pending vertex when the tool
	// changes instead of letting it leak into the next mode.
	ClearPendingOnModeSwitch bool
}

func DefaultOptions() Options {
	return Options{
		PickRadius:  DefaultPickRadius,
		VertexColor: color.White,
		EdgeColor:   color.White,
	}
}

// Step computes the transition for one sample.
func Step(st State, g graph.Reader, s Sample, opts Options) (State, []Mutation) {
	switch st.Mode {
	case ModeVertex:
		return stepVertex(st, g, s, opts)
	case ModeEdge:
		return stepEdge(st, g, s, opts)
	case ModeDelete:
		return stepDelete(st, g, s, opts)
	}
	return st, nil
}

func stepVertex(st State, g graph.Reader, s Sample, opts Options) (State, []Mutation) {
	var out []Mutation
	if s.Pointer != nil && s.Primary {
		switch {
		case st.Armed():
			// A click while armed only drops the vertex where it is.
			st = st.disarm()
		default:
			if id, ok := FindNear(g, *s.Pointer, opts.PickRadius); ok {
				st = st.arm(id)
			} else {
				out = append(out, AddVertex{Pos: *s.Pointer, Color: opts.VertexColor})
			}
		}
	}
	if st.Armed() && s.Hover != nil {
		out = append(out, MoveVertex{ID: st.Pending, Pos: *s.Hover})
	}
	return st, out
}

func stepEdge(st State, g graph.Reader, s Sample, opts Options) (State, []Mutation) {
	if s.Pointer == nil || !s.Primary {
		return st, nil
	}
	var out []Mutation
	found, ok := FindNear(g, *s.Pointer, opts.PickRadius)
	switch {
	case st.Armed():
		if ok {
			out = append(out, AddEdge{A: st.Pending, B: found, Color: opts.EdgeColor})
		}
		st = st.disarm()
	case ok:
		st = st.arm(found)
	}
	return st, out
}

func stepDelete(st State, g graph.Reader, s Sample, opts Options) (State, []Mutation) {
	if s.Pointer == nil {
		return st, nil
	}
	var out []Mutation
	found, ok := FindNear(g, *s.Pointer, opts.PickRadius)
	if s.Primary {
		switch {
		case st.Armed():
			if ok {
				if e, hit := g.FindEdge(st.Pending, found); hit {
					out = append(out, RemoveEdge{ID: e})
				}
			}
			st = st.disarm()
		case ok:
			st = st.arm(found)
		}
	}
	if s.Secondary && ok {
		out = append(out, RemoveVertex{ID: found})
	}
	return st, out
}

// Machine is the editing core. It is single-threaded: Tick must not be
// called concurrently with itself or with reads of the graph.
type Machine struct {
	graph  *graph.Graph
	state  State
	opts   Options
	logger *glog.Logger
}

func NewMachine(g *graph.Graph, mode Mode, opts Options, logger *glog.Logger) *Machine {
	if logger == nil {
		logger = glog.Discard()
	}
	if opts.PickRadius <= 0 {
		opts.PickRadius = DefaultPickRadius
	}
	if opts.VertexColor == nil {
		opts.VertexColor = color.White
	}
	if opts.EdgeColor == nil {
		opts.EdgeColor = color.White
	}
	return &Machine{
		graph:  g,
		state:  State{Mode: mode},
		opts:   opts,
		logger: logger,
	}
}

// Tick consumes one sample and applies the resulting mutations in order.
// Mutations that hit a stale handle are dropped; the rest are returned.
func (m *Machine) Tick(s Sample) []Mutation {
	prev := m.state
	next, muts := Step(m.state, m.graph, s, m.opts)
	m.state = next

	if prev.Pending != next.Pending {
		if next.Armed() {
			m.logger.Debugf("[EDITOR] %s: armed %s", next.Mode, next.Pending)
		} else {
			m.logger.Debugf("[EDITOR] %s: disarmed %s", next.Mode, prev.Pending)
		}
	}

	applied := muts[:0]
	for _, mut := range muts {
		if err := mut.Apply(m.graph); err != nil {
			if errors.Is(err, graph.ErrStaleHandle) {
				m.logger.Debugf("[EDITOR] dropped %s: %v", mut, err)
				continue
			}
			m.logger.Errorf("[EDITOR] %s: %v", mut, err)
			continue
		}
		if _, drag := mut.(MoveVertex); !drag {
			m.logger.Debugf("[EDITOR] %s: %s", next.Mode, mut)
		}
		applied = append(applied, mut)
	}
	return applied
}

func (m *Machine) SetMode(mode Mode) {
	if mode == m.state.Mode {
		return
	}
	prev := m.state.Mode
	m.state = m.state.WithMode(mode, m.opts.ClearPendingOnModeSwitch)
	m.logger.Infof("[EDITOR] mode %s", mode)
	if m.state.Armed() {
		m.logger.Warnf("[EDITOR] pending %s carried from %s into %s", m.state.Pending, prev, mode)
	}
}

func (m *Machine) Mode() Mode { return m.state.Mode }

func (m *Machine) State() State { return m.state }

// Pending returns the armed vertex, if any. The handle may be stale.
func (m *Machine) Pending() (graph.VertexID, bool) {
	return m.state.Pending, m.state.Armed()
}

func (m *Machine) Graph() *graph.Graph { return m.graph }

func (m *Machine) Options() Options { return m.opts }

func (m *Machine) Snapshot() graph.Snapshot { return m.graph.Snapshot() }
