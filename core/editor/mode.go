package editor

import (
	"fmt"
	"strings"
)

// Mode is the active tool.
type Mode int

const (
	ModeVertex Mode = iota
	ModeEdge
	ModeDelete
)

// Modes lists every tool in panel order.
var Modes = []Mode{ModeVertex, ModeEdge, ModeDelete}

func (m Mode) String() string {
	switch m {
	case ModeVertex:
		return "VERTEX"
	case ModeEdge:
		return "EDGE"
	case ModeDelete:
		return "DELETE"
	default:
		return "UNKNOWN"
	}
}

// Short is the one-letter panel label.
func (m Mode) Short() string {
	switch m {
	case ModeVertex:
		return "V"
	case ModeEdge:
		return "E"
	case ModeDelete:
		return "D"
	default:
		return "?"
	}
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "v", "vertex":
		return ModeVertex, nil
	case "e", "edge":
		return ModeEdge, nil
	case "d", "delete":
		return ModeDelete, nil
	}
	return ModeVertex, fmt.Errorf("unknown mode %q (want vertex, edge or delete)", s)
}
