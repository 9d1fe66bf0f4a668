package game

import (
	"strings"

	"github.com/ratel-online/domino/consts"
)

type Side int

const (
	SideAny Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "any"
	}
}

func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any":
		return SideAny, nil
	case "l", "left":
		return SideLeft, nil
	case "r", "right":
		return SideRight, nil
	}
	return SideAny, consts.ErrorsInvalidSide
}
