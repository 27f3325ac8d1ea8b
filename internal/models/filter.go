package models

import (
	"fmt"
	"strings"
)

// FilterState selects which pins are visible on the map
type FilterState int

const (
	ShowAll FilterState = iota
	ShowFavoritesOnly
)

// ParseFilterState accepts "all" or "favorites"
func ParseFilterState(s string) (FilterState, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all", "":
		return ShowAll, nil
	case "favorites", "favorites_only":
		return ShowFavoritesOnly, nil
	}
	return ShowAll, fmt.Errorf("unknown filter state %q", s)
}

func (f FilterState) String() string {
	if f == ShowFavoritesOnly {
		return "favorites"
	}
	return "all"
}

func (f FilterState) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *FilterState) UnmarshalText(b []byte) error {
	state, err := ParseFilterState(string(b))
	if err != nil {
		return err
	}
	*f = state
	return nil
}
