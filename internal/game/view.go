package game

import "fmt"

// View selects how the viewport is framed on each render.
type View int

const (
	// Centered frames the live cells' midpoint and ignores scroll.
	Centered View = iota
	// Fixed frames origin plus scroll and never tracks the pattern.
	Fixed
	// Follow frames the live cells' midpoint offset by scroll.
	Follow
)

var viewNames = map[View]string{
	Centered: "centered",
	Fixed:    "fixed",
	Follow:   "follow",
}

// Views lists every view mode in declaration order.
func Views() []View { return []View{Centered, Fixed, Follow} }

func ParseView(s string) (View, error) {
	for v, name := range viewNames {
		if name == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: invalid value for view '%s'", ErrUnknownView, s)
}

func (v View) Valid() bool {
	_, ok := viewNames[v]
	return ok
}

func (v View) String() string {
	if name, ok := viewNames[v]; ok {
		return name
	}
	return fmt.Sprintf("View(%d)", int(v))
}

func (v View) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownView, int(v))
	}
	return []byte(v.String()), nil
}

func (v *View) UnmarshalText(text []byte) error {
	parsed, err := ParseView(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
