package ui

// Area is the region of the screen that receives keys.
type Area int

const (
	AreaPlot Area = iota
	AreaMenu
)

func (a Area) String() string {
	switch a {
	case AreaPlot:
		return "Plot"
	case AreaMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}
