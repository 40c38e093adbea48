package layout

// Layout constants
const (
	SidebarWidth       = 25
	MinContentWidth    = 20
	CommandInputHeight = 3
	HelpBarHeight      = 1
	MinPanelHeight     = 3
	// TopicsPercent is the share of the sidebar height given to the topic list
	TopicsPercent = 50
)

// Layout holds calculated dimensions for all panels.
type Layout struct {
	// Total terminal dimensions
	TotalWidth  int
	TotalHeight int

	// Column widths
	SidebarWidth int
	ContentWidth int

	// BodyHeight is the height of the sidebar and content pane
	BodyHeight int

	// Sidebar split
	TopicsHeight   int
	CarouselHeight int

	InputHeight int
	HelpHeight  int
}

// Calculate computes the layout dimensions based on terminal size.
// The sidebar keeps a fixed width unless the content pane would drop
// below its minimum width.
func Calculate(width, height int) Layout {
	l := Layout{
		TotalWidth:  width,
		TotalHeight: height,
		InputHeight: CommandInputHeight,
		HelpHeight:  HelpBarHeight,
	}

	l.SidebarWidth = SidebarWidth
	if width-l.SidebarWidth < MinContentWidth {
		l.SidebarWidth = max(width-MinContentWidth, 0)
	}
	l.ContentWidth = max(width-l.SidebarWidth, 0)

	l.BodyHeight = max(height-l.InputHeight-l.HelpHeight, MinPanelHeight*2)

	l.TopicsHeight = max(l.BodyHeight*TopicsPercent/100, MinPanelHeight)
	l.CarouselHeight = max(l.BodyHeight-l.TopicsHeight, MinPanelHeight)

	return l
}

// InnerWidth returns the inner width for content (excluding borders).
func InnerWidth(panelWidth int, borderWidth int) int {
	return max(panelWidth-borderWidth*2, 0)
}

// InnerHeight returns the inner height for content (excluding borders).
func InnerHeight(panelHeight int, borderHeight int) int {
	return max(panelHeight-borderHeight*2, 0)
}

// TopicsBounds returns the position and size of the topic list.
func (l Layout) TopicsBounds() (x, y, width, height int) {
	return 0, 0, l.SidebarWidth, l.TopicsHeight
}

// CarouselBounds returns the position and size of the carousel.
func (l Layout) CarouselBounds() (x, y, width, height int) {
	return 0, l.TopicsHeight, l.SidebarWidth, l.CarouselHeight
}

// ContentBounds returns the position and size of the main content pane.
func (l Layout) ContentBounds() (x, y, width, height int) {
	return l.SidebarWidth, 0, l.ContentWidth, l.BodyHeight
}

// CommandInputBounds returns the position and size of the command input.
func (l Layout) CommandInputBounds() (x, y, width, height int) {
	return 0, l.BodyHeight, l.TotalWidth, l.InputHeight
}

// HelpBarBounds returns the position and size of the key help line.
func (l Layout) HelpBarBounds() (x, y, width, height int) {
	return 0, l.BodyHeight + l.InputHeight, l.TotalWidth, l.HelpHeight
}
