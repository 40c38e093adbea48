// Package focus owns the single active input target and decides which
// consumer receives each keystroke.
package focus

import "github.com/avitaltamir/rostui/internal/source"

// Target identifies the pane that currently receives input.
type Target int

const (
	CommandInput Target = iota
	TopicList
	Carousel
)

// String returns the target name for the status bar.
func (t Target) String() string {
	switch t {
	case CommandInput:
		return "Command"
	case TopicList:
		return "Topics"
	case Carousel:
		return "Carousel"
	default:
		return "Unknown"
	}
}

// Slot is one pane of the carousel.
type Slot int

const (
	SlotNodes Slot = iota
	SlotPackages
	SlotServices
)

// Slots lists the carousel panes in display order.
var Slots = []Slot{SlotNodes, SlotPackages, SlotServices}

// String returns the slot title.
func (s Slot) String() string {
	switch s {
	case SlotNodes:
		return "Nodes"
	case SlotPackages:
		return "Packages"
	case SlotServices:
		return "Services"
	default:
		return "Unknown"
	}
}

// Kind returns the entity kind listed by the slot.
func (s Slot) Kind() source.Kind {
	switch s {
	case SlotPackages:
		return source.KindPackage
	case SlotServices:
		return source.KindService
	default:
		return source.KindNode
	}
}

// SlotFor returns the carousel slot that owns a kind.
func SlotFor(kind source.Kind) (Slot, bool) {
	for _, s := range Slots {
		if s.Kind() == kind {
			return s, true
		}
	}
	return 0, false
}

// KeyClass is the routing-relevant category of a keystroke.
type KeyClass int

const (
	KeyOther KeyClass = iota
	KeyTab
	KeyPrintable
	KeyNavigation
	KeySubmit
	KeyEdit
)

// Consumer is the outcome of routing one key.
type Consumer int

const (
	// ToCoordinator means the key only changed focus.
	ToCoordinator Consumer = iota
	ToCommandInput
	ToTopicList
	ToCarousel
)

// Coordinator holds the focus state machine.
type Coordinator struct {
	current  Target
	carousel int
}

// New creates a coordinator focused on the command input.
func New() *Coordinator {
	return &Coordinator{current: CommandInput}
}

// Current returns the active target.
func (c *Coordinator) Current() Target {
	return c.current
}

// Is reports whether target is active.
func (c *Coordinator) Is(target Target) bool {
	return c.current == target
}

// SetFocus activates target.
func (c *Coordinator) SetFocus(target Target) {
	c.current = target
}

// CarouselIndex returns the visible carousel slot index.
func (c *Coordinator) CarouselIndex() int {
	return c.carousel
}

// CarouselSlot returns the visible carousel slot.
func (c *Coordinator) CarouselSlot() Slot {
	return Slots[c.carousel]
}

// SlotActive reports whether slot is visible and the carousel has focus.
func (c *Coordinator) SlotActive(slot Slot) bool {
	return c.current == Carousel && Slots[c.carousel] == slot
}

// Next shows the next carousel slot, wrapping around.
func (c *Coordinator) Next() {
	c.carousel = (c.carousel + 1) % len(Slots)
}

// Prev shows the previous carousel slot, wrapping around.
func (c *Coordinator) Prev() {
	c.carousel = (c.carousel - 1 + len(Slots)) % len(Slots)
}

// Tab toggles between the topic list and the carousel.
// From the command input it moves to the topic list.
func (c *Coordinator) Tab() {
	if c.current == TopicList {
		c.current = Carousel
		return
	}
	c.current = TopicList
}

// FocusCarouselItem focuses the carousel on the slot owning kind.
// Kinds without a slot leave the state unchanged.
func (c *Coordinator) FocusCarouselItem(kind source.Kind) {
	slot, ok := SlotFor(kind)
	if !ok {
		return
	}
	for i, s := range Slots {
		if s == slot {
			c.carousel = i
		}
	}
	c.current = Carousel
}

// Route decides the single consumer of a key. A printable key received away
// from the command input switches focus and is still delivered to the
// command input, so the caller applies the edit in the same event.
func (c *Coordinator) Route(class KeyClass) Consumer {
	switch class {
	case KeyTab:
		c.Tab()
		return ToCoordinator
	case KeyPrintable:
		c.current = CommandInput
	}

	switch c.current {
	case TopicList:
		return ToTopicList
	case Carousel:
		return ToCarousel
	default:
		return ToCommandInput
	}
}
