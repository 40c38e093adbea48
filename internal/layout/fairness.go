package layout

// Category is one named list sharing a height budget with others.
type Category[T any] struct {
	Name  string
	Items []T
}

// Section is the visible head of a category and the count left out.
type Section[T any] struct {
	Name      string
	Visible   []T
	Remaining int
}

// Truncated reports whether the section needs a "more" line.
func (s Section[T]) Truncated() bool {
	return s.Remaining > 0
}

// Fair shrinks categories until their items plus one indicator line per
// truncated category fit in budget lines. The category with the most
// visible items loses items first, ties going to the earlier category. A
// category loses two items on its first truncation and one after that.
// Categories are never shrunk below one item by choice, so the result may
// still exceed the budget.
func Fair[T any](categories []Category[T], budget int) []Section[T] {
	sections := make([]Section[T], len(categories))
	for i, c := range categories {
		sections[i] = Section[T]{Name: c.Name, Visible: c.Items}
	}

	for linesUsed(sections) > budget {
		longest := -1
		for i, s := range sections {
			if len(s.Visible) > 1 && (longest == -1 || len(s.Visible) > len(sections[longest].Visible)) {
				longest = i
			}
		}
		if longest == -1 {
			break
		}

		s := &sections[longest]
		drop := 1
		if !s.Truncated() {
			drop = 2
		}
		items := categories[longest].Items
		s.Visible = items[:len(s.Visible)-drop]
		s.Remaining = len(items) - len(s.Visible)
	}
	return sections
}

func linesUsed[T any](sections []Section[T]) int {
	n := 0
	for _, s := range sections {
		n += len(s.Visible)
		if s.Truncated() {
			n++
		}
	}
	return n
}
