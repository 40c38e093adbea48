package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name         string
		width        int
		height       int
		wantSidebar  int
		wantContent  int
		wantBody     int
		wantTopics   int
		wantCarousel int
	}{
		{
			name:         "standard layout",
			width:        100,
			height:       40,
			wantSidebar:  25,
			wantContent:  75,
			wantBody:     36, // 40 - 3 (input) - 1 (help)
			wantTopics:   18,
			wantCarousel: 18,
		},
		{
			name:         "odd body height gives the extra line to the carousel",
			width:        80,
			height:       25,
			wantSidebar:  25,
			wantContent:  55,
			wantBody:     21,
			wantTopics:   10,
			wantCarousel: 11,
		},
		{
			name:         "narrow terminal shrinks the sidebar",
			width:        40,
			height:       21,
			wantSidebar:  20, // 40 - min content width
			wantContent:  20,
			wantBody:     17,
			wantTopics:   8,
			wantCarousel: 9,
		},
		{
			name:         "very small terminal respects minimums",
			width:        10,
			height:       5,
			wantSidebar:  0,
			wantContent:  10,
			wantBody:     6, // two minimum panels
			wantTopics:   3,
			wantCarousel: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Calculate(tt.width, tt.height)

			assert.Equal(t, tt.width, l.TotalWidth, "TotalWidth")
			assert.Equal(t, tt.height, l.TotalHeight, "TotalHeight")
			assert.Equal(t, tt.wantSidebar, l.SidebarWidth, "SidebarWidth")
			assert.Equal(t, tt.wantContent, l.ContentWidth, "ContentWidth")
			assert.Equal(t, tt.wantBody, l.BodyHeight, "BodyHeight")
			assert.Equal(t, tt.wantTopics, l.TopicsHeight, "TopicsHeight")
			assert.Equal(t, tt.wantCarousel, l.CarouselHeight, "CarouselHeight")
			assert.Equal(t, CommandInputHeight, l.InputHeight, "InputHeight")
			assert.Equal(t, HelpBarHeight, l.HelpHeight, "HelpHeight")
		})
	}
}

func TestLayoutBounds(t *testing.T) {
	l := Calculate(100, 40)

	t.Run("TopicsBounds", func(t *testing.T) {
		x, y, width, height := l.TopicsBounds()
		assert.Equal(t, 0, x)
		assert.Equal(t, 0, y)
		assert.Equal(t, l.SidebarWidth, width)
		assert.Equal(t, l.TopicsHeight, height)
	})

	t.Run("CarouselBounds", func(t *testing.T) {
		x, y, width, height := l.CarouselBounds()
		assert.Equal(t, 0, x)
		assert.Equal(t, l.TopicsHeight, y)
		assert.Equal(t, l.SidebarWidth, width)
		assert.Equal(t, l.CarouselHeight, height)
	})

	t.Run("ContentBounds", func(t *testing.T) {
		x, y, width, height := l.ContentBounds()
		assert.Equal(t, l.SidebarWidth, x)
		assert.Equal(t, 0, y)
		assert.Equal(t, l.ContentWidth, width)
		assert.Equal(t, l.BodyHeight, height)
	})

	t.Run("CommandInputBounds", func(t *testing.T) {
		x, y, width, height := l.CommandInputBounds()
		assert.Equal(t, 0, x)
		assert.Equal(t, l.BodyHeight, y)
		assert.Equal(t, l.TotalWidth, width)
		assert.Equal(t, CommandInputHeight, height)
	})

	t.Run("HelpBarBounds", func(t *testing.T) {
		_, y, width, height := l.HelpBarBounds()
		assert.Equal(t, 39, y)
		assert.Equal(t, l.TotalWidth, width)
		assert.Equal(t, 1, height)
	})
}

func TestInnerDimensions(t *testing.T) {
	t.Run("InnerWidth", func(t *testing.T) {
		assert.Equal(t, 48, InnerWidth(50, 1)) // 50 - 2*1
		assert.Equal(t, 46, InnerWidth(50, 2)) // 50 - 2*2
	})

	t.Run("InnerHeight", func(t *testing.T) {
		assert.Equal(t, 28, InnerHeight(30, 1))
	})

	t.Run("InnerWidth handles zero", func(t *testing.T) {
		assert.Equal(t, 0, InnerWidth(2, 2)) // max(2-4, 0) = 0
	})
}
