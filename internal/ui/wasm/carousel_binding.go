//go:build js && wasm

package wasm

import (
	"strconv"
	"syscall/js"

	"github.com/Its-donkey/archambeau-site/internal/ui/carousel"
	"github.com/Its-donkey/archambeau-site/internal/ui/content"
)

const (
	selVideoCarousel = ".video-carousel"
	selSlide         = ".carousel-slide"
	selDot           = ".carousel-dot"
	selPrev          = ".carousel-prev"
	selNext          = ".carousel-next"
)

// carouselController binds the media carousel markup to a carousel.State.
// bind may run any number of times; each call drops the previous listeners.
type carouselController struct {
	state     carousel.State
	track     js.Value
	slides    []js.Value
	dots      []js.Value
	listeners binding
}

var carouselCtl = &carouselController{}

func (c *carouselController) bind() {
	c.listeners.release()
	if !querySelector(selVideoCarousel).Truthy() {
		return
	}

	c.track = querySelector(content.SelCarouselTrack)
	c.slides = collect(Document.Call("querySelectorAll", selSlide))
	c.dots = collect(Document.Call("querySelectorAll", selDot))
	c.state = carousel.New(len(c.slides))
	consoleLog("log", "Initializing carousel with", len(c.slides), "slides")

	prev := querySelector(selPrev)
	next := querySelector(selNext)
	dotsContainer := querySelector(content.SelCarouselDots)
	visible := c.state.NavigationVisible()
	for _, node := range []js.Value{prev, next, dotsContainer} {
		setDisplay(node, visible)
	}
	if !visible {
		c.render()
		return
	}

	c.listeners.on(prev, "click", func(this js.Value, args []js.Value) any {
		c.show(c.state.Prev())
		return nil
	})
	c.listeners.on(next, "click", func(this js.Value, args []js.Value) any {
		c.show(c.state.Next())
		return nil
	})
	for i, dot := range c.dots {
		index := i
		if raw := dot.Get("dataset").Get("slide"); raw.Type() == js.TypeString {
			if n, err := strconv.Atoi(raw.String()); err == nil {
				index = n
			}
		}
		c.listeners.on(dot, "click", func(this js.Value, args []js.Value) any {
			c.show(c.state.Goto(index))
			return nil
		})
	}
	c.render()
}

func (c *carouselController) show(next carousel.State) {
	c.state = next
	c.render()
}

func (c *carouselController) render() {
	if c.track.Truthy() {
		c.track.Get("style").Set("transform", c.state.TrackTransform())
	}
	for i, slide := range c.slides {
		slide.Get("classList").Call("toggle", "active", c.state.Active(i))
	}
	for i, dot := range c.dots {
		dot.Get("classList").Call("toggle", "active", c.state.Active(i))
	}
}

func collect(list js.Value) []js.Value {
	var out []js.Value
	forEachNode(list, func(node js.Value) {
		out = append(out, node)
	})
	return out
}

func setDisplay(node js.Value, visible bool) {
	if !node.Truthy() {
		return
	}
	if visible {
		node.Get("style").Set("display", "")
		return
	}
	node.Get("style").Set("display", "none")
}
