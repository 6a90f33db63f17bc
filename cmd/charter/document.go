package main

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/Duccs/Math-Charter/tessellate"
)

// Document describes a plot of one or more curves.
//
//	view: {minx: -10, maxx: 10, miny: -10, maxy: 10}
//	size: {width: 800, height: 600}
//	background: white
//	curves:
//	  - expr: sin(x)
//	    color: "#ff0000"
//	    width: 2
type Document struct {
	View       Window  `yaml:"view"`
	Size       Size    `yaml:"size"`
	Background string  `yaml:"background"`
	Curves     []Curve `yaml:"curves"`
}

// Window is the region of the plane a document shows.
type Window struct {
	MinX float32 `yaml:"minx"`
	MaxX float32 `yaml:"maxx"`
	MinY float32 `yaml:"miny"`
	MaxY float32 `yaml:"maxy"`
}

func (w Window) view() tessellate.View {
	return tessellate.View{MinX: w.MinX, MaxX: w.MaxX, MinY: w.MinY, MaxY: w.MaxY}
}

// Size is the output size in pixels.
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Curve is a single expression to plot.
type Curve struct {
	Expr  string  `yaml:"expr"`
	Color string  `yaml:"color"`
	Width float32 `yaml:"width"`
}

// palette colours curves that don't name their own.
var palette = [...]string{"royalblue", "crimson", "forestgreen", "darkorange", "purple", "teal"}

func defaultDocument() Document {
	return Document{
		View:       Window{MinX: -10, MaxX: 10, MinY: -10, MaxY: 10},
		Size:       Size{Width: 800, Height: 600},
		Background: "white",
	}
}

func window(v tessellate.View) Window {
	return Window{MinX: v.MinX, MaxX: v.MaxX, MinY: v.MinY, MaxY: v.MaxY}
}

// newDocument creates a document plotting exprs with default styles.
func newDocument(exprs []string, view tessellate.View, size [2]int) *Document {
	doc := defaultDocument()
	doc.View = window(view)
	doc.Size = Size{Width: size[0], Height: size[1]}
	for _, e := range exprs {
		doc.Curves = append(doc.Curves, Curve{Expr: e})
	}
	doc.fill()
	return &doc
}

func loadDocument(name string) (*Document, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "opening plot document")
	}
	defer f.Close()
	doc, err := LoadDocument(f)
	return doc, errors.Wrapf(err, "loading %s", name)
}

// LoadDocument decodes a YAML plot document. Fields left out take their
// defaults. Unknown fields are an error.
func LoadDocument(r io.Reader) (*Document, error) {
	doc := defaultDocument()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decoding plot document")
	}
	if !doc.View.view().Valid() {
		return nil, errors.Errorf("view %+v has no area", doc.View)
	}
	if doc.Size.Width <= 0 || doc.Size.Height <= 0 {
		return nil, errors.Errorf("size %dx%d must be positive", doc.Size.Width, doc.Size.Height)
	}
	if _, err := parseColor(doc.Background); err != nil {
		return nil, errors.Wrap(err, "background")
	}
	for i, c := range doc.Curves {
		if strings.TrimSpace(c.Expr) == "" {
			return nil, errors.Errorf("curve %d has no expression", i)
		}
		if c.Color == "" {
			continue
		}
		if _, err := parseColor(c.Color); err != nil {
			return nil, errors.Wrapf(err, "curve %d", i)
		}
	}
	doc.fill()
	return &doc, nil
}

// override replaces the document's view and size with the ones given on the
// command line. set holds the names of the flags that were given.
func (d *Document) override(set map[string]bool, view tessellate.View, size [2]int) {
	if set["view"] {
		d.View = window(view)
	}
	if set["size"] {
		d.Size = Size{Width: size[0], Height: size[1]}
	}
}

// fill gives curves without a colour or width their defaults.
func (d *Document) fill() {
	for i := range d.Curves {
		c := &d.Curves[i]
		if c.Color == "" {
			c.Color = palette[i%len(palette)]
		}
		if c.Width <= 0 {
			c.Width = 2
		}
	}
}

// parseColor parses a colour name from the SVG 1.1 set or a #rrggbb hex
// triple.
func parseColor(s string) (color.RGBA, error) {
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("unknown color %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// hex renders a colour for SVG styles.
func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
