package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	charter "github.com/Duccs/Math-Charter"
	"github.com/Duccs/Math-Charter/tessellate"
)

func main() {
	log.SetFlags(0)
	var (
		docname, svgname, pngname string
		tokens, postfix, strips   bool
		at                        []float32
	)
	view := tessellate.View{MinX: -10, MaxX: 10, MinY: -10, MaxY: 10}
	size := [2]int{800, 600}
	flag.StringVar(&docname, "doc", "", "YAML plot document")
	flag.StringVar(&svgname, "svg", "", "write a plot to an SVG file")
	flag.StringVar(&pngname, "png", "", "write a plot to a PNG file")
	flag.BoolVar(&tokens, "tokens", false, "print the tokens of each expression")
	flag.BoolVar(&postfix, "postfix", false, "print each expression in postfix order")
	flag.BoolVar(&strips, "strips", false, "print the vertex strips of each expression")
	flag.Func("at", "evaluate at `x` (any number of times)", func(s string) error {
		x, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return err
		}
		at = append(at, float32(x))
		return nil
	})
	flag.Func("view", "view window `minx,maxx,miny,maxy` (default -10,10,-10,10; overrides -doc)", func(s string) error {
		v, err := parseView(s)
		view = v
		return err
	})
	flag.Func("size", "plot size `WxH` in pixels (default 800x600; overrides -doc)", func(s string) error {
		w, h, err := parseSize(s)
		size = [2]int{w, h}
		return err
	})
	flag.Parse()
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	var doc *Document
	if docname != "" {
		d, err := loadDocument(docname)
		if err != nil {
			log.Fatal(err)
		}
		d.override(set, view, size)
		doc = d
	} else {
		exprs := flag.Args()
		if len(exprs) == 0 {
			var err error
			exprs, err = readLines(os.Stdin)
			if err != nil {
				log.Fatal(err)
			}
		}
		doc = newDocument(exprs, view, size)
	}

	for _, c := range doc.Curves {
		if tokens {
			if err := printTokens(os.Stdout, c.Expr); err != nil {
				log.Fatal(err)
			}
		}
		e := charter.Parse(c.Expr)
		if !e.Valid() {
			log.Fatalf("%q: %v", c.Expr, e.Err())
		}
		if postfix || !tokens && !strips && len(at) == 0 && svgname == "" && pngname == "" {
			fmt.Println(e.PostfixString())
		}
		for _, x := range at {
			fmt.Printf("%s at %s=%g: %g\n", c.Expr, e.Var(), x, e.Eval(x))
		}
		if strips {
			printStrips(os.Stdout, tessellate.Tessellate(e, doc.View.view()))
		}
	}

	if svgname != "" {
		if err := writeFile(svgname, doc, writeSVG); err != nil {
			log.Fatal(err)
		}
	}
	if pngname != "" {
		if err := writeFile(pngname, doc, writePNG); err != nil {
			log.Fatal(err)
		}
	}
}

func parseView(s string) (tessellate.View, error) {
	f := strings.Split(s, ",")
	if len(f) != 4 {
		return tessellate.View{}, fmt.Errorf("view must be minx,maxx,miny,maxy, not %q", s)
	}
	var v [4]float32
	for i, t := range f {
		x, err := strconv.ParseFloat(strings.TrimSpace(t), 32)
		if err != nil {
			return tessellate.View{}, err
		}
		v[i] = float32(x)
	}
	view := tessellate.View{MinX: v[0], MaxX: v[1], MinY: v[2], MaxY: v[3]}
	if !view.Valid() {
		return tessellate.View{}, fmt.Errorf("view %q has no area", s)
	}
	return view, nil
}

func parseSize(s string) (w, h int, err error) {
	d := strings.SplitN(s, "x", 2)
	if len(d) != 2 {
		return 0, 0, fmt.Errorf("size must be WxH, not %q", s)
	}
	if w, err = strconv.Atoi(d[0]); err != nil {
		return 0, 0, err
	}
	if h, err = strconv.Atoi(d[1]); err != nil {
		return 0, 0, err
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("size %q must be positive", s)
	}
	return w, h, nil
}

// readLines reads one expression per non-blank line.
func readLines(r io.Reader) ([]string, error) {
	var exprs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if t := strings.TrimSpace(sc.Text()); t != "" {
			exprs = append(exprs, t)
		}
	}
	return exprs, errors.Wrap(sc.Err(), "reading expressions")
}

func printTokens(w io.Writer, expr string) error {
	scan := charter.ScanString(expr)
	for {
		tok, err := scan.Next()
		if err != nil {
			return errors.Wrapf(err, "scanning %q", expr)
		}
		if tok.Type == charter.TokenEOF {
			return nil
		}
		fmt.Fprintf(w, "%d:%d\t%v\t%q\n", tok.Line, tok.Col, tok.Type, tok.Lexeme)
	}
}

func printStrips(w io.Writer, strips []tessellate.Strip) {
	for i, s := range strips {
		fmt.Fprintf(w, "strip %d: %d vertices\n", i, len(s))
		for _, v := range s {
			fmt.Fprintf(w, "\t%g\t%g\n", v[0], v[1])
		}
	}
}

// writeFile creates name and plots doc into it with write.
func writeFile(name string, doc *Document, write func(io.Writer, *Document) error) error {
	f, err := os.Create(name)
	if err != nil {
		return errors.Wrap(err, "creating plot")
	}
	if err := write(f, doc); err != nil {
		f.Close()
		return errors.Wrapf(err, "plotting %s", name)
	}
	return errors.Wrapf(f.Close(), "closing %s", name)
}
