package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/papapumpkin/holocron/internal/ansi"
	"github.com/papapumpkin/holocron/internal/chart"
	"github.com/papapumpkin/holocron/internal/enrich"
	"github.com/papapumpkin/holocron/internal/swapi"
)

// chartWidth is the cell width of the longest bar in plain output.
const chartWidth = 40

// Printer writes human-readable output for the non-interactive commands.
type Printer struct {
	out   io.Writer
	color bool
	now   func() time.Time
}

// New returns a printer writing to stderr with colors.
func New() *Printer {
	return NewWithWriter(os.Stderr, true)
}

// NewWithWriter returns a printer writing to w. color toggles ANSI escapes.
func NewWithWriter(w io.Writer, color bool) *Printer {
	return &Printer{out: w, color: color, now: time.Now}
}

func (p *Printer) paint(code, s string) string {
	if !p.color {
		return s
	}
	return ansi.Wrap(code, s)
}

func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.out, "%s%s\n", p.paint(ansi.Red+ansi.Bold, "error: "), msg)
}

func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.out, p.paint(ansi.Dim, msg))
}

// NotFound reports a name with no matching record.
func (p *Printer) NotFound(name string) {
	fmt.Fprintf(p.out, "%s %s\n", p.paint(ansi.Yellow, "Character not found."), p.paint(ansi.Dim, "("+name+")"))
}

// Names prints one name per line.
func (p *Printer) Names(names []string) {
	for _, n := range names {
		fmt.Fprintln(p.out, n)
	}
}

// Character prints a record's attributes, its resolved references, and the
// height/mass chart when both values are numeric.
func (p *Printer) Character(person swapi.Person, d enrich.Details) {
	fmt.Fprintln(p.out, p.paint(ansi.Bold+ansi.Cyan, person.Name))

	for _, f := range Fields(person, d, p.now()) {
		fmt.Fprintf(p.out, "  %s %s\n", p.paint(ansi.Bold, f.Label+":"), f.Value)
	}
	if d.Failed > 0 {
		fmt.Fprintln(p.out, p.paint(ansi.Dim, fmt.Sprintf("  (%d reference(s) could not be resolved)", d.Failed)))
	}

	bars, ok := chart.Physical(person)
	if !ok {
		return
	}
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.paint(ansi.Bold, person.Name+"'s Physical Stats"))
	body := chart.Render(bars, chartWidth, func(s string) string { return p.paint(ansi.Yellow, s) })
	for _, line := range strings.Split(body, "\n") {
		fmt.Fprintln(p.out, "  "+line)
	}
}

// Field is one labelled line of the character sheet.
type Field struct {
	Label string
	Value string
}

// Fields lays out the character sheet shared by the TUI panel and plain
// output. Empty reference lists read "None". Species is only empty when its
// references failed, so it reads "unknown".
func Fields(person swapi.Person, d enrich.Details, now time.Time) []Field {
	return []Field{
		{"Height", person.Height + " cm"},
		{"Mass", person.Mass + " kg"},
		{"Hair Color", person.HairColor},
		{"Skin Color", person.SkinColor},
		{"Eye Color", person.EyeColor},
		{"Gender", person.Gender},
		{"Birth Year", person.BirthYear},
		{"Species", listOr(d.Species, "unknown")},
		{"Films", listOr(d.Films, "None")},
		{"Vehicles", listOr(d.Vehicles, "None")},
		{"Starships", listOr(d.Starships, "None")},
		{"Created", Timestamp(person.Created, now)},
		{"Edited", Timestamp(person.Edited, now)},
	}
}

func listOr(names []string, empty string) string {
	if len(names) == 0 {
		return empty
	}
	return strings.Join(names, ", ")
}

// Timestamp renders t in local time followed by how long ago it was.
func Timestamp(t, now time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return fmt.Sprintf("%s (%s)", t.Local().Format("2006-01-02 15:04:05"), humanize.RelTime(t, now, "ago", "from now"))
}
