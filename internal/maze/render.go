package maze

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
	"gopkg.in/yaml.v3"
)

const banner = "==========================="

var (
	colorBanner = color.Style{color.FgGray}
	colorRoom   = color.Style{color.FgYellow, color.OpBold}
	colorWall   = color.Style{color.FgGray}
	colorDoor   = color.Style{color.FgCyan, color.OpBold}
	colorEmpty  = color.Style{color.FgRed}
)

// Render returns the diagnostic listing of m: a banner, one block per room in
// ascending number order with its four sides, and a closing banner.
func Render(m *Maze) string {
	return render(m, false)
}

// RenderColor is Render with terminal colors applied.
func RenderColor(m *Maze) string {
	return render(m, true)
}

// String implements fmt.Stringer using Render.
func (m *Maze) String() string { return Render(m) }

func render(m *Maze, colored bool) string {
	paint := func(s color.Style, text string) string {
		if !colored {
			return text
		}
		return s.Sprint(text)
	}

	var b strings.Builder
	b.WriteString(paint(colorBanner, banner))
	b.WriteString("\n")
	b.WriteString("Maze room:\n")
	for _, r := range m.Rooms() {
		b.WriteString(paint(colorRoom, fmt.Sprintf("room_%d %s", r.Number(), r)))
		b.WriteString("\n")
		for _, d := range Directions() {
			fmt.Fprintf(&b, "%s is %s\n", d, paint(sideStyle(r.Side(d)), describe(r.Side(d))))
		}
	}
	b.WriteString(paint(colorBanner, banner))
	b.WriteString("\n")
	return b.String()
}

func describe(s Site) string {
	if s == nil {
		return "(none)"
	}
	return s.String()
}

func sideStyle(s Site) color.Style {
	switch s.(type) {
	case nil:
		return colorEmpty
	case Passage:
		return colorDoor
	default:
		return colorWall
	}
}

type snapshot struct {
	ID    string         `yaml:"id"`
	Rooms []roomSnapshot `yaml:"rooms"`
}

type roomSnapshot struct {
	Number int               `yaml:"number"`
	Kind   string            `yaml:"kind"`
	Sides  map[string]string `yaml:"sides"`
}

// Snapshot encodes m as a YAML document for diagnostic output.
//
// Postcondition: Returns the YAML bytes or a marshalling error.
func Snapshot(m *Maze) ([]byte, error) {
	snap := snapshot{ID: m.ID}
	for _, r := range m.Rooms() {
		rs := roomSnapshot{
			Number: r.Number(),
			Kind:   r.String(),
			Sides:  make(map[string]string, 4),
		}
		for _, d := range Directions() {
			rs.Sides[d.String()] = describe(r.Side(d))
		}
		snap.Rooms = append(snap.Rooms, rs)
	}
	out, err := yaml.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("marshalling maze %s: %w", m.ID, err)
	}
	return out, nil
}
