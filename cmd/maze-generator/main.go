package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lixenwraith/maze-master/maze"
	"github.com/lixenwraith/maze-master/navigation"
)

var (
	widthFlag       = flag.Int("width", 0, "Maze width in cells (prompted when 0)")
	heightFlag      = flag.Int("height", 0, "Maze height in cells (prompted when 0)")
	seedFlag        = flag.Int64("seed", 0, "Generator seed (0 = time based)")
	plainFlag       = flag.Bool("plain", false, "Print without colors")
	interactiveFlag = flag.Bool("i", false, "Prompt for parameters in a loop")
)

// palette styles each glyph of maze.Render
type palette struct {
	wall, path, start, goal lipgloss.Style
}

func colorPalette() palette {
	return palette{
		wall:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Background(lipgloss.Color("240")),
		path:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		start: lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		goal:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
	}
}

func plainPalette() palette {
	s := lipgloss.NewStyle()
	return palette{wall: s, path: s, start: s, goal: s}
}

func main() {
	flag.Parse()

	pal := colorPalette()
	if *plainFlag {
		pal = plainPalette()
	}

	if !*interactiveFlag && *widthFlag > 0 && *heightFlag > 0 {
		if err := run(os.Stdout, *widthFlag, *heightFlag, *seedFlag, pal); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Println("\n=== MAZE GENERATOR (recursive backtracker) ===")

		w := getInt(reader, fmt.Sprintf("Width [1-%d] (default 20): ", maze.MaxDimension), 20)
		h := getInt(reader, fmt.Sprintf("Height [1-%d] (default 10): ", maze.MaxDimension), 10)
		seed := int64(getInt(reader, "Seed (default time based): ", 0))

		if err := run(os.Stdout, w, h, seed, pal); err != nil {
			fmt.Println(err)
		}

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

// run generates one maze, solves corner to corner and prints it with stats
func run(out io.Writer, w, h int, seed int64, pal palette) error {
	startT := time.Now()
	g, err := maze.Generate(w, h, seed)
	if err != nil {
		return err
	}
	dur := time.Since(startT)

	start := maze.Point{X: 0, Y: 0}
	goal := maze.Point{X: w - 1, Y: h - 1}
	path, err := navigation.FindPath(g, start, goal)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Done in %v\n", dur)
	fmt.Fprintf(out, "Grid: %dx%d  Seed: %d\n", g.Width(), g.Height(), g.Seed())
	fmt.Fprintf(out, "Solution Path Length: %d cells\n", len(path))
	fmt.Fprint(out, draw(g.Render(path, start, goal), pal))
	return nil
}

// draw applies the palette to each glyph of a rendered maze
func draw(rendered string, pal palette) string {
	var sb strings.Builder
	for _, line := range strings.SplitAfter(rendered, "\n") {
		for _, r := range strings.TrimSuffix(line, "\n") {
			switch r {
			case maze.GlyphWall:
				sb.WriteString(pal.wall.Render("█"))
			case maze.GlyphPath:
				sb.WriteString(pal.path.Render("•"))
			case maze.GlyphStart:
				sb.WriteString(pal.start.Render("S"))
			case maze.GlyphGoal:
				sb.WriteString(pal.goal.Render("G"))
			default:
				sb.WriteRune(r)
			}
		}
		if strings.HasSuffix(line, "\n") {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// --- Input Helpers ---

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
