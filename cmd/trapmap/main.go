package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"

	. "github.com/osuushi/trapmap/seidel"
)

// Demo of trapezoidal decomposition. Input on stdin should be newline
// separated points in the form "x y", with each loop separated by an extra
// newline.
//
// Loops should be simple and wind counterclockwise. A clockwise loop is a
// hole. A hole should be contained by only one outer loop, and should not
// intersect its edges. None of these requirements are validated.

var (
	seed    = kingpin.Flag("seed", "Seed for the segment insertion order.").Default("0").Int64()
	quads   = kingpin.Flag("quads", "Print every trapezoid as an outline quadrilateral.").Bool()
	tree    = kingpin.Flag("tree", "Print the query structure.").Bool()
	pngPath = kingpin.Flag("png", "Render the map to a PNG at this path.").String()
	show    = kingpin.Flag("show", "Render the map to the terminal (iTerm only).").Bool()
	scale   = kingpin.Flag("scale", "Pixels per input unit when rendering.").Default("50").Float64()
	check   = kingpin.Flag("check", "Validate the structural invariants of the result.").Bool()
	verbose = kingpin.Flag("verbose", "Log construction progress.").Short('v').Bool()
)

func main() {
	kingpin.Parse()

	loops := readLoops(os.Stdin)
	tr, err := New(loops)
	kingpin.FatalIfError(err, "bad input")

	tr.Rand = rand.New(rand.NewSource(*seed))
	if *verbose {
		logger, err := zap.NewDevelopment()
		kingpin.FatalIfError(err, "logger")
		defer logger.Sync()
		tr.Logger = logger
	}

	kingpin.FatalIfError(build(tr), "decomposition failed")
	fmt.Printf("%d loops, %d trapezoids, %d query nodes\n", len(loops), len(tr.Traps), len(tr.Nodes))

	if *check {
		kingpin.FatalIfError(tr.Validate(), "validation failed")
		fmt.Println("structure validates")
	}
	if *quads {
		fmt.Print(tr.DumpTrapezoids())
	}
	if *tree {
		fmt.Print(tr.DumpTree())
	}
	if *pngPath != "" {
		kingpin.FatalIfError(tr.Draw(*pngPath, *scale), "rendering failed")
	}
	if *show {
		kingpin.FatalIfError(tr.DrawTerminal(*scale), "rendering failed")
	}
}

// Build panics on unsupported input by the seidel package's convention, so
// recover that back into an error for reporting.
func build(tr *Triangulator) (err error) {
	defer func() {
		recoveredErr := HandleDecomposePanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
	}()
	tr.Build()
	return nil
}

func readLoops(in *os.File) [][]Point {
	loops := [][]Point{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	points := []Point{}
	for scanner.Scan() {
		// Read the next line
		line := scanner.Text()

		// If it's empty, and we collected any points, this is the end of the loop
		if line == "" {
			if len(points) > 0 {
				loops = append(loops, points)
				points = []Point{}
			}
			continue
		}

		// Parse the point out of the line
		points = append(points, parsePoint(line))
	}

	// Handle trailing loop if any
	if len(points) > 0 {
		loops = append(loops, points)
	}
	return loops
}

func parsePoint(line string) Point {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		kingpin.Fatalf("bad point line %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	kingpin.FatalIfError(err, "bad point line %q", line)
	y, err := strconv.ParseFloat(parts[1], 64)
	kingpin.FatalIfError(err, "bad point line %q", line)
	return Point{X: x, Y: y}
}
