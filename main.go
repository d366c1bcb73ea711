package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"illusionfun/palette"
	"illusionfun/pattern"
)

var (
	gridN      int
	canvasSize int
	cellSize   int
	outputPath string
	appVersion = "0.1.0"
)

var gridChoices = []int{6, 8, 10, 12, 16}

var rootCmd = &cobra.Command{
	Use:   "illusionfun",
	Short: "illusionfun – Kitaoka diagonal bevel illusion generator",
	Long:  "Illusionfun generates Kitaoka-style diagonal bevel optical illusions as SVG files, with a random colour scheme every run.",
	Run:   run,
}

func init() {
	rootCmd.Version = appVersion
	rootCmd.Flags().IntVar(&gridN, "grid", 8, "module grid size NxN (one of 6, 8, 10, 12, 16)")
	rootCmd.Flags().IntVar(&canvasSize, "size", 3584, "canvas size in pixels")
	rootCmd.Flags().IntVar(&cellSize, "cell", 32, "cell size in pixels")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output SVG filename (default: auto-generated)")
}

func run(cmd *cobra.Command, args []string) {
	if !validGrid(gridN) {
		log.Fatalf("invalid --grid %d: must be one of %v", gridN, gridChoices)
	}
	if canvasSize <= 0 || cellSize <= 0 {
		log.Fatalf("--size and --cell must be positive")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	sel := palette.Pick(rng)

	doc := pattern.Generate(pattern.Params{
		GridN:      gridN,
		CanvasSize: canvasSize,
		CellSize:   cellSize,
	}, sel)

	svgPath := outputPath
	if svgPath == "" {
		svgPath = fmt.Sprintf("illusion_%dx%d_%s.svg", gridN, gridN, time.Now().Format("150405"))
	}
	if err := os.WriteFile(svgPath, []byte(doc), 0o644); err != nil {
		log.Fatalf("write svg: %v", err)
	}

	infoPath, err := writeInfoFile(filepath.Dir(svgPath))
	if err != nil {
		log.Fatalf("write info file: %v", err)
	}

	printSummary(sel, svgPath, infoPath)
}

func validGrid(n int) bool {
	for _, g := range gridChoices {
		if n == g {
			return true
		}
	}
	return false
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Faint(true)
)

func swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██")
}

func printSummary(sel palette.Selection, svgPath, infoPath string) {
	fmt.Println(headerStyle.Render("IllusionFun!"))
	fmt.Printf("  %s %dx%d\n", labelStyle.Render("Grid:   "), gridN, gridN)
	fmt.Printf("  %s %dx%dpx\n", labelStyle.Render("Canvas: "), canvasSize, canvasSize)
	fmt.Printf("  %s %s %s%s\n", labelStyle.Render("Colours:"), sel.Scheme, swatch(sel.Tile), swatch(sel.Background))
	fmt.Printf("  %s %s\n", labelStyle.Render("Output: "), svgPath)
	fmt.Printf("  %s %s\n", labelStyle.Render("Info:   "), infoPath)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
