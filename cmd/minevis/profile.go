package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/minevis/pkg/dataset"
	"github.com/philipparndt/minevis/pkg/profile"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile [dataset]",
	Short: "Inspect section profiles and their plot geometry",
	Long: `Report the padded plot bounds of the dataset's elevation profiles and
the grid lines a section viewer would draw for them.`,
	Args: cobra.ExactArgs(1),
	Run:  runProfile,
}

func init() {
	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, args []string) {
	ds, err := dataset.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dataset: %v\n", err)
		os.Exit(1)
	}
	if len(ds.Profiles) == 0 {
		fmt.Fprintln(os.Stderr, "Error: dataset contains no profiles")
		os.Exit(1)
	}

	bounds := profile.ComputeBounds(ds.Profiles, cfg.Profile)
	lines := profile.GenerateGridLines(bounds, cfg.Profile)

	fmt.Println("Profile Plot Report")
	fmt.Println("===================")
	for _, p := range ds.Profiles {
		fmt.Printf("  %s: %d points\n", p.Name, len(p.Points))
	}
	fmt.Println()

	fmt.Println("Padded bounds:")
	fmt.Printf("  Distance: %.3f .. %.3f m\n", bounds.MinDistance, bounds.MaxDistance)
	fmt.Printf("  Elevation: %.3f .. %.3f m\n\n", bounds.MinZ, bounds.MaxZ)

	fmt.Printf("Grid lines (distance axis, %d):\n", len(lines.X))
	printGridLines(lines.X)
	fmt.Printf("\nGrid lines (elevation axis, %d):\n", len(lines.Y))
	printGridLines(lines.Y)
}

func printGridLines(lines []profile.GridLine) {
	for _, line := range lines {
		marker := " "
		if line.Major {
			marker = "*"
		}
		fmt.Printf("  %s %.3f\n", marker, line.Value)
	}
}
