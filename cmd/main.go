package main

import (
	"fmt"
	"os"

	"github.com/ostafen/gifkit/cmd/cmd"
	"github.com/ostafen/gifkit/internal/env"
)

func main() {
	PrintLogo()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func PrintLogo() {
	fmt.Println("        _  __ _    _ _   ")
	fmt.Println("   __ _(_)/ _| | _(_) |_ ")
	fmt.Println("  / _` | | |_| |/ / | __|")
	fmt.Println(" | (_| | |  _|   <| | |_ ")
	fmt.Println("  \\__, |_|_| |_|\\_\\_|\\__|")
	fmt.Println("  |___/                  ")
	fmt.Println()
	fmt.Println("Structural GIF decoder and encoder")
	fmt.Println()
	fmt.Printf("Version:   %s\n", env.Version)
	fmt.Printf("Commit:    %s\n", env.CommitHash)
	fmt.Printf("Build Time: %s\n", env.BuildTime)
	fmt.Println(" ")
}
