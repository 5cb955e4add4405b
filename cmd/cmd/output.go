package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
)

func absPath(path string) string {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func fileSize(path string) string {
	fi, err := os.Stat(path)
	if err != nil {
		return "unknown"
	}
	return humanize.Bytes(uint64(fi.Size()))
}

func printSaved(w io.Writer, path string) {
	fmt.Fprintf(w, "[INFO] Saved to: \t%s (%s)\n", absPath(path), fileSize(path))
}
