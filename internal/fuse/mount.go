//go:build !linux
// +build !linux

package fuse

import (
	"fmt"
	"log/slog"

	"github.com/ostafen/gifkit/internal/gif"
)

func Mount(mountpoint string, g gif.GIF, logger *slog.Logger) error {
	return fmt.Errorf("FUSE mount is only supported on Linux")
}
