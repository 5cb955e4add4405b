//go:build linux
// +build linux

// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package fuse

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bazil.org/fuse"
	fusefs "bazil.org/fuse/fs"
	"github.com/ostafen/gifkit/internal/gif"
	osutils "github.com/ostafen/gifkit/pkg/util/os"
)

// Mount serves the entries of g at mountpoint until a termination signal
// unmounts it.
func Mount(mountpoint string, g gif.GIF, logger *slog.Logger) error {
	list, err := Entries(g)
	if err != nil {
		return err
	}

	created, err := osutils.EnsureDir(mountpoint, true)
	if err != nil {
		return err
	}
	if created {
		defer os.Remove(mountpoint)
	}

	c, err := fuse.Mount(mountpoint, fuse.ReadOnly(), fuse.FSName("gifkit"))
	if err != nil {
		return err
	}
	defer c.Close()

	entries := make(map[string]Entry, len(list))
	for _, e := range list {
		entries[e.Name] = e
	}

	fs := &GifFS{
		entries: entries,
		mtime:   time.Now(),
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- fusefs.New(c, nil).Serve(fs)
	}()

	logger.Info("mounted", "mountpoint", mountpoint, "files", len(entries))
	return waitForUmount(mountpoint, serveErr, logger)
}

func waitForUmount(mountpoint string, serveErr <-chan error, logger *slog.Logger) error {
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigc)

	logger.Info("waiting for termination signal")

	const maxUnmountRetries = 3

	unmountAttempts := 0
	for {
		select {
		case err := <-serveErr:
			if err != nil {
				return fmt.Errorf("serve %s: %w", mountpoint, err)
			}
			return nil
		case sig := <-sigc:
			logger.Info("signal received", "signal", sig)

			if unmountAttempts >= maxUnmountRetries {
				return fmt.Errorf("maximum unmount retries (%d) exceeded, still unable to unmount %s", maxUnmountRetries, mountpoint)
			}

			logger.Info("attempting unmount", "mountpoint", mountpoint, "attempt", unmountAttempts+1, "of", maxUnmountRetries)
			err := fuse.Unmount(mountpoint)
			if err == nil {
				logger.Info("unmounted successfully")
				return nil
			}

			unmountAttempts++
			logger.Warn("unmount failed, waiting for another signal to retry", "err", err, "remaining", maxUnmountRetries-unmountAttempts)
		}
	}
}
