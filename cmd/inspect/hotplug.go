package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// usbfsRoot holds one directory per bus and one node per attached device.
const usbfsRoot = "/dev/bus/usb"

// watchHotplug calls changed after device nodes appear or disappear below
// root. Events closer together than settle collapse into a single call. The
// watcher stops when ctx is done.
func watchHotplug(ctx context.Context, root string, settle time.Duration, changed func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(root); err != nil {
		watcher.Close()
		return err
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		watcher.Close()
		return err
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if err := watcher.Add(filepath.Join(root, e.Name())); err != nil {
			slog.Warn("hotplug: watch bus", "bus", e.Name(), "err", err)
		}
	}

	go func() {
		defer watcher.Close()
		var timer *time.Timer
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) {
					continue
				}
				if event.Has(fsnotify.Create) {
					// A new bus directory.
					if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
						if err := watcher.Add(event.Name); err != nil {
							slog.Warn("hotplug: watch bus", "bus", event.Name, "err", err)
						}
					}
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(settle, changed)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("hotplug", "err", err)
			}
		}
	}()
	return nil
}
