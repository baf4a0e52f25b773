// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

package gpu

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"cogentcore.org/glscene/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watch reloads shader sources from dir whenever a source file there is
// written or created, calling changed with the affected program name
// after updating the table. It returns once the watch is established;
// watching stops when ctx is done. changed is called on the watcher
// goroutine, so it should only record the change, for example with
// [ProgramCache.MarkDirty].
func (ss *ShaderSources) Watch(ctx context.Context, dir string, changed func(program string)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Log(err)
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return errors.Log(err)
	}
	slog.Info("gpu: watching shader sources", "dir", dir)
	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				ss.reloadFile(ev.Name, changed)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.Error("gpu: shader watcher", "err", err)
			}
		}
	}()
	return nil
}

// reloadFile updates the table from the given file if it is a shader source.
func (ss *ShaderSources) reloadFile(file string, changed func(program string)) {
	key := filepath.Base(file)
	name, ok := ProgramName(key)
	if !ok {
		return
	}
	b, err := os.ReadFile(file)
	if err != nil {
		slog.Error("gpu: reading shader source", "file", file, "err", err)
		return
	}
	ss.Set(key, string(b))
	slog.Info("gpu: shader source changed", "key", key)
	if changed != nil {
		changed(name)
	}
}
