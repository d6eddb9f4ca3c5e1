// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package three

import (
	"log/slog"

	"github.com/jinzhu/copier"
)

// Clone returns a deep copy of the given entity's exported state.
// The clone starts with an empty pending change list, so it can be
// attached to a fresh view without replaying the source's history.
func Clone[T any](src *T) *T {
	dst := new(T)
	err := copier.CopyWithOption(dst, src, copier.Option{DeepCopy: true})
	if err != nil {
		slog.Error("three.Clone: copy failed", "err", err)
	}
	return dst
}
