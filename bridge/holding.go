// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bridge

import (
	"log/slog"

	"cogentcore.org/panelsync/panel"
)

// holdingAreas are the two detached panels that removed panels are
// reparented into. Nothing in a holding area is ever rendered.
type holdingAreas struct {
	arena *panel.Arena

	// generic is flushed (all children deleted) every time a panel is
	// disposed of, which also cleans up anything parked there earlier
	// in the same batch.
	generic panel.ID

	// scene keeps scene panels that were removed before they finished
	// loading, as deleting them mid-load is unsafe in the host.
	scene panel.ID
}

func newHoldingAreas(a *panel.Arena) holdingAreas {
	return holdingAreas{
		arena:   a,
		generic: a.CreateDetached(panel.TagHoldingArea, "GenericHoldingArea"),
		scene:   a.CreateDetached(panel.TagHoldingArea, "SceneHoldingArea"),
	}
}

// dispose moves the panel into the generic holding area and then
// deletes everything in it.
func (h *holdingAreas) dispose(id panel.ID) {
	h.arena.SetParent(id, h.generic)
	h.arena.RemoveAndDeleteChildren(h.generic)
}

// parkScene moves a scene panel that is still loading into the scene
// holding area, where it stays until the host deletes it.
func (h *holdingAreas) parkScene(id panel.ID) {
	h.arena.SetParent(id, h.scene)
	slog.Debug("bridge: parked unloaded scene panel", "panel", h.arena.Panel(id), "parked", len(h.arena.Panel(h.scene).Children))
}

// GenericHold returns the generic holding area.
func (b *Bridge) GenericHold() panel.ID {
	return b.holding.generic
}

// SceneHold returns the holding area for scene panels that were
// removed before their content finished loading. Nothing in the
// bridge ever deletes these panels: a host-side load completion
// callback has to do it, or they stay alive.
func (b *Bridge) SceneHold() panel.ID {
	return b.holding.scene
}
