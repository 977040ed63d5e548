// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bridge

import "cogentcore.org/panelsync/panel"

// Fixups are hooks run once on every newly created panel of a legacy
// base type, keyed by panel type, before any props are applied.
type Fixups map[string]func(p *panel.Panel)

// LegacyBaseNames are the legacy image base types that the host creates
// without their default scaling mode.
var LegacyBaseNames = []string{panel.TagHeroImage, panel.TagAbilityImage, panel.TagItemImage}

// DefaultImageScaling is the scaling mode given to legacy image panels.
const DefaultImageScaling = "stretch-to-fit-y-preserve-aspect"

// StdFixups returns the standard fix-ups for [LegacyBaseNames].
func StdFixups() Fixups {
	f := Fixups{}
	for _, typ := range LegacyBaseNames {
		f[typ] = fixImageScaling
	}
	return f
}

func fixImageScaling(p *panel.Panel) {
	if p.Property("scaling") == nil {
		p.SetProperty("scaling", DefaultImageScaling)
	}
}
