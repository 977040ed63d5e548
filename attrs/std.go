// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attrs

import "cogentcore.org/panelsync/panel"

// GenericType is the placeholder panel type whose concrete native type
// is given by its TypeAttr attribute.
const GenericType = "GenericPanel"

// Attribute names with special meaning at creation time.
const (
	// IDAttr gives the identifier of a panel.
	IDAttr = "id"

	// TypeAttr gives the concrete native type of a [GenericType] panel.
	TypeAttr = "type"
)

// Std returns a new [Registry] with the standard descriptors.
func Std() *Registry {
	return StdBuilder().Build()
}

// StdBuilder returns a new [Builder] with the standard descriptors,
// which can be extended with more types before building.
func StdBuilder() *Builder {
	b := NewBuilder()
	b.Add(BaseType,
		Initial(IDAttr),
		ClassList("className"),
		Style("style"),
		DialogVariables("dialogVariables"),
		Property("visible", true),
		Property("enabled", true),
		Property("hittest", true),
		Property("hittestchildren", true),
		Property("acceptsfocus", false),
		Property("draggable", false),
		Property("tabindex", nil),
		Property("selectionpos", nil),
		Property("tooltip", nil),
	)
	for _, ev := range []string{
		"onactivate", "oncancel", "oncontextmenu", "ondblclick",
		"onfocus", "onblur", "onmouseover", "onmouseout",
		"onload", "onselect", "ondeselect", "onmovedown", "onmoveup",
		"onmoveleft", "onmoveright", "ontabforward", "ontabbackward",
		"onscrolledtobottom", "onscrolledtorightedge",
	} {
		b.Add(BaseType, Event(ev))
	}
	b.Add(GenericType, Initial(TypeAttr))
	b.Add(panel.TagLabel,
		Initial("html"),
		Property("text", ""),
	)
	b.Add(panel.TagImage,
		Initial("scaling"),
		Property("src", ""),
	)
	b.Add(panel.TagTextEntry,
		Initial("maxchars"),
		Initial("multiline"),
		Property("text", ""),
		Property("placeholder", ""),
		Event("ontextentrychange"),
		Event("ontextentrysubmit"),
		Event("oninputsubmit"),
	)
	b.Add(panel.TagProgressBar,
		Property("value", 0.0),
		Property("min", 0.0),
		Property("max", 1.0),
	)
	b.Add(panel.TagDropDown,
		Property("selected", nil),
		Event("oninputsubmit"),
	)
	for _, typ := range []string{panel.TagScene, panel.TagParticleScene} {
		b.Add(typ,
			Initial("map"),
			Initial("camera"),
			Initial("light"),
			Initial("antialias"),
			Initial("particleonly"),
			Initial("renderdeferred"),
			Property("unit", nil),
		)
	}
	b.Add(panel.TagHeroImage,
		Initial("scaling"),
		Initial("heroimagestyle"),
		Property("heroname", ""),
		Property("heroid", nil),
	)
	b.Add(panel.TagAbilityImage, Initial("scaling"), Property("abilityname", ""))
	b.Add(panel.TagItemImage, Initial("scaling"), Property("itemname", ""))
	return b
}
