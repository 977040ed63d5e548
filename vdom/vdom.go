// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vdom defines the virtual nodes that a reconciliation engine
// produces to describe the desired panel tree. Virtual nodes are owned
// by the engine; the bridge only reads them.
package vdom

import "maps"

// Props are the attributes of a virtual node, by attribute name.
type Props map[string]any

// Clone returns a shallow copy of the props.
func (p Props) Clone() Props {
	return maps.Clone(p)
}

// String returns the string value of the given prop, or "" if it
// is absent or not a string.
func (p Props) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// Node is a declarative description of one UI element.
type Node struct {

	// Type is the panel type of the element.
	Type string `yaml:"type"`

	// Props are the attributes of the element.
	Props Props `yaml:"props"`

	// Children are the child elements in order.
	Children []*Node `yaml:"children"`
}

// New returns a new [Node] with the given type, props and children.
func New(typ string, props Props, children ...*Node) *Node {
	return &Node{Type: typ, Props: props, Children: children}
}

// Walk calls the given function on the node and all of its descendants
// in depth-first order, passing the parent of each node (nil for the
// node itself).
func (n *Node) Walk(fun func(parent, n *Node)) {
	n.walk(nil, fun)
}

func (n *Node) walk(parent *Node, fun func(parent, n *Node)) {
	fun(parent, n)
	for _, c := range n.Children {
		c.walk(n, fun)
	}
}
