// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package three is a declarative object model mirroring the three.js
// scene graph: cameras, geometries, materials, textures, lights,
// controls and the renderer are all typed, validated property bags.
//
// There is no rendering here. Each entity is paired with an external
// front-end view, identified by its view-name/view-module pair, and
// every field mutation made through the Set methods is recorded as a
// [Change] that can be drained with [Base.Changes] and pushed across
// the sync boundary by whatever transport hosts the model. The push
// is fire-and-forget: no ordering across entities, no acknowledgement
// and no backpressure are modeled at this layer, and all use is
// single-threaded.
//
// The one algorithmic core is the 3D math on [Object3d]: 4x4 matrix
// decomposition, quaternion extraction from a rotation matrix, and
// look-at orientation.
package three

// DefaultModule is the front-end module that hosts the standard views.
const DefaultModule = "nbextensions/pythreejs/pythreejs"

// Change is a single recorded field mutation: the front-end field name
// and the new wire value.
type Change struct {
	Field string
	Value any
}

// Base is the common core embedded in every synchronized entity.
// It identifies the paired front-end view and accumulates the
// changelist of mutated fields.
type Base struct {

	// ViewModule is the front-end module providing the view.
	ViewModule string

	// ViewName is the name of the paired front-end view.
	ViewName string

	// ModelModule is the front-end module providing the model,
	// for entities that have a custom front-end model.
	ModelModule string

	// ModelName is the name of the custom front-end model, if any.
	ModelName string

	// OnChange, if non-nil, is called after each recorded change.
	// This is the hook for a live transport; the changelist is
	// recorded regardless.
	OnChange func(field string, value any)

	changes []Change
}

// AsBase returns the [Base] of this entity.
func (b *Base) AsBase() *Base {
	return b
}

// initView sets the view identification for a standard entity.
func (b *Base) initView(viewName string) {
	b.ViewModule = DefaultModule
	b.ViewName = viewName
}

// initModel sets the custom front-end model identification.
func (b *Base) initModel(modelName string) {
	b.ModelModule = DefaultModule
	b.ModelName = modelName
}

// Send records a change to the given front-end field and invokes the
// OnChange hook if one is set. All Set methods funnel through here.
func (b *Base) Send(field string, value any) {
	b.changes = append(b.changes, Change{Field: field, Value: value})
	if b.OnChange != nil {
		b.OnChange(field, value)
	}
}

// Changes drains and returns all changes recorded since the last
// drain, in mutation order. It returns nil if nothing changed.
func (b *Base) Changes() []Change {
	ch := b.changes
	b.changes = nil
	return ch
}

// Entity is the interface satisfied by every synchronized entity.
type Entity interface {

	// AsBase returns the [Base] of this entity, which carries the
	// view identification and the changelist.
	AsBase() *Base
}
