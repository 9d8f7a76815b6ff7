// Package objwriter emits a semantically equivalent OBJ+MTL pair from the
// indexed scene model: deduplicated position/uv/normal tables, per-object
// grouping, and face-range material assignments, per spec §4.8.
package objwriter

// ObjectPolicy controls whether and how each object gets a "g"/"o" header
// line on export, per spec §6 "OBJ-specific" flags.
type ObjectPolicy int

const (
	ObjectPolicyDefault ObjectPolicy = iota
	ObjectPolicyGroups
	ObjectPolicyObjects
)

// ObjFlags carries the OBJ-specific export knobs from spec §6 that aren't
// part of the shared mesh/material flag sets: the grouping policy, and
// whether the PBR material extensions are written to the companion MTL.
type ObjFlags struct {
	ObjectPolicy ObjectPolicy
	MaterialsPBR bool
}
