package objscene

import "strconv"

// UnresolvedMaterialError records a usemtl reference that never matched a
// loaded material by name. The affected face range is simply left
// unassigned; the rest of the scene loads normally.
type UnresolvedMaterialError struct {
	Name string
	Line int
}

func (e UnresolvedMaterialError) Error() string {
	return "objscene: unresolved material " + strconv.Quote(e.Name) + " at line " + strconv.Itoa(e.Line)
}

// MtlMissingError records a mtllib directive whose referenced file could not
// be opened. Geometry still loads; no materials are bound.
type MtlMissingError struct {
	Path string
	Err  error
}

func (e MtlMissingError) Error() string {
	return "objscene: mtllib file missing: " + e.Path + ": " + e.Err.Error()
}

func (e MtlMissingError) Unwrap() error { return e.Err }
