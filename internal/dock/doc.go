// Package dock implements the dock state: the ordered icon list and window
// position, their load/save to the JSON config document, and the geometry
// rules that size and place the dock window. The filesystem is injected as an
// afero.Fs so persistence can be exercised in memory.
package dock
