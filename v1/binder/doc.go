// Package binder provides Cell, a container that owns a value and hands out
// at most one Handle to it at a time. A Handle grants read and write access to
// the value until it is released; the exclusivity is checked at runtime with a
// single atomic flag instead of a mutex, so binding never blocks.
//
// Cells are meant for code that only holds a shared pointer to some owner but
// needs to mutate one of its fields for a short scope, the typical case being
// an immediate-mode UI binding a widget to a struct field:
//
//	type Settings struct {
//		Volume *binder.Cell[float32]
//	}
//
//	func draw(s *Settings, ui *UI) {
//		s.Volume.With(func(v *float32) {
//			ui.Slider("volume", v)
//		})
//	}
//
// Bind panics when the cell is already bound; TryBind reports the same
// condition as an error. A Handle must be released exactly once, usually with
// defer right after binding. Releasing it again is a no-op.
package binder
