//go:build release

package sprig

// DebugEnabled reports whether debug instrumentation is compiled in.
const DebugEnabled = false

func DebugRect(pos, size Vec2, c Color, seconds, angle float64, fill bool)          {}
func DebugCircle(pos Vec2, radius float64, c Color, seconds float64, fill bool)     {}
func DebugPoint(pos Vec2, c Color, seconds, angle float64)                          {}
func DebugLine(a, b Vec2, c Color, thickness, seconds float64)                      {}
func DebugText(text string, pos Vec2, c Color, seconds float64)                     {}
func DebugPoly(pos Vec2, points []Vec2, c Color, seconds, angle float64, fill bool) {}
func DebugClear()                                                                   {}
func DebugSaveCanvas(label string)                                                  {}
func Assert(cond bool, msg ...any)                                                  {}

func debugStep(dt float64)        {}
func debugRender(dc *DrawContext) {}
