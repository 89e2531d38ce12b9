// Package hovertip shows cursor-following tooltips for a retained-mode node
// tree on [Ebitengine].
//
// # Quick start
//
// Give a node a tooltip and hand the scene to [Run]:
//
//	scene := hovertip.NewScene()
//	save := hovertip.NewBox("save", 80, 32, hovertip.Color{R: 0.3, G: 0.6, B: 0.9, A: 1})
//	save.SetTooltipText("Save the current file")
//	scene.Root().AddChild(save)
//	hovertip.Run(scene, hovertip.RunConfig{Title: "Tooltips", Width: 640, Height: 480})
//
// For full control, implement [ebiten.Game] yourself, call
// [Scene.SetScreenSize] from Layout and [Scene.Update] and [Scene.Draw]
// from Update and Draw.
//
// # Hover tracking
//
// Every frame the scene hit-tests the cursor and reports the topmost node to
// [TooltipSystem.SetHovered]. Nodes without [Node.HasTooltip] defer to their
// nearest capable ancestor, so a tooltip set on a container covers all its
// children. Only one tooltip exists at a time; moving to another capable node
// replaces it, and moving to empty space or hiding the cursor removes it.
//
// # Placement
//
// [TooltipSystem.UpdatePlacement] positions the panel next to the cursor,
// preferring right of and above it, falling back to the left and below, and
// clamping to the viewport edge when neither side fits. The arithmetic is
// available on its own as [Solve].
//
// Placement constants, UI scale and debug logging can be loaded from YAML
// with [LoadConfig].
//
// [Ebitengine]: https://ebitengine.org
package hovertip
