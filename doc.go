// Package simplecanvas draws simple house-scene shapes and a chimney smoke
// effect onto 2D surfaces.
//
// # Overview
//
// Shapes are drawn on surfaces registered under string handles:
//
//	dc := gg.NewContext(400, 300)
//	reg := simplecanvas.NewRegistry()
//	reg.Register("house", simplecanvas.NewGGSurface(dc))
//
//	_ = reg.Clear("house")
//	_ = reg.DrawWall("house", 100, 150, 200, 150, "burlywood", "#5c3a1e")
//	_ = reg.DrawRoof("house", 90, 110, 220, 40, "firebrick", "black")
//	_ = reg.DrawChimney("house", 240, 70, 30, 50, "brown", "black")
//	_ = reg.DrawWindow("house", 120, 180, 40, 40, "lightblue", "white")
//	_ = reg.DrawDoor("house", 200, 220, 40, 80, "saddlebrown", "black", "gold")
//
// Colors are CSS style strings: "#rgb", "#rrggbb" or a CSS named color.
//
// # Smoke
//
// A SmokeEmitter owns the particles of one smoke effect. Call Step (or
// Registry.DrawSmoke) once per animation tick:
//
//	smoke := simplecanvas.NewSmokeEmitter()
//	p := simplecanvas.DefaultSmokeParams()
//	p.OriginX, p.OriginY = 255, 65
//	p.SpawnCount = 3
//	p.RiseSlope, p.RiseRate = 2, 4
//	p.Wind, p.WindSpeed = simplecanvas.WindRight, 0.5
//	_ = reg.DrawSmoke("house", smoke, p)
//
// Each step removes particles that left the surface through the top or the
// sides, drifts the rest upwards with some jitter and wind, adds new
// particles at the origin and draws every particle as a small filled
// circle. Freed pool slots are reused before the pool grows.
//
// # Errors
//
// Drawing calls never panic on bad input. They return an *OpError that
// wraps ErrInvalidArgument or ErrUnknownSurface, log it at warn level
// through the package logger, and draw nothing.
//
// # Surfaces
//
// Surface follows the HTML canvas path model. GGSurface renders with
// gogpu/gg, RecordingSurface captures gg recording commands, and package
// ebitensurface targets an ebiten image.
//
// # Coordinate System
//
// Origin (0,0) is top-left, X grows right and Y grows down, so smoke rises
// towards smaller Y.
package simplecanvas
