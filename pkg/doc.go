// Package pkg provides the core libraries for orthodraw, a layout and
// annotation engine for third-angle orthographic projection drawings.
//
// # Overview
//
// Orthodraw takes the dimensions of a rectangular solid and a drawing
// area and produces a fully annotated three-view drawing (TOP, FRONT,
// RIGHT). The pkg directory is organized into four areas:
//
//  1. [drawing] - The pure geometry pipeline (spacing, grid, scale,
//     annotation, composition) plus its style themes and output sinks
//  2. [errors] - Structured error codes shared by all surfaces
//  3. [session] - Last-known-inputs storage for the HTTP surface
//  4. [buildinfo] - Version metadata injected at build time
//
// # Architecture
//
// The typical data flow:
//
//	RawInputs (strings from CLI flags, query params or TUI fields)
//	         ↓
//	    [drawing] Normalize → ComputeSpacing → LayoutGrid → FitScale
//	         ↓
//	    [drawing] Compose (ordered primitive list)
//	         ↓
//	    [drawing/sink] SVG/JSON/PNG output
//
// The pipeline is deterministic and side-effect free: every render is a
// full recomputation from the inputs, so any surface (CLI, TUI, HTTP)
// produces identical drawings for identical inputs and viewports.
package pkg
