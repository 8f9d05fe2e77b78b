// Package render paints Game of Life grids onto drawing surfaces.
//
// A surface only needs to implement Canvas, a small subset of a 2D drawing context:
// fill style, filled rectangles and stroked line paths. Board turns a grid into those
// calls using a fixed Geometry, so the same code drives an image buffer, a terminal
// screen or a window.
package render
