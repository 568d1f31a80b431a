// Package render lays out a record card as a display list of drawing
// commands. Layout is a pure function of the record and its optional sprite;
// backends (the Fyne canvas in package ui and the software Rasterizer here)
// only translate commands into pixels.
package render
