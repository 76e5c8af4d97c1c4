// Package render turns analysis reports into human-facing output: styled
// terminal tables for metric sets and per-point decompositions, and
// observed-versus-predicted scatter plots with regression line overlays.
//
// Tables are plain strings and safe to write to any terminal; plots are
// written to disk in the format implied by the file extension.
package render
