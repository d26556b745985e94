// Package grid provides the sparse cell set behind the Game of Life.
//
// A [Grid] stores only live cells, so patterns may grow without bound in any
// direction and the cost of a generation depends on the number of live cells
// rather than on the area they span:
//
//   - [Point]: integer cell coordinate with vector arithmetic
//   - [Grid]: live cell set with neighbourhood and geometry queries
//   - [Parse]: text block to Grid conversion
//
// # Pattern Format
//
//	# glider
//	.x.
//	..x
//	xxx
//
// 'x' marks a live cell, '.' a dead one and '#' starts a comment.
package grid
