// Package preflight provides readiness checks for the paths and translation
// data a run depends on.
//
// These checks run in two contexts:
//   - "brokerdocs run" calls RunAll before touching any file and aborts on the
//     first failure, so an unreadable source or unwritable target never
//     produces a half-organized tree.
//   - "brokerdocs check" prints every result.
package preflight
