// Package pipeline finds files whose names embed the same instant.
//
// A scan has three steps:
//
//   - Discover(ctx, root, opts) walks the tree and keeps regular files whose
//     basename has a stamp shape. Unreadable subdirectories are skipped or
//     abort the walk depending on opts; a missing root is always an error.
//   - GroupByInstant(paths) parses each stamp and groups paths by instant,
//     dropping names whose digits are not a valid date/time.
//   - WriteReport(w, groups, opts) prints the groups as text, a table or YAML.
//
// Run wires the three together for the scan command and returns RunStats.
package pipeline
