// Package stamp extracts date-time stamps embedded in filenames.
//
// Two layouts are recognized, in this order:
//
//   - Layout A, year first: YYYY_MM_DD_HH_MM_SS (report_2024_10_15_12_34_56.txt)
//   - Layout B, day first:  DD_MM_YYYY_HH_MM_SS (backup_15_10_2024_12_34_56.log)
//
// Digits are wall-clock values and are read as UTC. Only the basename is
// inspected; directory components never contribute to a match.
package stamp
