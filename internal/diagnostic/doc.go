// Package diagnostic provides structured errors, warnings and notes
// produced while validating mapping tables.
//
// Key capabilities:
//   - Structural errors that block table construction
//   - Warnings for definitions that load but are probably mistakes
//   - Notes explaining overlap resolution between fields
package diagnostic
