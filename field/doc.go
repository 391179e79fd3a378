// Package field implements the character-level editing engine behind an
// on-screen keyboard input.
//
// A Field owns an ordered buffer of cells and a cursor. Key events reach it
// through four mutations (PasteChar, Paste, Backspace, Clear); presentation
// reads State snapshots. Three strategies are available: free strings,
// fixed-layout fractions and format masks (including dates).
//
// Fields are synchronous and not safe for concurrent use.
package field
