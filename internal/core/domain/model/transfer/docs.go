// Package transfer contains the two bin-to-bin transfer modes. A blended
// transfer fills one destination bin by drawing proportionally from multiple
// source bins per the plan's percentage recipe; a sequential transfer drains
// one source bin into an ordered list of destination bins, filling each to
// capacity before moving on. Both share the READY/IN_PROGRESS/COMPLETED
// lifecycle in Status.
package transfer
