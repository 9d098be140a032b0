// Package order contains the Order aggregate and its production-stage state
// machine. The stage is the single source of truth for where an order stands
// in the end-to-end workflow: planning, the two bin-to-bin transfer phases,
// grinding, and packaging. Stage transitions are monotonic; there is no
// compensating or rollback transition.
package order
