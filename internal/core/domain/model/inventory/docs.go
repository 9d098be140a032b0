// Package inventory contains the capacity-bounded quantity holders of the
// mill: bins (typed by processing stage), maida shallows, and finished-goods
// godowns. All three enforce the same invariant: the current quantity stays
// between zero and the holder's capacity. The single deliberate exception is
// Bin.Draw, which deducts without a floor check and exists only for the
// blended-transfer stop path.
package inventory
