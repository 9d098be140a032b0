// Package packaging models what leaves the mill floor: loose product going
// into maida shallows and bagged product going into finished-goods godowns,
// each movement mirrored by a storage-transfer audit row.
package packaging
