// Package grinding models one grinding run per order: the mill draws wheat
// from an ordered list of 12HR bins, the crew submits hourly throughput
// reports while the run is STARTED, and the lab attaches moisture samples.
// Stopping the run fixes its duration and closes it to further reports; a
// run summary is derived on demand from the submitted reports.
package grinding
