// Package metrics exposes solver progress as Prometheus collectors.
//
// A Recorder registers its collectors on a caller-supplied Registerer, never
// the global default, and offers hook-shaped methods that plug straight into
// tabu.WithOnCommit and genetic.WithOnGeneration. Batch runs can dump the
// registry with WriteTextfile for the node_exporter textfile collector.
package metrics
