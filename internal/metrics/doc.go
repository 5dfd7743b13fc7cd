// Package metrics records what a generation run did.
//
// Components receive a Recorder and default to NoopRecorder, so nothing needs a
// nil check and metrics cost nothing unless enabled. The CLI swaps in a
// PrometheusRecorder when --metrics-file is given and dumps the registry in the
// node-exporter textfile format after the run, which suits a batch tool that
// exits before anything could scrape it.
package metrics
