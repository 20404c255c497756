// Package metric provides Prometheus metrics for pagetoken.
//
//   - prometheus.go: registry, token counters and HTTP handler
//   - collector.go: manager configuration info collector
//
// Metrics:
//
//   - pagetoken_tokens_created_total{mode}
//   - pagetoken_tokens_parsed_total{mode}
//   - pagetoken_token_errors_total{op,code}
//   - pagetoken_token_size_bytes{op}
//   - pagetoken_manager_info{algorithm,encrypted}
//
// Registry implements pagetoken.Recorder; pass it to pagetoken.WithRecorder.
package metric
