// Package output provides output formatting for pagetoken-cli.
//
//   - formatter.go: Formatter interface and factory
//   - table.go: table rendering with wide mode support
//   - json.go: JSON output
//   - yaml.go: YAML output
//
// Table headers come from `json` tags; fields tagged `table:"wide"` are only
// shown in wide mode and `table:"-"` hides a field.
package output
