// Package definition loads chart definitions from disk and turns them into
// configured charts.
//
// A definition names the chart type, its labels and datasets, the option
// literals to apply, per-chart defaults overrides and an optional Lua script
// that binds callbacks. The file format follows the extension:
//
//	.toml         github.com/pelletier/go-toml/v2
//	.yaml, .yml   gopkg.in/yaml.v3
//	.json         github.com/tidwall/gjson
//
// Example (TOML):
//
//	id     = "sales"
//	type   = "line"
//	labels = ["jan", "feb", "mar"]
//	script = "sales.lua"
//
//	[options.plugins.title]
//	display = true
//	text    = "Revenue"
//
//	[defaults.elements.point]
//	radius = 4
//
//	[[datasets]]
//	label = "2024"
//	data  = [3, 7, 4]
//
// Settings for the command line can be overridden from CHARTWIRE_*
// environment variables, and a Watcher reports writes to definition and
// script files so callers can rebuild.
package definition
