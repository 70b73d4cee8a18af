// Package config provides YAML configuration for the touch-render tool.
//
// A file has three sections. pipeline tunes the conditioner, seed carries
// running size statistics over from a previous session, and render sets up
// the preview image. Every field is optional; Load fills in defaults.
//
// Example:
//
//	pipeline:
//	  min_gap: 0.005
//	  size_step: 0.01
//	  pressure_step: 0.05
//	seed:
//	  count: 120
//	  average_size: 0.31
//	  min_size: 0.12
//	  max_size: 0.55
//	render:
//	  width: 800
//	  height: 800
//	  background: "#ffffff"
package config
