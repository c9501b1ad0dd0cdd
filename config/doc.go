// Package config loads and validates the rebalancing options.
//
// The YAML layout follows the decision section of a bike-share scenario:
//
//	resolution: 20
//	effective_time_mean: 20
//	effective_time_std: 3
//	supply_water_mark_ratio: 0.8
//	demand_water_mark_ratio: 0.001
//	action_scope:
//	  low: 0.1
//	  high: 0.9
//	  filters:
//	    - type: distance
//	      num: 20
//	    - type: trip_window
//	      num: 10
//	      windows: 6
//	extra_cost_mode: source
//
// Pointer fields are required keys; a missing one fails validation. Unknown
// keys are rejected. Every failure wraps core.ErrConfiguration.
package config
