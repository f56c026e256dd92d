// Package tradelens provides the aggregation core behind a trade-action
// dashboard.
//
// Usage:
//
//	import (
//	    "github.com/tradelens-org/tradelens/action"
//	    "github.com/tradelens-org/tradelens/engine"
//	    "github.com/tradelens-org/tradelens/geo"
//	    "github.com/tradelens-org/tradelens/sector"
//	)
//
//	snap, err := action.LoadSnapshot("trade_actions.json")
//	filtered := engine.ApplyFilters(snap.Actions, state)
//	stats := engine.ComputeStats(filtered)
//	buckets, _ := sector.BuildBuckets(filtered)
//	counts := geo.Aggregate(filtered)
//
// The core consumes a snapshot produced by an upstream extraction pipeline
// and derives filtered views, summary statistics, industry-sector buckets,
// and country-keyed geospatial counts. Every derivation is a pure function
// of (records, state) — the core holds no shared mutable state, performs no
// I/O, and never calls an external service.
package tradelens
