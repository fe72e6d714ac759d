// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics provides Prometheus metrics for the lookup API.
//
// Collectors register with the default registry at init. Request metrics are
// labelled by route pattern so path values never become label values; lookup
// and row metrics are labelled by entity. Handler serves the registry for
// /metrics.
package metrics
