// Package catalog holds the canned book queries: filters, projections, sorts,
// pagination, aggregation pipelines, index declarations and plan inspection,
// plus a sequential runner that executes them against one collection.
package catalog
