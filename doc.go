// Package dividash provides the functions and types behind the `divi`
// command-line dividend dashboard. It is designed to be local-first and
// deterministic, so that every figure displayed can be reproduced from the
// data file and the parameters alone.
//
// The core functionalities include:
//   - DRIP Simulation: A pure engine that models the compounding of a share
//     position under periodic dividend reinvestment, share price appreciation
//     and dividend growth, producing a year-by-year projection.
//   - Projection Reporting: Scalar summary metrics (total return,
//     reinvestment advantage, shares gained, cumulative income) reduced from
//     a simulated projection.
//   - Record Management: Loading, cleaning and aggregating per-ticker
//     dividend records from a tab-separated data file, and importing them
//     from broker JSON exports.
//   - Dividend Projection: A simple fixed-growth projection of a dividend
//     stream without reinvestment.
//
// This package serves as the foundational logic for the `divi` command-line
// tool; the presentation of its results lives in the renderer package.
package dividash
