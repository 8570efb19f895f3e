// Package extraction converts market research workbooks into the
// comparison document consumed by the visualization tooling.
//
// A workbook carries five sheets with fixed conventions:
//
//  1. Parameters: key/value metadata pairs in the first two columns
//  2. Region: a region matrix whose first row names the regions and
//     whose column positions assign member geographies
//  3. Segmentation: one segment taxonomy per column, depth encoded by
//     leading '>' markers
//  4. Master Sheet-Value / Master Sheet-Volume: one data row per
//     geography/segment combination with year-numbered columns
//
// Each extractor is a single pass over an in-memory cell grid.
// Expected absence (empty cells, unparsable numbers, missing labels)
// is tolerated and mapped to safe defaults; only structural problems
// such as a missing master sheet or a missing Geography column
// surface as errors.
package extraction
