// Package bench runs stride test cases end to end.
//
// For each TestCase the Runner, strictly in order:
//
//  1. validates the case,
//  2. allocates and fills a fresh matrix.Buffer,
//  3. times traverse.RowMajor, then traverse.ColMajor, on that buffer,
//  4. returns a report.Result and drops the buffer.
//
// Cases never share a buffer and nothing runs concurrently.
package bench
