// Package listsource fetches list membership data from external storage.
//
// A Source returns the raw snapshot for a named list; the Refresher
// periodically re-fetches a set of lists, rebuilds their matchers off to
// the side, and swaps the results into an execution context so readers
// never observe a half-populated list.
//
// Providers:
//   - listsource (this package): local files, memory-mapped for zero-copy
//     member views
//   - listsource/s3: AWS S3
//   - listsource/minio: MinIO and other S3-compatible storage
//   - listsource/ddb: DynamoDB tables holding one item per member
package listsource
