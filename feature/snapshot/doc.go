// Package snapshot archives merge text exports and catalog cache snapshots
// to S3-compatible object storage. The feature is optional: when storage is
// not configured the rest of the application runs without it.
package snapshot
