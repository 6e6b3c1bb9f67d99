// Package storage wraps the S3-compatible object storage client used by the
// snapshot feature to archive merge exports and catalog cache snapshots.
//
// The Client interface covers only the operations the application needs
// (bucket checks, put/get/list), keeping mocks small. The concrete client is
// Minio with a strict-timeout transport so an unreachable endpoint fails
// fast instead of stalling a snapshot.
package storage
