// Package minio provides a list source backed by MinIO or any
// S3-compatible object store reachable through the MinIO client.
package minio
