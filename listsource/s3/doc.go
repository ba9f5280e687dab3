// Package s3 provides a list source backed by AWS S3.
//
// Each list is a single object; the object key is the list name joined
// onto a configurable root prefix.
package s3
