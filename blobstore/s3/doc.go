// Package s3 implements blobstore.BlobStore on Amazon S3.
//
// Reads use ranged GETs so partial reads never download whole objects;
// streaming writes go through the s3/manager uploader, which switches to
// multipart uploads for large bodies.
package s3
