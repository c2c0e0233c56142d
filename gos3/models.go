package gos3

import (
	"io"
	"time"
)

type SHA256Checksum string

type UploadFileRequest struct {
	Bucket      string            `json:"bucket"`
	Key         string            `json:"key"`
	File        io.Reader         `json:"file"`
	ContentType string            `json:"content_type,omitempty"`
	Checksum    *SHA256Checksum   `json:"checksum,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type GetFileRequest struct {
	Bucket      string  `json:"bucket"`
	Key         string  `json:"key"`
	VersionId   *string `json:"version_id,omitempty"`
	UseChecksum bool    `json:"use_checksum"`
}

type GetObjectResponse struct {
	File []byte `json:"file"`
}

type ObjectExistsResponse struct {
	Exists bool `json:"exists"`
}

type HeadObjectResponse struct {
	ContentType    string            `json:"content_type"`
	ContentLength  int64             `json:"content_length"`
	Sha256Checksum string            `json:"sha256_checksum"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

type GetPresignedUrlRequest struct {
	ExpirySeconds int                `json:"expiry_seconds"`
	Put           *UploadFileRequest `json:"put,omitempty"`
	Get           *GetFileRequest    `json:"get,omitempty"`
}

type GetPresignedUrlResponse struct {
	PutUrl string `json:"put,omitempty"`
	GetUrl string `json:"get,omitempty"`
}

// UploadFileResponse contains the data returned by the S3 PutObject operation.
type UploadFileResponse struct {
	VersionID string `json:"version_id"`
	ETag      string `json:"etag"`
}

type CreateBucketResponse struct {
	Location string `json:"location"`
}

type Bucket struct {
	Name         string    `json:"name"`
	CreationDate time.Time `json:"creation_date"`
}

type ListBucketsResponse struct {
	Buckets []Bucket `json:"buckets"`
}

// Object is one entry of ListObjects.
type Object struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
	ETag         string    `json:"etag"`
}

type ListObjectsResponse struct {
	Bucket  string   `json:"bucket"`
	Objects []Object `json:"objects"`
}
