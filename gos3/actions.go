package gos3

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/ggarcia209/go-aws-samples/goaws"
)

// CreateBucket creates a bucket in the region of cfg.
func CreateBucket(ctx context.Context, cfg goaws.AwsConfig, bucket string) bool {
	_, err := NewS3(cfg).CreateBucket(ctx, bucket, cfg.Config.Region)
	if !goaws.Succeeded("s3.CreateBucket", err) {
		return false
	}
	fmt.Printf("Created bucket %s.\n", bucket)
	return true
}

// DeleteBucket deletes an empty bucket.
func DeleteBucket(ctx context.Context, cfg goaws.AwsConfig, bucket string) bool {
	err := NewS3(cfg).DeleteBucket(ctx, bucket)
	if !goaws.Succeeded("s3.DeleteBucket", err) {
		return false
	}
	fmt.Printf("Deleted bucket %s.\n", bucket)
	return true
}

// ListBuckets prints the name and creation date of every bucket.
func ListBuckets(ctx context.Context, cfg goaws.AwsConfig) bool {
	res, err := NewS3(cfg).ListBuckets(ctx)
	if !goaws.Succeeded("s3.ListBuckets", err) {
		return false
	}
	if len(res.Buckets) == 0 {
		fmt.Println("You don't have any buckets!")
		return true
	}
	fmt.Println("Buckets:")
	for _, b := range res.Buckets {
		fmt.Printf("\t%s created %s\n", b.Name, b.CreationDate.UTC().Format(time.DateOnly))
	}
	return true
}

// PutObject uploads the file at fileName to bucket/key.
func PutObject(ctx context.Context, cfg goaws.AwsConfig, bucket, key, fileName string) bool {
	file, err := os.Open(fileName)
	if !goaws.Succeeded("os.Open", err) {
		return false
	}
	defer file.Close()

	info, err := file.Stat()
	if !goaws.Succeeded("file.Stat", err) {
		return false
	}

	_, err = NewS3(cfg).UploadFile(ctx, UploadFileRequest{
		Bucket:      bucket,
		Key:         key,
		File:        file,
		ContentType: mime.TypeByExtension(filepath.Ext(fileName)),
	})
	if !goaws.Succeeded("s3.PutObject", err) {
		return false
	}
	fmt.Printf("Uploaded %s to %s/%s (%s).\n", fileName, bucket, key, humanize.Bytes(uint64(info.Size())))
	return true
}

// GetObject prints the content of the object at bucket/key.
func GetObject(ctx context.Context, cfg goaws.AwsConfig, bucket, key string) bool {
	res, err := NewS3(cfg).GetObject(ctx, GetFileRequest{Bucket: bucket, Key: key})
	if !goaws.Succeeded("s3.GetObject", err) {
		return false
	}
	fmt.Printf("Object %s/%s (%s):\n%s\n", bucket, key, humanize.Bytes(uint64(len(res.File))), res.File)
	return true
}

// DeleteObject deletes the object at bucket/key.
func DeleteObject(ctx context.Context, cfg goaws.AwsConfig, bucket, key string) bool {
	err := NewS3(cfg).DeleteFile(ctx, bucket, key, nil)
	if !goaws.Succeeded("s3.DeleteObject", err) {
		return false
	}
	fmt.Printf("Deleted object %s/%s.\n", bucket, key)
	return true
}

// ListObjects prints the key, size and modification date of every object in
// bucket.
func ListObjects(ctx context.Context, cfg goaws.AwsConfig, bucket string) bool {
	res, err := NewS3(cfg).ListObjects(ctx, bucket, "")
	if !goaws.Succeeded("s3.ListObjects", err) {
		return false
	}
	if len(res.Objects) == 0 {
		fmt.Printf("Bucket %s is empty.\n", bucket)
		return true
	}
	fmt.Printf("Objects in %s:\n", bucket)
	for _, o := range res.Objects {
		fmt.Printf("\t%s\t%s\t%s\n", o.Key, humanize.Bytes(uint64(o.Size)), o.LastModified.UTC().Format(time.DateOnly))
	}
	return true
}
