// gos3 contains common methods for interacting with AWS S3
package gos3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.openly.dev/pointy"

	"github.com/ggarcia209/go-aws-samples/goaws"
	"github.com/ggarcia209/go-aws-samples/internal/log"
)

// defaultRegion accepts no LocationConstraint on CreateBucket.
const defaultRegion = "us-east-1"

//go:generate mockgen -destination=../mocks/gos3mock/s3.go -package=gos3mock . S3Logic
type S3Logic interface {
	CreateBucket(ctx context.Context, bucket, region string) (*CreateBucketResponse, error)
	DeleteBucket(ctx context.Context, bucket string) error
	ListBuckets(ctx context.Context) (*ListBucketsResponse, error)
	ListObjects(ctx context.Context, bucket, prefix string) (*ListObjectsResponse, error)
	GetObject(ctx context.Context, req GetFileRequest) (*GetObjectResponse, error)
	HeadObject(ctx context.Context, req GetFileRequest) (*HeadObjectResponse, error)
	CheckIfObjectExists(ctx context.Context, req GetFileRequest) (*ObjectExistsResponse, error)
	UploadFile(ctx context.Context, req UploadFileRequest) (*UploadFileResponse, error)
	DeleteFile(ctx context.Context, bucket, key string, versionId *string) error
	GetPresignedURL(ctx context.Context, req GetPresignedUrlRequest) (*GetPresignedUrlResponse, error)
}

// S3ClientAPI defines the interface for the AWS S3 client methods used by this package.
//
//go:generate mockgen -destination=./s3_client_test.go -package=gos3 . S3ClientAPI
type S3ClientAPI interface {
	CreateBucket(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error)
	DeleteBucket(ctx context.Context, params *s3.DeleteBucketInput, optFns ...func(*s3.Options)) (*s3.DeleteBucketOutput, error)
	ListBuckets(ctx context.Context, params *s3.ListBucketsInput, optFns ...func(*s3.Options)) (*s3.ListBucketsOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3PresignClientAPI defines the interface for the AWS S3 presign client methods used by this package.
//
//go:generate mockgen -destination=./s3_presign_client_test.go -package=gos3 . S3PresignClientAPI
type S3PresignClientAPI interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

type S3 struct {
	svc        S3ClientAPI
	presignSvc S3PresignClientAPI
}

func NewS3(config goaws.AwsConfig) *S3 {
	client := s3.NewFromConfig(config.Config)
	return &S3{
		svc:        client,
		presignSvc: s3.NewPresignClient(client),
	}
}

// CreateBucket creates a bucket in region. An empty region creates the
// bucket in us-east-1.
func (s *S3) CreateBucket(ctx context.Context, bucket, region string) (*CreateBucketResponse, error) {
	input := &s3.CreateBucketInput{
		Bucket: aws.String(bucket),
	}
	if region != "" && region != defaultRegion {
		input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(region),
		}
	}

	result, err := s.svc.CreateBucket(ctx, input)
	if err != nil {
		return nil, handleErr(fmt.Errorf("s.svc.CreateBucket: %w", err), bucket, "")
	}
	log.Debugf("created bucket %s", bucket)

	return &CreateBucketResponse{Location: aws.ToString(result.Location)}, nil
}

// DeleteBucket deletes an empty bucket.
func (s *S3) DeleteBucket(ctx context.Context, bucket string) error {
	if _, err := s.svc.DeleteBucket(ctx, &s3.DeleteBucketInput{
		Bucket: aws.String(bucket),
	}); err != nil {
		return handleErr(fmt.Errorf("s.svc.DeleteBucket: %w", err), bucket, "")
	}
	return nil
}

// ListBuckets returns every bucket owned by the account, reading every page.
func (s *S3) ListBuckets(ctx context.Context) (*ListBucketsResponse, error) {
	buckets := make([]Bucket, 0)

	p := s3.NewListBucketsPaginator(s.svc, &s3.ListBucketsInput{})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, handleErr(fmt.Errorf("s.svc.ListBuckets: %w", err), "", "")
		}
		for _, b := range page.Buckets {
			buckets = append(buckets, Bucket{
				Name:         aws.ToString(b.Name),
				CreationDate: aws.ToTime(b.CreationDate),
			})
		}
	}

	return &ListBucketsResponse{Buckets: buckets}, nil
}

// ListObjects returns the objects of bucket whose keys start with prefix,
// reading every page.
func (s *S3) ListObjects(ctx context.Context, bucket, prefix string) (*ListObjectsResponse, error) {
	objects := make([]Object, 0)

	input := &s3.ListObjectsV2Input{Bucket: aws.String(bucket)}
	if prefix != "" {
		input.Prefix = aws.String(prefix)
	}
	p := s3.NewListObjectsV2Paginator(s.svc, input)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, handleErr(fmt.Errorf("s.svc.ListObjectsV2: %w", err), bucket, "")
		}
		for _, o := range page.Contents {
			objects = append(objects, Object{
				Key:          aws.ToString(o.Key),
				Size:         aws.ToInt64(o.Size),
				LastModified: aws.ToTime(o.LastModified),
				ETag:         aws.ToString(o.ETag),
			})
		}
	}

	return &ListObjectsResponse{Bucket: bucket, Objects: objects}, nil
}

// GetObject returns the S3 object at the given bucket/key as a byte slice.
func (s *S3) GetObject(ctx context.Context, req GetFileRequest) (*GetObjectResponse, error) {
	input := &s3.GetObjectInput{
		Bucket:    aws.String(req.Bucket),
		Key:       aws.String(req.Key),
		VersionId: req.VersionId,
	}

	if req.UseChecksum {
		input.ChecksumMode = types.ChecksumModeEnabled
	}

	obj, err := s.svc.GetObject(ctx, input)
	if err != nil {
		return nil, handleErr(fmt.Errorf("s.svc.GetObject: %w", err), req.Bucket, req.Key)
	}
	defer obj.Body.Close()

	res, err := io.ReadAll(obj.Body)
	if err != nil {
		return nil, goaws.NewInternalError(fmt.Errorf("io.ReadAll: %w", err))
	}

	return &GetObjectResponse{File: res}, nil
}

// HeadObject returns the metadata of the object at bucket/key. With
// UseChecksum set, an object stored without a SHA256 checksum is an error.
func (s *S3) HeadObject(ctx context.Context, req GetFileRequest) (*HeadObjectResponse, error) {
	input := &s3.HeadObjectInput{
		Bucket:    aws.String(req.Bucket),
		Key:       aws.String(req.Key),
		VersionId: req.VersionId,
	}

	if req.UseChecksum {
		input.ChecksumMode = types.ChecksumModeEnabled
	}

	obj, err := s.svc.HeadObject(ctx, input)
	if err != nil {
		return nil, handleErr(fmt.Errorf("s.svc.HeadObject: %w", err), req.Bucket, req.Key)
	}

	resp := &HeadObjectResponse{
		ContentType:   aws.ToString(obj.ContentType),
		ContentLength: aws.ToInt64(obj.ContentLength),
		Metadata:      obj.Metadata,
	}

	if req.UseChecksum {
		if obj.ChecksumSHA256 == nil {
			return nil, NewMissingChecksumError()
		}
		resp.Sha256Checksum = *obj.ChecksumSHA256
	}
	return resp, nil
}

// CheckIfObjectExists checks if a head object exists at bucket/key
func (s *S3) CheckIfObjectExists(ctx context.Context, req GetFileRequest) (*ObjectExistsResponse, error) {
	if _, err := s.svc.HeadObject(
		ctx,
		&s3.HeadObjectInput{
			Bucket:    aws.String(req.Bucket),
			Key:       aws.String(req.Key),
			VersionId: req.VersionId,
		},
	); err != nil {
		err = handleErr(fmt.Errorf("s.svc.HeadObject: %w", err), req.Bucket, req.Key)
		var notFound *ItemNotFoundError
		if errors.As(err, &notFound) {
			return &ObjectExistsResponse{Exists: false}, nil
		}
		return nil, err
	}

	return &ObjectExistsResponse{Exists: true}, nil
}

// UploadFile uploads a new file to the given S3 bucket.
func (s *S3) UploadFile(ctx context.Context, req UploadFileRequest) (*UploadFileResponse, error) {
	input := &s3.PutObjectInput{
		Bucket:   aws.String(req.Bucket),
		Key:      aws.String(req.Key),
		Body:     req.File,
		Metadata: req.Metadata,
	}

	if req.ContentType != "" {
		input.ContentType = pointy.String(req.ContentType)
	}
	if req.Checksum != nil {
		input.ChecksumAlgorithm = types.ChecksumAlgorithmSha256
		input.ChecksumSHA256 = pointy.String(string(*req.Checksum))
	}

	result, err := s.svc.PutObject(ctx, input)
	if err != nil {
		return nil, handleErr(fmt.Errorf("s.svc.PutObject: %w", err), req.Bucket, "")
	}
	log.Debugf("uploaded %s/%s", req.Bucket, req.Key)

	return &UploadFileResponse{
		VersionID: aws.ToString(result.VersionId),
		ETag:      aws.ToString(result.ETag),
	}, nil
}

// DeleteFile deletes the the file at bucket/key
func (s *S3) DeleteFile(ctx context.Context, bucket, key string, versionId *string) error {
	input := &s3.DeleteObjectInput{
		Bucket:    aws.String(bucket),
		Key:       aws.String(key),
		VersionId: versionId,
	}

	if _, err := s.svc.DeleteObject(ctx, input); err != nil {
		return handleErr(fmt.Errorf("s.svc.DeleteObject: %w", err), bucket, key)
	}

	return nil
}

// GetPresignedURL returns presigned URLs for put and get requests
func (s *S3) GetPresignedURL(ctx context.Context, req GetPresignedUrlRequest) (*GetPresignedUrlResponse, error) {
	var presignedUrl = new(GetPresignedUrlResponse)
	expires := s3.WithPresignExpires(time.Second * time.Duration(req.ExpirySeconds))

	if req.Put != nil {
		input := &s3.PutObjectInput{
			Bucket:   aws.String(req.Put.Bucket),
			Key:      aws.String(req.Put.Key),
			Body:     req.Put.File,
			Metadata: req.Put.Metadata,
		}

		if req.Put.Checksum != nil {
			input.ChecksumSHA256 = pointy.String(string(*req.Put.Checksum))
		}

		resp, err := s.presignSvc.PresignPutObject(ctx, input, expires)
		if err != nil {
			return nil, goaws.NewInternalError(fmt.Errorf("psCli.PresignPutObject: %w", err))
		}
		presignedUrl.PutUrl = resp.URL
	}

	if req.Get != nil {
		input := &s3.GetObjectInput{
			Bucket:    aws.String(req.Get.Bucket),
			Key:       aws.String(req.Get.Key),
			VersionId: req.Get.VersionId,
		}

		if req.Get.UseChecksum {
			input.ChecksumMode = types.ChecksumModeEnabled
		}

		resp, err := s.presignSvc.PresignGetObject(ctx, input, expires)
		if err != nil {
			return nil, goaws.NewInternalError(fmt.Errorf("psCli.PresignGetObject: %w", err))
		}
		presignedUrl.GetUrl = resp.URL
	}

	return presignedUrl, nil
}
