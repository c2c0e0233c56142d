package gosqs

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	json "github.com/goccy/go-json"

	"github.com/ggarcia209/go-aws-samples/goaws"
	"github.com/ggarcia209/go-aws-samples/internal/log"
)

// fifoSuffix marks the name and URL of a FIFO queue.
const fifoSuffix = ".fifo"

// QueuesLogic defines common methods for SQS Queues
//
//go:generate mockgen -destination=../mocks/gosqsmock/queues.go -package=gosqsmock . QueuesLogic
type QueuesLogic interface {
	CreateQueue(ctx context.Context, name string, options QueueOptions, tags map[string]string) (*CreateQueueResponse, error)
	GetQueueURL(ctx context.Context, name string) (*GetQueueUrlResponse, error)
	GetQueueArn(ctx context.Context, url string) (*GetQueueArnResponse, error)
	SetQueuePolicy(ctx context.Context, url, queueArn, topicArn string) error
	ListQueues(ctx context.Context, prefix string) (*ListQueuesResponse, error)
	DeleteQueue(ctx context.Context, url string) error
	PurgeQueue(ctx context.Context, url string) error
}

// SQSQueuesClientAPI defines the interface for the AWS SQS client methods used by this package.
//
//go:generate mockgen -destination=./queues_client_api_test.go -package=gosqs . SQSQueuesClientAPI
type SQSQueuesClientAPI interface {
	CreateQueue(ctx context.Context, params *sqs.CreateQueueInput, optFns ...func(*sqs.Options)) (*sqs.CreateQueueOutput, error)
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	GetQueueAttributes(ctx context.Context, params *sqs.GetQueueAttributesInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueAttributesOutput, error)
	SetQueueAttributes(ctx context.Context, params *sqs.SetQueueAttributesInput, optFns ...func(*sqs.Options)) (*sqs.SetQueueAttributesOutput, error)
	ListQueues(ctx context.Context, params *sqs.ListQueuesInput, optFns ...func(*sqs.Options)) (*sqs.ListQueuesOutput, error)
	DeleteQueue(ctx context.Context, params *sqs.DeleteQueueInput, optFns ...func(*sqs.Options)) (*sqs.DeleteQueueOutput, error)
	PurgeQueue(ctx context.Context, params *sqs.PurgeQueueInput, optFns ...func(*sqs.Options)) (*sqs.PurgeQueueOutput, error)
}

// Queues implements QueuesLogic for interacting with AWS SQS Queues
type Queues struct {
	svc SQSQueuesClientAPI
}

func NewQueues(svc SQSQueuesClientAPI) *Queues {
	return &Queues{
		svc: svc,
	}
}

// IsFifoQueue reports whether a queue name or URL denotes a FIFO queue.
func IsFifoQueue(nameOrURL string) bool {
	return strings.HasSuffix(nameOrURL, fifoSuffix)
}

// CreateQueue creates a new SQS queue per the given name, options, & tags
// arguments and returns the url of the queue. A name ending in .fifo
// creates a FIFO queue. Empty options keep the service defaults.
func (s *Queues) CreateQueue(ctx context.Context, name string, options QueueOptions, tags map[string]string) (*CreateQueueResponse, error) {
	fifo := IsFifoQueue(name)
	if options.FifoQueue == "true" && !fifo {
		return nil, NewInvalidQueueNameError(name)
	}

	attributes := make(map[string]string)
	setAttr := func(key, value string) {
		if value != "" {
			attributes[key] = value
		}
	}
	setAttr("DelaySeconds", options.DelaySeconds)
	setAttr("MaximumMessageSize", options.MaximumMessageSize)
	setAttr("MessageRetentionPeriod", options.MessageRetentionPeriod)
	setAttr("Policy", options.Policy)
	setAttr("ReceiveMessageWaitTimeSeconds", options.ReceiveMessageWaitTimeSeconds)
	setAttr("RedrivePolicy", options.RedrivePolicy)
	setAttr("VisibilityTimeout", options.VisibilityTimeout)
	setAttr("KmsMasterKeyId", options.KmsMasterKeyId)
	if options.KmsMasterKeyId != "" {
		setAttr("KmsDataKeyReusePeriodSeconds", options.KmsDataKeyReusePeriodSeconds)
	}
	// set FIFO Queue options
	if fifo {
		attributes["FifoQueue"] = "true"
		setAttr("ContentBasedDeduplication", options.ContentBasedDeduplication)
		setAttr("DeduplicationScope", options.DeduplicationScope)
		setAttr("FifoThroughputLimit", options.FifoThroughputLimit)
	}

	input := &sqs.CreateQueueInput{QueueName: aws.String(name)}
	if len(attributes) > 0 {
		input.Attributes = attributes
	}
	// set tags
	if len(tags) > 0 {
		input.Tags = tags
	}
	result, err := s.svc.CreateQueue(ctx, input)
	if err != nil {
		return nil, handleErr(fmt.Errorf("s.svc.CreateQueue: %w", err), name)
	}

	if result.QueueUrl == nil {
		return nil, NewEmptyQueueUrlInResponseError()
	}
	log.Debugf("created queue %s", *result.QueueUrl)
	return &CreateQueueResponse{
		QueueUrl: *result.QueueUrl,
	}, nil
}

// GetQueueURL retrives the URL for the given queue name
func (s *Queues) GetQueueURL(ctx context.Context, name string) (*GetQueueUrlResponse, error) {
	result, err := s.svc.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{
		QueueName: &name,
	})
	if err != nil {
		return nil, handleErr(fmt.Errorf("s.svc.GetQueueUrl: %w", err), name)
	}

	if result.QueueUrl == nil {
		return nil, NewEmptyQueueUrlInResponseError()
	}
	return &GetQueueUrlResponse{
		QueueUrl: *result.QueueUrl,
	}, nil
}

// GetQueueArn reads the ARN attribute of the queue at url.
func (s *Queues) GetQueueArn(ctx context.Context, url string) (*GetQueueArnResponse, error) {
	if url == "" {
		return nil, NewEmptyQueueUrlInRequestError()
	}
	result, err := s.svc.GetQueueAttributes(ctx, &sqs.GetQueueAttributesInput{
		QueueUrl:       aws.String(url),
		AttributeNames: []types.QueueAttributeName{types.QueueAttributeNameQueueArn},
	})
	if err != nil {
		return nil, handleErr(fmt.Errorf("s.svc.GetQueueAttributes: %w", err), url)
	}

	arn, ok := result.Attributes[string(types.QueueAttributeNameQueueArn)]
	if !ok {
		return nil, goaws.NewInternalError(fmt.Errorf("s.svc.GetQueueAttributes: no QueueArn attribute for %s", url))
	}
	return &GetQueueArnResponse{QueueArn: arn}, nil
}

// SetQueuePolicy replaces the access policy of the queue with one that lets
// the SNS topic at topicArn send messages to it.
func (s *Queues) SetQueuePolicy(ctx context.Context, url, queueArn, topicArn string) error {
	if url == "" {
		return NewEmptyQueueUrlInRequestError()
	}
	policy, err := json.Marshal(NewTopicSendPolicy(queueArn, topicArn))
	if err != nil {
		return goaws.NewClientError(fmt.Errorf("json.Marshal: %w", err))
	}

	_, err = s.svc.SetQueueAttributes(ctx, &sqs.SetQueueAttributesInput{
		QueueUrl: aws.String(url),
		Attributes: map[string]string{
			string(types.QueueAttributeNamePolicy): string(policy),
		},
	})
	if err != nil {
		return handleErr(fmt.Errorf("s.svc.SetQueueAttributes: %w", err), url)
	}
	return nil
}

// ListQueues returns the URLs of every queue whose name starts with prefix,
// reading every page. An empty prefix lists all queues.
func (s *Queues) ListQueues(ctx context.Context, prefix string) (*ListQueuesResponse, error) {
	urls := make([]string, 0)

	input := &sqs.ListQueuesInput{}
	if prefix != "" {
		input.QueueNamePrefix = aws.String(prefix)
	}
	p := sqs.NewListQueuesPaginator(s.svc, input)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, handleErr(fmt.Errorf("s.svc.ListQueues: %w", err), prefix)
		}
		urls = append(urls, page.QueueUrls...)
	}

	return &ListQueuesResponse{QueueUrls: urls}, nil
}

// DeleteQueue deletes the queue at the given URL
func (s *Queues) DeleteQueue(ctx context.Context, url string) error {
	if _, err := s.svc.DeleteQueue(ctx, &sqs.DeleteQueueInput{
		QueueUrl: aws.String(url),
	}); err != nil {
		return handleErr(fmt.Errorf("s.svc.DeleteQueue: %w", err), url)
	}

	return nil
}

// PurgeQueue purges the specified queue.
func (s *Queues) PurgeQueue(ctx context.Context, url string) error {
	if _, err := s.svc.PurgeQueue(ctx, &sqs.PurgeQueueInput{
		QueueUrl: aws.String(url),
	}); err != nil {
		return handleErr(fmt.Errorf("s.svc.PurgeQueue: %w", err), url)
	}

	return nil
}
