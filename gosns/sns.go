// gosns contains common methods for interacting with AWS SNS
package gosns

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	json "github.com/goccy/go-json"

	"github.com/ggarcia209/go-aws-samples/goaws"
	"github.com/ggarcia209/go-aws-samples/internal/log"
)

// fifoSuffix marks the name of a FIFO topic.
const fifoSuffix = ".fifo"

//go:generate mockgen -destination=../mocks/gosnsmock/sns.go -package=gosnsmock . SNSLogic
type SNSLogic interface {
	ListTopics(ctx context.Context) (*ListTopicsResponse, error)
	CreateTopic(ctx context.Context, name string, contentBasedDedup bool) (*CreateTopicResponse, error)
	DeleteTopic(ctx context.Context, topicArn string) error
	Subscribe(ctx context.Context, endpoint, protocol, topicArn string) (*SubscribeResponse, error)
	SubscribeWithFilter(ctx context.Context, endpoint, protocol, topicArn string, filter FilterPolicy) (*SubscribeResponse, error)
	Unsubscribe(ctx context.Context, subscriptionArn string) error
	ListSubscriptions(ctx context.Context) (*ListSubscriptionsResponse, error)
	Publish(ctx context.Context, msgStr, topicArn string) (*PublishResponse, error)
	PublishWithParams(ctx context.Context, params PublishParams) (*PublishResponse, error)
}

// SNSClientAPI defines the interface for the AWS SNS client methods used by this package.
//
//go:generate mockgen -destination=./sns_client_api_test.go -package=gosns . SNSClientAPI
type SNSClientAPI interface {
	ListTopics(ctx context.Context, params *sns.ListTopicsInput, optFns ...func(*sns.Options)) (*sns.ListTopicsOutput, error)
	CreateTopic(ctx context.Context, params *sns.CreateTopicInput, optFns ...func(*sns.Options)) (*sns.CreateTopicOutput, error)
	DeleteTopic(ctx context.Context, params *sns.DeleteTopicInput, optFns ...func(*sns.Options)) (*sns.DeleteTopicOutput, error)
	Subscribe(ctx context.Context, params *sns.SubscribeInput, optFns ...func(*sns.Options)) (*sns.SubscribeOutput, error)
	Unsubscribe(ctx context.Context, params *sns.UnsubscribeInput, optFns ...func(*sns.Options)) (*sns.UnsubscribeOutput, error)
	ListSubscriptions(ctx context.Context, params *sns.ListSubscriptionsInput, optFns ...func(*sns.Options)) (*sns.ListSubscriptionsOutput, error)
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

var validProtocols = map[string]bool{
	"http":        true,
	"https":       true,
	"email":       true,
	"email-json":  true,
	"sms":         true,
	"sqs":         true,
	"application": true,
	"lambda":      true,
	"firehose":    true,
}

type SNS struct {
	svc SNSClientAPI
}

func NewSNS(config goaws.AwsConfig) *SNS {
	return &SNS{svc: sns.NewFromConfig(config.Config)}
}

// IsFifoTopic reports whether name or ARN denotes a FIFO topic.
func IsFifoTopic(nameOrArn string) bool {
	return strings.HasSuffix(nameOrArn, fifoSuffix)
}

// ListTopics returns the ARNs of all SNS topics in the AWS account, reading
// every page.
func (s *SNS) ListTopics(ctx context.Context) (*ListTopicsResponse, error) {
	arns := make([]string, 0)

	p := sns.NewListTopicsPaginator(s.svc, &sns.ListTopicsInput{})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, handleErr(fmt.Errorf("s.svc.ListTopics: %w", err))
		}
		for _, t := range page.Topics {
			arns = append(arns, aws.ToString(t.TopicArn))
		}
	}

	return &ListTopicsResponse{TopicArns: arns}, nil
}

// CreateTopic creates a new SNS topic with the given name. A name ending in
// .fifo creates a FIFO topic, optionally with content-based deduplication.
func (s *SNS) CreateTopic(ctx context.Context, name string, contentBasedDedup bool) (*CreateTopicResponse, error) {
	input := &sns.CreateTopicInput{
		Name: aws.String(name),
	}
	if IsFifoTopic(name) {
		input.Attributes = map[string]string{"FifoTopic": "true"}
		if contentBasedDedup {
			input.Attributes["ContentBasedDeduplication"] = "true"
		}
	}

	result, err := s.svc.CreateTopic(ctx, input)
	if err != nil {
		return nil, handleErr(fmt.Errorf("s.svc.CreateTopic: %w", err))
	}
	log.Debugf("created topic %s", aws.ToString(result.TopicArn))

	return &CreateTopicResponse{TopicArn: aws.ToString(result.TopicArn)}, nil
}

// DeleteTopic deletes a topic and all its subscriptions.
func (s *SNS) DeleteTopic(ctx context.Context, topicArn string) error {
	_, err := s.svc.DeleteTopic(ctx, &sns.DeleteTopicInput{TopicArn: aws.String(topicArn)})
	if err != nil {
		return handleErr(fmt.Errorf("s.svc.DeleteTopic: %w", err))
	}
	return nil
}

// Subscribe creates a new subscription for an endpoint.
func (s *SNS) Subscribe(ctx context.Context, endpoint, protocol, topicArn string) (*SubscribeResponse, error) {
	return s.subscribe(ctx, endpoint, protocol, topicArn, nil)
}

// SubscribeWithFilter subscribes endpoint and attaches a filter policy so it
// only receives messages whose attributes match filter.
func (s *SNS) SubscribeWithFilter(ctx context.Context, endpoint, protocol, topicArn string, filter FilterPolicy) (*SubscribeResponse, error) {
	if len(filter) == 0 {
		return s.subscribe(ctx, endpoint, protocol, topicArn, nil)
	}
	policy, err := json.Marshal(filter)
	if err != nil {
		return nil, goaws.NewClientError(fmt.Errorf("json.Marshal: %w", err))
	}
	return s.subscribe(ctx, endpoint, protocol, topicArn, map[string]string{"FilterPolicy": string(policy)})
}

func (s *SNS) subscribe(ctx context.Context, endpoint, protocol, topicArn string, attributes map[string]string) (*SubscribeResponse, error) {
	if !validProtocols[protocol] {
		return nil, NewInvalidProtocolError(protocol)
	}

	result, err := s.svc.Subscribe(ctx, &sns.SubscribeInput{
		Endpoint:              aws.String(endpoint),
		Protocol:              aws.String(protocol),
		ReturnSubscriptionArn: true, // Return the ARN, even if user has yet to confirm
		TopicArn:              aws.String(topicArn),
		Attributes:            attributes,
	})
	if err != nil {
		return nil, handleErr(fmt.Errorf("s.svc.Subscribe: %w", err))
	}

	return &SubscribeResponse{SubscriptionArn: aws.ToString(result.SubscriptionArn)}, nil
}

// Unsubscribe deletes a subscription.
func (s *SNS) Unsubscribe(ctx context.Context, subscriptionArn string) error {
	_, err := s.svc.Unsubscribe(ctx, &sns.UnsubscribeInput{SubscriptionArn: aws.String(subscriptionArn)})
	if err != nil {
		return handleErr(fmt.Errorf("s.svc.Unsubscribe: %w", err))
	}
	return nil
}

// ListSubscriptions returns every subscription in the account.
func (s *SNS) ListSubscriptions(ctx context.Context) (*ListSubscriptionsResponse, error) {
	subs := make([]Subscription, 0)

	p := sns.NewListSubscriptionsPaginator(s.svc, &sns.ListSubscriptionsInput{})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, handleErr(fmt.Errorf("s.svc.ListSubscriptions: %w", err))
		}
		for _, sub := range page.Subscriptions {
			subs = append(subs, Subscription{
				SubscriptionArn: aws.ToString(sub.SubscriptionArn),
				TopicArn:        aws.ToString(sub.TopicArn),
				Protocol:        aws.ToString(sub.Protocol),
				Endpoint:        aws.ToString(sub.Endpoint),
			})
		}
	}

	return &ListSubscriptionsResponse{Subscriptions: subs}, nil
}

// Publish publishes a new message to a Topic and returns the message ID
// of the published message.
func (s *SNS) Publish(ctx context.Context, msgStr, topicArn string) (*PublishResponse, error) {
	return s.PublishWithParams(ctx, PublishParams{Message: msgStr, TopicArn: topicArn})
}

// PublishWithParams publishes a message with FIFO group and deduplication
// IDs and string attributes.
func (s *SNS) PublishWithParams(ctx context.Context, params PublishParams) (*PublishResponse, error) {
	if IsFifoTopic(params.TopicArn) && params.GroupID == "" {
		return nil, NewInvalidParameterError("a message group ID is required for FIFO topics")
	}

	input := &sns.PublishInput{
		Message:  aws.String(params.Message),
		TopicArn: aws.String(params.TopicArn),
	}
	if params.GroupID != "" {
		input.MessageGroupId = aws.String(params.GroupID)
	}
	if params.DeduplicationID != "" {
		input.MessageDeduplicationId = aws.String(params.DeduplicationID)
	}
	if len(params.Attributes) > 0 {
		input.MessageAttributes = make(map[string]types.MessageAttributeValue, len(params.Attributes))
		for k, v := range params.Attributes {
			input.MessageAttributes[k] = types.MessageAttributeValue{
				DataType:    aws.String("String"),
				StringValue: aws.String(v),
			}
		}
	}

	result, err := s.svc.Publish(ctx, input)
	if err != nil {
		return nil, handleErr(fmt.Errorf("s.svc.Publish: %w", err))
	}

	return &PublishResponse{
		MessageId:      aws.ToString(result.MessageId),
		SequenceNumber: aws.ToString(result.SequenceNumber),
	}, nil
}
