package gosns

type ListTopicsResponse struct {
	TopicArns []string `json:"topic_arns"`
}

type CreateTopicResponse struct {
	TopicArn string `json:"topic_arn"`
}

type SubscribeResponse struct {
	SubscriptionArn string `json:"subscription_arn"`
}

type PublishResponse struct {
	MessageId      string `json:"message_id"`
	SequenceNumber string `json:"sequence_number,omitempty"`
}

// Subscription is one entry of ListSubscriptions.
type Subscription struct {
	SubscriptionArn string `json:"subscription_arn"`
	TopicArn        string `json:"topic_arn"`
	Protocol        string `json:"protocol"`
	Endpoint        string `json:"endpoint"`
}

type ListSubscriptionsResponse struct {
	Subscriptions []Subscription `json:"subscriptions"`
}

// PublishParams holds a message and its FIFO and attribute options.
// GroupID is required by FIFO topics. DeduplicationID may be left empty when
// the topic uses content-based deduplication.
type PublishParams struct {
	Message         string
	TopicArn        string
	GroupID         string
	DeduplicationID string
	// Attributes are sent as String message attributes, which a
	// subscription filter policy can match on.
	Attributes map[string]string
}

// FilterPolicy maps a message attribute name to the values a subscription
// accepts.
type FilterPolicy map[string][]string
