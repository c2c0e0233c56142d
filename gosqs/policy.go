package gosqs

const policyVersion = "2012-10-17"

// QueuePolicy is an SQS access policy document.
type QueuePolicy struct {
	Version   string            `json:"Version"`
	Statement []PolicyStatement `json:"Statement"`
}

type PolicyStatement struct {
	Effect    string                       `json:"Effect"`
	Action    string                       `json:"Action"`
	Principal map[string]string            `json:"Principal"`
	Resource  string                       `json:"Resource"`
	Condition map[string]map[string]string `json:"Condition,omitempty"`
}

// NewTopicSendPolicy returns a policy that lets the SNS topic at topicArn
// send messages to the queue at queueArn.
func NewTopicSendPolicy(queueArn, topicArn string) QueuePolicy {
	return QueuePolicy{
		Version: policyVersion,
		Statement: []PolicyStatement{{
			Effect:    "Allow",
			Action:    "sqs:SendMessage",
			Principal: map[string]string{"Service": "sns.amazonaws.com"},
			Resource:  queueArn,
			Condition: map[string]map[string]string{
				"ArnEquals": {"aws:SourceArn": topicArn},
			},
		}},
	}
}
