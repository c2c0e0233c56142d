// gosqs contains common methods for interacting with AWS SQS
package gosqs

import (
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/ggarcia209/go-aws-samples/goaws"
)

type SQS struct {
	Queues   QueuesLogic
	Messages MessagesLogic
}

func NewSQS(config goaws.AwsConfig) *SQS {
	svc := sqs.NewFromConfig(config.Config)
	return &SQS{
		Queues:   NewQueues(svc),
		Messages: NewMessages(svc),
	}
}
