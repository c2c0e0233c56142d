package gosns

import (
	"context"
	"fmt"

	"github.com/ggarcia209/go-aws-samples/goaws"
)

// ListTopics prints the ARN of every topic in the account.
func ListTopics(ctx context.Context, cfg goaws.AwsConfig) bool {
	res, err := NewSNS(cfg).ListTopics(ctx)
	if !goaws.Succeeded("sns.ListTopics", err) {
		return false
	}
	if len(res.TopicArns) == 0 {
		fmt.Println("You don't have any topics!")
		return true
	}
	fmt.Println("Topics:")
	for _, arn := range res.TopicArns {
		fmt.Printf("\t%s\n", arn)
	}
	return true
}

// CreateTopic creates a topic. A name ending in .fifo creates a FIFO topic.
func CreateTopic(ctx context.Context, cfg goaws.AwsConfig, name string) bool {
	res, err := NewSNS(cfg).CreateTopic(ctx, name, false)
	if !goaws.Succeeded("sns.CreateTopic", err) {
		return false
	}
	fmt.Printf("Created topic with ARN: %s\n", res.TopicArn)
	return true
}

// DeleteTopic deletes the topic with the given ARN.
func DeleteTopic(ctx context.Context, cfg goaws.AwsConfig, topicArn string) bool {
	err := NewSNS(cfg).DeleteTopic(ctx, topicArn)
	if !goaws.Succeeded("sns.DeleteTopic", err) {
		return false
	}
	fmt.Printf("Deleted topic %s\n", topicArn)
	return true
}

// Subscribe subscribes endpoint to the topic with the given protocol.
func Subscribe(ctx context.Context, cfg goaws.AwsConfig, protocol, endpoint, topicArn string) bool {
	res, err := NewSNS(cfg).Subscribe(ctx, endpoint, protocol, topicArn)
	if !goaws.Succeeded("sns.Subscribe", err) {
		return false
	}
	fmt.Printf("Subscribed %s with ARN: %s\n", endpoint, res.SubscriptionArn)
	return true
}

// Unsubscribe deletes the subscription with the given ARN.
func Unsubscribe(ctx context.Context, cfg goaws.AwsConfig, subscriptionArn string) bool {
	err := NewSNS(cfg).Unsubscribe(ctx, subscriptionArn)
	if !goaws.Succeeded("sns.Unsubscribe", err) {
		return false
	}
	fmt.Printf("Unsubscribed %s\n", subscriptionArn)
	return true
}

// Publish sends message to the topic.
func Publish(ctx context.Context, cfg goaws.AwsConfig, message, topicArn string) bool {
	res, err := NewSNS(cfg).Publish(ctx, message, topicArn)
	if !goaws.Succeeded("sns.Publish", err) {
		return false
	}
	fmt.Printf("Message published, ID: %s\n", res.MessageId)
	return true
}

// ListSubscriptions prints every subscription ARN with the ARN of its topic.
func ListSubscriptions(ctx context.Context, cfg goaws.AwsConfig) bool {
	res, err := NewSNS(cfg).ListSubscriptions(ctx)
	if !goaws.Succeeded("sns.ListSubscriptions", err) {
		return false
	}
	if len(res.Subscriptions) == 0 {
		fmt.Println("You don't have any subscriptions!")
		return true
	}
	for _, sub := range res.Subscriptions {
		fmt.Printf("%s\n\ttopic: %s\n", sub.SubscriptionArn, sub.TopicArn)
	}
	return true
}
