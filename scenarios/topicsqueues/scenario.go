// Package topicsqueues is the interactive SNS and SQS walkthrough: it creates
// a topic, subscribes queues to it, publishes messages and reads them back
// from every queue.
package topicsqueues

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/ggarcia209/go-aws-samples/goaws"
	"github.com/ggarcia209/go-aws-samples/gosns"
	"github.com/ggarcia209/go-aws-samples/gosqs"
	"github.com/ggarcia209/go-aws-samples/internal/log"
	"github.com/ggarcia209/go-aws-samples/internal/prompt"
)

const (
	fifoSuffix = ".fifo"
	queueCount = 2
	// toneAttribute is the message attribute the queue filter policies match.
	toneAttribute = "tone"
)

// Tones are the values a message tone attribute can take.
var Tones = []string{"cheerful", "funny", "serious", "sincere"}

type queue struct {
	name            string
	url             string
	arn             string
	subscriptionArn string
}

// Scenario holds the clients, the questioner and the resources created so
// far. A Scenario is run once.
type Scenario struct {
	sns      gosns.SNSLogic
	queues   gosqs.QueuesLogic
	messages gosqs.MessagesLogic
	q        prompt.Questioner

	fifo              bool
	contentBasedDedup bool
	topicArn          string
	created           []*queue
}

// New returns a Scenario calling AWS with cfg and asking q.
func New(cfg goaws.AwsConfig, q prompt.Questioner) *Scenario {
	sqsClient := gosqs.NewSQS(cfg)
	return NewWithClients(gosns.NewSNS(cfg), sqsClient.Queues, sqsClient.Messages, q)
}

func NewWithClients(sns gosns.SNSLogic, queues gosqs.QueuesLogic, messages gosqs.MessagesLogic, q prompt.Questioner) *Scenario {
	return &Scenario{sns: sns, queues: queues, messages: messages, q: q}
}

// Run walks through the scenario and deletes everything it created before
// returning, whether or not a step failed.
func (s *Scenario) Run(ctx context.Context) (err error) {
	defer func() {
		if cerr := s.cleanup(ctx); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()

	printBanner("Welcome to messaging with topics and queues.")
	fmt.Println("This walkthrough creates an SNS topic, subscribes SQS queues to it," +
		" publishes messages to the topic and reads them from the queues.")

	if err := s.createTopic(ctx); err != nil {
		return err
	}
	for i := 1; i <= queueCount; i++ {
		if err := s.createQueue(ctx, i); err != nil {
			return err
		}
	}
	if err := s.publishMessages(ctx); err != nil {
		return err
	}
	for _, qu := range s.created {
		if err := s.pollQueue(ctx, qu); err != nil {
			return err
		}
	}

	printBanner("Thanks for watching!")
	return nil
}

func (s *Scenario) createTopic(ctx context.Context) error {
	var err error
	s.fifo, err = s.q.AskBool("Do you want to use FIFO topics and queues? (y/n)", "y")
	if err != nil {
		return err
	}
	if s.fifo {
		fmt.Println("FIFO topics deliver messages in order and remove duplicates." +
			" You can either enter a deduplication ID for each message or let" +
			" SNS derive it from the message body.")
		s.contentBasedDedup, err = s.q.AskBool("Use content-based deduplication instead of entering a deduplication ID? (y/n)", "y")
		if err != nil {
			return err
		}
	}

	name, err := s.q.Ask("Enter a name for your SNS topic:", prompt.NotEmpty())
	if err != nil {
		return err
	}
	name = s.resourceName(name)

	res, err := s.sns.CreateTopic(ctx, name, s.contentBasedDedup)
	if err != nil {
		return fmt.Errorf("s.sns.CreateTopic: %w", err)
	}
	s.topicArn = res.TopicArn
	fmt.Printf("Your new topic with the name %s and ARN %s has been created.\n", name, s.topicArn)
	return nil
}

func (s *Scenario) createQueue(ctx context.Context, n int) error {
	name, err := s.q.Ask(fmt.Sprintf("Enter a name for SQS queue #%d:", n), prompt.NotEmpty())
	if err != nil {
		return err
	}
	qu := &queue{name: s.resourceName(name)}

	created, err := s.queues.CreateQueue(ctx, qu.name, gosqs.QueueDefault, nil)
	if err != nil {
		return fmt.Errorf("s.queues.CreateQueue: %w", err)
	}
	qu.url = created.QueueUrl
	s.created = append(s.created, qu)
	fmt.Printf("Your new SQS queue with the name %s and URL %s has been created.\n", qu.name, qu.url)

	arn, err := s.queues.GetQueueArn(ctx, qu.url)
	if err != nil {
		return fmt.Errorf("s.queues.GetQueueArn: %w", err)
	}
	qu.arn = arn.QueueArn
	if err := s.queues.SetQueuePolicy(ctx, qu.url, qu.arn, s.topicArn); err != nil {
		return fmt.Errorf("s.queues.SetQueuePolicy: %w", err)
	}
	fmt.Println("Attached a policy to the queue that lets the topic send messages to it.")

	var filter gosns.FilterPolicy
	if s.fifo {
		tones, err := s.askTones(fmt.Sprintf("Filter the messages %s receives by tone? (y/n)", qu.name))
		if err != nil {
			return err
		}
		if len(tones) > 0 {
			filter = gosns.FilterPolicy{toneAttribute: tones}
		}
	}

	sub, err := s.sns.SubscribeWithFilter(ctx, qu.arn, "sqs", s.topicArn, filter)
	if err != nil {
		return fmt.Errorf("s.sns.SubscribeWithFilter: %w", err)
	}
	qu.subscriptionArn = sub.SubscriptionArn
	fmt.Printf("Subscribed %s to the topic with subscription ARN %s.\n", qu.name, qu.subscriptionArn)
	return nil
}

// askTones returns the tones picked after a yes to question, without
// duplicates, in the order they were picked.
func (s *Scenario) askTones(question string) ([]string, error) {
	yes, err := s.q.AskBool(question, "y")
	if err != nil || !yes {
		return nil, err
	}
	var tones []string
	for {
		idx, err := s.q.AskChoice("Pick a tone:", Tones)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(tones, Tones[idx]) {
			tones = append(tones, Tones[idx])
		}
		more, err := s.q.AskBool("Add another tone? (y/n)", "y")
		if err != nil {
			return nil, err
		}
		if !more {
			return tones, nil
		}
	}
}

func (s *Scenario) publishMessages(ctx context.Context) error {
	for {
		message, err := s.q.Ask("Enter a message to publish:", prompt.NotEmpty())
		if err != nil {
			return err
		}
		params := gosns.PublishParams{Message: message, TopicArn: s.topicArn}

		if s.fifo {
			if params.GroupID, err = s.q.Ask("Enter a message group ID:", prompt.NotEmpty()); err != nil {
				return err
			}
			if !s.contentBasedDedup {
				if params.DeduplicationID, err = s.q.Ask("Enter a deduplication ID:", prompt.NotEmpty()); err != nil {
					return err
				}
			}
			tone, err := s.q.AskBool("Add a tone attribute to this message? (y/n)", "y")
			if err != nil {
				return err
			}
			if tone {
				idx, err := s.q.AskChoice("Pick a tone:", Tones)
				if err != nil {
					return err
				}
				params.Attributes = map[string]string{toneAttribute: Tones[idx]}
			}
		}

		res, err := s.sns.PublishWithParams(ctx, params)
		if err != nil {
			return fmt.Errorf("s.sns.PublishWithParams: %w", err)
		}
		fmt.Printf("Published message with ID %s.\n", res.MessageId)

		more, err := s.q.AskBool("Publish another message? (y/n)", "y")
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// pollQueue receives messages from qu until a receive comes back empty,
// printing and deleting each batch.
func (s *Scenario) pollQueue(ctx context.Context, qu *queue) error {
	options := gosqs.RecMsgDefault
	options.QueueURL = qu.url
	options.MaxNumberOfMessages = 10
	options.WaitTimeSeconds = 1

	var bodies []string
	for {
		res, err := s.messages.ReceiveMessage(ctx, options)
		if err != nil {
			return fmt.Errorf("s.messages.ReceiveMessage: %w", err)
		}
		if len(res.Messages) == 0 {
			break
		}

		req := gosqs.DeleteMessageBatchRequest{QueueURL: qu.url}
		for _, msg := range res.Messages {
			bodies = append(bodies, notificationMessage(msg.Body))
			req.MessageIDs = append(req.MessageIDs, msg.MessageId)
			req.ReceiptHandles = append(req.ReceiptHandles, msg.ReceiptHandle)
		}
		deleted, err := s.messages.DeleteMessageBatch(ctx, req)
		if err != nil {
			return fmt.Errorf("s.messages.DeleteMessageBatch: %w", err)
		}
		for _, f := range deleted.Failed {
			log.Warnf("message %s was not deleted from %s: %s", f.MessageID, qu.name, f.ErrorMessage)
		}
	}

	fmt.Printf("%d message(s) received by %s:\n", len(bodies), qu.name)
	for _, b := range bodies {
		fmt.Printf("\t%s\n", b)
	}
	return nil
}

// notificationMessage returns the published message carried by an SNS
// notification, or body itself when it is not one.
func notificationMessage(body string) string {
	if m := gjson.Get(body, "Message"); m.Exists() && gjson.Get(body, "Type").String() == "Notification" {
		return m.String()
	}
	return body
}

func (s *Scenario) cleanup(ctx context.Context) error {
	var errs []error
	for _, qu := range s.created {
		if qu.subscriptionArn != "" {
			if err := s.sns.Unsubscribe(ctx, qu.subscriptionArn); err != nil {
				errs = append(errs, fmt.Errorf("s.sns.Unsubscribe: %w", err))
			}
		}
		if err := s.queues.DeleteQueue(ctx, qu.url); err != nil {
			errs = append(errs, fmt.Errorf("s.queues.DeleteQueue: %w", err))
			continue
		}
		fmt.Printf("Deleted queue %s.\n", qu.name)
	}
	s.created = nil

	if s.topicArn != "" {
		if err := s.sns.DeleteTopic(ctx, s.topicArn); err != nil {
			errs = append(errs, fmt.Errorf("s.sns.DeleteTopic: %w", err))
		} else {
			fmt.Printf("Deleted topic %s.\n", s.topicArn)
		}
		s.topicArn = ""
	}
	return errors.Join(errs...)
}

// resourceName adds the FIFO suffix to name when the scenario uses FIFO
// resources.
func (s *Scenario) resourceName(name string) string {
	if s.fifo && !strings.HasSuffix(name, fifoSuffix) {
		return name + fifoSuffix
	}
	return name
}

func printBanner(text string) {
	line := strings.Repeat("-", 88)
	fmt.Printf("%s\n%s\n%s\n", line, text, line)
}

// RunScenario runs the walkthrough against AWS, asking its questions on
// stdin.
func RunScenario(ctx context.Context, cfg goaws.AwsConfig) bool {
	err := New(cfg, prompt.NewStdin()).Run(ctx)
	return goaws.Succeeded("topicsqueues.Run", err)
}
