// Package ses implements a Transport that delivers via the AWS SES v2
// API.
package ses

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sesv2 "github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/sandren/mailout/transport"
)

// Config holds the settings for creating a Transport.
type Config struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string

	// Sender is the verified SES identity deliveries are sent from.
	Sender string
}

// SendEmailAPI is the narrow slice of the SES v2 client used by this
// transport. It exists so tests can substitute a mock.
type SendEmailAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// Transport delivers messages through AWS SES v2.
type Transport struct {
	sender string
	client SendEmailAPI
}

// New creates a Transport from the given configuration. Static credentials
// are used when provided; otherwise the default AWS credential chain
// applies.
func New(ctx context.Context, cfg Config) (*Transport, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}

	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &Transport{
		sender: cfg.Sender,
		client: sesv2.NewFromConfig(awsCfg),
	}, nil
}

// NewWithClient creates a Transport with a custom client, used for
// testing.
func NewWithClient(sender string, client SendEmailAPI) *Transport {
	return &Transport{sender: sender, client: client}
}

// Send delivers one message to every address on the recipient line using
// the SES simple email format. SES renders its own header block, so the
// composed one is not transmitted.
func (t *Transport) Send(ctx context.Context, recipientLine, subject, body, _ string) error {
	to := transport.SplitRecipientLine(recipientLine)
	if len(to) == 0 {
		return fmt.Errorf("no recipients on line %q", recipientLine)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(t.sender),
		Destination: &types.Destination{
			ToAddresses: to,
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body)},
				},
			},
		},
	}

	if _, err := t.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("ses send failed: %w", err)
	}
	return nil
}
