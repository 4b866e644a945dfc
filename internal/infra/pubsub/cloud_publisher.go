package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"assethub/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/pubsub"
	_ "gocloud.dev/pubsub/gcppubsub" // gcppubsub:// topics
	_ "gocloud.dev/pubsub/mempubsub" // mem:// topics for local runs and tests
)

// cloudPublisher implements EventPublisher over any Go CDK topic URL
type cloudPublisher struct {
	topic  *pubsub.Topic
	url    string
	logger *slog.Logger
}

// NewCloudPublisher opens the topic at url, e.g. mem://request-status
func NewCloudPublisher(ctx context.Context, url string, logger *slog.Logger) (service.EventPublisher, error) {
	topic, err := pubsub.OpenTopic(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open topic %s", url)
	}

	logger.Info("Go CDK publisher initialized", slog.String("topic_url", url))

	return &cloudPublisher{topic: topic, url: url, logger: logger}, nil
}

// PublishRequestStatusChanged sends the event to the topic
func (p *cloudPublisher) PublishRequestStatusChanged(ctx context.Context, event *service.RequestStatusChanged) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := p.topic.Send(ctx, &pubsub.Message{Body: data, Metadata: eventAttributes(event)}); err != nil {
		return errors.Wrapf(err, "failed to publish to %s", p.url)
	}

	p.logger.DebugContext(ctx, "[GoCloudPubSub] Event published", slog.String("request_id", event.RequestID))

	return nil
}

// Close flushes pending sends and releases the topic
func (p *cloudPublisher) Close() error {
	return errors.WithStack(p.topic.Shutdown(context.Background()))
}
