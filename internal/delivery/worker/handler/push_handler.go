package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"assethub/config"
	deliverycontext "assethub/internal/delivery/context"
	"assethub/internal/domain/constants"
	"assethub/internal/domain/entity"
	"assethub/internal/domain/repository"
	"assethub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// TokenValidator checks the OIDC token Pub/Sub attaches to push requests.
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler records request status changes delivered by Pub/Sub push
type PushHandler struct {
	verifyPushAuth bool
	validate       TokenValidator
	logger         *slog.Logger
	eventRepo      repository.RequestEventRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	EventRepo repository.RequestEventRepository
	Validator TokenValidator `optional:"true"`
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Google push requests are signed; local and gocloud deliveries are not
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	validate := params.Validator
	if validate == nil {
		validate = idtoken.Validate
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validate:       validate,
		logger:         params.Logger,
		eventRepo:      params.EventRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.RequestStatusChanged
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse request status event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	traceID := h.extractTraceID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", traceID))
	ctx = deliverycontext.WithRequestID(ctx, traceID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing request status event",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("asset_request_id", event.RequestID),
		slog.String("from", event.From),
		slog.String("to", event.To),
	)

	if err := h.record(ctx, pushMsg.Message.MessageID, &event); err != nil {
		reqLogger.Error("[Worker] Failed to record request event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// 503 asks Pub/Sub to redeliver; anything else is acknowledged to avoid endless retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractTraceID picks the trace id from message attributes, the event, the context, or a new one
func (h *PushHandler) extractTraceID(ctx context.Context, pushMsg *PubSubMessage, event *service.RequestStatusChanged) string {
	if traceID, ok := pushMsg.Message.Attributes["trace_id"]; ok && traceID != "" {
		return traceID
	}

	if event.TraceID != "" {
		return event.TraceID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

func (h *PushHandler) record(ctx context.Context, messageID string, event *service.RequestStatusChanged) error {
	if messageID == "" {
		return errors.New("push message has no id")
	}

	requestID, err := uuid.Parse(event.RequestID)
	if err != nil {
		return errors.Wrap(err, "invalid asset request id")
	}

	to := entity.RequestStatus(event.To)
	if !to.IsValid() {
		return errors.Errorf("invalid status %q", event.To)
	}

	changedAt := event.ChangedAt
	if changedAt.IsZero() {
		changedAt = time.Now().UTC()
	}

	err = h.eventRepo.Record(ctx, &entity.RequestEvent{
		MessageID:      messageID,
		RequestID:      requestID,
		AssetName:      event.AssetName,
		CompanyName:    event.CompanyName,
		RequesterEmail: event.RequesterEmail,
		From:           entity.RequestStatus(event.From),
		To:             to,
		ChangedBy:      event.ChangedBy,
		ChangedAt:      changedAt,
	})
	if errors.Is(err, repository.ErrDuplicateEvent) {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Worker] Duplicate delivery ignored", slog.String("message_id", messageID))

		return nil
	}
	if err != nil {
		return newRetryableError(err)
	}

	return nil
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
