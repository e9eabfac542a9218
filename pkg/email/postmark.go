package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mrz1836/postmark"

	"github.com/amoxtli/school-contact/pkg/logger"
)

type postmarkAPI interface {
	SendEmail(ctx context.Context, email postmark.Email) (postmark.EmailResponse, error)
}

// PostmarkSender delivers messages through the Postmark transactional API.
type PostmarkSender struct {
	api        postmarkAPI
	trackOpens bool
	log        *slog.Logger
}

// PostmarkOption configures a PostmarkSender.
type PostmarkOption func(*PostmarkSender)

func WithPostmarkLogger(log *slog.Logger) PostmarkOption {
	return func(s *PostmarkSender) {
		if log != nil {
			s.log = log
		}
	}
}

// NewPostmarkSender requires a server token. The account token is only used
// for account-level API calls and may be empty.
func NewPostmarkSender(cfg Config, opts ...PostmarkOption) (*PostmarkSender, error) {
	if cfg.PostmarkServerToken == "" {
		return nil, fmt.Errorf("%w: POSTMARK_SERVER_TOKEN is required", ErrInvalidConfig)
	}
	return newPostmarkSender(
		postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
		cfg.TrackOpens,
		opts...,
	), nil
}

func newPostmarkSender(api postmarkAPI, trackOpens bool, opts ...PostmarkOption) *PostmarkSender {
	s := &PostmarkSender{api: api, trackOpens: trackOpens, log: logger.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send validates msg and submits it. A non-zero Postmark error code becomes
// a *ProviderError; transport failures are wrapped in ErrFailedToSendEmail.
func (s *PostmarkSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	resp, err := s.api.SendEmail(ctx, postmark.Email{
		From:       msg.From.String(),
		To:         msg.To,
		ReplyTo:    msg.ReplyTo,
		Subject:    msg.Subject,
		Tag:        msg.Tag,
		HTMLBody:   msg.HTML,
		TextBody:   msg.Text,
		TrackOpens: s.trackOpens,
		TrackLinks: "HtmlOnly",
	})
	if code := int64(resp.ErrorCode); code != 0 {
		return &ProviderError{
			Category: postmarkCategory(code),
			Code:     code,
			Message:  resp.Message,
		}
	}
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}

	s.log.DebugContext(ctx, "email accepted by postmark",
		logger.Component("email"),
		logger.MessageID(resp.MessageID),
		slog.String("tag", msg.Tag),
	)
	return nil
}
