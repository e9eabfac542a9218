package contact

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/amoxtli/school-contact/pkg/async"
	"github.com/amoxtli/school-contact/pkg/email"
	"github.com/amoxtli/school-contact/pkg/logger"
	"github.com/amoxtli/school-contact/pkg/validator"
)

const (
	legNotification = "notification"
	legConfirmation = "confirmation"
)

// Service processes contact submissions.
type Service struct {
	sender   email.Sender
	composer *composer
	dedup    *dedup
	strict   bool
	timeout  time.Duration
	maxBody  int64
	log      *slog.Logger
}

type Option func(*Service)

func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// withClock pins the time used for footers and the dedup window.
func withClock(now func() time.Time) Option {
	return func(s *Service) {
		s.composer.now = now
		if s.dedup != nil {
			s.dedup.now = now
		}
	}
}

// NewService validates cfg and returns a Service that delivers through sender.
func NewService(cfg Config, sender email.Sender, opts ...Option) (*Service, error) {
	if sender == nil {
		return nil, errors.Join(ErrInvalidConfig, errors.New("email sender is required"))
	}
	comp, err := newComposer(cfg)
	if err != nil {
		return nil, err
	}
	s := &Service{
		sender:   sender,
		composer: comp,
		dedup:    newDedup(cfg.DedupWindow, cfg.DedupCapacity),
		strict:   cfg.StrictChoices,
		timeout:  cfg.SendTimeout,
		maxBody:  cfg.MaxBodyBytes,
		log:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("contact"))
	return s, nil
}

type leg struct {
	name string
	msg  email.Message
}

// Submit validates sub, sends both emails and maps the outcome to a Result.
// Once sending starts it is not cancelled by ctx; it is bounded by the
// configured send timeout instead.
func (s *Service) Submit(ctx context.Context, sub Submission) Result {
	sub = sub.Normalize()

	if res, ok := s.check(ctx, sub); !ok {
		return res
	}

	fp := sub.Fingerprint()
	if s.dedup.recent(fp) {
		s.log.InfoContext(ctx, "duplicate submission acknowledged without sending",
			logger.Outcome(string(OutcomeDuplicate)))
		return delivered(OutcomeDuplicate)
	}

	notification, err := s.composer.notification(ctx, sub)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to build notification", logger.Error(err))
		return internalError()
	}
	confirmation, err := s.composer.confirmation(ctx, sub)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to build confirmation", logger.Error(err))
		return internalError()
	}

	legs := []leg{
		{name: legNotification, msg: notification},
		{name: legConfirmation, msg: confirmation},
	}
	start := time.Now()
	errs := s.dispatch(ctx, legs)

	// the first failing leg decides, notification before confirmation
	for i, err := range errs {
		if err == nil {
			continue
		}
		res := failed(email.CategoryOf(err))
		s.log.ErrorContext(ctx, "contact submission failed",
			logger.Outcome(string(res.Outcome)),
			logger.Leg(legs[i].name),
			logger.Category(string(res.Category)),
			logger.Duration(time.Since(start)),
		)
		return res
	}

	s.dedup.record(fp)
	s.log.InfoContext(ctx, "contact submission delivered",
		logger.Outcome(string(OutcomeDelivered)),
		logger.Duration(time.Since(start)),
	)
	return delivered(OutcomeDelivered)
}

func (s *Service) check(ctx context.Context, sub Submission) (Result, bool) {
	err := sub.Validate(s.strict)
	if err == nil {
		return Result{}, true
	}

	var res Result
	switch {
	case errors.Is(err, ErrSpam):
		res = rejected(OutcomeSpam, MsgSpam)
	case errors.Is(err, ErrMissingFields):
		res = rejected(OutcomeInvalid, MsgMissingPrefix+joinFields(validator.ExtractValidationErrors(err).Fields()))
	case errors.Is(err, ErrInvalidEmail):
		res = rejected(OutcomeInvalid, MsgInvalidEmail)
	case errors.Is(err, ErrFieldTooLong):
		res = rejected(OutcomeInvalid, MsgTooLongPrefix+joinFields(validator.ExtractValidationErrors(err).Fields()))
	case errors.Is(err, ErrInvalidChoice):
		res = rejected(OutcomeInvalid, MsgInvalidPrefix+joinFields(validator.ExtractValidationErrors(err).Fields()))
	default:
		res = internalError()
	}

	s.log.InfoContext(ctx, "contact submission rejected",
		logger.Outcome(string(res.Outcome)),
		slog.String("reason", res.Message),
	)
	return res, false
}

// dispatch sends every leg concurrently and waits for all of them. The
// returned errors are in leg order.
func (s *Service) dispatch(ctx context.Context, legs []leg) []error {
	sendCtx := context.WithoutCancel(ctx)
	if s.timeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(sendCtx, s.timeout)
		defer cancel()
	}

	futures := make([]*async.Future[string], len(legs))
	for i, l := range legs {
		futures[i] = async.Async(sendCtx, l, func(ctx context.Context, l leg) (string, error) {
			return l.name, s.sender.Send(ctx, l.msg)
		})
	}

	outcomes := async.Settle(futures...)
	errs := make([]error, len(outcomes))
	for i, o := range outcomes {
		errs[i] = o.Err
		if o.Err == nil {
			s.log.DebugContext(ctx, "email sent", logger.Leg(legs[i].name), logger.Recipient(legs[i].msg.To))
			continue
		}
		var pe *email.ProviderError
		attrs := []any{logger.Leg(legs[i].name), logger.Category(string(email.CategoryOf(o.Err))), logger.Error(o.Err)}
		if errors.As(o.Err, &pe) {
			attrs = append(attrs, slog.Int64("provider_code", pe.Code))
		}
		s.log.ErrorContext(ctx, "email send failed", attrs...)
	}
	return errs
}
