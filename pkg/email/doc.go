// Package email sends transactional messages through a provider-agnostic
// Sender.
//
// PostmarkSender is the production implementation. DevSender writes each
// message to disk for local work and is selected when no Postmark server
// token is configured.
//
//	sender, err := email.NewPostmarkSender(cfg, email.WithPostmarkLogger(log))
//	if err != nil {
//	    return err
//	}
//	err = sender.Send(ctx, email.Message{
//	    To:      "visitor@example.com",
//	    From:    email.Address{Email: "noreply@example.com", Name: "Example"},
//	    Subject: "Hello",
//	    HTML:    html,
//	    Text:    text,
//	})
//
// Provider rejections come back as *ProviderError. CategoryOf maps any error
// to CategoryAuth (fix the service configuration), CategoryRequest (the
// message was refused) or CategoryUnknown.
package email
