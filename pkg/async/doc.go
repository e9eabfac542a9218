// Package async offers a small generic Future for running work concurrently.
//
// The contact service uses it to send the notification and confirmation
// emails in parallel and then join on both:
//
//	n := async.Async(ctx, notification, send)
//	c := async.Async(ctx, confirmation, send)
//	outcomes := async.Settle(n, c)
//
// Settle always waits for every future, so no send is left running after
// the request has been answered.
package async
