// Package contact handles contact form submissions for the school site.
//
// Service.Submit runs the whole pipeline for one submission. It rejects spam
// and invalid input, then builds the business notification and the visitor
// confirmation and sends both concurrently through an email.Sender. Provider
// failures are mapped to a short user-facing message; details only go to the
// log.
//
// Routes mounts the HTTP surface:
//
//	POST /api/contact   submit, responds {success, message}
//	GET  /api/contact   reachability check
//
// Submissions are never stored. When CONTACT_DEDUP_WINDOW is positive, a
// fingerprint of each delivered submission is remembered for that long and a
// repeat inside the window is acknowledged without sending again.
package contact
