// Package contactform is the client side of the contact form.
//
// Validate mirrors the checks the page runs before posting. Client keeps the
// form state (idle, submitting, success, error), allows one submission in
// flight, posts to the contact API and reports analytics events without
// letting them affect the result.
package contactform
