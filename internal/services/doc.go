// Package services defines the shared error taxonomy and request-scoped
// context helpers used by the catalog, link, and messaging clients.
//
// Errors fall into four classes: bad input from the user, a resolver that
// found nothing, transient upstream trouble that degrades to empty results,
// and fatal upstream failures that abort the request. Only the top-level
// message handler turns these into user-facing text, keeping exactly one
// error-reporting path per request.
package services
