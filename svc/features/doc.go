// Package features is the typed client for the platform feature flag
// service: flag definitions, server-side evaluation against a context,
// and a local evaluator (EvaluateLocal) for flags cached client-side.
package features
