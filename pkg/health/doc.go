// Package health provides liveness and readiness HTTP handlers.
//
// [LivenessHandler] answers OK while the process runs. [ReadinessHandler]
// runs named [Checks] in parallel under a shared timeout and answers 503 when
// any of them fails. Both answer plain text by default and JSON when the
// client sends "Accept: application/json" or "?format=json".
//
//	checks := health.Checks{"redis": redis.Healthcheck(client)}
//	mux.Handle("/health/ready", health.ReadinessHandler(checks))
package health
