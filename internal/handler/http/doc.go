// Package http serves the probe and version endpoints of meme-league-db.
//
// Routes:
//
//	GET /api/version/  plain-text application version
//	GET /healthz       liveness, always 200 while the process runs
//	GET /readyz        readiness, 200 when the Firestore credential is accepted, 503 otherwise
//
// Every request gets an X-Trace-ID and one access log entry.
package http
