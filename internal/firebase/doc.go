// Package firebase initializes the Firestore client from a service-account
// credential and exposes it as an explicitly passed handle.
//
// A [Connector] owns the single initialization of the Firebase Admin SDK.
// The resulting [Client] is immutable and shared by all callers; rejected
// credentials surface lazily through [Client.Verify] as [ErrAuthentication].
package firebase
