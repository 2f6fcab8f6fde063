// Package store is the boundary between keez and the remote parameter store.
//
// Gateway has two operations: a paginated read of everything under a
// prefix, and a single-key write with an explicit overwrite policy.
// SSMGateway implements it against AWS Systems Manager Parameter Store using
// aws-sdk-go-v2; MemoryGateway implements it in process.
//
// Errors from the store are wrapped in ErrGateway and returned as-is. keez
// never retries them itself; the SDK's retryer handles throttling.
package store
