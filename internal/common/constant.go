// Package common contains shared constants and sentinel errors used across
// foldervault components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// Storage key formats. Every persisted collection is namespaced by user id.
const (
	FoldersKeyFormat  = "folders_%s"
	CiphersKeyFormat  = "ciphers_%s"
	SaltKeyFormat     = "salt_%s"
	VerifierKeyFormat = "verifier_%s"
	UserIDKey         = "userId"
)

// NoneFolderKey is the translation key of the "no folder" placeholder that
// terminates every decrypted folder list.
const NoneFolderKey = "noneFolder"
