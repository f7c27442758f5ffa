// Package services contains the application services of the foldervault
// client: the current-user identity, the item (cipher) store, the folder
// store with its decrypted-view cache, and the local profile that unlocks
// the encryption key.
package services
