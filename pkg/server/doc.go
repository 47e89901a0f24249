// Package server provides HTTP middleware for verifying chain-signed
// requests.
//
// The middleware authenticates inbound requests carrying the same HMAC
// headers the client emits: dragonchain, timestamp and Authorization. Its
// main use is webhook receivers for smart-contract callbacks, where the
// receiver holds the same key pair the chain signs with.
//
// # Basic Usage
//
//	identity := credentials.Identity{
//	    DragonchainID: chainID,
//	    AuthKeyID:     keyID,
//	    AuthKey:       key,
//	    Algorithm:     credentials.AlgorithmSHA256,
//	}
//	middleware := server.NewHMACAuthMiddleware(identity)
//
//	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//	    keyID, _ := server.AuthKeyIDFromContext(r.Context())
//	    fmt.Fprintf(w, "authenticated with key %s", keyID)
//	})
//
//	http.Handle("/webhook", middleware.Wrap(handler))
//
// # Optional Verification
//
//	// Allow unsigned requests to pass through (no key id in context)
//	middleware.SetOptional(true)
//
// # Replay Protection
//
// The signed timestamp can be bounded against the server clock:
//
//	middleware.SetMaxSkew(5 * time.Minute)
//
// Verification failures return 401 Unauthorized by default; install a
// custom handler with SetErrorHandler. OPTIONS requests (CORS preflight)
// pass through unverified. The request body is buffered during
// verification and restored, so downstream handlers read it normally.
//
// The middleware is stateless and safe for concurrent use.
package server
