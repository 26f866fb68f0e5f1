// Package tokensource exposes a tokenstore.TokenStore as an oauth2.TokenSource.
//
// The gigshift backend issues a plain bearer token on login and registration;
// there is no refresh flow. The source therefore reads the store on every call
// and never caches, so a logout or a new login is visible to the very next request.
//
// # Usage
//
//	src, _ := tokensource.New(store)
//	tok, err := src.TokenContext(ctx)
//	if errors.Is(err, tokensource.ErrNoToken) {
//		// send the request unauthenticated
//	}
//	tok.SetAuthHeader(req)
//
// Source also satisfies oauth2.TokenSource and can back an oauth2.Transport.
package tokensource
