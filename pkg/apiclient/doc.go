// Package apiclient is the HTTP core shared by the typed platform
// service clients (svc/...).
//
// It owns the concerns every client would otherwise duplicate: base URL
// resolution, bearer token injection with safe runtime replacement, JSON
// request/response handling, the common pagination envelope, and the
// mapping from HTTP status codes to a flat error taxonomy (*APIError
// unwrapping to sentinel kinds such as ErrNotFound or ErrConflict).
//
//	api := apiclient.New("https://api.example.com",
//	    apiclient.WithAccessToken(token),
//	)
//
//	var user User
//	err := api.Get(ctx, "/users/"+id, nil, &user)
//	if errors.Is(err, apiclient.ErrNotFound) {
//	    // handle missing user
//	}
package apiclient
