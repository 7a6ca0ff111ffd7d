// Package jwt signs, verifies, and decodes the HS256 tokens issued by the
// platform's auth service.
//
// Service handles the verified path: Generate signs any JSON-serialisable
// claims value and Parse verifies signature, algorithm, and temporal claims.
// AccessClaims mirrors the claim set carried by platform access tokens.
//
// DecodeUnverified supports the deprecated client-side path of extracting
// claims from a token the SDK cannot verify locally; see its documentation
// for the constraints.
//
//	svc, err := jwt.NewFromString("super-secret")
//	if err != nil {
//	    // handle error
//	}
//
//	token, err := svc.Generate(jwt.AccessClaims{
//	    StandardClaims: jwt.StandardClaims{
//	        Subject:   "user-123",
//	        ExpiresAt: time.Now().Add(time.Hour).Unix(),
//	    },
//	    Roles: []string{"manager"},
//	})
//
//	var parsed jwt.AccessClaims
//	err = svc.Parse(token, &parsed)
package jwt
