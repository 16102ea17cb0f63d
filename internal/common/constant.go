package common

// AccessTokenHeaderName is the HTTP header used to carry the access token
// on outbound requests.
const AccessTokenHeaderName = "Authorization"

// AccessTokenScheme is the auth-scheme prefix expected in the header value.
const AccessTokenScheme = "Bearer"
