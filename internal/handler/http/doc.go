// Package http serves the go-humans REST API on a chi router.
//
// Routes:
//
//	GET    /              greeting (protected)
//	POST   /login         exchange credentials for a bearer token
//	GET    /humans        list all humans (protected)
//	POST   /humans        create a human (protected)
//	GET    /humans/{id}   fetch one human (protected)
//	PUT    /humans/{id}   replace a human (protected)
//	DELETE /humans/{id}   delete a human (protected)
//
// Protected routes require an "Authorization: Bearer <token>" header unless
// authentication is disabled in the configuration. Every error response is a
// JSON object with a single "detail" field.
package http
