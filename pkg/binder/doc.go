// Package binder decodes HTTP request data into tagged structs. The auth
// pages submit classic url-encoded forms, so the package covers exactly two
// sources: form bodies (`form` tags) and query strings (`query` tags).
//
//	type signInRequest struct {
//		Email    string `form:"email"`
//		Password string `form:"password"`
//		Method   string `form:"method"`
//		Redirect string `query:"redirect"`
//	}
//
//	var req signInRequest
//	if err := binder.Form()(r, &req); err != nil { ... }
//	if err := binder.Query()(r, &req); err != nil { ... }
//
// Binders are composable: apply each in turn against the same struct, later
// sources filling fields earlier ones left at their zero value.
package binder
