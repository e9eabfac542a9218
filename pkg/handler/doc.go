// Package handler turns typed request handlers into http.HandlerFunc.
//
// A HandlerFunc receives a Context and an already decoded request value and
// returns a Response. Wrap does the decoding with the configured binders and
// hands binding and rendering failures to an ErrorHandler.
//
//	h := handler.HandlerFunc[handler.Context, Request](
//		func(ctx handler.Context, req Request) handler.Response {
//			return handler.JSON(http.StatusOK, result)
//		},
//	)
//	r.Post("/api/contact", handler.Wrap(h,
//		handler.WithBinder[handler.Context, Request](handler.BindJSON(64<<10)),
//		handler.WithErrorHandler[handler.Context, Request](onError),
//	))
package handler
