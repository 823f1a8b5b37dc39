// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

/*
Package services adapts Cinelens components to suture's Serve
lifecycle so the supervisor tree can restart them independently.

HTTPServerService wraps an *http.Server: Serve runs ListenAndServe,
and on context cancellation drains in-flight requests for a
configurable timeout before returning.

ModelService owns the model build schedule, not the build itself,
which stays with the manager. It can build once on startup and then
rebuild on a ticker. A failed startup build restarts the service
under supervisor backoff, while a failed scheduled rebuild logs and
keeps the previous model live.

Wiring both under a tree:

	tree.AddAPIService(services.NewHTTPServerService(srv, 10*time.Second))
	tree.AddModelService(services.NewModelService(manager, services.ModelServiceConfig{
	    BuildOnStart:    true,
	    RebuildInterval: cfg.Model.RebuildInterval,
	}, logging.Logger()))
	return tree.Serve(ctx)

Returning an error from Serve asks the supervisor to restart the
service; returning nil stops it for good. Both wrappers return
ctx.Err() after a requested shutdown so suture logs the stop as
intentional, and both implement fmt.Stringer so supervisor log lines
name the service.
*/
package services
