// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package supervisor provides the suture/v4 process tree for Marquee.

	marquee (root)
	├── data-layer
	│   └── catalog-warmer   (one-shot, optional)
	└── api-layer
	    └── http-server

Supervisor events (restarts, backoff, panics) are logged through
sutureslog. Pass logging.NewSlogLogger() so they reach zerolog with the
rest of the application logs.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		return err
	}
	tree.AddDataService(services.NewCatalogWarmer(cache, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logger))
	err = tree.Serve(ctx)
*/
package supervisor
