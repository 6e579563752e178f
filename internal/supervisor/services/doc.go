// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package services adapts Marquee components to suture.Service.

  - HTTPServerService runs *http.Server and shuts it down gracefully when
    the supervisor stops.
  - CatalogWarmer loads the catalog once at start-up and returns
    suture.ErrDoNotRestart so it is removed from the tree.
  - RankingPrunerService drops expired similarity rankings on an
    interval.

Each service implements fmt.Stringer so supervisor events name it.
*/
package services
