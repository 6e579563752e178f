// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

//go:build integration

// Package testinfra provides container-backed test infrastructure.
//
// It uses testcontainers-go to run a WireMock server that stands in for
// the Azure OpenAI and Azure Cognitive Search endpoints, so the llm and
// search clients can be exercised over real HTTP:
//
//	func TestClientAgainstWireMock(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    ctx := context.Background()
//	    wm, err := testinfra.NewWireMockContainer(ctx, testinfra.WithTestLogger(t))
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    testinfra.CleanupContainer(t, wm)
//	    // register stubs with wm.Stub, then point the client at wm.URL
//	}
//
// All files carry the integration build tag:
//
//	go test -tags integration ./...
package testinfra
