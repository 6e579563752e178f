// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package validation wraps go-playground/validator v10 with a shared
// instance, a notblank rule, JSON field names in messages and conversion
// to the API's VALIDATION_ERROR envelope.
//
//	type chatBody struct {
//	    Messages []chatMessage `json:"messages" validate:"required,min=1,max=50,dive"`
//	}
//
//	if verr := validation.ValidateStruct(&body); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    ...
//	}
package validation
