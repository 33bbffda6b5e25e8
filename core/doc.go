// Package core contains the business logic for the Textprep API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (Document, Analysis, TextStatistics)
// - cleaner: Gutenberg boilerplate removal and text normalization
// - analyzer: Tokenization, descriptive statistics and extractive summaries
// - preprocess: Orchestrating service (fetch, clean, analyze, cache)
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "textprep-app-api/core/preprocess"
//	    "textprep-app-api/core/interfaces"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create service
//	svc := preprocess.NewPreprocessService(deps)
//
//	// Fetch, clean and analyze a Gutenberg text
//	analysis, err := svc.ProcessURL(ctx, "https://www.gutenberg.org/files/1342/1342-0.txt")
package core
