// Package internal applies configured rules to YAML and JSON documents.
//
// Engine holds one LintRule per configured rule. A PathRule resolves a
// dotted path in each document, decodes the value found there and runs the
// rule's checks, enum and prefix constraints against it. Issues covered by
// a "# nolint" comment are dropped.
//
//	engine, err := internal.NewEngine(config.Rules)
//	if err != nil {
//	    // handle error
//	}
//	issues, err := engine.Run("service.yaml")
//
// This package is intended for internal use within flex and should not be
// imported by external packages.
package internal
